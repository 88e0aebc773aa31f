package auth

import (
	"net/http"
	"strings"

	"graduation-portal-backend/internal/database/models"
	apperrors "graduation-portal-backend/internal/errors"
	"graduation-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const callerKey = "auth_caller"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and stores the resolved caller on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return m.authenticate(false)
}

// RequireStreamAuth is RequireAuth for event streams. EventSource clients cannot set
// headers, so the token may also arrive in the access_token query parameter.
func (m *AuthMiddleware) RequireStreamAuth() gin.HandlerFunc {
	return m.authenticate(true)
}

func (m *AuthMiddleware) authenticate(allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c, allowQuery)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingCredentials.Error()})
			return
		}

		caller, err := m.service.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if apperrors.IsAuthentication(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to resolve caller")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve caller"})
			return
		}

		SetCaller(c, caller)
		c.Next()
	}
}

// RequireRole rejects callers of any other role. Use after RequireAuth.
func (m *AuthMiddleware) RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if caller.Role() != role {
			err := apperrors.ErrStudentRoleRequired
			if role == models.RoleSupervisor {
				err = apperrors.ErrSupervisorRoleRequired
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}

// SetCaller stores the caller on the gin context and on the request context for logging
func SetCaller(c *gin.Context, caller Caller) {
	c.Set(callerKey, caller)
	ctx := logger.ContextWithCaller(c.Request.Context(), caller.ID().String(), string(caller.Role()))
	c.Request = c.Request.WithContext(ctx)
}

// GetCaller is a helper function to extract the resolved caller from context
func GetCaller(c *gin.Context) (Caller, bool) {
	value, exists := c.Get(callerKey)
	if !exists {
		return nil, false
	}
	caller, ok := value.(Caller)
	return caller, ok
}

func bearerToken(c *gin.Context, allowQuery bool) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if !allowQuery {
			return "", false
		}
		token := c.Query("access_token")
		return token, token != ""
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}
	return tokenString, true
}
