package auth

import (
	"context"
	"errors"
	"fmt"

	"graduation-portal-backend/internal/database/models"
	apperrors "graduation-portal-backend/internal/errors"
	"graduation-portal-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthClaims represents JWT token claims. Subject carries the student or supervisor id.
type AuthClaims struct {
	Role string `json:"role" example:"student"`
	jwt.RegisteredClaims
}

// AuthService verifies bearer tokens and resolves them to a Caller.
// Tokens are issued elsewhere; this service never mints them.
type AuthService struct {
	secret []byte
	store  repository.Store
}

// NewAuthService creates a new authentication service
func NewAuthService(jwtSecret string, store repository.Store) (*AuthService, error) {
	if jwtSecret == "" {
		return nil, apperrors.NewConfigurationError("JWT secret is required")
	}
	return &AuthService{secret: []byte(jwtSecret), store: store}, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// ResolveCaller loads the student or supervisor the claims name
func (s *AuthService) ResolveCaller(ctx context.Context, claims *AuthClaims) (Caller, error) {
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a valid id", apperrors.ErrInvalidToken)
	}

	repos := s.store.Repositories(ctx)
	switch models.Role(claims.Role) {
	case models.RoleStudent:
		student, err := repos.Students.GetByID(id)
		if err != nil {
			return nil, resolveError(err)
		}
		return NewStudentCaller(student), nil
	case models.RoleSupervisor:
		supervisor, err := repos.Supervisors.GetByID(id)
		if err != nil {
			return nil, resolveError(err)
		}
		return NewSupervisorCaller(supervisor), nil
	default:
		return nil, apperrors.ErrUnknownRole
	}
}

// Authenticate validates the token and resolves its caller
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (Caller, error) {
	claims, err := s.ValidateJWT(tokenString)
	if err != nil {
		return nil, err
	}
	return s.ResolveCaller(ctx, claims)
}

func resolveError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrCallerNotFound
	}
	return fmt.Errorf("failed to resolve caller: %w", err)
}
