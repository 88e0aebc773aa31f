package handlers

import (
	"net/http"
	"strconv"

	"graduation-portal-backend/internal/auth"
	"graduation-portal-backend/internal/database/models"
	apperrors "graduation-portal-backend/internal/errors"
	"graduation-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// CountResponse reports how many records an operation touched or matched
type CountResponse struct {
	Count int64 `json:"count"`
}

// respondError maps a service error onto its HTTP status
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsConflict(err):
		status = http.StatusConflict
	case apperrors.IsForbidden(err):
		status = http.StatusForbidden
	case apperrors.IsAuthentication(err):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Request failed")
		c.JSON(status, ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// requireCaller fetches the authenticated caller or aborts with 401
func requireCaller(c *gin.Context) (auth.Caller, bool) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return nil, false
	}
	return caller, true
}

// uuidParam parses a path parameter or aborts with 400
func uuidParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUIDQuery parses an optional query parameter or aborts with 400
func optionalUUIDQuery(c *gin.Context, name, label string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + label + " ID"})
		return nil, false
	}
	return &id, true
}

// approvalStatusQuery parses an optional status filter or aborts with 400
func approvalStatusQuery(c *gin.Context) (*models.ApprovalStatus, bool) {
	raw := c.Query("status")
	if raw == "" {
		return nil, true
	}
	status := models.ApprovalStatus(raw)
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status"})
		return nil, false
	}
	return &status, true
}

// pagination reads page and page_size, falling back to sane defaults
func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
