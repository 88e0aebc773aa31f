package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"graduation-portal-backend/internal/auth"
	"graduation-portal-backend/internal/database/models"
	apperrors "graduation-portal-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	timeLayout      = "2006-01-02T15:04:05Z07:00"
)

// Limits are the workflow capacities stamped on new teams and supervisors
type Limits struct {
	TeamMaxMembers     int
	SupervisorMaxTeams int
}

// DefaultLimits mirrors the configuration defaults
func DefaultLimits() Limits {
	return Limits{TeamMaxMembers: 6, SupervisorMaxTeams: 4}
}

// validate runs struct validation and reports the first failing field
func validate(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(toSnakeCase(fe.Field()), describeTag(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	case "url":
		return "must be a valid URL"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// lookupError maps a missing record to the entity's NotFound error
func lookupError(err error, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// storeError wraps a persistence failure, mapping duplicate keys to the given conflict
func storeError(err error, duplicate error, action string) error {
	if duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return duplicate
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func requireStudent(caller auth.Caller) (*auth.StudentCaller, error) {
	student, ok := caller.(*auth.StudentCaller)
	if !ok {
		return nil, apperrors.ErrStudentRoleRequired
	}
	return student, nil
}

func requireSupervisor(caller auth.Caller) (*auth.SupervisorCaller, error) {
	supervisor, ok := caller.(*auth.SupervisorCaller)
	if !ok {
		return nil, apperrors.ErrSupervisorRoleRequired
	}
	return supervisor, nil
}

// pageBounds converts 1-based page numbers to limit and offset
func pageBounds(page, pageSize int) (int, int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func approvalStatusPtr(status models.ApprovalStatus) *models.ApprovalStatus {
	return &status
}
