package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a state the requested transition is not allowed from
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents a caller lacking the role or relationship an operation requires
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for AuthorizationError
func (e *AuthorizationError) Is(target error) bool {
	t, ok := target.(*AuthorizationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound               = &NotFoundError{Entity: "team"}
	ErrStudentNotFound            = &NotFoundError{Entity: "student"}
	ErrSupervisorNotFound         = &NotFoundError{Entity: "supervisor"}
	ErrJoinRequestNotFound        = &NotFoundError{Entity: "join request"}
	ErrProjectIdeaNotFound        = &NotFoundError{Entity: "project idea"}
	ErrProjectIdeaRequestNotFound = &NotFoundError{Entity: "project idea request"}
	ErrTaskNotFound               = &NotFoundError{Entity: "task"}
	ErrTaskSubmissionNotFound     = &NotFoundError{Entity: "task submission"}
	ErrNotificationNotFound       = &NotFoundError{Entity: "notification"}
	ErrAssigneeNotFound           = &NotFoundError{Entity: "assignee"}
)

// Already Exists Errors
var (
	ErrTeamExists               = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrJoinRequestExists        = &AlreadyExistsError{Entity: "pending join request", Context: "for this team"}
	ErrProjectIdeaRequestExists = &AlreadyExistsError{Entity: "pending project idea request", Context: "for this supervisor"}
)

// Workflow Conflict Errors
var (
	ErrStudentAlreadyInTeam    = &ConflictError{Message: "student already belongs to a team"}
	ErrAlreadyTeamMember       = &ConflictError{Message: "student is already a member of this team"}
	ErrTeamClosed              = &ConflictError{Message: "team is not open to join requests"}
	ErrTeamFull                = &ConflictError{Message: "team has reached its member capacity"}
	ErrJoinRequestResolved     = &ConflictError{Message: "join request has already been resolved"}
	ErrIdeaAlreadyAccepted     = &ConflictError{Message: "project idea has already been accepted"}
	ErrIdeaNotPending          = &ConflictError{Message: "project idea is not pending"}
	ErrIdeaNotAccepted         = &ConflictError{Message: "team has no accepted project idea"}
	ErrIdeaRequestResolved     = &ConflictError{Message: "project idea request has already been resolved"}
	ErrTeamAlreadySupervised   = &ConflictError{Message: "team already has a supervisor"}
	ErrSupervisorAtCapacity    = &ConflictError{Message: "supervisor has reached the maximum number of assigned teams"}
	ErrProjectAlreadyCompleted = &ConflictError{Message: "project has already been marked as completed"}
	ErrProjectHasOpenTasks     = &ConflictError{Message: "all tasks must be completed before the project can be completed"}
	ErrInvalidTaskTransition   = &ConflictError{Message: "invalid task status transition"}
	ErrTaskLockedForStudent    = &ConflictError{Message: "task is awaiting supervisor review or resubmission"}
	ErrTaskNotSubmittable      = &ConflictError{Message: "task must be in progress or need revision to be submitted"}
	ErrTaskNotAwaitingReview   = &ConflictError{Message: "task must be done to be reviewed"}
	ErrTaskStatusUnchanged     = &ConflictError{Message: "task is already in the requested status"}
	ErrConcurrentUpdate        = &ConflictError{Message: "the record was changed by a concurrent request, retry"}
)

// Authorization Errors
var (
	ErrNotTeamMember          = &AuthorizationError{Message: "caller is not a member of this team"}
	ErrStudentHasNoTeam       = &AuthorizationError{Message: "student does not belong to a team"}
	ErrNotTeamSupervisor      = &AuthorizationError{Message: "caller is not the supervisor of this team"}
	ErrNotTaskAssignee        = &AuthorizationError{Message: "caller is not the assignee of this task"}
	ErrNotTaskSupervisor      = &AuthorizationError{Message: "caller is not the supervisor of this task"}
	ErrStudentRoleRequired    = &AuthorizationError{Message: "operation requires a student"}
	ErrSupervisorRoleRequired = &AuthorizationError{Message: "operation requires a supervisor"}
	ErrReviewStatusForbidden  = &AuthorizationError{Message: "students cannot set a review status on a task"}
	ErrNotificationForbidden  = &AuthorizationError{Message: "notification belongs to another recipient"}
)

// Validation Errors
var (
	ErrDeadlineNotInFuture    = &ValidationError{Field: "deadline", Message: "must be in the future"}
	ErrSubmissionContentEmpty = &ValidationError{Field: "submission", Message: "a file reference or repository link is required"}
	ErrInvalidTaskStatus      = &ValidationError{Field: "status", Message: "unknown task status"}
	ErrRejectionReasonMissing = &ValidationError{Field: "rejection_reason", Message: "is required when rejecting"}
	ErrAssigneeNotMember      = &ValidationError{Field: "assignee_id", Message: "must be a member of the task's team"}
)

// Authentication Errors
var (
	ErrMissingCredentials = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid token"}
	ErrUnknownRole        = &AuthenticationError{Message: "token carries an unknown role"}
	ErrCallerNotFound     = &AuthenticationError{Message: "caller does not match any student or supervisor"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsConflict checks if an error violates a workflow invariant.
// Duplicates are conflicts too.
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr) || IsAlreadyExists(err)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsForbidden checks if an error is an AuthorizationError
func IsForbidden(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
