package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "graduation-portal-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres aborts one side of a lock cycle or a serialization conflict with these codes
const (
	pgDeadlockDetected     = "40P01"
	pgSerializationFailure = "40001"
)

var _ Store = (*GormStore)(nil)

// GormStore is the postgres-backed Store
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store over an initialized gorm connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// NewRepositories binds every entity repository to the given connection or transaction
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Teams:         NewTeamRepository(db),
		Students:      NewStudentRepository(db),
		Supervisors:   NewSupervisorRepository(db),
		JoinRequests:  NewJoinRequestRepository(db),
		Ideas:         NewProjectIdeaRepository(db),
		IdeaRequests:  NewProjectIdeaRequestRepository(db),
		Tasks:         NewTaskRepository(db),
		Submissions:   NewTaskSubmissionRepository(db),
		Notifications: NewNotificationRepository(db),
	}
}

// WithTransaction runs fn inside a database transaction
func (s *GormStore) WithTransaction(ctx context.Context, fn func(repos *Repositories) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
	return translateTxError(err)
}

// translateTxError reports a transaction postgres aborted for concurrency as a conflict
func translateTxError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == pgDeadlockDetected || pgErr.Code == pgSerializationFailure) {
		return fmt.Errorf("%w: %s", apperrors.ErrConcurrentUpdate, pgErr.Message)
	}
	return err
}

// Repositories returns repositories outside any transaction, for reads
func (s *GormStore) Repositories(ctx context.Context) *Repositories {
	return NewRepositories(s.db.WithContext(ctx))
}

// Ping checks the database connection
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
