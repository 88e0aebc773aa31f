package repository

import (
	"context"

	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	List(filter TeamFilter, limit, offset int) ([]models.Team, int64, error)
	GetBySupervisorID(supervisorID uuid.UUID) ([]models.Team, error)
	CountBySupervisorID(supervisorID uuid.UUID) (int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// StudentRepositoryInterface defines the interface for student repository operations
type StudentRepositoryInterface interface {
	Create(student *models.Student) error
	GetByID(id uuid.UUID) (*models.Student, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Student, error)
	GetByEmail(email string) (*models.Student, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Student, error)
	CountByTeamID(teamID uuid.UUID) (int64, error)
	Update(student *models.Student) error
	Delete(id uuid.UUID) error
}

// SupervisorRepositoryInterface defines the interface for supervisor repository operations
type SupervisorRepositoryInterface interface {
	Create(supervisor *models.Supervisor) error
	GetByID(id uuid.UUID) (*models.Supervisor, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Supervisor, error)
	GetByEmail(email string) (*models.Supervisor, error)
	GetAll(limit, offset int) ([]models.Supervisor, int64, error)
	Update(supervisor *models.Supervisor) error
	Delete(id uuid.UUID) error
}

// JoinRequestRepositoryInterface defines the interface for team join request operations
type JoinRequestRepositoryInterface interface {
	Create(request *models.TeamJoinRequest) error
	GetByID(id uuid.UUID) (*models.TeamJoinRequest, error)
	GetByIDForUpdate(id uuid.UUID) (*models.TeamJoinRequest, error)
	GetPending(teamID, studentID uuid.UUID) (*models.TeamJoinRequest, error)
	GetByTeamID(teamID uuid.UUID, status *models.ApprovalStatus) ([]models.TeamJoinRequest, error)
	GetByStudentID(studentID uuid.UUID, status *models.ApprovalStatus) ([]models.TeamJoinRequest, error)
	Update(request *models.TeamJoinRequest) error
	DeleteByTeamID(teamID uuid.UUID) error
	DeleteByStudentID(studentID uuid.UUID) error
}

// ProjectIdeaRepositoryInterface defines the interface for project idea operations
type ProjectIdeaRepositoryInterface interface {
	Create(idea *models.ProjectIdea) error
	GetByID(id uuid.UUID) (*models.ProjectIdea, error)
	GetByIDForUpdate(id uuid.UUID) (*models.ProjectIdea, error)
	GetByTeamID(teamID uuid.UUID) ([]models.ProjectIdea, error)
	GetAcceptedByTeamID(teamID uuid.UUID) (*models.ProjectIdea, error)
	GetBySupervisorID(supervisorID uuid.UUID) ([]models.ProjectIdea, error)
	Update(idea *models.ProjectIdea) error
	Delete(id uuid.UUID) error
}

// ProjectIdeaRequestRepositoryInterface defines the interface for supervision request operations
type ProjectIdeaRequestRepositoryInterface interface {
	Create(request *models.ProjectIdeaRequest) error
	GetByID(id uuid.UUID) (*models.ProjectIdeaRequest, error)
	GetByIDForUpdate(id uuid.UUID) (*models.ProjectIdeaRequest, error)
	GetPending(ideaID, supervisorID uuid.UUID) (*models.ProjectIdeaRequest, error)
	GetByIdeaID(ideaID uuid.UUID) ([]models.ProjectIdeaRequest, error)
	GetBySupervisorID(supervisorID uuid.UUID, status *models.ApprovalStatus) ([]models.ProjectIdeaRequest, error)
	Update(request *models.ProjectIdeaRequest) error
	Delete(id uuid.UUID) error
	DeleteByIdeaID(ideaID uuid.UUID) error
	DeleteBySupervisorID(supervisorID uuid.UUID) error
}

// TaskRepositoryInterface defines the interface for task operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Task, error)
	List(filter TaskFilter) ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id uuid.UUID) error
}

// TaskSubmissionRepositoryInterface defines the interface for task submission operations
type TaskSubmissionRepositoryInterface interface {
	GetByTaskID(taskID uuid.UUID) (*models.TaskSubmission, error)
	Upsert(submission *models.TaskSubmission) error
	DeleteByTaskID(taskID uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	GetByRecipientID(recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error)
	CountUnread(recipientID uuid.UUID) (int64, error)
	MarkRead(id uuid.UUID) error
	MarkAllRead(recipientID uuid.UUID) (int64, error)
	DeleteByRecipientID(recipientID uuid.UUID) error
}

// TeamFilter narrows team listings
type TeamFilter struct {
	OpenOnly   bool
	Department string
}

// TaskFilter narrows task listings; zero values match everything
type TaskFilter struct {
	TeamIDs      []uuid.UUID
	AssigneeID   *uuid.UUID
	SupervisorID *uuid.UUID
	Status       *models.TaskStatus
}

// Repositories bundles the entity repositories bound to one unit of work
type Repositories struct {
	Teams         TeamRepositoryInterface
	Students      StudentRepositoryInterface
	Supervisors   SupervisorRepositoryInterface
	JoinRequests  JoinRequestRepositoryInterface
	Ideas         ProjectIdeaRepositoryInterface
	IdeaRequests  ProjectIdeaRequestRepositoryInterface
	Tasks         TaskRepositoryInterface
	Submissions   TaskSubmissionRepositoryInterface
	Notifications NotificationRepositoryInterface
}

// Store is the transactional entity store the workflow services run against.
// Everything fn does through the supplied repositories commits or rolls back as one unit.
// Single-entity lookups return gorm.ErrRecordNotFound when nothing matches, whichever
// implementation backs the store.
type Store interface {
	WithTransaction(ctx context.Context, fn func(repos *Repositories) error) error
	Repositories(ctx context.Context) *Repositories
	Ping(ctx context.Context) error
}
