package service

import (
	"context"

	"graduation-portal-backend/internal/auth"
	"graduation-portal-backend/internal/database/models"
	"graduation-portal-backend/internal/notification"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, caller auth.Caller, req *CreateTeamRequest) (*TeamResponse, error)
	GetTeam(ctx context.Context, teamID uuid.UUID) (*TeamResponse, error)
	ListTeams(ctx context.Context, filter TeamListFilter, page, pageSize int) (*TeamListResponse, error)
	UpdateTeam(ctx context.Context, caller auth.Caller, teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(ctx context.Context, caller auth.Caller, teamID uuid.UUID) error
	RequestToJoin(ctx context.Context, caller auth.Caller, teamID uuid.UUID, req *JoinTeamRequest) (*JoinRequestResponse, error)
	RespondToJoinRequest(ctx context.Context, caller auth.Caller, requestID uuid.UUID, req *RespondJoinRequest) (*JoinRequestResponse, error)
	ListJoinRequests(ctx context.Context, caller auth.Caller, teamID uuid.UUID, status *models.ApprovalStatus) ([]JoinRequestResponse, error)
	ListMyJoinRequests(ctx context.Context, caller auth.Caller) ([]JoinRequestResponse, error)
	LeaveTeam(ctx context.Context, caller auth.Caller) error
	DeleteStudent(ctx context.Context, caller auth.Caller) error
	DeleteSupervisor(ctx context.Context, caller auth.Caller) error
}

// ProjectIdeaServiceInterface defines the interface for project idea service
type ProjectIdeaServiceInterface interface {
	PublishIdea(ctx context.Context, caller auth.Caller, req *PublishIdeaRequest) (*ProjectIdeaResponse, error)
	UpdateIdea(ctx context.Context, caller auth.Caller, ideaID uuid.UUID, req *UpdateIdeaRequest) (*ProjectIdeaResponse, error)
	DeleteIdea(ctx context.Context, caller auth.Caller, ideaID uuid.UUID) error
	GetIdea(ctx context.Context, caller auth.Caller, ideaID uuid.UUID) (*ProjectIdeaResponse, error)
	ListTeamIdeas(ctx context.Context, caller auth.Caller) ([]ProjectIdeaResponse, error)
	RequestSupervisor(ctx context.Context, caller auth.Caller, ideaID uuid.UUID, req *RequestSupervisorRequest) (*ProjectIdeaRequestResponse, error)
	ListIdeaRequests(ctx context.Context, caller auth.Caller, ideaID uuid.UUID) ([]ProjectIdeaRequestResponse, error)
	ListSupervisionRequests(ctx context.Context, caller auth.Caller, status *models.ApprovalStatus) ([]ProjectIdeaRequestResponse, error)
	HandleIdeaRequest(ctx context.Context, caller auth.Caller, requestID uuid.UUID, req *HandleIdeaRequestRequest) (*ProjectIdeaRequestResponse, error)
	MarkProjectCompleted(ctx context.Context, caller auth.Caller, ideaID uuid.UUID) (*ProjectIdeaResponse, error)
	ListSupervisors(ctx context.Context, page, pageSize int) (*SupervisorListResponse, error)
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	CreateTask(ctx context.Context, caller auth.Caller, req *CreateTaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, caller auth.Caller, taskID uuid.UUID) (*TaskResponse, error)
	ListTasks(ctx context.Context, caller auth.Caller, filter TaskListFilter) ([]TaskResponse, error)
	ChangeStatus(ctx context.Context, caller auth.Caller, taskID uuid.UUID, req *ChangeTaskStatusRequest) (*TaskResponse, error)
	SubmitTask(ctx context.Context, caller auth.Caller, taskID uuid.UUID, req *SubmitTaskRequest) (*TaskResponse, error)
	ReviewTask(ctx context.Context, caller auth.Caller, taskID uuid.UUID, req *ReviewTaskRequest) (*TaskResponse, error)
	ReassignTask(ctx context.Context, caller auth.Caller, taskID uuid.UUID, req *ReassignTaskRequest) (*TaskResponse, error)
	DeleteTask(ctx context.Context, caller auth.Caller, taskID uuid.UUID) error
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	ListNotifications(ctx context.Context, caller auth.Caller, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error)
	UnreadCount(ctx context.Context, caller auth.Caller) (int64, error)
	MarkRead(ctx context.Context, caller auth.Caller, notificationID uuid.UUID) (*NotificationResponse, error)
	MarkAllRead(ctx context.Context, caller auth.Caller) (int64, error)
	Subscribe(caller auth.Caller) (*notification.Session, func())
}

var (
	_ TeamServiceInterface         = (*TeamService)(nil)
	_ ProjectIdeaServiceInterface  = (*ProjectIdeaService)(nil)
	_ TaskServiceInterface         = (*TaskService)(nil)
	_ NotificationServiceInterface = (*NotificationService)(nil)
)
