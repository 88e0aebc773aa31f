package service

import (
	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// StudentSummary is the public view of a team member
type StudentSummary struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Department   string    `json:"department"`
	AcademicYear int       `json:"academic_year"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Department   string           `json:"department"`
	MaxMembers   int              `json:"max_members"`
	IsOpenToJoin bool             `json:"is_open_to_join"`
	TechStack    []string         `json:"tech_stack"`
	SupervisorID *uuid.UUID       `json:"supervisor_id,omitempty"`
	Members      []StudentSummary `json:"members,omitempty"`
	MemberCount  int              `json:"member_count"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// JoinRequestResponse represents a team join request
type JoinRequestResponse struct {
	ID            uuid.UUID             `json:"id"`
	TeamID        uuid.UUID             `json:"team_id"`
	StudentID     uuid.UUID             `json:"student_id"`
	Message       string                `json:"message"`
	Status        models.ApprovalStatus `json:"status"`
	RespondedByID *uuid.UUID            `json:"responded_by_id,omitempty"`
	RespondedAt   *string               `json:"responded_at,omitempty"`
	CreatedAt     string                `json:"created_at"`
}

// ProjectIdeaResponse represents a project idea
type ProjectIdeaResponse struct {
	ID           uuid.UUID             `json:"id"`
	TeamID       uuid.UUID             `json:"team_id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	TechStack    []string              `json:"tech_stack"`
	Status       models.ApprovalStatus `json:"status"`
	SupervisorID *uuid.UUID            `json:"supervisor_id,omitempty"`
	IsCompleted  bool                  `json:"is_completed"`
	CompletedAt  *string               `json:"completed_at,omitempty"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
}

// ProjectIdeaRequestResponse represents a supervision request
type ProjectIdeaRequestResponse struct {
	ID              uuid.UUID             `json:"id"`
	ProjectIdeaID   uuid.UUID             `json:"project_idea_id"`
	SupervisorID    uuid.UUID             `json:"supervisor_id"`
	RequestedByID   uuid.UUID             `json:"requested_by_id"`
	Status          models.ApprovalStatus `json:"status"`
	RejectionReason string                `json:"rejection_reason,omitempty"`
	RespondedAt     *string               `json:"responded_at,omitempty"`
	CreatedAt       string                `json:"created_at"`
}

// SupervisorResponse is the public view of a supervisor with free capacity
type SupervisorResponse struct {
	ID                uuid.UUID `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Department        string    `json:"department"`
	Specialization    string    `json:"specialization"`
	MaxAssignedTeams  int       `json:"max_assigned_teams"`
	AssignedTeams     int64     `json:"assigned_teams"`
	AvailableCapacity int64     `json:"available_capacity"`
}

// SupervisorListResponse represents a paginated list of supervisors
type SupervisorListResponse struct {
	Supervisors []SupervisorResponse `json:"supervisors"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// TaskSubmissionResponse represents the deliverable of a task
type TaskSubmissionResponse struct {
	ID            uuid.UUID `json:"id"`
	SubmittedByID uuid.UUID `json:"submitted_by_id"`
	FileReference string    `json:"file_reference,omitempty"`
	RepoLink      string    `json:"repo_link,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	SubmittedAt   string    `json:"submitted_at"`
}

// TaskResponse represents a task
type TaskResponse struct {
	ID              uuid.UUID               `json:"id"`
	TeamID          uuid.UUID               `json:"team_id"`
	SupervisorID    uuid.UUID               `json:"supervisor_id"`
	AssigneeID      *uuid.UUID              `json:"assignee_id,omitempty"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	Deadline        string                  `json:"deadline"`
	Status          models.TaskStatus       `json:"status"`
	RejectionReason string                  `json:"rejection_reason,omitempty"`
	CompletedAt     *string                 `json:"completed_at,omitempty"`
	Submission      *TaskSubmissionResponse `json:"submission,omitempty"`
	CreatedAt       string                  `json:"created_at"`
	UpdatedAt       string                  `json:"updated_at"`
}

// NotificationResponse represents an in-app notification
type NotificationResponse struct {
	ID        uuid.UUID                 `json:"id"`
	Title     string                    `json:"title"`
	Body      string                    `json:"body"`
	Status    models.NotificationStatus `json:"status"`
	ReadAt    *string                   `json:"read_at,omitempty"`
	CreatedAt string                    `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Unread        int64                  `json:"unread"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

func toStudentSummary(s *models.Student) StudentSummary {
	return StudentSummary{
		ID:           s.ID,
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		Email:        s.Email,
		Department:   s.Department,
		AcademicYear: s.AcademicYear,
	}
}

func toTeamResponse(team *models.Team, members []models.Student) *TeamResponse {
	resp := &TeamResponse{
		ID:           team.ID,
		Name:         team.Name,
		Department:   team.Department,
		MaxMembers:   team.MaxMembers,
		IsOpenToJoin: team.IsOpenToJoin,
		TechStack:    nonNilStrings(team.TechStack),
		SupervisorID: team.SupervisorID,
		MemberCount:  len(members),
		CreatedAt:    formatTime(team.CreatedAt),
		UpdatedAt:    formatTime(team.UpdatedAt),
	}
	for i := range members {
		resp.Members = append(resp.Members, toStudentSummary(&members[i]))
	}
	return resp
}

func toJoinRequestResponse(r *models.TeamJoinRequest) *JoinRequestResponse {
	return &JoinRequestResponse{
		ID:            r.ID,
		TeamID:        r.TeamID,
		StudentID:     r.StudentID,
		Message:       r.Message,
		Status:        r.Status,
		RespondedByID: r.RespondedByID,
		RespondedAt:   formatTimePtr(r.RespondedAt),
		CreatedAt:     formatTime(r.CreatedAt),
	}
}

func toProjectIdeaResponse(i *models.ProjectIdea) *ProjectIdeaResponse {
	return &ProjectIdeaResponse{
		ID:           i.ID,
		TeamID:       i.TeamID,
		Title:        i.Title,
		Description:  i.Description,
		TechStack:    nonNilStrings(i.TechStack),
		Status:       i.Status,
		SupervisorID: i.SupervisorID,
		IsCompleted:  i.IsCompleted,
		CompletedAt:  formatTimePtr(i.CompletedAt),
		CreatedAt:    formatTime(i.CreatedAt),
		UpdatedAt:    formatTime(i.UpdatedAt),
	}
}

func toProjectIdeaRequestResponse(r *models.ProjectIdeaRequest) *ProjectIdeaRequestResponse {
	return &ProjectIdeaRequestResponse{
		ID:              r.ID,
		ProjectIdeaID:   r.ProjectIdeaID,
		SupervisorID:    r.SupervisorID,
		RequestedByID:   r.RequestedByID,
		Status:          r.Status,
		RejectionReason: r.RejectionReason,
		RespondedAt:     formatTimePtr(r.RespondedAt),
		CreatedAt:       formatTime(r.CreatedAt),
	}
}

func toTaskResponse(t *models.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:              t.ID,
		TeamID:          t.TeamID,
		SupervisorID:    t.SupervisorID,
		AssigneeID:      t.AssigneeID,
		Title:           t.Title,
		Description:     t.Description,
		Deadline:        formatTime(t.Deadline),
		Status:          t.Status,
		RejectionReason: t.RejectionReason,
		CompletedAt:     formatTimePtr(t.CompletedAt),
		CreatedAt:       formatTime(t.CreatedAt),
		UpdatedAt:       formatTime(t.UpdatedAt),
	}
	if t.Submission != nil {
		resp.Submission = toTaskSubmissionResponse(t.Submission)
	}
	return resp
}

func toTaskSubmissionResponse(s *models.TaskSubmission) *TaskSubmissionResponse {
	return &TaskSubmissionResponse{
		ID:            s.ID,
		SubmittedByID: s.SubmittedByID,
		FileReference: s.FileReference,
		RepoLink:      s.RepoLink,
		Notes:         s.Notes,
		SubmittedAt:   formatTime(s.SubmittedAt),
	}
}

func toNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		Status:    n.Status,
		ReadAt:    formatTimePtr(n.ReadAt),
		CreatedAt: formatTime(n.CreatedAt),
	}
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
