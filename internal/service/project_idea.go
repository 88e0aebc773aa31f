package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"graduation-portal-backend/internal/auth"
	"graduation-portal-backend/internal/database/models"
	apperrors "graduation-portal-backend/internal/errors"
	"graduation-portal-backend/internal/notification"
	"graduation-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectIdeaService handles project ideas and supervisor assignment
type ProjectIdeaService struct {
	store      repository.Store
	dispatcher *notification.Dispatcher
	validator  *validator.Validate
	now        func() time.Time
}

// NewProjectIdeaService creates a new project idea service
func NewProjectIdeaService(store repository.Store, dispatcher *notification.Dispatcher, validator *validator.Validate) *ProjectIdeaService {
	return &ProjectIdeaService{
		store:      store,
		dispatcher: dispatcher,
		validator:  validator,
		now:        time.Now,
	}
}

// PublishIdeaRequest represents the request to publish a project idea
type PublishIdeaRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	TechStack   []string `json:"tech_stack" validate:"max=20,dive,min=1,max=50"`
}

// UpdateIdeaRequest represents the request to edit a pending idea; nil fields are left unchanged
type UpdateIdeaRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	TechStack   []string `json:"tech_stack,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
}

// RequestSupervisorRequest names the supervisor a team asks to supervise an idea
type RequestSupervisorRequest struct {
	SupervisorID uuid.UUID `json:"supervisor_id" validate:"required"`
}

// HandleIdeaRequestRequest carries a supervisor's decision on a supervision request
type HandleIdeaRequestRequest struct {
	Approve         *bool  `json:"approve" validate:"required"`
	RejectionReason string `json:"rejection_reason" validate:"max=1000"`
}

// PublishIdea creates a pending idea owned by the calling student's team
func (s *ProjectIdeaService) PublishIdea(ctx context.Context, caller auth.Caller, req *PublishIdeaRequest) (*ProjectIdeaResponse, error) {
	sc, err := requireStudent(caller)
	if err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	var idea *models.ProjectIdea
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		team, err := studentTeam(repos, sc.ID())
		if err != nil {
			return err
		}

		if _, err := repos.Ideas.GetAcceptedByTeamID(team.ID); err == nil {
			return apperrors.ErrIdeaAlreadyAccepted
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load accepted idea: %w", err)
		}

		idea = &models.ProjectIdea{
			TeamID:      team.ID,
			Title:       req.Title,
			Description: req.Description,
			TechStack:   req.TechStack,
			Status:      models.ApprovalStatusPending,
		}
		if err := repos.Ideas.Create(idea); err != nil {
			return fmt.Errorf("failed to create project idea: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toProjectIdeaResponse(idea), nil
}

// UpdateIdea edits a pending idea. Outstanding supervision requests are withdrawn.
func (s *ProjectIdeaService) UpdateIdea(ctx context.Context, caller auth.Caller, ideaID uuid.UUID, req *UpdateIdeaRequest) (*ProjectIdeaResponse, error) {
	sc, err := requireStudent(caller)
	if err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	var idea *models.ProjectIdea
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		idea, _, err = lockOwnedIdea(repos, sc.ID(), ideaID)
		if err != nil {
			return err
		}
		if idea.Status == models.ApprovalStatusAccepted {
			return apperrors.ErrIdeaAlreadyAccepted
		}

		if req.Title != nil {
			idea.Title = *req.Title
		}
		if req.Description != nil {
			idea.Description = *req.Description
		}
		if req.TechStack != nil {
			idea.TechStack = req.TechStack
		}
		idea.Status = models.ApprovalStatusPending

		if err := repos.Ideas.Update(idea); err != nil {
			return fmt.Errorf("failed to update project idea: %w", err)
		}

		requests, err := repos.IdeaRequests.GetByIdeaID(idea.ID)
		if err != nil {
			return fmt.Errorf("failed to load project idea requests: %w", err)
		}
		for _, r := range requests {
			if r.Status != models.ApprovalStatusPending {
				continue
			}
			if err := repos.IdeaRequests.Delete(r.ID); err != nil {
				return fmt.Errorf("failed to withdraw project idea request: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toProjectIdeaResponse(idea), nil
}

// DeleteIdea deletes a pending or rejected idea of the calling student's team with its
// requests. An accepted idea binds the team to its supervisor and cannot be deleted.
func (s *ProjectIdeaService) DeleteIdea(ctx context.Context, caller auth.Caller, ideaID uuid.UUID) error {
	sc, err := requireStudent(caller)
	if err != nil {
		return err
	}

	return s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		idea, _, err := lockOwnedIdea(repos, sc.ID(), ideaID)
		if err != nil {
			return err
		}
		if idea.Status == models.ApprovalStatusAccepted {
			return apperrors.ErrIdeaAlreadyAccepted
		}
		return deleteIdea(repos, idea.ID)
	})
}

// RequestSupervisor asks a supervisor to supervise a pending idea
func (s *ProjectIdeaService) RequestSupervisor(ctx context.Context, caller auth.Caller, ideaID uuid.UUID, req *RequestSupervisorRequest) (*ProjectIdeaRequestResponse, error) {
	sc, err := requireStudent(caller)
	if err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	batch := s.dispatcher.Batch()
	var request *models.ProjectIdeaRequest
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		idea, team, err := lockOwnedIdea(repos, sc.ID(), ideaID)
		if err != nil {
			return err
		}
		if idea.Status != models.ApprovalStatusPending {
			return apperrors.ErrIdeaNotPending
		}
		if team.HasSupervisor() {
			return apperrors.ErrTeamAlreadySupervised
		}

		supervisor, err := repos.Supervisors.GetByID(req.SupervisorID)
		if err != nil {
			return lookupError(err, apperrors.ErrSupervisorNotFound, "load supervisor")
		}

		if _, err := repos.IdeaRequests.GetPending(idea.ID, supervisor.ID); err == nil {
			return apperrors.ErrProjectIdeaRequestExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check pending project idea request: %w", err)
		}

		request = &models.ProjectIdeaRequest{
			ProjectIdeaID: idea.ID,
			SupervisorID:  supervisor.ID,
			RequestedByID: sc.ID(),
			Status:        models.ApprovalStatusPending,
		}
		if err := repos.IdeaRequests.Create(request); err != nil {
			return fmt.Errorf("failed to create project idea request: %w", err)
		}

		body := fmt.Sprintf("Team %s asked you to supervise %q.", team.Name, idea.Title)
		return batch.Record(repos.Notifications, supervisor.ID, models.RoleSupervisor, "New supervision request", body)
	})
	if err != nil {
		return nil, err
	}

	batch.Send(ctx)
	return toProjectIdeaRequestResponse(request), nil
}

// HandleIdeaRequest resolves a supervision request addressed to the calling supervisor.
// Approval assigns the supervisor to the idea and its team and deletes the team's
// competing ideas and requests.
func (s *ProjectIdeaService) HandleIdeaRequest(ctx context.Context, caller auth.Caller, requestID uuid.UUID, req *HandleIdeaRequestRequest) (*ProjectIdeaRequestResponse, error) {
	sv, err := requireSupervisor(caller)
	if err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	batch := s.dispatcher.Batch()
	var request *models.ProjectIdeaRequest
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		request, err = repos.IdeaRequests.GetByID(requestID)
		if err != nil {
			return lookupError(err, apperrors.ErrProjectIdeaRequestNotFound, "load project idea request")
		}
		if request.SupervisorID != sv.ID() {
			return apperrors.ErrProjectIdeaRequestNotFound
		}
		if request.Status != models.ApprovalStatusPending {
			return apperrors.ErrIdeaRequestResolved
		}

		// Lock order: team, idea, supervisor, request
		idea, team, err := lockIdeaTeam(repos, request.ProjectIdeaID)
		if err != nil {
			return err
		}
		if idea.Status == models.ApprovalStatusAccepted || idea.SupervisorID != nil {
			return apperrors.ErrIdeaAlreadyAccepted
		}
		if idea.Status != models.ApprovalStatusPending {
			return apperrors.ErrIdeaNotPending
		}
		if team.HasSupervisor() {
			return apperrors.ErrTeamAlreadySupervised
		}

		supervisor, err := repos.Supervisors.GetByIDForUpdate(sv.ID())
		if err != nil {
			return lookupError(err, apperrors.ErrSupervisorNotFound, "load supervisor")
		}

		request, err = repos.IdeaRequests.GetByIDForUpdate(requestID)
		if err != nil {
			return lookupError(err, apperrors.ErrProjectIdeaRequestNotFound, "load project idea request")
		}
		if request.Status != models.ApprovalStatusPending {
			return apperrors.ErrIdeaRequestResolved
		}

		now := s.now()
		request.RespondedAt = &now

		var title, body string
		if *req.Approve {
			if err := s.approve(repos, supervisor, request, idea, team); err != nil {
				return err
			}
			title = "Project idea accepted"
			body = fmt.Sprintf("%q was accepted for supervision.", idea.Title)
		} else {
			request.Status = models.ApprovalStatusRejected
			request.RejectionReason = req.RejectionReason
			if err := repos.IdeaRequests.Update(request); err != nil {
				return fmt.Errorf("failed to update project idea request: %w", err)
			}
			title = "Supervision request rejected"
			body = fmt.Sprintf("A supervisor declined %q.", idea.Title)
			if req.RejectionReason != "" {
				body += " Reason: " + req.RejectionReason
			}
		}

		members, err := repos.Students.GetByTeamID(team.ID)
		if err != nil {
			return fmt.Errorf("failed to load team members: %w", err)
		}
		for _, member := range members {
			if err := batch.Record(repos.Notifications, member.ID, models.RoleStudent, title, body); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	batch.Send(ctx)
	return toProjectIdeaRequestResponse(request), nil
}

func (s *ProjectIdeaService) approve(repos *repository.Repositories, supervisor *models.Supervisor, request *models.ProjectIdeaRequest, idea *models.ProjectIdea, team *models.Team) error {
	assigned, err := repos.Teams.CountBySupervisorID(supervisor.ID)
	if err != nil {
		return fmt.Errorf("failed to count supervised teams: %w", err)
	}
	if assigned >= int64(supervisor.MaxAssignedTeams) {
		return apperrors.ErrSupervisorAtCapacity
	}

	request.Status = models.ApprovalStatusAccepted
	if err := repos.IdeaRequests.Update(request); err != nil {
		return fmt.Errorf("failed to update project idea request: %w", err)
	}

	idea.Status = models.ApprovalStatusAccepted
	idea.SupervisorID = &supervisor.ID
	if err := repos.Ideas.Update(idea); err != nil {
		return fmt.Errorf("failed to accept project idea: %w", err)
	}

	team.SupervisorID = &supervisor.ID
	if err := repos.Teams.Update(team); err != nil {
		return fmt.Errorf("failed to assign supervisor to team: %w", err)
	}

	siblings, err := repos.IdeaRequests.GetByIdeaID(idea.ID)
	if err != nil {
		return fmt.Errorf("failed to load project idea requests: %w", err)
	}
	for _, sibling := range siblings {
		if sibling.ID == request.ID || sibling.Status != models.ApprovalStatusPending {
			continue
		}
		if err := repos.IdeaRequests.Delete(sibling.ID); err != nil {
			return fmt.Errorf("failed to delete sibling project idea request: %w", err)
		}
	}

	ideas, err := repos.Ideas.GetByTeamID(team.ID)
	if err != nil {
		return fmt.Errorf("failed to load team ideas: %w", err)
	}
	for _, other := range ideas {
		if other.ID == idea.ID {
			continue
		}
		if err := deleteIdea(repos, other.ID); err != nil {
			return err
		}
	}
	return nil
}

// MarkProjectCompleted closes the accepted idea once every task of its team is completed
func (s *ProjectIdeaService) MarkProjectCompleted(ctx context.Context, caller auth.Caller, ideaID uuid.UUID) (*ProjectIdeaResponse, error) {
	sv, err := requireSupervisor(caller)
	if err != nil {
		return nil, err
	}

	batch := s.dispatcher.Batch()
	var idea *models.ProjectIdea
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		var team *models.Team
		idea, team, err = lockIdeaTeam(repos, ideaID)
		if err != nil {
			return err
		}
		if !team.IsSupervisedBy(sv.ID()) {
			return apperrors.ErrNotTeamSupervisor
		}
		if idea.Status != models.ApprovalStatusAccepted {
			return apperrors.ErrIdeaNotAccepted
		}
		if idea.IsCompleted {
			return apperrors.ErrProjectAlreadyCompleted
		}

		tasks, err := repos.Tasks.List(repository.TaskFilter{TeamIDs: []uuid.UUID{team.ID}})
		if err != nil {
			return fmt.Errorf("failed to load team tasks: %w", err)
		}
		for _, task := range tasks {
			if task.Status != models.TaskStatusCompleted {
				return apperrors.ErrProjectHasOpenTasks
			}
		}

		now := s.now()
		idea.IsCompleted = true
		idea.CompletedAt = &now
		if err := repos.Ideas.Update(idea); err != nil {
			return fmt.Errorf("failed to complete project: %w", err)
		}

		members, err := repos.Students.GetByTeamID(team.ID)
		if err != nil {
			return fmt.Errorf("failed to load team members: %w", err)
		}
		body := fmt.Sprintf("%q was marked as completed.", idea.Title)
		for _, member := range members {
			if err := batch.Record(repos.Notifications, member.ID, models.RoleStudent, "Project completed", body); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	batch.Send(ctx)
	return toProjectIdeaResponse(idea), nil
}

// ListTeamIdeas returns the ideas of the calling student's team
func (s *ProjectIdeaService) ListTeamIdeas(ctx context.Context, caller auth.Caller) ([]ProjectIdeaResponse, error) {
	sc, err := requireStudent(caller)
	if err != nil {
		return nil, err
	}

	repos := s.store.Repositories(ctx)
	team, err := studentTeam(repos, sc.ID())
	if err != nil {
		return nil, err
	}
	ideas, err := repos.Ideas.GetByTeamID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project ideas: %w", err)
	}

	out := make([]ProjectIdeaResponse, 0, len(ideas))
	for i := range ideas {
		out = append(out, *toProjectIdeaResponse(&ideas[i]))
	}
	return out, nil
}

// GetIdea returns an idea visible to the caller: members of its team, its
// supervisor, and supervisors it was sent to
func (s *ProjectIdeaService) GetIdea(ctx context.Context, caller auth.Caller, ideaID uuid.UUID) (*ProjectIdeaResponse, error) {
	repos := s.store.Repositories(ctx)
	idea, err := repos.Ideas.GetByID(ideaID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrProjectIdeaNotFound, "get project idea")
	}

	switch c := caller.(type) {
	case *auth.StudentCaller:
		if _, err := ownedIdea(repos, c.ID(), ideaID); err != nil {
			return nil, err
		}
	case *auth.SupervisorCaller:
		if idea.SupervisorID == nil || *idea.SupervisorID != c.ID() {
			if _, err := repos.IdeaRequests.GetPending(idea.ID, c.ID()); err != nil {
				return nil, lookupError(err, apperrors.ErrProjectIdeaNotFound, "check project idea access")
			}
		}
	}
	return toProjectIdeaResponse(idea), nil
}

// ListIdeaRequests returns the supervision requests of an idea of the calling student's team
func (s *ProjectIdeaService) ListIdeaRequests(ctx context.Context, caller auth.Caller, ideaID uuid.UUID) ([]ProjectIdeaRequestResponse, error) {
	sc, err := requireStudent(caller)
	if err != nil {
		return nil, err
	}

	repos := s.store.Repositories(ctx)
	if _, err := ownedIdea(repos, sc.ID(), ideaID); err != nil {
		return nil, err
	}
	requests, err := repos.IdeaRequests.GetByIdeaID(ideaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project idea requests: %w", err)
	}
	return toProjectIdeaRequestResponses(requests), nil
}

// ListSupervisionRequests returns the requests addressed to the calling supervisor
func (s *ProjectIdeaService) ListSupervisionRequests(ctx context.Context, caller auth.Caller, status *models.ApprovalStatus) ([]ProjectIdeaRequestResponse, error) {
	sv, err := requireSupervisor(caller)
	if err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown approval status")
	}

	requests, err := s.store.Repositories(ctx).IdeaRequests.GetBySupervisorID(sv.ID(), status)
	if err != nil {
		return nil, fmt.Errorf("failed to list project idea requests: %w", err)
	}
	return toProjectIdeaRequestResponses(requests), nil
}

// ListSupervisors returns supervisors with their free capacity
func (s *ProjectIdeaService) ListSupervisors(ctx context.Context, page, pageSize int) (*SupervisorListResponse, error) {
	page, pageSize, limit, offset := pageBounds(page, pageSize)

	repos := s.store.Repositories(ctx)
	supervisors, total, err := repos.Supervisors.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list supervisors: %w", err)
	}

	resp := &SupervisorListResponse{Supervisors: make([]SupervisorResponse, 0, len(supervisors)), Total: total, Page: page, PageSize: pageSize}
	for i := range supervisors {
		sup := &supervisors[i]
		assigned, err := repos.Teams.CountBySupervisorID(sup.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count supervised teams: %w", err)
		}
		available := int64(sup.MaxAssignedTeams) - assigned
		if available < 0 {
			available = 0
		}
		resp.Supervisors = append(resp.Supervisors, SupervisorResponse{
			ID:                sup.ID,
			FirstName:         sup.FirstName,
			LastName:          sup.LastName,
			Email:             sup.Email,
			Department:        sup.Department,
			Specialization:    sup.Specialization,
			MaxAssignedTeams:  sup.MaxAssignedTeams,
			AssignedTeams:     assigned,
			AvailableCapacity: available,
		})
	}
	return resp, nil
}

func toProjectIdeaRequestResponses(requests []models.ProjectIdeaRequest) []ProjectIdeaRequestResponse {
	out := make([]ProjectIdeaRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, *toProjectIdeaRequestResponse(&requests[i]))
	}
	return out
}

// studentTeam reloads the student and returns their team
func studentTeam(repos *repository.Repositories, studentID uuid.UUID) (*models.Team, error) {
	student, err := repos.Students.GetByID(studentID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrStudentNotFound, "load student")
	}
	if student.TeamID == nil {
		return nil, apperrors.ErrStudentHasNoTeam
	}
	team, err := repos.Teams.GetByID(*student.TeamID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "load team")
	}
	return team, nil
}

// ownedIdea loads an idea that belongs to the student's team
// lockIdeaTeam locks the team owning an idea and then the idea. Every idea mutation takes
// the team row first, so transactions touching ideas of one team queue on a single lock.
func lockIdeaTeam(repos *repository.Repositories, ideaID uuid.UUID) (*models.ProjectIdea, *models.Team, error) {
	idea, err := repos.Ideas.GetByID(ideaID)
	if err != nil {
		return nil, nil, lookupError(err, apperrors.ErrProjectIdeaNotFound, "load project idea")
	}
	team, err := repos.Teams.GetByIDForUpdate(idea.TeamID)
	if err != nil {
		return nil, nil, lookupError(err, apperrors.ErrTeamNotFound, "load team")
	}
	// The idea may have been deleted while waiting for the team
	idea, err = repos.Ideas.GetByIDForUpdate(ideaID)
	if err != nil {
		return nil, nil, lookupError(err, apperrors.ErrProjectIdeaNotFound, "load project idea")
	}
	return idea, team, nil
}

// lockOwnedIdea is lockIdeaTeam restricted to ideas of the student's team
func lockOwnedIdea(repos *repository.Repositories, studentID, ideaID uuid.UUID) (*models.ProjectIdea, *models.Team, error) {
	idea, team, err := lockIdeaTeam(repos, ideaID)
	if err != nil {
		return nil, nil, err
	}
	student, err := repos.Students.GetByID(studentID)
	if err != nil {
		return nil, nil, lookupError(err, apperrors.ErrStudentNotFound, "load student")
	}
	if !student.IsMemberOf(team.ID) {
		return nil, nil, apperrors.ErrNotTeamMember
	}
	return idea, team, nil
}

func ownedIdea(repos *repository.Repositories, studentID, ideaID uuid.UUID) (*models.ProjectIdea, error) {
	idea, err := repos.Ideas.GetByID(ideaID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrProjectIdeaNotFound, "load project idea")
	}
	student, err := repos.Students.GetByID(studentID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrStudentNotFound, "load student")
	}
	if !student.IsMemberOf(idea.TeamID) {
		return nil, apperrors.ErrNotTeamMember
	}
	return idea, nil
}
