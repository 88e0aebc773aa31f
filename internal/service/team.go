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

// Join request decisions
const (
	DecisionAccept = "accept"
	DecisionReject = "reject"
)

// TeamService handles team formation and membership
type TeamService struct {
	store      repository.Store
	dispatcher *notification.Dispatcher
	validator  *validator.Validate
	limits     Limits
	now        func() time.Time
}

// NewTeamService creates a new team service
func NewTeamService(store repository.Store, dispatcher *notification.Dispatcher, validator *validator.Validate, limits Limits) *TeamService {
	return &TeamService{
		store:      store,
		dispatcher: dispatcher,
		validator:  validator,
		limits:     limits,
		now:        time.Now,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name       string   `json:"name" validate:"required,min=1,max=100"`
	Department string   `json:"department" validate:"max=100"`
	TechStack  []string `json:"tech_stack" validate:"max=20,dive,min=1,max=50"`
}

// UpdateTeamRequest represents the request to update a team; nil fields are left unchanged
type UpdateTeamRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Department   *string  `json:"department,omitempty" validate:"omitempty,max=100"`
	TechStack    []string `json:"tech_stack,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
	IsOpenToJoin *bool    `json:"is_open_to_join,omitempty"`
}

// JoinTeamRequest represents a student's request to join a team
type JoinTeamRequest struct {
	Message string `json:"message" validate:"max=500"`
}

// RespondJoinRequest carries a member's decision on a join request
type RespondJoinRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accept reject"`
}

// TeamListFilter narrows team listings
type TeamListFilter struct {
	OpenOnly   bool
	Department string
}

// CreateTeam creates a team with the calling student as its only member
func (s *TeamService) CreateTeam(ctx context.Context, caller auth.Caller, req *CreateTeamRequest) (*TeamResponse, error) {
	sc, err := requireStudent(caller)
	if err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	var team *models.Team
	var members []models.Student
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		student, err := repos.Students.GetByIDForUpdate(sc.ID())
		if err != nil {
			return lookupError(err, apperrors.ErrStudentNotFound, "load student")
		}
		if student.TeamID != nil {
			return apperrors.ErrStudentAlreadyInTeam
		}

		if _, err := repos.Teams.GetByName(req.Name); err == nil {
			return apperrors.ErrTeamExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing team by name: %w", err)
		}

		team = &models.Team{
			Name:         req.Name,
			Department:   req.Department,
			MaxMembers:   s.limits.TeamMaxMembers,
			IsOpenToJoin: true,
			TechStack:    req.TechStack,
		}
		if err := repos.Teams.Create(team); err != nil {
			return storeError(err, apperrors.ErrTeamExists, "create team")
		}

		if err := s.joinTeam(repos, student, team.ID); err != nil {
			return err
		}
		members = []models.Student{*student}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toTeamResponse(team, members), nil
}

// joinTeam makes the student a member and rejects their other pending join requests
func (s *TeamService) joinTeam(repos *repository.Repositories, student *models.Student, teamID uuid.UUID) error {
	student.TeamID = &teamID
	if err := repos.Students.Update(student); err != nil {
		return fmt.Errorf("failed to update student membership: %w", err)
	}

	pending, err := repos.JoinRequests.GetByStudentID(student.ID, approvalStatusPtr(models.ApprovalStatusPending))
	if err != nil {
		return fmt.Errorf("failed to load pending join requests: %w", err)
	}
	now := s.now()
	for i := range pending {
		jr := &pending[i]
		if jr.TeamID == teamID {
			continue
		}
		jr.Status = models.ApprovalStatusRejected
		jr.RespondedAt = &now
		if err := repos.JoinRequests.Update(jr); err != nil {
			return fmt.Errorf("failed to withdraw join request: %w", err)
		}
	}
	return nil
}

// RequestToJoin creates a pending join request from the calling student
func (s *TeamService) RequestToJoin(ctx context.Context, caller auth.Caller, teamID uuid.UUID, req *JoinTeamRequest) (*JoinRequestResponse, error) {
	sc, err := requireStudent(caller)
	if err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	batch := s.dispatcher.Batch()
	var request *models.TeamJoinRequest
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		team, err := repos.Teams.GetByID(teamID)
		if err != nil {
			return lookupError(err, apperrors.ErrTeamNotFound, "load team")
		}
		student, err := repos.Students.GetByIDForUpdate(sc.ID())
		if err != nil {
			return lookupError(err, apperrors.ErrStudentNotFound, "load student")
		}

		if student.IsMemberOf(team.ID) {
			return apperrors.ErrAlreadyTeamMember
		}
		if student.TeamID != nil {
			return apperrors.ErrStudentAlreadyInTeam
		}
		if !team.IsOpenToJoin {
			return apperrors.ErrTeamClosed
		}

		if _, err := repos.JoinRequests.GetPending(team.ID, student.ID); err == nil {
			return apperrors.ErrJoinRequestExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check pending join request: %w", err)
		}

		request = &models.TeamJoinRequest{
			TeamID:    team.ID,
			StudentID: student.ID,
			Message:   req.Message,
			Status:    models.ApprovalStatusPending,
		}
		if err := repos.JoinRequests.Create(request); err != nil {
			return fmt.Errorf("failed to create join request: %w", err)
		}

		members, err := repos.Students.GetByTeamID(team.ID)
		if err != nil {
			return fmt.Errorf("failed to load team members: %w", err)
		}
		body := fmt.Sprintf("%s asked to join %s.", student.FullName(), team.Name)
		for _, member := range members {
			if err := batch.Record(repos.Notifications, member.ID, models.RoleStudent, "New join request", body); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	batch.Send(ctx)
	return toJoinRequestResponse(request), nil
}

// RespondToJoinRequest lets a member of the target team accept or reject a pending request
func (s *TeamService) RespondToJoinRequest(ctx context.Context, caller auth.Caller, requestID uuid.UUID, req *RespondJoinRequest) (*JoinRequestResponse, error) {
	sc, err := requireStudent(caller)
	if err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	batch := s.dispatcher.Batch()
	var request *models.TeamJoinRequest
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		request, err = repos.JoinRequests.GetByID(requestID)
		if err != nil {
			return lookupError(err, apperrors.ErrJoinRequestNotFound, "load join request")
		}

		responder, err := repos.Students.GetByID(sc.ID())
		if err != nil {
			return lookupError(err, apperrors.ErrStudentNotFound, "load student")
		}
		if !responder.IsMemberOf(request.TeamID) {
			return apperrors.ErrNotTeamMember
		}
		if request.Status != models.ApprovalStatusPending {
			return apperrors.ErrJoinRequestResolved
		}

		// Lock order: team, applicant, request
		team, err := repos.Teams.GetByIDForUpdate(request.TeamID)
		if err != nil {
			return lookupError(err, apperrors.ErrTeamNotFound, "load team")
		}
		var applicant *models.Student
		if req.Decision == DecisionAccept {
			applicant, err = repos.Students.GetByIDForUpdate(request.StudentID)
			if err != nil {
				return lookupError(err, apperrors.ErrStudentNotFound, "load applicant")
			}
		}
		request, err = repos.JoinRequests.GetByIDForUpdate(requestID)
		if err != nil {
			return lookupError(err, apperrors.ErrJoinRequestNotFound, "load join request")
		}
		if request.Status != models.ApprovalStatusPending {
			return apperrors.ErrJoinRequestResolved
		}

		now := s.now()
		request.RespondedByID = &responder.ID
		request.RespondedAt = &now

		title, body := "Join request rejected", fmt.Sprintf("Your request to join %s was rejected.", team.Name)
		if req.Decision == DecisionAccept {
			if err := s.admit(repos, team, applicant); err != nil {
				return err
			}
			request.Status = models.ApprovalStatusAccepted
			title, body = "Join request accepted", fmt.Sprintf("You are now a member of %s.", team.Name)
		} else {
			request.Status = models.ApprovalStatusRejected
		}

		if err := repos.JoinRequests.Update(request); err != nil {
			return fmt.Errorf("failed to update join request: %w", err)
		}
		return batch.Record(repos.Notifications, request.StudentID, models.RoleStudent, title, body)
	})
	if err != nil {
		return nil, err
	}

	batch.Send(ctx)
	return toJoinRequestResponse(request), nil
}

// admit adds the locked applicant to the locked team, closing it once it is full
func (s *TeamService) admit(repos *repository.Repositories, team *models.Team, applicant *models.Student) error {
	if applicant.TeamID != nil {
		return apperrors.ErrStudentAlreadyInTeam
	}

	count, err := repos.Students.CountByTeamID(team.ID)
	if err != nil {
		return fmt.Errorf("failed to count team members: %w", err)
	}
	if count >= int64(team.MaxMembers) {
		return apperrors.ErrTeamFull
	}

	if err := s.joinTeam(repos, applicant, team.ID); err != nil {
		return err
	}

	if count+1 >= int64(team.MaxMembers) && team.IsOpenToJoin {
		team.IsOpenToJoin = false
		if err := repos.Teams.Update(team); err != nil {
			return fmt.Errorf("failed to close team: %w", err)
		}
	}
	return nil
}

// UpdateTeam edits a team's profile; members only
func (s *TeamService) UpdateTeam(ctx context.Context, caller auth.Caller, teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	sc, err := requireStudent(caller)
	if err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	var team *models.Team
	var members []models.Student
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		team, err = repos.Teams.GetByIDForUpdate(teamID)
		if err != nil {
			return lookupError(err, apperrors.ErrTeamNotFound, "load team")
		}
		if err := s.requireMember(repos, sc.ID(), team.ID); err != nil {
			return err
		}

		if req.Name != nil && *req.Name != team.Name {
			if _, err := repos.Teams.GetByName(*req.Name); err == nil {
				return apperrors.ErrTeamExists
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check existing team by name: %w", err)
			}
			team.Name = *req.Name
		}
		if req.Department != nil {
			team.Department = *req.Department
		}
		if req.TechStack != nil {
			team.TechStack = req.TechStack
		}

		members, err = repos.Students.GetByTeamID(team.ID)
		if err != nil {
			return fmt.Errorf("failed to load team members: %w", err)
		}
		if req.IsOpenToJoin != nil {
			if *req.IsOpenToJoin && len(members) >= team.MaxMembers {
				return apperrors.ErrTeamFull
			}
			team.IsOpenToJoin = *req.IsOpenToJoin
		}

		if err := repos.Teams.Update(team); err != nil {
			return storeError(err, apperrors.ErrTeamExists, "update team")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toTeamResponse(team, members), nil
}

// GetTeam returns a team with its members
func (s *TeamService) GetTeam(ctx context.Context, teamID uuid.UUID) (*TeamResponse, error) {
	repos := s.store.Repositories(ctx)
	team, err := repos.Teams.GetByID(teamID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "get team")
	}
	members, err := repos.Students.GetByTeamID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}
	return toTeamResponse(team, members), nil
}

// ListTeams returns teams matching the filter with pagination
func (s *TeamService) ListTeams(ctx context.Context, filter TeamListFilter, page, pageSize int) (*TeamListResponse, error) {
	page, pageSize, limit, offset := pageBounds(page, pageSize)

	repos := s.store.Repositories(ctx)
	teams, total, err := repos.Teams.List(repository.TeamFilter{OpenOnly: filter.OpenOnly, Department: filter.Department}, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	resp := &TeamListResponse{Teams: make([]TeamResponse, 0, len(teams)), Total: total, Page: page, PageSize: pageSize}
	for i := range teams {
		members, err := repos.Students.GetByTeamID(teams[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load team members: %w", err)
		}
		resp.Teams = append(resp.Teams, *toTeamResponse(&teams[i], members))
	}
	return resp, nil
}

// ListJoinRequests returns a team's join requests; members only
func (s *TeamService) ListJoinRequests(ctx context.Context, caller auth.Caller, teamID uuid.UUID, status *models.ApprovalStatus) ([]JoinRequestResponse, error) {
	sc, err := requireStudent(caller)
	if err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown approval status")
	}

	repos := s.store.Repositories(ctx)
	if _, err := repos.Teams.GetByID(teamID); err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "load team")
	}
	if err := s.requireMember(repos, sc.ID(), teamID); err != nil {
		return nil, err
	}

	requests, err := repos.JoinRequests.GetByTeamID(teamID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	return toJoinRequestResponses(requests), nil
}

// ListMyJoinRequests returns the join requests the calling student authored
func (s *TeamService) ListMyJoinRequests(ctx context.Context, caller auth.Caller) ([]JoinRequestResponse, error) {
	sc, err := requireStudent(caller)
	if err != nil {
		return nil, err
	}

	requests, err := s.store.Repositories(ctx).JoinRequests.GetByStudentID(sc.ID(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	return toJoinRequestResponses(requests), nil
}

func toJoinRequestResponses(requests []models.TeamJoinRequest) []JoinRequestResponse {
	out := make([]JoinRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, *toJoinRequestResponse(&requests[i]))
	}
	return out
}

// DeleteTeam deletes a team and everything it owns; members only
func (s *TeamService) DeleteTeam(ctx context.Context, caller auth.Caller, teamID uuid.UUID) error {
	sc, err := requireStudent(caller)
	if err != nil {
		return err
	}

	batch := s.dispatcher.Batch()
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		team, err := repos.Teams.GetByIDForUpdate(teamID)
		if err != nil {
			return lookupError(err, apperrors.ErrTeamNotFound, "load team")
		}
		if err := s.requireMember(repos, sc.ID(), team.ID); err != nil {
			return err
		}

		members, err := repos.Students.GetByTeamID(team.ID)
		if err != nil {
			return fmt.Errorf("failed to load team members: %w", err)
		}
		body := fmt.Sprintf("Team %s was deleted.", team.Name)
		for _, member := range members {
			if member.ID == sc.ID() {
				continue
			}
			if err := batch.Record(repos.Notifications, member.ID, models.RoleStudent, "Team deleted", body); err != nil {
				return err
			}
		}
		if team.SupervisorID != nil {
			if err := batch.Record(repos.Notifications, *team.SupervisorID, models.RoleSupervisor, "Team deleted", body); err != nil {
				return err
			}
		}

		return deleteTeamCascade(repos, team.ID)
	})
	if err != nil {
		return err
	}

	batch.Send(ctx)
	return nil
}

// LeaveTeam removes the calling student from their team; the last member leaving deletes the team
func (s *TeamService) LeaveTeam(ctx context.Context, caller auth.Caller) error {
	sc, err := requireStudent(caller)
	if err != nil {
		return err
	}

	return s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		student, err := repos.Students.GetByIDForUpdate(sc.ID())
		if err != nil {
			return lookupError(err, apperrors.ErrStudentNotFound, "load student")
		}
		if student.TeamID == nil {
			return apperrors.ErrStudentHasNoTeam
		}
		return removeFromTeam(repos, student)
	})
}

// DeleteStudent deletes the calling student's account
func (s *TeamService) DeleteStudent(ctx context.Context, caller auth.Caller) error {
	sc, err := requireStudent(caller)
	if err != nil {
		return err
	}

	return s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		student, err := repos.Students.GetByIDForUpdate(sc.ID())
		if err != nil {
			return lookupError(err, apperrors.ErrStudentNotFound, "load student")
		}
		if student.TeamID != nil {
			if err := removeFromTeam(repos, student); err != nil {
				return err
			}
		}
		if err := repos.JoinRequests.DeleteByStudentID(student.ID); err != nil {
			return fmt.Errorf("failed to delete join requests: %w", err)
		}
		if err := repos.Notifications.DeleteByRecipientID(student.ID); err != nil {
			return fmt.Errorf("failed to delete notifications: %w", err)
		}
		if err := repos.Students.Delete(student.ID); err != nil {
			return fmt.Errorf("failed to delete student: %w", err)
		}
		return nil
	})
}

// DeleteSupervisor deletes the calling supervisor's account. Teams left without
// students are deleted; the rest stay unsupervised and their unfinished idea returns to pending.
func (s *TeamService) DeleteSupervisor(ctx context.Context, caller auth.Caller) error {
	sv, err := requireSupervisor(caller)
	if err != nil {
		return err
	}

	batch := s.dispatcher.Batch()
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		supervisor, err := repos.Supervisors.GetByIDForUpdate(sv.ID())
		if err != nil {
			return lookupError(err, apperrors.ErrSupervisorNotFound, "load supervisor")
		}

		teams, err := repos.Teams.GetBySupervisorID(supervisor.ID)
		if err != nil {
			return fmt.Errorf("failed to load supervised teams: %w", err)
		}
		for i := range teams {
			team := &teams[i]
			members, err := repos.Students.GetByTeamID(team.ID)
			if err != nil {
				return fmt.Errorf("failed to load team members: %w", err)
			}
			if len(members) == 0 {
				if err := deleteTeamCascade(repos, team.ID); err != nil {
					return err
				}
				continue
			}

			team.SupervisorID = nil
			if err := repos.Teams.Update(team); err != nil {
				return fmt.Errorf("failed to detach supervisor from team: %w", err)
			}
			body := fmt.Sprintf("%s no longer supervises %s. Your project idea is pending again.", supervisor.FullName(), team.Name)
			for _, member := range members {
				if err := batch.Record(repos.Notifications, member.ID, models.RoleStudent, "Supervisor removed", body); err != nil {
					return err
				}
			}
		}

		tasks, err := repos.Tasks.List(repository.TaskFilter{SupervisorID: &supervisor.ID})
		if err != nil {
			return fmt.Errorf("failed to load supervisor tasks: %w", err)
		}
		for _, task := range tasks {
			if err := deleteTask(repos, task.ID); err != nil {
				return err
			}
		}

		if err := repos.IdeaRequests.DeleteBySupervisorID(supervisor.ID); err != nil {
			return fmt.Errorf("failed to delete project idea requests: %w", err)
		}

		ideas, err := repos.Ideas.GetBySupervisorID(supervisor.ID)
		if err != nil {
			return fmt.Errorf("failed to load supervised ideas: %w", err)
		}
		// Unfinished ideas go back to pending so the team can ask another supervisor.
		// Completed projects keep their accepted state.
		for i := range ideas {
			ideas[i].SupervisorID = nil
			if !ideas[i].IsCompleted {
				ideas[i].Status = models.ApprovalStatusPending
			}
			if err := repos.Ideas.Update(&ideas[i]); err != nil {
				return fmt.Errorf("failed to detach supervisor from idea: %w", err)
			}
		}

		if err := repos.Notifications.DeleteByRecipientID(supervisor.ID); err != nil {
			return fmt.Errorf("failed to delete notifications: %w", err)
		}
		if err := repos.Supervisors.Delete(supervisor.ID); err != nil {
			return fmt.Errorf("failed to delete supervisor: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	batch.Send(ctx)
	return nil
}

func (s *TeamService) requireMember(repos *repository.Repositories, studentID, teamID uuid.UUID) error {
	student, err := repos.Students.GetByID(studentID)
	if err != nil {
		return lookupError(err, apperrors.ErrStudentNotFound, "load student")
	}
	if !student.IsMemberOf(teamID) {
		return apperrors.ErrNotTeamMember
	}
	return nil
}

// removeFromTeam detaches the student from their team and unassigns their tasks.
// The last member leaving deletes the team. A team closed at capacity stays closed;
// members reopen it through UpdateTeam.
func removeFromTeam(repos *repository.Repositories, student *models.Student) error {
	teamID := *student.TeamID

	count, err := repos.Students.CountByTeamID(teamID)
	if err != nil {
		return fmt.Errorf("failed to count team members: %w", err)
	}
	if count <= 1 {
		return deleteTeamCascade(repos, teamID)
	}

	tasks, err := repos.Tasks.List(repository.TaskFilter{TeamIDs: []uuid.UUID{teamID}, AssigneeID: &student.ID})
	if err != nil {
		return fmt.Errorf("failed to load assigned tasks: %w", err)
	}
	for i := range tasks {
		tasks[i].AssigneeID = nil
		if err := repos.Tasks.Update(&tasks[i]); err != nil {
			return fmt.Errorf("failed to unassign task: %w", err)
		}
	}

	student.TeamID = nil
	if err := repos.Students.Update(student); err != nil {
		return fmt.Errorf("failed to update student membership: %w", err)
	}
	return nil
}

// deleteTeamCascade deletes a team with its tasks, ideas, idea requests and join
// requests, and releases its members
func deleteTeamCascade(repos *repository.Repositories, teamID uuid.UUID) error {
	tasks, err := repos.Tasks.List(repository.TaskFilter{TeamIDs: []uuid.UUID{teamID}})
	if err != nil {
		return fmt.Errorf("failed to load team tasks: %w", err)
	}
	for _, task := range tasks {
		if err := deleteTask(repos, task.ID); err != nil {
			return err
		}
	}

	ideas, err := repos.Ideas.GetByTeamID(teamID)
	if err != nil {
		return fmt.Errorf("failed to load team ideas: %w", err)
	}
	for _, idea := range ideas {
		if err := deleteIdea(repos, idea.ID); err != nil {
			return err
		}
	}

	if err := repos.JoinRequests.DeleteByTeamID(teamID); err != nil {
		return fmt.Errorf("failed to delete join requests: %w", err)
	}

	members, err := repos.Students.GetByTeamID(teamID)
	if err != nil {
		return fmt.Errorf("failed to load team members: %w", err)
	}
	for i := range members {
		members[i].TeamID = nil
		if err := repos.Students.Update(&members[i]); err != nil {
			return fmt.Errorf("failed to release team member: %w", err)
		}
	}

	if err := repos.Teams.Delete(teamID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func deleteIdea(repos *repository.Repositories, ideaID uuid.UUID) error {
	if err := repos.IdeaRequests.DeleteByIdeaID(ideaID); err != nil {
		return fmt.Errorf("failed to delete project idea requests: %w", err)
	}
	if err := repos.Ideas.Delete(ideaID); err != nil {
		return fmt.Errorf("failed to delete project idea: %w", err)
	}
	return nil
}

func deleteTask(repos *repository.Repositories, taskID uuid.UUID) error {
	if err := repos.Submissions.DeleteByTaskID(taskID); err != nil {
		return fmt.Errorf("failed to delete task submission: %w", err)
	}
	if err := repos.Tasks.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
