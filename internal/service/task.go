package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

// TaskService drives the task review loop between supervisors and assignees
type TaskService struct {
	store      repository.Store
	dispatcher *notification.Dispatcher
	validator  *validator.Validate
	now        func() time.Time
}

// NewTaskService creates a new task service
func NewTaskService(store repository.Store, dispatcher *notification.Dispatcher, validator *validator.Validate) *TaskService {
	return &TaskService{
		store:      store,
		dispatcher: dispatcher,
		validator:  validator,
		now:        time.Now,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	TeamID      uuid.UUID  `json:"team_id" validate:"required"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"max=5000"`
	Deadline    time.Time  `json:"deadline" validate:"required"`
}

// ChangeTaskStatusRequest moves a task within the student-owned states
type ChangeTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" validate:"required"`
}

// SubmitTaskRequest carries a task deliverable
type SubmitTaskRequest struct {
	FileReference string `json:"file_reference" validate:"max=500"`
	RepoLink      string `json:"repo_link" validate:"omitempty,url,max=500"`
	Notes         string `json:"notes" validate:"max=5000"`
}

// ReviewTaskRequest carries a supervisor's verdict on a done task
type ReviewTaskRequest struct {
	Approve         *bool  `json:"approve" validate:"required"`
	RejectionReason string `json:"rejection_reason" validate:"max=2000"`
}

// ReassignTaskRequest names the new assignee of a task
type ReassignTaskRequest struct {
	AssigneeID uuid.UUID `json:"assignee_id" validate:"required"`
}

// TaskListFilter narrows task listings
type TaskListFilter struct {
	TeamID     *uuid.UUID
	AssigneeID *uuid.UUID
	Status     *models.TaskStatus
}

// CreateTask creates a backlog task in a team the calling supervisor supervises
func (s *TaskService) CreateTask(ctx context.Context, caller auth.Caller, req *CreateTaskRequest) (*TaskResponse, error) {
	sv, err := requireSupervisor(caller)
	if err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if !req.Deadline.After(s.now()) {
		return nil, apperrors.ErrDeadlineNotInFuture
	}

	batch := s.dispatcher.Batch()
	var task *models.Task
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		team, err := repos.Teams.GetByID(req.TeamID)
		if err != nil {
			return lookupError(err, apperrors.ErrTeamNotFound, "load team")
		}
		if !team.IsSupervisedBy(sv.ID()) {
			return apperrors.ErrNotTeamSupervisor
		}

		if _, err := repos.Ideas.GetAcceptedByTeamID(team.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrIdeaNotAccepted
			}
			return fmt.Errorf("failed to load accepted idea: %w", err)
		}

		if req.AssigneeID != nil {
			if _, err := teamMember(repos, *req.AssigneeID, team.ID); err != nil {
				return err
			}
		}

		task = &models.Task{
			TeamID:       team.ID,
			SupervisorID: sv.ID(),
			AssigneeID:   req.AssigneeID,
			Title:        req.Title,
			Description:  req.Description,
			Deadline:     req.Deadline,
			Status:       models.TaskStatusBacklog,
		}
		if err := repos.Tasks.Create(task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		if task.AssigneeID == nil {
			return nil
		}
		body := fmt.Sprintf("You were assigned %q, due %s.", task.Title, formatTime(task.Deadline))
		return batch.Record(repos.Notifications, *task.AssigneeID, models.RoleStudent, "New task assigned", body)
	})
	if err != nil {
		return nil, err
	}

	batch.Send(ctx)
	return toTaskResponse(task), nil
}

// ChangeStatus moves a task among backlog, in progress and done on behalf of its assignee
func (s *TaskService) ChangeStatus(ctx context.Context, caller auth.Caller, taskID uuid.UUID, req *ChangeTaskStatusRequest) (*TaskResponse, error) {
	sc, err := requireStudent(caller)
	if err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidTaskStatus
	}

	var task *models.Task
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		task, err = repos.Tasks.GetByIDForUpdate(taskID)
		if err != nil {
			return lookupError(err, apperrors.ErrTaskNotFound, "load task")
		}
		if !task.IsAssignedTo(sc.ID()) {
			return apperrors.ErrNotTaskAssignee
		}

		switch {
		case req.Status.IsReviewStatus():
			return apperrors.ErrReviewStatusForbidden
		case task.Status.IsReviewStatus():
			return apperrors.ErrTaskLockedForStudent
		case req.Status == models.TaskStatusDone && task.Status != models.TaskStatusInProgress:
			return apperrors.ErrInvalidTaskTransition
		case req.Status == task.Status:
			return apperrors.ErrTaskStatusUnchanged
		}

		task.Status = req.Status
		if err := repos.Tasks.Update(task); err != nil {
			return fmt.Errorf("failed to update task status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.withSubmission(ctx, task)
}

// SubmitTask stores the assignee's deliverable and marks the task done
func (s *TaskService) SubmitTask(ctx context.Context, caller auth.Caller, taskID uuid.UUID, req *SubmitTaskRequest) (*TaskResponse, error) {
	sc, err := requireStudent(caller)
	if err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	submission := &models.TaskSubmission{
		SubmittedByID: sc.ID(),
		FileReference: strings.TrimSpace(req.FileReference),
		RepoLink:      strings.TrimSpace(req.RepoLink),
		Notes:         req.Notes,
	}
	if !submission.HasContent() {
		return nil, apperrors.ErrSubmissionContentEmpty
	}

	batch := s.dispatcher.Batch()
	var task *models.Task
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		task, err = repos.Tasks.GetByIDForUpdate(taskID)
		if err != nil {
			return lookupError(err, apperrors.ErrTaskNotFound, "load task")
		}
		if !task.IsAssignedTo(sc.ID()) {
			return apperrors.ErrNotTaskAssignee
		}
		if task.Status != models.TaskStatusInProgress && task.Status != models.TaskStatusNeedToRevise {
			return apperrors.ErrTaskNotSubmittable
		}

		submission.TaskID = task.ID
		submission.SubmittedAt = s.now()
		if err := repos.Submissions.Upsert(submission); err != nil {
			return fmt.Errorf("failed to save task submission: %w", err)
		}

		task.Status = models.TaskStatusDone
		if err := repos.Tasks.Update(task); err != nil {
			return fmt.Errorf("failed to update task status: %w", err)
		}
		task.Submission = submission

		student, err := repos.Students.GetByID(sc.ID())
		if err != nil {
			return lookupError(err, apperrors.ErrStudentNotFound, "load student")
		}
		body := fmt.Sprintf("%s submitted %q for review.", student.FullName(), task.Title)
		return batch.Record(repos.Notifications, task.SupervisorID, models.RoleSupervisor, "Task submitted", body)
	})
	if err != nil {
		return nil, err
	}

	batch.Send(ctx)
	return toTaskResponse(task), nil
}

// ReviewTask approves a done task or sends it back for revision
func (s *TaskService) ReviewTask(ctx context.Context, caller auth.Caller, taskID uuid.UUID, req *ReviewTaskRequest) (*TaskResponse, error) {
	sv, err := requireSupervisor(caller)
	if err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(req.RejectionReason)
	if !*req.Approve && reason == "" {
		return nil, apperrors.ErrRejectionReasonMissing
	}

	batch := s.dispatcher.Batch()
	var task *models.Task
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		task, err = repos.Tasks.GetByIDForUpdate(taskID)
		if err != nil {
			return lookupError(err, apperrors.ErrTaskNotFound, "load task")
		}
		if task.SupervisorID != sv.ID() {
			return apperrors.ErrNotTaskSupervisor
		}
		if task.Status != models.TaskStatusDone {
			return apperrors.ErrTaskNotAwaitingReview
		}

		var title, body string
		if *req.Approve {
			now := s.now()
			task.Status = models.TaskStatusCompleted
			task.RejectionReason = ""
			task.CompletedAt = &now
			title, body = "Task approved", fmt.Sprintf("%q was approved.", task.Title)
		} else {
			task.Status = models.TaskStatusNeedToRevise
			task.RejectionReason = reason
			title, body = "Task needs revision", fmt.Sprintf("%q needs revision: %s", task.Title, reason)
		}
		if err := repos.Tasks.Update(task); err != nil {
			return fmt.Errorf("failed to update task status: %w", err)
		}

		if task.AssigneeID == nil {
			return nil
		}
		return batch.Record(repos.Notifications, *task.AssigneeID, models.RoleStudent, title, body)
	})
	if err != nil {
		return nil, err
	}

	batch.Send(ctx)
	return s.withSubmission(ctx, task)
}

// ReassignTask hands a task to another member of its team, keeping its status and submission
func (s *TaskService) ReassignTask(ctx context.Context, caller auth.Caller, taskID uuid.UUID, req *ReassignTaskRequest) (*TaskResponse, error) {
	sv, err := requireSupervisor(caller)
	if err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	batch := s.dispatcher.Batch()
	var task *models.Task
	err = s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		task, err = repos.Tasks.GetByIDForUpdate(taskID)
		if err != nil {
			return lookupError(err, apperrors.ErrTaskNotFound, "load task")
		}
		if task.SupervisorID != sv.ID() {
			return apperrors.ErrNotTaskSupervisor
		}
		if _, err := teamMember(repos, req.AssigneeID, task.TeamID); err != nil {
			return err
		}
		if task.IsAssignedTo(req.AssigneeID) {
			return nil
		}

		previous := task.AssigneeID
		task.AssigneeID = &req.AssigneeID
		if err := repos.Tasks.Update(task); err != nil {
			return fmt.Errorf("failed to reassign task: %w", err)
		}

		if previous != nil {
			body := fmt.Sprintf("%q was reassigned to another team member.", task.Title)
			if err := batch.Record(repos.Notifications, *previous, models.RoleStudent, "Task reassigned", body); err != nil {
				return err
			}
		}
		body := fmt.Sprintf("You were assigned %q, due %s.", task.Title, formatTime(task.Deadline))
		return batch.Record(repos.Notifications, req.AssigneeID, models.RoleStudent, "New task assigned", body)
	})
	if err != nil {
		return nil, err
	}

	batch.Send(ctx)
	return s.withSubmission(ctx, task)
}

// DeleteTask removes a task and its submission
func (s *TaskService) DeleteTask(ctx context.Context, caller auth.Caller, taskID uuid.UUID) error {
	sv, err := requireSupervisor(caller)
	if err != nil {
		return err
	}

	return s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		task, err := repos.Tasks.GetByIDForUpdate(taskID)
		if err != nil {
			return lookupError(err, apperrors.ErrTaskNotFound, "load task")
		}
		if task.SupervisorID != sv.ID() {
			return apperrors.ErrNotTaskSupervisor
		}
		return deleteTask(repos, task.ID)
	})
}

// GetTask returns a task with its submission if the caller is party to it
func (s *TaskService) GetTask(ctx context.Context, caller auth.Caller, taskID uuid.UUID) (*TaskResponse, error) {
	repos := s.store.Repositories(ctx)
	task, err := repos.Tasks.GetByID(taskID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTaskNotFound, "get task")
	}

	switch c := caller.(type) {
	case *auth.StudentCaller:
		student, err := repos.Students.GetByID(c.ID())
		if err != nil {
			return nil, lookupError(err, apperrors.ErrStudentNotFound, "load student")
		}
		if !student.IsMemberOf(task.TeamID) {
			return nil, apperrors.ErrTaskNotFound
		}
	case *auth.SupervisorCaller:
		if task.SupervisorID != c.ID() {
			return nil, apperrors.ErrTaskNotFound
		}
	}
	return toTaskResponse(task), nil
}

// ListTasks returns the tasks the caller is party to: students see their team's
// tasks, supervisors the tasks they created
func (s *TaskService) ListTasks(ctx context.Context, caller auth.Caller, filter TaskListFilter) ([]TaskResponse, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, apperrors.ErrInvalidTaskStatus
	}

	repos := s.store.Repositories(ctx)
	query := repository.TaskFilter{AssigneeID: filter.AssigneeID, Status: filter.Status}

	switch c := caller.(type) {
	case *auth.StudentCaller:
		student, err := repos.Students.GetByID(c.ID())
		if err != nil {
			return nil, lookupError(err, apperrors.ErrStudentNotFound, "load student")
		}
		if filter.TeamID != nil && !student.IsMemberOf(*filter.TeamID) {
			return nil, apperrors.ErrNotTeamMember
		}
		query.TeamIDs = []uuid.UUID{}
		if student.TeamID != nil {
			query.TeamIDs = append(query.TeamIDs, *student.TeamID)
		}
	case *auth.SupervisorCaller:
		id := c.ID()
		query.SupervisorID = &id
		if filter.TeamID != nil {
			query.TeamIDs = []uuid.UUID{*filter.TeamID}
		}
	}

	tasks, err := repos.Tasks.List(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, *toTaskResponse(&tasks[i]))
	}
	return out, nil
}

// withSubmission reloads the committed task so the response carries its submission
func (s *TaskService) withSubmission(ctx context.Context, task *models.Task) (*TaskResponse, error) {
	reloaded, err := s.store.Repositories(ctx).Tasks.GetByID(task.ID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTaskNotFound, "reload task")
	}
	return toTaskResponse(reloaded), nil
}

// teamMember loads a student that must belong to the team
func teamMember(repos *repository.Repositories, studentID, teamID uuid.UUID) (*models.Student, error) {
	student, err := repos.Students.GetByID(studentID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAssigneeNotFound, "load assignee")
	}
	if !student.IsMemberOf(teamID) {
		return nil, apperrors.ErrAssigneeNotMember
	}
	return student, nil
}
