package service_test

import (
	"errors"
	"testing"
	"time"

	"graduation-portal-backend/internal/database/models"
	apperrors "graduation-portal-backend/internal/errors"
	"graduation-portal-backend/internal/mocks"
	"graduation-portal-backend/internal/notification"
	"graduation-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TaskServiceTestSuite struct {
	workflowSuite
	project supervisedProject
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}

func (s *TaskServiceTestSuite) SetupTest() {
	s.workflowSuite.SetupTest()
	s.project = s.supervisedProject("Alpha")
}

func (s *TaskServiceTestSuite) changeStatus(student *models.Student, taskID uuid.UUID, status models.TaskStatus) (*service.TaskResponse, error) {
	return s.tasks.ChangeStatus(s.ctx, asStudent(student), taskID, &service.ChangeTaskStatusRequest{Status: status})
}

func (s *TaskServiceTestSuite) TestReviewLoopScenario() {
	p := s.project
	task := s.createTask(p, p.member, "Literature review")
	assert.Equal(s.T(), models.TaskStatusBacklog, task.Status)
	assert.Contains(s.T(), s.notificationTitles(p.member.ID), "New task assigned")

	task, err := s.changeStatus(p.member, task.ID, models.TaskStatusInProgress)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.TaskStatusInProgress, task.Status)

	task, err = s.tasks.SubmitTask(s.ctx, asStudent(p.member), task.ID, &service.SubmitTaskRequest{RepoLink: "https://git.example.edu/alpha/v1"})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.TaskStatusDone, task.Status)
	require.NotNil(s.T(), task.Submission)
	assert.Equal(s.T(), "https://git.example.edu/alpha/v1", task.Submission.RepoLink)
	assert.Contains(s.T(), s.notificationTitles(p.supervisor.ID), "Task submitted")

	task, err = s.tasks.ReviewTask(s.ctx, asSupervisor(p.supervisor), task.ID, &service.ReviewTaskRequest{
		Approve:         boolPtr(false),
		RejectionReason: "missing references",
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.TaskStatusNeedToRevise, task.Status)
	assert.Equal(s.T(), "missing references", task.RejectionReason)
	assert.Contains(s.T(), s.notificationTitles(p.member.ID), "Task needs revision")

	task, err = s.tasks.SubmitTask(s.ctx, asStudent(p.member), task.ID, &service.SubmitTaskRequest{RepoLink: "https://git.example.edu/alpha/v2", Notes: "added references"})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.TaskStatusDone, task.Status)
	assert.Equal(s.T(), "missing references", task.RejectionReason)

	task, err = s.tasks.ReviewTask(s.ctx, asSupervisor(p.supervisor), task.ID, &service.ReviewTaskRequest{Approve: boolPtr(true)})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.TaskStatusCompleted, task.Status)
	assert.Empty(s.T(), task.RejectionReason)
	assert.NotNil(s.T(), task.CompletedAt)
	require.NotNil(s.T(), task.Submission)
	assert.Equal(s.T(), "https://git.example.edu/alpha/v2", task.Submission.RepoLink)
	assert.Contains(s.T(), s.notificationTitles(p.member.ID), "Task approved")

	submission, err := s.repos().Submissions.GetByTaskID(task.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "added references", submission.Notes)
}

func (s *TaskServiceTestSuite) TestCreateTaskGuards() {
	p := s.project
	stranger := s.newSupervisor("Stranger", 4)
	outsider := s.newStudent("Outsider")
	future := time.Now().Add(24 * time.Hour)

	testCases := []struct {
		name    string
		caller  *models.Supervisor
		req     service.CreateTaskRequest
		wantErr error
	}{
		{
			name:    "deadline in the past",
			caller:  p.supervisor,
			req:     service.CreateTaskRequest{TeamID: p.teamID, Title: "Late", Deadline: time.Now().Add(-time.Hour)},
			wantErr: apperrors.ErrDeadlineNotInFuture,
		},
		{
			name:    "not the team supervisor",
			caller:  stranger,
			req:     service.CreateTaskRequest{TeamID: p.teamID, Title: "Foreign", Deadline: future},
			wantErr: apperrors.ErrNotTeamSupervisor,
		},
		{
			name:    "assignee outside the team",
			caller:  p.supervisor,
			req:     service.CreateTaskRequest{TeamID: p.teamID, Title: "Wrong", Deadline: future, AssigneeID: &outsider.ID},
			wantErr: apperrors.ErrAssigneeNotMember,
		},
		{
			name:    "unknown team",
			caller:  p.supervisor,
			req:     service.CreateTaskRequest{TeamID: uuid.New(), Title: "Nowhere", Deadline: future},
			wantErr: apperrors.ErrTeamNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := tc.req
			_, err := s.tasks.CreateTask(s.ctx, asSupervisor(tc.caller), &req)
			assert.ErrorIs(s.T(), err, tc.wantErr)
		})
	}

	_, err := s.tasks.CreateTask(s.ctx, asStudent(p.owner), &service.CreateTaskRequest{TeamID: p.teamID, Title: "Self", Deadline: future})
	assert.ErrorIs(s.T(), err, apperrors.ErrSupervisorRoleRequired)

	task, err := s.tasks.CreateTask(s.ctx, asSupervisor(p.supervisor), &service.CreateTaskRequest{TeamID: p.teamID, Title: "Unassigned", Deadline: future})
	require.NoError(s.T(), err)
	assert.Nil(s.T(), task.AssigneeID)
}

func (s *TaskServiceTestSuite) TestCreateTaskRequiresAcceptedIdea() {
	p := s.project
	require.NoError(s.T(), s.ideas.DeleteIdea(s.ctx, asStudent(p.owner), p.ideaID))

	_, err := s.tasks.CreateTask(s.ctx, asSupervisor(p.supervisor), &service.CreateTaskRequest{
		TeamID:   p.teamID,
		Title:    "Orphan",
		Deadline: time.Now().Add(time.Hour),
	})
	assert.ErrorIs(s.T(), err, apperrors.ErrIdeaNotAccepted)
}

func (s *TaskServiceTestSuite) TestStudentCannotSetReviewStatuses() {
	p := s.project

	for _, from := range []models.TaskStatus{models.TaskStatusBacklog, models.TaskStatusInProgress, models.TaskStatusDone} {
		task := s.createTask(p, p.member, "Task from "+string(from))
		if from != models.TaskStatusBacklog {
			_, err := s.changeStatus(p.member, task.ID, models.TaskStatusInProgress)
			require.NoError(s.T(), err)
		}
		if from == models.TaskStatusDone {
			_, err := s.changeStatus(p.member, task.ID, models.TaskStatusDone)
			require.NoError(s.T(), err)
		}

		for _, target := range []models.TaskStatus{models.TaskStatusCompleted, models.TaskStatusNeedToRevise} {
			_, err := s.changeStatus(p.member, task.ID, target)
			assert.ErrorIs(s.T(), err, apperrors.ErrReviewStatusForbidden, "%s -> %s", from, target)
		}

		stored, err := s.repos().Tasks.GetByID(task.ID)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), from, stored.Status)
	}
}

func (s *TaskServiceTestSuite) TestStatusTransitions() {
	p := s.project
	task := s.createTask(p, p.member, "Prototype")

	_, err := s.changeStatus(p.member, task.ID, models.TaskStatusDone)
	assert.ErrorIs(s.T(), err, apperrors.ErrInvalidTaskTransition)

	_, err = s.changeStatus(p.member, task.ID, models.TaskStatusBacklog)
	assert.ErrorIs(s.T(), err, apperrors.ErrTaskStatusUnchanged)

	_, err = s.changeStatus(p.member, task.ID, "archived")
	assert.ErrorIs(s.T(), err, apperrors.ErrInvalidTaskStatus)

	_, err = s.changeStatus(p.owner, task.ID, models.TaskStatusInProgress)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotTaskAssignee)

	_, err = s.changeStatus(p.member, task.ID, models.TaskStatusInProgress)
	require.NoError(s.T(), err)
	_, err = s.changeStatus(p.member, task.ID, models.TaskStatusDone)
	require.NoError(s.T(), err)
	back, err := s.changeStatus(p.member, task.ID, models.TaskStatusBacklog)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.TaskStatusBacklog, back.Status)
}

func (s *TaskServiceTestSuite) TestReviewStatesLockStudent() {
	p := s.project
	task := s.createTask(p, p.member, "Chapter")
	_, err := s.changeStatus(p.member, task.ID, models.TaskStatusInProgress)
	require.NoError(s.T(), err)
	_, err = s.tasks.SubmitTask(s.ctx, asStudent(p.member), task.ID, &service.SubmitTaskRequest{FileReference: "uploads/chapter.pdf"})
	require.NoError(s.T(), err)
	_, err = s.tasks.ReviewTask(s.ctx, asSupervisor(p.supervisor), task.ID, &service.ReviewTaskRequest{Approve: boolPtr(false), RejectionReason: "too short"})
	require.NoError(s.T(), err)

	_, err = s.changeStatus(p.member, task.ID, models.TaskStatusInProgress)
	assert.ErrorIs(s.T(), err, apperrors.ErrTaskLockedForStudent)
	assert.True(s.T(), apperrors.IsConflict(err))

	s.completeTask(p, s.createTask(p, p.member, "Other").ID)
	tasks, err := s.tasks.ListTasks(s.ctx, asStudent(p.member), service.TaskListFilter{Status: statusPtr(models.TaskStatusCompleted)})
	require.NoError(s.T(), err)
	require.Len(s.T(), tasks, 1)

	_, err = s.changeStatus(p.member, tasks[0].ID, models.TaskStatusBacklog)
	assert.ErrorIs(s.T(), err, apperrors.ErrTaskLockedForStudent)
}

func (s *TaskServiceTestSuite) TestSubmitTaskGuards() {
	p := s.project
	task := s.createTask(p, p.member, "Slides")

	_, err := s.tasks.SubmitTask(s.ctx, asStudent(p.member), task.ID, &service.SubmitTaskRequest{Notes: "nothing attached"})
	assert.ErrorIs(s.T(), err, apperrors.ErrSubmissionContentEmpty)

	_, err = s.tasks.SubmitTask(s.ctx, asStudent(p.member), task.ID, &service.SubmitTaskRequest{FileReference: "uploads/slides.pdf"})
	assert.ErrorIs(s.T(), err, apperrors.ErrTaskNotSubmittable)

	_, err = s.tasks.SubmitTask(s.ctx, asStudent(p.owner), task.ID, &service.SubmitTaskRequest{FileReference: "uploads/slides.pdf"})
	assert.ErrorIs(s.T(), err, apperrors.ErrNotTaskAssignee)

	_, err = s.tasks.SubmitTask(s.ctx, asStudent(p.member), task.ID, &service.SubmitTaskRequest{RepoLink: "not a url"})
	assert.True(s.T(), apperrors.IsValidation(err))

	_, err = s.tasks.SubmitTask(s.ctx, asStudent(p.member), uuid.New(), &service.SubmitTaskRequest{FileReference: "uploads/slides.pdf"})
	assert.ErrorIs(s.T(), err, apperrors.ErrTaskNotFound)
}

func (s *TaskServiceTestSuite) TestReviewTaskGuards() {
	p := s.project
	stranger := s.newSupervisor("Stranger", 4)
	task := s.createTask(p, p.member, "Poster")

	_, err := s.tasks.ReviewTask(s.ctx, asSupervisor(p.supervisor), task.ID, &service.ReviewTaskRequest{Approve: boolPtr(true)})
	assert.ErrorIs(s.T(), err, apperrors.ErrTaskNotAwaitingReview)

	_, err = s.tasks.ReviewTask(s.ctx, asSupervisor(stranger), task.ID, &service.ReviewTaskRequest{Approve: boolPtr(true)})
	assert.ErrorIs(s.T(), err, apperrors.ErrNotTaskSupervisor)

	_, err = s.tasks.ReviewTask(s.ctx, asSupervisor(p.supervisor), task.ID, &service.ReviewTaskRequest{Approve: boolPtr(false), RejectionReason: "   "})
	assert.ErrorIs(s.T(), err, apperrors.ErrRejectionReasonMissing)
}

func (s *TaskServiceTestSuite) TestReassignTask() {
	p := s.project
	task := s.createTask(p, p.member, "Survey")
	_, err := s.changeStatus(p.member, task.ID, models.TaskStatusInProgress)
	require.NoError(s.T(), err)
	_, err = s.tasks.SubmitTask(s.ctx, asStudent(p.member), task.ID, &service.SubmitTaskRequest{FileReference: "uploads/survey.csv"})
	require.NoError(s.T(), err)

	outsider := s.newStudent("Outsider")
	_, err = s.tasks.ReassignTask(s.ctx, asSupervisor(p.supervisor), task.ID, &service.ReassignTaskRequest{AssigneeID: outsider.ID})
	assert.ErrorIs(s.T(), err, apperrors.ErrAssigneeNotMember)

	_, err = s.tasks.ReassignTask(s.ctx, asSupervisor(p.supervisor), task.ID, &service.ReassignTaskRequest{AssigneeID: uuid.New()})
	assert.ErrorIs(s.T(), err, apperrors.ErrAssigneeNotFound)

	reassigned, err := s.tasks.ReassignTask(s.ctx, asSupervisor(p.supervisor), task.ID, &service.ReassignTaskRequest{AssigneeID: p.owner.ID})
	require.NoError(s.T(), err)
	require.NotNil(s.T(), reassigned.AssigneeID)
	assert.Equal(s.T(), p.owner.ID, *reassigned.AssigneeID)
	assert.Equal(s.T(), models.TaskStatusDone, reassigned.Status)
	require.NotNil(s.T(), reassigned.Submission)
	assert.Equal(s.T(), p.member.ID, reassigned.Submission.SubmittedByID)

	assert.Contains(s.T(), s.notificationTitles(p.member.ID), "Task reassigned")
	assert.Contains(s.T(), s.notificationTitles(p.owner.ID), "New task assigned")
}

func (s *TaskServiceTestSuite) TestListAndGetAreScoped() {
	p := s.project
	mine := s.createTask(p, p.member, "Mine")
	s.createTask(p, p.owner, "Theirs")

	other := s.supervisedProject("Beta")
	foreign := s.createTask(other, other.member, "Foreign")

	tasks, err := s.tasks.ListTasks(s.ctx, asStudent(p.member), service.TaskListFilter{})
	require.NoError(s.T(), err)
	assert.Len(s.T(), tasks, 2)

	tasks, err = s.tasks.ListTasks(s.ctx, asStudent(p.member), service.TaskListFilter{AssigneeID: &p.member.ID})
	require.NoError(s.T(), err)
	require.Len(s.T(), tasks, 1)
	assert.Equal(s.T(), mine.ID, tasks[0].ID)

	_, err = s.tasks.ListTasks(s.ctx, asStudent(p.member), service.TaskListFilter{TeamID: &other.teamID})
	assert.ErrorIs(s.T(), err, apperrors.ErrNotTeamMember)

	tasks, err = s.tasks.ListTasks(s.ctx, asSupervisor(other.supervisor), service.TaskListFilter{})
	require.NoError(s.T(), err)
	require.Len(s.T(), tasks, 1)
	assert.Equal(s.T(), foreign.ID, tasks[0].ID)

	loner := s.newStudent("Loner")
	tasks, err = s.tasks.ListTasks(s.ctx, asStudent(loner), service.TaskListFilter{})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), tasks)

	_, err = s.tasks.ListTasks(s.ctx, asStudent(p.member), service.TaskListFilter{Status: statusPtr("archived")})
	assert.ErrorIs(s.T(), err, apperrors.ErrInvalidTaskStatus)

	got, err := s.tasks.GetTask(s.ctx, asStudent(p.owner), mine.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Mine", got.Title)

	_, err = s.tasks.GetTask(s.ctx, asStudent(p.member), foreign.ID)
	assert.ErrorIs(s.T(), err, apperrors.ErrTaskNotFound)
	_, err = s.tasks.GetTask(s.ctx, asSupervisor(other.supervisor), mine.ID)
	assert.ErrorIs(s.T(), err, apperrors.ErrTaskNotFound)
}

func (s *TaskServiceTestSuite) TestDeleteTask() {
	p := s.project
	stranger := s.newSupervisor("Stranger", 4)
	task := s.createTask(p, p.member, "Temporary")

	err := s.tasks.DeleteTask(s.ctx, asSupervisor(stranger), task.ID)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotTaskSupervisor)

	require.NoError(s.T(), s.tasks.DeleteTask(s.ctx, asSupervisor(p.supervisor), task.ID))
	_, err = s.tasks.GetTask(s.ctx, asSupervisor(p.supervisor), task.ID)
	assert.ErrorIs(s.T(), err, apperrors.ErrTaskNotFound)
}

func (s *TaskServiceTestSuite) TestPushFailureDoesNotFailTransition() {
	p := s.project
	failing := mocks.NewMockSink(s.ctrl)
	failing.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis unavailable")).Times(1)
	tasks := service.NewTaskService(s.store, notification.NewDispatcher(failing, notification.DispatcherOptions{}), s.validator)

	task, err := tasks.CreateTask(s.ctx, asSupervisor(p.supervisor), &service.CreateTaskRequest{
		TeamID:     p.teamID,
		AssigneeID: &p.member.ID,
		Title:      "Resilient",
		Deadline:   time.Now().Add(time.Hour),
	})
	require.NoError(s.T(), err)

	_, err = s.repos().Tasks.GetByID(task.ID)
	require.NoError(s.T(), err)
	assert.Contains(s.T(), s.notificationTitles(p.member.ID), "New task assigned")
}

func statusPtr(status models.TaskStatus) *models.TaskStatus {
	return &status
}
