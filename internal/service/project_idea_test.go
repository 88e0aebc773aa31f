package service_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"graduation-portal-backend/internal/database/models"
	apperrors "graduation-portal-backend/internal/errors"
	"graduation-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ProjectIdeaServiceTestSuite struct {
	workflowSuite
}

func TestProjectIdeaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectIdeaServiceTestSuite))
}

func (s *ProjectIdeaServiceTestSuite) TestPublishIdea() {
	loner := s.newStudent("Loner")
	_, err := s.ideas.PublishIdea(s.ctx, asStudent(loner), &service.PublishIdeaRequest{Title: "Solo"})
	assert.ErrorIs(s.T(), err, apperrors.ErrStudentHasNoTeam)
	assert.True(s.T(), apperrors.IsForbidden(err))

	owner := s.newStudent("Owner")
	team := s.createTeam(owner, "Alpha")
	idea, err := s.ideas.PublishIdea(s.ctx, asStudent(owner), &service.PublishIdeaRequest{
		Title:     "Campus navigation",
		TechStack: []string{"flutter"},
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), team.ID, idea.TeamID)
	assert.Equal(s.T(), models.ApprovalStatusPending, idea.Status)
	assert.Nil(s.T(), idea.SupervisorID)
	assert.False(s.T(), idea.IsCompleted)

	ideas, err := s.ideas.ListTeamIdeas(s.ctx, asStudent(owner))
	require.NoError(s.T(), err)
	assert.Len(s.T(), ideas, 1)

	_, err = s.ideas.PublishIdea(s.ctx, asStudent(owner), &service.PublishIdeaRequest{})
	assert.True(s.T(), apperrors.IsValidation(err))
}

func (s *ProjectIdeaServiceTestSuite) TestUpdateIdeaWithdrawsPendingRequests() {
	owner := s.newStudent("Owner")
	s.createTeam(owner, "Alpha")
	supervisor := s.newSupervisor("Prof", 4)
	idea := s.publishIdea(owner, "Draft")
	request := s.requestSupervisor(owner, idea.ID, supervisor)

	title := "Final"
	updated, err := s.ideas.UpdateIdea(s.ctx, asStudent(owner), idea.ID, &service.UpdateIdeaRequest{Title: &title})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Final", updated.Title)
	assert.Equal(s.T(), "Draft description", updated.Description)
	assert.Equal(s.T(), models.ApprovalStatusPending, updated.Status)

	_, err = s.repos().IdeaRequests.GetByID(request.ID)
	assert.True(s.T(), errors.Is(err, gorm.ErrRecordNotFound))

	outsider := s.newStudent("Outsider")
	s.createTeam(outsider, "Beta")
	_, err = s.ideas.UpdateIdea(s.ctx, asStudent(outsider), idea.ID, &service.UpdateIdeaRequest{Title: &title})
	assert.ErrorIs(s.T(), err, apperrors.ErrNotTeamMember)
}

func (s *ProjectIdeaServiceTestSuite) TestAcceptedIdeaIsImmutable() {
	p := s.supervisedProject("Alpha")

	title := "Changed"
	_, err := s.ideas.UpdateIdea(s.ctx, asStudent(p.owner), p.ideaID, &service.UpdateIdeaRequest{Title: &title})
	assert.ErrorIs(s.T(), err, apperrors.ErrIdeaAlreadyAccepted)

	_, err = s.ideas.PublishIdea(s.ctx, asStudent(p.member), &service.PublishIdeaRequest{Title: "Another"})
	assert.ErrorIs(s.T(), err, apperrors.ErrIdeaAlreadyAccepted)

	other := s.newSupervisor("Other", 4)
	_, err = s.ideas.RequestSupervisor(s.ctx, asStudent(p.owner), p.ideaID, &service.RequestSupervisorRequest{SupervisorID: other.ID})
	assert.ErrorIs(s.T(), err, apperrors.ErrIdeaNotPending)
}

func (s *ProjectIdeaServiceTestSuite) TestRequestSupervisor() {
	owner := s.newStudent("Owner")
	s.createTeam(owner, "Alpha")
	supervisor := s.newSupervisor("Prof", 4)
	idea := s.publishIdea(owner, "Idea")

	request := s.requestSupervisor(owner, idea.ID, supervisor)
	assert.Equal(s.T(), models.ApprovalStatusPending, request.Status)
	assert.Equal(s.T(), owner.ID, request.RequestedByID)
	assert.Contains(s.T(), s.notificationTitles(supervisor.ID), "New supervision request")

	_, err := s.ideas.RequestSupervisor(s.ctx, asStudent(owner), idea.ID, &service.RequestSupervisorRequest{SupervisorID: supervisor.ID})
	assert.ErrorIs(s.T(), err, apperrors.ErrProjectIdeaRequestExists)

	_, err = s.ideas.RequestSupervisor(s.ctx, asStudent(owner), idea.ID, &service.RequestSupervisorRequest{SupervisorID: uuid.New()})
	assert.ErrorIs(s.T(), err, apperrors.ErrSupervisorNotFound)

	requests, err := s.ideas.ListIdeaRequests(s.ctx, asStudent(owner), idea.ID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), requests, 1)

	inbox, err := s.ideas.ListSupervisionRequests(s.ctx, asSupervisor(supervisor), nil)
	require.NoError(s.T(), err)
	assert.Len(s.T(), inbox, 1)
}

func (s *ProjectIdeaServiceTestSuite) TestApprovalCascade() {
	owner := s.newStudent("Owner")
	member := s.newStudent("Member")
	team := s.createTeam(owner, "Alpha")
	s.addMember(team.ID, owner, member)
	s1 := s.newSupervisor("S1", 4)
	s2 := s.newSupervisor("S2", 4)

	x := s.publishIdea(owner, "X")
	y := s.publishIdea(member, "Y")
	toS1 := s.requestSupervisor(owner, x.ID, s1)
	toS2 := s.requestSupervisor(owner, x.ID, s2)
	yToS2 := s.requestSupervisor(member, y.ID, s2)

	resolved, err := s.ideas.HandleIdeaRequest(s.ctx, asSupervisor(s1), toS1.ID, &service.HandleIdeaRequestRequest{Approve: boolPtr(true)})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.ApprovalStatusAccepted, resolved.Status)

	repos := s.repos()
	accepted, err := repos.Ideas.GetByID(x.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.ApprovalStatusAccepted, accepted.Status)
	require.NotNil(s.T(), accepted.SupervisorID)
	assert.Equal(s.T(), s1.ID, *accepted.SupervisorID)

	storedTeam, err := repos.Teams.GetByID(team.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), storedTeam.IsSupervisedBy(s1.ID))

	_, err = repos.IdeaRequests.GetByID(toS2.ID)
	assert.True(s.T(), errors.Is(err, gorm.ErrRecordNotFound))
	_, err = repos.Ideas.GetByID(y.ID)
	assert.True(s.T(), errors.Is(err, gorm.ErrRecordNotFound))
	_, err = repos.IdeaRequests.GetByID(yToS2.ID)
	assert.True(s.T(), errors.Is(err, gorm.ErrRecordNotFound))

	count, err := repos.Teams.CountBySupervisorID(s1.ID)
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 1, count)

	assert.Contains(s.T(), s.notificationTitles(owner.ID), "Project idea accepted")
	assert.Contains(s.T(), s.notificationTitles(member.ID), "Project idea accepted")

	_, err = s.ideas.HandleIdeaRequest(s.ctx, asSupervisor(s2), toS2.ID, &service.HandleIdeaRequestRequest{Approve: boolPtr(true)})
	assert.ErrorIs(s.T(), err, apperrors.ErrProjectIdeaRequestNotFound)
}

func (s *ProjectIdeaServiceTestSuite) TestConcurrentApprovalsAssignOneSupervisor() {
	owner := s.newStudent("Owner")
	s.createTeam(owner, "Alpha")
	idea := s.publishIdea(owner, "X")

	supervisors := []*models.Supervisor{s.newSupervisor("S1", 4), s.newSupervisor("S2", 4), s.newSupervisor("S3", 4)}
	requests := make([]uuid.UUID, 0, len(supervisors))
	for _, sup := range supervisors {
		requests = append(requests, s.requestSupervisor(owner, idea.ID, sup).ID)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(supervisors))
	for i := range supervisors {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.ideas.HandleIdeaRequest(s.ctx, asSupervisor(supervisors[i]), requests[i], &service.HandleIdeaRequestRequest{Approve: boolPtr(true)})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(s.T(), 1, succeeded)

	total := int64(0)
	for _, sup := range supervisors {
		count, err := s.repos().Teams.CountBySupervisorID(sup.ID)
		require.NoError(s.T(), err)
		total += count
	}
	assert.EqualValues(s.T(), 1, total)
}

func (s *ProjectIdeaServiceTestSuite) TestSupervisorCapacity() {
	supervisor := s.newSupervisor("Busy", 1)

	first := s.newStudent("First")
	s.createTeam(first, "First")
	firstIdea := s.publishIdea(first, "First idea")
	firstRequest := s.requestSupervisor(first, firstIdea.ID, supervisor)

	second := s.newStudent("Second")
	s.createTeam(second, "Second")
	secondIdea := s.publishIdea(second, "Second idea")
	secondRequest := s.requestSupervisor(second, secondIdea.ID, supervisor)

	_, err := s.ideas.HandleIdeaRequest(s.ctx, asSupervisor(supervisor), firstRequest.ID, &service.HandleIdeaRequestRequest{Approve: boolPtr(true)})
	require.NoError(s.T(), err)

	_, err = s.ideas.HandleIdeaRequest(s.ctx, asSupervisor(supervisor), secondRequest.ID, &service.HandleIdeaRequestRequest{Approve: boolPtr(true)})
	assert.ErrorIs(s.T(), err, apperrors.ErrSupervisorAtCapacity)

	stored, err := s.repos().IdeaRequests.GetByID(secondRequest.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.ApprovalStatusPending, stored.Status)

	list, err := s.ideas.ListSupervisors(s.ctx, 1, 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), list.Supervisors, 1)
	assert.EqualValues(s.T(), 1, list.Supervisors[0].AssignedTeams)
	assert.Zero(s.T(), list.Supervisors[0].AvailableCapacity)
}

func (s *ProjectIdeaServiceTestSuite) TestRejectKeepsIdeaPending() {
	owner := s.newStudent("Owner")
	s.createTeam(owner, "Alpha")
	supervisor := s.newSupervisor("Prof", 4)
	stranger := s.newSupervisor("Stranger", 4)
	idea := s.publishIdea(owner, "Idea")
	request := s.requestSupervisor(owner, idea.ID, supervisor)

	_, err := s.ideas.HandleIdeaRequest(s.ctx, asSupervisor(stranger), request.ID, &service.HandleIdeaRequestRequest{Approve: boolPtr(false)})
	assert.ErrorIs(s.T(), err, apperrors.ErrProjectIdeaRequestNotFound)

	_, err = s.ideas.HandleIdeaRequest(s.ctx, asSupervisor(supervisor), request.ID, &service.HandleIdeaRequestRequest{})
	assert.True(s.T(), apperrors.IsValidation(err))

	resolved, err := s.ideas.HandleIdeaRequest(s.ctx, asSupervisor(supervisor), request.ID, &service.HandleIdeaRequestRequest{
		Approve:         boolPtr(false),
		RejectionReason: "outside my area",
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.ApprovalStatusRejected, resolved.Status)
	assert.Equal(s.T(), "outside my area", resolved.RejectionReason)
	assert.NotNil(s.T(), resolved.RespondedAt)

	stored, err := s.repos().Ideas.GetByID(idea.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.ApprovalStatusPending, stored.Status)
	assert.Contains(s.T(), s.notificationTitles(owner.ID), "Supervision request rejected")

	_, err = s.ideas.HandleIdeaRequest(s.ctx, asSupervisor(supervisor), request.ID, &service.HandleIdeaRequestRequest{Approve: boolPtr(true)})
	assert.ErrorIs(s.T(), err, apperrors.ErrIdeaRequestResolved)

	s.requestSupervisor(owner, idea.ID, stranger)
}

func (s *ProjectIdeaServiceTestSuite) TestGetIdeaVisibility() {
	p := s.supervisedProject("Alpha")
	outsider := s.newStudent("Outsider")
	s.createTeam(outsider, "Beta")
	stranger := s.newSupervisor("Stranger", 4)

	idea, err := s.ideas.GetIdea(s.ctx, asStudent(p.member), p.ideaID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), p.ideaID, idea.ID)

	_, err = s.ideas.GetIdea(s.ctx, asSupervisor(p.supervisor), p.ideaID)
	require.NoError(s.T(), err)

	_, err = s.ideas.GetIdea(s.ctx, asStudent(outsider), p.ideaID)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotTeamMember)

	_, err = s.ideas.GetIdea(s.ctx, asSupervisor(stranger), p.ideaID)
	assert.ErrorIs(s.T(), err, apperrors.ErrProjectIdeaNotFound)
}

func (s *ProjectIdeaServiceTestSuite) TestDeleteIdea() {
	owner := s.newStudent("Owner")
	s.createTeam(owner, "Alpha")
	supervisor := s.newSupervisor("Prof", 4)
	idea := s.publishIdea(owner, "Idea")
	request := s.requestSupervisor(owner, idea.ID, supervisor)

	require.NoError(s.T(), s.ideas.DeleteIdea(s.ctx, asStudent(owner), idea.ID))

	_, err := s.repos().Ideas.GetByID(idea.ID)
	assert.True(s.T(), errors.Is(err, gorm.ErrRecordNotFound))
	_, err = s.repos().IdeaRequests.GetByID(request.ID)
	assert.True(s.T(), errors.Is(err, gorm.ErrRecordNotFound))

	err = s.ideas.DeleteIdea(s.ctx, asStudent(owner), idea.ID)
	assert.ErrorIs(s.T(), err, apperrors.ErrProjectIdeaNotFound)
}

func (s *ProjectIdeaServiceTestSuite) TestAcceptedIdeaCannotBeDeleted() {
	p := s.supervisedProject("Alpha")

	err := s.ideas.DeleteIdea(s.ctx, asStudent(p.owner), p.ideaID)
	assert.ErrorIs(s.T(), err, apperrors.ErrIdeaAlreadyAccepted)
	assert.True(s.T(), apperrors.IsConflict(err))

	stored, err := s.repos().Ideas.GetByID(p.ideaID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.ApprovalStatusAccepted, stored.Status)

	// the team keeps moving forward with its supervisor
	task := s.createTask(p, p.member, "Kickoff")
	assert.Equal(s.T(), models.TaskStatusBacklog, task.Status)
}

func (s *ProjectIdeaServiceTestSuite) TestMarkProjectCompleted() {
	p := s.supervisedProject("Alpha")
	stranger := s.newSupervisor("Stranger", 4)

	_, err := s.ideas.MarkProjectCompleted(s.ctx, asSupervisor(stranger), p.ideaID)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotTeamSupervisor)

	task := s.createTask(p, p.member, "Report")
	_, err = s.ideas.MarkProjectCompleted(s.ctx, asSupervisor(p.supervisor), p.ideaID)
	assert.ErrorIs(s.T(), err, apperrors.ErrProjectHasOpenTasks)

	s.completeTask(p, task.ID)

	completed, err := s.ideas.MarkProjectCompleted(s.ctx, asSupervisor(p.supervisor), p.ideaID)
	require.NoError(s.T(), err)
	assert.True(s.T(), completed.IsCompleted)
	require.NotNil(s.T(), completed.CompletedAt)
	_, err = time.Parse(time.RFC3339, *completed.CompletedAt)
	assert.NoError(s.T(), err)
	assert.Contains(s.T(), s.notificationTitles(p.owner.ID), "Project completed")

	_, err = s.ideas.MarkProjectCompleted(s.ctx, asSupervisor(p.supervisor), p.ideaID)
	assert.ErrorIs(s.T(), err, apperrors.ErrProjectAlreadyCompleted)
	assert.True(s.T(), apperrors.IsConflict(err))
}

func (s *ProjectIdeaServiceTestSuite) TestMarkProjectCompletedWithoutTasks() {
	p := s.supervisedProject("Alpha")

	completed, err := s.ideas.MarkProjectCompleted(s.ctx, asSupervisor(p.supervisor), p.ideaID)
	require.NoError(s.T(), err)
	assert.True(s.T(), completed.IsCompleted)
}

// completeTask walks a task through the review loop up to approval
func (s *workflowSuite) completeTask(p supervisedProject, taskID uuid.UUID) {
	task, err := s.repos().Tasks.GetByID(taskID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), task.AssigneeID)
	assignee := s.reloadStudent(*task.AssigneeID)

	_, err = s.tasks.ChangeStatus(s.ctx, asStudent(assignee), taskID, &service.ChangeTaskStatusRequest{Status: models.TaskStatusInProgress})
	require.NoError(s.T(), err)
	_, err = s.tasks.SubmitTask(s.ctx, asStudent(assignee), taskID, &service.SubmitTaskRequest{FileReference: "uploads/report.pdf"})
	require.NoError(s.T(), err)
	_, err = s.tasks.ReviewTask(s.ctx, asSupervisor(p.supervisor), taskID, &service.ReviewTaskRequest{Approve: boolPtr(true)})
	require.NoError(s.T(), err)
}
