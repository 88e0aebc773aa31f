package service_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"graduation-portal-backend/internal/auth"
	"graduation-portal-backend/internal/database/models"
	"graduation-portal-backend/internal/mocks"
	"graduation-portal-backend/internal/notification"
	"graduation-portal-backend/internal/repository"
	"graduation-portal-backend/internal/repository/memory"
	"graduation-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// workflowSuite wires the services against a store and a mocked push sink.
// The store is in-memory unless openStore is set.
type workflowSuite struct {
	suite.Suite
	openStore  func() repository.Store
	ctx        context.Context
	ctrl       *gomock.Controller
	sink       *mocks.MockSink
	store      repository.Store
	dispatcher *notification.Dispatcher
	validator  *validator.Validate

	teams  *service.TeamService
	ideas  *service.ProjectIdeaService
	tasks  *service.TaskService
	inbox  *service.NotificationService
	serial int
}

func (s *workflowSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.sink = mocks.NewMockSink(s.ctrl)
	s.sink.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	if s.openStore != nil {
		s.store = s.openStore()
	} else {
		s.store = memory.NewStore()
	}
	s.dispatcher = notification.NewDispatcher(s.sink, notification.DispatcherOptions{})
	s.validator = validator.New()

	s.teams = service.NewTeamService(s.store, s.dispatcher, s.validator, service.DefaultLimits())
	s.ideas = service.NewProjectIdeaService(s.store, s.dispatcher, s.validator)
	s.tasks = service.NewTaskService(s.store, s.dispatcher, s.validator)
	s.inbox = service.NewNotificationService(s.store, notification.NewRegistry(0))
}

func (s *workflowSuite) TearDownTest() {
	s.dispatcher.Close()
	s.ctrl.Finish()
}

func (s *workflowSuite) repos() *repository.Repositories {
	return s.store.Repositories(s.ctx)
}

func (s *workflowSuite) newStudent(firstName string) *models.Student {
	s.serial++
	student := &models.Student{
		FirstName:    firstName,
		LastName:     "Student",
		Email:        fmt.Sprintf("%s.%d@students.example.edu", strings.ToLower(firstName), s.serial),
		Department:   "Computer Science",
		AcademicYear: 4,
	}
	require.NoError(s.T(), s.repos().Students.Create(student))
	return student
}

func (s *workflowSuite) newSupervisor(firstName string, maxTeams int) *models.Supervisor {
	s.serial++
	supervisor := &models.Supervisor{
		FirstName:        firstName,
		LastName:         "Supervisor",
		Email:            fmt.Sprintf("%s.%d@faculty.example.edu", strings.ToLower(firstName), s.serial),
		Department:       "Computer Science",
		MaxAssignedTeams: maxTeams,
	}
	require.NoError(s.T(), s.repos().Supervisors.Create(supervisor))
	return supervisor
}

func asStudent(student *models.Student) auth.Caller {
	return auth.NewStudentCaller(student)
}

func asSupervisor(supervisor *models.Supervisor) auth.Caller {
	return auth.NewSupervisorCaller(supervisor)
}

func boolPtr(b bool) *bool {
	return &b
}

func (s *workflowSuite) createTeam(owner *models.Student, name string) *service.TeamResponse {
	team, err := s.teams.CreateTeam(s.ctx, asStudent(owner), &service.CreateTeamRequest{Name: name, Department: "Computer Science"})
	require.NoError(s.T(), err)
	return team
}

// addMember runs the join request flow with owner accepting the applicant
func (s *workflowSuite) addMember(teamID uuid.UUID, owner, applicant *models.Student) {
	request, err := s.teams.RequestToJoin(s.ctx, asStudent(applicant), teamID, &service.JoinTeamRequest{Message: "let me in"})
	require.NoError(s.T(), err)
	_, err = s.teams.RespondToJoinRequest(s.ctx, asStudent(owner), request.ID, &service.RespondJoinRequest{Decision: service.DecisionAccept})
	require.NoError(s.T(), err)
}

func (s *workflowSuite) publishIdea(author *models.Student, title string) *service.ProjectIdeaResponse {
	idea, err := s.ideas.PublishIdea(s.ctx, asStudent(author), &service.PublishIdeaRequest{Title: title, Description: title + " description"})
	require.NoError(s.T(), err)
	return idea
}

func (s *workflowSuite) requestSupervisor(author *models.Student, ideaID uuid.UUID, supervisor *models.Supervisor) *service.ProjectIdeaRequestResponse {
	request, err := s.ideas.RequestSupervisor(s.ctx, asStudent(author), ideaID, &service.RequestSupervisorRequest{SupervisorID: supervisor.ID})
	require.NoError(s.T(), err)
	return request
}

// supervisedProject is a team with an accepted idea and a supervisor
type supervisedProject struct {
	owner      *models.Student
	member     *models.Student
	supervisor *models.Supervisor
	teamID     uuid.UUID
	ideaID     uuid.UUID
}

func (s *workflowSuite) supervisedProject(name string) supervisedProject {
	owner := s.newStudent(name + "Owner")
	member := s.newStudent(name + "Member")
	supervisor := s.newSupervisor(name+"Prof", 4)

	team := s.createTeam(owner, name)
	s.addMember(team.ID, owner, member)
	idea := s.publishIdea(owner, name+" idea")
	request := s.requestSupervisor(owner, idea.ID, supervisor)
	_, err := s.ideas.HandleIdeaRequest(s.ctx, asSupervisor(supervisor), request.ID, &service.HandleIdeaRequestRequest{Approve: boolPtr(true)})
	require.NoError(s.T(), err)

	return supervisedProject{owner: owner, member: member, supervisor: supervisor, teamID: team.ID, ideaID: idea.ID}
}

func (s *workflowSuite) createTask(p supervisedProject, assignee *models.Student, title string) *service.TaskResponse {
	req := &service.CreateTaskRequest{
		TeamID:   p.teamID,
		Title:    title,
		Deadline: time.Now().Add(72 * time.Hour),
	}
	if assignee != nil {
		req.AssigneeID = &assignee.ID
	}
	task, err := s.tasks.CreateTask(s.ctx, asSupervisor(p.supervisor), req)
	require.NoError(s.T(), err)
	return task
}

// notificationTitles lists the titles in a recipient's inbox, newest first
func (s *workflowSuite) notificationTitles(recipientID uuid.UUID) []string {
	items, _, err := s.repos().Notifications.GetByRecipientID(recipientID, false, 100, 0)
	require.NoError(s.T(), err)
	titles := make([]string, 0, len(items))
	for _, n := range items {
		titles = append(titles, n.Title)
	}
	return titles
}

func (s *workflowSuite) reloadStudent(id uuid.UUID) *models.Student {
	student, err := s.repos().Students.GetByID(id)
	require.NoError(s.T(), err)
	return student
}
