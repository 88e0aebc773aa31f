package testutils

import (
	"fmt"
	"time"

	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StudentFactory provides methods to create test Student data
type StudentFactory struct{}

// NewStudentFactory creates a new StudentFactory
func NewStudentFactory() *StudentFactory {
	return &StudentFactory{}
}

// Create creates a test Student with default values and a unique email
func (f *StudentFactory) Create() *models.Student {
	base := newBase()
	return &models.Student{
		BaseModel:    base,
		FirstName:    "Test",
		LastName:     "Student",
		Email:        fmt.Sprintf("student-%s@university.test", base.ID.String()[:8]),
		Department:   "Computer Engineering",
		AcademicYear: 4,
	}
}

// WithName sets a custom first name for the student
func (f *StudentFactory) WithName(firstName string) *models.Student {
	student := f.Create()
	student.FirstName = firstName
	return student
}

// WithTeam places the student in a team
func (f *StudentFactory) WithTeam(teamID uuid.UUID) *models.Student {
	student := f.Create()
	student.TeamID = &teamID
	return student
}

// SupervisorFactory provides methods to create test Supervisor data
type SupervisorFactory struct{}

// NewSupervisorFactory creates a new SupervisorFactory
func NewSupervisorFactory() *SupervisorFactory {
	return &SupervisorFactory{}
}

// Create creates a test Supervisor with default values and a unique email
func (f *SupervisorFactory) Create() *models.Supervisor {
	base := newBase()
	return &models.Supervisor{
		BaseModel:        base,
		FirstName:        "Test",
		LastName:         "Supervisor",
		Email:            fmt.Sprintf("supervisor-%s@university.test", base.ID.String()[:8]),
		Department:       "Computer Engineering",
		Specialization:   "Distributed Systems",
		MaxAssignedTeams: 4,
	}
}

// WithCapacity sets how many teams the supervisor may take
func (f *SupervisorFactory) WithCapacity(maxTeams int) *models.Supervisor {
	supervisor := f.Create()
	supervisor.MaxAssignedTeams = maxTeams
	return supervisor
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates an open test Team with a unique name
func (f *TeamFactory) Create() *models.Team {
	base := newBase()
	return &models.Team{
		BaseModel:    base,
		Name:         "team-" + base.ID.String()[:8],
		Department:   "Computer Engineering",
		MaxMembers:   6,
		IsOpenToJoin: true,
		TechStack:    []string{"go", "postgres"},
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithSupervisor assigns a supervisor to the team
func (f *TeamFactory) WithSupervisor(supervisorID uuid.UUID) *models.Team {
	team := f.Create()
	team.SupervisorID = &supervisorID
	return team
}

// ProjectIdeaFactory provides methods to create test ProjectIdea data
type ProjectIdeaFactory struct{}

// NewProjectIdeaFactory creates a new ProjectIdeaFactory
func NewProjectIdeaFactory() *ProjectIdeaFactory {
	return &ProjectIdeaFactory{}
}

// Create creates a pending test ProjectIdea owned by the team
func (f *ProjectIdeaFactory) Create(teamID uuid.UUID) *models.ProjectIdea {
	return &models.ProjectIdea{
		BaseModel:   newBase(),
		TeamID:      teamID,
		Title:       "Smart Campus Navigator",
		Description: "Indoor navigation for the campus",
		TechStack:   []string{"go", "react"},
		Status:      models.ApprovalStatusPending,
	}
}

// Accepted creates an accepted idea supervised by the supervisor
func (f *ProjectIdeaFactory) Accepted(teamID, supervisorID uuid.UUID) *models.ProjectIdea {
	idea := f.Create(teamID)
	idea.Status = models.ApprovalStatusAccepted
	idea.SupervisorID = &supervisorID
	return idea
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a backlog test Task due in a week
func (f *TaskFactory) Create(teamID, supervisorID uuid.UUID) *models.Task {
	return &models.Task{
		BaseModel:    newBase(),
		TeamID:       teamID,
		SupervisorID: supervisorID,
		Title:        "Write the requirements document",
		Description:  "First milestone",
		Deadline:     time.Now().Add(7 * 24 * time.Hour),
		Status:       models.TaskStatusBacklog,
	}
}

// WithAssignee creates a task assigned to the student
func (f *TaskFactory) WithAssignee(teamID, supervisorID, assigneeID uuid.UUID) *models.Task {
	task := f.Create(teamID, supervisorID)
	task.AssigneeID = &assigneeID
	return task
}

// WithStatus creates a task in the given status
func (f *TaskFactory) WithStatus(teamID, supervisorID uuid.UUID, status models.TaskStatus) *models.Task {
	task := f.Create(teamID, supervisorID)
	task.Status = status
	return task
}

// NotificationFactory provides methods to create test Notification data
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates an unread test Notification for the recipient
func (f *NotificationFactory) Create(recipientID uuid.UUID, role models.Role) *models.Notification {
	return &models.Notification{
		BaseModel:     newBase(),
		RecipientID:   recipientID,
		RecipientRole: role,
		Title:         "Test notification",
		Body:          "Something happened",
		Status:        models.NotificationStatusUnread,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Student      *StudentFactory
	Supervisor   *SupervisorFactory
	Team         *TeamFactory
	ProjectIdea  *ProjectIdeaFactory
	Task         *TaskFactory
	Notification *NotificationFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Student:      NewStudentFactory(),
		Supervisor:   NewSupervisorFactory(),
		Team:         NewTeamFactory(),
		ProjectIdea:  NewProjectIdeaFactory(),
		Task:         NewTaskFactory(),
		Notification: NewNotificationFactory(),
	}
}
