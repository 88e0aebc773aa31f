package auth

import (
	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// Caller is the resolved identity behind a request: a *StudentCaller or a *SupervisorCaller
type Caller interface {
	ID() uuid.UUID
	Role() models.Role
	caller()
}

// StudentCaller is a request made by a student
type StudentCaller struct {
	Student *models.Student
}

func (c *StudentCaller) ID() uuid.UUID     { return c.Student.ID }
func (c *StudentCaller) Role() models.Role { return models.RoleStudent }
func (c *StudentCaller) caller()           {}

// SupervisorCaller is a request made by a supervisor
type SupervisorCaller struct {
	Supervisor *models.Supervisor
}

func (c *SupervisorCaller) ID() uuid.UUID     { return c.Supervisor.ID }
func (c *SupervisorCaller) Role() models.Role { return models.RoleSupervisor }
func (c *SupervisorCaller) caller()           {}

// NewStudentCaller wraps a loaded student
func NewStudentCaller(student *models.Student) Caller {
	return &StudentCaller{Student: student}
}

// NewSupervisorCaller wraps a loaded supervisor
func NewSupervisorCaller(supervisor *models.Supervisor) Caller {
	return &SupervisorCaller{Supervisor: supervisor}
}
