package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Team represents a graduation project team of students
type Team struct {
	BaseModel
	Name         string                      `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Department   string                      `json:"department" gorm:"size:100" validate:"max=100"`
	MaxMembers   int                         `json:"max_members" gorm:"not null"`
	IsOpenToJoin bool                        `json:"is_open_to_join" gorm:"not null"`
	TechStack    datatypes.JSONSlice[string] `json:"tech_stack" gorm:"type:jsonb"`
	SupervisorID *uuid.UUID                  `json:"supervisor_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Supervisor   *Supervisor       `json:"supervisor,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnDelete:SET NULL"`
	Members      []Student         `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	ProjectIdeas []ProjectIdea     `json:"project_ideas,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Tasks        []Task            `json:"tasks,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	JoinRequests []TeamJoinRequest `json:"join_requests,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// HasSupervisor reports whether a supervisor is assigned
func (t *Team) HasSupervisor() bool {
	return t.SupervisorID != nil
}

// IsSupervisedBy reports whether the given supervisor is assigned to the team
func (t *Team) IsSupervisedBy(supervisorID uuid.UUID) bool {
	return t.SupervisorID != nil && *t.SupervisorID == supervisorID
}
