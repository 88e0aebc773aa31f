package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProjectIdea is a team's proposed graduation project
type ProjectIdea struct {
	BaseModel
	TeamID       uuid.UUID                   `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title        string                      `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description  string                      `json:"description" gorm:"type:text"`
	TechStack    datatypes.JSONSlice[string] `json:"tech_stack" gorm:"type:jsonb"`
	Status       ApprovalStatus              `json:"status" gorm:"type:varchar(20);not null;index"`
	SupervisorID *uuid.UUID                  `json:"supervisor_id,omitempty" gorm:"type:uuid;index"`
	IsCompleted  bool                        `json:"is_completed" gorm:"not null"`
	CompletedAt  *time.Time                  `json:"completed_at,omitempty"`

	// Relationships
	Team       Team                 `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Supervisor *Supervisor          `json:"supervisor,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnDelete:SET NULL"`
	Requests   []ProjectIdeaRequest `json:"requests,omitempty" gorm:"foreignKey:ProjectIdeaID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectIdea
func (ProjectIdea) TableName() string {
	return "project_ideas"
}
