package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectIdeaRequest asks one supervisor to supervise one project idea
type ProjectIdeaRequest struct {
	BaseModel
	ProjectIdeaID   uuid.UUID      `json:"project_idea_id" gorm:"type:uuid;not null;index" validate:"required"`
	SupervisorID    uuid.UUID      `json:"supervisor_id" gorm:"type:uuid;not null;index" validate:"required"`
	RequestedByID   uuid.UUID      `json:"requested_by_id" gorm:"type:uuid;not null"`
	Status          ApprovalStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	RejectionReason string         `json:"rejection_reason,omitempty" gorm:"type:text"`
	RespondedAt     *time.Time     `json:"responded_at,omitempty"`

	// Relationships
	ProjectIdea ProjectIdea `json:"project_idea,omitempty" gorm:"foreignKey:ProjectIdeaID;constraint:OnDelete:CASCADE"`
	Supervisor  Supervisor  `json:"supervisor,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectIdeaRequest
func (ProjectIdeaRequest) TableName() string {
	return "project_idea_requests"
}
