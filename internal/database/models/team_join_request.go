package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamJoinRequest is a student's request to become a member of a team
type TeamJoinRequest struct {
	BaseModel
	TeamID        uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	StudentID     uuid.UUID      `json:"student_id" gorm:"type:uuid;not null;index" validate:"required"`
	Message       string         `json:"message" gorm:"size:500"`
	Status        ApprovalStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	RespondedByID *uuid.UUID     `json:"responded_by_id,omitempty" gorm:"type:uuid"`
	RespondedAt   *time.Time     `json:"responded_at,omitempty"`

	// Relationships
	Team    Team    `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Student Student `json:"student,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamJoinRequest
func (TeamJoinRequest) TableName() string {
	return "team_join_requests"
}
