package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work a supervisor assigns within a supervised team
type Task struct {
	BaseModel
	TeamID          uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	SupervisorID    uuid.UUID  `json:"supervisor_id" gorm:"type:uuid;not null;index" validate:"required"`
	AssigneeID      *uuid.UUID `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	Title           string     `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description     string     `json:"description" gorm:"type:text"`
	Deadline        time.Time  `json:"deadline" gorm:"not null"`
	Status          TaskStatus `json:"status" gorm:"type:varchar(30);not null;index"`
	RejectionReason string     `json:"rejection_reason,omitempty" gorm:"type:text"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`

	// Relationships
	Team       Team            `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Supervisor Supervisor      `json:"supervisor,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnDelete:CASCADE"`
	Assignee   *Student        `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
	Submission *TaskSubmission `json:"submission,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// IsAssignedTo reports whether the student is the task's assignee
func (t *Task) IsAssignedTo(studentID uuid.UUID) bool {
	return t.AssigneeID != nil && *t.AssigneeID == studentID
}
