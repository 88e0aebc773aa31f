package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskSubmission is the single deliverable attached to a task
type TaskSubmission struct {
	BaseModel
	TaskID        uuid.UUID `json:"task_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	SubmittedByID uuid.UUID `json:"submitted_by_id" gorm:"type:uuid;not null"`
	FileReference string    `json:"file_reference,omitempty" gorm:"size:500"`
	RepoLink      string    `json:"repo_link,omitempty" gorm:"size:500"`
	Notes         string    `json:"notes,omitempty" gorm:"type:text"`
	SubmittedAt   time.Time `json:"submitted_at" gorm:"not null"`
}

// TableName returns the table name for TaskSubmission
func (TaskSubmission) TableName() string {
	return "task_submissions"
}

// HasContent reports whether the submission carries a deliverable
func (s *TaskSubmission) HasContent() bool {
	return s.FileReference != "" || s.RepoLink != ""
}
