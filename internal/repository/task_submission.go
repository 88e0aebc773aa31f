package repository

import (
	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskSubmissionRepository handles database operations for task submissions
type TaskSubmissionRepository struct {
	db *gorm.DB
}

// NewTaskSubmissionRepository creates a new task submission repository
func NewTaskSubmissionRepository(db *gorm.DB) *TaskSubmissionRepository {
	return &TaskSubmissionRepository{db: db}
}

// GetByTaskID retrieves the submission of a task
func (r *TaskSubmissionRepository) GetByTaskID(taskID uuid.UUID) (*models.TaskSubmission, error) {
	var submission models.TaskSubmission
	err := r.db.First(&submission, "task_id = ?", taskID).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// Upsert stores the submission, overwriting the content of an existing one for the same task.
// The submission is reloaded afterwards so it carries the stored row's ID and creation time.
func (r *TaskSubmissionRepository) Upsert(submission *models.TaskSubmission) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "task_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"submitted_by_id", "file_reference", "repo_link", "notes", "submitted_at", "updated_at",
		}),
	}).Create(submission).Error
	if err != nil {
		return err
	}
	return r.db.First(submission, "task_id = ?", submission.TaskID).Error
}

// DeleteByTaskID deletes the submission of a task
func (r *TaskSubmissionRepository) DeleteByTaskID(taskID uuid.UUID) error {
	return r.db.Where("task_id = ?", taskID).Delete(&models.TaskSubmission{}).Error
}
