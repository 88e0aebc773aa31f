package repository

import (
	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectIdeaRequestRepository handles database operations for supervision requests
type ProjectIdeaRequestRepository struct {
	db *gorm.DB
}

// NewProjectIdeaRequestRepository creates a new project idea request repository
func NewProjectIdeaRequestRepository(db *gorm.DB) *ProjectIdeaRequestRepository {
	return &ProjectIdeaRequestRepository{db: db}
}

// Create creates a new project idea request
func (r *ProjectIdeaRequestRepository) Create(request *models.ProjectIdeaRequest) error {
	return r.db.Omit(clause.Associations).Create(request).Error
}

// GetByID retrieves a project idea request by ID
func (r *ProjectIdeaRequestRepository) GetByID(id uuid.UUID) (*models.ProjectIdeaRequest, error) {
	var request models.ProjectIdeaRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByIDForUpdate retrieves a project idea request by ID and locks the row
func (r *ProjectIdeaRequestRepository) GetByIDForUpdate(id uuid.UUID) (*models.ProjectIdeaRequest, error) {
	var request models.ProjectIdeaRequest
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetPending retrieves the pending request for an idea addressed to a supervisor
func (r *ProjectIdeaRequestRepository) GetPending(ideaID, supervisorID uuid.UUID) (*models.ProjectIdeaRequest, error) {
	var request models.ProjectIdeaRequest
	err := r.db.First(&request, "project_idea_id = ? AND supervisor_id = ? AND status = ?",
		ideaID, supervisorID, models.ApprovalStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByIdeaID retrieves every request made for an idea
func (r *ProjectIdeaRequestRepository) GetByIdeaID(ideaID uuid.UUID) ([]models.ProjectIdeaRequest, error) {
	var requests []models.ProjectIdeaRequest
	err := r.db.Where("project_idea_id = ?", ideaID).Order("created_at ASC").Find(&requests).Error
	return requests, err
}

// GetBySupervisorID retrieves the requests addressed to a supervisor, optionally filtered by status
func (r *ProjectIdeaRequestRepository) GetBySupervisorID(supervisorID uuid.UUID, status *models.ApprovalStatus) ([]models.ProjectIdeaRequest, error) {
	var requests []models.ProjectIdeaRequest
	query := r.db.Where("supervisor_id = ?", supervisorID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at ASC").Find(&requests).Error
	return requests, err
}

// Update updates a project idea request
func (r *ProjectIdeaRequestRepository) Update(request *models.ProjectIdeaRequest) error {
	return r.db.Omit(clause.Associations).Save(request).Error
}

// Delete deletes a project idea request
func (r *ProjectIdeaRequestRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectIdeaRequest{}, "id = ?", id).Error
}

// DeleteByIdeaID deletes every request made for an idea
func (r *ProjectIdeaRequestRepository) DeleteByIdeaID(ideaID uuid.UUID) error {
	return r.db.Where("project_idea_id = ?", ideaID).Delete(&models.ProjectIdeaRequest{}).Error
}

// DeleteBySupervisorID deletes every request addressed to a supervisor
func (r *ProjectIdeaRequestRepository) DeleteBySupervisorID(supervisorID uuid.UUID) error {
	return r.db.Where("supervisor_id = ?", supervisorID).Delete(&models.ProjectIdeaRequest{}).Error
}
