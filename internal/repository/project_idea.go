package repository

import (
	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectIdeaRepository handles database operations for project ideas
type ProjectIdeaRepository struct {
	db *gorm.DB
}

// NewProjectIdeaRepository creates a new project idea repository
func NewProjectIdeaRepository(db *gorm.DB) *ProjectIdeaRepository {
	return &ProjectIdeaRepository{db: db}
}

// Create creates a new project idea
func (r *ProjectIdeaRepository) Create(idea *models.ProjectIdea) error {
	return r.db.Omit(clause.Associations).Create(idea).Error
}

// GetByID retrieves a project idea by ID
func (r *ProjectIdeaRepository) GetByID(id uuid.UUID) (*models.ProjectIdea, error) {
	var idea models.ProjectIdea
	err := r.db.First(&idea, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// GetByIDForUpdate retrieves a project idea by ID and locks the row
func (r *ProjectIdeaRepository) GetByIDForUpdate(id uuid.UUID) (*models.ProjectIdea, error) {
	var idea models.ProjectIdea
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&idea, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// GetByTeamID retrieves all project ideas of a team
func (r *ProjectIdeaRepository) GetByTeamID(teamID uuid.UUID) ([]models.ProjectIdea, error) {
	var ideas []models.ProjectIdea
	err := r.db.Where("team_id = ?", teamID).Order("created_at ASC").Find(&ideas).Error
	return ideas, err
}

// GetAcceptedByTeamID retrieves the accepted project idea of a team
func (r *ProjectIdeaRepository) GetAcceptedByTeamID(teamID uuid.UUID) (*models.ProjectIdea, error) {
	var idea models.ProjectIdea
	err := r.db.First(&idea, "team_id = ? AND status = ?", teamID, models.ApprovalStatusAccepted).Error
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// GetBySupervisorID retrieves the project ideas a supervisor accepted
func (r *ProjectIdeaRepository) GetBySupervisorID(supervisorID uuid.UUID) ([]models.ProjectIdea, error) {
	var ideas []models.ProjectIdea
	err := r.db.Where("supervisor_id = ?", supervisorID).Order("created_at ASC").Find(&ideas).Error
	return ideas, err
}

// Update updates a project idea
func (r *ProjectIdeaRepository) Update(idea *models.ProjectIdea) error {
	return r.db.Omit(clause.Associations).Save(idea).Error
}

// Delete deletes a project idea
func (r *ProjectIdeaRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectIdea{}, "id = ?", id).Error
}
