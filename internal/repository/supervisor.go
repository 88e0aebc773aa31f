package repository

import (
	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SupervisorRepository handles database operations for supervisors
type SupervisorRepository struct {
	db *gorm.DB
}

// NewSupervisorRepository creates a new supervisor repository
func NewSupervisorRepository(db *gorm.DB) *SupervisorRepository {
	return &SupervisorRepository{db: db}
}

// Create creates a new supervisor
func (r *SupervisorRepository) Create(supervisor *models.Supervisor) error {
	return r.db.Create(supervisor).Error
}

// GetByID retrieves a supervisor by ID
func (r *SupervisorRepository) GetByID(id uuid.UUID) (*models.Supervisor, error) {
	var supervisor models.Supervisor
	err := r.db.First(&supervisor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &supervisor, nil
}

// GetByIDForUpdate retrieves a supervisor by ID and locks the row so concurrent
// approvals by the same supervisor serialize on the capacity check
func (r *SupervisorRepository) GetByIDForUpdate(id uuid.UUID) (*models.Supervisor, error) {
	var supervisor models.Supervisor
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&supervisor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &supervisor, nil
}

// GetByEmail retrieves a supervisor by email
func (r *SupervisorRepository) GetByEmail(email string) (*models.Supervisor, error) {
	var supervisor models.Supervisor
	err := r.db.First(&supervisor, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &supervisor, nil
}

// GetAll retrieves all supervisors with pagination
func (r *SupervisorRepository) GetAll(limit, offset int) ([]models.Supervisor, int64, error) {
	var supervisors []models.Supervisor
	var total int64

	if err := r.db.Model(&models.Supervisor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("last_name ASC, first_name ASC").Limit(limit).Offset(offset).Find(&supervisors).Error
	if err != nil {
		return nil, 0, err
	}

	return supervisors, total, nil
}

// Update updates a supervisor
func (r *SupervisorRepository) Update(supervisor *models.Supervisor) error {
	return r.db.Omit(clause.Associations).Save(supervisor).Error
}

// Delete deletes a supervisor
func (r *SupervisorRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Supervisor{}, "id = ?", id).Error
}
