package repository

import (
	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByIDForUpdate retrieves a team by ID and locks the row for the rest of the transaction
func (r *TeamRepository) GetByIDForUpdate(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves teams matching the filter with pagination
func (r *TeamRepository) List(filter TeamFilter, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	query := r.db.Model(&models.Team{})
	if filter.OpenOnly {
		query = query.Where("is_open_to_join = ?", true)
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at ASC").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// GetBySupervisorID retrieves all teams supervised by a supervisor
func (r *TeamRepository) GetBySupervisorID(supervisorID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("supervisor_id = ?", supervisorID).Order("created_at ASC").Find(&teams).Error
	return teams, err
}

// CountBySupervisorID returns the number of teams supervised by a supervisor
func (r *TeamRepository) CountBySupervisorID(supervisorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("supervisor_id = ?", supervisorID).Count(&count).Error
	return count, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Omit(clause.Associations).Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
