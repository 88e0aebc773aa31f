package repository

import (
	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create creates a new student
func (r *StudentRepository) Create(student *models.Student) error {
	return r.db.Create(student).Error
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(id uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByIDForUpdate retrieves a student by ID and locks the row
func (r *StudentRepository) GetByIDForUpdate(id uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&student, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(email string) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByTeamID retrieves the members of a team
func (r *StudentRepository) GetByTeamID(teamID uuid.UUID) ([]models.Student, error) {
	var students []models.Student
	err := r.db.Where("team_id = ?", teamID).Order("created_at ASC").Find(&students).Error
	return students, err
}

// CountByTeamID returns the number of members in a team
func (r *StudentRepository) CountByTeamID(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Student{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// Update updates a student
func (r *StudentRepository) Update(student *models.Student) error {
	return r.db.Omit(clause.Associations).Save(student).Error
}

// Delete deletes a student
func (r *StudentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Student{}, "id = ?", id).Error
}
