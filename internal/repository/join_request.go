package repository

import (
	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JoinRequestRepository handles database operations for team join requests
type JoinRequestRepository struct {
	db *gorm.DB
}

// NewJoinRequestRepository creates a new join request repository
func NewJoinRequestRepository(db *gorm.DB) *JoinRequestRepository {
	return &JoinRequestRepository{db: db}
}

// Create creates a new join request
func (r *JoinRequestRepository) Create(request *models.TeamJoinRequest) error {
	return r.db.Omit(clause.Associations).Create(request).Error
}

// GetByID retrieves a join request by ID
func (r *JoinRequestRepository) GetByID(id uuid.UUID) (*models.TeamJoinRequest, error) {
	var request models.TeamJoinRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByIDForUpdate retrieves a join request by ID and locks the row
func (r *JoinRequestRepository) GetByIDForUpdate(id uuid.UUID) (*models.TeamJoinRequest, error) {
	var request models.TeamJoinRequest
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetPending retrieves the pending request a student has open against a team
func (r *JoinRequestRepository) GetPending(teamID, studentID uuid.UUID) (*models.TeamJoinRequest, error) {
	var request models.TeamJoinRequest
	err := r.db.First(&request, "team_id = ? AND student_id = ? AND status = ?",
		teamID, studentID, models.ApprovalStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByTeamID retrieves the join requests of a team, optionally filtered by status
func (r *JoinRequestRepository) GetByTeamID(teamID uuid.UUID, status *models.ApprovalStatus) ([]models.TeamJoinRequest, error) {
	var requests []models.TeamJoinRequest
	query := r.db.Where("team_id = ?", teamID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at ASC").Find(&requests).Error
	return requests, err
}

// GetByStudentID retrieves the join requests a student authored, optionally filtered by status
func (r *JoinRequestRepository) GetByStudentID(studentID uuid.UUID, status *models.ApprovalStatus) ([]models.TeamJoinRequest, error) {
	var requests []models.TeamJoinRequest
	query := r.db.Where("student_id = ?", studentID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at ASC").Find(&requests).Error
	return requests, err
}

// Update updates a join request
func (r *JoinRequestRepository) Update(request *models.TeamJoinRequest) error {
	return r.db.Omit(clause.Associations).Save(request).Error
}

// DeleteByTeamID deletes every join request of a team
func (r *JoinRequestRepository) DeleteByTeamID(teamID uuid.UUID) error {
	return r.db.Where("team_id = ?", teamID).Delete(&models.TeamJoinRequest{}).Error
}

// DeleteByStudentID deletes every join request a student authored
func (r *JoinRequestRepository) DeleteByStudentID(studentID uuid.UUID) error {
	return r.db.Where("student_id = ?", studentID).Delete(&models.TeamJoinRequest{}).Error
}
