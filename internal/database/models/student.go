package models

import (
	"github.com/google/uuid"
)

// Student is a team-forming participant; a student belongs to at most one team
type Student struct {
	BaseModel
	FirstName    string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Department   string     `json:"department" gorm:"size:100" validate:"max=100"`
	AcademicYear int        `json:"academic_year" gorm:"default:4"`
	Bio          string     `json:"bio" gorm:"type:text"`
	TeamID       *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Student
func (Student) TableName() string {
	return "students"
}

// FullName joins first and last name
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// IsMemberOf reports whether the student currently belongs to the team
func (s *Student) IsMemberOf(teamID uuid.UUID) bool {
	return s.TeamID != nil && *s.TeamID == teamID
}
