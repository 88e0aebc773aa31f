package models

// Supervisor is a faculty member who accepts project ideas and reviews tasks
type Supervisor struct {
	BaseModel
	FirstName        string `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName         string `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email            string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Department       string `json:"department" gorm:"size:100" validate:"max=100"`
	Specialization   string `json:"specialization" gorm:"size:200"`
	MaxAssignedTeams int    `json:"max_assigned_teams" gorm:"not null"`

	// Relationships
	SupervisedTeams []Team `json:"supervised_teams,omitempty" gorm:"foreignKey:SupervisorID"`
}

// TableName returns the table name for Supervisor
func (Supervisor) TableName() string {
	return "supervisors"
}

// FullName joins first and last name
func (s *Supervisor) FullName() string {
	return s.FirstName + " " + s.LastName
}
