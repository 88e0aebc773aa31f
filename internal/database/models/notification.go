package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message addressed to one student or supervisor
type Notification struct {
	BaseModel
	RecipientID   uuid.UUID          `json:"recipient_id" gorm:"type:uuid;not null;index"`
	RecipientRole Role               `json:"recipient_role" gorm:"type:varchar(20);not null"`
	Title         string             `json:"title" gorm:"not null;size:200"`
	Body          string             `json:"body" gorm:"type:text"`
	Status        NotificationStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	ReadAt        *time.Time         `json:"read_at,omitempty"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
