// Package notification records workflow notifications and pushes them to the
// recipients' live sessions.
package notification

import (
	"time"

	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// Message is the push payload delivered to connected clients
type Message struct {
	ID            uuid.UUID   `json:"id"`
	RecipientID   uuid.UUID   `json:"recipient_id"`
	RecipientRole models.Role `json:"recipient_role"`
	Title         string      `json:"title"`
	Body          string      `json:"body"`
	CreatedAt     time.Time   `json:"created_at"`
}

// MessageFromModel builds the push payload for a persisted notification
func MessageFromModel(n *models.Notification) Message {
	return Message{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		RecipientRole: n.RecipientRole,
		Title:         n.Title,
		Body:          n.Body,
		CreatedAt:     n.CreatedAt,
	}
}
