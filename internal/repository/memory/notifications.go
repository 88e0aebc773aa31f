package memory

import (
	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

func detachNotification(n models.Notification) models.Notification {
	n.ReadAt = copyTime(n.ReadAt)
	return n
}

func notificationBase(n models.Notification) models.BaseModel { return n.BaseModel }

type notificationRepository struct {
	h *handle
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	return r.h.write(func(st *state) error {
		r.h.stamp(&notification.BaseModel)
		st.notifications[notification.ID] = detachNotification(*notification)
		return nil
	})
}

func (r *notificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var out models.Notification
	err := r.h.read(func(st *state) error {
		n, err := lookup(st.notifications, id)
		out = detachNotification(n)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByRecipientID returns newest first
func (r *notificationRepository) GetByRecipientID(recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64
	err := r.h.read(func(st *state) error {
		all := collect(st.notifications, notificationBase, func(n models.Notification) bool {
			if n.RecipientID != recipientID {
				return false
			}
			return !unreadOnly || n.Status == models.NotificationStatusUnread
		})
		reverse(all)
		total = int64(len(all))
		for _, n := range paginate(all, limit, offset) {
			notifications = append(notifications, detachNotification(n))
		}
		return nil
	})
	return notifications, total, err
}

func reverse[V any](items []V) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

func (r *notificationRepository) CountUnread(recipientID uuid.UUID) (int64, error) {
	var count int64
	err := r.h.read(func(st *state) error {
		for _, n := range st.notifications {
			if n.RecipientID == recipientID && n.Status == models.NotificationStatusUnread {
				count++
			}
		}
		return nil
	})
	return count, err
}

func (r *notificationRepository) MarkRead(id uuid.UUID) error {
	return r.h.write(func(st *state) error {
		n, ok := st.notifications[id]
		if !ok || n.Status != models.NotificationStatusUnread {
			return nil
		}
		st.notifications[id] = r.markRead(n)
		return nil
	})
}

func (r *notificationRepository) MarkAllRead(recipientID uuid.UUID) (int64, error) {
	var changed int64
	err := r.h.write(func(st *state) error {
		for id, n := range st.notifications {
			if n.RecipientID == recipientID && n.Status == models.NotificationStatusUnread {
				st.notifications[id] = r.markRead(n)
				changed++
			}
		}
		return nil
	})
	return changed, err
}

func (r *notificationRepository) markRead(n models.Notification) models.Notification {
	now := r.h.now()
	n.Status = models.NotificationStatusRead
	n.ReadAt = &now
	n.UpdatedAt = now
	return n
}

func (r *notificationRepository) DeleteByRecipientID(recipientID uuid.UUID) error {
	return r.h.write(func(st *state) error {
		for id, n := range st.notifications {
			if n.RecipientID == recipientID {
				delete(st.notifications, id)
			}
		}
		return nil
	})
}
