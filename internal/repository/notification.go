package repository

import (
	"time"

	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetByRecipientID retrieves a recipient's notifications, newest first, with pagination
func (r *NotificationRepository) GetByRecipientID(recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	query := r.db.Model(&models.Notification{}).Where("recipient_id = ?", recipientID)
	if unreadOnly {
		query = query.Where("status = ?", models.NotificationStatusUnread)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// CountUnread returns the number of unread notifications of a recipient
func (r *NotificationRepository) CountUnread(recipientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND status = ?", recipientID, models.NotificationStatusUnread).
		Count(&count).Error
	return count, err
}

// MarkRead flips an unread notification to read; read notifications are left untouched
func (r *NotificationRepository) MarkRead(id uuid.UUID) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND status = ?", id, models.NotificationStatusUnread).
		Updates(map[string]interface{}{
			"status":  models.NotificationStatusRead,
			"read_at": time.Now(),
		}).Error
}

// MarkAllRead flips every unread notification of a recipient and returns how many changed
func (r *NotificationRepository) MarkAllRead(recipientID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND status = ?", recipientID, models.NotificationStatusUnread).
		Updates(map[string]interface{}{
			"status":  models.NotificationStatusRead,
			"read_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// DeleteByRecipientID deletes every notification of a recipient
func (r *NotificationRepository) DeleteByRecipientID(recipientID uuid.UUID) error {
	return r.db.Where("recipient_id = ?", recipientID).Delete(&models.Notification{}).Error
}
