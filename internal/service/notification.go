package service

import (
	"context"
	"fmt"

	"graduation-portal-backend/internal/auth"
	apperrors "graduation-portal-backend/internal/errors"
	"graduation-portal-backend/internal/notification"
	"graduation-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// NotificationService serves a recipient's inbox and live stream
type NotificationService struct {
	store    repository.Store
	registry notification.SessionRegistry
}

// NewNotificationService creates a new notification service
func NewNotificationService(store repository.Store, registry notification.SessionRegistry) *NotificationService {
	return &NotificationService{
		store:    store,
		registry: registry,
	}
}

// ListNotifications returns the caller's notifications, newest first
func (s *NotificationService) ListNotifications(ctx context.Context, caller auth.Caller, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error) {
	page, pageSize, limit, offset := pageBounds(page, pageSize)

	repos := s.store.Repositories(ctx)
	items, total, err := repos.Notifications.GetByRecipientID(caller.ID(), unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	unread, err := repos.Notifications.CountUnread(caller.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(items)),
		Total:         total,
		Unread:        unread,
		Page:          page,
		PageSize:      pageSize,
	}
	for i := range items {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(&items[i]))
	}
	return resp, nil
}

// UnreadCount returns how many of the caller's notifications are unread
func (s *NotificationService) UnreadCount(ctx context.Context, caller auth.Caller) (int64, error) {
	count, err := s.store.Repositories(ctx).Notifications.CountUnread(caller.ID())
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks one of the caller's notifications as read. Marking a read notification is a no-op.
func (s *NotificationService) MarkRead(ctx context.Context, caller auth.Caller, notificationID uuid.UUID) (*NotificationResponse, error) {
	var resp NotificationResponse
	err := s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		n, err := repos.Notifications.GetByID(notificationID)
		if err != nil {
			return lookupError(err, apperrors.ErrNotificationNotFound, "load notification")
		}
		if n.RecipientID != caller.ID() {
			return apperrors.ErrNotificationForbidden
		}
		if err := repos.Notifications.MarkRead(n.ID); err != nil {
			return fmt.Errorf("failed to mark notification read: %w", err)
		}

		n, err = repos.Notifications.GetByID(n.ID)
		if err != nil {
			return lookupError(err, apperrors.ErrNotificationNotFound, "reload notification")
		}
		resp = toNotificationResponse(n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// MarkAllRead marks every unread notification of the caller as read and returns how many changed
func (s *NotificationService) MarkAllRead(ctx context.Context, caller auth.Caller) (int64, error) {
	var updated int64
	err := s.store.WithTransaction(ctx, func(repos *repository.Repositories) error {
		var err error
		updated, err = repos.Notifications.MarkAllRead(caller.ID())
		if err != nil {
			return fmt.Errorf("failed to mark notifications read: %w", err)
		}
		return nil
	})
	return updated, err
}

// Subscribe opens a live session for the caller; the returned func closes it
func (s *NotificationService) Subscribe(caller auth.Caller) (*notification.Session, func()) {
	session := s.registry.Register(caller.ID())
	return session, func() { s.registry.Unregister(session) }
}
