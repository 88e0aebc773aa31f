package handlers

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"graduation-portal-backend/internal/logger"
	"graduation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const streamHeartbeat = 25 * time.Second

// NotificationHandler handles HTTP requests for the notification inbox and live stream
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
	heartbeat           time.Duration
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		heartbeat:           streamHeartbeat,
	}
}

// ListNotifications handles GET /notifications
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.NotificationListResponse "Notifications, newest first"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))
	page, pageSize := pagination(c)

	list, err := h.notificationService.ListNotifications(c.Request.Context(), caller, unreadOnly, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// UnreadCount handles GET /notifications/unread-count
// @Summary Count the caller's unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} CountResponse "Unread count"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// MarkRead handles POST /notifications/:id/read
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} service.NotificationResponse "Notification"
// @Failure 400 {object} ErrorResponse "Invalid notification ID"
// @Failure 403 {object} ErrorResponse "Notification belongs to another recipient"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "notification")
	if !ok {
		return
	}

	n, err := h.notificationService.MarkRead(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, n)
}

// MarkAllRead handles POST /notifications/read-all
// @Summary Mark every notification of the caller as read
// @Tags notifications
// @Produce json
// @Success 200 {object} CountResponse "Number of notifications marked"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	count, err := h.notificationService.MarkAllRead(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// Stream handles GET /notifications/stream
// @Summary Live notification stream
// @Description Server-Sent Events stream of the caller's new notifications. EventSource clients may pass the token as access_token.
// @Tags notifications
// @Produce text/event-stream
// @Param access_token query string false "Bearer token for clients that cannot set headers"
// @Success 200 {string} string "notification events"
// @Security BearerAuth
// @Router /notifications/stream [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	session, closeSession := h.notificationService.Subscribe(caller)
	defer closeSession()

	log := logger.WithContext(c.Request.Context()).WithField("session_id", session.ID)
	log.Debug("Notification stream opened")

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.SSEvent("ready", gin.H{"session_id": session.ID})
	c.Writer.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case msg, open := <-session.Events():
			if !open {
				return false
			}
			c.SSEvent("notification", msg)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		}
	})

	log.Debug("Notification stream closed")
}
