package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"graduation-portal-backend/internal/api/handlers"
	"graduation-portal-backend/internal/auth"
	"graduation-portal-backend/internal/database/models"
	apperrors "graduation-portal-backend/internal/errors"
	"graduation-portal-backend/internal/mocks"
	"graduation-portal-backend/internal/notification"
	"graduation-portal-backend/internal/service"
	"graduation-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// streamRecorder lets gin's Stream run against a recorder
type streamRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *streamRecorder) CloseNotify() <-chan bool {
	return r.closed
}

type NotificationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockNotificationServiceInterface
	handler     *handlers.NotificationHandler
	httpSuite   *testutils.HTTPTestSuite
	caller      auth.Caller
}

func (suite *NotificationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewNotificationHandler(suite.mockService)

	suite.caller = studentCaller()
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Caller = suite.caller

	notifications := suite.httpSuite.Router.Group("/api/v1/notifications")
	{
		notifications.GET("", suite.handler.ListNotifications)
		notifications.GET("/unread-count", suite.handler.UnreadCount)
		notifications.GET("/stream", suite.handler.Stream)
		notifications.POST("/read-all", suite.handler.MarkAllRead)
		notifications.POST("/:id/read", suite.handler.MarkRead)
	}
}

func (suite *NotificationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationHandlerTestSuite) TestListNotifications() {
	suite.T().Run("Unread only", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListNotifications(gomock.Any(), suite.caller, true, 1, 20).
			Return(&service.NotificationListResponse{
				Notifications: []service.NotificationResponse{{ID: uuid.New(), Title: "Join request accepted", Status: models.NotificationStatusUnread}},
				Total:         1,
				Unread:        1,
				Page:          1,
				PageSize:      20,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/notifications?unread=true", nil)

		var response service.NotificationListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(1), response.Unread)
		assert.Equal(t, "Join request accepted", response.Notifications[0].Title)
	})

	suite.T().Run("All", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListNotifications(gomock.Any(), suite.caller, false, 3, 20).
			Return(&service.NotificationListResponse{Notifications: []service.NotificationResponse{}, Page: 3, PageSize: 20}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/notifications?page=3", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func (suite *NotificationHandlerTestSuite) TestCounts() {
	suite.T().Run("Unread count", func(t *testing.T) {
		suite.mockService.EXPECT().UnreadCount(gomock.Any(), suite.caller).Return(int64(4), nil).Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/notifications/unread-count", nil)

		var response handlers.CountResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(4), response.Count)
	})

	suite.T().Run("Mark all read", func(t *testing.T) {
		suite.mockService.EXPECT().MarkAllRead(gomock.Any(), suite.caller).Return(int64(2), nil).Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/notifications/read-all", nil)

		var response handlers.CountResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(2), response.Count)
	})
}

func (suite *NotificationHandlerTestSuite) TestMarkRead() {
	notificationID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		readAt := "2025-03-01T09:00:00Z"
		suite.mockService.EXPECT().
			MarkRead(gomock.Any(), suite.caller, notificationID).
			Return(&service.NotificationResponse{ID: notificationID, Status: models.NotificationStatusRead, ReadAt: &readAt}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/notifications/"+notificationID.String()+"/read", nil)

		var response service.NotificationResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.NotificationStatusRead, response.Status)
	})

	suite.T().Run("Someone else's notification", func(t *testing.T) {
		suite.mockService.EXPECT().
			MarkRead(gomock.Any(), suite.caller, notificationID).
			Return(nil, apperrors.ErrNotificationForbidden).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/notifications/"+notificationID.String()+"/read", nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/notifications/nope/read", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid notification ID")
	})
}

func (suite *NotificationHandlerTestSuite) TestStream() {
	registry := notification.NewRegistry(4)
	session := registry.Register(suite.caller.ID())
	delivered := registry.Deliver(notification.Message{
		ID:            uuid.New(),
		RecipientID:   suite.caller.ID(),
		RecipientRole: models.RoleStudent,
		Title:         "Task assigned",
		Body:          "You have a new task",
		CreatedAt:     time.Now(),
	})
	suite.Require().Equal(1, delivered)

	// Closing the session ends the stream once the buffered message is written.
	registry.Unregister(session)

	suite.mockService.EXPECT().
		Subscribe(suite.caller).
		Return(session, func() { registry.Unregister(session) }).
		Times(1)

	req := httptest.NewRequest("GET", "/api/v1/notifications/stream", nil)
	recorder := &streamRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool)}
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	body := recorder.Body.String()
	suite.Equal(http.StatusOK, recorder.Code)
	suite.True(strings.HasPrefix(recorder.Header().Get("Content-Type"), "text/event-stream"), recorder.Header().Get("Content-Type"))
	suite.Contains(body, "event:ready")
	suite.Contains(body, session.ID.String())
	suite.Contains(body, "event:notification")
	suite.Contains(body, "Task assigned")
	suite.Equal(0, registry.Count())
}

func (suite *NotificationHandlerTestSuite) TestStreamRequiresCaller() {
	suite.httpSuite.Caller = nil

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/notifications/stream", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authentication required")
}

func TestNotificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}
