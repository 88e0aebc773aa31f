package service_test

import (
	"testing"
	"time"

	"graduation-portal-backend/internal/database/models"
	apperrors "graduation-portal-backend/internal/errors"
	"graduation-portal-backend/internal/notification"
	"graduation-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceTestSuite struct {
	workflowSuite
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

func (s *NotificationServiceTestSuite) seed(recipient *models.Student, titles ...string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(titles))
	for _, title := range titles {
		n := &models.Notification{
			RecipientID:   recipient.ID,
			RecipientRole: models.RoleStudent,
			Title:         title,
			Status:        models.NotificationStatusUnread,
		}
		require.NoError(s.T(), s.repos().Notifications.Create(n))
		ids = append(ids, n.ID)
	}
	return ids
}

func (s *NotificationServiceTestSuite) TestListAndMarkRead() {
	student := s.newStudent("Reader")
	other := s.newStudent("Other")
	ids := s.seed(student, "first", "second", "third")
	otherIDs := s.seed(other, "private")

	list, err := s.inbox.ListNotifications(s.ctx, asStudent(student), false, 1, 2)
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 3, list.Total)
	assert.EqualValues(s.T(), 3, list.Unread)
	require.Len(s.T(), list.Notifications, 2)
	assert.Equal(s.T(), "third", list.Notifications[0].Title)

	read, err := s.inbox.MarkRead(s.ctx, asStudent(student), ids[0])
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.NotificationStatusRead, read.Status)
	require.NotNil(s.T(), read.ReadAt)

	again, err := s.inbox.MarkRead(s.ctx, asStudent(student), ids[0])
	require.NoError(s.T(), err)
	assert.Equal(s.T(), *read.ReadAt, *again.ReadAt)

	_, err = s.inbox.MarkRead(s.ctx, asStudent(student), otherIDs[0])
	assert.ErrorIs(s.T(), err, apperrors.ErrNotificationForbidden)

	_, err = s.inbox.MarkRead(s.ctx, asStudent(student), uuid.New())
	assert.ErrorIs(s.T(), err, apperrors.ErrNotificationNotFound)

	unread, err := s.inbox.UnreadCount(s.ctx, asStudent(student))
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 2, unread)

	unreadOnly, err := s.inbox.ListNotifications(s.ctx, asStudent(student), true, 1, 10)
	require.NoError(s.T(), err)
	assert.Len(s.T(), unreadOnly.Notifications, 2)

	updated, err := s.inbox.MarkAllRead(s.ctx, asStudent(student))
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 2, updated)

	unread, err = s.inbox.UnreadCount(s.ctx, asStudent(student))
	require.NoError(s.T(), err)
	assert.Zero(s.T(), unread)

	otherUnread, err := s.inbox.UnreadCount(s.ctx, asStudent(other))
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 1, otherUnread)
}

func (s *NotificationServiceTestSuite) TestSubscribeReceivesCommittedNotifications() {
	registry := notification.NewRegistry(4)
	dispatcher := notification.NewDispatcher(notification.NewRegistrySink(registry), notification.DispatcherOptions{Workers: 1, QueueSize: 8})
	defer dispatcher.Close()

	teams := service.NewTeamService(s.store, dispatcher, s.validator, service.DefaultLimits())
	inbox := service.NewNotificationService(s.store, registry)

	owner := s.newStudent("Owner")
	applicant := s.newStudent("Applicant")
	team := s.createTeam(owner, "Alpha")

	session, unsubscribe := inbox.Subscribe(asStudent(owner))
	assert.Equal(s.T(), 1, registry.Count())

	_, err := teams.RequestToJoin(s.ctx, asStudent(applicant), team.ID, &service.JoinTeamRequest{Message: "hello"})
	require.NoError(s.T(), err)

	select {
	case msg := <-session.Events():
		assert.Equal(s.T(), owner.ID, msg.RecipientID)
		assert.Equal(s.T(), "New join request", msg.Title)
	case <-time.After(2 * time.Second):
		s.T().Fatal("notification was not pushed to the session")
	}

	unsubscribe()
	assert.Zero(s.T(), registry.Count())
	_, open := <-session.Events()
	assert.False(s.T(), open)
}

func (s *NotificationServiceTestSuite) TestRolledBackTransitionPushesNothing() {
	registry := notification.NewRegistry(4)
	dispatcher := notification.NewDispatcher(notification.NewRegistrySink(registry), notification.DispatcherOptions{})
	teams := service.NewTeamService(s.store, dispatcher, s.validator, service.DefaultLimits())
	inbox := service.NewNotificationService(s.store, registry)

	owner := s.newStudent("Owner")
	member := s.newStudent("Member")
	team := s.createTeam(owner, "Alpha")
	s.addMember(team.ID, owner, member)

	session, unsubscribe := inbox.Subscribe(asStudent(owner))
	defer unsubscribe()

	// the member is already in the team, so the request fails after nothing was recorded
	_, err := teams.RequestToJoin(s.ctx, asStudent(member), team.ID, &service.JoinTeamRequest{})
	require.ErrorIs(s.T(), err, apperrors.ErrAlreadyTeamMember)

	select {
	case msg := <-session.Events():
		s.T().Fatalf("unexpected push %q", msg.Title)
	default:
	}
}
