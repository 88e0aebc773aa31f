package notification_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"graduation-portal-backend/internal/database/models"
	"graduation-portal-backend/internal/mocks"
	"graduation-portal-backend/internal/notification"
	"graduation-portal-backend/internal/repository"
	"graduation-portal-backend/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DispatcherTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	sink  *mocks.MockSink
	store *memory.Store
	ctx   context.Context
}

func (s *DispatcherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sink = mocks.NewMockSink(s.ctrl)
	s.store = memory.NewStore()
	s.ctx = context.Background()
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DispatcherTestSuite) TestBatchRecordsAndPushesAfterCommit() {
	dispatcher := notification.NewDispatcher(s.sink, notification.DispatcherOptions{})
	recipient := uuid.New()
	batch := dispatcher.Batch()

	err := s.store.WithTransaction(s.ctx, func(repos *repository.Repositories) error {
		return batch.Record(repos.Notifications, recipient, models.RoleStudent, "Task assigned", "Write the report")
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, batch.Len())

	s.sink.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notification.Message) error {
			assert.Equal(s.T(), recipient, msg.RecipientID)
			assert.Equal(s.T(), "Task assigned", msg.Title)
			assert.NotEqual(s.T(), uuid.Nil, msg.ID)
			return nil
		})
	batch.Send(s.ctx)

	stored, total, err := s.store.Repositories(s.ctx).Notifications.GetByRecipientID(recipient, true, 10, 0)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
	assert.Equal(s.T(), models.NotificationStatusUnread, stored[0].Status)
	assert.Equal(s.T(), models.RoleStudent, stored[0].RecipientRole)
}

func (s *DispatcherTestSuite) TestRolledBackTransactionLeavesNoRecord() {
	dispatcher := notification.NewDispatcher(s.sink, notification.DispatcherOptions{})
	recipient := uuid.New()
	batch := dispatcher.Batch()

	err := s.store.WithTransaction(s.ctx, func(repos *repository.Repositories) error {
		if err := batch.Record(repos.Notifications, recipient, models.RoleSupervisor, "t", "b"); err != nil {
			return err
		}
		return errors.New("transition failed")
	})
	require.Error(s.T(), err)

	count, err := s.store.Repositories(s.ctx).Notifications.CountUnread(recipient)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), count)
}

func (s *DispatcherTestSuite) TestPushFailureIsSwallowed() {
	dispatcher := notification.NewDispatcher(s.sink, notification.DispatcherOptions{})

	s.sink.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(2)

	assert.NotPanics(s.T(), func() {
		dispatcher.Push(s.ctx, []notification.Message{{RecipientID: uuid.New()}, {RecipientID: uuid.New()}})
	})
}

func (s *DispatcherTestSuite) TestWorkerPoolDeliversEverything() {
	dispatcher := notification.NewDispatcher(s.sink, notification.DispatcherOptions{Workers: 3, QueueSize: 16})

	var mu sync.Mutex
	seen := map[uuid.UUID]bool{}
	s.sink.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notification.Message) error {
			mu.Lock()
			seen[msg.ID] = true
			mu.Unlock()
			return nil
		}).
		Times(10)

	messages := make([]notification.Message, 10)
	for i := range messages {
		messages[i] = notification.Message{ID: uuid.New(), RecipientID: uuid.New()}
	}
	dispatcher.Push(s.ctx, messages)
	dispatcher.Close()

	assert.Len(s.T(), seen, 10)
}

func (s *DispatcherTestSuite) TestPushAfterCloseIsDropped() {
	dispatcher := notification.NewDispatcher(s.sink, notification.DispatcherOptions{Workers: 1, QueueSize: 1})
	dispatcher.Close()
	dispatcher.Close()

	assert.NotPanics(s.T(), func() {
		dispatcher.Push(s.ctx, []notification.Message{{RecipientID: uuid.New()}})
	})
}

func TestDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}
