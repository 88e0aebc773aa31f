package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"graduation-portal-backend/internal/database/models"
	"graduation-portal-backend/internal/logger"
	"graduation-portal-backend/internal/repository"

	"github.com/google/uuid"
)

const pushTimeout = 5 * time.Second

// DispatcherOptions tunes asynchronous delivery. Workers == 0 pushes inline.
type DispatcherOptions struct {
	Workers   int
	QueueSize int
}

// Dispatcher turns workflow transitions into notification records and pushes
// them after the transition commits.
type Dispatcher struct {
	sink Sink

	mu     sync.RWMutex
	queue  chan Message
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher; with workers it starts the delivery pool
func NewDispatcher(sink Sink, opts DispatcherOptions) *Dispatcher {
	d := &Dispatcher{sink: sink}
	if opts.Workers <= 0 {
		return d
	}

	size := opts.QueueSize
	if size <= 0 {
		size = opts.Workers
	}
	d.queue = make(chan Message, size)
	for i := 0; i < opts.Workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
	return d
}

// Batch collects the notifications of one transition
func (d *Dispatcher) Batch() *Batch {
	return &Batch{dispatcher: d}
}

// Push delivers messages best-effort. Failures are logged and never returned.
func (d *Dispatcher) Push(ctx context.Context, messages []Message) {
	for _, msg := range messages {
		if d.queue == nil {
			d.publish(ctx, msg)
			continue
		}
		d.enqueue(ctx, msg)
	}
}

func (d *Dispatcher) enqueue(ctx context.Context, msg Message) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		logPushFailure(ctx, msg, fmt.Errorf("dispatcher closed"))
		return
	}
	select {
	case d.queue <- msg:
	default:
		logPushFailure(ctx, msg, fmt.Errorf("delivery queue full"))
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		d.publish(ctx, msg)
		cancel()
	}
}

func (d *Dispatcher) publish(ctx context.Context, msg Message) {
	if err := d.sink.Publish(ctx, msg); err != nil {
		logPushFailure(ctx, msg, err)
	}
}

// Close drains queued messages and stops the workers
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed || d.queue == nil {
		d.closed = true
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func logPushFailure(ctx context.Context, msg Message, err error) {
	logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
		"notification_id": msg.ID,
		"recipient_id":    msg.RecipientID,
	}).Warn("Failed to push notification")
}

// Batch records notifications inside a transaction and sends them once it commits
type Batch struct {
	dispatcher *Dispatcher
	messages   []Message
}

// Record persists one unread notification through the transaction's repository
func (b *Batch) Record(repo repository.NotificationRepositoryInterface, recipientID uuid.UUID, role models.Role, title, body string) error {
	n := &models.Notification{
		RecipientID:   recipientID,
		RecipientRole: role,
		Title:         title,
		Body:          body,
		Status:        models.NotificationStatusUnread,
	}
	if err := repo.Create(n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	b.messages = append(b.messages, MessageFromModel(n))
	return nil
}

// Len returns the number of recorded notifications
func (b *Batch) Len() int {
	return len(b.messages)
}

// Send pushes the recorded notifications; call it only after the transaction committed
func (b *Batch) Send(ctx context.Context) {
	if len(b.messages) == 0 {
		return
	}
	b.dispatcher.Push(ctx, b.messages)
	b.messages = nil
}
