package notification

import (
	"context"
)

//go:generate mockgen -source=sink.go -destination=../mocks/notification_mocks.go -package=mocks

// Sink delivers a notification to its recipient in real time.
// Delivery is best-effort; an error never undoes the workflow transition.
type Sink interface {
	Publish(ctx context.Context, msg Message) error
}

// RegistrySink pushes to sessions connected to this process
type RegistrySink struct {
	registry SessionRegistry
}

// NewRegistrySink creates a sink over the local session registry
func NewRegistrySink(registry SessionRegistry) *RegistrySink {
	return &RegistrySink{registry: registry}
}

// Publish delivers to every session of the recipient; no sessions is not an error
func (s *RegistrySink) Publish(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.registry.Deliver(msg)
	return nil
}
