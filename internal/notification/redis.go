package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"graduation-portal-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RecipientChannel is the per-recipient pub/sub channel name
func RecipientChannel(prefix string, recipientID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", prefix, recipientID)
}

// RedisSink publishes notifications so every server instance can reach the recipient
type RedisSink struct {
	client  redis.UniversalClient
	channel string
}

// NewRedisSink creates a sink publishing on <channel>:<recipient id>
func NewRedisSink(client redis.UniversalClient, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel}
}

// Publish serializes the message and publishes it on the recipient channel
func (s *RedisSink) Publish(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := s.client.Publish(ctx, RecipientChannel(s.channel, msg.RecipientID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// Relay subscribes to every recipient channel and forwards messages to local sessions
type Relay struct {
	client   redis.UniversalClient
	channel  string
	registry SessionRegistry
}

// NewRelay creates a relay for the given channel prefix
func NewRelay(client redis.UniversalClient, channel string, registry SessionRegistry) *Relay {
	return &Relay{client: client, channel: channel, registry: registry}
}

// Run blocks until ctx is done or the subscription fails
func (r *Relay) Run(ctx context.Context) error {
	pubsub := r.client.PSubscribe(ctx, r.channel+":*")
	defer pubsub.Close()

	// Confirm the subscription before relaying
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}

	log := logger.New().WithField("channel", r.channel)
	log.Info("Notification relay subscribed")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			r.forward(log, msg)
		}
	}
}

func (r *Relay) forward(log *logger.Logger, msg *redis.Message) {
	var payload Message
	if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
		log.WithError(err).WithField("redis_channel", msg.Channel).Warn("Discarding malformed notification payload")
		return
	}

	// The channel suffix is authoritative for routing
	suffix := strings.TrimPrefix(msg.Channel, r.channel+":")
	if recipientID, err := uuid.Parse(suffix); err == nil {
		payload.RecipientID = recipientID
	}

	r.registry.Deliver(payload)
}
