package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Bus publishes events to an in-process gochannel pub/sub that the inbox
// subscribes to, and fans them out to any extra publishers such as Kafka.
// A failing extra publisher is logged and does not fail the publish.
// Local publishes wait for the subscriber's ack, so subscribers see events
// in publish order.
type Bus struct {
	topic  string
	local  *gochannel.GoChannel
	extra  []message.Publisher
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
}

func NewBus(topic string, logger *slog.Logger, extra ...message.Publisher) *Bus {
	return &Bus{
		topic: topic,
		local: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer:            64,
			BlockPublishUntilSubscriberAck: true,
		}, watermill.NewSlogLogger(logger)),
		extra:  extra,
		logger: logger,
	}
}

func (b *Bus) Topic() string {
	return b.topic
}

// Subscribe exposes the local pub/sub to in-process consumers.
func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return b.local.Subscribe(ctx, b.topic)
}

func (b *Bus) Publish(ctx context.Context, event *Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("event_type", event.Type)
	msg.Metadata.Set("session_id", event.SessionID)
	msg.SetContext(ctx)

	if err := b.local.Publish(b.topic, msg); err != nil {
		return fmt.Errorf("failed to publish event locally: %w", err)
	}

	for _, pub := range b.extra {
		if err := pub.Publish(b.topic, msg.Copy()); err != nil {
			b.logger.Error("Failed to fan out event", "event_id", event.ID, "event_type", event.Type, "error", err)
		}
	}

	b.logger.Debug("Event published", "event_id", event.ID, "event_type", event.Type)
	return nil
}

func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	var errs []error
	for _, pub := range b.extra {
		if err := pub.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := b.local.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

var ErrBusClosed = errors.New("event bus closed")

// DecodeMessage turns a bus message back into an Event.
func DecodeMessage(msg *message.Message) (*Event, error) {
	var event Event
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return nil, fmt.Errorf("failed to decode event %s: %w", msg.UUID, err)
	}
	return &event, nil
}
