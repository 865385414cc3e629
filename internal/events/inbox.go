package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

const DefaultInboxCapacity = 50

// Inbox keeps the notifications published for each session until the
// session's client drains them. Older entries are dropped past capacity.
type Inbox struct {
	capacity int
	logger   *slog.Logger

	mu     sync.Mutex
	queues map[string][]models.Notification
}

func NewInbox(capacity int, logger *slog.Logger) *Inbox {
	if capacity <= 0 {
		capacity = DefaultInboxCapacity
	}
	return &Inbox{
		capacity: capacity,
		logger:   logger,
		queues:   make(map[string][]models.Notification),
	}
}

// Run consumes bus messages until ctx is done or the bus closes.
func (in *Inbox) Run(ctx context.Context, bus *Bus) error {
	messages, err := bus.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			event, err := DecodeMessage(msg)
			if err != nil {
				in.logger.Error("Dropping undecodable event", "message_id", msg.UUID, "error", err)
				msg.Ack()
				continue
			}
			in.Handle(event)
			msg.Ack()
		}
	}()
	return nil
}

// Handle applies one event to the inbox.
func (in *Inbox) Handle(event *Event) {
	switch event.Type {
	case TypeNotificationCreated:
		var n models.Notification
		if err := event.Decode(&n); err != nil {
			in.logger.Error("Invalid notification payload", "event_id", event.ID, "error", err)
			return
		}
		in.push(event.SessionID, n)
	case TypeSessionEnded:
		in.Forget(event.SessionID)
	}
}

func (in *Inbox) push(sessionID string, n models.Notification) {
	if sessionID == "" {
		return
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	queue := append(in.queues[sessionID], n)
	if len(queue) > in.capacity {
		queue = queue[len(queue)-in.capacity:]
	}
	in.queues[sessionID] = queue
}

// Drain returns and clears the pending notifications of a session.
func (in *Inbox) Drain(sessionID string) []models.Notification {
	in.mu.Lock()
	defer in.mu.Unlock()

	queue := in.queues[sessionID]
	delete(in.queues, sessionID)
	if queue == nil {
		return []models.Notification{}
	}
	return queue
}

// Peek returns the pending notifications without clearing them.
func (in *Inbox) Peek(sessionID string) []models.Notification {
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]models.Notification{}, in.queues[sessionID]...)
}

func (in *Inbox) Forget(sessionID string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	delete(in.queues, sessionID)
}
