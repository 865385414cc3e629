package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SAP-F-2025/course-catalog-service/internal/events"
	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

type notificationService struct {
	publisher events.EventPublisher
	inbox     *events.Inbox
	now       func() time.Time
	logger    *slog.Logger
}

// NewNotificationService publishes toasts as events; inbox is where the bus
// subscriber collects them for polling and may be nil when nothing polls.
func NewNotificationService(publisher events.EventPublisher, inbox *events.Inbox, logger *slog.Logger) NotificationService {
	return &notificationService{
		publisher: publisher,
		inbox:     inbox,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *notificationService) Notify(ctx context.Context, sessionID string, n models.Notification) (models.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Variant == "" {
		n.Variant = models.VariantDefault
	}
	n.SessionID = sessionID
	n.CreatedAt = s.now().UTC()

	event, err := events.NewEvent(events.TypeNotificationCreated, sessionID, n)
	if err != nil {
		return n, err
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish notification", "session_id", sessionID, "title", n.Title, "error", err)
		return n, fmt.Errorf("failed to publish notification: %w", err)
	}

	s.logger.Debug("Notification published", "session_id", sessionID, "title", n.Title)
	return n, nil
}

func (s *notificationService) Drain(sessionID string) []models.Notification {
	if s.inbox == nil {
		return []models.Notification{}
	}
	return s.inbox.Drain(sessionID)
}

func (s *notificationService) Peek(sessionID string) []models.Notification {
	if s.inbox == nil {
		return []models.Notification{}
	}
	return s.inbox.Peek(sessionID)
}
