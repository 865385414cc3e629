package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
	"github.com/SAP-F-2025/course-catalog-service/internal/task"
)

// DefaultSubmitDelay is how long a simulated submission takes.
const DefaultSubmitDelay = 1500 * time.Millisecond

// Submitter runs simulated form submissions as delayed tasks. A submission
// that completes emits exactly one notification; one that is abandoned by
// its request or its session emits none.
type Submitter struct {
	base     context.Context
	clock    task.Clock
	delay    time.Duration
	notifier NotificationService
	logger   *slog.Logger
}

func NewSubmitter(base context.Context, clock task.Clock, delay time.Duration, notifier NotificationService, logger *slog.Logger) *Submitter {
	if clock == nil {
		clock = task.RealClock{}
	}
	if delay < 0 {
		delay = 0
	}
	return &Submitter{
		base:     base,
		clock:    clock,
		delay:    delay,
		notifier: notifier,
		logger:   logger,
	}
}

// submission describes one delayed form post. commit runs only when the
// task completed and was not canceled; it returns the toast to emit, whose
// SessionID, when set, overrides the submitting session. A nil commit
// emits nothing.
type submission[T any] struct {
	name    string
	session *session.Session
	work    func(ctx context.Context) (T, error)
	commit  func(T) models.Notification
}

func submit[T any](ctx context.Context, s *Submitter, sub submission[T]) (T, models.Notification, error) {
	var zero T

	parent := s.base
	sessionID := ""
	if sub.session != nil {
		parent = sub.session.Context()
		sessionID = sub.session.ID()
	}
	if parent.Err() != nil {
		return zero, models.Notification{}, fmt.Errorf("%s: %w", sub.name, ErrSubmissionCanceled)
	}

	var toast models.Notification
	work := sub.work
	if work == nil {
		work = func(context.Context) (T, error) { return zero, nil }
	}

	t := task.Schedule(parent, s.clock, s.delay, work, func(result T) {
		if sub.commit == nil {
			return
		}
		n := sub.commit(result)
		target := n.SessionID
		if target == "" {
			target = sessionID
		}
		published, err := s.notifier.Notify(context.WithoutCancel(ctx), target, n)
		if err != nil {
			// the toast still goes back with the response
			s.logger.Warn("Submission notification not delivered", "submission", sub.name, "error", err)
		}
		toast = published
	})

	if sub.session != nil {
		id := uuid.NewString()
		if err := sub.session.Track(id, t); err != nil {
			t.Cancel()
			return zero, models.Notification{}, fmt.Errorf("%s: %w", sub.name, ErrSubmissionCanceled)
		}
		defer sub.session.Untrack(id)
	}

	result, err := t.Wait(ctx)
	if ctx.Err() != nil {
		if t.Cancel() {
			s.logger.Info("Submission abandoned", "submission", sub.name, "session_id", sessionID)
			return zero, models.Notification{}, fmt.Errorf("%s: %w", sub.name, ErrSubmissionCanceled)
		}
		// finished while the request was going away
		result, err = t.Wait(context.Background())
	}
	if err != nil {
		if errors.Is(err, task.ErrCanceled) {
			return zero, models.Notification{}, fmt.Errorf("%s: %w", sub.name, ErrSubmissionCanceled)
		}
		return zero, models.Notification{}, fmt.Errorf("%s failed: %w", sub.name, err)
	}

	return result, toast, nil
}

// submitToast is submit for forms with nothing to return but the toast.
func submitToast(ctx context.Context, s *Submitter, name string, sess *session.Session, n models.Notification) (models.Notification, error) {
	_, toast, err := submit(ctx, s, submission[struct{}]{
		name:    name,
		session: sess,
		commit:  func(struct{}) models.Notification { return n },
	})
	return toast, err
}

// notifyNow emits an immediate toast for actions that do not simulate latency.
func notifyNow(ctx context.Context, notifier NotificationService, sess *session.Session, n models.Notification) (models.Notification, error) {
	if sess.Ended() {
		return models.Notification{}, session.ErrSessionEnded
	}
	return notifier.Notify(ctx, sess.ID(), n)
}
