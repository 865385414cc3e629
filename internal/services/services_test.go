package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/SAP-F-2025/course-catalog-service/internal/cache"
	"github.com/SAP-F-2025/course-catalog-service/internal/events"
	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/repositories/memory"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
	"github.com/SAP-F-2025/course-catalog-service/internal/task"
	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testEnv wires the services against the seeded memory store and a
// recording publisher.
type testEnv struct {
	repo      *memory.MemoryRepository
	publisher *events.MockEventPublisher
	sessions  *session.Manager
	notifier  NotificationService
	catalog   CatalogService
	submitter *Submitter
	validator *validator.Validator
	logger    *slog.Logger
}

func newTestEnv(t *testing.T, clock task.Clock, delay time.Duration) *testEnv {
	t.Helper()

	logger := discardLogger()
	publisher := events.NewMockEventPublisher(logger)
	sessions := session.NewManager(session.ManagerConfig{Logger: logger})
	t.Cleanup(sessions.Shutdown)

	base, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	repo := memory.NewRepository()
	notifier := NewNotificationService(publisher, nil, logger)
	return &testEnv{
		repo:      repo,
		publisher: publisher,
		sessions:  sessions,
		notifier:  notifier,
		catalog:   NewCatalogService(repo, logger),
		submitter: NewSubmitter(base, clock, delay, notifier, logger),
		validator: validator.New(),
		logger:    logger,
	}
}

func (e *testEnv) learner(t *testing.T) *session.Session {
	t.Helper()
	return e.sessions.Create(e.repo.User().Default(context.Background()))
}

func (e *testEnv) admin(t *testing.T) *session.Session {
	t.Helper()
	user, ok := e.repo.User().GetByEmail(context.Background(), "michael.chen@example.com")
	if !ok {
		t.Fatal("seeded admin account missing")
	}
	return e.sessions.Create(user)
}

// toasts returns the notifications published so far, in order.
func (e *testEnv) toasts(t *testing.T) []models.Notification {
	t.Helper()
	var out []models.Notification
	for _, ev := range e.publisher.GetPublishedEvents() {
		if ev.Type != events.TypeNotificationCreated {
			continue
		}
		var n models.Notification
		if err := ev.Decode(&n); err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		out = append(out, n)
	}
	return out
}

func newTestCache(t *testing.T) (*cache.CacheManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewCacheManager(client), mr
}

func ids(courses []models.Course) []string {
	return courseIDs(courses)
}

// waitPending polls until clock has n armed timers.
func waitPending(t *testing.T, clock *task.ManualClock, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for clock.Pending() < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d pending timers, have %d", n, clock.Pending())
		}
		time.Sleep(time.Millisecond)
	}
}

// waitKey polls for key, which cache-aside stores in the background.
func waitKey(t *testing.T, mr *miniredis.Miniredis, key string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !mr.Exists(key) {
		if time.Now().After(deadline) {
			t.Fatalf("key %s was never cached", key)
		}
		time.Sleep(time.Millisecond)
	}
}
