package session

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SAP-F-2025/course-catalog-service/internal/listing"
	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/task"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeNow struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeNow) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeNow) Add(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}

type emptySource struct{}

func (emptySource) ListCourses(context.Context) []models.Course { return nil }
func (emptySource) SearchCourses(context.Context, string) []models.Course {
	return nil
}

func newTestManager(now *fakeNow, ended *[]string) *Manager {
	var mu sync.Mutex
	return NewManager(ManagerConfig{
		TTL:    time.Hour,
		Now:    now.Now,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnEnd: func(s *Session) {
			mu.Lock()
			defer mu.Unlock()
			*ended = append(*ended, s.ID())
		},
	})
}

func learner() models.User {
	return models.User{ID: "1", Name: "John Doe", Role: models.RoleStudent, EnrolledCourses: []string{"1"}}
}

func TestManager_Lifecycle(t *testing.T) {
	now := &fakeNow{t: epoch}
	var ended []string
	m := newTestManager(now, &ended)

	s := m.Create(learner())
	if s.ID() == "" || m.Count() != 1 {
		t.Fatalf("Create() = %q, count %d", s.ID(), m.Count())
	}

	got, ok := m.Get(s.ID())
	if !ok || got != s {
		t.Fatal("Get() did not return the created session")
	}

	u := s.User()
	u.EnrolledCourses[0] = "mutated"
	if s.User().EnrolledCourses[0] != "1" {
		t.Error("User() shared slices with the session")
	}

	if !m.End(s.ID()) || m.End(s.ID()) {
		t.Error("End() should succeed exactly once")
	}
	if _, ok := m.Get(s.ID()); ok {
		t.Error("ended session still retrievable")
	}
	if !s.Ended() || s.Context().Err() == nil {
		t.Error("ended session context still live")
	}
	if len(ended) != 1 || ended[0] != s.ID() {
		t.Errorf("OnEnd calls = %v", ended)
	}
}

func TestManager_IdleExpiry(t *testing.T) {
	now := &fakeNow{t: epoch}
	var ended []string
	m := newTestManager(now, &ended)

	idle := m.Create(learner())
	active := m.Create(learner())

	now.Add(40 * time.Minute)
	if !m.Touch(active.ID()) {
		t.Fatal("Touch() on live session = false")
	}
	now.Add(30 * time.Minute)

	if n := m.Sweep(); n != 1 {
		t.Fatalf("Sweep() = %d, want 1", n)
	}
	if _, ok := m.Get(idle.ID()); ok {
		t.Error("idle session survived the sweep")
	}
	if _, ok := m.Get(active.ID()); !ok {
		t.Error("active session was swept")
	}

	now.Add(2 * time.Hour)
	if _, ok := m.Get(active.ID()); ok {
		t.Error("Get() returned an expired session")
	}
	if m.Touch(active.ID()) {
		t.Error("Touch() revived an expired session")
	}
}

func TestSession_EndCancelsWork(t *testing.T) {
	now := &fakeNow{t: epoch}
	var ended []string
	m := newTestManager(now, &ended)
	s := m.Create(learner())

	clock := task.NewManualClock(epoch)
	var notified atomic.Bool
	submission := task.Schedule(s.Context(), clock, 1500*time.Millisecond,
		func(ctx context.Context) (string, error) { return "Profile Updated", nil },
		func(string) { notified.Store(true) })
	if err := s.Track("profile", submission); err != nil {
		t.Fatal(err)
	}

	composer := listing.NewComposer(s.Context(), emptySource{}, listing.DefaultFilters(), listing.Options{ID: "l1", Clock: clock})
	if err := s.AddListing(composer); err != nil {
		t.Fatal(err)
	}
	if err := composer.SetQuery("React"); err != nil {
		t.Fatal(err)
	}

	m.Shutdown()
	clock.Advance(time.Minute)

	if notified.Load() {
		t.Error("submission committed after the session ended")
	}
	if submission.State() != task.Canceled {
		t.Errorf("submission state = %v", submission.State())
	}
	if !composer.Closed() || composer.Snapshot().Version != 0 {
		t.Error("listing kept running after the session ended")
	}
	if err := s.Track("late", submission); err != ErrSessionEnded {
		t.Errorf("Track() after end = %v", err)
	}
	if err := s.AddListing(composer); err != ErrSessionEnded {
		t.Errorf("AddListing() after end = %v", err)
	}
	if m.Count() != 0 {
		t.Errorf("Count() = %d after Shutdown", m.Count())
	}
}

func TestSession_Listings(t *testing.T) {
	s := newSession("s", learner(), epoch)
	c := listing.NewComposer(context.Background(), emptySource{}, listing.DefaultFilters(), listing.Options{ID: "b"})
	_ = s.AddListing(c)
	_ = s.AddListing(listing.NewComposer(context.Background(), emptySource{}, listing.DefaultFilters(), listing.Options{ID: "a"}))

	if got := s.ListingIDs(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("ListingIDs() = %v", got)
	}
	if !s.RemoveListing("b") || !c.Closed() {
		t.Error("RemoveListing() did not close the composer")
	}
	if _, ok := s.Listing("b"); ok {
		t.Error("removed listing still present")
	}
	s.End()
}

func TestSession_LessonState(t *testing.T) {
	s := newSession("s", learner(), epoch)
	seeded := 0
	seed := func() []string {
		seeded++
		return []string{"1-1", "1-2"}
	}

	if got := s.CompletedLessons("1", seed); !slices.Equal(got, []string{"1-1", "1-2"}) {
		t.Fatalf("CompletedLessons() = %v", got)
	}
	got := s.SetLessonCompleted("1", "1-3", true, seed)
	if !slices.Equal(got, []string{"1-1", "1-2", "1-3"}) {
		t.Errorf("after complete = %v", got)
	}
	got = s.SetLessonCompleted("1", "1-1", false, seed)
	if !slices.Equal(got, []string{"1-2", "1-3"}) {
		t.Errorf("after uncomplete = %v", got)
	}
	if seeded != 1 {
		t.Errorf("seed called %d times", seeded)
	}
	if got := s.CompletedLessons("2", nil); got == nil || len(got) != 0 {
		t.Errorf("unseeded course = %#v", got)
	}
}
