package session

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/SAP-F-2025/course-catalog-service/internal/listing"
	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

var ErrSessionEnded = errors.New("session ended")

// Cancelable is anything a session must stop when it ends.
type Cancelable interface {
	Cancel() bool
}

// Session is the per-login context that replaces a process-wide current
// user. It owns the user's listings, in-flight submissions and the
// learning-page lesson state; ending it stops all of them.
type Session struct {
	id        string
	createdAt time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	user     models.User
	lastSeen time.Time
	ended    bool
	listings map[string]*listing.Composer
	tasks    map[string]Cancelable
	lessons  map[string][]string
}

func newSession(id string, user models.User, now time.Time) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		id:        id,
		createdAt: now,
		ctx:       ctx,
		cancel:    cancel,
		user:      user.Clone(),
		lastSeen:  now,
		listings:  make(map[string]*listing.Composer),
		tasks:     make(map[string]Cancelable),
		lessons:   make(map[string][]string),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Context is canceled when the session ends.
func (s *Session) Context() context.Context {
	return s.ctx
}

// User returns a copy of the signed-in user.
func (s *Session) User() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Role == models.RoleAdmin
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.lastSeen) {
		s.lastSeen = now
	}
}

func (s *Session) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}

func (s *Session) AddListing(c *listing.Composer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return ErrSessionEnded
	}
	s.listings[c.ID()] = c
	return nil
}

func (s *Session) Listing(id string) (*listing.Composer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.listings[id]
	return c, ok
}

// RemoveListing closes and forgets a listing.
func (s *Session) RemoveListing(id string) bool {
	s.mu.Lock()
	c, ok := s.listings[id]
	delete(s.listings, id)
	s.mu.Unlock()

	if ok {
		c.Close()
	}
	return ok
}

func (s *Session) ListingIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.listings))
	for id := range s.listings {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Track registers in-flight work under id so that End can cancel it.
func (s *Session) Track(id string, t Cancelable) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return ErrSessionEnded
	}
	s.tasks[id] = t
	return nil
}

func (s *Session) Untrack(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, id)
}

func (s *Session) PendingTasks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// CompletedLessons returns the lessons completed in courseID, seeding the
// state from seed on first access.
func (s *Session) CompletedLessons(courseID string, seed func() []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lessonsLocked(courseID, seed))
}

// SetLessonCompleted marks or unmarks one lesson and returns the new state.
func (s *Session) SetLessonCompleted(courseID, lessonID string, completed bool, seed func() []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	done := s.lessonsLocked(courseID, seed)
	i := slices.Index(done, lessonID)
	switch {
	case completed && i < 0:
		done = append(done, lessonID)
	case !completed && i >= 0:
		done = slices.Delete(done, i, i+1)
	}
	s.lessons[courseID] = done
	return slices.Clone(done)
}

func (s *Session) lessonsLocked(courseID string, seed func() []string) []string {
	done, ok := s.lessons[courseID]
	if !ok {
		if seed != nil {
			done = slices.Clone(seed())
		}
		if done == nil {
			done = []string{}
		}
		s.lessons[courseID] = done
	}
	return done
}

// End closes every listing and cancels every tracked task. It is idempotent.
func (s *Session) End() bool {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return false
	}
	s.ended = true
	listings := s.listings
	tasks := s.tasks
	s.listings = make(map[string]*listing.Composer)
	s.tasks = make(map[string]Cancelable)
	s.mu.Unlock()

	// Cancel outside the lock: task commits may call back into the session.
	for _, t := range tasks {
		t.Cancel()
	}
	for _, c := range listings {
		c.Close()
	}
	s.cancel()
	return true
}
