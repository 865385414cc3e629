package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

const DefaultTTL = 24 * time.Hour

type ManagerConfig struct {
	TTL    time.Duration
	Now    func() time.Time
	Logger *slog.Logger
	// OnEnd runs after a session has ended, outside any manager lock.
	OnEnd func(s *Session)
}

// Manager tracks live sessions and expires idle ones.
type Manager struct {
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
	onEnd  func(*Session)

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(cfg ManagerConfig) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Manager{
		ttl:      cfg.TTL,
		now:      cfg.Now,
		logger:   cfg.Logger,
		onEnd:    cfg.OnEnd,
		sessions: make(map[string]*Session),
	}
}

// Create starts a session for user.
func (m *Manager) Create(user models.User) *Session {
	s := newSession(uuid.NewString(), user, m.now())

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	m.logger.Info("Session created", "session_id", s.id, "user_id", user.ID, "role", user.Role)
	return s
}

// Get returns a live session. Expired sessions are ended on access.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if m.expired(s, m.now()) {
		m.End(id)
		return nil, false
	}
	return s, true
}

// Touch records activity on a session and reports whether it is live.
func (m *Manager) Touch(id string) bool {
	s, ok := m.Get(id)
	if !ok {
		return false
	}
	s.touch(m.now())
	return true
}

// End removes and ends a session.
func (m *Manager) End(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return false
	}
	m.finish(s, "ended")
	return true
}

// Sweep ends every session idle for longer than the TTL.
func (m *Manager) Sweep() int {
	now := m.now()

	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		if m.expired(s, now) {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		m.finish(s, "expired")
	}
	return len(stale)
}

// Run sweeps on every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.logger.Info("Expired idle sessions", "count", n)
			}
		}
	}
}

// Shutdown ends every session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	all := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range all {
		m.finish(s, "shutdown")
	}
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return now.Sub(s.LastSeen()) > m.ttl
}

func (m *Manager) finish(s *Session, reason string) {
	if !s.End() {
		return
	}
	m.logger.Info("Session closed", "session_id", s.id, "reason", reason)
	if m.onEnd != nil {
		m.onEnd(s)
	}
}
