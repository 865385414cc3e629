package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/task"
)

const DefaultDebounce = 500 * time.Millisecond

var (
	ErrClosed            = errors.New("listing composer closed")
	ErrInvalidPriceRange = errors.New("invalid price range")
)

type Status int

const (
	Idle Status = iota
	Pending
	Published
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Published:
		return "published"
	}
	return "unknown"
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Snapshot is what a page may render. Courses is always the last published
// result; while Loading it is stale and should be shown as placeholders.
type Snapshot struct {
	ID        string          `json:"id"`
	Status    Status          `json:"status"`
	Loading   bool            `json:"loading"`
	Filters   Filters         `json:"filters"`
	Courses   []models.Course `json:"courses"`
	Empty     bool            `json:"empty"`
	Version   uint64          `json:"version"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Options struct {
	ID        string
	Debounce  time.Duration
	Clock     task.Clock
	Logger    *slog.Logger
	OnPublish func(Snapshot)
}

// Composer owns one listing's predicate state and publishes recomputed results
// after a quiet period. Every mutation supersedes the pending recomputation,
// so only the latest predicate set is ever published.
type Composer struct {
	id        string
	source    Source
	debounce  time.Duration
	clock     task.Clock
	logger    *slog.Logger
	onPublish func(Snapshot)

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	filters   Filters
	status    Status
	gen       uint64
	pending   *task.Task[[]models.Course]
	published []models.Course
	version   uint64
	updatedAt time.Time
	closed    bool
}

func NewComposer(parent context.Context, source Source, initial Filters, opts Options) *Composer {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Clock == nil {
		opts.Clock = task.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(parent)
	return &Composer{
		id:        opts.ID,
		source:    source,
		debounce:  opts.Debounce,
		clock:     opts.Clock,
		logger:    opts.Logger.With("listing_id", opts.ID),
		onPublish: opts.OnPublish,
		ctx:       ctx,
		cancel:    cancel,
		filters:   initial.Clone(),
		status:    Idle,
		published: []models.Course{},
	}
}

func (c *Composer) ID() string {
	return c.id
}

// Refresh schedules a recomputation without changing any predicate.
func (c *Composer) Refresh() error {
	return c.mutate(func(*Filters) error { return nil })
}

func (c *Composer) SetQuery(query string) error {
	return c.mutate(func(f *Filters) error {
		f.Query = query
		return nil
	})
}

func (c *Composer) SetCategory(slug string) error {
	return c.mutate(func(f *Filters) error {
		f.Category = slug
		return nil
	})
}

// ToggleCategory selects slug, or clears the selection when slug is already selected.
func (c *Composer) ToggleCategory(slug string) error {
	return c.mutate(func(f *Filters) error {
		if f.Category == slug {
			f.Category = ""
		} else {
			f.Category = slug
		}
		return nil
	})
}

func (c *Composer) ToggleLevel(level string) error {
	return c.mutate(func(f *Filters) error {
		f.Levels = toggle(f.Levels, level)
		return nil
	})
}

func (c *Composer) SetLevels(levels []string) error {
	return c.mutate(func(f *Filters) error {
		f.Levels = slices.Clone(levels)
		return nil
	})
}

func (c *Composer) SetPriceRange(min, max float64) error {
	return c.mutate(func(f *Filters) error {
		f.Price = PriceRange{Min: min, Max: max}
		return nil
	})
}

// Apply runs several predicate edits as one mutation with one recomputation.
func (c *Composer) Apply(edit func(*Filters)) error {
	return c.mutate(func(f *Filters) error {
		edit(f)
		return nil
	})
}

// ClearFilters resets every predicate at once and recomputes a single time.
func (c *Composer) ClearFilters() error {
	return c.mutate(func(f *Filters) error {
		*f = DefaultFilters()
		return nil
	})
}

func (c *Composer) mutate(edit func(*Filters) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	next := c.filters.Clone()
	if err := edit(&next); err != nil {
		return err
	}
	if !next.Price.Valid() {
		return fmt.Errorf("%w: [%g,%g]", ErrInvalidPriceRange, next.Price.Min, next.Price.Max)
	}
	c.filters = next.Clone()
	c.scheduleLocked()
	return nil
}

// scheduleLocked must be called with c.mu held.
func (c *Composer) scheduleLocked() {
	if c.pending != nil {
		c.pending.Cancel()
	}
	c.gen++
	gen := c.gen
	filters := c.filters.Clone()
	c.status = Pending

	c.pending = task.Schedule(c.ctx, c.clock, c.debounce, func(ctx context.Context) ([]models.Course, error) {
		courses, err := Compose(ctx, c.source, filters)
		if err != nil {
			return nil, err
		}
		c.publish(ctx, gen, courses)
		return courses, nil
	}, nil)
}

func (c *Composer) publish(ctx context.Context, gen uint64, courses []models.Course) {
	c.mu.Lock()
	if c.closed || gen != c.gen || ctx.Err() != nil {
		c.mu.Unlock()
		c.logger.Debug("Discarding superseded listing result", "generation", gen)
		return
	}
	c.published = courses
	c.status = Published
	c.version++
	c.updatedAt = c.clock.Now()
	c.pending = nil
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("Listing published", "version", snap.Version, "courses", len(snap.Courses))
	if c.onPublish != nil {
		c.onPublish(snap)
	}
}

func (c *Composer) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Composer) snapshotLocked() Snapshot {
	return Snapshot{
		ID:        c.id,
		Status:    c.status,
		Loading:   c.status == Pending,
		Filters:   c.filters.Clone(),
		Courses:   slices.Clone(c.published),
		Empty:     c.status == Published && len(c.published) == 0,
		Version:   c.version,
		UpdatedAt: c.updatedAt,
	}
}

// Wait blocks until the pending recomputation, if any, has finished.
func (c *Composer) Wait(ctx context.Context) error {
	c.mu.Lock()
	pending := c.pending
	c.mu.Unlock()

	if pending == nil {
		return nil
	}
	select {
	case <-pending.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels any pending recomputation. Later mutations return ErrClosed.
func (c *Composer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
	c.cancel()
}

func (c *Composer) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
