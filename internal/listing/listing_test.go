package listing_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SAP-F-2025/course-catalog-service/internal/listing"
	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/repositories/memory"
	"github.com/SAP-F-2025/course-catalog-service/internal/services"
	"github.com/SAP-F-2025/course-catalog-service/internal/task"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newSource() services.CatalogService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewCatalogService(memory.NewRepository(), logger)
}

func titles(courses []models.Course) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.Title
	}
	return out
}

func TestPredicates(t *testing.T) {
	discounted := models.Course{Price: 89.99, DiscountPrice: ptr(49.99), Level: "Beginner to Intermediate", Category: "IT & Software"}
	plain := models.Course{Price: 20, Level: "Advanced", Category: "Design"}

	tests := []struct {
		name   string
		pred   listing.Predicate
		course models.Course
		want   bool
	}{
		{"no filter", listing.NoFilter{}, plain, true},
		{"slug of composite name", listing.BySlug{Slug: "it-software"}, discounted, true},
		{"slug mismatch", listing.BySlug{Slug: "design"}, discounted, false},
		{"composite level contains token", listing.ByLevelSet{Levels: []string{"Beginner"}}, discounted, true},
		{"any of several levels", listing.ByLevelSet{Levels: []string{"Beginner", "Advanced"}}, plain, true},
		{"level is case sensitive", listing.ByLevelSet{Levels: []string{"advanced"}}, plain, false},
		{"empty level set matches nothing", listing.ByLevelSet{}, plain, false},
		{"price at min bound", listing.ByPriceRange{Min: 49.99, Max: 60}, discounted, true},
		{"price at max bound", listing.ByPriceRange{Min: 0, Max: 49.99}, discounted, true},
		{"list price ignored when discounted", listing.ByPriceRange{Min: 80, Max: 100}, discounted, false},
		{"undiscounted uses list price", listing.ByPriceRange{Min: 20, Max: 20}, plain, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred.Match(tt.course); got != tt.want {
				t.Errorf("%s.Match() = %v, want %v", tt.pred, got, tt.want)
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	if _, ok := listing.Intersect().(listing.NoFilter); !ok {
		t.Error("empty Intersect is not NoFilter")
	}
	if _, ok := listing.Intersect(listing.NoFilter{}, nil).(listing.NoFilter); !ok {
		t.Error("Intersect of NoFilters is not NoFilter")
	}

	slug := listing.BySlug{Slug: "design"}
	if got, ok := listing.Intersect(listing.NoFilter{}, slug).(listing.BySlug); !ok || got != slug {
		t.Errorf("single member Intersect = %v", got)
	}

	nested := listing.Intersect(
		listing.Intersect(slug, listing.ByPriceRange{Min: 0, Max: 50}),
		listing.NoFilter{},
		listing.ByLevelSet{Levels: []string{"Beginner"}},
	)
	in, ok := nested.(listing.Intersection)
	if !ok || len(in.Members) != 3 {
		t.Fatalf("nested Intersect = %#v", nested)
	}
	if !strings.Contains(in.String(), " AND ") {
		t.Errorf("String() = %q", in.String())
	}
}

func TestApply_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	courses := newSource().ListCourses(context.Background())
	if _, err := listing.Apply(ctx, listing.ByPriceRange{Min: 0, Max: 100}, courses); !errors.Is(err, context.Canceled) {
		t.Errorf("Apply() error = %v, want context.Canceled", err)
	}
}

func TestCompose_Scenarios(t *testing.T) {
	source := newSource()
	ctx := context.Background()

	t.Run("react query", func(t *testing.T) {
		f := listing.DefaultFilters()
		f.Query = "React"
		got, err := listing.Compose(ctx, source, f)
		if err != nil {
			t.Fatal(err)
		}
		names := titles(got)
		for _, want := range []string{"React.js - The Complete Guide", "React Native - Mobile App Development"} {
			if !slices.Contains(names, want) {
				t.Errorf("missing %q in %v", want, names)
			}
		}
		if slices.Contains(names, "CompTIA A+ Certification Prep") {
			t.Errorf("unrelated course in %v", names)
		}
	})

	t.Run("data science beginner under 50", func(t *testing.T) {
		f := listing.DefaultFilters()
		f.Category = "data-science"
		f.Levels = []string{"Beginner"}
		f.Price = listing.PriceRange{Min: 0, Max: 50}
		got, err := listing.Compose(ctx, source, f)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) == 0 {
			t.Fatal("no courses")
		}
		for _, c := range got {
			if c.CategorySlug() != "data-science" || !strings.Contains(c.Level, "Beginner") || c.EffectivePrice() > 50 {
				t.Errorf("unexpected course %q (%s, %s, %.2f)", c.Title, c.Category, c.Level, c.EffectivePrice())
			}
		}
	})

	t.Run("defaults return everything in order", func(t *testing.T) {
		got, err := listing.Compose(ctx, source, listing.DefaultFilters())
		if err != nil {
			t.Fatal(err)
		}
		all := source.ListCourses(ctx)
		if !slices.Equal(titles(got), titles(all)) {
			t.Errorf("default composition = %v", titles(got))
		}
	})

	t.Run("blank query is no query", func(t *testing.T) {
		f := listing.DefaultFilters()
		f.Query = "   "
		got, _ := listing.Compose(ctx, source, f)
		if len(got) != len(source.ListCourses(ctx)) {
			t.Errorf("blank query narrowed to %d courses", len(got))
		}
	})

	t.Run("empty result", func(t *testing.T) {
		f := listing.DefaultFilters()
		f.Query = "quantum basket weaving"
		got, err := listing.Compose(ctx, source, f)
		if err != nil || len(got) != 0 {
			t.Errorf("Compose() = %v, %v", titles(got), err)
		}
	})
}

type harness struct {
	composer  *listing.Composer
	clock     *task.ManualClock
	published atomic.Int32
	last      atomic.Value
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{clock: task.NewManualClock(epoch)}
	h.composer = listing.NewComposer(context.Background(), newSource(), listing.DefaultFilters(), listing.Options{
		ID:       "test",
		Debounce: 500 * time.Millisecond,
		Clock:    h.clock,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnPublish: func(s listing.Snapshot) {
			h.published.Add(1)
			h.last.Store(s)
		},
	})
	t.Cleanup(h.composer.Close)
	return h
}

func TestComposer_StartsIdle(t *testing.T) {
	h := newHarness(t)
	snap := h.composer.Snapshot()
	if snap.Status != listing.Idle || snap.Loading || len(snap.Courses) != 0 || snap.Empty {
		t.Errorf("initial snapshot = %+v", snap)
	}
}

func TestComposer_DebounceCoalescesMutations(t *testing.T) {
	h := newHarness(t)
	c := h.composer

	mustOK(t, c.SetQuery("React"))
	h.clock.Advance(100 * time.Millisecond)
	mustOK(t, c.SetCategory("mobile-development"))
	h.clock.Advance(100 * time.Millisecond)
	mustOK(t, c.ToggleLevel("Intermediate"))

	if s := c.Snapshot(); s.Status != listing.Pending || !s.Loading {
		t.Fatalf("status after mutations = %v", s.Status)
	}

	// 499ms after the last mutation nothing has published yet.
	h.clock.Advance(499 * time.Millisecond)
	if h.published.Load() != 0 {
		t.Fatalf("published %d times before the window closed", h.published.Load())
	}

	h.clock.Advance(time.Second)
	if got := h.published.Load(); got != 1 {
		t.Fatalf("published %d times, want 1", got)
	}

	snap := c.Snapshot()
	if snap.Status != listing.Published || snap.Loading || snap.Version != 1 {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.Filters.Query != "React" || snap.Filters.Category != "mobile-development" || !slices.Equal(snap.Filters.Levels, []string{"Intermediate"}) {
		t.Errorf("filters = %+v", snap.Filters)
	}
	if names := titles(snap.Courses); !slices.Equal(names, []string{"React Native - Mobile App Development"}) {
		t.Errorf("courses = %v", names)
	}
}

func TestComposer_MutationAfterPublishGoesPending(t *testing.T) {
	h := newHarness(t)
	c := h.composer

	mustOK(t, c.Refresh())
	h.clock.Advance(500 * time.Millisecond)
	first := c.Snapshot()
	if first.Status != listing.Published || len(first.Courses) != 10 {
		t.Fatalf("first publish = %v with %d courses", first.Status, len(first.Courses))
	}

	mustOK(t, c.SetQuery("quantum basket weaving"))
	pending := c.Snapshot()
	if pending.Status != listing.Pending || len(pending.Courses) != 10 {
		t.Errorf("pending snapshot should keep the last published courses, got %v/%d", pending.Status, len(pending.Courses))
	}

	h.clock.Advance(500 * time.Millisecond)
	empty := c.Snapshot()
	if !empty.Empty || empty.Version != 2 {
		t.Errorf("empty snapshot = %+v", empty)
	}
}

func TestComposer_ClearFiltersRecomputesOnce(t *testing.T) {
	h := newHarness(t)
	c := h.composer

	mustOK(t, c.Apply(func(f *listing.Filters) {
		f.Query = "Python"
		f.Category = "data-science"
		f.Levels = []string{"Beginner"}
		f.Price = listing.PriceRange{Min: 10, Max: 40}
	}))
	h.clock.Advance(time.Second)
	if h.published.Load() != 1 {
		t.Fatalf("Apply published %d times, want 1", h.published.Load())
	}

	mustOK(t, c.ClearFilters())
	h.clock.Advance(time.Second)
	if got := h.published.Load(); got != 2 {
		t.Fatalf("ClearFilters published %d times, want 1 more", got-1)
	}

	snap := c.Snapshot()
	if !snap.Filters.IsDefault() {
		t.Errorf("filters after clear = %+v", snap.Filters)
	}
	if len(snap.Courses) != 10 {
		t.Errorf("courses after clear = %d, want 10", len(snap.Courses))
	}
}

func TestComposer_ToggleCategory(t *testing.T) {
	h := newHarness(t)
	c := h.composer

	mustOK(t, c.ToggleCategory("design"))
	if got := c.Snapshot().Filters.Category; got != "design" {
		t.Fatalf("category = %q", got)
	}
	mustOK(t, c.ToggleCategory("design"))
	if got := c.Snapshot().Filters.Category; got != "" {
		t.Fatalf("category after second toggle = %q", got)
	}
	mustOK(t, c.ToggleLevel("Beginner"))
	mustOK(t, c.ToggleLevel("Advanced"))
	mustOK(t, c.ToggleLevel("Beginner"))
	if got := c.Snapshot().Filters.Levels; !slices.Equal(got, []string{"Advanced"}) {
		t.Fatalf("levels = %v", got)
	}
}

func TestComposer_RejectsInvalidPriceRange(t *testing.T) {
	h := newHarness(t)
	for _, r := range []listing.PriceRange{
		{Min: 60, Max: 40},
		{Min: -1, Max: 40},
		{Min: math.NaN(), Max: 40},
		{Min: 0, Max: math.NaN()},
		{Min: 0, Max: math.Inf(1)},
	} {
		if err := h.composer.SetPriceRange(r.Min, r.Max); !errors.Is(err, listing.ErrInvalidPriceRange) {
			t.Fatalf("SetPriceRange(%g, %g) error = %v", r.Min, r.Max, err)
		}
	}
	if s := h.composer.Snapshot(); s.Status != listing.Idle || s.Filters.Price != listing.DefaultPriceRange() {
		t.Errorf("rejected mutation changed state: %+v", s)
	}
}

func TestComposer_CloseCancelsPending(t *testing.T) {
	h := newHarness(t)
	c := h.composer

	mustOK(t, c.SetQuery("React"))
	c.Close()
	h.clock.Advance(time.Second)

	if h.published.Load() != 0 {
		t.Error("closed composer published")
	}
	if h.clock.Pending() != 0 {
		t.Errorf("pending timers = %d", h.clock.Pending())
	}
	if err := c.SetQuery("Go"); !errors.Is(err, listing.ErrClosed) {
		t.Errorf("mutation after Close error = %v", err)
	}
	if !c.Closed() {
		t.Error("Closed() = false")
	}
}

func TestComposer_RealClock(t *testing.T) {
	var published atomic.Int32
	c := listing.NewComposer(context.Background(), newSource(), listing.DefaultFilters(), listing.Options{
		Debounce:  20 * time.Millisecond,
		OnPublish: func(listing.Snapshot) { published.Add(1) },
	})
	defer c.Close()

	for _, q := range []string{"R", "Re", "Rea", "React"} {
		mustOK(t, c.SetQuery(q))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if published.Load() != 1 {
		t.Errorf("published %d times, want 1", published.Load())
	}
	if got := c.Snapshot().Filters.Query; got != "React" {
		t.Errorf("query = %q", got)
	}
}

func TestTabs(t *testing.T) {
	courses := newSource().ListCourses(context.Background())

	tab, err := listing.ParseTab("popular")
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range tab.Select(courses) {
		if !c.Popular {
			t.Errorf("%q is not popular", c.Title)
		}
	}
	newTab, _ := listing.ParseTab("new")
	for _, c := range newTab.Select(courses) {
		if !c.New {
			t.Errorf("%q is not new", c.Title)
		}
	}
	all, _ := listing.ParseTab("")
	if len(all.Select(courses)) != len(courses) {
		t.Error("all tab dropped courses")
	}
	if _, err := listing.ParseTab("trending"); err == nil {
		t.Error("unknown tab accepted")
	}
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func ptr(v float64) *float64 { return &v }
