package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SAP-F-2025/course-catalog-service/internal/listing"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
	"github.com/SAP-F-2025/course-catalog-service/internal/task"
	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
)

type ListingConfig struct {
	Debounce time.Duration
	Clock    task.Clock
}

type listingService struct {
	catalog   CatalogService
	config    ListingConfig
	logger    *slog.Logger
	validator *validator.Validator
}

func NewListingService(catalog CatalogService, config ListingConfig, logger *slog.Logger, validator *validator.Validator) ListingService {
	if config.Debounce <= 0 {
		config.Debounce = listing.DefaultDebounce
	}
	if config.Clock == nil {
		config.Clock = task.RealClock{}
	}
	return &listingService{
		catalog:   catalog,
		config:    config,
		logger:    logger,
		validator: validator,
	}
}

// Browse composes a listing synchronously, for clients that hold no session.
func (s *listingService) Browse(ctx context.Context, filters listing.Filters, tab listing.Tab) (*BrowseResult, error) {
	if err := checkPrice(filters.Price); err != nil {
		return nil, err
	}

	courses, err := listing.Compose(ctx, s.catalog, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to compose listing: %w", err)
	}
	courses = tab.Select(courses)

	return &BrowseResult{
		Filters: filters,
		Tab:     tab,
		Courses: courses,
		Total:   len(courses),
		Empty:   len(courses) == 0,
	}, nil
}

func checkPrice(p listing.PriceRange) error {
	if !p.Valid() {
		return fmt.Errorf("%w: [%g,%g]", listing.ErrInvalidPriceRange, p.Min, p.Max)
	}
	return nil
}

// Create starts a debounced listing owned by sess and schedules its first
// computation.
func (s *listingService) Create(ctx context.Context, sess *session.Session, initial listing.Filters) (listing.Snapshot, error) {
	if err := checkPrice(initial.Price); err != nil {
		return listing.Snapshot{}, err
	}

	c := listing.NewComposer(sess.Context(), s.catalog, initial, listing.Options{
		ID:       uuid.NewString(),
		Debounce: s.config.Debounce,
		Clock:    s.config.Clock,
		Logger:   s.logger.With("session_id", sess.ID()),
	})
	if err := sess.AddListing(c); err != nil {
		c.Close()
		return listing.Snapshot{}, err
	}
	if err := c.Refresh(); err != nil {
		return listing.Snapshot{}, s.mapErr(c.ID(), err)
	}

	s.logger.Debug("Listing created", "session_id", sess.ID(), "listing_id", c.ID())
	return c.Snapshot(), nil
}

func (s *listingService) composer(sess *session.Session, id string) (*listing.Composer, error) {
	c, ok := sess.Listing(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrListingNotFound, id)
	}
	return c, nil
}

func (s *listingService) mapErr(id string, err error) error {
	if errors.Is(err, listing.ErrClosed) {
		return fmt.Errorf("%w: %s", ErrListingNotFound, id)
	}
	return err
}

func (s *listingService) with(sess *session.Session, id string, fn func(*listing.Composer) error) (listing.Snapshot, error) {
	c, err := s.composer(sess, id)
	if err != nil {
		return listing.Snapshot{}, err
	}
	if err := fn(c); err != nil {
		return listing.Snapshot{}, s.mapErr(id, err)
	}
	return c.Snapshot(), nil
}

func (s *listingService) Get(ctx context.Context, sess *session.Session, id string) (listing.Snapshot, error) {
	return s.with(sess, id, func(*listing.Composer) error { return nil })
}

// Update applies every provided field as one mutation.
func (s *listingService) Update(ctx context.Context, sess *session.Session, id string, req *ListingUpdateRequest) (listing.Snapshot, error) {
	if errors := s.validator.GetBusinessValidator().Validate(req); len(errors) > 0 {
		return listing.Snapshot{}, errors
	}

	return s.with(sess, id, func(c *listing.Composer) error {
		return c.Apply(func(f *listing.Filters) {
			if req.Query != nil {
				f.Query = *req.Query
			}
			if req.Category != nil {
				f.Category = *req.Category
			}
			if req.Levels != nil {
				f.Levels = append([]string{}, req.Levels...)
			}
			if req.MinPrice != nil {
				f.Price.Min = *req.MinPrice
			}
			if req.MaxPrice != nil {
				f.Price.Max = *req.MaxPrice
			}
		})
	})
}

func (s *listingService) SetQuery(ctx context.Context, sess *session.Session, id, query string) (listing.Snapshot, error) {
	return s.with(sess, id, func(c *listing.Composer) error { return c.SetQuery(query) })
}

func (s *listingService) ToggleCategory(ctx context.Context, sess *session.Session, id, slug string) (listing.Snapshot, error) {
	return s.with(sess, id, func(c *listing.Composer) error { return c.ToggleCategory(slug) })
}

func (s *listingService) ToggleLevel(ctx context.Context, sess *session.Session, id, level string) (listing.Snapshot, error) {
	if errors := s.validator.GetBusinessValidator().Validate(&validator.ListingLevelToggleRequest{Value: level}); len(errors) > 0 {
		return listing.Snapshot{}, errors
	}

	return s.with(sess, id, func(c *listing.Composer) error { return c.ToggleLevel(level) })
}

func (s *listingService) SetPriceRange(ctx context.Context, sess *session.Session, id string, min, max float64) (listing.Snapshot, error) {
	return s.with(sess, id, func(c *listing.Composer) error { return c.SetPriceRange(min, max) })
}

func (s *listingService) ClearFilters(ctx context.Context, sess *session.Session, id string) (listing.Snapshot, error) {
	return s.with(sess, id, func(c *listing.Composer) error { return c.ClearFilters() })
}

func (s *listingService) Delete(ctx context.Context, sess *session.Session, id string) error {
	if !sess.RemoveListing(id) {
		return fmt.Errorf("%w: %s", ErrListingNotFound, id)
	}
	return nil
}
