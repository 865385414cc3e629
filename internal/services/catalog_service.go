package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/repositories"
)

// CategoryCount reports a category's seeded count next to the number of
// courses that actually carry it. The seeded count is never corrected.
type CategoryCount struct {
	models.Category
	Actual int `json:"actual"`
}

type CatalogService interface {
	ListCourses(ctx context.Context) []models.Course
	SearchCourses(ctx context.Context, query string) []models.Course
	FilterCoursesByCategory(ctx context.Context, categorySlug string) []models.Course
	FilterCoursesByLevels(ctx context.Context, levels []string) []models.Course
	FilterCoursesByPrice(ctx context.Context, min, max float64) []models.Course
	GetCourseByID(ctx context.Context, id string) (models.Course, bool)
	GetCourseBySlug(ctx context.Context, slug string) (models.Course, bool)
	GetCoursesByIDs(ctx context.Context, ids []string) []models.Course
	GetFeaturedCourses(ctx context.Context) []models.Course
	GetPopularCourses(ctx context.Context) []models.Course
	GetNewCourses(ctx context.Context) []models.Course

	ListCategories(ctx context.Context) []models.Category
	GetCategoryBySlug(ctx context.Context, slug string) (models.Category, bool)
	CategoryCourseCounts(ctx context.Context) []CategoryCount
}

type catalogService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewCatalogService(repo repositories.Repository, logger *slog.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		logger: logger,
	}
}

func (s *catalogService) ListCourses(ctx context.Context) []models.Course {
	return s.repo.Course().List(ctx)
}

// SearchCourses matches the lowercased query as a substring of the title,
// description, any tag or the instructor name. Blank queries match nothing.
func (s *catalogService) SearchCourses(ctx context.Context, query string) []models.Course {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []models.Course{}
	}

	return s.filter(ctx, func(c models.Course) bool {
		return courseMatchesTerm(c, term)
	})
}

func courseMatchesTerm(c models.Course, term string) bool {
	if strings.Contains(strings.ToLower(c.Title), term) ||
		strings.Contains(strings.ToLower(c.Description), term) ||
		strings.Contains(strings.ToLower(c.Instructor.Name), term) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func (s *catalogService) FilterCoursesByCategory(ctx context.Context, categorySlug string) []models.Course {
	if categorySlug == "" {
		return s.ListCourses(ctx)
	}
	return s.filter(ctx, func(c models.Course) bool {
		return c.CategorySlug() == categorySlug
	})
}

// FilterCoursesByLevels keeps courses whose level contains any of levels.
// An empty selection does not constrain.
func (s *catalogService) FilterCoursesByLevels(ctx context.Context, levels []string) []models.Course {
	if len(levels) == 0 {
		return s.ListCourses(ctx)
	}
	return s.filter(ctx, func(c models.Course) bool {
		for _, level := range levels {
			if strings.Contains(c.Level, level) {
				return true
			}
		}
		return false
	})
}

func (s *catalogService) FilterCoursesByPrice(ctx context.Context, min, max float64) []models.Course {
	return s.filter(ctx, func(c models.Course) bool {
		price := c.EffectivePrice()
		return price >= min && price <= max
	})
}

func (s *catalogService) GetCourseByID(ctx context.Context, id string) (models.Course, bool) {
	return s.repo.Course().GetByID(ctx, id)
}

func (s *catalogService) GetCourseBySlug(ctx context.Context, slug string) (models.Course, bool) {
	return s.repo.Course().GetBySlug(ctx, slug)
}

func (s *catalogService) GetCoursesByIDs(ctx context.Context, ids []string) []models.Course {
	return s.repo.Course().GetByIDs(ctx, ids)
}

func (s *catalogService) GetFeaturedCourses(ctx context.Context) []models.Course {
	return s.filter(ctx, func(c models.Course) bool { return c.Featured })
}

func (s *catalogService) GetPopularCourses(ctx context.Context) []models.Course {
	return s.filter(ctx, func(c models.Course) bool { return c.Popular })
}

func (s *catalogService) GetNewCourses(ctx context.Context) []models.Course {
	return s.filter(ctx, func(c models.Course) bool { return c.New })
}

func (s *catalogService) ListCategories(ctx context.Context) []models.Category {
	return s.repo.Category().List(ctx)
}

func (s *catalogService) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, bool) {
	return s.repo.Category().GetBySlug(ctx, slug)
}

func (s *catalogService) CategoryCourseCounts(ctx context.Context) []CategoryCount {
	actual := make(map[string]int)
	for _, c := range s.ListCourses(ctx) {
		actual[c.CategorySlug()]++
	}

	categories := s.ListCategories(ctx)
	counts := make([]CategoryCount, 0, len(categories))
	for _, cat := range categories {
		cc := CategoryCount{Category: cat, Actual: actual[cat.Slug]}
		if cc.Actual != cat.Count {
			s.logger.Debug("Category count is stale", "category", cat.Slug, "seeded", cat.Count, "actual", cc.Actual)
		}
		counts = append(counts, cc)
	}
	return counts
}

func (s *catalogService) filter(ctx context.Context, keep func(models.Course) bool) []models.Course {
	courses := s.ListCourses(ctx)
	result := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if keep(c) {
			result = append(result, c)
		}
	}
	return result
}
