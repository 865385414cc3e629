package listing

import (
	"context"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

// Source is the part of the query engine a listing draws from.
type Source interface {
	ListCourses(ctx context.Context) []models.Course
	SearchCourses(ctx context.Context, query string) []models.Course
}

// Compose computes the listing for filters: a non-blank query narrows the
// collection first, then the category, level and price predicates intersect
// with what is left. Order follows the catalog.
func Compose(ctx context.Context, source Source, filters Filters) ([]models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var base []models.Course
	if term := filters.SearchTerm(); term != "" {
		base = source.SearchCourses(ctx, term)
	} else {
		base = source.ListCourses(ctx)
	}

	return Apply(ctx, filters.Predicate(), base)
}
