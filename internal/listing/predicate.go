package listing

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

// Predicate is one filter criterion over courses. The set of variants is
// closed: NoFilter, BySlug, ByLevelSet, ByPriceRange and their Intersection.
type Predicate interface {
	Match(course models.Course) bool
	String() string
	predicate()
}

// NoFilter matches every course.
type NoFilter struct{}

func (NoFilter) Match(models.Course) bool { return true }
func (NoFilter) String() string           { return "any" }
func (NoFilter) predicate()               {}

// BySlug matches courses whose category slug equals Slug.
type BySlug struct {
	Slug string
}

func (p BySlug) Match(course models.Course) bool {
	return course.CategorySlug() == p.Slug
}

func (p BySlug) String() string { return fmt.Sprintf("category=%s", p.Slug) }
func (BySlug) predicate()       {}

// ByLevelSet matches a course whose level contains at least one of Levels.
// Composite levels such as "Beginner to Intermediate" match "Beginner".
type ByLevelSet struct {
	Levels []string
}

func (p ByLevelSet) Match(course models.Course) bool {
	for _, level := range p.Levels {
		if strings.Contains(course.Level, level) {
			return true
		}
	}
	return false
}

func (p ByLevelSet) String() string { return fmt.Sprintf("level in %v", p.Levels) }
func (ByLevelSet) predicate()       {}

// ByPriceRange matches on the effective price, inclusive at both bounds.
type ByPriceRange struct {
	Min, Max float64
}

func (p ByPriceRange) Match(course models.Course) bool {
	price := course.EffectivePrice()
	return price >= p.Min && price <= p.Max
}

func (p ByPriceRange) String() string { return fmt.Sprintf("price in [%g,%g]", p.Min, p.Max) }
func (ByPriceRange) predicate()       {}

// Intersection matches when every member matches. An empty intersection
// matches everything.
type Intersection struct {
	Members []Predicate
}

func (p Intersection) Match(course models.Course) bool {
	for _, m := range p.Members {
		if !m.Match(course) {
			return false
		}
	}
	return true
}

func (p Intersection) String() string {
	if len(p.Members) == 0 {
		return NoFilter{}.String()
	}
	parts := make([]string, len(p.Members))
	for i, m := range p.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " AND ")
}

func (Intersection) predicate() {}

// Intersect combines predicates, flattening nested intersections and dropping
// NoFilter members. A single remaining member is returned as is.
func Intersect(predicates ...Predicate) Predicate {
	members := flatten(nil, predicates)
	switch len(members) {
	case 0:
		return NoFilter{}
	case 1:
		return members[0]
	}
	return Intersection{Members: members}
}

func flatten(dst, predicates []Predicate) []Predicate {
	for _, p := range predicates {
		switch v := p.(type) {
		case nil, NoFilter:
		case Intersection:
			dst = flatten(dst, v.Members)
		default:
			dst = append(dst, v)
		}
	}
	return dst
}

// Apply keeps the courses matching p, preserving their order. It stops early
// when ctx is canceled.
func Apply(ctx context.Context, p Predicate, courses []models.Course) ([]models.Course, error) {
	if _, ok := p.(NoFilter); ok {
		return slices.Clone(courses), ctx.Err()
	}

	result := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p.Match(course) {
			result = append(result, course)
		}
	}
	return result, nil
}
