package memory

import (
	"context"
	"slices"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

type CourseMemory struct {
	courses []models.Course
	byID    map[string]int
	bySlug  map[string]int
}

func NewCourseMemory(courses []models.Course) *CourseMemory {
	m := &CourseMemory{
		courses: courses,
		byID:    make(map[string]int, len(courses)),
		bySlug:  make(map[string]int, len(courses)),
	}
	// First match wins, matching a linear scan over the collection.
	for i, c := range courses {
		if _, ok := m.byID[c.ID]; !ok {
			m.byID[c.ID] = i
		}
		if _, ok := m.bySlug[c.Slug]; !ok {
			m.bySlug[c.Slug] = i
		}
	}
	return m
}

// List returns a fresh slice in seed order; callers may reorder or truncate it.
func (m *CourseMemory) List(ctx context.Context) []models.Course {
	return slices.Clone(m.courses)
}

func (m *CourseMemory) GetByID(ctx context.Context, id string) (models.Course, bool) {
	i, ok := m.byID[id]
	if !ok {
		return models.Course{}, false
	}
	return m.courses[i], true
}

func (m *CourseMemory) GetBySlug(ctx context.Context, slug string) (models.Course, bool) {
	i, ok := m.bySlug[slug]
	if !ok {
		return models.Course{}, false
	}
	return m.courses[i], true
}

// GetByIDs resolves ids in the order given and skips unknown ones.
func (m *CourseMemory) GetByIDs(ctx context.Context, ids []string) []models.Course {
	result := make([]models.Course, 0, len(ids))
	for _, id := range ids {
		if course, ok := m.GetByID(ctx, id); ok {
			result = append(result, course)
		}
	}
	return result
}
