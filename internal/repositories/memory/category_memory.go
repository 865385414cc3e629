package memory

import (
	"context"
	"slices"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

type CategoryMemory struct {
	categories []models.Category
}

func NewCategoryMemory(categories []models.Category) *CategoryMemory {
	return &CategoryMemory{categories: slices.Clone(categories)}
}

func (m *CategoryMemory) List(ctx context.Context) []models.Category {
	return slices.Clone(m.categories)
}

func (m *CategoryMemory) GetBySlug(ctx context.Context, slug string) (models.Category, bool) {
	for _, c := range m.categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Category{}, false
}

func (m *CategoryMemory) GetByName(ctx context.Context, name string) (models.Category, bool) {
	for _, c := range m.categories {
		if c.Name == name {
			return c, true
		}
	}
	return models.Category{}, false
}
