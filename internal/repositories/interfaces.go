package repositories

import (
	"context"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

// CourseRepository serves the immutable course collection. List preserves the
// seed order, which every query relies on.
type CourseRepository interface {
	List(ctx context.Context) []models.Course
	GetByID(ctx context.Context, id string) (models.Course, bool)
	GetBySlug(ctx context.Context, slug string) (models.Course, bool)
	GetByIDs(ctx context.Context, ids []string) []models.Course
}

type CategoryRepository interface {
	List(ctx context.Context) []models.Category
	GetBySlug(ctx context.Context, slug string) (models.Category, bool)
	GetByName(ctx context.Context, name string) (models.Category, bool)
}

// AdminRepository backs the admin panel tables
type AdminRepository interface {
	ListUsers(ctx context.Context) []models.ManagedUser
	GetUser(ctx context.Context, id string) (models.ManagedUser, bool)
	ListContent(ctx context.Context) []models.ContentItem
	GetContent(ctx context.Context, id string) (models.ContentItem, bool)
}

type BillingRepository interface {
	ListPlans(ctx context.Context) []models.Plan
	GetPlan(ctx context.Context, key string) (models.Plan, bool)
}
