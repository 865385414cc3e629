package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/repositories"
)

// MemoryRepository implements repositories.Repository over data seeded once at
// construction. Nothing writes to it afterwards, so readers share it freely.
type MemoryRepository struct {
	course   *CourseMemory
	category *CategoryMemory
	user     *UserMemory
	admin    *AdminMemory
	billing  *BillingMemory
}

// NewRepository seeds the catalog from the static literals.
func NewRepository() *MemoryRepository {
	seeds := seedCourses()
	courses := make([]models.Course, 0, len(seeds))
	for i, s := range seeds {
		course := s.course
		course.Reviews = generateReviews(uint64(i+1), s.reviews)
		for j := range course.Curriculum {
			course.Curriculum[j].ID = fmt.Sprintf("%d", j+1)
		}
		courses = append(courses, course)
	}

	return &MemoryRepository{
		course:   NewCourseMemory(courses),
		category: NewCategoryMemory(seedCategories),
		user:     NewUserMemory(seedLearner(), seedManagedUsers(), seedUpcomingEvents()),
		admin:    NewAdminMemory(seedManagedUsers(), seedContent()),
		billing:  NewBillingMemory(seedPlans()),
	}
}

func (r *MemoryRepository) Course() repositories.CourseRepository {
	return r.course
}

func (r *MemoryRepository) Category() repositories.CategoryRepository {
	return r.category
}

func (r *MemoryRepository) User() repositories.UserRepository {
	return r.user
}

func (r *MemoryRepository) Admin() repositories.AdminRepository {
	return r.admin
}

func (r *MemoryRepository) Billing() repositories.BillingRepository {
	return r.billing
}

// Ping always succeeds; the store lives in process memory.
func (r *MemoryRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Validate checks the seed invariants: discounts never exceed the list price,
// ratings stay within [0,5], lesson ids are unique per course and every course
// names a known category.
func (r *MemoryRepository) Validate(ctx context.Context) error {
	for _, course := range r.course.List(ctx) {
		if course.DiscountPrice != nil && *course.DiscountPrice > course.Price {
			return fmt.Errorf("course %s: discount price %.2f exceeds price %.2f", course.ID, *course.DiscountPrice, course.Price)
		}
		if course.Rating < 0 || course.Rating > 5 {
			return fmt.Errorf("course %s: rating %.1f out of range", course.ID, course.Rating)
		}
		seen := make(map[string]struct{})
		for _, id := range course.LessonIDs() {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("course %s: duplicate lesson id %s", course.ID, id)
			}
			seen[id] = struct{}{}
		}
		if _, ok := r.category.GetByName(ctx, course.Category); !ok {
			return fmt.Errorf("course %s: unknown category %q", course.ID, course.Category)
		}
		for _, review := range course.Reviews {
			if review.Rating < 1 || review.Rating > 5 {
				return fmt.Errorf("course %s: review %s rating %d out of range", course.ID, review.ID, review.Rating)
			}
		}
	}
	return nil
}

// RepositoryManager wraps the memory repository lifecycle
type RepositoryManager struct {
	repo        *MemoryRepository
	initialized bool
	mu          sync.Mutex
}

func NewRepositoryManager() *RepositoryManager {
	return &RepositoryManager{}
}

func (m *RepositoryManager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	repo := NewRepository()
	if err := repo.Validate(context.Background()); err != nil {
		return fmt.Errorf("invalid catalog seed: %w", err)
	}

	m.repo = repo
	m.initialized = true
	return nil
}

func (m *RepositoryManager) GetRepository() repositories.Repository {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		panic("repository manager not initialized")
	}
	return m.repo
}

func (m *RepositoryManager) HealthCheck(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return fmt.Errorf("repository manager not initialized")
	}
	return m.repo.Ping(ctx)
}

func (m *RepositoryManager) Shutdown(ctx context.Context) error {
	return nil
}
