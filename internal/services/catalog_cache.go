package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SAP-F-2025/course-catalog-service/internal/cache"
	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

// cachedCatalogService memoizes the id lists of search, category and flag
// queries in Redis. Courses themselves are always resolved from the store,
// so a cache entry can only ever name courses, never serve stale fields.
type cachedCatalogService struct {
	CatalogService
	cache  *cache.CacheManager
	logger *slog.Logger
}

// NewCachedCatalogService wraps next with Redis cache-aside. When the cache
// manager has no client every call goes straight to next.
func NewCachedCatalogService(next CatalogService, cm *cache.CacheManager, logger *slog.Logger) CatalogService {
	if cm == nil || !cm.Catalog.Available() {
		return next
	}
	return &cachedCatalogService{
		CatalogService: next,
		cache:          cm,
		logger:         logger,
	}
}

func (s *cachedCatalogService) SearchCourses(ctx context.Context, query string) []models.Course {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []models.Course{}
	}
	return s.cachedIDs(ctx, s.cache.Search, "q:"+term, cache.SearchCacheConfig, func() []models.Course {
		return s.CatalogService.SearchCourses(ctx, term)
	})
}

func (s *cachedCatalogService) FilterCoursesByCategory(ctx context.Context, categorySlug string) []models.Course {
	if categorySlug == "" {
		return s.CatalogService.FilterCoursesByCategory(ctx, categorySlug)
	}
	return s.cachedIDs(ctx, s.cache.Catalog, "category:"+categorySlug, cache.CatalogCacheConfig, func() []models.Course {
		return s.CatalogService.FilterCoursesByCategory(ctx, categorySlug)
	})
}

func (s *cachedCatalogService) GetFeaturedCourses(ctx context.Context) []models.Course {
	return s.cachedIDs(ctx, s.cache.Catalog, "flag:featured", cache.CatalogCacheConfig, func() []models.Course {
		return s.CatalogService.GetFeaturedCourses(ctx)
	})
}

func (s *cachedCatalogService) GetPopularCourses(ctx context.Context) []models.Course {
	return s.cachedIDs(ctx, s.cache.Catalog, "flag:popular", cache.CatalogCacheConfig, func() []models.Course {
		return s.CatalogService.GetPopularCourses(ctx)
	})
}

func (s *cachedCatalogService) GetNewCourses(ctx context.Context) []models.Course {
	return s.cachedIDs(ctx, s.cache.Catalog, "flag:new", cache.CatalogCacheConfig, func() []models.Course {
		return s.CatalogService.GetNewCourses(ctx)
	})
}

func (s *cachedCatalogService) cachedIDs(ctx context.Context, helper *cache.CacheHelper, key string, cfg cache.CacheConfig, fetch func() []models.Course) []models.Course {
	var fetched []models.Course
	var ids []string
	err := helper.CacheOrExecute(ctx, key, &ids, cfg.TTL, func() (interface{}, error) {
		fetched = fetch()
		return courseIDs(fetched), nil
	})
	if fetched != nil {
		return fetched
	}
	if err != nil {
		s.logger.Warn("Catalog cache failed, querying store", "key", key, "error", err)
		return fetch()
	}
	return s.CatalogService.GetCoursesByIDs(ctx, ids)
}

func courseIDs(courses []models.Course) []string {
	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	return ids
}
