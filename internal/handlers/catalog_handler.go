package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-catalog-service/internal/listing"
	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/services"
	"github.com/SAP-F-2025/course-catalog-service/internal/utils"
)

type CatalogHandler struct {
	BaseHandler
	catalog  services.CatalogService
	listings services.ListingService
}

func NewCatalogHandler(catalog services.CatalogService, listings services.ListingService, logger utils.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: NewBaseHandler(logger),
		catalog:     catalog,
		listings:    listings,
	}
}

// CourseListResponse wraps the plain query endpoints
type CourseListResponse struct {
	Courses []models.Course `json:"courses"`
	Total   int             `json:"total"`
	Empty   bool            `json:"empty"`
}

func courseList(courses []models.Course) CourseListResponse {
	return CourseListResponse{Courses: courses, Total: len(courses), Empty: len(courses) == 0}
}

// parseFilters reads q, category, level, min_price and max_price. level may
// repeat or hold a comma separated list.
func parseFilters(c *gin.Context) (listing.Filters, error) {
	f := listing.DefaultFilters()
	f.Query = c.Query("q")
	f.Category = c.Query("category")

	for _, raw := range c.QueryArray("level") {
		for _, level := range strings.Split(raw, ",") {
			if level = strings.TrimSpace(level); level != "" {
				f.Levels = append(f.Levels, level)
			}
		}
	}

	if v := c.Query("min_price"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fmt.Errorf("min_price: %w", err)
		}
		f.Price.Min = min
	}
	if v := c.Query("max_price"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fmt.Errorf("max_price: %w", err)
		}
		f.Price.Max = max
	}
	return f, nil
}

// ListCourses composes the catalog page synchronously
// @Summary Browse courses
// @Tags courses
// @Produce json
// @Param q query string false "Search term"
// @Param category query string false "Category slug"
// @Param level query []string false "Levels (any match)"
// @Param min_price query number false "Minimum effective price"
// @Param max_price query number false "Maximum effective price"
// @Param tab query string false "all, popular or new"
// @Success 200 {object} services.BrowseResult
// @Failure 400 {object} ErrorResponse
// @Router /courses [get]
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid query parameter",
			Details: err.Error(),
		})
		return
	}

	tab, err := listing.ParseTab(c.Query("tab"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid tab parameter",
			Details: "Tab must be 'all', 'popular' or 'new'",
		})
		return
	}

	h.LogRequest(c, "Browsing courses", "filters", filters.Predicate().String(), "tab", tab)

	result, err := h.listings.Browse(c.Request.Context(), filters, tab)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchCourses matches q against title, description, tags and instructor
func (h *CatalogHandler) SearchCourses(c *gin.Context) {
	c.JSON(http.StatusOK, courseList(h.catalog.SearchCourses(c.Request.Context(), c.Query("q"))))
}

func (h *CatalogHandler) FeaturedCourses(c *gin.Context) {
	c.JSON(http.StatusOK, courseList(h.catalog.GetFeaturedCourses(c.Request.Context())))
}

func (h *CatalogHandler) PopularCourses(c *gin.Context) {
	c.JSON(http.StatusOK, courseList(h.catalog.GetPopularCourses(c.Request.Context())))
}

func (h *CatalogHandler) NewCourses(c *gin.Context) {
	c.JSON(http.StatusOK, courseList(h.catalog.GetNewCourses(c.Request.Context())))
}

// GetCourse returns the full course detail
// @Summary Get course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} ErrorResponse
// @Router /courses/{id} [get]
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Getting course", "course_id", id)

	course, ok := h.catalog.GetCourseByID(c.Request.Context(), id)
	if !ok {
		h.courseNotFound(c)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CatalogHandler) GetCourseBySlug(c *gin.Context) {
	course, ok := h.catalog.GetCourseBySlug(c.Request.Context(), c.Param("slug"))
	if !ok {
		h.courseNotFound(c)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CatalogHandler) courseNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Message: "Course Not Found",
		Details: "The course you're looking for doesn't exist or has been removed.",
	})
}

// ListCategories reports each category with its listed and actual course count
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	counts := h.catalog.CategoryCourseCounts(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"categories": counts,
		"total":      len(counts),
	})
}

func (h *CatalogHandler) GetCategoryCourses(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	category, ok := h.catalog.GetCategoryBySlug(ctx, slug)
	if !ok {
		h.handleServiceError(c, fmt.Errorf("%w: %s", services.ErrCategoryNotFound, slug))
		return
	}

	courses := h.catalog.FilterCoursesByCategory(ctx, category.Slug)
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"courses":  courses,
		"total":    len(courses),
		"empty":    len(courses) == 0,
	})
}
