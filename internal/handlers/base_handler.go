package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-catalog-service/internal/listing"
	"github.com/SAP-F-2025/course-catalog-service/internal/services"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
	"github.com/SAP-F-2025/course-catalog-service/internal/utils"
	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// BaseHandler carries what every handler shares: the logger and the
// mapping from service errors to HTTP responses.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) log(c *gin.Context) utils.Logger {
	return utils.FromContext(c, h.logger)
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	h.log(c).Debug(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	h.log(c).Error(msg, append(args, "error", err)...)
}

// bindJSON decodes the body into req and answers 400 when it cannot.
func (h *BaseHandler) bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// requireSession returns the session stored by the auth middleware.
func (h *BaseHandler) requireSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return nil, false
	}
	return sess, true
}

func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Course not found"})
	case errors.Is(err, services.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Category not found"})
	case errors.Is(err, services.ErrLessonNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Lesson not found"})
	case errors.Is(err, services.ErrListingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Listing not found"})
	case errors.Is(err, services.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Plan not found"})
	case errors.Is(err, services.ErrAdminItemNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Item not found"})
	case errors.Is(err, listing.ErrInvalidPriceRange):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid price range",
			Details: "min_price and max_price must be finite, with min_price at least 0 and not above max_price",
		})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid input", Details: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, accessDenied)
	case errors.Is(err, services.ErrUnauthorized), errors.Is(err, session.ErrSessionEnded):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Session has ended"})
	case errors.Is(err, services.ErrSubmissionCanceled):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "Submission was canceled"})
	case errors.Is(err, services.ErrServiceShutdown):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Message: "Service is shutting down"})
	default:
		h.LogError(c, err, "Unhandled service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
