package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-catalog-service/internal/services"
	"github.com/SAP-F-2025/course-catalog-service/internal/utils"
)

// LearningHandler serves the course player and the course detail page actions
type LearningHandler struct {
	BaseHandler
	learning services.LearningService
	actions  services.CourseActionService
}

func NewLearningHandler(learning services.LearningService, actions services.CourseActionService, logger utils.Logger) *LearningHandler {
	return &LearningHandler{
		BaseHandler: NewBaseHandler(logger),
		learning:    learning,
		actions:     actions,
	}
}

type lessonCompletionRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// GetLearningView returns the player at ?lesson=N (0 based, clamped)
func (h *LearningHandler) GetLearningView(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.DefaultQuery("lesson", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid lesson parameter",
			Details: "lesson must be a number",
		})
		return
	}

	view, err := h.learning.GetLearningView(c.Request.Context(), sess, c.Param("id"), index)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *LearningHandler) SetLessonCompleted(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	var req lessonCompletionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	view, err := h.learning.SetLessonCompleted(c.Request.Context(), sess, c.Param("id"), c.Param("lesson_id"), *req.Completed)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *LearningHandler) CompleteAll(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	view, err := h.learning.CompleteAll(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Enroll waits for the simulated enrollment; already enrolled users get no notification
func (h *LearningHandler) Enroll(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	n, err := h.actions.Enroll(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if n.Title == "" {
		c.JSON(http.StatusOK, gin.H{"enrolled": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrolled": true, "notification": n})
}

func (h *LearningHandler) ToggleSave(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	n, err := h.actions.ToggleSave(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": n})
}

func (h *LearningHandler) Share(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	n, err := h.actions.Share(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": n})
}
