package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/services"
	"github.com/SAP-F-2025/course-catalog-service/internal/utils"
)

type DashboardHandler struct {
	BaseHandler
	service       services.DashboardService
	notifications services.NotificationService
}

func NewDashboardHandler(service services.DashboardService, notifications services.NotificationService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:   NewBaseHandler(logger),
		service:       service,
		notifications: notifications,
	}
}

// GetDashboard returns the signed-in learner's dashboard
// @Summary Get dashboard
// @Description Enrolled, completed, saved and certificate courses with progress and summary counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} services.Dashboard
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	h.LogRequest(c, "Getting dashboard", "session_id", sess.ID())

	dashboard, err := h.service.GetDashboard(c.Request.Context(), sess)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GetNotifications drains the session's pending notifications. Pass
// ?peek=true to read them without consuming.
// @Summary Poll notifications
// @Tags notifications
// @Produce json
// @Param peek query bool false "Read without consuming"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /notifications [get]
func (h *DashboardHandler) GetNotifications(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	var notifications []models.Notification
	if c.Query("peek") == "true" {
		notifications = h.notifications.Peek(sess.ID())
	} else {
		notifications = h.notifications.Drain(sess.ID())
	}
	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"total":         len(notifications),
	})
}
