package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-catalog-service/internal/services"
	"github.com/SAP-F-2025/course-catalog-service/internal/utils"
)

// AuthHandler serves the public forms: login, instructor registration and contact
type AuthHandler struct {
	BaseHandler
	forms services.FormService
}

func NewAuthHandler(forms services.FormService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		forms:       forms,
	}
}

// Login signs in and returns the session id to send as a bearer token
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body services.LoginRequest true "Login form"
// @Success 200 {object} services.LoginResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Submission canceled"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.forms.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	if err := h.forms.Logout(c.Request.Context(), sess); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) RegisterInstructor(c *gin.Context) {
	var req services.InstructorApplicationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	n, err := h.forms.SubmitInstructorApplication(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"notification": n})
}

func (h *AuthHandler) Contact(c *gin.Context) {
	var req services.ContactRequest
	if !h.bindJSON(c, &req) {
		return
	}

	n, err := h.forms.SubmitContact(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"notification": n})
}
