package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/services"
	"github.com/SAP-F-2025/course-catalog-service/internal/utils"
)

// SettingsHandler backs the account, appearance and billing settings pages
type SettingsHandler struct {
	BaseHandler
	account     services.AccountService
	billing     services.BillingService
	preferences services.PreferenceService
}

func NewSettingsHandler(account services.AccountService, billing services.BillingService, preferences services.PreferenceService, logger utils.Logger) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler: NewBaseHandler(logger),
		account:     account,
		billing:     billing,
		preferences: preferences,
	}
}

func (h *SettingsHandler) respond(c *gin.Context, n models.Notification, err error) {
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": n})
}

// ===== ACCOUNT =====

func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	var req services.ProfileUpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}
	n, err := h.account.UpdateProfile(c.Request.Context(), sess, &req)
	h.respond(c, n, err)
}

func (h *SettingsHandler) ChangePassword(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	var req services.PasswordChangeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	n, err := h.account.ChangePassword(c.Request.Context(), sess, &req)
	h.respond(c, n, err)
}

func (h *SettingsHandler) UpdateAvatar(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	var req services.AvatarUpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}
	n, err := h.account.UpdateAvatar(c.Request.Context(), sess, &req)
	h.respond(c, n, err)
}

// DeleteAccount ends the session; the bearer token is invalid afterwards
func (h *SettingsHandler) DeleteAccount(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	n, err := h.account.DeleteAccount(c.Request.Context(), sess)
	h.respond(c, n, err)
}

// ===== APPEARANCE =====

func (h *SettingsHandler) GetAppearance(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.preferences.GetAppearance(c.Request.Context(), sess.User().ID))
}

// UpdateAppearance answers with the stored settings and one notification per change
func (h *SettingsHandler) UpdateAppearance(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	var req services.AppearanceUpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	appearance, notifications, err := h.preferences.UpdateAppearance(c.Request.Context(), sess, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"appearance":    appearance,
		"notifications": notifications,
	})
}

func (h *SettingsHandler) ResetAppearance(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.preferences.ResetAppearance(c.Request.Context(), sess.User().ID))
}

// ===== BILLING =====

func (h *SettingsHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.billing.ListPlans(c.Request.Context())})
}

func (h *SettingsHandler) ChangePlan(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	var req services.PlanChangeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	n, err := h.billing.ChangePlan(c.Request.Context(), sess, &req)
	h.respond(c, n, err)
}

func (h *SettingsHandler) ChangeBillingCycle(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	var req services.BillingCycleRequest
	if !h.bindJSON(c, &req) {
		return
	}
	n, err := h.billing.ChangeBillingCycle(c.Request.Context(), sess, &req)
	h.respond(c, n, err)
}

func (h *SettingsHandler) AddPaymentMethod(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	var req services.PaymentMethodRequest
	if !h.bindJSON(c, &req) {
		return
	}
	n, err := h.billing.AddPaymentMethod(c.Request.Context(), sess, &req)
	h.respond(c, n, err)
}

func (h *SettingsHandler) RemovePaymentMethod(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	n, err := h.billing.RemovePaymentMethod(c.Request.Context(), sess, c.Param("id"))
	h.respond(c, n, err)
}

func (h *SettingsHandler) SetDefaultPaymentMethod(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	n, err := h.billing.SetDefaultPaymentMethod(c.Request.Context(), sess, c.Param("id"))
	h.respond(c, n, err)
}

func (h *SettingsHandler) CancelSubscription(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	n, err := h.billing.CancelSubscription(c.Request.Context(), sess)
	h.respond(c, n, err)
}
