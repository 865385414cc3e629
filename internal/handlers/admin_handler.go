package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/services"
	"github.com/SAP-F-2025/course-catalog-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	BaseHandler
	service services.AdminService
}

func NewAdminHandler(service services.AdminService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// SearchUsers lists managed users matching ?q=
// @Summary Search users
// @Tags admin
// @Produce json
// @Param q query string false "Name, email or role"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} ErrorResponse "Access Denied"
// @Router /admin/users [get]
func (h *AdminHandler) SearchUsers(c *gin.Context) {
	sess, _ := CurrentSession(c)

	users, err := h.service.SearchUsers(c.Request.Context(), sess, c.Query("q"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
}

func (h *AdminHandler) SearchContent(c *gin.Context) {
	sess, _ := CurrentSession(c)

	items, err := h.service.SearchContent(c.Request.Context(), sess, c.Query("q"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": items, "total": len(items)})
}

// SaveUser creates on POST and edits on PUT /:id
func (h *AdminHandler) SaveUser(c *gin.Context) {
	sess, _ := CurrentSession(c)

	var req services.AdminUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	n, err := h.service.SaveUser(c.Request.Context(), sess, c.Param("id"), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(saveStatus(c), gin.H{"notification": n})
}

func (h *AdminHandler) SaveContent(c *gin.Context) {
	sess, _ := CurrentSession(c)

	var req services.AdminContentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	n, err := h.service.SaveContent(c.Request.Context(), sess, c.Param("id"), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(saveStatus(c), gin.H{"notification": n})
}

func saveStatus(c *gin.Context) int {
	if c.Param("id") == "" {
		return http.StatusCreated
	}
	return http.StatusOK
}

func (h *AdminHandler) deleteTarget(target models.AdminTarget) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := CurrentSession(c)

		n, err := h.service.Delete(c.Request.Context(), sess, target, c.Param("id"))
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"notification": n})
	}
}

func (h *AdminHandler) DeleteUser() gin.HandlerFunc    { return h.deleteTarget(models.TargetUser) }
func (h *AdminHandler) DeleteContent() gin.HandlerFunc { return h.deleteTarget(models.TargetContent) }

// BulkAction applies one action to a selection. An empty selection is not an
// error: the response carries a destructive notification and affected=0.
func (h *AdminHandler) BulkAction(c *gin.Context) {
	sess, _ := CurrentSession(c)

	var req services.BulkActionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.service.BulkAction(c.Request.Context(), sess, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportCatalog streams the catalog workbook as an attachment
// @Summary Export catalog
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 403 {object} ErrorResponse "Access Denied"
// @Router /admin/export [get]
func (h *AdminHandler) ExportCatalog(c *gin.Context) {
	sess, _ := CurrentSession(c)

	export, err := h.service.ExportCatalog(c.Request.Context(), sess)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Catalog exported", "file", export.FileName, "bytes", len(export.Data))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	c.Data(http.StatusOK, xlsxContentType, export.Data)
}
