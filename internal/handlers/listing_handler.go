package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-catalog-service/internal/listing"
	"github.com/SAP-F-2025/course-catalog-service/internal/services"
	"github.com/SAP-F-2025/course-catalog-service/internal/utils"
	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
)

// ListingHandler exposes the debounced, session-owned catalog listings.
// Every mutation answers with the current snapshot; the recomputed courses
// show up on a later GET once the quiet period has passed.
type ListingHandler struct {
	BaseHandler
	service   services.ListingService
	validator *validator.Validator
}

func NewListingHandler(service services.ListingService, validator *validator.Validator, logger utils.Logger) *ListingHandler {
	return &ListingHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		validator:   validator,
	}
}

type queryRequest struct {
	Query string `json:"query"`
}

type toggleRequest struct {
	Value string `json:"value" binding:"required"`
}

// CreateListing starts a listing from optional initial filters
// @Summary Create listing
// @Tags listings
// @Accept json
// @Produce json
// @Param filters body services.ListingUpdateRequest false "Initial filters"
// @Success 201 {object} listing.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /listings [post]
func (h *ListingHandler) CreateListing(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	var req services.ListingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}
	if errors := h.validator.GetBusinessValidator().Validate(&req); len(errors) > 0 {
		h.handleServiceError(c, errors)
		return
	}

	filters := listing.DefaultFilters()
	if req.Query != nil {
		filters.Query = *req.Query
	}
	if req.Category != nil {
		filters.Category = *req.Category
	}
	if req.Levels != nil {
		filters.Levels = append([]string{}, req.Levels...)
	}
	if req.MinPrice != nil {
		filters.Price.Min = *req.MinPrice
	}
	if req.MaxPrice != nil {
		filters.Price.Max = *req.MaxPrice
	}

	snap, err := h.service.Create(c.Request.Context(), sess, filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Listing created", "listing_id", snap.ID)
	c.JSON(http.StatusCreated, snap)
}

func (h *ListingHandler) GetListing(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	snap, err := h.service.Get(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// UpdateListing applies every provided field with a single recomputation
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	var req services.ListingUpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	snap, err := h.service.Update(c.Request.Context(), sess, c.Param("id"), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *ListingHandler) SetQuery(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	var req queryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	snap, err := h.service.SetQuery(c.Request.Context(), sess, c.Param("id"), req.Query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *ListingHandler) ToggleCategory(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	var req toggleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	snap, err := h.service.ToggleCategory(c.Request.Context(), sess, c.Param("id"), req.Value)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *ListingHandler) ToggleLevel(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	var req toggleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	snap, err := h.service.ToggleLevel(c.Request.Context(), sess, c.Param("id"), req.Value)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *ListingHandler) SetPriceRange(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	var req validator.ListingPriceRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if errors := h.validator.GetBusinessValidator().Validate(&req); len(errors) > 0 {
		h.handleServiceError(c, errors)
		return
	}

	snap, err := h.service.SetPriceRange(c.Request.Context(), sess, c.Param("id"), req.MinPrice, req.MaxPrice)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ClearFilters resets every predicate at once
func (h *ListingHandler) ClearFilters(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	snap, err := h.service.ClearFilters(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *ListingHandler) DeleteListing(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), sess, c.Param("id")); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
