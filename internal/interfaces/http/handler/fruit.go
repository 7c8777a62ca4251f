package handler

import (
	masterdataapp "github.com/fruitsales/backend/internal/application/masterdata"
	"github.com/fruitsales/backend/internal/domain/shared"
	"github.com/fruitsales/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FruitHandler handles fruit master API endpoints
type FruitHandler struct {
	BaseHandler
	fruitService *masterdataapp.FruitService
}

// NewFruitHandler creates a new FruitHandler
func NewFruitHandler(fruitService *masterdataapp.FruitService) *FruitHandler {
	return &FruitHandler{fruitService: fruitService}
}

// Create registers a new fruit in the master
func (h *FruitHandler) Create(c *gin.Context) {
	var req masterdataapp.CreateFruitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	fruit, err := h.fruitService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, fruit)
}

// List returns non-deleted fruits, newest change first
func (h *FruitHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}

	fruits, total, err := h.fruitService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, pageSize := req.Page, req.PageSize
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, fruits, total, page, pageSize)
}

// GetByID returns a single fruit
func (h *FruitHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid fruit ID format")
		return
	}

	fruit, err := h.fruitService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, fruit)
}

// Update changes a fruit's name or unit price
func (h *FruitHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid fruit ID format")
		return
	}

	var req masterdataapp.UpdateFruitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	fruit, err := h.fruitService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, fruit)
}

// Delete soft-deletes a fruit. Past sales keep referencing it.
func (h *FruitHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid fruit ID format")
		return
	}

	if err := h.fruitService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
