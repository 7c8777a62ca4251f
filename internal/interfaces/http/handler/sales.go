package handler

import (
	"errors"
	"io"
	"net/http"

	importapp "github.com/fruitsales/backend/internal/application/import"
	salesapp "github.com/fruitsales/backend/internal/application/sales"
	"github.com/fruitsales/backend/internal/domain/shared"
	csvimport "github.com/fruitsales/backend/internal/infrastructure/import"
	"github.com/fruitsales/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SalesHandler handles sales entry and bulk import API endpoints
type SalesHandler struct {
	BaseHandler
	salesService   *salesapp.SalesService
	importService  *importapp.SalesImportService
	maxUploadBytes int64
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(salesService *salesapp.SalesService, importService *importapp.SalesImportService, maxUploadBytes int64) *SalesHandler {
	return &SalesHandler{
		salesService:   salesService,
		importService:  importService,
		maxUploadBytes: maxUploadBytes,
	}
}

// Create records a sale entered directly in the back office
func (h *SalesHandler) Create(c *gin.Context) {
	var req salesapp.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	sale, err := h.salesService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sale)
}

// List returns sales, newest sale first
func (h *SalesHandler) List(c *gin.Context) {
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
	}

	items, total, err := h.salesService.List(c.Request.Context(), filter)
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
	h.SuccessWithMeta(c, items, total, page, pageSize)
}

// GetByID returns a single sale
func (h *SalesHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	sale, err := h.salesService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sale)
}

// Update edits a sale, recomputing the total from the current unit price
func (h *SalesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	var req salesapp.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	sale, err := h.salesService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sale)
}

// Delete removes a sale permanently
func (h *SalesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	if err := h.salesService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Import accepts a CSV upload of sales rows. Valid rows are stored even
// when other rows fail; the response lists every rejected row.
func (h *SalesHandler) Import(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeValidation, "file exceeds the maximum upload size")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return
	}
	if int64(len(data)) > h.maxUploadBytes {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeValidation, "file exceeds the maximum upload size")
		return
	}

	result, err := h.importService.ImportAndStore(c.Request.Context(), data)
	if err != nil {
		if errors.Is(err, csvimport.ErrInvalidEncoding) {
			h.BadRequest(c, "file is not valid UTF-8 encoded CSV")
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
