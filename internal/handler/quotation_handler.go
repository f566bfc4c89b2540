package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"utsav/internal/domain"
	"utsav/internal/service"
)

// QuotationHandler handles quotation endpoints, including conversion to
// invoice.
type QuotationHandler struct {
	quotationService  service.QuotationService
	conversionService service.ConversionService
}

// NewQuotationHandler creates a new QuotationHandler.
func NewQuotationHandler(quotationService service.QuotationService, conversionService service.ConversionService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService, conversionService: conversionService}
}

// Create handles POST /api/v1/quotations
func (h *QuotationHandler) Create(c *gin.Context) {
	var input service.SaveQuotationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	quotation, err := h.quotationService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, quotation)
}

// List handles GET /api/v1/quotations
func (h *QuotationHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	status := domain.QuotationStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		RespondError(c, http.StatusBadRequest, "INVALID_STATUS", "unknown status value")
		return
	}

	quotations, total, err := h.quotationService.List(c.Request.Context(), status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, quotations, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/quotations/:id
func (h *QuotationHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quotation ID")
		return
	}

	detail, err := h.quotationService.GetDetail(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// Update handles PUT /api/v1/quotations/:id
func (h *QuotationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quotation ID")
		return
	}

	var input service.SaveQuotationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	quotation, err := h.quotationService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, quotation)
}

// statusInput is the body for status assignment endpoints.
type statusInput struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus handles PATCH /api/v1/quotations/:id/status
func (h *QuotationHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quotation ID")
		return
	}

	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.quotationService.SetStatus(c.Request.Context(), id, domain.QuotationStatus(input.Status)); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"status": input.Status})
}

// Convert handles POST /api/v1/quotations/:id/convert
func (h *QuotationHandler) Convert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quotation ID")
		return
	}

	invoice, err := h.conversionService.ConvertToInvoice(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, invoice)
}

// Delete handles DELETE /api/v1/quotations/:id
func (h *QuotationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quotation ID")
		return
	}

	if err := h.quotationService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
