package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"utsav/internal/export"
	"utsav/internal/service"
)

// ExportHandler serves invoice exports as downloadable spreadsheets.
type ExportHandler struct {
	invoiceService service.InvoiceService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(invoiceService service.InvoiceService) *ExportHandler {
	return &ExportHandler{invoiceService: invoiceService}
}

// ExportInvoicesCSV handles GET /api/v1/exports/invoices.csv
func (h *ExportHandler) ExportInvoicesCSV(c *gin.Context) {
	invoices, err := h.invoiceService.ListAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("invoices_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}

	w := export.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteInvoices(invoices); err != nil {
		return
	}
	w.Flush()
}

// ExportInvoicesXLSX handles GET /api/v1/exports/invoices.xlsx
func (h *ExportHandler) ExportInvoicesXLSX(c *gin.Context) {
	invoices, err := h.invoiceService.ListAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("invoices_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := export.WriteInvoicesXLSX(c.Writer, invoices); err != nil {
		// Headers already sent; nothing useful left to return.
		_ = c.Error(err)
	}
}
