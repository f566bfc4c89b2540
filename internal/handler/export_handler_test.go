package handler_test

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"utsav/internal/domain"
	"utsav/internal/export"
	"utsav/internal/handler"
	"utsav/mocks"
)

func TestExportInvoicesCSV(t *testing.T) {
	invSvc := new(mocks.MockInvoiceService)
	h := handler.NewExportHandler(invSvc)

	invoices := []domain.InvoiceListItem{
		{
			Invoice: domain.Invoice{
				InvoiceNumber: "INV-2026-0001",
				Title:         "Wedding Catering",
				Subtotal:      decimal.NewFromInt(10000),
				Total:         decimal.NewFromInt(11800),
				BalanceDue:    decimal.NewFromInt(11800),
				Status:        domain.InvoiceStatusUnpaid,
				CreatedAt:     time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
			},
			ClientDisplay: "Sharma Weddings",
		},
	}
	invSvc.On("ListAll", mock.Anything).Return(invoices, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/exports/invoices.csv", http.NoBody)

	h.ExportInvoicesCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoices_")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	body := w.Body.Bytes()
	require.True(t, len(body) >= 3)
	assert.Equal(t, export.BOM, body[:3])

	r := csv.NewReader(strings.NewReader(string(body[3:])))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Invoice Number", records[0][0])
	assert.Equal(t, "INV-2026-0001", records[1][0])
	assert.Equal(t, "Sharma Weddings", records[1][3])
	invSvc.AssertExpectations(t)
}

func TestExportInvoicesCSV_ListFailure(t *testing.T) {
	invSvc := new(mocks.MockInvoiceService)
	h := handler.NewExportHandler(invSvc)

	invSvc.On("ListAll", mock.Anything).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/exports/invoices.csv", http.NoBody)

	h.ExportInvoicesCSV(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
