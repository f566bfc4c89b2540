package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"utsav/internal/domain"
	"utsav/internal/handler"
	"utsav/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newInvoiceHandler() (*handler.InvoiceHandler, *mocks.MockInvoiceService, *mocks.MockPaymentService) {
	invSvc := new(mocks.MockInvoiceService)
	paySvc := new(mocks.MockPaymentService)
	h := handler.NewInvoiceHandler(invSvc, paySvc)
	return h, invSvc, paySvc
}

func postJSON(c *gin.Context, path string, body interface{}) {
	data, _ := json.Marshal(body)
	c.Request, _ = http.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	c.Request.Header.Set("Content-Type", "application/json")
}

func TestRecordPayment_Success(t *testing.T) {
	h, _, paySvc := newInvoiceHandler()

	invoiceID := uuid.New()
	payment := &domain.Payment{
		ID:        uuid.New(),
		InvoiceID: invoiceID,
		Amount:    decimal.NewFromInt(4000),
	}
	paySvc.On("Record", mock.Anything, invoiceID, mock.AnythingOfType("service.RecordPaymentInput")).
		Return(payment, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	postJSON(c, "/api/v1/invoices/"+invoiceID.String()+"/payments", gin.H{"amount": "4000", "payment_method": "upi"})
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.RecordPayment(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    domain.Payment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, payment.ID, resp.Data.ID)
	paySvc.AssertExpectations(t)
}

func TestRecordPayment_InvalidID(t *testing.T) {
	h, _, paySvc := newInvoiceHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	postJSON(c, "/api/v1/invoices/not-a-uuid/payments", gin.H{"amount": "100"})
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.RecordPayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	paySvc.AssertNotCalled(t, "Record")
}

func TestRecordPayment_CancelledInvoiceConflicts(t *testing.T) {
	h, _, paySvc := newInvoiceHandler()

	invoiceID := uuid.New()
	paySvc.On("Record", mock.Anything, invoiceID, mock.Anything).
		Return(nil, domain.ErrInvoiceCancelled)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	postJSON(c, "/api/v1/invoices/"+invoiceID.String()+"/payments", gin.H{"amount": "100"})
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.RecordPayment(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVOICE_CANCELLED", resp.Error.Code)
}

func TestInvoiceList_RejectsUnknownStatus(t *testing.T) {
	h, invSvc, _ := newInvoiceHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices?status=void", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	invSvc.AssertNotCalled(t, "List")
}

func TestInvoiceGetByID_NotFound(t *testing.T) {
	h, invSvc, _ := newInvoiceHandler()

	id := uuid.New()
	invSvc.On("GetDetail", mock.Anything, id).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/"+id.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
