package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrTitleRequired        = errors.New("title must not be empty")
	ErrInvalidLineItem      = errors.New("line item quantity and rate must be non-negative")
	ErrInvalidStatus        = errors.New("unknown status value")
	ErrQuotationConverted   = errors.New("quotation has already been converted")
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
	ErrInvoiceCancelled     = errors.New("invoice is cancelled")
	ErrNameRequired         = errors.New("name must not be empty")
)
