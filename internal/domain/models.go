package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"utsav/internal/money"
)

// Client is a party that quotations and invoices bill against. Clients are
// shared references, never owned: deleting one detaches, it does not cascade.
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Company   string    `db:"company" json:"company"`
	GSTNumber string    `db:"gst_number" json:"gst_number"`
	City      string    `db:"city" json:"city"`
	State     string    `db:"state" json:"state"`
	Address   string    `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Event is a booked engagement (wedding, corporate function) that documents
// may reference.
type Event struct {
	ID         uuid.UUID   `db:"id" json:"id"`
	ClientID   *uuid.UUID  `db:"client_id" json:"client_id"`
	Name       string      `db:"name" json:"name"`
	EventType  string      `db:"event_type" json:"event_type"`
	Venue      string      `db:"venue" json:"venue"`
	EventDate  *time.Time  `db:"event_date" json:"event_date"`
	GuestCount int         `db:"guest_count" json:"guest_count"`
	Status     EventStatus `db:"status" json:"status"`
	Notes      string      `db:"notes" json:"notes"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at" json:"updated_at"`
}

// LineItem is one priced row of a quotation or invoice. Amount always equals
// quantity times rate; it is recomputed on every edit, never set directly.
// SortOrder is the printed line order and survives persistence round-trips.
type LineItem struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Description string          `db:"description" json:"description"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	Unit        string          `db:"unit" json:"unit"`
	Rate        decimal.Decimal `db:"rate" json:"rate"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	SortOrder   int             `db:"sort_order" json:"sort_order"`
}

// QuotationItem is a line item owned by a quotation (cascade delete).
type QuotationItem struct {
	LineItem
	QuotationID uuid.UUID `db:"quotation_id" json:"quotation_id"`
}

// InvoiceItem is a line item owned by an invoice. Items copied during
// conversion are independent rows, not live references to quotation items.
type InvoiceItem struct {
	LineItem
	InvoiceID uuid.UUID `db:"invoice_id" json:"invoice_id"`
}

// Quotation is a pre-sale proposal with a derived financial state. Once its
// status is converted the financial fields are frozen.
type Quotation struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	QuotationNumber string          `db:"quotation_number" json:"quotation_number"`
	Title           string          `db:"title" json:"title"`
	ClientID        *uuid.UUID      `db:"client_id" json:"client_id"`
	ClientName      string          `db:"client_name" json:"client_name"`
	EventID         *uuid.UUID      `db:"event_id" json:"event_id"`
	EventName       string          `db:"event_name" json:"event_name"`
	Subtotal        decimal.Decimal `db:"subtotal" json:"subtotal"`
	Discount        decimal.Decimal `db:"discount" json:"discount"`
	money.TaxRates
	TaxAmount decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	Total     decimal.Decimal `db:"total" json:"total"`
	Notes     string          `db:"notes" json:"notes"`
	Terms     string          `db:"terms" json:"terms"`
	Status    QuotationStatus `db:"status" json:"status"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// Invoice is a billing document, either converted from a quotation (carrying
// its financial snapshot verbatim) or created standalone. AmountPaid and
// BalanceDue track the payment ledger; balance clamps at zero.
type Invoice struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	QuotationID   *uuid.UUID      `db:"quotation_id" json:"quotation_id"`
	Title         string          `db:"title" json:"title"`
	ClientID      *uuid.UUID      `db:"client_id" json:"client_id"`
	ClientName    string          `db:"client_name" json:"client_name"`
	EventID       *uuid.UUID      `db:"event_id" json:"event_id"`
	EventName     string          `db:"event_name" json:"event_name"`
	Subtotal      decimal.Decimal `db:"subtotal" json:"subtotal"`
	Discount      decimal.Decimal `db:"discount" json:"discount"`
	money.TaxRates
	TaxAmount  decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	Total      decimal.Decimal `db:"total" json:"total"`
	AmountPaid decimal.Decimal `db:"amount_paid" json:"amount_paid"`
	BalanceDue decimal.Decimal `db:"balance_due" json:"balance_due"`
	Notes      string          `db:"notes" json:"notes"`
	Terms      string          `db:"terms" json:"terms"`
	Status     InvoiceStatus   `db:"status" json:"status"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
}

// Payment is one settlement against an invoice. Payments are immutable once
// recorded; corrections happen through further payments, not edits.
type Payment struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	InvoiceID       uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	Amount          decimal.Decimal `db:"amount" json:"amount"`
	PaymentMethod   string          `db:"payment_method" json:"payment_method"`
	ReferenceNumber string          `db:"reference_number" json:"reference_number"`
	PaymentDate     time.Time       `db:"payment_date" json:"payment_date"`
	Notes           string          `db:"notes" json:"notes"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

// QuotationDetail is a quotation composed with its ordered items and the
// resolved client record, for detail views and document export.
type QuotationDetail struct {
	Quotation
	Items  []QuotationItem `json:"items"`
	Client *Client         `json:"client,omitempty"`
}

// InvoiceDetail is an invoice composed with items, resolved client, and the
// payment ledger.
type InvoiceDetail struct {
	Invoice
	Items    []InvoiceItem `json:"items"`
	Client   *Client       `json:"client,omitempty"`
	Payments []Payment     `json:"payments"`
}

// QuotationListItem is a quotation row with the display name of its client
// (free-text name when present, otherwise the linked client's name).
type QuotationListItem struct {
	Quotation
	ClientDisplay string `db:"client_display" json:"client_display"`
}

// InvoiceListItem is an invoice row with the client display name.
type InvoiceListItem struct {
	Invoice
	ClientDisplay string `db:"client_display" json:"client_display"`
}

// DashboardStats aggregates business-wide figures for the dashboard.
type DashboardStats struct {
	TotalRevenue    decimal.Decimal `db:"total_revenue" json:"total_revenue"`
	PendingPayments decimal.Decimal `db:"pending_payments" json:"pending_payments"`
	TotalClients    int             `db:"total_clients" json:"total_clients"`
	TotalEvents     int             `db:"total_events" json:"total_events"`
	TotalQuotations int             `db:"total_quotations" json:"total_quotations"`
	TotalInvoices   int             `db:"total_invoices" json:"total_invoices"`
}
