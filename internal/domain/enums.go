package domain

// QuotationStatus represents the lifecycle of a quotation. Freshly created
// records start as "new"; "rejected" and "converted" are terminal. Status
// assignment is not restricted to a transition table; any known value may be
// set externally.
type QuotationStatus string

const (
	QuotationStatusDraft     QuotationStatus = "draft"
	QuotationStatusNew       QuotationStatus = "new"
	QuotationStatusSent      QuotationStatus = "sent"
	QuotationStatusAccepted  QuotationStatus = "accepted"
	QuotationStatusRejected  QuotationStatus = "rejected"
	QuotationStatusConverted QuotationStatus = "converted"
)

// IsValid reports whether the value is a known quotation status.
func (s QuotationStatus) IsValid() bool {
	switch s {
	case QuotationStatusDraft, QuotationStatusNew, QuotationStatusSent,
		QuotationStatusAccepted, QuotationStatusRejected, QuotationStatusConverted:
		return true
	}
	return false
}

// InvoiceStatus represents the payment lifecycle of an invoice. The system
// derives unpaid/partial/paid from the balance; overdue and cancelled are
// only ever assigned explicitly.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid    InvoiceStatus = "unpaid"
	InvoiceStatusPartial   InvoiceStatus = "partial"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// IsValid reports whether the value is a known invoice status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusPartial, InvoiceStatusPaid,
		InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// EventStatus represents the lifecycle of a booked event.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// IsValid reports whether the value is a known event status.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// Document types used for sequential number allocation.
const (
	DocTypeQuotation = "quotation"
	DocTypeInvoice   = "invoice"
)

// Number prefixes for human-readable document numbers.
const (
	QuotationNumberPrefix = "QT"
	InvoiceNumberPrefix   = "INV"
)

// DefaultUnit is the unit label applied to line items that leave it blank.
const DefaultUnit = "nos"
