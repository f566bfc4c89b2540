// Package export renders invoice listings as CSV and XLSX spreadsheets for
// download. It consumes the aggregates' computed fields as display data; no
// core behavior depends on it.
package export

import (
	"encoding/csv"
	"io"

	"utsav/internal/domain"
	"utsav/internal/money"
)

// BOM is the UTF-8 byte-order mark, prepended for Excel compatibility on
// Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// invoiceColumns defines the CSV/XLSX header row.
var invoiceColumns = []string{
	"Invoice Number",
	"Date",
	"Title",
	"Client",
	"Event",
	"Subtotal",
	"Discount",
	"GST %",
	"CGST %",
	"SGST %",
	"IGST %",
	"Tax Amount",
	"Total",
	"Amount Paid",
	"Balance Due",
	"Status",
}

// Writer wraps csv.Writer for exporting invoices as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(invoiceColumns)
}

// WriteInvoices converts invoice rows to CSV and writes them.
func (w *Writer) WriteInvoices(invoices []domain.InvoiceListItem) error {
	for i := range invoices {
		if err := w.csv.Write(invoiceRow(&invoices[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func invoiceRow(inv *domain.InvoiceListItem) []string {
	display := inv.ClientDisplay
	if display == "" {
		display = "-"
	}
	event := inv.EventName
	if event == "" {
		event = "-"
	}
	return []string{
		inv.InvoiceNumber,
		money.FormatDate(inv.CreatedAt),
		inv.Title,
		display,
		event,
		inv.Subtotal.StringFixed(2),
		inv.Discount.StringFixed(2),
		inv.GST.String(),
		inv.CGST.String(),
		inv.SGST.String(),
		inv.IGST.String(),
		inv.TaxAmount.StringFixed(2),
		inv.Total.StringFixed(2),
		inv.AmountPaid.StringFixed(2),
		inv.BalanceDue.StringFixed(2),
		string(inv.Status),
	}
}
