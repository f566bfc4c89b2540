package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"utsav/internal/domain"
	"utsav/internal/money"
)

const invoiceSheet = "Invoices"

// WriteInvoicesXLSX renders invoice rows as an XLSX workbook with one
// "Invoices" sheet. Monetary columns keep their INR display formatting.
func WriteInvoicesXLSX(w io.Writer, invoices []domain.InvoiceListItem) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(invoiceSheet)
	if err != nil {
		return fmt.Errorf("export.WriteInvoicesXLSX sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("export.WriteInvoicesXLSX: %w", err)
	}

	for col, name := range invoiceColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("export.WriteInvoicesXLSX header: %w", err)
		}
		if err := f.SetCellValue(invoiceSheet, cell, name); err != nil {
			return fmt.Errorf("export.WriteInvoicesXLSX header: %w", err)
		}
	}

	for i := range invoices {
		inv := &invoices[i]
		values := []interface{}{
			inv.InvoiceNumber,
			money.FormatDate(inv.CreatedAt),
			inv.Title,
			inv.ClientDisplay,
			inv.EventName,
			money.FormatINR(inv.Subtotal),
			money.FormatINR(inv.Discount),
			inv.GST.String(),
			inv.CGST.String(),
			inv.SGST.String(),
			inv.IGST.String(),
			money.FormatINR(inv.TaxAmount),
			money.FormatINR(inv.Total),
			money.FormatINR(inv.AmountPaid),
			money.FormatINR(inv.BalanceDue),
			string(inv.Status),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("export.WriteInvoicesXLSX row: %w", err)
			}
			if err := f.SetCellValue(invoiceSheet, cell, v); err != nil {
				return fmt.Errorf("export.WriteInvoicesXLSX row: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.WriteInvoicesXLSX write: %w", err)
	}
	return nil
}
