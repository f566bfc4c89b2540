package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"utsav/internal/domain"
	"utsav/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

const insertInvoiceQuery = `INSERT INTO invoices
	(id, invoice_number, quotation_id, title, client_id, client_name, event_id, event_name,
	 subtotal, discount, gst_percentage, cgst_rate, sgst_rate, igst_rate,
	 tax_amount, total, amount_paid, balance_due, notes, terms, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`

const insertInvoiceItemQuery = `INSERT INTO invoice_items
	(id, invoice_id, description, quantity, unit, rate, amount, sort_order)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	if err := insertInvoice(ctx, tx, inv, items); err != nil {
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return nil
}

// CreateFromQuotation inserts the invoice, copies its line items, and marks
// the source quotation converted, as one atomic unit. If any step fails the
// whole conversion rolls back; there is no window with an empty invoice or a
// converted quotation without an invoice.
func (r *invoiceRepo) CreateFromQuotation(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error {
	if inv.QuotationID == nil {
		return fmt.Errorf("invoiceRepo.CreateFromQuotation: missing quotation reference")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.CreateFromQuotation begin: %w", err)
	}
	defer tx.Rollback()

	if err := insertInvoice(ctx, tx, inv, items); err != nil {
		return fmt.Errorf("invoiceRepo.CreateFromQuotation: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		"UPDATE quotations SET status = $1, updated_at = $2 WHERE id = $3",
		domain.QuotationStatusConverted, time.Now().UTC(), *inv.QuotationID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.CreateFromQuotation mark converted: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.CreateFromQuotation commit: %w", err)
	}
	return nil
}

func insertInvoice(ctx context.Context, tx *sqlx.Tx, inv *domain.Invoice, items []domain.InvoiceItem) error {
	inv.ID = uuid.New()
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	_, err := tx.ExecContext(ctx, insertInvoiceQuery,
		inv.ID, inv.InvoiceNumber, inv.QuotationID, inv.Title, inv.ClientID, inv.ClientName,
		inv.EventID, inv.EventName, inv.Subtotal, inv.Discount,
		inv.GST, inv.CGST, inv.SGST, inv.IGST,
		inv.TaxAmount, inv.Total, inv.AmountPaid, inv.BalanceDue,
		inv.Notes, inv.Terms, inv.Status, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return err
	}
	return insertInvoiceItems(ctx, tx, inv.ID, items)
}

func insertInvoiceItems(ctx context.Context, tx *sqlx.Tx, invoiceID uuid.UUID, items []domain.InvoiceItem) error {
	for i := range items {
		item := &items[i]
		item.ID = uuid.New()
		item.InvoiceID = invoiceID
		if _, err := tx.ExecContext(ctx, insertInvoiceItemQuery,
			item.ID, item.InvoiceID, item.Description, item.Quantity,
			item.Unit, item.Rate, item.Amount, item.SortOrder); err != nil {
			return err
		}
	}
	return nil
}

// Update writes the header and replaces the entire item collection in one
// transaction, mirroring quotation save semantics.
func (r *invoiceRepo) Update(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error {
	inv.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update begin: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE invoices SET title = $1, client_id = $2, client_name = $3,
		event_id = $4, event_name = $5, subtotal = $6, discount = $7,
		gst_percentage = $8, cgst_rate = $9, sgst_rate = $10, igst_rate = $11,
		tax_amount = $12, total = $13, amount_paid = $14, balance_due = $15,
		notes = $16, terms = $17, status = $18, updated_at = $19
		WHERE id = $20`
	result, err := tx.ExecContext(ctx, query,
		inv.Title, inv.ClientID, inv.ClientName, inv.EventID, inv.EventName,
		inv.Subtotal, inv.Discount, inv.GST, inv.CGST, inv.SGST, inv.IGST,
		inv.TaxAmount, inv.Total, inv.AmountPaid, inv.BalanceDue,
		inv.Notes, inv.Terms, inv.Status, inv.UpdatedAt, inv.ID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM invoice_items WHERE invoice_id = $1", inv.ID); err != nil {
		return fmt.Errorf("invoiceRepo.Update delete items: %w", err)
	}
	if err := insertInvoiceItems(ctx, tx, inv.ID, items); err != nil {
		return fmt.Errorf("invoiceRepo.Update items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Update commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) GetDetail(ctx context.Context, id uuid.UUID) (*domain.InvoiceDetail, error) {
	inv, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.InvoiceDetail{Invoice: *inv}

	err = r.db.SelectContext(ctx, &detail.Items,
		"SELECT * FROM invoice_items WHERE invoice_id = $1 ORDER BY sort_order", id)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetDetail items: %w", err)
	}

	err = r.db.SelectContext(ctx, &detail.Payments,
		"SELECT * FROM payments WHERE invoice_id = $1 ORDER BY payment_date DESC, created_at DESC", id)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetDetail payments: %w", err)
	}

	if inv.ClientID != nil {
		var client domain.Client
		err = r.db.GetContext(ctx, &client, "SELECT * FROM clients WHERE id = $1", *inv.ClientID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("invoiceRepo.GetDetail client: %w", err)
		}
		if err == nil {
			detail.Client = &client
		}
	}
	return detail, nil
}

const invoiceListQuery = `SELECT i.*, COALESCE(NULLIF(i.client_name, ''), c.name, '') AS client_display
	FROM invoices i LEFT JOIN clients c ON c.id = i.client_id`

func (r *invoiceRepo) List(ctx context.Context, status domain.InvoiceStatus, offset, limit int) ([]domain.InvoiceListItem, int, error) {
	where := ""
	countArgs := []interface{}{}
	listArgs := []interface{}{}
	if status != "" {
		where = " WHERE i.status = $1"
		countArgs = append(countArgs, status)
		listArgs = append(listArgs, status)
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices i"+where, countArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	query := invoiceListQuery + where +
		fmt.Sprintf(" ORDER BY i.created_at DESC LIMIT $%d OFFSET $%d", len(listArgs)+1, len(listArgs)+2)
	listArgs = append(listArgs, limit, offset)

	var invoices []domain.InvoiceListItem
	err = r.db.SelectContext(ctx, &invoices, query, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) ListAll(ctx context.Context) ([]domain.InvoiceListItem, error) {
	var invoices []domain.InvoiceListItem
	err := r.db.SelectContext(ctx, &invoices, invoiceListQuery+" ORDER BY i.created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListAll: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.SetStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
