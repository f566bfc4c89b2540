package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"utsav/internal/domain"
	"utsav/internal/port"
)

type paymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

// Record inserts the payment row and updates the invoice's derived fields in
// one transaction. The ledger and the invoice header move together or not at
// all.
func (r *paymentRepo) Record(ctx context.Context, p *domain.Payment, amountPaid, balanceDue decimal.Decimal, status domain.InvoiceStatus) error {
	p.ID = uuid.New()
	now := time.Now().UTC()
	p.CreatedAt = now
	if p.PaymentDate.IsZero() {
		p.PaymentDate = now
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("paymentRepo.Record begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO payments (id, invoice_id, amount, payment_method, reference_number, payment_date, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.InvoiceID, p.Amount, p.PaymentMethod, p.ReferenceNumber, p.PaymentDate, p.Notes, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("paymentRepo.Record insert: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		"UPDATE invoices SET amount_paid = $1, balance_due = $2, status = $3, updated_at = $4 WHERE id = $5",
		amountPaid, balanceDue, status, now, p.InvoiceID)
	if err != nil {
		return fmt.Errorf("paymentRepo.Record update invoice: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("paymentRepo.Record commit: %w", err)
	}
	return nil
}

func (r *paymentRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.SelectContext(ctx, &payments,
		"SELECT * FROM payments WHERE invoice_id = $1 ORDER BY payment_date DESC, created_at DESC", invoiceID)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByInvoice: %w", err)
	}
	return payments, nil
}
