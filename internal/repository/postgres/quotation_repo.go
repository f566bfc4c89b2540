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

type quotationRepo struct {
	db *sqlx.DB
}

// NewQuotationRepo creates a new PostgreSQL-backed QuotationRepository.
func NewQuotationRepo(db *sqlx.DB) port.QuotationRepository {
	return &quotationRepo{db: db}
}

const insertQuotationQuery = `INSERT INTO quotations
	(id, quotation_number, title, client_id, client_name, event_id, event_name,
	 subtotal, discount, gst_percentage, cgst_rate, sgst_rate, igst_rate,
	 tax_amount, total, notes, terms, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

const insertQuotationItemQuery = `INSERT INTO quotation_items
	(id, quotation_id, description, quantity, unit, rate, amount, sort_order)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *quotationRepo) Create(ctx context.Context, q *domain.Quotation, items []domain.QuotationItem) error {
	q.ID = uuid.New()
	now := time.Now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("quotationRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertQuotationQuery,
		q.ID, q.QuotationNumber, q.Title, q.ClientID, q.ClientName, q.EventID, q.EventName,
		q.Subtotal, q.Discount, q.GST, q.CGST, q.SGST, q.IGST,
		q.TaxAmount, q.Total, q.Notes, q.Terms, q.Status, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("quotationRepo.Create: %w", err)
	}

	if err := insertQuotationItems(ctx, tx, q.ID, items); err != nil {
		return fmt.Errorf("quotationRepo.Create items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("quotationRepo.Create commit: %w", err)
	}
	return nil
}

// Update writes the header and replaces the entire line-item collection in
// one transaction, so there is never a window where the quotation has no
// items.
func (r *quotationRepo) Update(ctx context.Context, q *domain.Quotation, items []domain.QuotationItem) error {
	q.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("quotationRepo.Update begin: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE quotations SET title = $1, client_id = $2, client_name = $3,
		event_id = $4, event_name = $5, subtotal = $6, discount = $7,
		gst_percentage = $8, cgst_rate = $9, sgst_rate = $10, igst_rate = $11,
		tax_amount = $12, total = $13, notes = $14, terms = $15, status = $16,
		updated_at = $17
		WHERE id = $18`
	result, err := tx.ExecContext(ctx, query,
		q.Title, q.ClientID, q.ClientName, q.EventID, q.EventName,
		q.Subtotal, q.Discount, q.GST, q.CGST, q.SGST, q.IGST,
		q.TaxAmount, q.Total, q.Notes, q.Terms, q.Status, q.UpdatedAt, q.ID)
	if err != nil {
		return fmt.Errorf("quotationRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM quotation_items WHERE quotation_id = $1", q.ID); err != nil {
		return fmt.Errorf("quotationRepo.Update delete items: %w", err)
	}
	if err := insertQuotationItems(ctx, tx, q.ID, items); err != nil {
		return fmt.Errorf("quotationRepo.Update items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("quotationRepo.Update commit: %w", err)
	}
	return nil
}

func insertQuotationItems(ctx context.Context, tx *sqlx.Tx, quotationID uuid.UUID, items []domain.QuotationItem) error {
	for i := range items {
		item := &items[i]
		item.ID = uuid.New()
		item.QuotationID = quotationID
		if _, err := tx.ExecContext(ctx, insertQuotationItemQuery,
			item.ID, item.QuotationID, item.Description, item.Quantity,
			item.Unit, item.Rate, item.Amount, item.SortOrder); err != nil {
			return err
		}
	}
	return nil
}

func (r *quotationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quotation, error) {
	var q domain.Quotation
	err := r.db.GetContext(ctx, &q, "SELECT * FROM quotations WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("quotationRepo.GetByID: %w", err)
	}
	return &q, nil
}

func (r *quotationRepo) GetDetail(ctx context.Context, id uuid.UUID) (*domain.QuotationDetail, error) {
	q, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.QuotationDetail{Quotation: *q}

	detail.Items, err = r.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}

	if q.ClientID != nil {
		var client domain.Client
		err = r.db.GetContext(ctx, &client, "SELECT * FROM clients WHERE id = $1", *q.ClientID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("quotationRepo.GetDetail client: %w", err)
		}
		if err == nil {
			detail.Client = &client
		}
	}
	return detail, nil
}

func (r *quotationRepo) ListItems(ctx context.Context, quotationID uuid.UUID) ([]domain.QuotationItem, error) {
	var items []domain.QuotationItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM quotation_items WHERE quotation_id = $1 ORDER BY sort_order", quotationID)
	if err != nil {
		return nil, fmt.Errorf("quotationRepo.ListItems: %w", err)
	}
	return items, nil
}

func (r *quotationRepo) List(ctx context.Context, status domain.QuotationStatus, offset, limit int) ([]domain.QuotationListItem, int, error) {
	where := ""
	countArgs := []interface{}{}
	listArgs := []interface{}{}
	if status != "" {
		where = " WHERE q.status = $1"
		countArgs = append(countArgs, status)
		listArgs = append(listArgs, status)
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM quotations q"+where, countArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("quotationRepo.List count: %w", err)
	}

	query := `SELECT q.*, COALESCE(NULLIF(q.client_name, ''), c.name, '') AS client_display
		FROM quotations q LEFT JOIN clients c ON c.id = q.client_id` + where +
		fmt.Sprintf(" ORDER BY q.created_at DESC LIMIT $%d OFFSET $%d", len(listArgs)+1, len(listArgs)+2)
	listArgs = append(listArgs, limit, offset)

	var quotations []domain.QuotationListItem
	err = r.db.SelectContext(ctx, &quotations, query, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("quotationRepo.List: %w", err)
	}
	return quotations, total, nil
}

func (r *quotationRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.QuotationStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE quotations SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("quotationRepo.SetStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *quotationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM quotations WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("quotationRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
