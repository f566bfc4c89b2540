package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"utsav/internal/port"
)

type sequenceRepo struct {
	db *sqlx.DB
}

// NewSequenceRepo creates a new PostgreSQL-backed SequenceRepository.
func NewSequenceRepo(db *sqlx.DB) port.SequenceRepository {
	return &sequenceRepo{db: db}
}

// Next atomically allocates the next number for a document type and year.
// The upsert increments under a row lock, so concurrent allocations never
// observe the same value.
func (r *sequenceRepo) Next(ctx context.Context, docType string, year int) (int64, error) {
	var next int64
	err := r.db.GetContext(ctx, &next,
		`INSERT INTO document_sequences (doc_type, year, last_value)
		 VALUES ($1, $2, 1)
		 ON CONFLICT (doc_type, year)
		 DO UPDATE SET last_value = document_sequences.last_value + 1
		 RETURNING last_value`,
		docType, year)
	if err != nil {
		return 0, fmt.Errorf("sequenceRepo.Next: %w", err)
	}
	return next, nil
}
