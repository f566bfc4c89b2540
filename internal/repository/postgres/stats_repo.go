package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"utsav/internal/domain"
	"utsav/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

// Dashboard aggregates business-wide figures: revenue is the sum of all
// recorded payments; pending is the outstanding amount across invoices that
// are neither paid nor cancelled.
func (r *statsRepo) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	query := `SELECT
		COALESCE((SELECT SUM(amount) FROM payments), 0)              AS total_revenue,
		COALESCE((SELECT SUM(total - amount_paid) FROM invoices
			WHERE status NOT IN ('paid', 'cancelled')), 0)           AS pending_payments,
		(SELECT COUNT(*) FROM clients)                               AS total_clients,
		(SELECT COUNT(*) FROM events)                                AS total_events,
		(SELECT COUNT(*) FROM quotations)                            AS total_quotations,
		(SELECT COUNT(*) FROM invoices)                              AS total_invoices`
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("statsRepo.Dashboard: %w", err)
	}
	return &stats, nil
}
