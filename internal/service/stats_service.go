package service

import (
	"context"

	"utsav/internal/domain"
	"utsav/internal/port"
)

// StatsService provides business-wide dashboard figures.
type StatsService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}

type statsService struct {
	repo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(repo port.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return s.repo.Dashboard(ctx)
}
