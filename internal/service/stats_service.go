package service

import (
	"context"

	"github.com/davimarquesgiareta/casa-nova/internal/domain"
	"github.com/davimarquesgiareta/casa-nova/internal/repository"
)

// StatsService serves the dashboard aggregations.
type StatsService interface {
	LibraryStats(ctx context.Context) (*domain.LibraryStats, error)
	ShowStats(ctx context.Context) (*domain.ShowStats, error)
}

type statsService struct {
	stats repository.StatsRepository
}

// NewStatsService creates a stats service.
func NewStatsService(stats repository.StatsRepository) StatsService {
	return &statsService{stats: stats}
}

func (s *statsService) LibraryStats(ctx context.Context) (*domain.LibraryStats, error) {
	return s.stats.LibraryStats(ctx)
}

func (s *statsService) ShowStats(ctx context.Context) (*domain.ShowStats, error) {
	return s.stats.ShowStats(ctx)
}
