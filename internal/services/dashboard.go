package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pinkswindowcleaning/pulse-backend/internal/dto"
	"github.com/pinkswindowcleaning/pulse-backend/internal/kpi"
	"github.com/pinkswindowcleaning/pulse-backend/internal/models"
)

// warehouseStore is the BigQuery-backed read interface for raw records.
type warehouseStore interface {
	Quotes(ctx context.Context) ([]models.Quote, error)
	Jobs(ctx context.Context) ([]models.Job, error)
}

type dashboardService struct {
	store warehouseStore
	cache *reportCache
	opts  kpi.Options
	clock func() time.Time
}

func NewDashboardService(store warehouseStore, cacheTTL time.Duration, opts kpi.Options) *dashboardService {
	return &dashboardService{
		store: store,
		cache: newReportCache(cacheTTL),
		opts:  opts,
		clock: time.Now,
	}
}

// GetDashboard returns the full KPI report. The clock is sampled exactly
// once and threaded through the aggregation, so a request that straddles
// midnight still reports one consistent "today". A fresh snapshot is cached
// for the configured TTL; refresh bypasses the cache.
func (s *dashboardService) GetDashboard(ctx context.Context, refresh bool) (dto.DashboardResponse, error) {
	if !refresh {
		if snap, ok := s.cache.get(s.clock()); ok {
			snap.Cached = true
			return snap, nil
		}
	}

	quotes, jobs, err := s.fetch(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	now := s.clock()
	report, err := kpi.Compute(quotes, jobs, now, s.opts)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	resp := dto.DashboardResponse{
		ReportID:    uuid.New().String(),
		GeneratedAt: now,
		QuoteCount:  len(quotes),
		JobCount:    len(jobs),
		KPIs:        report,
	}
	s.cache.put(resp, now)
	return resp, nil
}

// GetLeaderboard returns trailing-30-day per-salesperson stats.
func (s *dashboardService) GetLeaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error) {
	quotes, err := s.store.Quotes(ctx)
	if err != nil {
		return nil, err
	}
	return kpi.Leaderboard(quotes, s.clock())
}

// fetch reads both record sets in parallel; the first store error cancels
// the sibling query.
func (s *dashboardService) fetch(ctx context.Context) ([]models.Quote, []models.Job, error) {
	var quotes []models.Quote
	var jobs []models.Job

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quotes, err = s.store.Quotes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = s.store.Jobs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return quotes, jobs, nil
}
