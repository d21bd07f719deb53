package services

import (
	"context"
	"log/slog"

	"arbapi/internal/analytics"
	"arbapi/internal/store"
	"arbapi/pkg/contracts/domain"
)

// RunService reconciles the raw event tables into queryable run views.
// Every call recomputes from the persisted rows; appended data shows up
// on the next request without any cache invalidation.
type RunService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewRunService creates a run service backed by the given store
func NewRunService(st *store.Store, logger *slog.Logger) *RunService {
	return &RunService{
		store:  st,
		logger: logger.With(slog.String("component", "run_service")),
	}
}

// ListRuns returns all run summaries, newest first.
func (s *RunService) ListRuns(ctx context.Context) ([]domain.RunSummary, error) {
	return s.store.ListRunSummaries(ctx)
}

// GetRunDetail assembles the full reconciled view of one run: summary
// metrics, trades joined to their nearest preceding opportunities, the
// raw opportunity and snapshot sequences, and the derived equity curve
// and maximum drawdown.
func (s *RunService) GetRunDetail(ctx context.Context, runID string) (domain.RunDetail, error) {
	summary, err := s.store.GetRunSummary(ctx, runID)
	if err != nil {
		return domain.RunDetail{}, err
	}

	trades, err := s.store.ListTradesByRun(ctx, runID)
	if err != nil {
		return domain.RunDetail{}, err
	}

	opportunities, err := s.store.ListOpportunitiesByRun(ctx, runID)
	if err != nil {
		return domain.RunDetail{}, err
	}

	snapshots, err := s.store.ListSnapshotsByRun(ctx, runID)
	if err != nil {
		return domain.RunDetail{}, err
	}

	curve := analytics.BuildEquityCurve(trades)

	s.logger.DebugContext(ctx, "run detail assembled",
		slog.String("run_id", runID),
		slog.Int("trades", len(trades)),
		slog.Int("opportunities", len(opportunities)))

	return domain.RunDetail{
		Metadata:      summary,
		Trades:        analytics.AttachOpportunities(trades, opportunities),
		Opportunities: opportunities,
		Snapshots:     snapshots,
		EquityCurve:   curve,
		MaxDrawdown:   analytics.MaxDrawdown(curve),
	}, nil
}
