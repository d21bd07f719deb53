package http

import (
	"context"

	"arbapi/pkg/contracts/domain"
)

// RunServiceInterface defines what the run handler needs from the run
// service. Kept on the consumer side so handlers can be tested against
// fakes.
type RunServiceInterface interface {
	ListRuns(ctx context.Context) ([]domain.RunSummary, error)
	GetRunDetail(ctx context.Context, runID string) (domain.RunDetail, error)
}

// StatusServiceInterface defines what the status handler needs from the
// runtime-status gateway.
type StatusServiceInterface interface {
	Status(ctx context.Context) (domain.RuntimeStatus, error)
	SetBotEnabled(ctx context.Context, enabled bool) (domain.RuntimeStatus, error)
	Ping(ctx context.Context) error
}

// LogsServiceInterface defines what the logs handler needs.
type LogsServiceInterface interface {
	Tail(ctx context.Context) (domain.LogTailResponse, error)
}
