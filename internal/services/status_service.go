package services

import (
	"context"
	"log/slog"

	"arbapi/internal/store"
	"arbapi/pkg/contracts/domain"
)

// StatusService is the gateway to the runtime-status singleton: reads
// over the read handle, the single-field bot_enabled write over the
// dedicated write handle.
type StatusService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewStatusService creates a status service backed by the given store
func NewStatusService(st *store.Store, logger *slog.Logger) *StatusService {
	return &StatusService{
		store:  st,
		logger: logger.With(slog.String("component", "status_service")),
	}
}

// Status returns the current runtime status row.
func (s *StatusService) Status(ctx context.Context) (domain.RuntimeStatus, error) {
	return s.store.Status(ctx)
}

// SetBotEnabled flips the enable flag, creating the default singleton
// first if it has never been written, and returns the fresh row.
func (s *StatusService) SetBotEnabled(ctx context.Context, enabled bool) (domain.RuntimeStatus, error) {
	status, err := s.store.SetBotEnabled(ctx, enabled)
	if err != nil {
		return domain.RuntimeStatus{}, err
	}
	s.logger.InfoContext(ctx, "bot_enabled updated", slog.Bool("enabled", enabled))
	return status, nil
}

// Ping reports store reachability for the dbConnected response field.
func (s *StatusService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
