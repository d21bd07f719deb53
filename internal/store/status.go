package store

import (
	"context"
	"database/sql"
	"fmt"

	"arbapi/pkg/contracts/domain"
)

const statusSelect = `
	SELECT id, bot_enabled, bot_running, ws_connected, last_heartbeat
	FROM runtime_status
	WHERE id = ?`

// Status reads the runtime-status singleton over the read handle. It
// fails with ErrStatusMissing when the row has never been written; reads
// never create it.
func (s *Store) Status(ctx context.Context) (domain.RuntimeStatus, error) {
	db, err := s.reader(ctx)
	if err != nil {
		return domain.RuntimeStatus{}, err
	}
	return scanStatus(db.QueryRowContext(ctx, statusSelect, domain.RuntimeStatusID))
}

// SetBotEnabled flips the one mutable field in the store. The singleton
// is created with defaults only if absent, then bot_enabled is updated
// unconditionally and the fresh row returned. Calling it twice with the
// same value is observably identical to calling it once. Concurrent
// callers serialize on SQLite's own write locking.
func (s *Store) SetBotEnabled(ctx context.Context, enabled bool) (domain.RuntimeStatus, error) {
	db, err := s.writer(ctx)
	if err != nil {
		return domain.RuntimeStatus{}, err
	}

	def := domain.DefaultRuntimeStatus()
	_, err = db.ExecContext(ctx, `
		INSERT OR IGNORE INTO runtime_status (id, bot_enabled, bot_running, ws_connected, last_heartbeat)
		VALUES (?, ?, ?, ?, NULL)`,
		def.ID, def.BotEnabled, def.BotRunning, def.WsConnected)
	if err != nil {
		return domain.RuntimeStatus{}, fmt.Errorf("failed to initialize runtime status: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		UPDATE runtime_status SET bot_enabled = ? WHERE id = ?`,
		enabled, domain.RuntimeStatusID)
	if err != nil {
		return domain.RuntimeStatus{}, fmt.Errorf("failed to update bot_enabled: %w", err)
	}

	return scanStatus(db.QueryRowContext(ctx, statusSelect, domain.RuntimeStatusID))
}

func scanStatus(row *sql.Row) (domain.RuntimeStatus, error) {
	var (
		status    domain.RuntimeStatus
		heartbeat sql.NullFloat64
	)
	err := row.Scan(
		&status.ID,
		&status.BotEnabled,
		&status.BotRunning,
		&status.WsConnected,
		&heartbeat,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.RuntimeStatus{}, ErrStatusMissing
		}
		return domain.RuntimeStatus{}, fmt.Errorf("failed to read runtime status: %w", err)
	}
	if heartbeat.Valid {
		v := heartbeat.Float64
		status.LastHeartbeat = &v
	}
	return status, nil
}
