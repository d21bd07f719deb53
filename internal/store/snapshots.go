package store

import (
	"context"
	"database/sql"
	"fmt"

	"arbapi/pkg/contracts/domain"
)

// ListSnapshotsByRun returns a run's portfolio snapshots ascending by
// timestamp.
func (s *Store) ListSnapshotsByRun(ctx context.Context, runID string) ([]domain.PortfolioSnapshot, error) {
	db, err := s.reader(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, run_id, timestamp, balances, total_value_in_quote
		FROM portfolio_snapshots
		WHERE run_id = ?
		ORDER BY timestamp ASC, id ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []domain.PortfolioSnapshot{}
	for rows.Next() {
		var (
			snap     domain.PortfolioSnapshot
			balances sql.NullString
		)
		if err := rows.Scan(
			&snap.ID,
			&snap.RunID,
			&snap.Timestamp,
			&balances,
			&snap.TotalValueInQuote,
		); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snap.Balances = balances.String
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}
