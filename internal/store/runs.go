package store

import (
	"context"
	"database/sql"
	"fmt"

	"arbapi/pkg/contracts/domain"
)

// runSummaryQuery aggregates trades into per-run metrics in one grouped
// left join, so a run with no trades still appears with zeroed counts.
const runSummaryQuery = `
	SELECT r.run_id,
	       r.start_timestamp,
	       r.end_timestamp,
	       r.config_snapshot,
	       r.notes,
	       COUNT(t.id)                                              AS trade_count,
	       COALESCE(SUM(t.realized_pnl), 0)                         AS total_pnl,
	       COALESCE(SUM(CASE WHEN t.realized_pnl > 0 THEN 1 ELSE 0 END), 0) AS win_count
	FROM run_metadata r
	LEFT JOIN paper_trades t ON t.run_id = r.run_id`

// ListRunSummaries returns every run with its aggregated metrics, newest
// start_timestamp first. Aggregation happens against the persisted rows
// at call time; nothing is cached across calls.
func (s *Store) ListRunSummaries(ctx context.Context) ([]domain.RunSummary, error) {
	db, err := s.reader(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, runSummaryQuery+`
	GROUP BY r.id
	ORDER BY r.start_timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	summaries := []domain.RunSummary{}
	for rows.Next() {
		summary, err := scanRunSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return summaries, nil
}

// GetRunSummary returns the aggregated metrics for a single run, or
// ErrRunNotFound when no metadata row exists for runID.
func (s *Store) GetRunSummary(ctx context.Context, runID string) (domain.RunSummary, error) {
	db, err := s.reader(ctx)
	if err != nil {
		return domain.RunSummary{}, err
	}

	row := db.QueryRowContext(ctx, runSummaryQuery+`
	WHERE r.run_id = ?
	GROUP BY r.id`, runID)

	summary, err := scanRunSummary(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.RunSummary{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return domain.RunSummary{}, err
	}
	return summary, nil
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRunSummary(row rowScanner) (domain.RunSummary, error) {
	var (
		summary  domain.RunSummary
		endTS    sql.NullFloat64
		config   sql.NullString
		notes    sql.NullString
		winCount int64
	)

	err := row.Scan(
		&summary.RunID,
		&summary.StartTimestamp,
		&endTS,
		&config,
		&notes,
		&summary.TradeCount,
		&summary.TotalPnl,
		&winCount,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.RunSummary{}, err
		}
		return domain.RunSummary{}, fmt.Errorf("failed to scan run summary: %w", err)
	}

	if endTS.Valid {
		v := endTS.Float64
		summary.EndTimestamp = &v
	}
	summary.ConfigSnapshot = config.String
	if notes.Valid {
		v := notes.String
		summary.Notes = &v
	}

	if summary.TradeCount > 0 {
		summary.AveragePnl = summary.TotalPnl / float64(summary.TradeCount)
		summary.WinRate = float64(winCount) / float64(summary.TradeCount)
	}

	summary.Status = domain.RunStatusActive
	if summary.EndTimestamp != nil {
		summary.Status = domain.RunStatusCompleted
		duration := *summary.EndTimestamp - summary.StartTimestamp
		summary.DurationSeconds = &duration
	}

	return summary, nil
}
