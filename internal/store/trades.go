package store

import (
	"context"
	"database/sql"
	"fmt"

	"arbapi/pkg/contracts/domain"
)

// ListTradesByRun returns a run's paper trades ascending by timestamp,
// with the row id as the stable tie-break so equal timestamps keep their
// persisted insertion order.
func (s *Store) ListTradesByRun(ctx context.Context, runID string) ([]domain.PaperTrade, error) {
	db, err := s.reader(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, run_id, timestamp, triangle_id, initial_size,
		       realized_final_amount, realized_pnl, realized_edge,
		       realized_slippage_leg1, realized_slippage_leg2, realized_slippage_leg3,
		       fees_paid_leg1, fees_paid_leg2, fees_paid_leg3,
		       was_executed, reason_if_not_executed
		FROM paper_trades
		WHERE run_id = ?
		ORDER BY timestamp ASC, id ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	defer rows.Close()

	trades := []domain.PaperTrade{}
	for rows.Next() {
		var (
			trade  domain.PaperTrade
			reason sql.NullString
		)
		if err := rows.Scan(
			&trade.ID,
			&trade.RunID,
			&trade.Timestamp,
			&trade.TriangleID,
			&trade.InitialSize,
			&trade.RealizedFinalAmount,
			&trade.RealizedPnl,
			&trade.RealizedEdge,
			&trade.RealizedSlippageLeg1,
			&trade.RealizedSlippageLeg2,
			&trade.RealizedSlippageLeg3,
			&trade.FeesPaidLeg1,
			&trade.FeesPaidLeg2,
			&trade.FeesPaidLeg3,
			&trade.WasExecuted,
			&reason,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		if reason.Valid {
			v := reason.String
			trade.ReasonIfNotExecuted = &v
		}
		trades = append(trades, trade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return trades, nil
}
