package store

import (
	"context"
	"database/sql"
	"fmt"

	"arbapi/pkg/contracts/domain"
)

// ListOpportunitiesByRun returns a run's detected opportunities ascending
// by timestamp then row id. The correlator relies on this ordering.
func (s *Store) ListOpportunitiesByRun(ctx context.Context, runID string) ([]domain.Opportunity, error) {
	db, err := s.reader(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, run_id, timestamp, triangle_id,
		       asset_a, asset_b, asset_c, initial_size,
		       theoretical_final_amount, theoretical_edge,
		       estimated_slippage_leg1, estimated_slippage_leg2, estimated_slippage_leg3,
		       parameters_snapshot
		FROM opportunities
		WHERE run_id = ?
		ORDER BY timestamp ASC, id ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	defer rows.Close()

	opportunities := []domain.Opportunity{}
	for rows.Next() {
		var (
			opp    domain.Opportunity
			params sql.NullString
		)
		if err := rows.Scan(
			&opp.ID,
			&opp.RunID,
			&opp.Timestamp,
			&opp.TriangleID,
			&opp.AssetA,
			&opp.AssetB,
			&opp.AssetC,
			&opp.InitialSize,
			&opp.TheoreticalFinalAmount,
			&opp.TheoreticalEdge,
			&opp.EstimatedSlippageLeg1,
			&opp.EstimatedSlippageLeg2,
			&opp.EstimatedSlippageLeg3,
			&params,
		); err != nil {
			return nil, fmt.Errorf("failed to scan opportunity: %w", err)
		}
		opp.ParametersSnapshot = params.String
		opportunities = append(opportunities, opp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	return opportunities, nil
}
