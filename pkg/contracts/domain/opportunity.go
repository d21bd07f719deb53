package domain

// Opportunity is a detected, unexecuted candidate triangular trade with
// theoretical economics. Rows are immutable once written and ordered by
// timestamp within a run.
type Opportunity struct {
	ID                      int64   `json:"id" db:"id"`
	RunID                   string  `json:"runId" db:"run_id"`
	Timestamp               float64 `json:"timestamp" db:"timestamp"`
	TriangleID              int64   `json:"triangleId" db:"triangle_id"`
	AssetA                  string  `json:"assetA" db:"asset_a"`
	AssetB                  string  `json:"assetB" db:"asset_b"`
	AssetC                  string  `json:"assetC" db:"asset_c"`
	InitialSize             float64 `json:"initialSize" db:"initial_size"`
	TheoreticalFinalAmount  float64 `json:"theoreticalFinalAmount" db:"theoretical_final_amount"`
	TheoreticalEdge         float64 `json:"theoreticalEdge" db:"theoretical_edge"`
	EstimatedSlippageLeg1   float64 `json:"estimatedSlippageLeg1" db:"estimated_slippage_leg1"`
	EstimatedSlippageLeg2   float64 `json:"estimatedSlippageLeg2" db:"estimated_slippage_leg2"`
	EstimatedSlippageLeg3   float64 `json:"estimatedSlippageLeg3" db:"estimated_slippage_leg3"`
	ParametersSnapshot      string  `json:"parametersSnapshot,omitempty" db:"parameters_snapshot"`
}
