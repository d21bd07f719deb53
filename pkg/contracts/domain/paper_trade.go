package domain

// PaperTrade is a simulated execution for a triangle within a run:
// realized amounts, PnL, per-leg slippage and fees. Rows are immutable
// once written; the realized_pnl sequence is the sole input to equity
// and drawdown computation.
type PaperTrade struct {
	ID                   int64   `json:"id" db:"id"`
	RunID                string  `json:"runId" db:"run_id"`
	Timestamp            float64 `json:"timestamp" db:"timestamp"`
	TriangleID           int64   `json:"triangleId" db:"triangle_id"`
	InitialSize          float64 `json:"initialSize" db:"initial_size"`
	RealizedFinalAmount  float64 `json:"realizedFinalAmount" db:"realized_final_amount"`
	RealizedPnl          float64 `json:"realizedPnl" db:"realized_pnl"`
	RealizedEdge         float64 `json:"realizedEdge" db:"realized_edge"`
	RealizedSlippageLeg1 float64 `json:"realizedSlippageLeg1" db:"realized_slippage_leg1"`
	RealizedSlippageLeg2 float64 `json:"realizedSlippageLeg2" db:"realized_slippage_leg2"`
	RealizedSlippageLeg3 float64 `json:"realizedSlippageLeg3" db:"realized_slippage_leg3"`
	FeesPaidLeg1         float64 `json:"feesPaidLeg1" db:"fees_paid_leg1"`
	FeesPaidLeg2         float64 `json:"feesPaidLeg2" db:"fees_paid_leg2"`
	FeesPaidLeg3         float64 `json:"feesPaidLeg3" db:"fees_paid_leg3"`
	WasExecuted          bool    `json:"wasExecuted" db:"was_executed"`
	ReasonIfNotExecuted  *string `json:"reasonIfNotExecuted,omitempty" db:"reason_if_not_executed"`
}

// CorrelatedTrade is a paper trade annotated with the most recent
// opportunity for the same triangle at or before the trade's timestamp.
// Opportunity is nil when no such opportunity exists.
type CorrelatedTrade struct {
	PaperTrade
	Opportunity *Opportunity `json:"opportunity"`
}
