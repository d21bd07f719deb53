package domain

// PortfolioSnapshot is a point-in-time valuation of the paper portfolio
// for a run. Balances is the raw JSON asset-balance map as persisted by
// the trading engine. Immutable, ordered by timestamp.
type PortfolioSnapshot struct {
	ID                int64   `json:"id" db:"id"`
	RunID             string  `json:"runId" db:"run_id"`
	Timestamp         float64 `json:"timestamp" db:"timestamp"`
	Balances          string  `json:"balances" db:"balances"`
	TotalValueInQuote float64 `json:"totalValueInQuote" db:"total_value_in_quote"`
}
