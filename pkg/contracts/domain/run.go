package domain

// RunStatus describes the lifecycle state of a trading run.
type RunStatus string

const (
	RunStatusActive    RunStatus = "active"
	RunStatusCompleted RunStatus = "completed"
)

// RunSummary is the aggregated view of a run computed from its trades
// and metadata. Timestamps are seconds since epoch; EndTimestamp is nil
// while the run is active. ConfigSnapshot is the raw JSON configuration
// the engine persisted at run start. Metrics default to zero for a run
// with no trades; DurationSeconds is nil while the run has no end
// timestamp.
type RunSummary struct {
	RunID           string    `json:"runId"`
	StartTimestamp  float64   `json:"startTimestamp"`
	EndTimestamp    *float64  `json:"endTimestamp,omitempty"`
	ConfigSnapshot  string    `json:"configSnapshot,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	TradeCount      int64     `json:"tradeCount"`
	TotalPnl        float64   `json:"totalPnl"`
	AveragePnl      float64   `json:"averagePnl"`
	WinRate         float64   `json:"winRate"`
	DurationSeconds *float64  `json:"durationSeconds,omitempty"`
	Status          RunStatus `json:"status"`
}

// RunDetail is the full reconciled view of a single run: its metadata,
// trades with their correlated opportunities, raw opportunities and
// portfolio snapshots, plus the derived equity curve and drawdown.
type RunDetail struct {
	Metadata      RunSummary          `json:"metadata"`
	Trades        []CorrelatedTrade   `json:"trades"`
	Opportunities []Opportunity       `json:"opportunities"`
	Snapshots     []PortfolioSnapshot `json:"snapshots"`
	EquityCurve   []EquityPoint       `json:"equityCurve"`
	MaxDrawdown   float64             `json:"maxDrawdown"`
}
