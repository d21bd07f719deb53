package domain

// EquityPoint is one step of a run's cumulative-PnL curve.
type EquityPoint struct {
	Timestamp float64 `json:"timestamp"`
	Equity    float64 `json:"equity"`
}

// StatusResponse is the boundary shape for the runtime status endpoints.
// DbConnected reflects whether the backing store was reachable while
// serving the request, independent of the engine's own ws_connected flag.
type StatusResponse struct {
	Ok            bool     `json:"ok"`
	BotEnabled    bool     `json:"botEnabled"`
	BotRunning    bool     `json:"botRunning"`
	WsConnected   bool     `json:"wsConnected"`
	DbConnected   bool     `json:"dbConnected"`
	LastHeartbeat *float64 `json:"lastHeartbeat"`
	Error         string   `json:"error,omitempty"`
}

// LogTailResponse is the boundary shape for the log tail endpoint.
// Message is set when the log file does not exist yet.
type LogTailResponse struct {
	Lines   []string `json:"lines"`
	Count   int      `json:"count"`
	Message string   `json:"message,omitempty"`
}
