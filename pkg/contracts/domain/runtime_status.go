package domain

// RuntimeStatusID is the fixed primary key of the singleton status row.
const RuntimeStatusID = 1

// RuntimeStatus is the control-and-heartbeat singleton shared with the
// trading engine. BotEnabled is the only field this service mutates;
// the engine owns bot_running, ws_connected and last_heartbeat.
type RuntimeStatus struct {
	ID            int64    `json:"id" db:"id"`
	BotEnabled    bool     `json:"botEnabled" db:"bot_enabled"`
	BotRunning    bool     `json:"botRunning" db:"bot_running"`
	WsConnected   bool     `json:"wsConnected" db:"ws_connected"`
	LastHeartbeat *float64 `json:"lastHeartbeat,omitempty" db:"last_heartbeat"`
}

// DefaultRuntimeStatus is the row inserted on the first write when the
// singleton has never been initialized.
func DefaultRuntimeStatus() RuntimeStatus {
	return RuntimeStatus{
		ID:          RuntimeStatusID,
		BotEnabled:  true,
		BotRunning:  false,
		WsConnected: false,
	}
}
