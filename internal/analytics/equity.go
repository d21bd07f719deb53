package analytics

import (
	"arbapi/pkg/contracts/domain"
)

// BuildEquityCurve folds trades, already sorted ascending by timestamp
// with persisted insertion order breaking ties, into the cumulative
// realized-PnL series. An empty trade list yields an empty curve.
func BuildEquityCurve(trades []domain.PaperTrade) []domain.EquityPoint {
	curve := make([]domain.EquityPoint, 0, len(trades))
	equity := 0.0
	for _, trade := range trades {
		equity += trade.RealizedPnl
		curve = append(curve, domain.EquityPoint{
			Timestamp: trade.Timestamp,
			Equity:    equity,
		})
	}
	return curve
}

// MaxDrawdown returns the largest peak-to-trough decline of the curve.
// The running peak starts at 0, so an all-negative run's drawdown equals
// the magnitude of its lowest cumulative point, and a run whose equity
// never falls below a previous peak has drawdown 0.
func MaxDrawdown(curve []domain.EquityPoint) float64 {
	peak := 0.0
	maxDrawdown := 0.0
	for _, point := range curve {
		if point.Equity > peak {
			peak = point.Equity
		}
		if dd := peak - point.Equity; dd > maxDrawdown {
			maxDrawdown = dd
		}
	}
	return maxDrawdown
}
