// Package analytics derives per-run views from the persisted event
// history: the trade-to-opportunity correlation and the equity curve
// with its maximum drawdown. Everything here is a pure function of its
// inputs and is recomputed on every request; nothing is persisted.
package analytics

import (
	"sort"

	"arbapi/pkg/contracts/domain"
)

// AttachOpportunities annotates each trade with the most recent
// opportunity for the same triangle whose timestamp is at or before the
// trade's timestamp. Trades with no eligible opportunity carry nil.
//
// When several opportunities share the maximal eligible timestamp, the
// one with the lowest row id wins, so the join is deterministic across
// requests.
func AttachOpportunities(trades []domain.PaperTrade, opportunities []domain.Opportunity) []domain.CorrelatedTrade {
	byTriangle := make(map[int64][]domain.Opportunity)
	for _, opp := range opportunities {
		byTriangle[opp.TriangleID] = append(byTriangle[opp.TriangleID], opp)
	}
	for _, opps := range byTriangle {
		sort.SliceStable(opps, func(i, j int) bool {
			if opps[i].Timestamp != opps[j].Timestamp {
				return opps[i].Timestamp < opps[j].Timestamp
			}
			return opps[i].ID < opps[j].ID
		})
	}

	correlated := make([]domain.CorrelatedTrade, 0, len(trades))
	for _, trade := range trades {
		correlated = append(correlated, domain.CorrelatedTrade{
			PaperTrade:  trade,
			Opportunity: latestAtOrBefore(byTriangle[trade.TriangleID], trade.Timestamp),
		})
	}
	return correlated
}

// latestAtOrBefore binary-searches the sorted candidates for the last
// opportunity with timestamp <= ts, then walks back to the first entry
// of an equal-timestamp group (lowest id).
func latestAtOrBefore(opps []domain.Opportunity, ts float64) *domain.Opportunity {
	idx := sort.Search(len(opps), func(i int) bool {
		return opps[i].Timestamp > ts
	})
	if idx == 0 {
		return nil
	}

	last := idx - 1
	for last > 0 && opps[last-1].Timestamp == opps[last].Timestamp {
		last--
	}
	opp := opps[last]
	return &opp
}
