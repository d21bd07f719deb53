package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arbapi/pkg/contracts/domain"
)

func TestListRunSummaries_OrderingAndMetrics(t *testing.T) {
	st, engine := newTestStore(t)
	ctx := context.Background()

	end := 2000.0
	seedRun(t, engine, "run-old", 1000, &end)
	seedRun(t, engine, "run-new", 1500, nil)

	seedTrade(t, engine, "run-old", 1, 1100, 2)
	seedTrade(t, engine, "run-old", 1, 1200, -5)
	seedTrade(t, engine, "run-old", 2, 1300, 1)
	seedTrade(t, engine, "run-old", 2, 1400, 4)

	summaries, err := st.ListRunSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "run-new", summaries[0].RunID, "newest start_timestamp first")
	assert.Equal(t, "run-old", summaries[1].RunID)

	old := summaries[1]
	assert.Equal(t, int64(4), old.TradeCount)
	assert.InDelta(t, 2.0, old.TotalPnl, 1e-9)
	assert.InDelta(t, 0.5, old.AveragePnl, 1e-9)
	assert.InDelta(t, 0.75, old.WinRate, 1e-9)
	assert.Equal(t, domain.RunStatusCompleted, old.Status)
	require.NotNil(t, old.DurationSeconds)
	assert.InDelta(t, 1000.0, *old.DurationSeconds, 1e-9)

	active := summaries[0]
	assert.Equal(t, domain.RunStatusActive, active.Status)
	assert.Nil(t, active.EndTimestamp)
	assert.Nil(t, active.DurationSeconds)
}

func TestListRunSummaries_ZeroTradeRun(t *testing.T) {
	st, engine := newTestStore(t)
	seedRun(t, engine, "empty-run", 1000, nil)

	summaries, err := st.ListRunSummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, int64(0), s.TradeCount)
	assert.Equal(t, 0.0, s.TotalPnl)
	assert.Equal(t, 0.0, s.AveragePnl)
	assert.Equal(t, 0.0, s.WinRate)
	assert.Equal(t, domain.RunStatusActive, s.Status)
}

func TestListRunSummaries_EmptyStore(t *testing.T) {
	st, _ := newTestStore(t)

	summaries, err := st.ListRunSummaries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestListRunSummaries_SeesFreshAppends(t *testing.T) {
	st, engine := newTestStore(t)
	ctx := context.Background()
	seedRun(t, engine, "run-a", 1000, nil)

	summaries, err := st.ListRunSummaries(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), summaries[0].TradeCount)

	// The engine appends concurrently; the next read must see it.
	seedTrade(t, engine, "run-a", 1, 1100, 3)

	summaries, err = st.ListRunSummaries(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summaries[0].TradeCount)
	assert.InDelta(t, 3.0, summaries[0].TotalPnl, 1e-9)
}

func TestGetRunSummary(t *testing.T) {
	st, engine := newTestStore(t)
	seedRun(t, engine, "run-a", 1000, nil)
	seedTrade(t, engine, "run-a", 1, 1100, -2)

	summary, err := st.GetRunSummary(context.Background(), "run-a")
	require.NoError(t, err)
	assert.Equal(t, "run-a", summary.RunID)
	assert.Equal(t, int64(1), summary.TradeCount)
	assert.InDelta(t, -2.0, summary.TotalPnl, 1e-9)
	assert.Equal(t, 0.0, summary.WinRate)
}

func TestGetRunSummary_ConfigSnapshot(t *testing.T) {
	st, engine := newTestStore(t)
	ctx := context.Background()

	_, err := engine.Exec(`
		INSERT INTO run_metadata (run_id, start_timestamp, config_snapshot)
		VALUES ('run-cfg', 1000, '{"min_edge": 0.001}')`)
	require.NoError(t, err)
	_, err = engine.Exec(`
		INSERT INTO run_metadata (run_id, start_timestamp, config_snapshot)
		VALUES ('run-nocfg', 1100, NULL)`)
	require.NoError(t, err)

	summary, err := st.GetRunSummary(ctx, "run-cfg")
	require.NoError(t, err)
	assert.Equal(t, `{"min_edge": 0.001}`, summary.ConfigSnapshot,
		"snapshot passes through as the raw persisted JSON")

	summary, err = st.GetRunSummary(ctx, "run-nocfg")
	require.NoError(t, err)
	assert.Empty(t, summary.ConfigSnapshot)
}

func TestGetRunSummary_NotFound(t *testing.T) {
	st, engine := newTestStore(t)
	seedRun(t, engine, "run-a", 1000, nil)

	_, err := st.GetRunSummary(context.Background(), "missing")
	require.ErrorIs(t, err, ErrRunNotFound)
}

func TestListTradesByRun_OrderingAndNullReason(t *testing.T) {
	st, engine := newTestStore(t)
	ctx := context.Background()
	seedRun(t, engine, "run-a", 1000, nil)

	// Same timestamp twice; insertion order must be preserved.
	seedTrade(t, engine, "run-a", 1, 1200, 1)
	seedTrade(t, engine, "run-a", 1, 1100, 2)
	seedTrade(t, engine, "run-a", 2, 1200, 3)

	trades, err := st.ListTradesByRun(ctx, "run-a")
	require.NoError(t, err)
	require.Len(t, trades, 3)

	assert.Equal(t, 1100.0, trades[0].Timestamp)
	assert.Equal(t, 1200.0, trades[1].Timestamp)
	assert.Equal(t, 1200.0, trades[2].Timestamp)
	assert.Less(t, trades[1].ID, trades[2].ID, "equal timestamps keep insertion order")
	assert.Nil(t, trades[0].ReasonIfNotExecuted)
	assert.True(t, trades[0].WasExecuted)
}

func TestListOpportunitiesAndSnapshots(t *testing.T) {
	st, engine := newTestStore(t)
	ctx := context.Background()
	seedRun(t, engine, "run-a", 1000, nil)

	seedOpportunity(t, engine, "run-a", 7, 1150)
	seedOpportunity(t, engine, "run-a", 7, 1050)
	seedSnapshot(t, engine, "run-a", 1100, 1000)
	seedSnapshot(t, engine, "run-a", 1300, 1003)

	opps, err := st.ListOpportunitiesByRun(ctx, "run-a")
	require.NoError(t, err)
	require.Len(t, opps, 2)
	assert.Equal(t, 1050.0, opps[0].Timestamp)
	assert.Equal(t, "USDC", opps[0].AssetA)

	snaps, err := st.ListSnapshotsByRun(ctx, "run-a")
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, 1100.0, snaps[0].Timestamp)
	assert.InDelta(t, 1003.0, snaps[1].TotalValueInQuote, 1e-9)

	// Scoped to the requested run only.
	seedRun(t, engine, "run-b", 2000, nil)
	seedOpportunity(t, engine, "run-b", 9, 2100)

	opps, err = st.ListOpportunitiesByRun(ctx, "run-a")
	require.NoError(t, err)
	assert.Len(t, opps, 2)
}
