package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_MissingBeforeFirstWrite(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.Status(context.Background())
	require.ErrorIs(t, err, ErrStatusMissing)
}

func TestSetBotEnabled_CreatesDefaultThenApplies(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	status, err := st.SetBotEnabled(ctx, false)
	require.NoError(t, err)

	assert.False(t, status.BotEnabled, "requested value applies even on first write")
	assert.False(t, status.BotRunning)
	assert.False(t, status.WsConnected)
	assert.Nil(t, status.LastHeartbeat)

	// Reads over the read handle now succeed.
	read, err := st.Status(ctx)
	require.NoError(t, err)
	assert.False(t, read.BotEnabled)
}

func TestSetBotEnabled_Idempotent(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	first, err := st.SetBotEnabled(ctx, true)
	require.NoError(t, err)
	second, err := st.SetBotEnabled(ctx, true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, second.BotEnabled)
}

func TestSetBotEnabled_PreservesEngineFields(t *testing.T) {
	st, engine := newTestStore(t)
	ctx := context.Background()

	// The engine owns these fields; a toggle must not clobber them.
	_, err := engine.Exec(`
		INSERT INTO runtime_status (id, bot_enabled, bot_running, ws_connected, last_heartbeat)
		VALUES (1, 1, 1, 1, 1700000000.0)`)
	require.NoError(t, err)

	status, err := st.SetBotEnabled(ctx, false)
	require.NoError(t, err)

	assert.False(t, status.BotEnabled)
	assert.True(t, status.BotRunning)
	assert.True(t, status.WsConnected)
	require.NotNil(t, status.LastHeartbeat)
	assert.InDelta(t, 1700000000.0, *status.LastHeartbeat, 1e-6)
}

func TestSetBotEnabled_Toggle(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	status, err := st.SetBotEnabled(ctx, true)
	require.NoError(t, err)
	assert.True(t, status.BotEnabled)

	status, err = st.SetBotEnabled(ctx, false)
	require.NoError(t, err)
	assert.False(t, status.BotEnabled)
}
