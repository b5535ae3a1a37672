package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/beauxarts/marketplace-api/internal/database/dbtest"
	"github.com/beauxarts/marketplace-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGHandlerPersistsErrorsOnStop(t *testing.T) {
	db := dbtest.New(t)
	h := NewPGHandler(db)
	logger := slog.New(h).With("request_id", "req-1")

	logger.Info("ignored")
	logger.Error("checkout failed",
		"user_id", "u-42",
		"action", "checkout",
		"error", "boom",
		"latency_ms", 12.6,
		"items", 3,
	)
	h.Stop()
	h.Stop()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "checkout failed", entry.Message)
	assert.Equal(t, "req-1", entry.RequestID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "u-42", *entry.UserID)
	assert.Equal(t, "checkout", entry.Action)
	assert.Equal(t, "boom", entry.Error)
	assert.Equal(t, 13, entry.LatencyMs)

	var extra map[string]any
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.EqualValues(t, 3, extra["items"])
}

func TestPGHandlerGroupsExtraKeys(t *testing.T) {
	db := dbtest.New(t)
	h := NewPGHandler(db)

	slog.New(h).WithGroup("cart").Error("rejected", "size", 101)
	h.Stop()

	var entry models.SystemLog
	require.NoError(t, db.First(&entry).Error)
	var extra map[string]any
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.Contains(t, extra, "cart.size")
}

func TestPGHandlerEnabled(t *testing.T) {
	h := &PGHandler{}
	ctx := context.Background()
	assert.False(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestLatencyMillis(t *testing.T) {
	assert.Equal(t, 7, latencyMillis(slog.Int64Value(7)))
	assert.Equal(t, 250, latencyMillis(slog.DurationValue(250*time.Millisecond)))
	assert.Equal(t, 0, latencyMillis(slog.StringValue("fast")))
}
