package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct{ err error }

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (f failingHandler) Handle(context.Context, slog.Record) error {
	return f.err
}
func (f failingHandler) WithAttrs([]slog.Attr) slog.Handler { return f }
func (f failingHandler) WithGroup(string) slog.Handler      { return f }

func TestMultiHandlerFansOutByLevel(t *testing.T) {
	var info, errs bytes.Buffer
	logger := slog.New(NewMultiHandler(
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	)).With("request_id", "abc")

	logger.Debug("dropped")
	logger.Info("listed artworks")
	logger.Error("checkout failed")

	assert.Contains(t, info.String(), "listed artworks")
	assert.Contains(t, info.String(), "checkout failed")
	assert.NotContains(t, info.String(), "dropped")
	assert.NotContains(t, errs.String(), "listed artworks")
	assert.Contains(t, errs.String(), `"request_id":"abc"`)
}

func TestNewJSONHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewJSONHandler(&buf, "production")).Debug("hidden")
	assert.Empty(t, buf.String())

	slog.New(NewJSONHandler(&buf, "development")).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestMultiHandlerKeepsDeliveringAfterFailure(t *testing.T) {
	var out bytes.Buffer
	dbDown := errors.New("system_logs unavailable")
	h := NewMultiHandler(
		failingHandler{err: dbDown},
		slog.NewJSONHandler(&out, nil),
		failingHandler{err: errors.New("second sink")},
	)

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelError, "checkout failed", 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, dbDown)
	assert.Contains(t, err.Error(), "second sink")
	assert.Contains(t, out.String(), "checkout failed")
}
