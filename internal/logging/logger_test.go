package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("unknown"))
}

func TestSetup_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := setup(&buf, "info", "json")

	logger.Info("feed assembled", "viewer_id", "u-1", "items", 3)
	logger.Debug("dropped")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "feed assembled", line["msg"])
	assert.Equal(t, "u-1", line["viewer_id"])
	assert.NotContains(t, buf.String(), "dropped")
}

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(h).With("component", "test")

	logger.Info("only a")
	logger.Error("both")

	assert.Contains(t, a.String(), "only a")
	assert.Contains(t, a.String(), "both")
	assert.NotContains(t, b.String(), "only a")
	assert.Contains(t, b.String(), "component=test")
}

func TestSentryHandler_ErrorOnlyAndNoClient(t *testing.T) {
	h := NewSentryHandler(sentry.NewHub(nil, sentry.NewScope()))

	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))

	logger := slog.New(h).WithGroup("req").With("path", "/flux/")
	assert.NotPanics(t, func() { logger.Error("boom", "status", 500) })
}
