package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLoggerWritesServiceAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, "users", nil)

	log.Info(context.Background(), "listening", "addr", ":9001")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "listening", recs[0]["msg"])
	assert.Equal(t, "users", recs[0]["service"])
	assert.Equal(t, ":9001", recs[0]["addr"])
	assert.Equal(t, "info", recs[0]["level"])
}

func TestLoggerDropsBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn, "orders", nil)

	log.Debug(context.Background(), "debug")
	log.Info(context.Background(), "info")
	log.Warn(context.Background(), "warn")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "warn", recs[0]["msg"])
}

func TestLoggerAddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	traceID := func(ctx context.Context) string {
		if v, ok := ctx.Value(struct{}{}).(string); ok {
			return v
		}
		return ""
	}
	log := New(&buf, LevelDebug, "gateway", traceID)

	log.Error(context.WithValue(context.Background(), struct{}{}, "abc123"), "boom")
	log.Debug(context.Background(), "quiet")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 2)
	assert.Equal(t, "abc123", recs[0]["trace_id"])
	assert.NotContains(t, recs[1], "trace_id")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}
