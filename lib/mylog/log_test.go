package mylog

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/wfpwidget/lib/mycontext"
)

func TestStandardLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newStandardLoggerTo("widget", buf)

	logger.Log(mycontext.WithTrace(context.Background(), "gen-1"), "cart-1", SeverityWarn, "quote failed: %s", "timeout")

	got := buf.String()
	assert.Contains(t, got, "level=warning")
	assert.Contains(t, got, "component=widget")
	assert.Contains(t, got, "label=cart-1")
	assert.Contains(t, got, "trace=gen-1")
	assert.Contains(t, got, "quote failed: timeout")
}

func TestStructuredLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newGcloudLoggerTo("prefstore", buf)

	logger.Log(mycontext.WithTrace(context.Background(), "projects/p/traces/t"), "opted-in", SeverityError, "write failed")

	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["severity"])
	assert.Equal(t, "prefstore:write failed", entry["message"])
	assert.Equal(t, "prefstore", entry["component"])
	assert.Equal(t, "projects/p/traces/t", entry["logging.googleapis.com/trace"])
	assert.Equal(t, map[string]any{"aggregate": "opted-in"}, entry["labels"])
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	SetLevel("info")
	buf := &bytes.Buffer{}
	logger := newStandardLoggerTo("widget", buf)

	logger.Log(context.Background(), "", SeverityDebug, "stale response ignored")

	assert.Empty(t, buf.String())
}
