package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextHandlerInDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, gin.DebugMode)

	log.Info(context.Background(), "inf", "b", 2)
	log.Warn(context.Background(), "wrn", "c", 3)
	log.Error(context.Background(), "err", "d", 4)

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=inf b=2")
	assert.Contains(t, out, "level=WARN msg=wrn c=3")
	assert.Contains(t, out, "level=ERROR msg=err d=4")
}

func TestNew_JSONHandlerInRelease(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, gin.ReleaseMode)

	log.Info(context.Background(), "hello", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "v", line["k"])
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, gin.DebugMode).With("component", "auth")

	log.Info(context.Background(), "hello")

	assert.Contains(t, buf.String(), "component=auth")
}

func TestNop(t *testing.T) {
	var l Logger = Nop{}
	l.With("a", 1).Info(context.Background(), "ignored")
}
