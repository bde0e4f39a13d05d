package logsink

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CherkashinEvgeny/gintonic/aspect"
)

func TestZerolog_JSON(t *testing.T) {
	var buf bytes.Buffer
	sink, err := New(&buf, "debug", "json")
	require.NoError(t, err)

	_, err = aspect.WrapAround("MainActivity.testAround",
		aspect.Void(func() error { return nil }),
		aspect.LogAround(sink, aspect.DefaultTag))
	require.NoError(t, err)

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "debug", event["level"])
	assert.Equal(t, aspect.DefaultTag, event["tag"])
	assert.Regexp(t, `^MainActivity\.testAround --> \[\d+ms\]$`, event["message"])
	assert.Contains(t, event, "time")
}

func TestZerolog_Console(t *testing.T) {
	var buf bytes.Buffer
	sink, err := New(&buf, "debug", "console")
	require.NoError(t, err)

	sink.Log("TraceAspect", aspect.BeforeMessage("MainActivity.testBefore"))

	out := buf.String()
	assert.Contains(t, out, "MainActivity.testBefore: before")
	assert.Contains(t, out, "tag=TraceAspect")
}

func TestZerolog_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	sink, err := New(&buf, "info", "json")
	require.NoError(t, err)

	sink.Log("TraceAspect", aspect.AfterMessage("x"))
	assert.Zero(t, buf.Len())
}

func TestZerolog_CustomLevel(t *testing.T) {
	var buf bytes.Buffer
	sink := NewZerolog(zerolog.New(&buf), zerolog.WarnLevel)

	sink.Log("TraceAspect", aspect.AroundMessage("x", 3*time.Millisecond))

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "warn", event["level"])
	assert.Equal(t, "x --> [3ms]", event["message"])
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "json")
	assert.Error(t, err)
}
