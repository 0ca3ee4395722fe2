package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lrucache/internal/logger"
)

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(&buf, "info", "json")
	require.NoError(t, err)

	log.Info("set", logger.Key("a"), logger.Size(1), logger.Capacity(2))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "set", rec["msg"])
	assert.Equal(t, "a", rec["key"])
	assert.EqualValues(t, 1, rec["size"])
	assert.EqualValues(t, 2, rec["capacity"])

	buf.Reset()
	log, err = logger.New(&buf, "", "text")
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("shown", logger.Op("get"))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "op=get")

	_, err = logger.New(&buf, "info", "xml")
	assert.ErrorIs(t, err, logger.ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]logger.Format{
		"":       logger.FormatText,
		"text":   logger.FormatText,
		" JSON ": logger.FormatJSON,
		"json":   logger.FormatJSON,
	} {
		got, err := logger.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logger.ParseFormat("xml")
	assert.ErrorIs(t, err, logger.ErrUnknownFormat)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	lvl, err := logger.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = logger.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	lvl, err = logger.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	_, err = logger.ParseLevel("loud")
	assert.Error(t, err)
}

func TestAttrs_EmptyForAbsentValues(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Key(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Evicted(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Op("").Equal(slog.Attr{}))
	assert.True(t, logger.Line(0).Equal(slog.Attr{}))

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.Equal(t, "evicted", logger.Evicted("b").Key)
	assert.Equal(t, int64(7), logger.Line(7).Value.Int64())
	assert.Equal(t, "elapsed", logger.Elapsed(time.Now()).Key)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
