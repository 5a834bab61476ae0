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

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("disk full") }

func TestTee_SingleSink(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, nil)

	assert.Equal(t, slog.Handler(h), Tee(h))
}

func TestTee_PerSinkLevels(t *testing.T) {
	var verbose, quiet bytes.Buffer
	logger := slog.New(Tee(
		slog.NewJSONHandler(&verbose, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelWarn}),
	))

	logger.Debug("cache miss", slog.String("key", "tags"))
	logger.Warn("publish failed")

	assert.Contains(t, verbose.String(), "cache miss")
	assert.Contains(t, verbose.String(), "publish failed")
	assert.NotContains(t, quiet.String(), "cache miss")
	assert.Contains(t, quiet.String(), "publish failed")
}

func TestTee_Enabled(t *testing.T) {
	h := Tee(
		slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestTee_AttrsAndGroups(t *testing.T) {
	var a, b bytes.Buffer
	logger := slog.New(Tee(slog.NewJSONHandler(&a, nil), slog.NewJSONHandler(&b, nil))).
		With(slog.Int("quote_id", 3)).
		WithGroup("tag")

	logger.Info("attached", slog.String("name", "wit"))

	for _, out := range []string{a.String(), b.String()} {
		assert.Contains(t, out, `"quote_id":3`)
		assert.Contains(t, out, `"tag":{"name":"wit"}`)
	}
}

func TestTee_EmptyGroupIsIgnored(t *testing.T) {
	h := Tee(slog.NewJSONHandler(&bytes.Buffer{}, nil), slog.NewJSONHandler(&bytes.Buffer{}, nil))

	assert.Equal(t, h, h.WithGroup(""))
}

func TestTee_KeepsWritingAfterSinkError(t *testing.T) {
	var buf bytes.Buffer
	h := Tee(
		failingHandler{slog.NewJSONHandler(&bytes.Buffer{}, nil)},
		slog.NewJSONHandler(&buf, nil),
	)

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "quote imported", 0)
	err := h.Handle(context.Background(), r)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, buf.String(), "quote imported")
}
