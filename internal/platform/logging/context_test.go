package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func TestFromContext_Fallback(t *testing.T) {
	previous := FromContext(context.Background())
	t.Cleanup(func() { SetDefault(previous) })

	logger, _ := bufferLogger(slog.LevelInfo)
	SetDefault(logger)

	assert.Same(t, logger, FromContext(context.Background()))
	assert.Same(t, logger, FromContext(nil)) //nolint:staticcheck // nil context is tolerated
	assert.Same(t, logger, slog.Default())
}

func TestWithContext_RoundTrip(t *testing.T) {
	logger, _ := bufferLogger(slog.LevelInfo)
	ctx := WithContext(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
}

func TestRequestAttributes(t *testing.T) {
	logger, buf := bufferLogger(slog.LevelInfo)

	ctx := WithContext(context.Background(), logger)
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithCorrelationID(ctx, "corr-1")
	ctx = WithTraceID(ctx, "4bf92f3577b34da6a3ce929d0e0e4736")

	FromContext(ctx).Info("listing quotes by tag", slog.String("tag", "wit"))

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"correlation_id":"corr-1"`)
	assert.Contains(t, out, `"trace_id":"4bf92f3577b34da6a3ce929d0e0e4736"`)
	assert.Contains(t, out, `"tag":"wit"`)
}

func TestWith_DoesNotLeakToParent(t *testing.T) {
	logger, buf := bufferLogger(slog.LevelInfo)
	parent := WithContext(context.Background(), logger)

	_ = With(parent, slog.Int("quote_id", 9))
	FromContext(parent).Info("top quotes")

	assert.NotContains(t, buf.String(), "quote_id")
}

func TestTrace(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  bool
	}{
		{"enabled", LevelTrace, true},
		{"filtered", slog.LevelDebug, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := bufferLogger(tt.level)
			Trace(WithContext(context.Background(), logger), "gorm", slog.String("sql", "SELECT 1"))

			if tt.want {
				require.NotEmpty(t, buf.String())
				assert.Contains(t, buf.String(), `"sql":"SELECT 1"`)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
