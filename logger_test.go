package shorty_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/shorty"
	"github.com/hupe1980/shorty/allocator/sequential"
	"github.com/hupe1980/shorty/store"
)

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := shorty.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := shorty.Hash().Logger(logger).Build()
	require.NoError(t, err)

	ctx := context.Background()

	code, err := s.Shorten(ctx, "https://example.com/a")
	require.NoError(t, err)

	_, err = s.Resolve(ctx, code)
	require.NoError(t, err)

	_, err = s.Resolve(ctx, "missing")
	require.ErrorIs(t, err, shorty.ErrNotFound)

	// Check logs
	logOutput := buf.String()
	require.Contains(t, logOutput, "shorten completed")
	require.Contains(t, logOutput, `"code":"cd69b81"`)
	require.Contains(t, logOutput, `"target_len":21`)
	require.Contains(t, logOutput, "resolve completed")
	require.Contains(t, logOutput, "resolve missed")

	// Targets are logged by length only, never by value.
	require.NotContains(t, logOutput, "https://example.com/a")
}

func TestBatchShortenLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := shorty.NewLogger(slog.NewJSONHandler(&buf, nil))

	s, err := shorty.Hash().MaxRetries(0).Logger(logger).Build()
	require.NoError(t, err)

	res := s.BatchShorten(context.Background(), []string{
		"https://example.com/a",
		"https://example.com/a",
	})
	require.Error(t, res.Errors[1])

	logOutput := buf.String()
	require.Contains(t, logOutput, "batch shorten completed with failures")
	require.Contains(t, logOutput, `"total":2`)
	require.Contains(t, logOutput, `"failed":1`)
}

func TestStrategyChangeLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := shorty.NewLogger(slog.NewJSONHandler(&buf, nil))

	db := store.NewMapStore()

	s, err := shorty.Hash().Store(db).Logger(logger).Build()
	require.NoError(t, err)

	seq, err := sequential.New(func(o *sequential.Options) {
		o.Store = db
	})
	require.NoError(t, err)
	require.NoError(t, s.SetStrategy(seq))

	logOutput := buf.String()
	require.Contains(t, logOutput, "strategy changed")
	require.Contains(t, logOutput, `"from":"hash-md5"`)
	require.Contains(t, logOutput, `"to":"sequential"`)
}

func TestNoopLoggerDiscards(t *testing.T) {
	logger := shorty.NoopLogger()
	require.NotNil(t, logger)
	require.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := shorty.NewLogger(slog.NewJSONHandler(&buf, nil))

	logger.WithCode("abc1234").WithStrategy("hash-md5").WithCount(3).Info("tagged")

	logOutput := buf.String()
	require.Contains(t, logOutput, `"code":"abc1234"`)
	require.Contains(t, logOutput, `"strategy":"hash-md5"`)
	require.Contains(t, logOutput, `"count":3`)
}
