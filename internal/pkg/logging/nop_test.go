package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	var logger Logger = NewNopLogger()

	assert.NotPanics(t, func() {
		logger.Debug("debug", "k", "v")
		logger.Info("info")
		logger.Warn("warn", "n", 1)
		logger.Error("error", "err", nil)
	})
	assert.Same(t, logger, logger.With("a", 1).With("b", 2))

	slogger := logger.Slog()
	require.NotNil(t, slogger)
	assert.False(t, slogger.Enabled(context.Background(), 8), "Slog() не должен ничего писать")
}
