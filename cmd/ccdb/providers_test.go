package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/hayeah/ccdb/internal/assert"
)

func TestProvideLogger(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	logger, err := ProvideLogger(ProvideGooConfig(&Args{}))
	assert.NoError(err)
	assert.True(logger.Enabled(ctx, slog.LevelInfo))
	assert.False(logger.Enabled(ctx, slog.LevelDebug))

	logger, err = ProvideLogger(ProvideGooConfig(&Args{Verbose: true, LogFormat: "json"}))
	assert.NoError(err)
	assert.True(logger.Enabled(ctx, slog.LevelDebug))
}
