package main

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/movies-api/internal/config"
	"github.com/zhouzirui/movies-api/internal/logging"
)

func TestApplyFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--port", "9090", "--log-level", "debug", "--data", "movies.yaml"}))

	port, _ := cmd.Flags().GetString("port")
	data, _ := cmd.Flags().GetString("data")
	level, _ := cmd.Flags().GetString("log-level")
	cfg := &config.Config{Server: config.ServerConfig{Addr: ":1234"}, Log: config.LogConfig{Format: logging.FormatJSON}}

	require.NoError(t, applyFlags(cmd, flags{port: port, data: data, logLevel: level}, cfg))

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "movies.yaml", cfg.Data.Path)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, logging.FormatJSON, cfg.Log.Format)
}

func TestApplyFlagsInvalid(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--log-format", "xml"}))

	err := applyFlags(cmd, flags{logFormat: "xml"}, &config.Config{})
	assert.Error(t, err)
}

func TestLoggingConfig(t *testing.T) {
	lc := loggingConfig(config.LogConfig{Level: slog.LevelWarn})

	assert.Equal(t, slog.LevelWarn, lc.Level)
	assert.Equal(t, logging.FormatText, lc.Format)
	assert.NotNil(t, lc.Output)

	lc = loggingConfig(config.LogConfig{Format: logging.FormatJSON})
	assert.Equal(t, logging.FormatJSON, lc.Format)
}

func TestRunServerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- runServer(ctx, srv) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
