package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zhouzirui/movies-api/internal/config"
	"github.com/zhouzirui/movies-api/internal/handler"
	"github.com/zhouzirui/movies-api/internal/logging"
	"github.com/zhouzirui/movies-api/internal/middleware"
	"github.com/zhouzirui/movies-api/internal/model/movie"
	"github.com/zhouzirui/movies-api/internal/validation"
)

type flags struct {
	port      string
	data      string
	logLevel  string
	logFormat string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "movies-api",
		Short:         "HTTP API over an in-memory movies collection",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.port, "port", "p", "", "listen port or address (overrides PORT)")
	cmd.Flags().StringVar(&f.data, "data", "", "initial dataset, .json or .yaml (overrides MOVIES_DATA)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "text or json (overrides LOG_FORMAT)")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, f flags) error {
	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := applyFlags(cmd, f, cfg); err != nil {
		return err
	}

	logger := logging.New(loggingConfig(cfg.Log))
	slog.SetDefault(logger)

	if envErr != nil {
		logger.Debug("no .env file loaded, using process environment only", "error", envErr)
	}

	movies, err := movie.LoadFile(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("failed to load movies: %w", err)
	}
	logger.Info("movies loaded", "count", len(movies), "source", datasetName(cfg.Data.Path))

	validator, err := validation.New()
	if err != nil {
		return err
	}

	store := movie.NewMemoryStore(movies)
	guard := middleware.NewOriginGuard(cfg.CORS.AllowedOrigins)
	router := handler.NewRouter(store, validator, guard, logger)

	return startServer(ctx, cfg.Server, router, logger)
}

func applyFlags(cmd *cobra.Command, f flags, cfg *config.Config) error {
	if cmd.Flags().Changed("port") {
		server, err := config.ParseAddr(f.port)
		if err != nil {
			return err
		}
		cfg.Server = server
	}
	if cmd.Flags().Changed("data") {
		cfg.Data.Path = f.data
	}
	if cmd.Flags().Changed("log-level") {
		level, err := logging.ParseLevel(f.logLevel)
		if err != nil {
			return err
		}
		cfg.Log.Level = level
	}
	if cmd.Flags().Changed("log-format") {
		format, err := logging.ParseFormat(f.logFormat)
		if err != nil {
			return err
		}
		cfg.Log.Format = format
	}
	return nil
}

func loggingConfig(c config.LogConfig) logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Level
	if c.Format != "" {
		lc.Format = c.Format
	}
	return lc
}

func datasetName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger *slog.Logger) error {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("server listening", "addr", addr)
	if err := runServer(ctx, srv); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
