package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brewfather-mcp/internal/brewfather"
	"brewfather-mcp/internal/config"
	"brewfather-mcp/internal/middleware"
	"brewfather-mcp/internal/routing"
	"brewfather-mcp/internal/tools"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// overridden during build with ldflags
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   tools.ServerName,
		Short: "Brewfather inventory, recipes and batches as an MCP server",
		Long: `Run a Model Context Protocol server backed by the Brewfather API.

By default the server speaks MCP over stdio. Set --http-listen to serve the
streamable HTTP transport at /mcp instead, with /healthz and /metrics.

Credentials come from BREWFATHER_API_USER_ID and BREWFATHER_API_KEY, either
in the environment or in a .env file.`,
		SilenceUsage: true,
		Version:      version,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return config.Bind(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	config.RegisterFlags(cmd.Flags())

	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	logger := newLogger(os.Stderr, cfg.LogLevel)
	if cfg.EnvFile != "" {
		logger.Debug().Str("path", cfg.EnvFile).Msg("Loaded env file")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	clientLogger := logger.With().Str("component", "brewfather").Logger()
	clientCfg := cfg.Client()
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	clientCfg.Logger = &clientLogger
	clientCfg.Metrics = brewfather.NewMetrics(reg)

	client, err := brewfather.NewClient(clientCfg)
	if err != nil {
		return err
	}
	if cfg.Debug {
		logger.Info().Str("dir", cfg.DebugDir).Msg("Writing upstream responses to debug directory")
	}

	handler := tools.NewHandler(client, logger.With().Str("component", "tools").Logger())
	server := tools.NewServer(handler, version)

	if cfg.HTTPListen == "" {
		logger.Info().Str("version", version).Msg("Serving MCP over stdio")
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stdio server: %w", err)
		}
		return nil
	}

	return serveHTTP(ctx, cfg.HTTPListen, server, reg, logger)
}

func serveHTTP(ctx context.Context, addr string, server *mcp.Server, reg *prometheus.Registry, logger zerolog.Logger) error {
	limits := middleware.NewDefaultRateLimitConfig()
	defer limits.Stop()

	handler, err := routing.SetupRouter(routing.Config{
		Server:    server,
		Gatherer:  reg,
		RateLimit: limits,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("address", addr).Str("version", version).Msg("Serving MCP over HTTP")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// newLogger writes human-readable lines to a terminal and JSON otherwise.
// Stdout belongs to the stdio transport, so logs always go to w.
func newLogger(w *os.File, level zerolog.Level) zerolog.Logger {
	var out io.Writer = w
	if term.IsTerminal(int(w.Fd())) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
