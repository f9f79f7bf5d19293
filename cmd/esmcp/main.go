package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/esmcp/internal/config"
	"github.com/kailas-cloud/esmcp/internal/engine/elastic"
	logpkg "github.com/kailas-cloud/esmcp/internal/logger"
	"github.com/kailas-cloud/esmcp/internal/metrics"
	chiTransport "github.com/kailas-cloud/esmcp/internal/transport/chi"
	mcpTransport "github.com/kailas-cloud/esmcp/internal/transport/mcp"
	healthuc "github.com/kailas-cloud/esmcp/internal/usecase/health"
	"github.com/kailas-cloud/esmcp/internal/version"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "esmcp:", err)
		cancel()
		os.Exit(1)
	}
}

type serveOptions struct {
	configPath string
	transport  string
	port       int
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &serveOptions{}
	root := &cobra.Command{
		Use:           "esmcp",
		Short:         "MCP tool server for Elasticsearch",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.transport, "transport", "", "tool transport: stdio or http")
	root.PersistentFlags().IntVar(&opts.port, "port", 0, "HTTP port (http transport)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tools over stdio (default) or streamable HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts)
		},
	}
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "esmcp %s (commit %s, built %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}

	root.AddCommand(serveCmd, versionCmd)
	return root
}

func serve(ctx context.Context, opts *serveOptions) error {
	env := config.GetEnv()
	cfg, err := config.Load(config.Options{
		Env:       env,
		Path:      opts.configPath,
		Transport: opts.transport,
		Port:      opts.port,
		LogLevel:  opts.logLevel,
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting esmcp",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("transport", cfg.Transport),
		zap.Strings("es_urls", cfg.Elasticsearch.URLs),
		zap.String("es_auth", authMode(cfg.Elasticsearch)),
	)

	caCert, err := cfg.ReadCACert()
	if err != nil {
		return err
	}
	store, err := elastic.NewStore(elastic.Config{
		Addresses: cfg.Elasticsearch.URLs,
		APIKey:    cfg.Elasticsearch.APIKey,
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
		CACert:    caCert,
	})
	if err != nil {
		return fmt.Errorf("create engine client: %w", err)
	}
	defer store.Close()

	metrics.RegisterToolMetrics()

	health := healthuc.New(store)
	probeCtx, cancelProbe := context.WithTimeout(ctx, 5*time.Second)
	if report := health.Check(probeCtx); report.Status == healthuc.Healthy {
		logger.Info("Connected to Elasticsearch",
			zap.String("cluster", report.Cluster),
			zap.String("engine_version", report.EngineVersion),
		)
	} else {
		logger.Warn("Elasticsearch is not reachable yet, tools will fail until it is")
	}
	cancelProbe()

	server := mcpTransport.NewServer(mcpTransport.NewServices(store, logger), logger)

	if cfg.Transport == config.TransportStdio {
		logger.Info("Serving tools over stdio")
		if err := server.RunStdio(ctx); err != nil {
			return err
		}
		logger.Info("Server stopped")
		return nil
	}
	return serveHTTP(ctx, cfg, server, health, logger)
}

func serveHTTP(
	ctx context.Context, cfg config.Config, server *mcpTransport.Server, health *healthuc.Service, logger *zap.Logger,
) error {
	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           chiTransport.NewRouter(server.Handler(), health, cfg.Auth.APIKeys, logger),
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
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
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}
	logger.Info("Server stopped gracefully")
	return nil
}

func authMode(es config.ElasticsearchConfig) string {
	switch {
	case es.APIKey != "":
		return "api_key"
	case es.BasicAuth():
		return "basic"
	default:
		return "none"
	}
}
