package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/rerender/internal/config"
	"github.com/vango-dev/rerender/internal/errors"
	"github.com/vango-dev/rerender/pkg/metrics"
	"github.com/vango-dev/rerender/pkg/server"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lab over HTTP",
		Long: `Serve the lab in the browser.

Each tab gets its own session on the server. Settings come from
rerender.json and RERENDER_* environment variables.`,
		Example: `  rerender serve
  rerender serve --addr 127.0.0.1:3000
  RERENDER_LOG_LEVEL=debug rerender serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Address = addr
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			logger := cfg.Log.Logger(cmd.ErrOrStderr())
			srv := server.New(serverConfig(cfg), serverOptions(cfg, logger)...)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := cmd.OutOrStdout()
			printBanner(w)
			success(w, "Serving on %s", cfg.Server.Address)
			if cfg.File() != "" {
				info(w, "config: %s", cfg.File())
			}
			if cfg.Metrics.Enabled {
				info(w, "metrics: %s", cfg.Metrics.Path)
			}

			if err := srv.Run(ctx); err != nil {
				return errors.New("R060").Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides server.address)")

	return cmd
}

// serverConfig maps the loaded configuration onto the server's.
func serverConfig(cfg *config.Config) *server.ServerConfig {
	return &server.ServerConfig{
		Address:         cfg.Server.Address,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		ReadBufferSize:  cfg.Server.ReadBufferSize,
		WriteBufferSize: cfg.Server.WriteBufferSize,
		MetricsPath:     cfg.Metrics.Path,
		Pretty:          cfg.Render.Pretty,
		Session: server.SessionConfig{
			MaxEventQueue:     cfg.Session.MaxEventQueue,
			ReadTimeout:       cfg.Session.ReadTimeout,
			WriteTimeout:      cfg.Session.WriteTimeout,
			HeartbeatInterval: cfg.Session.HeartbeatInterval,
		},
	}
}

func serverOptions(cfg *config.Config, logger *slog.Logger) []server.Option {
	opts := []server.Option{server.WithLogger(logger)}

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m := metrics.New(
			metrics.WithRegistry(reg),
			metrics.WithNamespace(cfg.Metrics.Namespace),
		)
		opts = append(opts, server.WithMetrics(m, reg))
	}
	if cfg.Tracing.Enabled {
		// Spans are recorded only if a provider was installed with
		// otel.SetTracerProvider.
		logger.Info("tracing enabled", "tracer", metrics.DefaultTracerName, "provider", "global")
		opts = append(opts, server.WithTracer(metrics.NewTracer(metrics.DefaultTracerName)))
	}
	return opts
}
