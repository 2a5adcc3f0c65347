// Package server runs the HTTP gateway in front of the NBA client, plus an optional
// Prometheus scrape endpoint.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JerelRocktaschel/jumpshot/internal/config"
	httpserver "github.com/JerelRocktaschel/jumpshot/internal/http"
	"github.com/JerelRocktaschel/jumpshot/internal/http/handlers"
	"github.com/JerelRocktaschel/jumpshot/internal/http/middleware"
	"github.com/JerelRocktaschel/jumpshot/internal/logging"
	"github.com/JerelRocktaschel/jumpshot/internal/metrics"
	"github.com/JerelRocktaschel/jumpshot/internal/providers"
	"github.com/JerelRocktaschel/jumpshot/internal/season"
)

const metricsPath = "/metrics"

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	seasons       *season.Resolver
	provider      providers.DataProvider
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a gateway backed by the NBA client.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

// newServerWithMetrics wires the gateway. A nil provider means the real NBA client; a
// non-nil recorder skips telemetry setup entirely.
func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		seasons: season.NewResolver(cfg.Upstream.Cutoff()),
	}
	s.metrics, s.metricsServer, s.metricsStop = buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProvider(cfg, logger, s.metrics, s.seasons)
	}
	s.provider = provider
	s.httpServer = buildHTTPServer(cfg, provider, s.seasons, logger, s.metrics)
	return s
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, provider providers.DataProvider, seasons *season.Resolver, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	router := httpserver.NewRouter(handlers.NewHandler(provider, seasons, logger))
	return netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.LoggingMiddleware(logger, recorder, router),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeoutFor(cfg.Upstream.Timeout),
		IdleTimeout:  idleTimeout,
	}}
}

// Run starts the servers and blocks until ctx is cancelled, then shuts down. A listen
// failure on the gateway calls stop so the caller's context unwinds too.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")
	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	attrs := []any{slog.String("addr", s.httpServer.Addr())}
	if s.seasons != nil {
		catalog := s.cfg.Upstream.Catalog()
		attrs = append(attrs,
			slog.String(logging.FieldSeason, s.seasons.Current()),
			slog.String("data_host", catalog.DataV2),
			slog.String("stats_host", catalog.Stats),
		)
	}
	logging.Info(s.logger, "gateway starting", attrs...)
	launchServer("gateway", s.httpServer, s.logger, func(error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting",
		slog.String("addr", s.metricsServer.Addr()),
		slog.String(logging.FieldPath, metricsPath),
	)
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

// gracefulShutdown flushes telemetry before closing listeners, all within shutdownTimeout.
func (s *Server) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(ctx); err != nil {
			logging.Warn(s.logger, "metrics flush failed", logging.FieldError, err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", logging.FieldError, err)
		}
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		logging.Error(s.logger, "gateway shutdown failed", err)
	}
	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}
	if handler == nil || !cfg.Metrics.Enabled {
		return rec, nil, shutdown
	}

	mux := http.NewServeMux()
	mux.Handle("GET "+metricsPath, handler)
	return rec, netHTTPServer{srv: &http.Server{
		Addr:              ":" + cfg.Metrics.Port,
		Handler:           mux,
		ReadHeaderTimeout: readTimeout,
	}}, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		err := srv.ListenAndServe()
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return
		}
		logging.Warn(logger, name+" server failed", logging.FieldError, err)
		if onError != nil {
			onError(err)
		}
	}()
}

// Handler exposes the gateway handler chain.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
