package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	appmlb "mlb-stats-service/internal/app/mlb"
	"mlb-stats-service/internal/app/system"
	"mlb-stats-service/internal/config"
	httpapi "mlb-stats-service/internal/http"
	"mlb-stats-service/internal/logging"
	"mlb-stats-service/internal/metrics"
	"mlb-stats-service/internal/statsapi"
	"mlb-stats-service/internal/tools"
)

// Version is stamped via -ldflags at release builds.
var Version = "dev"

var metricsSetup = metrics.Setup

// Server owns the long-lived pieces: the statsapi client, the shared
// operation services, the MCP server, and the HTTP listeners.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	mlbService    *appmlb.Service
	systemService *system.Service
	mcpServer     *mcp.Server
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New wires a server from configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	client := statsapi.NewClient(statsapi.Config{
		BaseURL:  cfg.StatsAPI.BaseURL,
		Timeout:  cfg.StatsAPI.Timeout,
		Recorder: recorder,
	})
	mlbSvc := appmlb.NewService(appmlb.Config{
		Client:    client,
		TeamsFile: cfg.TeamsFile,
		Logger:    logger,
	})
	systemSvc := system.NewService(nil)

	mcpServer := tools.NewServer(tools.Config{
		MLB:      mlbSvc,
		System:   systemSvc,
		Logger:   logger,
		Recorder: recorder,
		Name:     cfg.Metrics.ServiceName,
		Version:  Version,
	})

	httpSrv := buildHTTPServer(cfg, mlbSvc, systemSvc, mcpServer, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		mlbService:    mlbSvc,
		systemService: systemSvc,
		mcpServer:     mcpServer,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildHTTPServer(cfg config.Config, mlbSvc *appmlb.Service, systemSvc *system.Service, mcpServer *mcp.Server, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return mcpServer }, nil)
	handler := httpapi.NewHandler(mlbSvc, systemSvc, logger)
	router := httpapi.NewRouter(handler, mcpHandler)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := httpapi.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// Run serves until the context is cancelled, then shuts down gracefully.
// With MCPStdio set it speaks MCP over stdin/stdout instead of listening.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	if s.cfg.MCPStdio {
		s.runStdio(ctx)
		return
	}

	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) runStdio(ctx context.Context) {
	logging.Info(s.logger, "serving mcp over stdio")
	if err := s.mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logging.Error(s.logger, "stdio transport failed", err)
	}
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}
	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
