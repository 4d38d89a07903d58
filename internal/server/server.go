package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"finance-tracker/docs"
	"finance-tracker/internal/config"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const maxBodySize = "1M"

// Server is one of the HTTP services (users, costs, admin, logs) wired to its stores
type Server struct {
	cfg        *config.Config
	echo       *echo.Echo
	logger     *slog.Logger
	logService services.LogServiceInterface
	limiter    *middleware.RateLimiter
}

// Option customizes a Server
type Option func(*serverOptions)

type serverOptions struct {
	clock    services.Clock
	registry *prometheus.Registry
	seed     uint64
}

// WithClock overrides the clock used to classify report periods
func WithClock(clock services.Clock) Option {
	return func(o *serverOptions) { o.clock = clock }
}

// WithRegistry registers service metrics on reg instead of a fresh registry
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *serverOptions) { o.registry = reg }
}

// WithGeneratorSeed fixes the seed of the development cost generator
func WithGeneratorSeed(seed uint64) Option {
	return func(o *serverOptions) { o.seed = seed }
}

// New builds the echo instance for cfg.Service
func New(cfg *config.Config, stores *Stores, logger *slog.Logger, opts ...Option) (*Server, error) {
	o := serverOptions{
		clock: time.Now,
		seed:  uint64(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = prometheus.NewRegistry()
	}

	metrics := services.NewPrometheusMetrics(o.registry)
	logService := services.NewLogService(stores.Logs, metrics, services.DefaultLogQueueSize, services.DefaultLogWorkers, logger)

	ipExtractor, err := middleware.NewIPExtractor(cfg.Security.TrustedProxies)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.IPExtractor = ipExtractor
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(maxBodySize))

	health := handlers.NewHealthCheckHandler(cfg.Service, stores.Ping)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(
		prometheus.Gatherers{prometheus.DefaultGatherer, o.registry},
		promhttp.HandlerOpts{},
	)))

	// An unknown service is rejected below; its document is simply absent.
	openAPI, _ := docs.OpenAPI(cfg.Service)
	apiDocs := handlers.NewDocsHandler(docs.ScalarHTML(), openAPI)
	e.GET("/docs", apiDocs.ServeScalarUI)
	e.GET("/docs/openapi.json", apiDocs.ServeOpenAPI)

	s := &Server{
		cfg:        cfg,
		echo:       e,
		logger:     logger,
		logService: logService,
		limiter:    middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst),
	}

	var sink services.LogServiceInterface
	if cfg.Logging.Persist {
		sink = logService
	}

	api := e.Group("/api",
		middleware.RequestLogger(cfg.Service, logger, sink),
		middleware.PanicRecovery(logger),
		s.limiter.Middleware(),
	)

	switch cfg.Service {
	case config.ServiceUsers:
		userService := services.NewUserService(stores.Users, stores.Costs, metrics, logger)
		h := handlers.NewUserHandler(userService)
		api.POST("/add", h.AddUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)

	case config.ServiceCosts:
		generator := services.NewCostGenerator(o.seed)
		costService := services.NewCostService(stores.Costs, stores.Users, generator, metrics, o.clock, logger)
		reportService := services.NewReportService(stores.Costs, stores.Reports, stores.Users, metrics, o.clock, logger)
		h := handlers.NewCostHandler(costService, reportService)
		api.POST("/add", h.AddCost)
		api.GET("/report", h.GetReport)

		if cfg.IsDevelopment() {
			dev := handlers.NewDevHandler(costService)
			api.POST("/dev/users/:id/generate-costs", dev.GenerateCosts)
		}

	case config.ServiceAdmin:
		h := handlers.NewAdminHandler(dto.DevelopersFromConfig(cfg.Admin.Developers))
		api.GET("/about", h.About)

	case config.ServiceLogs:
		h := handlers.NewLogHandler(logService)
		api.GET("/logs", h.ListLogs)

	default:
		return nil, fmt.Errorf("unknown service %q", cfg.Service)
	}

	return s, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled or the listener fails, then shuts the
// HTTP server down and drains the request-log queue
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	workersDone := make(chan struct{})

	go func() {
		defer close(workersDone)
		s.logService.Run(workerCtx)
	}()

	g.Go(func() error {
		s.limiter.RunCleanup(gctx)
		return nil
	})

	g.Go(func() error {
		s.logger.Info("server starting",
			"service", s.cfg.Service,
			"address", s.cfg.Server.Address(),
			"environment", s.cfg.Server.Environment,
		)
		if err := s.echo.Start(s.cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down", "service", s.cfg.Service)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()

		err := s.echo.Shutdown(shutdownCtx)
		stopWorkers()

		select {
		case <-workersDone:
		case <-shutdownCtx.Done():
			s.logger.Warn("request log queue not drained before shutdown timeout")
		}
		return err
	})

	return g.Wait()
}
