package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codecraftpakistan/codecraft-site/config"
	"github.com/codecraftpakistan/codecraft-site/internal/cache"
	"github.com/codecraftpakistan/codecraft-site/internal/handlers"
	"github.com/codecraftpakistan/codecraft-site/internal/middleware"
	"github.com/codecraftpakistan/codecraft-site/internal/models"
	"github.com/codecraftpakistan/codecraft-site/internal/services"
	"github.com/codecraftpakistan/codecraft-site/internal/web"
	"github.com/codecraftpakistan/codecraft-site/pkg/emailrelay"
	"github.com/codecraftpakistan/codecraft-site/pkg/formtoken"
	"github.com/codecraftpakistan/codecraft-site/pkg/httpclient"
	"github.com/codecraftpakistan/codecraft-site/pkg/logger"
	"github.com/codecraftpakistan/codecraft-site/pkg/metrics"
	"github.com/codecraftpakistan/codecraft-site/pkg/profiling"
	"github.com/codecraftpakistan/codecraft-site/pkg/recaptcha"
	"github.com/codecraftpakistan/codecraft-site/pkg/tracing"
	"github.com/codecraftpakistan/codecraft-site/pkg/trigger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const (
	pageBodyLimit        = 100 * 1024
	applicationBodyLimit = 10 * 1024 * 1024 // multipart posts carry the resume file
	apiBodyLimit         = 100 * 1024
)

// registerPageRoutes registers the server-rendered site
func registerPageRoutes(
	router *gin.Engine,
	pageRateLimiter, submitRateLimiter *middleware.RateLimiter,
	pagesHandler *handlers.PagesHandler,
	careersHandler *handlers.CareersHandler,
) {
	router.StaticFS("/static", web.StaticFS())

	router.GET("/", pageRateLimiter.Middleware(), pagesHandler.Home)
	for _, page := range models.InfoPages {
		router.GET(page.Path, pageRateLimiter.Middleware(), pagesHandler.Info(page))
	}

	careers := router.Group("/careers", middleware.NoStoreMiddleware())
	careers.GET("", pageRateLimiter.Middleware(), careersHandler.Show)
	careers.POST("", submitRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(applicationBodyLimit), careersHandler.Submit)

	router.NoRoute(middleware.BodySizeLimitMiddleware(pageBodyLimit), pagesHandler.NotFound)
}

// registerAPIRoutes registers the JSON API for a given router group
func registerAPIRoutes(
	group *gin.RouterGroup,
	generalRateLimiter, submitRateLimiter *middleware.RateLimiter,
	applicationHandler *handlers.ApplicationHandler,
) {
	group.Use(middleware.NoStoreMiddleware())
	group.GET("/careers/form", generalRateLimiter.Middleware(), applicationHandler.GetForm)
	group.POST("/applications", submitRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(apiBodyLimit), applicationHandler.SubmitApplication)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
		MaxSizeMB:   cfg.Logging.MaxSizeMB,
		MaxBackups:  cfg.Logging.MaxBackups,
		MaxAgeDays:  cfg.Logging.MaxAgeDays,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Code Craft Pakistan site",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Continuous profiling
	stopProfiler, err := profiling.InitProfiler(cfg.Profiling, profiling.Identity{
		ServiceName: cfg.Observability.ServiceName,
		Namespace:   cfg.Observability.ServiceNamespace,
		Version:     cfg.Observability.ServiceVersion,
		InstanceID:  cfg.Observability.ServiceInstanceID,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer stopProfiler()

	// Background work shares one lifetime
	rootCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	go metrics.RecordInfrastructureMetrics(rootCtx.Done())

	// Outbound calls: email relay and reCAPTCHA
	httpClient := httpclient.NewStandardClient(cfg.RelayTimeout())
	relayClient := emailrelay.NewClient(cfg.EmailRelay.Endpoint, cfg.EmailRelay.Origin, emailrelay.Credentials{
		ServiceID:  cfg.EmailRelay.ServiceID,
		PublicKey:  cfg.EmailRelay.PublicKey,
		PrivateKey: cfg.EmailRelay.PrivateKey,
	}, httpClient)

	var captcha services.CaptchaVerifier
	if cfg.CaptchaEnabled() {
		captcha = recaptcha.NewVerifier(cfg.ReCAPTCHA.SecretKey, httpClient)
	} else {
		logger.Warn("ReCAPTCHA disabled: RECAPTCHA_SECRET_KEY not configured")
	}

	tokenManager, err := formtoken.NewManager(
		cfg.Submission.FormTokenSecret,
		cfg.Observability.ServiceName,
		time.Duration(cfg.Submission.FormTokenTTLMinutes)*time.Minute,
	)
	if err != nil {
		logger.Fatal("Failed to initialize form tokens", zap.Error(err))
	}
	if cfg.Submission.FormTokenSecret == "" {
		logger.Warn("FORM_TOKEN_SECRET not configured: form tokens will not survive a restart")
	}

	dispatcher := trigger.NewDispatcher(cfg.AcknowledgmentTimeout(), trigger.LogSink)
	inFlight := cache.NewInFlightCache(cfg.InFlightTTL())

	// Initialize services
	applicationService := services.NewApplicationService(cfg, relayClient, inFlight, dispatcher, tokenManager, captcha)

	// Initialize handlers
	if err := handlers.RegisterValidators(); err != nil {
		logger.Fatal("Failed to register validators", zap.Error(err))
	}
	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Fatal("Failed to load templates", zap.Error(err))
	}

	var draining atomic.Bool
	site := web.NewSite(cfg.Company.Name, cfg.Company.Inbox)
	pagesHandler := handlers.NewPagesHandler(site, cfg.Company.Location, cfg.Company.LegalLastUpdated)
	careersHandler := handlers.NewCareersHandler(applicationService, site, cfg.ReCAPTCHA.SiteKey)
	applicationHandler := handlers.NewApplicationHandler(applicationService, cfg.ReCAPTCHA.SiteKey)
	healthHandler := handlers.NewHealthHandler(func() bool { return !draining.Load() })

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.HTMLRender = renderer

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName)) // OpenTelemetry tracing
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware(middleware.ContentSecurityPolicy))

	// Rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rootCtx, 100, 200) // 100 req/sec, burst of 200
	pageRateLimiter := middleware.NewRateLimiter(rootCtx, 20, 40)      // 20 req/sec, burst of 40
	submitRateLimiter := middleware.NewRateLimiter(rootCtx, 0.05, 5)   // 3 req/min, burst of 5 (prevent spam)

	// Utility endpoints (not versioned - operational endpoints)
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.Handler()))

	// CORS only matters for a separately hosted front end calling the API
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}
	v1 := router.Group("/api/v1")
	v1.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	// Preflight requests need a route for the group middleware to run
	v1.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	registerAPIRoutes(v1, generalRateLimiter, submitRateLimiter, applicationHandler)

	registerPageRoutes(router, pageRateLimiter, submitRateLimiter, pagesHandler, careersHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	draining.Store(true)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Acknowledgments already launched get the rest of the deadline
	if err := dispatcher.Wait(ctx); err != nil {
		logger.Warn("Detached tasks still running at exit", zap.Error(err))
	}

	logger.Info("Server exited")
}
