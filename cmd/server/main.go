package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/shopadmin/backend/docs"
	filesapp "github.com/shopadmin/backend/internal/application/files"
	financeapp "github.com/shopadmin/backend/internal/application/finance"
	salesapp "github.com/shopadmin/backend/internal/application/sales"
	staffapp "github.com/shopadmin/backend/internal/application/staff"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/infrastructure/config"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/infrastructure/persistence"
	"github.com/shopadmin/backend/internal/infrastructure/storage"
	"github.com/shopadmin/backend/internal/infrastructure/telemetry"
	"github.com/shopadmin/backend/internal/interfaces/http/handler"
	"github.com/shopadmin/backend/internal/interfaces/http/middleware"
	"github.com/shopadmin/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting shop admin API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	logsProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	exportLevel, err := zapcore.ParseLevel(cfg.Telemetry.LogsLevel)
	if err != nil {
		log.Fatal("Invalid log export level", zap.Error(err))
	}
	// From here on every entry also goes to the collector when export is on
	log = logsProvider.Tee(log, exportLevel)

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:              cfg.Profiling.Enabled,
		ServerAddress:        cfg.Profiling.ServerAddress,
		ApplicationName:      cfg.Profiling.ApplicationName,
		BasicAuthUser:        cfg.Profiling.BasicAuthUser,
		BasicAuthPassword:    cfg.Profiling.BasicAuthPassword,
		MutexProfileFraction: cfg.Profiling.MutexProfileFraction,
		BlockProfileRate:     cfg.Profiling.BlockProfileRate,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
		LinkProfiles:      cfg.Profiling.Enabled,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsExportInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
		logger.WithParams(!cfg.App.IsProduction()),
	)
	dbOpts := []persistence.DatabaseOption{persistence.WithGormLogger(gormLog)}
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		tracingCfg := telemetry.DefaultDBTracingConfig()
		tracingCfg.Enabled = true
		tracingCfg.LogFullSQL = cfg.Telemetry.DBLogFullSQL
		tracingCfg.SlowQueryThresh = cfg.Telemetry.DBSlowQueryThresh
		dbOpts = append(dbOpts, persistence.WithTracing(telemetry.NewDBTracingPlugin(tracingCfg, log)))
	}

	db, err := persistence.NewDatabase(ctx, &cfg.Database, dbOpts...)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatal("Failed to access connection pool", zap.Error(err))
	}
	if meterProvider.IsEnabled() {
		if _, err := telemetry.RegisterPoolMetrics(meterProvider.Meter("db.pool"), sqlDB); err != nil {
			log.Warn("Failed to register pool metrics", zap.Error(err))
		}
	}
	log.Info("Database connected successfully")

	// Repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	auditRepo := persistence.NewGormAuditRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	payrollRepo := persistence.NewGormPayrollRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	investmentRepo := persistence.NewGormInvestmentRepository(db.DB)
	documentRepo := persistence.NewGormDocumentRepository(db.DB)

	// Signed URLs
	var issuer filesapp.SignedURLIssuer
	switch cfg.Storage.Driver {
	case config.StorageDriverS3:
		s3Issuer, err := storage.NewS3URLIssuer(ctx, &cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		issuer = s3Issuer
		log.Info("Signed URLs issued by S3", zap.String("bucket", s3Issuer.Bucket()))
	default:
		issuer = storage.NewStubURLIssuer(cfg.Storage.StubBaseURL, cfg.Storage.PresignExpiration)
		log.Warn("Signed URLs issued by the stub issuer", zap.String("base_url", cfg.Storage.StubBaseURL))
	}

	// Sessions
	var revocations auth.RevocationStore
	switch cfg.Session.RevocationBackend {
	case config.RevocationBackendRedis:
		redisClient, err := auth.NewRedisClient(ctx, cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis", zap.Error(err))
			}
		}()
		revocations = auth.NewRedisRevocationStore(redisClient)
		log.Info("Session revocations stored in Redis", zap.String("addr", cfg.Redis.Addr()))
	default:
		revocations = auth.NewMemoryRevocationStore()
		log.Warn("Session revocations kept in memory; sign-outs are lost on restart")
	}
	verifier, err := auth.NewSessionVerifier(cfg.Session)
	if err != nil {
		log.Fatal("Failed to initialize session verifier", zap.Error(err))
	}
	authenticator := auth.NewAuthenticator(verifier, revocations)

	// Services
	customerService := salesapp.NewCustomerService(customerRepo, auditRepo)
	productService := salesapp.NewProductService(productRepo)
	orderService := salesapp.NewOrderService(orderRepo)
	employeeService := staffapp.NewEmployeeService(employeeRepo)
	payrollService := staffapp.NewPayrollService(payrollRepo, employeeRepo)
	expenseService := financeapp.NewExpenseService(expenseRepo, employeeRepo)
	investmentService := financeapp.NewInvestmentService(investmentRepo)
	fileService := filesapp.NewService(issuer, documentRepo, employeeRepo, cfg.Storage.PresignExpiration)

	handlers := router.Handlers{
		Customers:   handler.NewCustomerHandler(customerService),
		Products:    handler.NewProductHandler(productService),
		Orders:      handler.NewOrderHandler(orderService),
		Employees:   handler.NewEmployeeHandler(employeeService),
		Payroll:     handler.NewPayrollHandler(payrollService),
		Expenses:    handler.NewExpenseHandler(expenseService),
		Investments: handler.NewInvestmentHandler(investmentService),
		Files:       handler.NewFileHandler(fileService),
		Session:     handler.NewSessionHandler(authenticator, cfg.Session.MaxLifetime),
		Health:      handler.NewHealthHandler(sqlDB),
	}

	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	securityCfg := middleware.DefaultSecurityConfig()
	securityCfg.HSTSEnabled = cfg.App.IsProduction()

	tracingCfg := middleware.DefaultTracingConfig()
	tracingCfg.Enabled = cfg.Telemetry.Enabled
	if cfg.Telemetry.ServiceName != "" {
		tracingCfg.ServiceName = cfg.Telemetry.ServiceName
	}

	// Request ID first so every later log line and span carries it
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(tracingCfg))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.HTTPMetrics(meterProvider))
	if profiler.IsEnabled() {
		engine.Use(middleware.ProfilingLabels())
	}
	engine.Use(middleware.SecureWithConfig(securityCfg))
	engine.Use(middleware.CORSWithConfig(corsCfg))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))

	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	sessionGate := middleware.RequireSession(middleware.SessionConfig{
		Authenticator:    authenticator,
		CookieName:       cfg.Session.CookieName,
		SecureCookieName: cfg.Session.SecureCookieName,
	})
	router.Setup(engine, handlers, sessionGate, middleware.SpanAttributes())
	router.SetupDocs(engine, middleware.SwaggerConfig{
		Enabled:     cfg.Swagger.Enabled,
		RequireAuth: cfg.Swagger.RequireAuth,
		AllowedIPs:  cfg.Swagger.AllowedIPs,
	}, sessionGate)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if limiter != nil {
		limiter.Stop()
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to flush metrics", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to flush traces", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Warn("Failed to stop profiler", zap.Error(err))
	}

	log.Info("Server exited gracefully")
	if err := logsProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to flush logs", zap.Error(err))
	}
}
