// Command server runs the financial statements RPC backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finstatements/backend/internal/application/company"
	"github.com/finstatements/backend/internal/application/compliance"
	"github.com/finstatements/backend/internal/application/identity"
	"github.com/finstatements/backend/internal/application/ledger"
	"github.com/finstatements/backend/internal/application/license"
	"github.com/finstatements/backend/internal/application/note"
	"github.com/finstatements/backend/internal/application/report"
	appschedule "github.com/finstatements/backend/internal/application/schedule"
	"github.com/finstatements/backend/internal/application/taxonomy"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/infrastructure/auth"
	"github.com/finstatements/backend/internal/infrastructure/config"
	"github.com/finstatements/backend/internal/infrastructure/logger"
	"github.com/finstatements/backend/internal/infrastructure/migration"
	"github.com/finstatements/backend/internal/infrastructure/persistence"
	"github.com/finstatements/backend/internal/infrastructure/printing"
	"github.com/finstatements/backend/internal/infrastructure/scheduler"
	"github.com/finstatements/backend/internal/infrastructure/storage"
	"github.com/finstatements/backend/internal/infrastructure/telemetry"
	"github.com/finstatements/backend/internal/interfaces/http/handler"
	"github.com/finstatements/backend/internal/interfaces/http/middleware"
	"github.com/finstatements/backend/internal/interfaces/http/router"
	"github.com/finstatements/backend/migrations"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/finstatements/backend/docs"
)

//	@title			Financial Statements API
//	@version		1.0
//	@description	Schedule III financial statement preparation. Every procedure is a POST to /trpc/<name> with a JSON input; queries also accept GET with an input query parameter.

//	@BasePath	/trpc

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}"

const sessionPurgeInterval = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
	log, err := logger.New(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry
	tp, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	mp, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	lp, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	if level, err := zap.ParseAtomicLevel(cfg.Log.Level); err == nil {
		if core := lp.Core(cfg.Telemetry.ServiceName, level.Level()); core != nil {
			log, _ = logger.New(logCfg, logger.WithCore(core))
		}
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	profiler, err := telemetry.NewProfiler(cfg.Profiling, cfg.App.Name, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if cfg.Profiling.SpanProfiles && profiler.IsEnabled() {
		tp.EnableSpanProfiles()
	}

	log.Info("Starting financial statements backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("database", cfg.Database.Driver),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if cfg.Telemetry.DBTraceEnabled {
		if err := telemetry.NewDBTracing(cfg.Telemetry, cfg.Database.Driver, log).Register(db.DB); err != nil {
			log.Fatal("Failed to register database tracing", zap.Error(err))
		}
	}
	if err := migrateSchema(db, &cfg.Database, log); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}
	log.Info("Database connected")

	// Redis is optional; sessions and rate limits fall back to process memory
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = auth.NewRedisClient(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	}
	var sessionCache auth.SessionCache = auth.NewInMemorySessionCache()
	var limiter middleware.Limiter = middleware.NewLocalLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
	if redisClient != nil {
		sessionCache = auth.NewRedisSessionCache(redisClient)
		limiter = auth.NewRedisRateLimiter(redisClient, cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
	}

	files, err := newObjectStorage(ctx, &cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	var renderer printing.PDFRenderer
	if cfg.Printing.Enabled {
		chromedp, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
			Timeout:   cfg.Printing.Timeout,
			RemoteURL: cfg.Printing.RemoteURL,
			NoSandbox: cfg.Printing.NoSandbox,
			Logger:    log,
		})
		if err != nil {
			log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
		}
		renderer = chromedp
	}

	// Repositories
	gdb := db.DB
	txManager := persistence.NewGormTxManager(gdb)
	diagnostics := persistence.NewGormDiagnostics(gdb)
	userRepo := persistence.NewGormUserRepository(gdb)
	sessionRepo := persistence.NewGormSessionRepository(gdb)
	companyRepo := persistence.NewGormCompanyRepository(gdb)
	controlRepo := persistence.NewGormCommonControlRepository(gdb)
	majorRepo := persistence.NewGormMajorHeadRepository(gdb)
	minorRepo := persistence.NewGormMinorHeadRepository(gdb)
	groupingRepo := persistence.NewGormGroupingRepository(gdb)
	trialBalanceRepo := persistence.NewGormTrialBalanceRepository(gdb)
	noteRepo := persistence.NewGormNoteRepository(gdb)
	policyRepo := persistence.NewGormPolicyRepository(gdb)
	licenseRepo := persistence.NewGormLicenseRepository(gdb)
	schedules := appschedule.Repositories{
		PPE:              persistence.NewGormScheduleRepository[schedule.PPEEntry](gdb),
		CWIP:             persistence.NewGormScheduleRepository[schedule.CWIPEntry](gdb),
		Intangibles:      persistence.NewGormScheduleRepository[schedule.IntangibleEntry](gdb),
		Investments:      persistence.NewGormScheduleRepository[schedule.InvestmentEntry](gdb),
		ShareCapital:     persistence.NewGormScheduleRepository[schedule.ShareCapitalEntry](gdb),
		Receivables:      persistence.NewGormScheduleRepository[schedule.ReceivableLedgerEntry](gdb),
		Payables:         persistence.NewGormScheduleRepository[schedule.PayableLedgerEntry](gdb),
		RelatedParties:   persistence.NewGormScheduleRepository[schedule.RelatedPartyTransaction](gdb),
		Contingencies:    persistence.NewGormScheduleRepository[schedule.ContingentLiability](gdb),
		Taxes:            persistence.NewGormScheduleRepository[schedule.TaxEntry](gdb),
		DeferredTaxes:    persistence.NewGormScheduleRepository[schedule.DeferredTaxEntry](gdb),
		EmployeeBenefits: persistence.NewGormScheduleRepository[schedule.EmployeeBenefitEntry](gdb),
		Ratios:           persistence.NewGormScheduleRepository[schedule.RatioAnalysis](gdb),
		Policies:         policyRepo,
	}

	// Services
	authService := identity.NewAuthService(userRepo, sessionRepo, txManager, auth.NewJWTService(cfg.JWT), sessionCache, log)
	userService := identity.NewUserService(userRepo, log)
	companyService := company.NewCompanyService(companyRepo, controlRepo, diagnostics, log)
	taxonomyService := taxonomy.NewTaxonomyService(majorRepo, minorRepo, groupingRepo, txManager, log)
	trialBalanceService := ledger.NewTrialBalanceService(ledger.TrialBalanceServiceDeps{
		TrialBalances: trialBalanceRepo,
		MajorHeads:    majorRepo,
		MinorHeads:    minorRepo,
		Groupings:     groupingRepo,
		Receivables:   schedules.Receivables,
		Payables:      schedules.Payables,
		TxManager:     txManager,
		Files:         files,
	}, log)
	scheduleService := appschedule.NewScheduleService(schedules, companyRepo, log)
	policyService := appschedule.NewPolicyService(policyRepo, companyRepo, txManager, log)
	noteService := note.NewNoteService(noteRepo, companyRepo, txManager, log)
	complianceService := compliance.NewComplianceService(diagnostics, majorRepo, controlRepo, compliance.Sources{
		CommonControls:   controlRepo,
		TrialBalances:    trialBalanceRepo,
		Notes:            noteRepo,
		Policies:         policyRepo,
		PPE:              schedules.PPE,
		CWIP:             schedules.CWIP,
		Intangibles:      schedules.Intangibles,
		Investments:      schedules.Investments,
		ShareCapital:     schedules.ShareCapital,
		Receivables:      schedules.Receivables,
		Payables:         schedules.Payables,
		RelatedParties:   schedules.RelatedParties,
		Contingencies:    schedules.Contingencies,
		Taxes:            schedules.Taxes,
		DeferredTaxes:    schedules.DeferredTaxes,
		EmployeeBenefits: schedules.EmployeeBenefits,
		Ratios:           schedules.Ratios,
	}, log)
	licenseService := license.NewLicenseService(licenseRepo, log)
	reportService := report.NewReportService(report.ReportServiceDeps{
		TrialBalances:  trialBalanceRepo,
		Notes:          noteRepo,
		Taxes:          schedules.Taxes,
		Ratios:         schedules.Ratios,
		CommonControls: controlRepo,
		TxManager:      txManager,
		Renderer:       renderer,
		Files:          files,
	}, log)

	if err := authService.EnsureAdmin(ctx, cfg.App.AdminEmail, cfg.App.AdminPassword); err != nil {
		log.Fatal("Failed to provision administrator", zap.Error(err))
	}
	sessionPurge, err := scheduler.NewPeriodicRunner(scheduler.Job{
		Name:       "session-purge",
		Interval:   sessionPurgeInterval,
		RunOnStart: true,
		Run: func(ctx context.Context) error {
			_, err := authService.PurgeExpiredSessions(ctx)
			return err
		},
	}, log)
	if err != nil {
		log.Fatal("Failed to create session purge job", zap.Error(err))
	}
	sessionPurge.Start(ctx)

	// HTTP
	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID(), logger.Recovery(log), logger.GinMiddleware(log))
	if tp.IsEnabled() {
		engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName), middleware.SpanAttributes())
	}
	if cfg.Telemetry.MetricsEnabled {
		rpcMetrics, err := telemetry.NewRPCMetrics(mp)
		if err != nil {
			log.Fatal("Failed to create RPC metrics", zap.Error(err))
		}
		engine.Use(middleware.RPCMetrics(rpcMetrics))
	}
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(
		middleware.ProfilingLabels(profiler.IsEnabled()),
		middleware.Secure(middleware.DefaultSecurityConfig()),
		middleware.CORS(corsCfg),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)
	if cfg.HTTP.AuthRateLimitEnabled {
		engine.Use(middleware.RateLimit(limiter, log, middleware.DefaultRateLimitedProcedures...))
	}
	engine.Use(middleware.Auth(middleware.AuthConfig{
		Authenticator:    authService,
		PublicProcedures: middleware.DefaultPublicProcedures,
		Logger:           log,
	}))

	systemHandler := handler.NewSystemHandler(db)
	systemHandler.RegisterRoutes(engine)

	swaggerCfg := middleware.SwaggerConfig{Enabled: cfg.Swagger.Enabled, AllowedIPs: cfg.Swagger.AllowedIPs}
	if cfg.Swagger.RequireAuth {
		swaggerCfg.Authenticator = authService
	}
	engine.GET("/swagger/*any", middleware.SwaggerProtection(swaggerCfg), ginSwagger.WrapHandler(swaggerFiles.Handler))

	r := router.NewRouter(engine)
	if err := r.Register(
		handler.NewAuthHandler(authService, userService),
		handler.NewCompanyHandler(companyService),
		handler.NewTaxonomyHandler(taxonomyService),
		handler.NewTrialBalanceHandler(companyService, trialBalanceService),
		handler.NewScheduleHandler(companyService, scheduleService, policyService),
		handler.NewNoteHandler(companyService, noteService),
		handler.NewComplianceHandler(companyService, complianceService),
		handler.NewLicenseHandler(licenseService),
		handler.NewReportHandler(companyService, reportService),
	); err != nil {
		log.Fatal("Failed to register procedures", zap.Error(err))
	}
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		log.Fatal("Failed to bind server address", zap.String("addr", srv.Addr), zap.Error(err))
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()
	systemHandler.MarkReady()
	// the desktop supervisor waits for this line
	log.Info("Server listening",
		zap.String("addr", ln.Addr().String()),
		zap.Int("procedures", len(r.Procedures())),
	)

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server stopped unexpectedly", zap.Error(err))
		}
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := sessionPurge.Stop(shutdownCtx); err != nil {
		log.Warn("Session purge job did not stop", zap.Error(err))
	}
	if renderer != nil {
		if err := renderer.Close(); err != nil {
			log.Warn("Error closing PDF renderer", zap.Error(err))
		}
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Warn("Error stopping profiler", zap.Error(err))
	}
	for name, shutdown := range map[string]func(context.Context) error{
		"traces":  tp.Shutdown,
		"metrics": mp.Shutdown,
		"logs":    lp.Shutdown,
	} {
		if err := shutdown(shutdownCtx); err != nil {
			log.Warn("Telemetry shutdown failed", zap.String("signal", name), zap.Error(err))
		}
	}

	log.Info("Server exited gracefully")
}

// migrateSchema brings the schema up to date when auto migration is on.
// Postgres runs the embedded SQL migrations; sqlite uses the model schema.
func migrateSchema(db *persistence.Database, cfg *config.DatabaseConfig, log *zap.Logger) error {
	if !cfg.AutoMigrate {
		return nil
	}
	if cfg.Driver == "sqlite" {
		return persistence.AutoMigrate(db.DB)
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	m, err := migration.New(sqlDB, migrations.FS, log)
	if err != nil {
		return err
	}
	return m.Up()
}

type objectStore interface {
	ledger.FileStore
	report.ExportStore
}

// newObjectStorage returns S3 storage when configured, otherwise files are
// kept in memory for the lifetime of the process
func newObjectStorage(ctx context.Context, cfg *config.StorageConfig, log *zap.Logger) (objectStore, error) {
	if !cfg.Enabled {
		log.Info("Object storage disabled, keeping files in memory")
		return storage.NewMemoryObjectStorage(), nil
	}
	s3, err := storage.NewS3ObjectStorage(cfg, storage.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if err := s3.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return s3, nil
}
