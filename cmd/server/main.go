package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/fruitsales/backend/internal/application/identity"
	importapp "github.com/fruitsales/backend/internal/application/import"
	masterdataapp "github.com/fruitsales/backend/internal/application/masterdata"
	reportapp "github.com/fruitsales/backend/internal/application/report"
	salesapp "github.com/fruitsales/backend/internal/application/sales"
	"github.com/fruitsales/backend/internal/infrastructure/auth"
	"github.com/fruitsales/backend/internal/infrastructure/config"
	"github.com/fruitsales/backend/internal/infrastructure/logger"
	"github.com/fruitsales/backend/internal/infrastructure/persistence"
	"github.com/fruitsales/backend/internal/interfaces/http/handler"
	"github.com/fruitsales/backend/internal/interfaces/http/middleware"
	"github.com/fruitsales/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Fruit Sales Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	fruitRepo := persistence.NewGormFruitRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	salesReportRepo := persistence.NewGormSalesReportRepository(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	fruitService := masterdataapp.NewFruitService(fruitRepo)
	salesService := salesapp.NewSalesService(saleRepo, fruitRepo)
	importService := importapp.NewSalesImportService(fruitRepo, saleRepo, log)
	statisticsService := reportapp.NewStatisticsService(salesReportRepo, time.Now)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)

	// Handlers
	fruitHandler := handler.NewFruitHandler(fruitService)
	salesHandler := handler.NewSalesHandler(salesService, importService, cfg.Import.MaxUploadBytes)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)
	authHandler := handler.NewAuthHandler(authService)
	systemHandler := handler.NewSystemHandler(db)

	// Gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.GET("/me", authHandler.Me)

	masterRoutes := router.NewDomainGroup("masterdata", "/masterdata")
	masterRoutes.POST("/fruits", fruitHandler.Create)
	masterRoutes.GET("/fruits", fruitHandler.List)
	masterRoutes.GET("/fruits/:id", fruitHandler.GetByID)
	masterRoutes.PUT("/fruits/:id", fruitHandler.Update)
	masterRoutes.DELETE("/fruits/:id", fruitHandler.Delete)

	salesRoutes := router.NewDomainGroup("sales", "/sales")
	salesRoutes.POST("/records", salesHandler.Create)
	salesRoutes.GET("/records", salesHandler.List)
	salesRoutes.GET("/records/:id", salesHandler.GetByID)
	salesRoutes.PUT("/records/:id", salesHandler.Update)
	salesRoutes.DELETE("/records/:id", salesHandler.Delete)
	salesRoutes.POST("/import", salesHandler.Import)
	salesRoutes.GET("/statistics", statisticsHandler.Summary)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/info", systemHandler.Info)

	r.Register(authRoutes).
		Register(masterRoutes).
		Register(salesRoutes).
		Register(systemRoutes)
	r.Setup()

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
