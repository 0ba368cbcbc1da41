package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appRouter "tradeRouter/app/echo-server/router"
	"tradeRouter/business/router"
	"tradeRouter/domain"
	"tradeRouter/internal/middleware"
	psqlRepo "tradeRouter/internal/repository/postgres"
	redisRepo "tradeRouter/internal/repository/redis"
	"tradeRouter/internal/rest"
	"tradeRouter/pkg/config"
	"tradeRouter/pkg/database"
	redisdb "tradeRouter/pkg/database/redis"
	"tradeRouter/pkg/logger"
	"tradeRouter/pkg/metrics"
	"tradeRouter/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting strategy router", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	// Optional durable collaborators: the router core runs without either.
	var eventRepo router.RewardEventRepository
	var cfgRepo router.ConfigRepository
	if cfg.Database.Enabled {
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		if err := db.AutoMigrate(&domain.RewardEvent{}, &domain.RouterConfig{}); err != nil {
			logger.Fatal("Failed to migrate schema", "error", err)
		}
		eventRepo = psqlRepo.NewRewardEventRepository(db)
		cfgRepo = psqlRepo.NewRouterConfigRepository(db)
		logger.Info("Database connected successfully")
	}

	var snapshotCache rest.SnapshotCache
	if cfg.Redis.Enabled {
		client, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer func() { _ = redisdb.CloseRedisClient(client) }()
		snapshotCache = redisRepo.NewSnapshotCache(client, cfg.Router.SnapshotCacheTTL)
		logger.Info("Redis connected successfully")
	}

	// Router config: defaults, then persisted overrides.
	routerCfg := router.DefaultConfig()
	if cfgRepo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if stored, ok, err := cfgRepo.GetConfig(ctx); err != nil {
			logger.Error("Failed to load persisted router config", "error", err)
		} else if ok {
			routerCfg = routerCfg.WithOverrides(stored)
		}
		cancel()
	}

	routerService, err := router.NewRouterService(cfg.Router.Policies, routerCfg, eventRepo, nil)
	if err != nil {
		logger.Fatal("Failed to build router service", "error", err)
	}
	logger.Info("Policy registry loaded", "policies", cfg.Router.Policies)

	// Init handler
	routerHandler := rest.NewRouterHandler(routerService, snapshotCache)
	adminHandler := rest.NewRouterAdminHandler(routerService, cfgRepo)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	appRouter.SetRouterRoutes(api, routerHandler)
	appRouter.SetRouterAdminRoutes(api, adminHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
	logger.Sync()
}
