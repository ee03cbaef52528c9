package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skycab/ridepool/internal/pkg/config"
	"github.com/skycab/ridepool/internal/pkg/database"
	"github.com/skycab/ridepool/internal/pkg/health"
	"github.com/skycab/ridepool/internal/pkg/locking"
	"github.com/skycab/ridepool/internal/pkg/logger"
	"github.com/skycab/ridepool/internal/pkg/middleware"
	"github.com/skycab/ridepool/internal/pkg/nats"
	"github.com/skycab/ridepool/internal/pkg/server"
	"github.com/skycab/ridepool/internal/pkg/websocket"

	cabshandler "github.com/skycab/ridepool/services/cabs/handler/http"
	cabsrepository "github.com/skycab/ridepool/services/cabs/repository"
	cabsusecase "github.com/skycab/ridepool/services/cabs/usecase"
	dispatchgateway "github.com/skycab/ridepool/services/dispatch/gateway"
	dispatchhandler "github.com/skycab/ridepool/services/dispatch/handler/http"
	dispatchrepository "github.com/skycab/ridepool/services/dispatch/repository"
	"github.com/skycab/ridepool/services/dispatch/scheduler"
	dispatchusecase "github.com/skycab/ridepool/services/dispatch/usecase"
	poolinggateway "github.com/skycab/ridepool/services/pooling/gateway"
	poolinghandler "github.com/skycab/ridepool/services/pooling/handler/http"
	poolingrepository "github.com/skycab/ridepool/services/pooling/repository"
	poolingusecase "github.com/skycab/ridepool/services/pooling/usecase"
	pricinghandler "github.com/skycab/ridepool/services/pricing/handler/http"
	pricingrepository "github.com/skycab/ridepool/services/pricing/repository"
	pricingusecase "github.com/skycab/ridepool/services/pricing/usecase"
)

func main() {
	appName := "ridepool"
	configPath := "config/ridepool.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	db := postgresClient.GetDB()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	if !natsClient.IsConnected() {
		zapLogger.Fatal("NATS client not connected")
	}

	// Initialize WebSocket manager and distributed lock manager
	wsManager := websocket.NewManager(configs.JWT)
	lockManager := locking.NewRedisManager(redisClient)

	// Initialize repositories
	pricingRepo := pricingrepository.NewPricingRepository(configs, db, redisClient)
	poolingRepo := poolingrepository.NewPoolingRepository(configs, db, redisClient)
	cabRepo := cabsrepository.NewCabRepository(configs, db, redisClient)
	dispatchRepo := dispatchrepository.NewDispatchRepository(configs, db, redisClient)

	// Initialize gateways
	poolingGW := poolinggateway.NewPoolingGW(natsClient, wsManager)
	dispatchGW := dispatchgateway.NewDispatchGW(natsClient, wsManager)

	// Initialize usecases
	pricingUC := pricingusecase.NewPricingUC(configs, pricingRepo)
	poolingUC := poolingusecase.NewPoolingUC(configs, poolingRepo, cabRepo, pricingUC, poolingGW, lockManager)
	cabUC := cabsusecase.NewCabUC(configs, cabRepo)
	dispatchUC := dispatchusecase.NewDispatchUC(configs, dispatchRepo, cabRepo, pricingUC, dispatchGW, lockManager)

	// Startup recovery gates the dispatch loop: no sweeps run until stale
	// state left by a previous crash has been resolved.
	dispatchScheduler := scheduler.New(configs, dispatchUC)
	if err := dispatchScheduler.Start(context.Background()); err != nil {
		zapLogger.Error("Startup recovery failed, dispatch scheduler disabled", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize enhanced health service
	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	poolinghandler.NewPoolingHandler(poolingUC).RegisterRoutes(e)
	pricinghandler.NewPricingHandler(pricingUC).RegisterRoutes(e)
	cabshandler.NewCabHandler(cabUC).RegisterRoutes(e)
	dispatchhandler.NewDispatchHandler(dispatchUC).RegisterRoutes(e)

	// Passenger and driver notification stream
	e.GET("/ws", wsManager.HandleConnection)

	// Register cleanup in dependency order
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		dispatchScheduler.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Serve until interrupted, then drain and release everything
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(ctx)

	zapLogger.Info("Server exiting gracefully")
}
