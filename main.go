package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	repoMongo "academy-dashboard/app/repository/mongodb"
	"academy-dashboard/config"
	"academy-dashboard/database"
	FiberApp "academy-dashboard/fiber"
	"academy-dashboard/logging"
	"academy-dashboard/route"
)

func main() {

	// 1. Load .env file and configuration
	config.LoadEnv()
	cfg := config.New()

	// 2. Logger
	logger, err := logging.NewLogger(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	// 3. Connect to MongoDB
	if err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDBName); err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}

	// 4. Setup Fiber app and routes
	app := FiberApp.SetupFiber(logger)
	dashboardService := route.SetupDashboardRoutes(app, database.MongoDB, logger)

	// 5. Optionally seed demo data into an empty store
	if cfg.SeedDemoData {
		seedCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		recordRepo := repoMongo.NewRecordRepository(database.MongoDB)
		if err := database.SeedDemoData(seedCtx, recordRepo, logger); err != nil {
			logger.Warn("demo seed failed", zap.Error(err))
		}
		cancel()
	}

	// 6. One-shot dashboard load, concurrent with serving
	go dashboardService.LoadAll(context.Background())

	// 7. Start server
	go func() {
		logger.Info("server running", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server stopped", zap.Error(err))
		}
	}()

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	if err := database.DisconnectMongo(ctx); err != nil {
		logger.Error("mongo disconnect failed", zap.Error(err))
	}
}
