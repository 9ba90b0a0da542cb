// @title           Device Inventory Service API
// @version         1.0
// @description     Devices, employees and device assignments

// @BasePath  /api
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"device-inventory-service/internal/app/routes"
	"device-inventory-service/internal/domain/services"
	"device-inventory-service/internal/domain/services/container"
	"device-inventory-service/internal/infrastructure/config"
	"device-inventory-service/internal/infrastructure/database"
	Logger "device-inventory-service/pkg/logger"
)

func main() {
	// variables may also come from the environment directly
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := Logger.SetupLogger(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logger: %v\n", err)
		os.Exit(1)
	}
	Logger.Replace(logger)
	defer Logger.Sync()

	if envErr != nil {
		Logger.Warning("no .env file loaded: %v", envErr)
	}

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		logger.Fatal("failed to create database connection pool", zap.Error(err))
	}
	defer pool.Close()
	db := pool.GetDB()

	if err := database.Migrate(db, cfg.DBMigrationMode); err != nil {
		logger.Fatal("database migration failed", zap.String("mode", cfg.DBMigrationMode), zap.Error(err))
	}
	if err := database.EnsureDeviceTypes(db, cfg.DefaultDeviceTypes); err != nil {
		logger.Fatal("failed to seed device types", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.RedisEnabled {
		redisClient = services.NewRedisClient(cfg)
		defer redisClient.Close()
	}

	gin.SetMode(cfg.GinMode)
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	r := routes.SetupRouter(serviceContainer, cfg, logger)

	printSystemInfo(pool)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		Logger.Info("server listening on http://0.0.0.0:%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	Logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		Logger.Error("server forced to shut down: %v", err)
	}
}

// printSystemInfo logs pool and runtime information at startup
func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		Logger.L().Info("database pool", zap.Any("stats", stats))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	Logger.L().Info("runtime",
		zap.Int("cpus", runtime.NumCPU()),
		zap.Int("goroutines", runtime.NumGoroutine()),
		zap.Uint64("alloc_mib", m.Alloc/1024/1024),
		zap.Uint64("sys_mib", m.Sys/1024/1024),
	)
}
