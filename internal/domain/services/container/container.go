package container

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"device-inventory-service/internal/domain/services"
	"device-inventory-service/internal/infrastructure/config"
	Logger "device-inventory-service/pkg/logger"
)

// ServiceContainer builds every service once and hands them to controllers
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	cacheService    services.InterfaceCacheService
	deviceService   services.InterfaceDeviceService
	employeeService services.InterfaceEmployeeService

	mu sync.RWMutex
}

// NewServiceContainer creates the service container. redisClient may be nil,
// in which case reads are not cached.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("configuration is nil")
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			Logger.Warning("redis ping failed: %v, read cache disabled", err)
			redisClient = nil
		}
	}

	c := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	c.initializeServices()
	return c
}

func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cacheService = services.NewCacheService(c.redis, c.config.CacheTTL)
	c.deviceService = services.NewDeviceService(c.db, c.config, c.cacheService)
	c.employeeService = services.NewEmployeeService(c.db, c.config, c.cacheService)
}

// GetService returns the named service
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "cache":
		return c.cacheService
	case "device":
		return c.deviceService
	case "employee":
		return c.employeeService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig returns the configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}
