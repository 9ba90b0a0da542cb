package routes

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	_ "device-inventory-service/docs"
	"device-inventory-service/internal/app/controllers"
	"device-inventory-service/internal/app/middleware"
	"device-inventory-service/internal/domain/services/container"
	"device-inventory-service/internal/infrastructure/config"
)

var tagNameOnce sync.Once

// SetupRouter initializes the gin engine with middleware and every API route
func SetupRouter(container *container.ServiceContainer, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	registerJSONFieldNames()

	r := gin.New()
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.RequestID())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(cors.New(corsConfig(cfg.CORSAllowOrigins)))
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	registerRoutes(r, container, cfg)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	cfg *config.Config,
) {
	api := r.Group("/api")

	// probes stay outside the rate limiter
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "status"))

	limited := api.Group("")
	limited.Use(middleware.IPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	devicesGroup := limited.Group("/devices")
	{
		devicesGroup.GET("", controllers.HandleDeviceFunc(container, "getDevices"))
		devicesGroup.GET("/export", controllers.HandleDeviceFunc(container, "exportDevices"))
		devicesGroup.GET("/:id", controllers.HandleDeviceFunc(container, "getDevice"))
		devicesGroup.POST("", controllers.HandleDeviceFunc(container, "createDevice"))
		devicesGroup.PUT("/:id", controllers.HandleDeviceFunc(container, "updateDevice"))
		devicesGroup.DELETE("/:id", controllers.HandleDeviceFunc(container, "deleteDevice"))
		devicesGroup.GET("/:id/assignments", controllers.HandleDeviceFunc(container, "getDeviceAssignments"))
	}

	limited.GET("/device-types", controllers.HandleDeviceFunc(container, "getDeviceTypes"))

	employeeGroup := limited.Group("/employees")
	{
		employeeGroup.GET("", controllers.HandleEmployeeFunc(container, "getEmployees"))
		employeeGroup.GET("/:id", controllers.HandleEmployeeFunc(container, "getEmployee"))
		employeeGroup.GET("/:id/devices", controllers.HandleEmployeeFunc(container, "getEmployeeDevices"))
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Location", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range origins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// registerJSONFieldNames makes validation errors report json field names
func registerJSONFieldNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
