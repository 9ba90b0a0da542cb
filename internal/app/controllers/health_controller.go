package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"device-inventory-service/internal/domain/services/container"
	"device-inventory-service/internal/error/code"
	"device-inventory-service/internal/error/response"
	"device-inventory-service/internal/infrastructure/database"
	Logger "device-inventory-service/pkg/logger"
)

// HealthCheckController serves liveness and readiness probes
type HealthCheckController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthCheckController creates a health check controller
func NewHealthCheckController(ctx *gin.Context, container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler that dispatches to a health controller method
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthCheckController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// Ping is the liveness endpoint
// @Summary      Ping
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func (h *HealthCheckController) Ping() {
	h.Ctx.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status pings the database and reports pool statistics
// @Summary      Health status
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  ErrorResponse
// @Router       /health [get]
func (h *HealthCheckController) Status() {
	db := h.Container.GetDB()
	if err := database.HealthCheck(h.Ctx.Request.Context(), db); err != nil {
		Logger.Warning("health check failed: %v", err)
		response.FailWithMessage(h.Ctx, code.ErrUnavailable, "database unavailable: "+err.Error(), nil)
		return
	}

	stats, err := database.Stats(db)
	if err != nil {
		stats = map[string]interface{}{"error": err.Error()}
	}
	h.Ctx.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": stats,
	})
}
