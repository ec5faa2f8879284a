package handler

import (
	"context"
	"time"

	"neuro-site/internal/domain"
	"neuro-site/internal/dto"
	"neuro-site/internal/logger"
	"neuro-site/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports liveness. Optional dependencies only degrade the status.
type HealthHandler struct {
	catalog service.CatalogService
	cache   domain.Cache
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler accepts nil cache and db when they are not configured.
func NewHealthHandler(catalog service.CatalogService, cache domain.Cache, db Pinger) *HealthHandler {
	return &HealthHandler{catalog: catalog, cache: cache, db: db, timeout: 2 * time.Second}
}

// GetHealth godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	resp := dto.HealthResponse{
		Status:       "ok",
		Catalog:      h.catalog.Status().State,
		Dependencies: map[string]string{},
	}

	if h.cache != nil {
		resp.Dependencies["redis"] = h.check(ctx, "redis", h.cache.Ping)
	}
	if h.db != nil {
		resp.Dependencies["database"] = h.check(ctx, "database", h.db.PingContext)
	}
	for _, state := range resp.Dependencies {
		if state != "ok" {
			resp.Status = "degraded"
		}
	}
	return c.JSON(resp)
}

func (h *HealthHandler) check(ctx context.Context, name string, ping func(context.Context) error) string {
	if err := ping(ctx); err != nil {
		logger.Get().Warn("Health check dependency failed", zap.String("dependency", name), zap.Error(err))
		return "down"
	}
	return "ok"
}
