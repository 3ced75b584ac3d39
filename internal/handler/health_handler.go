package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thesolution-at/alz-backend/internal/config"
	"github.com/thesolution-at/alz-backend/pkg/cache"
)

// HealthHandler reports process liveness and dependency configuration
type HealthHandler struct {
	cfg   *config.Config
	cache cache.Service
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(cfg *config.Config, cacheSvc cache.Service) *HealthHandler {
	return &HealthHandler{cfg: cfg, cache: cacheSvc}
}

// Health godoc
// @Summary      Health-Check
// @Description  Liveness-Probe mit Konfigurationsstatus der Abhängigkeiten
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /healthz [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"contentful": h.cfg.Contentful.Configured(),
		"management": h.cfg.Contentful.ManagementConfigured(),
		"cache":      h.cache.IsAvailable(),
	})
}
