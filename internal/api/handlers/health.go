package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/starter-poem-api/internal/config"
	"github.com/gin-gonic/gin"
)

// KeyResolver reports which credential a model needs
type KeyResolver interface {
	APIKeyFor(model string) (setting, key string)
}

type HealthHandler struct {
	cfg  *config.Config
	keys KeyResolver
}

func NewHealthHandler(cfg *config.Config, keys KeyResolver) *HealthHandler {
	return &HealthHandler{cfg: cfg, keys: keys}
}

// HealthCheck returns the health status of the API. A missing provider key
// does not make the service unhealthy; the poem endpoint reports it per request.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	setting, key := h.keys.APIKeyFor(h.cfg.PoemModel)

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"environment": h.cfg.Environment,
		"provider": gin.H{
			"model":      h.cfg.PoemModel,
			"setting":    setting,
			"configured": key != "",
		},
	})
}
