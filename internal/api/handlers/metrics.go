package handlers

import (
	"net/http"
	"time"

	"github.com/Conceptual-Machines/starter-poem-api/internal/config"
	"github.com/Conceptual-Machines/starter-poem-api/internal/poem"
	"github.com/gin-gonic/gin"
)

// MetricsHandler reports the running poem configuration
type MetricsHandler struct {
	startTime time.Time
	version   string
	cfg       *config.Config
}

func NewMetricsHandler(cfg *config.Config, version string) *MetricsHandler {
	return &MetricsHandler{
		startTime: time.Now(),
		version:   version,
		cfg:       cfg,
	}
}

type MetricsResponse struct {
	Status        string      `json:"status"`
	Version       string      `json:"version"`
	StartTime     string      `json:"start_time"`
	UptimeSeconds int64       `json:"uptime_seconds"`
	Poem          PoemMetrics `json:"poem"`
}

type PoemMetrics struct {
	Model           string   `json:"model"`
	ReasoningEffort string   `json:"reasoning_effort"`
	MaxOutputTokens int64    `json:"max_output_tokens"`
	DefaultStyle    string   `json:"default_style"`
	Styles          []string `json:"styles"`
}

func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	styles := poem.Styles()
	ids := make([]string, 0, len(styles))
	for _, style := range styles {
		ids = append(ids, style.ID)
	}

	c.JSON(http.StatusOK, MetricsResponse{
		Status:        "healthy",
		Version:       h.version,
		StartTime:     h.startTime.UTC().Format(time.RFC3339),
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Poem: PoemMetrics{
			Model:           h.cfg.PoemModel,
			ReasoningEffort: h.cfg.PoemReasoningEffort,
			MaxOutputTokens: h.cfg.PoemMaxOutputTokens,
			DefaultStyle:    poem.DefaultStyle().ID,
			Styles:          ids,
		},
	})
}
