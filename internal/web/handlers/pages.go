package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/starter-poem-api/internal/card"
	"github.com/Conceptual-Machines/starter-poem-api/internal/logger"
	"github.com/Conceptual-Machines/starter-poem-api/internal/web/templates"
	"github.com/gin-gonic/gin"
)

type WebHandler struct{}

func NewWebHandler() *WebHandler {
	return &WebHandler{}
}

// Home renders the poem card in its initial state; ?style= preselects a
// style. Regeneration happens in the browser against POST /api/poem.
func (h *WebHandler) Home(c *gin.Context) {
	pc := card.New(nil)
	if styleID := c.Query("style"); styleID != "" {
		// unknown ids keep the default selection
		_ = pc.Select(styleID)
	}
	view := pc.View()

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	component := templates.PoemCardPage(view)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		logger.Error("Failed to render card page", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render template"})
	}
}
