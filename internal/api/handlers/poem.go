package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Conceptual-Machines/starter-poem-api/internal/logger"
	"github.com/Conceptual-Machines/starter-poem-api/internal/poem"
	"github.com/Conceptual-Machines/starter-poem-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PoemGenerator is the part of services.PoemService the handler needs
type PoemGenerator interface {
	Generate(ctx context.Context, styleID, requestID string) (*services.PoemGeneration, error)
}

type PoemHandler struct {
	generator PoemGenerator
	// exposeDebug attaches diagnostic details to failure responses
	exposeDebug bool
}

// NewPoemHandler creates the poem handler. exposeDebug should be false in production.
func NewPoemHandler(generator PoemGenerator, exposeDebug bool) *PoemHandler {
	return &PoemHandler{
		generator:   generator,
		exposeDebug: exposeDebug,
	}
}

type PoemRequest struct {
	StyleID string `json:"styleId"`
}

type PoemResponse struct {
	Poem string `json:"poem"`
}

// Generate handles POST /api/poem
func (h *PoemHandler) Generate(c *gin.Context) {
	requestID := c.GetString("request_id")
	if requestID == "" {
		requestID = uuid.New().String()
	}

	req := parsePoemRequest(c)

	gen, err := h.generator.Generate(c.Request.Context(), req.StyleID, requestID)
	if err != nil {
		h.respondError(c, gen, err)
		return
	}

	c.JSON(http.StatusOK, PoemResponse{Poem: gen.Poem})
}

// parsePoemRequest never fails; anything unreadable means "default style".
// The body must hold exactly one JSON value.
func parsePoemRequest(c *gin.Context) PoemRequest {
	if c.Request.Body == nil {
		return PoemRequest{}
	}

	var req PoemRequest
	err := decodeSingleJSON(c.Request.Body, &req)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			logger.Warn("Could not parse request body, using default style", logger.WithContext(c).Merge(logger.Fields{
				"error": (&poem.MalformedRequestError{Err: err}).Error(),
			}))
		}
		return PoemRequest{}
	}
	return req
}

var errTrailingData = errors.New("unexpected data after JSON value")

func decodeSingleJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func (h *PoemHandler) respondError(c *gin.Context, gen *services.PoemGeneration, err error) {
	body := gin.H{"error": err.Error()}

	var cfgErr *poem.ConfigurationError
	var providerErr *poem.ProviderError
	switch {
	case errors.As(err, &cfgErr):
		// nothing was attempted, so there is nothing to debug
	case errors.As(err, &providerErr) && h.exposeDebug && gen != nil:
		body["debug"] = buildDebug(gen, providerErr)
	case h.exposeDebug && gen != nil:
		body["debug"] = gin.H{
			"requestId":       gen.RequestID,
			"routeDurationMs": gen.Elapsed().Milliseconds(),
		}
	}

	c.JSON(http.StatusInternalServerError, body)
}

func buildDebug(gen *services.PoemGeneration, err *poem.ProviderError) gin.H {
	if err.EmptyOutput {
		return gin.H{
			"requestId":     gen.RequestID,
			"promptStats":   gen.PromptStats,
			"responseStats": gen.ResponseStats,
		}
	}
	return gin.H{
		"requestId":       gen.RequestID,
		"routeDurationMs": gen.Elapsed().Milliseconds(),
	}
}

// ListStyles handles GET /api/poem/styles
func (h *PoemHandler) ListStyles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"styles":  poem.Styles(),
		"default": poem.DefaultStyle().ID,
	})
}
