package api

import (
	"github.com/Conceptual-Machines/starter-poem-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/starter-poem-api/internal/api/middleware"
	"github.com/Conceptual-Machines/starter-poem-api/internal/config"
	"github.com/Conceptual-Machines/starter-poem-api/internal/metrics"
	webhandlers "github.com/Conceptual-Machines/starter-poem-api/internal/web/handlers"
	"github.com/gin-gonic/gin"
)

// Dependencies are the services the routes are wired to
type Dependencies struct {
	Poems      handlers.PoemGenerator
	Keys       handlers.KeyResolver
	APIMetrics *metrics.SentryMetrics
}

func SetupRouter(cfg *config.Config, deps Dependencies, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(deps.APIMetrics))

	// CORS middleware
	if corsMiddleware := apimiddleware.CORS(cfg.CORSAllowedOrigins); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	// Health check
	healthHandler := handlers.NewHealthHandler(cfg, deps.Keys)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(cfg, version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Card page
	webHandler := webhandlers.NewWebHandler()
	router.GET("/", webHandler.Home)

	poemHandler := handlers.NewPoemHandler(deps.Poems, !cfg.IsProduction())
	poems := router.Group("/api/poem")
	{
		poems.POST("", poemHandler.Generate)
		poems.GET("/styles", poemHandler.ListStyles)
	}

	return router
}
