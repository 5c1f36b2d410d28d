package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Conceptual-Machines/starter-poem-api/internal/api"
	"github.com/Conceptual-Machines/starter-poem-api/internal/config"
	"github.com/Conceptual-Machines/starter-poem-api/internal/llm"
	"github.com/Conceptual-Machines/starter-poem-api/internal/metrics"
	"github.com/Conceptual-Machines/starter-poem-api/internal/observability"
	"github.com/Conceptual-Machines/starter-poem-api/internal/services"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sentryFlushTimeout = 2 * time.Second
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "starter-poem-api@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			EnableLogs:       true,
			Debug:            !cfg.IsProduction(),
			BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
				if event.Request != nil {
					event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
				}
				return event
			},
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	providers := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.GeminiAPIKey)
	if setting, key := providers.APIKeyFor(cfg.PoemModel); key == "" {
		// not fatal: the endpoint answers with a configuration error
		log.Printf("⚠️  %s not set, poem generation will fail until it is configured", setting)
	}

	sentryMetrics := metrics.NewSentryMetrics()
	recorder := metrics.Fanout{
		sentryMetrics,
		metrics.NewClient(ctx, cfg.Environment, cfg.CloudWatchEnabled),
	}

	langfuse := observability.NewLangfuse(ctx, cfg)

	poemService := services.NewPoemService(cfg, providers, recorder, langfuse)

	router := api.SetupRouter(cfg, api.Dependencies{
		Poems:      poemService,
		Keys:       providers,
		APIMetrics: sentryMetrics,
	}, GetVersion())

	log.Printf("🚀 Starting server on port %s (model: %s)", cfg.Port, cfg.PoemModel)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string)
	sensitiveKeys := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-api-key":     true,
	}

	for k, v := range headers {
		if sensitiveKeys[strings.ToLower(k)] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
