package config

import (
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	environmentProduction = "production"

	defaultPoemModel           = "gpt-5.2"
	defaultPoemMaxOutputTokens = 1024
	// providers take the limit as a 32-bit value
	maxPoemMaxOutputTokens = math.MaxInt32
	defaultPoemReasoningEffort = "none"
)

// Config holds the application configuration
// The service is stateless: provider credentials and observability keys only
type Config struct {
	// Environment
	Environment string
	Port        string

	// Origins allowed to call the API from a browser; empty disables CORS
	CORSAllowedOrigins []string

	// LLM API Keys
	OpenAIAPIKey  string // OpenAI API key for GPT models
	OpenAIBaseURL string // Optional override (proxies, local fakes)
	GeminiAPIKey  string // Google Gemini API key

	// Poem generation
	PoemModel           string
	PoemMaxOutputTokens int64
	PoemReasoningEffort string

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse
	CloudWatchEnabled bool   // Push generation metrics to CloudWatch (production only)
}

func Load() *Config {
	return &Config{
		Environment:         getEnv("ENVIRONMENT", "development"),
		Port:                getEnv("PORT", "8080"),
		CORSAllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS"),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:       getEnv("OPENAI_BASE_URL", ""),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		PoemModel:           getEnv("POEM_MODEL", defaultPoemModel),
		PoemMaxOutputTokens: getEnvInt("POEM_MAX_OUTPUT_TOKENS", defaultPoemMaxOutputTokens, maxPoemMaxOutputTokens),
		PoemReasoningEffort: getEnv("POEM_REASONING_EFFORT", defaultPoemReasoningEffort),
		SentryDSN:           getEnv("SENTRY_DSN", ""),
		LangfusePublicKey:   getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey:   getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:        getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:     getEnv("LANGFUSE_ENABLED", "false") == "true",
		CloudWatchEnabled:   getEnv("CLOUDWATCH_ENABLED", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads a positive integer capped at maxValue. Unset, unparsable or
// non-positive values give defaultValue.
func getEnvInt(key string, defaultValue, maxValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return min(n, maxValue)
}

// getEnvList splits a comma separated value, dropping empty entries
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// IsProduction reports whether debug details must be withheld from responses
func (c *Config) IsProduction() bool {
	return c.Environment == environmentProduction
}
