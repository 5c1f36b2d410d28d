package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Conceptual-Machines/starter-poem-api/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		configured bool
	}{
		{"configured", "sk-test", true},
		{"missing key", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Environment: "test", PoemModel: "gpt-5.2"}
			handler := NewHealthHandler(cfg, &stubProviders{apiKey: tt.apiKey})

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.GET("/health", handler.HealthCheck)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, http.StatusOK, w.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "healthy", resp["status"])
			provider := resp["provider"].(map[string]any)
			assert.Equal(t, tt.configured, provider["configured"])
			assert.Equal(t, "OPENAI_API_KEY", provider["setting"])
		})
	}
}

func TestGetMetrics(t *testing.T) {
	cfg := &config.Config{PoemModel: "gpt-5.2", PoemReasoningEffort: "none", PoemMaxOutputTokens: 1024}
	handler := NewMetricsHandler(cfg, "v1.2.3")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/metrics", handler.GetMetrics)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp MetricsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "v1.2.3", resp.Version)
	assert.Equal(t, "gpt-5.2", resp.Poem.Model)
	assert.Equal(t, int64(1024), resp.Poem.MaxOutputTokens)
	assert.Equal(t, "none", resp.Poem.ReasoningEffort)
	assert.Equal(t, "free-verse", resp.Poem.DefaultStyle)
	assert.Equal(t, []string{"free-verse", "haiku", "sonnet", "limerick", "beat", "romantic"}, resp.Poem.Styles)
	assert.Equal(t, "healthy", resp.Status)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, int64(0))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "system")
}
