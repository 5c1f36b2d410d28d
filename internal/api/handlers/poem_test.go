package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Conceptual-Machines/starter-poem-api/internal/config"
	"github.com/Conceptual-Machines/starter-poem-api/internal/llm"
	"github.com/Conceptual-Machines/starter-poem-api/internal/poem"
	"github.com/Conceptual-Machines/starter-poem-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	calls    int
	requests []*llm.GenerationRequest
	resp     *llm.GenerationResponse
	err      error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Generate(_ context.Context, request *llm.GenerationRequest) (*llm.GenerationResponse, error) {
	s.calls++
	s.requests = append(s.requests, request)
	return s.resp, s.err
}

type stubProviders struct {
	apiKey   string
	provider *stubProvider
}

func (s *stubProviders) APIKeyFor(string) (string, string) { return "OPENAI_API_KEY", s.apiKey }

func (s *stubProviders) GetProvider(context.Context, string) (llm.Provider, error) {
	return s.provider, nil
}

func setupPoemTestRouter(environment string, providers *stubProviders) *gin.Engine {
	cfg := &config.Config{
		Environment:         environment,
		PoemModel:           "gpt-5.2",
		PoemMaxOutputTokens: 1024,
		PoemReasoningEffort: "none",
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewPoemHandler(services.NewPoemService(cfg, providers, nil, nil), !cfg.IsProduction())
	router.POST("/api/poem", handler.Generate)
	router.GET("/api/poem/styles", handler.ListStyles)
	return router
}

func postPoem(t *testing.T, router *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/poem", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestPoemHandler_Success(t *testing.T) {
	provider := &stubProvider{resp: &llm.GenerationResponse{
		Status:     llm.StatusCompleted,
		OutputText: "  Old pond / a frog leaps in / sound of water\n",
	}}
	router := setupPoemTestRouter("development", &stubProviders{apiKey: "sk-test", provider: provider})

	w, resp := postPoem(t, router, `{"styleId":"haiku"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Old pond / a frog leaps in / sound of water", resp["poem"])
	assert.NotContains(t, resp, "error")
	require.Len(t, provider.requests, 1)
	assert.Contains(t, provider.requests[0].Instructions, poem.ResolveStyle("haiku").Instruction)
}

func TestPoemHandler_IncompleteWithTextIsSuccess(t *testing.T) {
	provider := &stubProvider{resp: &llm.GenerationResponse{
		Status:           llm.StatusIncomplete,
		IncompleteReason: "max_output_tokens",
		OutputText:       "A blank canvas waits",
	}}
	router := setupPoemTestRouter("production", &stubProviders{apiKey: "sk-test", provider: provider})

	w, resp := postPoem(t, router, `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A blank canvas waits", resp["poem"])
}

func TestPoemHandler_MalformedBodyUsesDefaultStyle(t *testing.T) {
	bodies := []string{
		"",
		"not json",
		`{"styleId": 42}`,
		`{"styleId":"unknown"}`,
		`{"styleId":"haiku"} trailing`,
		`{"styleId":"haiku"}{"styleId":"sonnet"}`,
		`{"styleId":"haiku"}}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			provider := &stubProvider{resp: &llm.GenerationResponse{Status: llm.StatusCompleted, OutputText: "verse"}}
			router := setupPoemTestRouter("development", &stubProviders{apiKey: "sk-test", provider: provider})

			w, _ := postPoem(t, router, body)

			assert.Equal(t, http.StatusOK, w.Code)
			require.Len(t, provider.requests, 1)
			assert.Contains(t, provider.requests[0].Instructions, poem.DefaultStyle().Instruction)
		})
	}
}

func TestPoemHandler_TrailingWhitespaceIsAccepted(t *testing.T) {
	provider := &stubProvider{resp: &llm.GenerationResponse{Status: llm.StatusCompleted, OutputText: "verse"}}
	router := setupPoemTestRouter("development", &stubProviders{apiKey: "sk-test", provider: provider})

	w, _ := postPoem(t, router, "{\"styleId\":\"haiku\"}\n  ")

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, provider.requests, 1)
	assert.Contains(t, provider.requests[0].Instructions, poem.ResolveStyle("haiku").Instruction)
}

func TestPoemHandler_MissingAPIKey(t *testing.T) {
	for _, environment := range []string{"development", "production"} {
		t.Run(environment, func(t *testing.T) {
			provider := &stubProvider{}
			router := setupPoemTestRouter(environment, &stubProviders{apiKey: "", provider: provider})

			w, resp := postPoem(t, router, `{"styleId":"sonnet"}`)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.True(t, strings.HasPrefix(resp["error"].(string), "OPENAI_API_KEY is not set."))
			assert.NotContains(t, resp, "debug")
			assert.Equal(t, 0, provider.calls)
		})
	}
}

func TestPoemHandler_EmptyOutputDebugByEnvironment(t *testing.T) {
	tests := []struct {
		environment string
		wantDebug   bool
	}{
		{"development", true},
		{"test", true},
		{"production", false},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			provider := &stubProvider{resp: &llm.GenerationResponse{
				Status:           llm.StatusIncomplete,
				IncompleteReason: "max_output_tokens",
				Usage:            llm.Usage{InputTokens: 180, OutputTokens: 1024, TotalTokens: 1204},
			}}
			router := setupPoemTestRouter(tt.environment, &stubProviders{apiKey: "sk-test", provider: provider})

			w, resp := postPoem(t, router, `{"styleId":"beat"}`)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, "Poem generation failed: Model response status: incomplete", resp["error"])

			if !tt.wantDebug {
				assert.NotContains(t, resp, "debug")
				return
			}
			debug, ok := resp["debug"].(map[string]any)
			require.True(t, ok, "debug should be an object")
			assert.NotEmpty(t, debug["requestId"])

			promptStats := debug["promptStats"].(map[string]any)
			assert.Equal(t, "beat", promptStats["selectedStyleId"])
			assert.Equal(t, "gpt-5.2", promptStats["model"])

			responseStats := debug["responseStats"].(map[string]any)
			assert.Equal(t, "incomplete", responseStats["status"])
			assert.Equal(t, "max_output_tokens", responseStats["incompleteReason"])
			assert.Equal(t, float64(1024), responseStats["outputTokens"])
		})
	}
}

func TestPoemHandler_TransportErrorDebugByEnvironment(t *testing.T) {
	for _, environment := range []string{"development", "production"} {
		t.Run(environment, func(t *testing.T) {
			provider := &stubProvider{err: errors.New("openai request failed: connection reset by peer")}
			router := setupPoemTestRouter(environment, &stubProviders{apiKey: "sk-test", provider: provider})

			w, resp := postPoem(t, router, `{"styleId":"limerick"}`)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, "openai request failed: connection reset by peer", resp["error"])
			assert.Equal(t, 1, provider.calls)

			if environment == "production" {
				assert.NotContains(t, resp, "debug")
				return
			}
			debug := resp["debug"].(map[string]any)
			assert.NotEmpty(t, debug["requestId"])
			assert.Contains(t, debug, "routeDurationMs")
			assert.NotContains(t, debug, "promptStats")
		})
	}
}

func TestPoemHandler_UsesMiddlewareRequestID(t *testing.T) {
	provider := &stubProvider{resp: &llm.GenerationResponse{Status: llm.StatusFailed, ErrorMessage: "server_error"}}
	cfg := &config.Config{Environment: "development", PoemModel: "gpt-5.2"}
	handler := NewPoemHandler(services.NewPoemService(cfg, &stubProviders{apiKey: "sk-test", provider: provider}, nil, nil), true)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/poem", func(c *gin.Context) {
		c.Set("request_id", "req-fixed")
		c.Next()
	}, handler.Generate)

	w, resp := postPoem(t, router, `{}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Poem generation failed: server_error", resp["error"])
	assert.Equal(t, "req-fixed", resp["debug"].(map[string]any)["requestId"])
}

func TestPoemHandler_ListStyles(t *testing.T) {
	router := setupPoemTestRouter("development", &stubProviders{})

	req := httptest.NewRequest(http.MethodGet, "/api/poem/styles", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Styles  []poem.PoemStyle `json:"styles"`
		Default string           `json:"default"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, poem.Styles(), resp.Styles)
	assert.Equal(t, "free-verse", resp.Default)
}
