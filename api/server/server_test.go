package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/content-studio/internal/auth"
	"github.com/your-org/content-studio/internal/config"
	"github.com/your-org/content-studio/internal/history"
	providertest "github.com/your-org/content-studio/llm/providers/test"
	"github.com/your-org/content-studio/llm/services/studio"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T, llm *providertest.FakeProvider) *Server {
	t.Helper()

	settings := config.DefaultSettings()
	settings.OpenAIAPIKey = "test-key"
	settings.DatabaseURL = "postgres://localhost/test"
	settings.SecretKey = testSecret
	settings.ContentReviewEnabled = false

	st, err := studio.New(studio.Options{
		Settings: settings,
		Logger:   zerolog.Nop(),
		Provider: llm,
		Recorder: history.NewMemoryRecorder(),
	})
	require.NoError(t, err)
	t.Cleanup(st.Close)

	authManager, err := auth.NewManager(auth.Config{SecretKey: testSecret})
	require.NoError(t, err)

	return New(st, authManager, zerolog.Nop())
}

func doJSON(t *testing.T, srv *Server, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	var resp APIResponse
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func apiKeyHeader() map[string]string {
	return map[string]string{auth.APIKeyHeader: testSecret}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, providertest.NewFakeProvider())

	rec, resp := doJSON(t, srv, http.MethodGet, "/api/v1/health", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "ok", data["status"])
	assert.Contains(t, data["providers"], "fake")
}

func TestTokenIssuance(t *testing.T) {
	srv := newTestServer(t, providertest.NewFakeProvider())

	rec, resp := doJSON(t, srv, http.MethodPost, "/api/v1/auth/token",
		TokenRequest{APIKey: testSecret}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := resp.Data.(map[string]any)
	token := data["access_token"].(string)
	assert.NotEmpty(t, token)
	assert.Equal(t, "bearer", data["token_type"])

	// Issued token works as a Bearer credential
	rec, _ = doJSON(t, srv, http.MethodGet, "/api/v1/history", nil,
		map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTokenRejectsWrongKey(t *testing.T) {
	srv := newTestServer(t, providertest.NewFakeProvider())

	rec, resp := doJSON(t, srv, http.MethodPost, "/api/v1/auth/token",
		TokenRequest{APIKey: "wrong"}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", resp.Code)
}

func TestProtectedRoutesRequireCredentials(t *testing.T) {
	srv := newTestServer(t, providertest.NewFakeProvider())

	rec, resp := doJSON(t, srv, http.MethodGet, "/api/v1/agents", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", resp.Code)

	rec, _ = doJSON(t, srv, http.MethodGet, "/api/v1/agents", nil,
		map[string]string{auth.APIKeyHeader: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateContent(t *testing.T) {
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("generated article text")
	srv := newTestServer(t, llm)

	rec, resp := doJSON(t, srv, http.MethodPost, "/api/v1/content/create",
		map[string]any{"topic": "platform engineering"}, apiKeyHeader())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	result := resp.Data.(map[string]any)
	assert.Equal(t, "content_creation", result["task_name"])
	data := result["data"].(map[string]any)
	assert.Equal(t, "platform engineering", data["topic"])
}

func TestCreateContentValidation(t *testing.T) {
	srv := newTestServer(t, providertest.NewFakeProvider())

	rec, resp := doJSON(t, srv, http.MethodPost, "/api/v1/content/create",
		map[string]any{"topic": ""}, apiKeyHeader())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_REQUIRED_FIELD", resp.Code)
}

func TestCreateContentInvalidJSON(t *testing.T) {
	srv := newTestServer(t, providertest.NewFakeProvider())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/create",
		bytes.NewBufferString("{not json"))
	req.Header.Set(auth.APIKeyHeader, testSecret)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewContent(t *testing.T) {
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("Overall score: 7. Suggest a stronger close.")
	srv := newTestServer(t, llm)

	rec, resp := doJSON(t, srv, http.MethodPost, "/api/v1/content/review",
		map[string]any{"content": "A full draft."}, apiKeyHeader())

	assert.Equal(t, http.StatusOK, rec.Code)
	result := resp.Data.(map[string]any)
	reviewData := result["data"].(map[string]any)["review_data"].(map[string]any)
	assert.Equal(t, float64(7), reviewData["overall_score"])
}

func TestOptimizeSEO(t *testing.T) {
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("Optimized Content:\nBetter.\n\nRecommendations:\nSEO Score: 70")
	srv := newTestServer(t, llm)

	rec, _ := doJSON(t, srv, http.MethodPost, "/api/v1/seo/optimize",
		map[string]any{"content": "draft", "target_keywords": []string{"kw"}}, apiKeyHeader())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetaTags(t *testing.T) {
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("Meta Title: T\nMeta Description: D")
	srv := newTestServer(t, llm)

	rec, resp := doJSON(t, srv, http.MethodPost, "/api/v1/seo/meta-tags",
		MetaTagsRequest{Content: "draft", TargetKeywords: []string{"kw"}}, apiKeyHeader())

	assert.Equal(t, http.StatusOK, rec.Code)
	result := resp.Data.(map[string]any)
	meta := result["data"].(map[string]any)["meta_tags"].(map[string]any)
	assert.Equal(t, "T", meta["meta_title"])
}

func TestResearch(t *testing.T) {
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("Key fact: one.")
	srv := newTestServer(t, llm)

	rec, _ := doJSON(t, srv, http.MethodPost, "/api/v1/research",
		map[string]any{"topic": "wasm"}, apiKeyHeader())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreativeIdeas(t *testing.T) {
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("Idea 1: something new.")
	srv := newTestServer(t, llm)

	rec, _ := doJSON(t, srv, http.MethodPost, "/api/v1/creative/ideas",
		map[string]any{"topic": "wasm"}, apiKeyHeader())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHistory(t *testing.T) {
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("Key fact: one.")
	srv := newTestServer(t, llm)

	// Seed one entry through a pipeline run
	rec, _ := doJSON(t, srv, http.MethodPost, "/api/v1/research",
		map[string]any{"topic": "wasm"}, apiKeyHeader())
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp := doJSON(t, srv, http.MethodGet, "/api/v1/history?limit=10", nil, apiKeyHeader())
	assert.Equal(t, http.StatusOK, rec.Code)
	entries := resp.Data.([]any)
	assert.Len(t, entries, 1)

	rec, resp = doJSON(t, srv, http.MethodGet, "/api/v1/history?topic=wasm", nil, apiKeyHeader())
	assert.Equal(t, http.StatusOK, rec.Code)
	entries = resp.Data.([]any)
	assert.Len(t, entries, 1)

	rec, resp = doJSON(t, srv, http.MethodGet, "/api/v1/history?topic=missing", nil, apiKeyHeader())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, resp.Data)
}

func TestAgentsList(t *testing.T) {
	srv := newTestServer(t, providertest.NewFakeProvider())

	rec, resp := doJSON(t, srv, http.MethodGet, "/api/v1/agents", nil, apiKeyHeader())

	assert.Equal(t, http.StatusOK, rec.Code)
	agentList := resp.Data.([]any)
	assert.Len(t, agentList, 5)

	names := map[string]bool{}
	for _, raw := range agentList {
		info := raw.(map[string]any)
		names[info["name"].(string)] = true
	}
	for _, want := range []string{"writer", "editor", "seo", "research", "creative"} {
		assert.True(t, names[want], want)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, providertest.NewFakeProvider())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
