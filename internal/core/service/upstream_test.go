package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kitchen-assistant/internal/core/ai"
	"kitchen-assistant/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardInjectsCredentialAndModel(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody ai.UpstreamRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"hi"}}]}`))
	}))
	defer srv.Close()

	svc := NewUpstreamService(config.LunosConfig{
		BaseURL: srv.URL + "/v1",
		APIKey:  "sk-test",
		Model:   "google/gemini-2.0-flash-lite",
		Timeout: 5 * time.Second,
	}, nil)

	res, err := svc.Forward(context.Background(), ai.ChatRequest{
		Messages:    []ai.Message{{Role: ai.RoleUser, Content: "hello"}},
		Temperature: 0.9,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.Status)
	assert.JSONEq(t, `{"choices":[{"message":{"content":"hi"}}]}`, string(res.Body))
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "google/gemini-2.0-flash-lite", gotBody.Model)
	assert.InDelta(t, 0.9, gotBody.Temperature, 0.0001)
	assert.Equal(t, DefaultMaxTokens, gotBody.MaxTokens)
}

func TestForwardPassesThroughErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`rate limited`))
	}))
	defer srv.Close()

	svc := NewUpstreamService(config.LunosConfig{BaseURL: srv.URL, APIKey: "k", Timeout: time.Second}, nil)
	res, err := svc.Forward(context.Background(), ai.ChatRequest{Messages: []ai.Message{{Role: "user", Content: "x"}}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, res.Status)
	assert.Equal(t, "rate limited", string(res.Body))
}

func TestForwardRequiresAPIKey(t *testing.T) {
	svc := NewUpstreamService(config.LunosConfig{BaseURL: "http://127.0.0.1:1"}, nil)
	_, err := svc.Forward(context.Background(), ai.ChatRequest{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestForwardNetworkFailure(t *testing.T) {
	svc := NewUpstreamService(config.LunosConfig{BaseURL: "http://127.0.0.1:1", APIKey: "k", Timeout: time.Second}, nil)
	_, err := svc.Forward(context.Background(), ai.ChatRequest{Messages: []ai.Message{{Role: "user", Content: "x"}}})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingAPIKey)
}
