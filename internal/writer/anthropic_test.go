package writer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HartBrook/moanote/internal/errors"
	"github.com/HartBrook/moanote/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnthropic_NoAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := NewAnthropic()

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrProviderAuthFailed))
	assert.Contains(t, err.Error(), "Anthropic Claude API authentication failed")
}

func TestNewAnthropic_FromEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-api-key")

	client, err := NewAnthropic()

	require.NoError(t, err)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "claude-sonnet-4-20250514", client.Model())
	assert.Equal(t, anthropicBaseURL, client.baseURL)
}

func TestNewAnthropic_WithOptions(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	customClient := &http.Client{}
	client, err := NewAnthropic(
		WithAPIKey("explicit-key"),
		WithModel("claude-opus-4-20250514"),
		WithBaseURL("https://custom.api.com"),
		WithHTTPClient(customClient),
	)

	require.NoError(t, err)
	assert.Equal(t, "explicit-key", client.apiKey)
	assert.Equal(t, "claude-opus-4-20250514", client.model)
	assert.Equal(t, "https://custom.api.com", client.baseURL)
	assert.Equal(t, customClient, client.httpClient)
}

func TestAnthropic_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-api-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicAPIVersion, r.Header.Get("anthropic-version"))

		var req messagesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, prompt.SystemPrompt(), req.System)
		assert.Equal(t, prompt.DefaultMaxTokens, req.MaxTokens)
		assert.InDelta(t, prompt.DefaultTemperature, req.Temperature, 0.0001)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "記事を書いて", req.Messages[0].Content)

		resp := messagesResponse{
			ID: "msg_123",
			Content: []contentBlock{
				{Type: "text", Text: "# タイトル\n\n"},
				{Type: "tool_use", Text: "ignored"},
				{Type: "text", Text: "本文"},
			},
			StopReason: "end_turn",
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client, err := NewAnthropic(WithAPIKey("test-api-key"), WithBaseURL(server.URL))
	require.NoError(t, err)

	out, err := client.Complete(context.Background(), prompt.NewRequest("記事を書いて"))

	require.NoError(t, err)
	assert.Equal(t, "# タイトル\n\n本文", out)
}

func TestAnthropic_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer server.Close()

	client, err := NewAnthropic(WithAPIKey("bad"), WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), prompt.NewRequest("x"))

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrGenerationFailed))
	assert.Contains(t, err.Error(), "(401): invalid x-api-key")
}

func TestAnthropic_NonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer server.Close()

	client, err := NewAnthropic(WithAPIKey("k"), WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), prompt.NewRequest("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned status 502")
}

func TestAnthropic_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := NewAnthropic(WithAPIKey("k"), WithBaseURL(server.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Complete(ctx, prompt.NewRequest("x"))
	require.Error(t, err)
}
