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

func TestOpenAI_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o", body["model"])
		assert.InDelta(t, 0.7, body["temperature"], 0.0001)
		assert.InDelta(t, 0.9, body["top_p"], 0.0001)
		assert.InDelta(t, 0.5, body["frequency_penalty"], 0.0001)
		assert.InDelta(t, 0.3, body["presence_penalty"], 0.0001)
		assert.InDelta(t, 4000, body["max_tokens"], 0.0001)

		messages, ok := body["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]any)["role"])
		assert.Equal(t, "user", messages[1].(map[string]any)["role"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "生成された記事"}
			}]
		}`))
	}))
	defer server.Close()

	p := NewOpenAI("sk-test", "gpt-4o", server.URL, nil)
	out, err := p.Complete(context.Background(), prompt.NewRequest("記事を書いて"))

	require.NoError(t, err)
	assert.Equal(t, "生成された記事", out)
	assert.Equal(t, "openai", p.Name())
	assert.Equal(t, "gpt-4o", p.Model())
}

func TestOpenAI_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","created":1,"model":"gpt-4o","choices":[]}`))
	}))
	defer server.Close()

	p := NewOpenAI("sk-test", "gpt-4o", server.URL, nil)
	_, err := p.Complete(context.Background(), prompt.NewRequest("x"))

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrGenerationFailed))
	assert.Contains(t, err.Error(), "no choices")
}
