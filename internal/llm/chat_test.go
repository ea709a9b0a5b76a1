package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var answerSchema = &Schema{
	Name: "answer",
	Definition: map[string]any{
		"type":       "object",
		"properties": map[string]any{"answer": map[string]any{"type": "string"}},
		"required":   []string{"answer"},
	},
}

func draftRequest() Request {
	return Request{
		Purpose:   "bank-draft",
		System:    "Пишіть завдання НМТ.",
		Prompt:    "Topic: Алгебра",
		Schema:    answerSchema,
		MaxTokens: 512,
	}
}

// capture serves reply with status and keeps the last request body.
func capture(t *testing.T, path string, status int, header http.Header, reply any) (*httptest.Server, *string) {
	t.Helper()
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		for k, v := range header {
			w.Header()[k] = v
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)
	return srv, &body
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_1",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-haiku-4-5-20251001",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 12},
	}
}

func TestAnthropic_Generate(t *testing.T) {
	srv, body := capture(t, "/v1/messages", http.StatusOK, nil, anthropicMessage(`{"answer":"2,5"}`, "end_turn"))
	p, err := NewAnthropicProvider(ProviderConfig{APIKey: "k", Model: "claude-haiku", BaseURL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5-20251001", p.Model())

	resp, err := p.Generate(context.Background(), draftRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"2,5"}`, string(resp.Content))
	assert.Equal(t, Usage{Input: 50, Output: 12}, resp.Usage)
	assert.Equal(t, 62, resp.Usage.Total())
	assert.Contains(t, *body, "Topic: Алгебра")
	assert.Contains(t, *body, "Пишіть завдання НМТ.")
}

func TestAnthropic_Truncated(t *testing.T) {
	srv, _ := capture(t, "/v1/messages", http.StatusOK, nil, anthropicMessage(`{"answ`, "max_tokens"))
	p, err := NewAnthropicProvider(ProviderConfig{APIKey: "k", Model: "claude-haiku", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), draftRequest())
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestAnthropic_RateLimited(t *testing.T) {
	errBody := map[string]any{"type": "error", "error": map[string]any{"type": "rate_limit_error", "message": "slow down"}}
	srv, _ := capture(t, "/v1/messages", http.StatusTooManyRequests, http.Header{"Retry-After": {"7"}}, errBody)
	p, err := NewAnthropicProvider(ProviderConfig{APIKey: "k", Model: "claude-haiku", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), draftRequest())
	require.ErrorIs(t, err, ErrRateLimited)
	var pe *Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 7*time.Second, pe.RetryAfter)
	assert.Equal(t, Anthropic, pe.Provider)
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o-mini-2024-07-18",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 9, "total_tokens": 49},
	}
}

func TestOpenAI_Generate(t *testing.T) {
	srv, body := capture(t, "/v1/chat/completions", http.StatusOK, nil, chatCompletion(`{"answer":"7"}`, "stop"))
	p, err := NewOpenAIProvider(ProviderConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), draftRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"7"}`, string(resp.Content))
	assert.Equal(t, "gpt-4o-mini-2024-07-18", resp.Model)
	assert.Equal(t, Usage{Input: 40, Output: 9}, resp.Usage)
	assert.Contains(t, *body, `"json_schema"`)
	assert.Contains(t, *body, `"strict":true`)
}

func TestOpenAI_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		reply  any
		want   error
	}{
		{"rate limit", http.StatusTooManyRequests, map[string]any{"error": map[string]any{"message": "slow down", "type": "requests"}}, ErrRateLimited},
		{"bad request", http.StatusBadRequest, map[string]any{"error": map[string]any{"message": "bad schema", "type": "invalid_request_error"}}, ErrRejected},
		{"server", http.StatusBadGateway, map[string]any{"error": map[string]any{"message": "upstream", "type": "server_error"}}, ErrUnavailable},
		{"length", http.StatusOK, chatCompletion(`{"ans`, "length"), ErrTruncated},
		{"no choices", http.StatusOK, map[string]any{"id": "x", "model": "gpt-4o-mini", "choices": []any{}}, ErrInvalidOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := capture(t, "/v1/chat/completions", tt.status, nil, tt.reply)
			p, err := NewOpenAIProvider(ProviderConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
			require.NoError(t, err)

			_, err = p.Generate(context.Background(), draftRequest())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOpenRouter_SharesChatAPI(t *testing.T) {
	srv, body := capture(t, "/api/v1/chat/completions", http.StatusOK, nil, chatCompletion(`{"answer":"1"}`, "stop"))
	p, err := NewOpenRouterProvider(ProviderConfig{APIKey: "k", Model: "google/gemini-2.0-flash-001", BaseURL: srv.URL + "/api/v1"})
	require.NoError(t, err)
	assert.Equal(t, OpenRouter, p.Name())

	_, err = p.Generate(context.Background(), draftRequest())
	require.NoError(t, err)
	assert.True(t, strings.Contains(*body, "google/gemini-2.0-flash-001"))
}

func TestConstructors_RequireKey(t *testing.T) {
	_, err := NewAnthropicProvider(ProviderConfig{})
	assert.Error(t, err)
	_, err = NewOpenAIProvider(ProviderConfig{})
	assert.Error(t, err)
	_, err = NewOpenRouterProvider(ProviderConfig{})
	assert.Error(t, err)
	_, err = NewGeminiProvider(context.Background(), ProviderConfig{})
	assert.Error(t, err)
}
