package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenRouterBackend(t *testing.T, handler http.HandlerFunc) *OpenRouterBackend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := NewOpenRouterBackend("test-key", "test-model", testLogger())
	backend.endpoint = srv.URL
	return backend
}

func TestOpenRouterBackendGenerate(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		wantText string
		wantOK   bool
	}{
		{
			name:     "successful completion",
			status:   http.StatusOK,
			response: `{"choices":[{"message":{"content":"Summary: fine.\n"}}]}`,
			wantText: "Summary: fine.",
			wantOK:   true,
		},
		{
			name:     "provider error",
			status:   http.StatusInternalServerError,
			response: `{"error":{"message":"overloaded"}}`,
			wantOK:   false,
		},
		{
			name:     "rate limited",
			status:   http.StatusTooManyRequests,
			response: `{"error":{"message":"slow down"}}`,
			wantOK:   false,
		},
		{
			name:     "malformed response body",
			status:   http.StatusOK,
			response: `{"choices":`,
			wantOK:   false,
		},
		{
			name:     "no choices",
			status:   http.StatusOK,
			response: `{"choices":[]}`,
			wantOK:   false,
		},
		{
			name:     "blank content",
			status:   http.StatusOK,
			response: `{"choices":[{"message":{"content":"  \n\t"}}]}`,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newOpenRouterBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.response)
			})

			text, ok := backend.Generate(context.Background(), "review this diff")

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestOpenRouterBackendRequestShape(t *testing.T) {
	var got chatRequest
	var auth, contentType string
	backend := newOpenRouterBackend(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"choices":[{"message":{"content":"ok"}}]}`)
	})

	_, ok := backend.Generate(context.Background(), "the prompt")

	require.True(t, ok)
	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "test-model", got.Model)
	assert.InDelta(t, openRouterTemperature, got.Temperature, 1e-9)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, chatMessage{Role: "system", Content: openRouterSystemPrompt}, got.Messages[0])
	assert.Equal(t, chatMessage{Role: "user", Content: "the prompt"}, got.Messages[1])
}

func TestOpenRouterBackendUnavailableWithoutKey(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	t.Cleanup(srv.Close)

	backend := NewOpenRouterBackend("", "test-model", testLogger())
	backend.endpoint = srv.URL

	text, ok := backend.Generate(context.Background(), "review this")

	assert.False(t, ok)
	assert.Empty(t, text)
	assert.Zero(t, requests, "an unavailable backend must not reach the network")
	assert.Equal(t, "openrouter", backend.Name())
}
