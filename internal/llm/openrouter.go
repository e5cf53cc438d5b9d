package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Request and response shapes of the OpenRouter chat-completion endpoint.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// OpenRouterBackend generates reviews through the OpenRouter chat-completion
// API. It is the fallback when Gemini yields nothing.
type OpenRouterBackend struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewOpenRouterBackend builds the OpenRouter backend for the given model.
// Without an API key the backend is permanently unavailable.
func NewOpenRouterBackend(apiKey, model string, logger *slog.Logger) *OpenRouterBackend {
	return &OpenRouterBackend{
		apiKey:   apiKey,
		model:    model,
		endpoint: openRouterEndpoint,
		client:   &http.Client{Timeout: openRouterTimeout},
		logger:   logger,
	}
}

func (b *OpenRouterBackend) Name() string { return "openrouter" }

// Generate submits the prompt as a single chat completion. Every failure
// mode is logged and downgraded to "no result".
func (b *OpenRouterBackend) Generate(ctx context.Context, prompt string) (string, bool) {
	if b.apiKey == "" {
		return "", false
	}

	payload, err := json.Marshal(chatRequest{
		Model: b.model,
		Messages: []chatMessage{
			{Role: "system", Content: openRouterSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: openRouterTemperature,
	})
	if err != nil {
		b.logger.Warn("openrouter request encoding failed", "error", err)
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(payload))
	if err != nil {
		b.logger.Warn("openrouter request construction failed", "error", err)
		return "", false
	}
	req.Header.Set("Authorization", "Bearer "+b.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		b.logger.Warn("openrouter request failed", "error", err)
		return "", false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		b.logger.Warn("openrouter response read failed", "error", err)
		return "", false
	}
	if resp.StatusCode != http.StatusOK {
		b.logger.Warn("openrouter returned an error", "status", resp.StatusCode, "body", truncate(string(body), warnBodyLimit))
		return "", false
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		b.logger.Warn("openrouter response is not valid JSON", "error", err)
		return "", false
	}
	if len(parsed.Choices) == 0 {
		return "", false
	}

	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", false
	}
	return text, true
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
