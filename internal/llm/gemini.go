package llm

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiBackend generates reviews with Google's hosted Gemini models.
type GeminiBackend struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *slog.Logger
}

// NewGeminiBackend builds the Gemini backend. Availability is resolved here,
// once: without an API key, or when the SDK client cannot be constructed,
// the backend stays permanently unavailable and Generate reports no result.
func NewGeminiBackend(ctx context.Context, apiKey string, logger *slog.Logger) *GeminiBackend {
	b := &GeminiBackend{logger: logger}
	if apiKey == "" {
		return b
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		logger.Warn("gemini client unavailable", "error", err)
		return b
	}

	b.client = client
	b.model = client.GenerativeModel(geminiModelName)
	return b
}

func (b *GeminiBackend) Name() string { return "gemini" }

// Close releases the underlying SDK client.
func (b *GeminiBackend) Close() error {
	if b.client == nil {
		return nil
	}
	return b.client.Close()
}

// Generate submits the prompt to the fixed Gemini model. Every failure mode
// is downgraded to "no result" so the run can move on to the next backend.
func (b *GeminiBackend) Generate(ctx context.Context, prompt string) (string, bool) {
	if b.model == nil {
		return "", false
	}

	resp, err := b.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		b.logger.Warn("gemini generation failed", "error", err)
		return "", false
	}

	text := extractText(resp)
	if text == "" {
		return "", false
	}
	return text, true
}

// extractText joins the text parts of every response candidate. The SDK only
// exposes generated text through the candidate and part structures.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
