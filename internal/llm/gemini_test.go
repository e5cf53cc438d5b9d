package llm

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func textResponse(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{
			name: "nil response",
			resp: nil,
			want: "",
		},
		{
			name: "no candidates",
			resp: &genai.GenerateContentResponse{},
			want: "",
		},
		{
			name: "candidate without content",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			want: "",
		},
		{
			name: "single text part",
			resp: textResponse(genai.Text("Looks solid overall.")),
			want: "Looks solid overall.",
		},
		{
			name: "joins multiple text parts",
			resp: textResponse(genai.Text("Summary: fine.\n"), genai.Text("Issues: none.")),
			want: "Summary: fine.\nIssues: none.",
		},
		{
			name: "ignores non-text parts",
			resp: textResponse(genai.Blob{MIMEType: "image/png", Data: []byte{0x1}}),
			want: "",
		},
		{
			name: "trims surrounding whitespace",
			resp: textResponse(genai.Text("\n  ok  \n")),
			want: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractText(tt.resp))
		})
	}
}

func TestGeminiBackendUnavailableWithoutKey(t *testing.T) {
	backend := NewGeminiBackend(context.Background(), "", testLogger())

	text, ok := backend.Generate(context.Background(), "review this")

	assert.False(t, ok)
	assert.Empty(t, text)
	assert.Equal(t, "gemini", backend.Name())
	assert.NoError(t, backend.Close())
}
