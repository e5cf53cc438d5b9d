// Package wire assembles the application object graph.
package wire

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/wire"

	"github.com/champ-ai/code-review/internal/app"
	"github.com/champ-ai/code-review/internal/config"
	"github.com/champ-ai/code-review/internal/github"
	"github.com/champ-ai/code-review/internal/jobs"
	"github.com/champ-ai/code-review/internal/llm"
	"github.com/champ-ai/code-review/internal/logger"
)

// AppSet lists every provider needed to build an App.
var AppSet = wire.NewSet(
	config.LoadConfig,
	provideLoggerConfig,
	provideLogWriter,
	provideSlogLogger,
	provideGitHubClient,
	provideGeminiBackend,
	provideOpenRouterBackend,
	provideBackends,
	jobs.NewReviewJob,
	app.NewApp,
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: "stdout",
	}
}

func provideLogWriter() io.Writer {
	return os.Stdout
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	return logger.NewLogger(loggerConfig, writer)
}

func provideGitHubClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) github.Client {
	return github.NewPATClient(ctx, cfg.GitHubToken, logger)
}

func provideGeminiBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*llm.GeminiBackend, func()) {
	backend := llm.NewGeminiBackend(ctx, cfg.GoogleAPIKey, logger)
	cleanup := func() {
		if err := backend.Close(); err != nil {
			logger.Warn("failed to close gemini client", "error", err)
		}
	}
	return backend, cleanup
}

func provideOpenRouterBackend(cfg *config.Config, logger *slog.Logger) *llm.OpenRouterBackend {
	return llm.NewOpenRouterBackend(cfg.OpenRouterAPIKey, cfg.OpenRouterModel, logger)
}

// provideBackends fixes the fallback order: Gemini first, OpenRouter second.
func provideBackends(gemini *llm.GeminiBackend, openRouter *llm.OpenRouterBackend) []llm.Backend {
	return []llm.Backend{gemini, openRouter}
}
