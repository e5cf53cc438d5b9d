// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"github.com/champ-ai/code-review/internal/app"
	"github.com/champ-ai/code-review/internal/config"
	"github.com/champ-ai/code-review/internal/jobs"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	loggerConfig := provideLoggerConfig(cfg)
	logWriter := provideLogWriter()
	slogLogger := provideSlogLogger(loggerConfig, logWriter)

	// GitHub client
	ghClient := provideGitHubClient(ctx, cfg, slogLogger)

	// Generation backends, in fallback order
	geminiBackend, geminiCleanup := provideGeminiBackend(ctx, cfg, slogLogger)
	openRouterBackend := provideOpenRouterBackend(cfg, slogLogger)
	backends := provideBackends(geminiBackend, openRouterBackend)

	// Review Job
	reviewJob := jobs.NewReviewJob(cfg, ghClient, backends, slogLogger)

	// App
	application := app.NewApp(cfg, slogLogger, ghClient, reviewJob)

	cleanup := func() {
		geminiCleanup()
	}

	return application, cleanup, nil
}
