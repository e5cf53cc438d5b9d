// Package app holds the assembled application.
package app

import (
	"log/slog"

	"github.com/champ-ai/code-review/internal/config"
	"github.com/champ-ai/code-review/internal/github"
	"github.com/champ-ai/code-review/internal/jobs"
)

// App bundles the components a CLI command needs for a review run.
type App struct {
	Cfg       *config.Config
	Logger    *slog.Logger
	GitHub    github.Client
	ReviewJob *jobs.ReviewJob
}

// NewApp collects the already-constructed dependencies into the application.
func NewApp(cfg *config.Config, logger *slog.Logger, gh github.Client, reviewJob *jobs.ReviewJob) *App {
	return &App{
		Cfg:       cfg,
		Logger:    logger,
		GitHub:    gh,
		ReviewJob: reviewJob,
	}
}
