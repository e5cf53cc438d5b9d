// Package jobs contains the review job that drives one run end to end.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/champ-ai/code-review/internal/config"
	"github.com/champ-ai/code-review/internal/core"
	"github.com/champ-ai/code-review/internal/github"
	"github.com/champ-ai/code-review/internal/llm"
)

// ReviewJob performs a single pull request review: resolve the target, fetch
// the changed files, generate review text, publish the comment.
type ReviewJob struct {
	cfg      *config.Config
	ghClient github.Client
	backends []llm.Backend
	logger   *slog.Logger
}

// NewReviewJob wires the review job. Backends are consulted in slice order;
// the first one that yields text wins.
func NewReviewJob(cfg *config.Config, ghClient github.Client, backends []llm.Backend, logger *slog.Logger) *ReviewJob {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if ghClient == nil {
		panic("github client cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ReviewJob{cfg: cfg, ghClient: ghClient, backends: backends, logger: logger}
}

// Run executes the review pipeline once and reports what happened. An error
// from here is fatal for the process; backend failures are recoverable and
// never surface as errors.
func (j *ReviewJob) Run(ctx context.Context) (*core.ReviewResult, error) {
	run, err := core.ResolveRunContext(j.cfg.Repository, j.cfg.PRNumber, j.cfg.EventPath, j.logger)
	if err != nil {
		j.logger.Error("cannot resolve the pull request to review", "error", err)
		return nil, err
	}

	j.logger.Info("starting review", "repo", run.FullName, "pr", run.PRNumber)

	files, err := j.ghClient.ListChangedFiles(ctx, run.Owner, run.Name, run.PRNumber)
	if err != nil {
		j.logger.Error("failed to fetch changed files", "repo", run.FullName, "pr", run.PRNumber, "error", err)
		return nil, fmt.Errorf("failed to fetch changed files: %w", err)
	}
	if len(files) == 0 {
		j.logger.Info("no changed files detected; exiting", "repo", run.FullName, "pr", run.PRNumber)
		return &core.ReviewResult{Repo: run.FullName, PRNumber: run.PRNumber, NoChanges: true}, nil
	}

	files = j.filterExcluded(files)
	if len(files) == 0 {
		j.logger.Info("every changed file is excluded by repository config; exiting", "repo", run.FullName, "pr", run.PRNumber)
		return &core.ReviewResult{Repo: run.FullName, PRNumber: run.PRNumber, NoChanges: true}, nil
	}

	prompt := llm.BuildPrompt(files)
	j.logger.Debug("prompt assembled", "files", len(files), "chars", len(prompt))

	review := j.generateReview(ctx, prompt)
	if review == "" {
		j.logger.Info("no backend produced a review; falling back to the default verdict")
		review = core.FallbackReview
	}
	body := core.NormalizeVerdict(review)

	result := &core.ReviewResult{Repo: run.FullName, PRNumber: run.PRNumber, Body: body}
	if j.cfg.DryRun {
		j.logger.Info("dry run; not posting the review", "repo", run.FullName, "pr", run.PRNumber)
		return result, nil
	}

	if err := j.ghClient.CreateComment(ctx, run.Owner, run.Name, run.PRNumber, body); err != nil {
		j.logger.Error("failed to publish the review", "repo", run.FullName, "pr", run.PRNumber, "error", err)
		return nil, err
	}
	result.Published = true

	j.logger.Info("review posted successfully", "repo", run.FullName, "pr", run.PRNumber)
	return result, nil
}

// generateReview walks the backend chain in order and returns the first
// non-empty result, or "" when every backend comes up empty.
func (j *ReviewJob) generateReview(ctx context.Context, prompt string) string {
	for _, backend := range j.backends {
		text, ok := backend.Generate(ctx, prompt)
		if ok {
			j.logger.Info("review generated", "backend", backend.Name(), "chars", len(text))
			return text
		}
		j.logger.Debug("backend produced no result", "backend", backend.Name())
	}
	return ""
}

// filterExcluded applies the repository's own .code-review.yml, when there
// is one, to the changed file list.
func (j *ReviewJob) filterExcluded(files []github.ChangedFile) []github.ChangedFile {
	repoCfg, err := config.LoadRepoConfig(j.cfg.Workspace)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			j.logger.Warn("failed to load repository review config", "error", err)
		}
		return files
	}
	return FilterChangedFiles(j.logger, files, repoCfg.Exclude)
}
