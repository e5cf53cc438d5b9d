package core

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Precondition failures the CLI maps to the configuration exit status,
// keeping them distinguishable from infrastructure errors.
var (
	ErrNoPullRequest     = errors.New("could not determine pull request number")
	ErrInvalidRepository = errors.New(`repository identifier is not in "owner/name" form`)
)

// RunContext identifies the pull request a single run operates on. It is
// resolved once at the start of a run and never changes afterwards.
type RunContext struct {
	Owner    string
	Name     string
	FullName string
	PRNumber int
}

// ResolveRunContext builds the run context from the configured repository
// identifier and the two pull request sources: an explicit override wins,
// otherwise the number is taken from the CI event payload. Event parsing
// problems are warnings, not failures; only ending up with no number at all
// aborts the run.
func ResolveRunContext(repository string, override int, eventPath string, logger *slog.Logger) (*RunContext, error) {
	owner, name, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRepository, repository)
	}

	number := override
	if number <= 0 && eventPath != "" {
		n, err := PullRequestNumberFromEvent(eventPath)
		if err != nil {
			logger.Warn("failed to parse event payload", "path", eventPath, "error", err)
		}
		number = n
	}
	if number <= 0 {
		return nil, fmt.Errorf("%w: set PR_NUMBER or run on pull request events", ErrNoPullRequest)
	}

	return &RunContext{
		Owner:    owner,
		Name:     name,
		FullName: repository,
		PRNumber: number,
	}, nil
}
