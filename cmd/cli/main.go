package main

import (
	"errors"
	"os"

	"github.com/champ-ai/code-review/internal/config"
	"github.com/champ-ai/code-review/internal/core"
	"github.com/champ-ai/code-review/internal/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log := logger.NewLogger(logger.Config{Format: "plain"}, os.Stderr)
		log.Error("run failed", "error", err)
		os.Exit(exitCode(err))
	}
}

// exitCode separates configuration problems (missing variables, no pull
// request to review) from infrastructure failures so CI workflows can tell
// the two apart.
func exitCode(err error) int {
	var missing *config.MissingVarError
	if errors.As(err, &missing) ||
		errors.Is(err, core.ErrNoPullRequest) ||
		errors.Is(err, core.ErrInvalidRepository) {
		return 2
	}
	return 1
}
