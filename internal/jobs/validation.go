package jobs

import (
	"log/slog"
	"path"
	"strings"

	"github.com/champ-ai/code-review/internal/github"
)

// FilterChangedFiles drops files whose path matches one of the exclude glob
// patterns. Patterns are tried against the full path and against the base
// name, so "*.pb.go" also covers generated files in nested directories.
// Invalid patterns are logged and skipped.
func FilterChangedFiles(logger *slog.Logger, files []github.ChangedFile, excludes []string) []github.ChangedFile {
	if len(excludes) == 0 {
		return files
	}

	kept := make([]github.ChangedFile, 0, len(files))
	excluded := 0
	for _, f := range files {
		if matchesAny(logger, f.Filename, excludes) {
			logger.Debug("excluding changed file from the review", "file", f.Filename)
			excluded++
			continue
		}
		kept = append(kept, f)
	}

	if excluded > 0 {
		logger.Info("excluded changed files from the review", "excluded", excluded, "kept", len(kept))
	}
	return kept
}

func matchesAny(logger *slog.Logger, filename string, patterns []string) bool {
	cleanPath := strings.TrimPrefix(filename, "./")

	for _, pattern := range patterns {
		ok, err := path.Match(pattern, cleanPath)
		if err != nil {
			logger.Warn("ignoring invalid exclude pattern", "pattern", pattern, "error", err)
			continue
		}
		if ok {
			return true
		}
		if ok, _ := path.Match(pattern, path.Base(cleanPath)); ok {
			return true
		}
	}
	return false
}
