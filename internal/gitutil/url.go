// Package gitutil has small helpers for working with GitHub URLs.
package gitutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePullRequestURL parses a GitHub pull request URL and extracts the
// owner, repo, and PR number.
// Supported format: https://github.com/{owner}/{repo}/pull/{number}
func ParsePullRequestURL(url string) (owner, repo string, prNumber int, err error) {
	trimmed := strings.TrimSuffix(url, "/")

	_, rest, found := strings.Cut(trimmed, "github.com/")
	if !found {
		return "", "", 0, fmt.Errorf("invalid pull request URL format: %s", url)
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 4 || parts[0] == "" || parts[1] == "" || parts[2] != "pull" {
		return "", "", 0, fmt.Errorf("invalid pull request URL format: %s", url)
	}

	prNumber, err = strconv.Atoi(parts[3])
	if err != nil || prNumber <= 0 {
		return "", "", 0, fmt.Errorf("invalid PR number '%s' in URL: %s", parts[3], url)
	}

	return parts[0], parts[1], prNumber, nil
}
