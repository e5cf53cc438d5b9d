// Package github provides the GitHub API operations a review run needs:
// listing the files changed by a pull request and publishing the review
// comment.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"
)

// requestTimeout bounds every API call. There are no retries; a slow or
// failing GitHub API fails the run.
const requestTimeout = 30 * time.Second

// filesPageSize is the fixed page size for the list-files endpoint. Fetching
// stops as soon as a page comes back short of it.
const filesPageSize = 100

// ChangedFile holds the filename and patch data for a single file included
// in a pull request. Patch is empty for binary or rename-only entries.
type ChangedFile struct {
	Filename string
	Patch    string
}

// Client defines the GitHub operations used by a review run.
//
//go:generate mockgen -destination=../../mocks/mock_github_client.go -package=mocks . Client
type Client interface {
	ListChangedFiles(ctx context.Context, owner, repo string, number int) ([]ChangedFile, error)
	CreateComment(ctx context.Context, owner, repo string, number int, body string) error
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewGitHubClient wraps the official go-github client to provide a focused,
// testable interface. Tests use it to point the client at a local server.
func NewGitHubClient(client *github.Client, logger *slog.Logger) Client {
	return &gitHubClient{client: client, logger: logger}
}

// NewPATClient creates a new GitHub client authenticated with a Personal
// Access Token, the only credential the runner supports.
func NewPATClient(ctx context.Context, token string, logger *slog.Logger) Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = requestTimeout
	client := github.NewClient(tc)
	return &gitHubClient{client: client, logger: logger}
}

// ListChangedFiles retrieves the full list of files modified in a pull
// request, in the order the API returns them. Pages of filesPageSize are
// requested until one comes back short. An error on any page aborts the
// whole fetch; no partial list is returned.
func (g *gitHubClient) ListChangedFiles(ctx context.Context, owner, repo string, number int) ([]ChangedFile, error) {
	var allFiles []ChangedFile
	opts := &github.ListOptions{PerPage: filesPageSize, Page: 1}

	for {
		files, _, err := g.client.PullRequests.ListFiles(ctx, owner, repo, number, opts)
		if err != nil {
			g.logger.Error("failed to list files for pull request", "owner", owner, "repo", repo, "pr", number, "page", opts.Page, "error", err)
			return nil, fmt.Errorf("failed to list changed files for PR %d: %w", number, err)
		}

		for _, file := range files {
			allFiles = append(allFiles, ChangedFile{
				Filename: file.GetFilename(),
				Patch:    file.GetPatch(),
			})
		}

		if len(files) < filesPageSize {
			break
		}
		opts.Page++
	}

	return allFiles, nil
}

// CreateComment publishes body as a new comment on the pull request. Only
// the two statuses the API documents for creation count as success.
func (g *gitHubClient) CreateComment(ctx context.Context, owner, repo string, number int, body string) error {
	comment := &github.IssueComment{Body: &body}
	_, resp, err := g.client.Issues.CreateComment(ctx, owner, repo, number, comment)
	if err != nil {
		g.logger.Error("failed to create comment", "owner", owner, "repo", repo, "pr", number, "error", err)
		return fmt.Errorf("failed to post comment: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to post comment: unexpected status %d", resp.StatusCode)
	}
	return nil
}
