// Package core defines the essential data structures and domain rules of the
// reviewer. These components carry no infrastructure dependencies, allowing
// the GitHub and model layers to stay decoupled from the run logic.
package core

import (
	"encoding/json"
	"fmt"
	"os"
)

// eventPayload mirrors the fields of a GitHub Actions event payload the tool
// cares about: the pull request number itself, or the issue block when a run
// is triggered by a comment on a pull request.
type eventPayload struct {
	PullRequest *struct {
		Number int `json:"number"`
	} `json:"pull_request"`
	Issue *struct {
		Number      int `json:"number"`
		PullRequest *struct {
			URL string `json:"url"`
		} `json:"pull_request"`
	} `json:"issue"`
}

// PullRequestNumberFromEvent extracts a pull request number from the JSON
// event payload at path. A missing file or a payload without a pull request
// reference yields zero without an error; an unreadable or malformed payload
// returns an error the caller may downgrade to a warning.
func PullRequestNumberFromEvent(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read event payload: %w", err)
	}

	var payload eventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, fmt.Errorf("failed to decode event payload: %w", err)
	}

	if payload.PullRequest != nil {
		return payload.PullRequest.Number, nil
	}
	if payload.Issue != nil && payload.Issue.PullRequest != nil {
		return payload.Issue.Number, nil
	}
	return 0, nil
}
