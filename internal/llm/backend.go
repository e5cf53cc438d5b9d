// Package llm builds review prompts and generates review text through
// external model providers.
package llm

import "context"

// Backend is a text-generation provider that can turn a review prompt into
// review text. Implementations never return errors: a missing credential, a
// provider failure, or an empty response are all reported as ok == false so
// the caller can fall through to the next backend in line.
//
//go:generate mockgen -destination=../../mocks/mock_backend.go -package=mocks . Backend
type Backend interface {
	Name() string
	Generate(ctx context.Context, prompt string) (text string, ok bool)
}
