package core

// RepoConfig represents the structure of the .code-review.yml file a
// repository may carry to tune its own reviews.
type RepoConfig struct {
	// Glob patterns for changed files that should be left out of the
	// review, matched against the full path and the base name.
	// Example: ["vendor/*", "*.pb.go", "*.lock"]
	Exclude []string `yaml:"exclude"`
}

// DefaultRepoConfig returns a config with default values.
func DefaultRepoConfig() *RepoConfig {
	return &RepoConfig{
		Exclude: []string{},
	}
}
