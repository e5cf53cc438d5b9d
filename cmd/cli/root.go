package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	githubToken string
	dryRun      bool
)

var rootCmd = &cobra.Command{
	Use:   "code-review",
	Short: "code-review posts AI-generated reviews on GitHub pull requests.",
	Long: `A single-shot pull request reviewer for CI: it fetches the changed files
of a pull request, asks a text-generation backend for a review, and posts
the result back as a comment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&githubToken, "github-token", "t", "", "GitHub Token")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Build the review but print it instead of posting")

	if err := viper.BindPFlag("GITHUB_TOKEN", rootCmd.PersistentFlags().Lookup("github-token")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("DRY_RUN", rootCmd.PersistentFlags().Lookup("dry-run")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// initConfig wires ENV variables into viper. Keys are looked up verbatim, so
// the standard GitHub Actions names (GITHUB_REPOSITORY, GITHUB_TOKEN, ...)
// resolve without a prefix.
func initConfig() {
	viper.AutomaticEnv()
}
