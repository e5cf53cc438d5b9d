package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/champ-ai/code-review/internal/gitutil"
	"github.com/champ-ai/code-review/internal/wire"
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	dimColor     = color.New(color.FgHiBlack)
)

var reviewCmd = &cobra.Command{
	Use:   "review [pr-url]",
	Short: "Review a pull request and post the result as a comment",
	Long: `Review a pull request and post the result as a comment.

Configuration comes from the environment: GITHUB_REPOSITORY and GITHUB_TOKEN
are required, GOOGLE_API_KEY and OPENROUTER_API_KEY unlock the generation
backends. The pull request number is taken from PR_NUMBER or the event
payload at GITHUB_EVENT_PATH; an explicit URL argument overrides both.

Examples:
  code-review review
  code-review review https://github.com/owner/repo/pull/123
  code-review review --dry-run https://github.com/owner/repo/pull/123`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(reviewCmd)
}

func runReview(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 1 {
		owner, repoName, prNumber, err := gitutil.ParsePullRequestURL(args[0])
		if err != nil {
			return err
		}
		viper.Set("GITHUB_REPOSITORY", owner+"/"+repoName)
		viper.Set("PR_NUMBER", prNumber)
	}

	appInstance, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := appInstance.ReviewJob.Run(ctx)
	if err != nil {
		return err
	}

	if result.NoChanges {
		dimColor.Println("Nothing to review.")
		return nil
	}
	if result.Published {
		successColor.Printf("Review posted on %s #%d\n", result.Repo, result.PRNumber)
		return nil
	}

	// Dry run: render the review locally instead of posting it.
	titleColor.Printf("Review for %s #%d\n\n", result.Repo, result.PRNumber)
	rendered, err := glamour.Render(result.Body, "dark")
	if err != nil {
		fmt.Println(result.Body)
	} else {
		fmt.Print(rendered)
	}
	dimColor.Println("(dry run: nothing was posted)")
	return nil
}
