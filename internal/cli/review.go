package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openimpact/impacteval/internal/config"
	"github.com/openimpact/impacteval/internal/model"
	"github.com/openimpact/impacteval/internal/review"
)

var (
	reviewTimeout time.Duration
	reviewNoWrite bool
)

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review <job-dir>",
	Short: "Run an LLM review of a job directory",
	Long: `Review runs only the LLM review path, regardless of the manifest's
evaluate_strategy. Useful for inspecting reviewer output while a job is
configured for deterministic scoring.

Example:
  impacteval review ./jobs/init-001
  impacteval review ./jobs/init-001 --no-write`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().DurationVar(&reviewTimeout, "timeout", 5*time.Minute, "timeout for the review")
	reviewCmd.Flags().BoolVar(&reviewNoWrite, "no-write", false, "print the result without writing review_result.json")
}

func runReview(cmd *cobra.Command, args []string) error {
	jobDir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), reviewTimeout)
	defer cancel()

	cfg, err := config.Load(loadConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var result model.ReviewResult
	if reviewNoWrite {
		result, err = review.Compute(ctx, jobDir, cfg)
	} else {
		result, err = review.Review(ctx, jobDir, cfg)
	}
	if err != nil {
		return err
	}

	fmt.Printf("initiative:  %s\n", result.InitiativeID)
	fmt.Printf("prompt:      %s v%s\n", result.PromptName, result.PromptVersion)
	fmt.Printf("backend:     %s (%s)\n", result.BackendName, result.Model)
	fmt.Printf("overall:     %.3f\n", result.OverallScore)
	for _, d := range result.Dimensions {
		fmt.Printf("  %-28s %.2f\n", d.Name, d.Score)
	}
	return nil
}
