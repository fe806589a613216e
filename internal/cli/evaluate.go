package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openimpact/impacteval/internal/config"
	"github.com/openimpact/impacteval/internal/evaluate"
)

var (
	evalCostToScale float64
	evalTimeout     time.Duration
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <job-dir>",
	Short: "Evaluate the confidence of a job directory",
	Long: `Evaluate reads manifest.json from the job directory and dispatches on
its evaluate_strategy:

  score   Deterministic confidence drawn from the method's range,
          seeded by the initiative id. No network access.
  review  LLM-backed structured review of the job artifacts.

Writes evaluate_result.json (and score_result.json or review_result.json
depending on strategy) into the job directory.

Example:
  impacteval evaluate ./jobs/init-001
  impacteval evaluate ./jobs/init-001 --cost-to-scale 1200.5`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().Float64Var(&evalCostToScale, "cost-to-scale", 0, "override the initiative's cost-to-scale value")
	evaluateCmd.Flags().DurationVar(&evalTimeout, "timeout", 5*time.Minute, "timeout for the evaluation")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	jobDir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()

	cfg, err := config.Load(loadConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var opts evaluate.Options
	if cmd.Flags().Changed("cost-to-scale") {
		opts.CostToScale = &evalCostToScale
	}

	result, err := evaluate.EvaluateConfidence(ctx, cfg, jobDir, opts)
	if err != nil {
		return err
	}

	fmt.Printf("initiative:  %s\n", result.InitiativeID)
	fmt.Printf("strategy:    %s\n", result.Strategy)
	fmt.Printf("confidence:  %.3f (range %.2f-%.2f)\n",
		result.Confidence, result.ConfidenceRange.Low(), result.ConfidenceRange.High())
	return nil
}
