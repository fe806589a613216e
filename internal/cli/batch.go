package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/openimpact/impacteval/internal/config"
	"github.com/openimpact/impacteval/internal/evaluate"
	"github.com/openimpact/impacteval/internal/model"
	"github.com/openimpact/impacteval/internal/worker"
)

var (
	batchConcurrency int
	batchTimeout     time.Duration
	batchRate        float64
	batchBurst       int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Evaluate multiple job directories from a file in parallel",
	Long: `Batch evaluates multiple job directories concurrently:
- Read job directory paths from the input file (one per line)
- Evaluate in parallel with a configurable worker count
- Review-strategy jobs share one rate budget per backend

Example:
  impacteval batch jobs.txt
  impacteval batch jobs.txt --concurrency 8 --rate 2 --timeout 30m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&batchRate, "rate", 1, "backend requests per second across all workers")
	batchCmd.Flags().IntVar(&batchBurst, "burst", 5, "backend request burst size")
}

// configEvaluator adapts the evaluate package to the worker pool
type configEvaluator struct {
	cfg *model.Config
}

func (e *configEvaluator) EvaluateDir(ctx context.Context, jobDir string) (model.EvaluateResult, error) {
	return evaluate.EvaluateConfidence(ctx, e.cfg, jobDir, evaluate.Options{})
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := config.Load(loadConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Input file:  %s\n", file)
	fmt.Fprintf(os.Stderr, "Workers:     %d\n", batchConcurrency)
	fmt.Fprintf(os.Stderr, "Backend:     %s\n", cfg.Backend.Type)
	fmt.Fprintf(os.Stderr, "Rate:        %.1f req/s (burst %d)\n\n", batchRate, batchBurst)

	limiter := worker.NewLimiter(batchRate, batchBurst)
	processor := worker.NewBatchProcessor(&configEvaluator{cfg: cfg}, cfg.Backend.Type, batchConcurrency, limiter)

	outcomes, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	var failed int
	for _, o := range outcomes {
		if o.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", o.JobDir, o.Error)
			continue
		}
		fmt.Printf("%-40s %s confidence=%.3f\n", o.JobDir, o.Result.Strategy, o.Result.Confidence)
	}

	fmt.Fprintf(os.Stderr, "\n%d evaluated, %d failed\n", len(outcomes)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(outcomes))
	}
	return nil
}
