package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openimpact/impacteval/internal/model"
)

// Evaluator evaluates a single job directory
type Evaluator interface {
	EvaluateDir(ctx context.Context, jobDir string) (model.EvaluateResult, error)
}

// EvaluateJob evaluates one job directory, gated by the shared limiter
type EvaluateJob struct {
	JobDir    string
	Backend   string
	Evaluator Evaluator
	Limiter   *Limiter
}

// Execute runs the evaluation for the job directory
func (j *EvaluateJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Backend); err != nil {
			return &EvaluateOutcome{JobDir: j.JobDir, Error: err}
		}
	}

	result, err := j.Evaluator.EvaluateDir(ctx, j.JobDir)
	if err != nil {
		return &EvaluateOutcome{JobDir: j.JobDir, Error: err}
	}
	return &EvaluateOutcome{JobDir: j.JobDir, Result: &result}
}

// EvaluateOutcome is the result of one batch entry
type EvaluateOutcome struct {
	JobDir string
	Result *model.EvaluateResult
	Error  error
}

// GetError returns the error from the outcome
func (o *EvaluateOutcome) GetError() error {
	return o.Error
}

// BatchProcessor evaluates multiple job directories concurrently
type BatchProcessor struct {
	evaluator   Evaluator
	backend     string
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a new batch processor. The backend name keys
// the rate limiter so all workers draw from one budget.
func NewBatchProcessor(evaluator Evaluator, backend string, concurrency int, limiter *Limiter) *BatchProcessor {
	return &BatchProcessor{
		evaluator:   evaluator,
		backend:     backend,
		concurrency: concurrency,
		limiter:     limiter,
	}
}

// ProcessDirs evaluates multiple job directories concurrently
func (b *BatchProcessor) ProcessDirs(ctx context.Context, dirs []string) []*EvaluateOutcome {
	if len(dirs) == 0 {
		return []*EvaluateOutcome{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	// Queue and results are both bounded, so submission must overlap the
	// drain below or a job list longer than the buffers would deadlock.
	go func() {
		for _, dir := range dirs {
			pool.Submit(&EvaluateJob{
				JobDir:    dir,
				Backend:   b.backend,
				Evaluator: b.evaluator,
				Limiter:   b.limiter,
			})
		}
		pool.Done()
	}()

	results := pool.Wait()

	outcomes := make([]*EvaluateOutcome, len(results))
	for i, result := range results {
		outcomes[i] = result.(*EvaluateOutcome)
	}

	return outcomes
}

// ProcessFile reads job directories from a file and evaluates them
// concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*EvaluateOutcome, error) {
	dirs, err := ReadDirsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read job list: %w", err)
	}

	return b.ProcessDirs(ctx, dirs), nil
}

// ReadDirsFromFile reads job directory paths from a file (one per line).
// Blank lines and # comments are skipped; duplicates are dropped.
func ReadDirsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var dirs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			dirs = append(dirs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return dirs, nil
}
