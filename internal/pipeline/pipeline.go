package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// A named unit of pipeline work wrapping a single external command or
// filesystem action. Steps are created at pipeline-definition time and are
// not modified afterwards.
type Step struct {
	Name            string                          // Human-readable step name.
	Run             func(ctx context.Context) error // The work; a non-nil error fails the step.
	ContinueOnError bool                            // Tolerate failure and keep going.
}

// Outcome of running a single step.
type StepResult struct {
	Name     string        // Step name, copied from the definition.
	Err      error         // Failure cause, nil on success.
	Duration time.Duration // Wall-clock step time.
	Skipped  bool          // The step never ran because an earlier step failed.
}

// Whether the step ran and succeeded.
func (r StepResult) Success() bool {
	return !r.Skipped && r.Err == nil
}

// Executes the steps strictly in order, stopping at the first failure.
//
// No step begins before the prior step's result is known. A failing step
// halts the remaining sequence unless it is marked ContinueOnError. Steps
// that never ran are reported as skipped. Cancellation is cooperative: the
// context is checked between steps, so a pending interrupt takes effect
// after the current step returns.
//
// A result is recorded for every step on every path, including panics inside
// a step, so the caller can always render a final summary.
func Execute(ctx context.Context, steps []Step) (results []StepResult, err error) {
	results = make([]StepResult, 0, len(steps))

	for i, step := range steps {
		if ctxErr := ctx.Err(); ctxErr != nil {
			slog.Warn("pipeline interrupted", "step", step.Name)
			err = fmt.Errorf("%w: before step %q: %w", ErrInterrupted, step.Name, ctxErr)
			results = appendSkipped(results, steps[i:])
			return results, err
		}

		slog.Info("step started", "step", step.Name)

		start := time.Now()
		stepErr := runStep(ctx, step)
		elapsed := time.Since(start)

		results = append(results, StepResult{
			Name:     step.Name,
			Err:      stepErr,
			Duration: elapsed,
		})

		if stepErr == nil {
			slog.Info("step completed", "step", step.Name, "duration", elapsed)
			continue
		}

		if step.ContinueOnError {
			slog.Warn("step failed, continuing", "step", step.Name, "error", stepErr)
			continue
		}

		slog.Error("step failed", "step", step.Name, "error", stepErr)
		err = fmt.Errorf("%w: step %q: %w", ErrPipeline, step.Name, stepErr)
		results = appendSkipped(results, steps[i+1:])
		return results, err
	}

	return results, nil
}

// Runs a single step, converting a panic inside the step into a step error.
func runStep(ctx context.Context, step Step) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("step panicked", "step", step.Name, "panic", r)
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	return step.Run(ctx)
}

// Records skipped results for steps that never ran.
func appendSkipped(results []StepResult, remaining []Step) []StepResult {
	for _, step := range remaining {
		results = append(results, StepResult{Name: step.Name, Skipped: true})
	}
	return results
}
