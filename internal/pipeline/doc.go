// Package pipeline runs an ordered list of named steps, short-circuiting on
// the first failure.
//
// A step wraps one external command or filesystem action. Execution is
// strictly sequential and fail-fast: a failing step halts the remainder
// unless it is explicitly tolerated. A result is recorded for every step on
// every path, including interruption and panics, so the caller can always
// render a final summary exactly once.
//
// Example usage:
//
//	results, err := pipeline.Execute(ctx, []pipeline.Step{
//	    {Name: "configure", Run: configure},
//	    {Name: "build", Run: build},
//	    {Name: "verify artifacts", Run: verify, ContinueOnError: true},
//	})
//	console.Summary(stats, results)
//	if err != nil {
//	    return err
//	}
package pipeline
