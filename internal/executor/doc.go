// Package executor runs external commands on the host toolchain.
//
// Each invocation is bounded by a timeout, captures stdout and stderr when
// requested, and reports the exit status as data rather than an error. The
// pipeline treats a failed [Result] as a failed step; nothing is retried.
//
// Example usage:
//
//	res := executor.Run(ctx, executor.Command{
//	    Args:    []string{"cmake", "--build", ".", "--parallel", "8"},
//	    Dir:     buildDir,
//	    Timeout: 10 * time.Minute,
//	    Capture: true,
//	})
//	if !res.Success {
//	    return fmt.Errorf("build failed: %s", res.Stderr)
//	}
package executor
