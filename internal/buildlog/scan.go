package buildlog

import "strings"

// Counts compiler and CMake diagnostics in captured build output.
//
// A line counts as an error if it carries a gcc/clang "error:" marker or a
// "CMake Error" header; warnings are counted the same way. The counts feed
// the build statistics rendered in the final summary.
func CountDiagnostics(output string) (errors, warnings int) {
	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.Contains(line, "error:") || strings.Contains(line, "CMake Error"):
			errors++
		case strings.Contains(line, "warning:") || strings.Contains(line, "CMake Warning"):
			warnings++
		}
	}
	return errors, warnings
}
