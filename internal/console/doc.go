// Package console renders human-readable progress and summary output.
//
// Output is styled with lipgloss and is not a machine-readable contract;
// the per-run log file is the durable record. The summary renderer accepts
// the step results and statistics directly so it can run exactly once on
// every exit path.
package console
