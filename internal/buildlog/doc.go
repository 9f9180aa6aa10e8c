// Package buildlog manages per-run log files and diagnostic counting.
//
// Every pipeline run writes a timestamped log file under the project's logs
// directory. Files are append-only for the duration of the run and never
// overwritten across runs. Captured compiler output can be scanned for
// error and warning markers to feed the final build summary.
package buildlog
