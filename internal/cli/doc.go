// Parses flags and dispatches the kiln subcommands.
//
// The tool accepts the following flags:
//
//	-q, --quiet     Suppress informational output.
//	-d, --debug     Enable debug output.
//	-C, --project   Project root directory.
//
// Each pipeline-running subcommand opens a fresh timestamped log file,
// installs it as the default structured-log destination, and renders a
// final summary on every exit path. A non-nil error from a subcommand
// becomes process exit code 1.
package cli
