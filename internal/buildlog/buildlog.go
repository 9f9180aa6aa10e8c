package buildlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cruciblehq/kiln/internal/paths"
)

// Timestamp layout used in log file names (YYYYMMDD_HHMMSS).
const timestampLayout = "20060102_150405"

// A per-run, append-only log file.
//
// One file is created per run, named "<prefix>_<timestamp>.log". Existing
// files are never overwritten: if a run lands on the same second as a prior
// one, a numeric suffix disambiguates.
type Log struct {
	file *os.File
	Path string // Absolute or dir-relative path of the open log file.
}

// Creates the log directory and opens a fresh timestamped log file.
func Open(dir, prefix string) (*Log, error) {
	if err := os.MkdirAll(dir, paths.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLogFile, err)
	}

	stamp := time.Now().Format(timestampLayout)
	name := fmt.Sprintf("%s_%s.log", prefix, stamp)

	for n := 2; ; n++ {
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL|os.O_APPEND, paths.DefaultFileMode)
		if err == nil {
			return &Log{file: f, Path: path}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("%w: %w", ErrLogFile, err)
		}
		name = fmt.Sprintf("%s_%s_%d.log", prefix, stamp, n)
	}
}

// Returns a slog handler writing structured records to the log file.
//
// The file always records at debug level; console verbosity is controlled
// separately by the CLI.
func (l *Log) Handler() slog.Handler {
	return slog.NewTextHandler(l.file, &slog.HandlerOptions{Level: slog.LevelDebug})
}

// The underlying writer, for composing with other log destinations.
func (l *Log) Writer() io.Writer {
	return l.file
}

// Closes the log file.
func (l *Log) Close() error {
	return l.file.Close()
}

// Dispatches each record to every underlying handler that accepts its level.
//
// The run uses one debug-level handler for the log file and one console
// handler whose level follows the CLI flags, so every command outcome is
// both persisted and echoed.
type teeHandler struct {
	handlers []slog.Handler
}

// Combines handlers into a single [slog.Handler].
func Tee(handlers ...slog.Handler) slog.Handler {
	return &teeHandler{handlers: handlers}
}

// Whether any underlying handler accepts the level.
func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Forwards the record to each handler that accepts its level.
func (t *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, h := range t.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &teeHandler{handlers: handlers}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &teeHandler{handlers: handlers}
}
