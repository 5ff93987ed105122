// Package logging provides leveled logging and event traces for repaircost.
// It offers two complementary outputs:
//   - A leveled slog.Logger for stderr (operational output)
//   - An EventLog for structured JSONL traces of simulated failures
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
	json "github.com/goccy/go-json"

	"github.com/nvandessel/repaircost/internal/constants"
)

// LevelTrace is a custom slog level below Debug for per-trial logging.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug", "trace" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether s names a level ParseLevel understands.
func ValidLevel(s string) bool {
	switch strings.ToLower(s) {
	case "info", "debug", "trace":
		return true
	}
	return false
}

// NewLogger creates a leveled slog.Logger writing to w in the given
// format. Unknown formats fall back to text.
func NewLogger(level string, format constants.LogFormat, w io.Writer) *slog.Logger {
	opts := charmlog.Options{
		Level:           charmlog.Level(ParseLevel(level)),
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}
	switch format {
	case constants.LogFormatJSON:
		opts.Formatter = charmlog.JSONFormatter
	case constants.LogFormatLogfmt:
		opts.Formatter = charmlog.LogfmtFormatter
	default:
		opts.Formatter = charmlog.TextFormatter
	}
	return slog.New(charmlog.NewWithOptions(w, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(charmlog.New(io.Discard))
}

// EventLog writes structured events to a JSONL file.
// It is safe for concurrent use. A nil EventLog is safe to use;
// all methods are no-ops on nil receiver.
type EventLog struct {
	mu   sync.Mutex
	file *os.File
}

// NewEventLog opens path for append, creating parent directories.
func NewEventLog(path string) (*EventLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}
	return &EventLog{file: f}, nil
}

// Log writes an event as a single JSONL line.
// A "time" field is added automatically. The caller's map is not mutated.
// Safe to call on nil receiver.
func (el *EventLog) Log(event map[string]any) {
	if el == nil {
		return
	}

	entry := make(map[string]any, len(event)+1)
	for k, v := range event {
		entry[k] = v
	}
	entry["time"] = time.Now().UTC().Format(time.RFC3339Nano)

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')

	el.mu.Lock()
	defer el.mu.Unlock()
	if el.file == nil {
		return
	}
	_, _ = el.file.Write(data)
}

// Close closes the underlying file. Safe to call on nil receiver.
func (el *EventLog) Close() error {
	if el == nil {
		return nil
	}

	el.mu.Lock()
	defer el.mu.Unlock()

	if el.file == nil {
		return nil
	}
	err := el.file.Close()
	el.file = nil
	return err
}
