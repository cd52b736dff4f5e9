// Package log provides structured logging for themepark.
// Entries carry a level, a category and a timestamp, and logging stays off
// unless enabled via the --debug flag or THEMEPARK_DEBUG env.
package log

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLevel reads a level name such as "warn", case-insensitively.
func ParseLevel(s string) (Level, error) {
	for l, name := range levelNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return l, nil
		}
	}
	return LevelDebug, fmt.Errorf("unknown log level %q", s)
}

// Category groups related log messages.
type Category string

const (
	CatConfig   Category = "config"   // Configuration loading/saving
	CatCatalog  Category = "catalog"  // Theme discovery and decoding
	CatResolve  Category = "resolve"  // Format resolvers
	CatCache    Category = "cache"    // Resolution cache
	CatSnapshot Category = "snapshot" // Snapshot capture and codecs
	CatStore    Category = "store"    // Snapshot database
	CatWatcher  Category = "watcher"  // File watcher events
	CatRender   Category = "render"   // Terminal rendering
)

// Logger writes leveled, categorized lines to a writer.
type Logger struct {
	mu       sync.Mutex
	closer   io.Closer
	writer   io.Writer
	enabled  bool
	minLevel Level
	now      func() time.Time
}

// New returns an enabled logger writing to w at debug level.
func New(w io.Writer) *Logger {
	return &Logger{writer: w, enabled: true, minLevel: LevelDebug, now: time.Now}
}

var (
	mu            sync.RWMutex
	defaultLogger *Logger
)

func current() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

func swap(l *Logger) {
	mu.Lock()
	prev := defaultLogger
	defaultLogger = l
	mu.Unlock()
	if prev != nil && prev.closer != nil {
		_ = prev.closer.Close()
	}
}

// Init points the global logger at the file at path, appending.
// Returns a cleanup function that closes the file and disables logging.
func Init(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // G304: path is user-controlled debug log path
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	l := New(f)
	l.closer = f
	swap(l)

	return func() {
		mu.Lock()
		if defaultLogger == l {
			defaultLogger = nil
		}
		mu.Unlock()
		_ = f.Close()
	}, nil
}

// InitWriter points the global logger at w. Used by tests and by the
// CLI when logging to stderr.
func InitWriter(w io.Writer) {
	swap(New(w))
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// Enabled reports whether a message at level would be written.
func Enabled(level Level) bool {
	l := current()
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled && level >= l.minLevel
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	current().Log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	current().Log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	current().Log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	current().Log(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	value := "<nil>"
	if err != nil {
		value = err.Error()
	}
	current().Log(LevelError, cat, msg, append(fields, "error", value)...)
}

// Log writes one line. A nil logger discards everything.
//
// Format: 2025-12-06T10:45:00 [WARN] [resolve] message key=value key2="two words"
func (l *Logger) Log(level Level, cat Category, msg string, fields ...any) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel || l.writer == nil {
		return
	}

	var b strings.Builder
	b.WriteString(l.now().Format("2006-01-02T15:04:05"))
	fmt.Fprintf(&b, " [%s] [%s] %s", level, cat, msg)
	for i := 0; i < len(fields); i += 2 {
		b.WriteByte(' ')
		fmt.Fprint(&b, fields[i])
		b.WriteByte('=')
		if i+1 == len(fields) {
			b.WriteString("<missing>")
			break
		}
		b.WriteString(formatValue(fields[i+1]))
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.writer, b.String())
}

// formatValue quotes values that would otherwise break key=value parsing.
func formatValue(v any) string {
	s := fmt.Sprint(v)
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
