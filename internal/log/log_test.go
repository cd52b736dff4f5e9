package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := current()
	t.Cleanup(func() {
		mu.Lock()
		defaultLogger = prev
		mu.Unlock()
	})

	var buf bytes.Buffer
	InitWriter(&buf)
	return &buf
}

func TestLog_FormatsFields(t *testing.T) {
	buf := withBuffer(t)

	Warn(CatResolve, "unparseable color", "key", "background", "value", "#zz")

	out := buf.String()
	require.Contains(t, out, "[WARN] [resolve] unparseable color")
	require.Contains(t, out, "key=background")
	require.Contains(t, out, "value=#zz")
}

func TestLog_QuotesAwkwardValues(t *testing.T) {
	buf := withBuffer(t)

	Info(CatCatalog, "loaded", "name", "Presentation (Dark)", "empty", "", "n", 3)

	out := buf.String()
	require.Contains(t, out, `name="Presentation (Dark)"`)
	require.Contains(t, out, `empty=""`)
	require.Contains(t, out, "n=3")
}

func TestLogger_FixedClock(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.now = func() time.Time { return time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC) }

	l.Log(LevelInfo, CatStore, "saved", "digest", "abc")
	require.Equal(t, "2025-12-06T10:45:00 [INFO] [store] saved digest=abc\n", buf.String())

	var nilLogger *Logger
	require.NotPanics(t, func() { nilLogger.Log(LevelError, CatStore, "ignored") })
}

func TestLog_OrphanKey(t *testing.T) {
	buf := withBuffer(t)

	Info(CatCatalog, "loaded", "count")
	require.Contains(t, buf.String(), "count=<missing>")
}

func TestLog_ErrorErr(t *testing.T) {
	buf := withBuffer(t)

	ErrorErr(CatStore, "save failed", errors.New("disk full"), "theme", "Blackboard")
	require.Contains(t, buf.String(), `error="disk full"`)
	require.Contains(t, buf.String(), "theme=Blackboard")

	buf.Reset()
	ErrorErr(CatStore, "save failed", nil)
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestLog_MinLevelAndDisable(t *testing.T) {
	buf := withBuffer(t)

	SetMinLevel(LevelWarn)
	require.False(t, Enabled(LevelInfo))
	require.True(t, Enabled(LevelWarn))
	Debug(CatCache, "miss")
	Info(CatCache, "hit")
	require.Empty(t, buf.String())

	Error(CatCache, "broken")
	require.Contains(t, buf.String(), "[ERROR] [cache] broken")

	buf.Reset()
	SetEnabled(false)
	require.False(t, Enabled(LevelError))
	Error(CatCache, "broken")
	require.Empty(t, buf.String())
}

func TestLog_NoLoggerIsNoop(t *testing.T) {
	withBuffer(t)
	mu.Lock()
	defaultLogger = nil
	mu.Unlock()

	require.False(t, Enabled(LevelError))
	require.NotPanics(t, func() {
		Info(CatConfig, "nothing")
		SetEnabled(true)
		SetMinLevel(LevelDebug)
	})
}

func TestInit_FileAndCleanup(t *testing.T) {
	withBuffer(t)
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := Init(path)
	require.NoError(t, err)
	Info(CatConfig, "first")

	// A second Init replaces the first logger.
	cleanup2, err := Init(path)
	require.NoError(t, err)
	Info(CatConfig, "second")
	cleanup2()
	cleanup()
	Info(CatConfig, "dropped")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "first")
	require.Contains(t, string(data), "second")
	require.NotContains(t, string(data), "dropped")

	_, err = Init(filepath.Join(t.TempDir(), "missing", "debug.log"))
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"debug": LevelDebug, "INFO": LevelInfo, " Warn ": LevelWarn, "error": LevelError} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}
