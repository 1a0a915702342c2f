package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charliek/logview/internal/appinfo"
	"github.com/charliek/logview/internal/domain"
	"github.com/charliek/logview/internal/filter"
	"github.com/charliek/logview/internal/summary"
)

func newTestExporter(appName string, now time.Time) *Exporter {
	e := NewExporter(appinfo.Static(appName), summary.NewFormatter(summary.NewListFormatter("en")))
	e.now = func() time.Time { return now }
	return e
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 8, 31, 14, 5, 9, 0, time.UTC)

	t.Run("clean name passes through", func(t *testing.T) {
		assert.Equal(t, "MyApp-logs-20260831-140509.log", Filename("MyApp", ts))
	})

	t.Run("runs of other characters collapse to one dash", func(t *testing.T) {
		assert.Equal(t, "My-App-logs-20260831-140509.log", Filename("My  !! App", ts))
	})

	t.Run("underscores and dashes kept", func(t *testing.T) {
		assert.Equal(t, "my_app-v2-logs-20260831-140509.log", Filename("my_app-v2", ts))
	})

	t.Run("empty result falls back to fixed name", func(t *testing.T) {
		assert.Equal(t, "logs-logs-20260831-140509.log", Filename("!!!", ts))
		assert.Equal(t, "logs-logs-20260831-140509.log", Filename("", ts))
	})
}

func TestExporter_Render(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	since := now.Add(-time.Hour)
	e := newTestExporter("MyApp", now)

	entries := []domain.LogEntry{
		{
			Timestamp: now.Add(-30 * time.Minute),
			Level:     domain.LevelError,
			Subsystem: "com.app",
			Category:  "net",
			Sender:    "AppKit",
			Message:   "request failed",
		},
		{
			Timestamp: now.Add(-10 * time.Minute),
			Level:     domain.LevelInfo,
			Subsystem: "com.app",
			Category:  "",
			Sender:    "main",
			Message:   "started",
		},
	}

	state := filter.NewState()
	state.SelectedCategories["com.app"] = map[string]bool{"net": true, "": true}

	out := e.Render(state, entries, since)

	t.Run("all line endings are CRLF", func(t *testing.T) {
		assert.NotContains(t, strings.ReplaceAll(out, "\r\n", ""), "\n")
	})

	t.Run("header names app, filter and cutoff", func(t *testing.T) {
		assert.Contains(t, out, "MyApp log export\r\n")
		assert.Contains(t, out, "Generated: 2026-08-31T15:00:00Z\r\n")
		assert.Contains(t, out, "Filter: Subsystems: com.app | Categories: Uncategorized and net\r\n")
		assert.Contains(t, out, "Since: 2026-08-31T14:00:00Z\r\n")
	})

	t.Run("entry blocks carry glyph and metadata", func(t *testing.T) {
		assert.Contains(t, out, "[2026-08-31 14:30:00.000] ‼ request failed\r\n")
		assert.Contains(t, out, "sender: AppKit | subsystem: com.app | category: net\r\n")
		assert.Contains(t, out, "sender: main | subsystem: com.app | category: Uncategorized\r\n")
	})

	t.Run("blocks separated by blank line", func(t *testing.T) {
		assert.Contains(t, out, "category: net\r\n\r\n[2026-08-31 14:50:00.000]")
	})
}

func TestExporter_WriteFile(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	e := newTestExporter("MyApp", now)
	state := filter.NewState()

	t.Run("writes archive and returns path", func(t *testing.T) {
		dir := t.TempDir()

		path, err := e.WriteFile(dir, state, []domain.LogEntry{
			{Timestamp: now, Level: domain.LevelInfo, Subsystem: "com.app", Message: "hello"},
		}, now.Add(-time.Hour))
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "MyApp-logs-20260831-150000.log"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello")
	})

	t.Run("filename and header share one timestamp", func(t *testing.T) {
		e := newTestExporter("MyApp", now)
		calls := 0
		e.now = func() time.Time {
			ts := now.Add(time.Duration(calls) * time.Second)
			calls++
			return ts
		}
		dir := t.TempDir()

		path, err := e.WriteFile(dir, filter.NewState(), nil, now.Add(-time.Hour))
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "MyApp-logs-20260831-150000.log"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Generated: 2026-08-31T15:00:00Z\r\n")
	})

	t.Run("write failure wraps ExportFailed and leaves state alone", func(t *testing.T) {
		state.SelectedSubsystems["com.app"] = true

		_, err := e.WriteFile(filepath.Join(t.TempDir(), "missing", "nested"), state, nil, now)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrExportFailed)
		assert.True(t, state.SelectedSubsystems["com.app"])
	})
}
