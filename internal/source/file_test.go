package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charliek/logview/internal/domain"
)

func writeLogFile(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestFileSource_Fetch(t *testing.T) {
	t.Run("reads entries since cutoff", func(t *testing.T) {
		path := writeLogFile(t, `{"timestamp":"2026-08-31T10:00:00Z","level":"info","subsystem":"com.app","category":"net","sender":"main","message":"old"}
{"timestamp":"2026-08-31T12:00:00Z","level":"error","subsystem":"com.app","category":"ui","sender":"main","message":"recent"}
`)
		src := NewFileSource(path, nil)

		since := time.Date(2026, 8, 31, 11, 0, 0, 0, time.UTC)
		entries, err := src.Fetch(context.Background(), since)
		require.NoError(t, err)

		require.Len(t, entries, 1)
		assert.Equal(t, "recent", entries[0].Message)
		assert.Equal(t, domain.LevelError, entries[0].Level)
		assert.Equal(t, "ui", entries[0].Category)
	})

	t.Run("skips malformed and blank lines", func(t *testing.T) {
		path := writeLogFile(t, `not json at all

{"timestamp":"2026-08-31T12:00:00Z","subsystem":"com.app","message":"good"}
{"timestamp": broken
`)
		src := NewFileSource(path, nil)

		entries, err := src.Fetch(context.Background(), time.Time{})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "good", entries[0].Message)
	})

	t.Run("missing file wraps SourceUnavailable", func(t *testing.T) {
		src := NewFileSource(filepath.Join(t.TempDir(), "nope.log"), nil)

		_, err := src.Fetch(context.Background(), time.Time{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		path := writeLogFile(t, `{"timestamp":"2026-08-31T12:00:00Z","subsystem":"com.app","message":"m"}
`)
		src := NewFileSource(path, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := src.Fetch(ctx, time.Time{})
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})
}
