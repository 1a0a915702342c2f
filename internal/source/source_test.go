package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charliek/logview/internal/domain"
)

func TestMemorySource(t *testing.T) {
	now := time.Now()

	t.Run("filters by since", func(t *testing.T) {
		src := &MemorySource{Entries: []domain.LogEntry{
			{Timestamp: now.Add(-2 * time.Hour), Message: "old"},
			{Timestamp: now.Add(-10 * time.Minute), Message: "recent"},
		}}

		entries, err := src.Fetch(context.Background(), now.Add(-time.Hour))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "recent", entries[0].Message)
	})

	t.Run("returns configured error", func(t *testing.T) {
		src := &MemorySource{Err: domain.ErrSourceUnavailable}

		_, err := src.Fetch(context.Background(), now)
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})
}
