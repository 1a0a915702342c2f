// Package source provides log sources: opaque collaborators that yield a
// batch of log entries for a time window.
package source

import (
	"context"
	"time"

	"github.com/charliek/logview/internal/domain"
)

// Source yields one batch of log entries per refresh cycle. Fetch
// returns entries at or after since; failures wrap
// domain.ErrSourceUnavailable and must be treated by callers as "no new
// data this cycle".
type Source interface {
	Fetch(ctx context.Context, since time.Time) ([]domain.LogEntry, error)
}

// MemorySource serves a fixed set of entries, for tests and demos
type MemorySource struct {
	Entries []domain.LogEntry
	Err     error
}

// Fetch returns the configured entries at or after since, or the
// configured error.
func (s *MemorySource) Fetch(ctx context.Context, since time.Time) ([]domain.LogEntry, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	result := make([]domain.LogEntry, 0, len(s.Entries))
	for _, entry := range s.Entries {
		if entry.Timestamp.Before(since) {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}
