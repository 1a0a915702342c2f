package source

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charliek/logview/internal/constants"
	"github.com/charliek/logview/internal/domain"
)

// FileSource reads log entries from a JSON-lines file, one entry object
// per line. Malformed lines are skipped rather than failing the batch.
type FileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource creates a file-backed log source
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{path: path, logger: logger}
}

// Fetch reads all entries with a timestamp at or after since. Open and
// read failures wrap domain.ErrSourceUnavailable.
func (s *FileSource) Fetch(ctx context.Context, since time.Time) ([]domain.LogEntry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", domain.ErrSourceUnavailable, s.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, constants.ScannerBufferSize), constants.ScannerMaxBufferSize)

	var entries []domain.LogEntry
	skipped := 0
	line := 0

	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
		}

		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var entry domain.LogEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			skipped++
			s.logger.Debug("skipping malformed log line", "line", line, "error", err)
			continue
		}

		if entry.Timestamp.Before(since) {
			continue
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrSourceUnavailable, s.path, err)
	}

	if skipped > 0 {
		s.logger.Warn("skipped malformed log lines", "path", s.path, "count", skipped)
	}

	return entries, nil
}
