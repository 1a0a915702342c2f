// Package export renders the currently visible log entries into a
// shareable text archive.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/charliek/logview/internal/appinfo"
	"github.com/charliek/logview/internal/domain"
	"github.com/charliek/logview/internal/filter"
	"github.com/charliek/logview/internal/summary"
)

// crlf is used for all line endings in exported archives for portability
// with the target archive consumers
const crlf = "\r\n"

// entryTimeFormat is the timestamp layout used in export bodies
const entryTimeFormat = "2006-01-02 15:04:05.000"

// filenameTimeFormat is the timestamp suffix layout for archive filenames
const filenameTimeFormat = "20060102-150405"

// unsafeFilenameChars matches every run of characters not kept verbatim
// in archive filenames
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Exporter writes filtered log views to disk. It reads selection state
// but never mutates it.
type Exporter struct {
	identity  appinfo.Provider
	formatter *summary.Formatter
	now       func() time.Time
}

// NewExporter creates an exporter
func NewExporter(identity appinfo.Provider, formatter *summary.Formatter) *Exporter {
	return &Exporter{
		identity:  identity,
		formatter: formatter,
		now:       time.Now,
	}
}

// Filename derives the archive filename from the app name and timestamp:
// <sanitized-app-name>-logs-<yyyyMMdd-HHmmss>.log
func Filename(appName string, t time.Time) string {
	name := sanitizeName(appName)
	return fmt.Sprintf("%s-logs-%s.log", name, t.Format(filenameTimeFormat))
}

// sanitizeName keeps only alphanumerics, '-' and '_', collapsing any run
// of other characters into a single '-'. An empty result falls back to a
// fixed name.
func sanitizeName(name string) string {
	sanitized := unsafeFilenameChars.ReplaceAllString(name, "-")
	sanitized = strings.Trim(sanitized, "-")
	if sanitized == "" {
		return "logs"
	}
	return sanitized
}

// Render produces the full archive text: a header naming the app, the
// generation time, the active filter, and the since cutoff, followed by
// one block per entry. All line endings are CRLF.
func (e *Exporter) Render(state *filter.State, entries []domain.LogEntry, since time.Time) string {
	return e.render(e.now(), state, entries, since)
}

func (e *Exporter) render(generated time.Time, state *filter.State, entries []domain.LogEntry, since time.Time) string {
	var sb strings.Builder

	sb.WriteString(e.identity.DisplayName() + " log export" + crlf)
	sb.WriteString("Generated: " + generated.Format(time.RFC3339) + crlf)
	sb.WriteString("Filter: " + e.formatter.FilterSummary(state) + crlf)
	sb.WriteString("Since: " + since.Format(time.RFC3339) + crlf)
	sb.WriteString(crlf)

	for i, entry := range entries {
		if i > 0 {
			sb.WriteString(crlf)
		}
		sb.WriteString(fmt.Sprintf("[%s] %s %s%s",
			entry.Timestamp.Format(entryTimeFormat), entry.Level.Glyph(), entry.Message, crlf))
		sb.WriteString(fmt.Sprintf("sender: %s | subsystem: %s | category: %s%s",
			entry.Sender, entry.Subsystem, summary.DisplayCategory(entry.Category), crlf))
	}

	return sb.String()
}

// WriteFile renders the archive and writes it under dir, returning the
// full path of the written file. The filename and the header share one
// timestamp. Failures wrap domain.ErrExportFailed; selection state is
// unaffected either way.
func (e *Exporter) WriteFile(dir string, state *filter.State, entries []domain.LogEntry, since time.Time) (string, error) {
	now := e.now()
	content := e.render(now, state, entries, since)
	path := filepath.Join(dir, Filename(e.identity.DisplayName(), now))

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("%w: writing %s: %v", domain.ErrExportFailed, path, err)
	}
	return path, nil
}
