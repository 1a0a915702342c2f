package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charliek/logview/internal/export"
	"github.com/charliek/logview/internal/filter"
	"github.com/charliek/logview/internal/source"
	"github.com/charliek/logview/internal/summary"
)

// Options configures the TUI run
type Options struct {
	// Window is how far back each refresh fetches
	Window time.Duration

	// ExportDir is where archives are written
	ExportDir string
}

// Run starts the TUI application and blocks until it exits
func Run(reconciler *filter.Reconciler, src source.Source, formatter *summary.Formatter, exporter *export.Exporter, opts Options) error {
	model := NewModel(reconciler, src, formatter, exporter, opts.Window, opts.ExportDir)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
