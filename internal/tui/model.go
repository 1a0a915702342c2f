package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/charliek/logview/internal/domain"
	"github.com/charliek/logview/internal/export"
	"github.com/charliek/logview/internal/filter"
	"github.com/charliek/logview/internal/source"
	"github.com/charliek/logview/internal/summary"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSubsystems
	ModeCategories
	ModeHelp
)

// noticeClearDelay is how long refresh/export results stay in the status
// bar before clearing
const noticeClearDelay = 3 * time.Second

// Model is the bubbletea model for the TUI. Its Update loop is the
// single state-owning context: every selection mutation and every
// reconciliation write happens here, while refreshes run off-loop as
// commands and publish their results back as messages.
type Model struct {
	// Dependencies
	reconciler *filter.Reconciler
	src        source.Source
	formatter  *summary.Formatter
	exporter   *export.Exporter

	// Refresh policy
	window     time.Duration
	nextSeq    uint64
	refreshing bool
	lastSince  time.Time

	// Export
	exportDir string

	// UI components
	viewport viewport.Model

	// Mode and menus
	mode          Mode
	menuCursor    int
	menuSubsystem string // subsystem whose categories are listed

	// Status notices
	notice    string
	noticeErr error

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewModel creates a new TUI model
func NewModel(reconciler *filter.Reconciler, src source.Source, formatter *summary.Formatter, exporter *export.Exporter, window time.Duration, exportDir string) Model {
	return Model{
		reconciler: reconciler,
		src:        src,
		formatter:  formatter,
		exporter:   exporter,
		window:     window,
		exportDir:  exportDir,
		nextSeq:    1,
		refreshing: true,
	}
}

// Init starts the first refresh cycle
func (m Model) Init() tea.Cmd {
	return fetchCmd(m.src, 1, time.Now().Add(-m.window))
}

// refreshMsg carries a successfully fetched batch
type refreshMsg struct {
	seq     uint64
	since   time.Time
	entries []domain.LogEntry
}

// refreshErrMsg carries a failed refresh attempt
type refreshErrMsg struct {
	seq uint64
	err error
}

// exportResultMsg is sent when an export completes
type exportResultMsg struct {
	path string
	err  error
}

// noticeClearMsg clears the status notice after a delay
type noticeClearMsg struct{}

// fetchCmd builds a command that fetches a batch off the update loop.
// Each refresh is tagged with a sequence number so a stale result
// arriving after a newer one is discarded.
func fetchCmd(src source.Source, seq uint64, since time.Time) tea.Cmd {
	return func() tea.Msg {
		entries, err := src.Fetch(context.Background(), since)
		if err != nil {
			return refreshErrMsg{seq: seq, err: err}
		}
		return refreshMsg{seq: seq, since: since, entries: entries}
	}
}

// exportCmd builds a command that writes the current filtered view to an
// archive file. The selection state is deep-copied here, on the update
// loop, so the command goroutine never touches the live maps while
// toggles and refreshes keep mutating them.
func (m *Model) exportCmd() tea.Cmd {
	state := m.reconciler.State().Clone()
	entries := m.reconciler.Visible()
	since := m.lastSince
	exporter := m.exporter
	dir := m.exportDir

	return func() tea.Msg {
		path, err := exporter.WriteFile(dir, state, entries, since)
		return exportResultMsg{path: path, err: err}
	}
}

// noticeClearCmd returns a command that clears the notice after a delay
func noticeClearCmd() tea.Cmd {
	return tea.Tick(noticeClearDelay, func(t time.Time) tea.Msg {
		return noticeClearMsg{}
	})
}

// handleWindowSize handles window resize messages
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	headerHeight := 2 // Filter summary panel
	footerHeight := 2 // Status bar
	verticalMargins := headerHeight + footerHeight

	viewportHeight := msg.Height - verticalMargins
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, viewportHeight)
		m.viewport.YPosition = headerHeight
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = viewportHeight
	}
}
