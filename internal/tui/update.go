package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)
		m.updateViewport()

	case refreshMsg:
		if m.reconciler.ApplyRefresh(msg.seq, msg.entries) {
			m.lastSince = msg.since
		}
		if msg.seq == m.nextSeq {
			m.refreshing = false
		}
		m.clampMenuCursor()
		m.updateViewport()

	case refreshErrMsg:
		m.reconciler.RefreshFailed(msg.seq)
		if msg.seq == m.nextSeq {
			m.refreshing = false
		}
		m.notice = "Refresh failed"
		m.noticeErr = msg.err
		m.updateViewport()
		cmds = append(cmds, noticeClearCmd())

	case exportResultMsg:
		if msg.err != nil {
			m.notice = "Export failed"
			m.noticeErr = msg.err
		} else {
			m.notice = "Exported: " + msg.path
			m.noticeErr = nil
		}
		cmds = append(cmds, noticeClearCmd())

	case noticeClearMsg:
		m.notice = ""
		m.noticeErr = nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeSubsystems:
		return m.handleSubsystemMenuKey(msg)
	case ModeCategories:
		return m.handleCategoryMenuKey(msg)
	case ModeHelp:
		m.handleHelpKey(msg)
		return m, nil
	}

	// Normal mode keys
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		if m.refreshing {
			// One refresh in flight at a time; ignore the request
			return m, nil
		}
		m.nextSeq++
		m.refreshing = true
		return m, fetchCmd(m.src, m.nextSeq, time.Now().Add(-m.window))

	case "e":
		return m, m.exportCmd()

	case "s":
		m.mode = ModeSubsystems
		m.menuCursor = 0
		return m, nil

	case "?":
		m.mode = ModeHelp
		return m, nil

	case "esc":
		m.reconciler.Reset()
		m.updateViewport()
		return m, nil
	}

	if m.handleNavigationKey(msg) {
		return m, nil
	}

	return m, nil
}

// handleSubsystemMenuKey handles keys while the subsystem menu is open
func (m Model) handleSubsystemMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	subsystems := m.reconciler.Subsystems()

	switch msg.String() {
	case "esc", "q", "s":
		m.mode = ModeNormal
		m.updateViewport()
		return m, nil

	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
		return m, nil

	case "down", "j":
		if m.menuCursor < len(subsystems)-1 {
			m.menuCursor++
		}
		return m, nil

	case " ", "enter":
		if m.menuCursor < len(subsystems) {
			m.reconciler.ToggleSubsystem(subsystems[m.menuCursor])
			m.clampMenuCursor()
			m.updateViewport()
		}
		return m, nil

	case "right", "l", "c":
		if m.menuCursor < len(subsystems) {
			m.menuSubsystem = subsystems[m.menuCursor]
			m.mode = ModeCategories
			m.menuCursor = 0
		}
		return m, nil

	case "x":
		m.reconciler.Reset()
		m.clampMenuCursor()
		m.updateViewport()
		return m, nil
	}

	return m, nil
}

// handleCategoryMenuKey handles keys while a category menu is open
func (m Model) handleCategoryMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	categories := m.reconciler.Categories(m.menuSubsystem)

	switch msg.String() {
	case "esc", "q", "left", "h":
		m.mode = ModeSubsystems
		m.menuCursor = indexOf(m.reconciler.Subsystems(), m.menuSubsystem)
		return m, nil

	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
		return m, nil

	case "down", "j":
		if m.menuCursor < len(categories)-1 {
			m.menuCursor++
		}
		return m, nil

	case " ", "enter":
		if m.menuCursor < len(categories) {
			m.reconciler.ToggleCategory(m.menuSubsystem, categories[m.menuCursor])
			m.updateViewport()
		}
		return m, nil

	case "x":
		m.reconciler.ClearCategories(m.menuSubsystem)
		m.updateViewport()
		return m, nil
	}

	return m, nil
}

// handleHelpKey handles keys in help mode
func (m *Model) handleHelpKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "?", "q", "enter":
		m.mode = ModeNormal
	}
}

// handleNavigationKey handles viewport navigation keys. Returns true if
// the key was handled.
func (m *Model) handleNavigationKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		m.viewport.LineUp(1)
		return true

	case "down", "j":
		m.viewport.LineDown(1)
		return true

	case "pgup":
		m.viewport.HalfViewUp()
		return true

	case "pgdown":
		m.viewport.HalfViewDown()
		return true

	case "home", "g":
		m.viewport.GotoTop()
		return true

	case "end", "G":
		m.viewport.GotoBottom()
		return true
	}

	return false
}

// clampMenuCursor keeps the menu cursor inside the current menu after
// the universe shrinks or grows
func (m *Model) clampMenuCursor() {
	var size int
	switch m.mode {
	case ModeSubsystems:
		size = len(m.reconciler.Subsystems())
	case ModeCategories:
		size = len(m.reconciler.Categories(m.menuSubsystem))
	default:
		return
	}
	if m.menuCursor >= size {
		m.menuCursor = size - 1
	}
	if m.menuCursor < 0 {
		m.menuCursor = 0
	}
}

// indexOf returns the index of name in names, or 0 if absent
func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}
