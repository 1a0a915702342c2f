package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/charliek/logview/internal/domain"
	"github.com/charliek/logview/internal/summary"
)

// maxErrorDisplayLen is the maximum length of error messages in the
// status bar
const maxErrorDisplayLen = 60

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHelp:
		return m.helpView()
	case ModeSubsystems:
		return m.menuLayout(m.subsystemMenu())
	case ModeCategories:
		return m.menuLayout(m.categoryMenu())
	default:
		return m.mainView()
	}
}

// mainView renders the log list layout
func (m Model) mainView() string {
	var sb strings.Builder

	sb.WriteString(m.filterPanel())
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.statusBar())

	return sb.String()
}

// menuLayout renders a menu in place of the log viewport
func (m Model) menuLayout(menu string) string {
	var sb strings.Builder

	sb.WriteString(m.filterPanel())
	sb.WriteString("\n")
	sb.WriteString(menu)
	sb.WriteString("\n")
	sb.WriteString(m.statusBar())

	return sb.String()
}

// filterPanel renders the active filter summary header
func (m Model) filterPanel() string {
	state := m.reconciler.State()
	left := m.formatter.SubsystemLabel(state) + "  •  " + m.formatter.CategoryLabel(state)
	return headerStyle.Width(m.width).Render(left)
}

// subsystemMenu renders the subsystem selection menu
func (m Model) subsystemMenu() string {
	subsystems := m.reconciler.Subsystems()
	state := m.reconciler.State()

	var sb strings.Builder
	sb.WriteString(menuTitleStyle.Render("Subsystems") + "\n")

	if len(subsystems) == 0 {
		sb.WriteString(dimStyle.Render("  (no subsystems yet)") + "\n")
	}

	for i, name := range subsystems {
		mark := "[ ]"
		if state.SelectedSubsystems[name] {
			mark = "[x]"
		}

		line := fmt.Sprintf("%s %s", mark, name)
		if cats := state.SelectedCategories[name]; len(cats) > 0 {
			line += dimStyle.Render(fmt.Sprintf("  (%d categories)", len(cats)))
		}

		if i == m.menuCursor {
			sb.WriteString(selectedMenuStyle.Render("> "+line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}

	sb.WriteString("\n" + dimStyle.Render("space: toggle  c/→: categories  x: reset  esc: close"))
	return sb.String()
}

// categoryMenu renders the category menu for the chosen subsystem
func (m Model) categoryMenu() string {
	categories := m.reconciler.Categories(m.menuSubsystem)
	selected := m.reconciler.State().SelectedCategories[m.menuSubsystem]

	var sb strings.Builder
	sb.WriteString(menuTitleStyle.Render("Categories — "+m.menuSubsystem) + "\n")

	if len(categories) == 0 {
		sb.WriteString(dimStyle.Render("  (no categories yet)") + "\n")
	}

	for i, category := range categories {
		mark := "[ ]"
		if selected[category] {
			mark = "[x]"
		}

		line := fmt.Sprintf("%s %s", mark, summary.DisplayCategory(category))

		if i == m.menuCursor {
			sb.WriteString(selectedMenuStyle.Render("> "+line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}

	sb.WriteString("\n" + dimStyle.Render("space: toggle  x: clear  esc/←: back"))
	return sb.String()
}

// statusBar renders the bottom status bar
func (m Model) statusBar() string {
	var left, right string

	switch {
	case m.noticeErr != nil:
		left = errorStyle.Render(m.notice + ": " + truncateError(m.noticeErr, maxErrorDisplayLen))
	case m.notice != "":
		left = m.notice
	case m.refreshing:
		left = "Refreshing..."
	default:
		left = "r: refresh  s: filter  e: export  ?: help"
	}

	visible := len(m.reconciler.Visible())
	total := m.reconciler.TotalCount()
	right = fmt.Sprintf("%d/%d messages", visible, total)

	leftWidth := m.width - lipgloss.Width(right) - 4
	if leftWidth < 0 {
		leftWidth = 0
	}

	leftPart := statusStyle.Width(leftWidth).Render(left)
	rightPart := statusStyle.Render(right)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPart, "  ", rightPart)
}

// updateViewport rebuilds the viewport content from the filtered view
func (m *Model) updateViewport() {
	entries := m.reconciler.Visible()

	if len(entries) == 0 {
		explanation := m.formatter.EmptyExplanation(
			m.reconciler.State(), m.reconciler.Finished(), m.reconciler.TotalCount(), 0)
		m.viewport.SetContent(dimStyle.Render(explanation))
		return
	}

	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = m.formatLogEntry(entry)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// formatLogEntry formats a single log entry for display
func (m Model) formatLogEntry(entry domain.LogEntry) string {
	ts := entry.Timestamp.Format("15:04:05.000")
	subsystem := fmt.Sprintf("%-24s", entry.Subsystem)

	category := ""
	if entry.Category != "" {
		category = dimStyle.Render("[" + entry.Category + "] ")
	}

	return fmt.Sprintf("%s %s %s %s%s",
		dimStyle.Render(ts),
		levelStyle(entry.Level).Render(fmt.Sprintf("%-6s", entry.Level)),
		subsystemStyle(entry.Subsystem, m.reconciler.Subsystems()).Render(subsystem),
		category,
		entry.Message,
	)
}

// helpView renders the help overlay
func (m Model) helpView() string {
	help := `
Logview - Log History Browser

Navigation:
  j/↓        Scroll down
  k/↑        Scroll up
  g/Home     Go to top
  G/End      Go to bottom
  PgUp/PgDn  Page up/down

Filtering:
  s          Subsystem menu (space toggles, →/c opens categories)
  ESC        Reset all filters

Actions:
  r          Refresh log history
  e          Export filtered view to archive
  ?          Toggle help
  q/Ctrl+C   Quit

Press any key to close help...
`

	return helpStyle.Render(help)
}

// truncateError truncates an error message to maxLen characters
func truncateError(err error, maxLen int) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if len(msg) > maxLen {
		return msg[:maxLen-3] + "..."
	}
	return msg
}
