package tui

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss"

	"github.com/charliek/logview/internal/domain"
)

// Colors
var (
	// Level colors
	debugColor  = lipgloss.Color("8")   // Gray
	infoColor   = lipgloss.Color("12")  // Blue
	noticeColor = lipgloss.Color("11")  // Yellow
	errColor    = lipgloss.Color("9")   // Red
	faultColor  = lipgloss.Color("201") // Magenta

	// UI colors
	headerBg   = lipgloss.Color("235")
	statusBg   = lipgloss.Color("236")
	helpBg     = lipgloss.Color("234")
	errorColor = lipgloss.Color("9")
	dimColor   = lipgloss.Color("8")
	accent     = lipgloss.Color("14")

	// Subsystem name colors (for log lines)
	subsystemColorList = []lipgloss.Color{
		lipgloss.Color("14"),  // Cyan
		lipgloss.Color("13"),  // Magenta
		lipgloss.Color("12"),  // Blue
		lipgloss.Color("11"),  // Yellow
		lipgloss.Color("10"),  // Green
		lipgloss.Color("208"), // Orange
		lipgloss.Color("207"), // Pink
		lipgloss.Color("159"), // Light blue
		lipgloss.Color("156"), // Light green
	}
)

// Styles
var (
	debugStyle  = lipgloss.NewStyle().Foreground(debugColor)
	infoStyle   = lipgloss.NewStyle().Foreground(infoColor)
	noticeStyle = lipgloss.NewStyle().Foreground(noticeColor)
	errStyle    = lipgloss.NewStyle().Foreground(errColor).Bold(true)
	faultStyle  = lipgloss.NewStyle().Foreground(faultColor).Bold(true)

	defaultLevelStyle     = lipgloss.NewStyle()
	defaultSubsystemStyle = lipgloss.NewStyle()

	headerStyle = lipgloss.NewStyle().
			Background(headerBg).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Background(statusBg).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Background(helpBg).
			Padding(1, 2)

	menuTitleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1)

	selectedMenuStyle = lipgloss.NewStyle().
				Foreground(accent)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)

// levelStyle returns the style for a log level
func levelStyle(level domain.Level) lipgloss.Style {
	switch level {
	case domain.LevelDebug:
		return debugStyle
	case domain.LevelInfo:
		return infoStyle
	case domain.LevelNotice:
		return noticeStyle
	case domain.LevelError:
		return errStyle
	case domain.LevelFault:
		return faultStyle
	default:
		return defaultLevelStyle
	}
}

// subsystemStyle returns a stable color for a subsystem name. Known
// subsystems get their universe index; anything else hashes so the color
// doesn't shift between refreshes.
func subsystemStyle(name string, subsystems []string) lipgloss.Style {
	for i, s := range subsystems {
		if s == name {
			return lipgloss.NewStyle().Foreground(subsystemColorList[i%len(subsystemColorList)])
		}
	}
	if name == "" {
		return defaultSubsystemStyle
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return lipgloss.NewStyle().Foreground(subsystemColorList[int(h.Sum32())%len(subsystemColorList)])
}
