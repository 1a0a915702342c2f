package domain

import "time"

// Level represents the severity of a log entry
type Level string

const (
	LevelDebug  Level = "debug"
	LevelInfo   Level = "info"
	LevelNotice Level = "notice"
	LevelError  Level = "error"
	LevelFault  Level = "fault"
)

// String returns the string representation of Level
func (l Level) String() string {
	return string(l)
}

// Glyph returns the single-character marker used for this level in
// exported archives
func (l Level) Glyph() string {
	switch l {
	case LevelDebug:
		return "·"
	case LevelInfo:
		return "i"
	case LevelNotice:
		return "◆"
	case LevelError:
		return "‼"
	case LevelFault:
		return "✖"
	default:
		return "•"
	}
}

// LogEntry represents a single collected log message. Entries are
// immutable once observed; filtering only reads Subsystem and Category.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     Level     `json:"level"`
	Subsystem string    `json:"subsystem"`
	Category  string    `json:"category"` // empty means "uncategorized"
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
}
