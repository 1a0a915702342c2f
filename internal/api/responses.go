package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charliek/logview/internal/domain"
)

// StatusResponse represents the response for GET /status
type StatusResponse struct {
	Finished     bool   `json:"finished"`
	TotalEntries int    `json:"total_entries"`
	Subsystems   int    `json:"subsystems"`
	APIVersion   string `json:"api_version"`
}

// LogsResponse represents the response for GET /logs
type LogsResponse struct {
	Logs          []LogEntryResponse `json:"logs"`
	FilteredCount int                `json:"filtered_count"`
	TotalCount    int                `json:"total_count"`
}

// LogEntryResponse represents a single log entry
type LogEntryResponse struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Subsystem string `json:"subsystem"`
	Category  string `json:"category"`
	Sender    string `json:"sender"`
	Message   string `json:"message"`
}

// ToLogEntryResponse converts a domain log entry to its API form
func ToLogEntryResponse(entry domain.LogEntry) LogEntryResponse {
	return LogEntryResponse{
		Timestamp: entry.Timestamp.Format(time.RFC3339Nano),
		Level:     entry.Level.String(),
		Subsystem: entry.Subsystem,
		Category:  entry.Category,
		Sender:    entry.Sender,
		Message:   entry.Message,
	}
}

// FilterResponse represents the response for GET /filter
type FilterResponse struct {
	Subsystems     []SubsystemInfo `json:"subsystems"`
	SubsystemLabel string          `json:"subsystem_label"`
	CategoryLabel  string          `json:"category_label"`
}

// SubsystemInfo describes one subsystem in the effective universe
type SubsystemInfo struct {
	Name               string   `json:"name"`
	Selected           bool     `json:"selected"`
	Categories         []string `json:"categories"`
	SelectedCategories []string `json:"selected_categories,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeJSON writes a JSON response with the given status code
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encoding json response", "error", err)
	}
}

// writeError writes a domain error as a JSON error response
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: err.Error(),
		Code:  domain.ErrorCode(err),
	})
}
