package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charliek/logview/internal/constants"
	"github.com/charliek/logview/internal/filter"
	"github.com/charliek/logview/internal/source"
	"github.com/charliek/logview/internal/summary"
)

// Handlers contains all HTTP handlers. The reconciler is not safe for
// concurrent use, so every access goes through the mutex; the API is the
// state-owning context in serve mode.
type Handlers struct {
	mu         sync.Mutex
	reconciler *filter.Reconciler
	formatter  *summary.Formatter
	src        source.Source
	logger     *slog.Logger
	window     time.Duration
	seq        uint64
}

// NewHandlers creates new HTTP handlers
func NewHandlers(reconciler *filter.Reconciler, formatter *summary.Formatter, src source.Source, window time.Duration, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		reconciler: reconciler,
		formatter:  formatter,
		src:        src,
		logger:     logger,
		window:     window,
	}
}

// Refresh fetches a fresh batch from the source and applies it. A source
// failure preserves the previous batch and selections but still marks
// collection finished.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	since := time.Now().Add(-h.window)

	entries, err := h.src.Fetch(r.Context(), since)
	if err != nil {
		h.reconciler.RefreshFailed(h.seq)
		h.writeError(w, err)
		return
	}
	h.reconciler.ApplyRefresh(h.seq, entries)

	h.writeJSON(w, http.StatusOK, StatusResponse{
		Finished:     h.reconciler.Finished(),
		TotalEntries: h.reconciler.TotalCount(),
		Subsystems:   len(h.reconciler.Subsystems()),
		APIVersion:   "v1",
	})
}

// GetStatus handles GET /api/v1/status
func (h *Handlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	resp := StatusResponse{
		Finished:     h.reconciler.Finished(),
		TotalEntries: h.reconciler.TotalCount(),
		Subsystems:   len(h.reconciler.Subsystems()),
		APIVersion:   "v1",
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// GetLogs handles GET /api/v1/logs. Query parameters:
//   - subsystem (repeatable): restrict to these subsystems
//   - category (repeatable): restrict the named subsystems to these
//     categories ("-" selects the uncategorized bucket)
//   - limit: return at most this many entries (the most recent ones)
func (h *Handlers) GetLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	subsystems := make(map[string]bool)
	for _, s := range query["subsystem"] {
		if s != "" {
			subsystems[s] = true
		}
	}

	categories := make(map[string]map[string]bool)
	if len(subsystems) > 0 {
		for _, c := range query["category"] {
			if c == "-" {
				c = ""
			}
			for s := range subsystems {
				if categories[s] == nil {
					categories[s] = make(map[string]bool)
				}
				categories[s][c] = true
			}
		}
	}

	limit := constants.DefaultLogLimit
	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > constants.MaxLogEntries {
			h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: "invalid limit parameter",
				Code:  "INVALID_PARAMETER",
			})
			return
		}
		limit = n
	}

	h.mu.Lock()
	entries := h.reconciler.Entries()
	total := len(entries)
	filtered := filter.FilterEntries(entries, subsystems, categories)
	h.mu.Unlock()

	filteredCount := len(filtered)
	if len(filtered) > limit {
		filtered = filtered[len(filtered)-limit:]
	}

	resp := LogsResponse{
		Logs:          make([]LogEntryResponse, len(filtered)),
		FilteredCount: filteredCount,
		TotalCount:    total,
	}
	for i, entry := range filtered {
		resp.Logs[i] = ToLogEntryResponse(entry)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// GetFilter handles GET /api/v1/filter
func (h *Handlers) GetFilter(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	state := h.reconciler.State()

	resp := FilterResponse{
		Subsystems:     make([]SubsystemInfo, 0, len(h.reconciler.Subsystems())),
		SubsystemLabel: h.formatter.SubsystemLabel(state),
		CategoryLabel:  h.formatter.CategoryLabel(state),
	}

	for _, name := range h.reconciler.Subsystems() {
		info := SubsystemInfo{
			Name:       name,
			Selected:   state.SelectedSubsystems[name],
			Categories: h.reconciler.Categories(name),
		}
		if cats := state.SelectedCategories[name]; len(cats) > 0 {
			info.SelectedCategories = filter.NormalizeCategories(setMembers(cats))
		}
		resp.Subsystems = append(resp.Subsystems, info)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func setMembers(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
