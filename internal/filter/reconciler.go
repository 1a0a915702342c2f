package filter

import (
	"github.com/charliek/logview/internal/domain"
)

// Reconciler owns the selection state and the subsystem/category
// universes derived from the most recent batch of log entries. It ingests
// one batch per refresh cycle, recomputes the universes, and re-sanitizes
// selections so they stay coherent as the universe changes.
//
// The reconciler performs no I/O and is not safe for concurrent use;
// callers serialize access on a single owning context.
type Reconciler struct {
	state    *State
	defaults []string

	entries    []domain.LogEntry
	subsystems []string            // effective universe, display order
	categories map[string][]string // per-subsystem normalized categories

	finished bool
	lastSeq  uint64
}

// NewReconciler creates a reconciler seeded with the given default
// subsystems. Defaults stay in the subsystem universe even when the
// latest batch contains no entries for them.
func NewReconciler(defaultSubsystems []string) *Reconciler {
	defaults := make([]string, 0, len(defaultSubsystems))
	for _, s := range defaultSubsystems {
		if s != "" {
			defaults = append(defaults, s)
		}
	}

	r := &Reconciler{
		state:      NewState(),
		defaults:   defaults,
		categories: make(map[string][]string),
	}
	r.recompute()
	return r
}

// ApplyRefresh ingests a freshly fetched batch of entries. Each refresh
// carries a monotonically increasing sequence number; a result older
// than the last applied one is discarded (last write wins, never an
// out-of-order overwrite). Returns true if the batch was applied.
func (r *Reconciler) ApplyRefresh(seq uint64, entries []domain.LogEntry) bool {
	if seq < r.lastSeq {
		return false
	}
	r.lastSeq = seq

	r.entries = entries
	r.recompute()
	r.finished = true
	return true
}

// RefreshFailed records a failed refresh attempt. The previous entries,
// universes, and selections are all preserved; only the
// finished-collecting latch flips, so consumers can distinguish "still
// loading" from "loaded but empty". Stale failures are ignored.
func (r *Reconciler) RefreshFailed(seq uint64) {
	if seq < r.lastSeq {
		return
	}
	r.lastSeq = seq
	r.finished = true
}

// ToggleSubsystem adds or removes a subsystem from the explicit
// selection. Toggling a subsystem off also drops any category selection
// for it; toggling on leaves an existing category selection untouched.
func (r *Reconciler) ToggleSubsystem(subsystem string) {
	if subsystem == "" {
		return
	}

	if r.state.SelectedSubsystems[subsystem] {
		delete(r.state.SelectedSubsystems, subsystem)
		delete(r.state.SelectedCategories, subsystem)
	} else {
		r.state.SelectedSubsystems[subsystem] = true
	}
	r.recompute()
}

// ToggleCategory adds or removes a category selection for a subsystem.
// Removing the last selected category deletes the subsystem's entry
// entirely; empty sets are never stored.
func (r *Reconciler) ToggleCategory(subsystem, category string) {
	if subsystem == "" {
		return
	}

	cats := r.state.SelectedCategories[subsystem]
	if cats == nil {
		cats = make(map[string]bool)
		r.state.SelectedCategories[subsystem] = cats
	}

	if cats[category] {
		delete(cats, category)
	} else {
		cats[category] = true
	}
	if len(cats) == 0 {
		delete(r.state.SelectedCategories, subsystem)
	}
	r.recompute()
}

// ClearCategories removes the category selection for a subsystem
func (r *Reconciler) ClearCategories(subsystem string) {
	delete(r.state.SelectedCategories, subsystem)
	r.recompute()
}

// Reset clears all subsystem and category selections
func (r *Reconciler) Reset() {
	r.state.Reset()
	r.recompute()
}

// State returns the mutable selection state. Callers must not retain it
// across refreshes.
func (r *Reconciler) State() *State {
	return r.state
}

// Subsystems returns the effective subsystem universe in display order:
// subsystems seen in the latest batch, configured defaults, and any
// subsystem referenced by the current selection.
func (r *Reconciler) Subsystems() []string {
	return r.subsystems
}

// Categories returns the known categories for a subsystem in display
// order. Every subsystem in the universe has an entry, possibly empty,
// so menus can render "no categories yet" rather than omitting it.
func (r *Reconciler) Categories(subsystem string) []string {
	return r.categories[subsystem]
}

// Entries returns the current batch unfiltered
func (r *Reconciler) Entries() []domain.LogEntry {
	return r.entries
}

// Visible returns the entries of the current batch passing the active
// filter, in batch order.
func (r *Reconciler) Visible() []domain.LogEntry {
	return FilterEntries(r.entries, r.state.EffectiveSubsystems(), r.state.SelectedCategories)
}

// TotalCount returns the size of the current batch before filtering
func (r *Reconciler) TotalCount() int {
	return len(r.entries)
}

// Finished reports whether at least one refresh cycle has completed,
// successfully or not.
func (r *Reconciler) Finished() bool {
	return r.finished
}

// recompute rebuilds the subsystem and category universes from the
// current batch and selection state, then re-sanitizes the selection.
func (r *Reconciler) recompute() {
	universe := make(map[string]bool)
	observed := make(map[string][]string)

	for _, entry := range r.entries {
		if entry.Subsystem == "" {
			continue
		}
		universe[entry.Subsystem] = true
		observed[entry.Subsystem] = append(observed[entry.Subsystem], entry.Category)
	}
	for _, s := range r.defaults {
		universe[s] = true
	}
	for s := range r.state.SelectedSubsystems {
		if s != "" {
			universe[s] = true
		}
	}
	for s := range r.state.SelectedCategories {
		if s != "" {
			universe[s] = true
		}
	}

	subsystems := make([]string, 0, len(universe))
	for s := range universe {
		subsystems = append(subsystems, s)
	}
	sortSubsystems(subsystems)
	r.subsystems = subsystems

	categories := make(map[string][]string, len(universe))
	for _, s := range subsystems {
		labels := observed[s]
		// A selected category stays available (and checked) even when
		// the latest batch happens not to contain it.
		for c := range r.state.SelectedCategories[s] {
			labels = append(labels, c)
		}
		categories[s] = NormalizeCategories(labels)
	}
	r.categories = categories

	r.state.SelectedCategories = SanitizeSelections(r.state.SelectedCategories, categories)
}
