package filter

// State holds the user's current filter selections. It is mutated in
// place by user actions and by sanitization after each refresh; all
// mutations must happen on a single owning goroutine (the TUI update
// loop, or behind the API handlers' lock).
type State struct {
	// SelectedSubsystems is the explicit subsystem selection. Empty
	// means "match all subsystems".
	SelectedSubsystems map[string]bool

	// SelectedCategories maps subsystem -> selected category set. A
	// present, non-empty set restricts that subsystem to those
	// categories. Empty sets are never stored; keys are removed instead.
	SelectedCategories map[string]map[string]bool
}

// NewState creates an empty selection state
func NewState() *State {
	return &State{
		SelectedSubsystems: make(map[string]bool),
		SelectedCategories: make(map[string]map[string]bool),
	}
}

// EffectiveSubsystems derives the subsystem filter actually applied:
// the union of the explicit selection and every subsystem that has a
// category selection. A category selection alone is sufficient to scope
// filtering to its subsystem, even while other subsystems are explicitly
// selected.
func (s *State) EffectiveSubsystems() map[string]bool {
	eff := make(map[string]bool, len(s.SelectedSubsystems)+len(s.SelectedCategories))
	for name := range s.SelectedSubsystems {
		eff[name] = true
	}
	for name := range s.SelectedCategories {
		eff[name] = true
	}
	return eff
}

// Clone returns a deep copy of the selection state. Readers running off
// the owning context (export commands) work on a clone so the owner can
// keep mutating the live maps.
func (s *State) Clone() *State {
	clone := &State{
		SelectedSubsystems: copySet(s.SelectedSubsystems),
		SelectedCategories: make(map[string]map[string]bool, len(s.SelectedCategories)),
	}
	for subsystem, cats := range s.SelectedCategories {
		clone.SelectedCategories[subsystem] = copySet(cats)
	}
	return clone
}

// HasCategorySelection returns true if any subsystem has an active
// category selection
func (s *State) HasCategorySelection() bool {
	return len(s.SelectedCategories) > 0
}

// SelectedCategoryCount returns the total number of selected categories
// across all subsystems
func (s *State) SelectedCategoryCount() int {
	n := 0
	for _, cats := range s.SelectedCategories {
		n += len(cats)
	}
	return n
}

// IsEmpty returns true if no filters are set
func (s *State) IsEmpty() bool {
	return len(s.SelectedSubsystems) == 0 && len(s.SelectedCategories) == 0
}

// Reset clears both the subsystem and category selections
func (s *State) Reset() {
	s.SelectedSubsystems = make(map[string]bool)
	s.SelectedCategories = make(map[string]map[string]bool)
}
