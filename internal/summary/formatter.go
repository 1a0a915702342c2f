package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charliek/logview/internal/filter"
)

// Labels for the all-clear filter states and the uncategorized bucket
const (
	AllSubsystemsLabel = "All subsystems"
	AllCategoriesLabel = "All categories"
	UncategorizedLabel = "Uncategorized"
)

// Formatter renders filter state into the human-readable strings used by
// menus, empty-state overlays, and exported archives.
type Formatter struct {
	lists ListFormatter
}

// NewFormatter creates a formatter using the given list joiner
func NewFormatter(lists ListFormatter) *Formatter {
	return &Formatter{lists: lists}
}

// SubsystemLabel renders the subsystem menu label: "All subsystems" when
// the effective filter is empty, otherwise the selected subsystem names.
func (f *Formatter) SubsystemLabel(state *filter.State) string {
	effective := state.EffectiveSubsystems()
	if len(effective) == 0 {
		return AllSubsystemsLabel
	}
	return f.lists.FormatList(sortedNames(effective))
}

// CategoryLabel renders the category menu label. With no active category
// selection it reads "All categories"; when exactly one subsystem has at
// most two selected categories they are listed outright; otherwise a
// count is shown.
func (f *Formatter) CategoryLabel(state *filter.State) string {
	if !state.HasCategorySelection() {
		return AllCategoriesLabel
	}

	if len(state.SelectedCategories) == 1 {
		for _, cats := range state.SelectedCategories {
			if len(cats) <= 2 {
				return f.lists.FormatList(displayCategories(cats))
			}
		}
	}

	return fmt.Sprintf("Categories (%d)", state.SelectedCategoryCount())
}

// EmptyExplanation explains an empty log list. It distinguishes still
// loading, loaded-but-nothing-collected, and loaded-but-everything
// filtered out; in the last case it names the active filter. Returns ""
// when entries are visible.
func (f *Formatter) EmptyExplanation(state *filter.State, finished bool, total, visible int) string {
	if visible > 0 {
		return ""
	}
	if !finished {
		return "Collecting log messages..."
	}
	if total == 0 {
		return "No log messages were collected."
	}
	return "No log messages match the current filter: " + f.describeFilter(state)
}

// FilterSummary renders the active filter for export headers. Category
// groups are qualified by subsystem name whenever more than one subsystem
// or more than one group is active.
func (f *Formatter) FilterSummary(state *filter.State) string {
	var parts []string

	effective := state.EffectiveSubsystems()
	if len(effective) == 0 {
		parts = append(parts, "Subsystems: all")
	} else {
		parts = append(parts, "Subsystems: "+f.lists.FormatList(sortedNames(effective)))
	}

	if !state.HasCategorySelection() {
		parts = append(parts, "Categories: all")
	} else if len(state.SelectedCategories) == 1 && len(effective) <= 1 {
		for _, cats := range state.SelectedCategories {
			parts = append(parts, "Categories: "+f.lists.FormatList(displayCategories(cats)))
		}
	} else {
		groups := make([]string, 0, len(state.SelectedCategories))
		for _, subsystem := range sortedNames(mapKeysSet(state.SelectedCategories)) {
			cats := state.SelectedCategories[subsystem]
			groups = append(groups, subsystem+": "+f.lists.FormatList(displayCategories(cats)))
		}
		parts = append(parts, "Categories: "+strings.Join(groups, "; "))
	}

	return strings.Join(parts, " | ")
}

// describeFilter names the active subsystems and their category
// selections, semicolon-joined when multiple subsystems are active.
func (f *Formatter) describeFilter(state *filter.State) string {
	effective := state.EffectiveSubsystems()
	if len(effective) == 0 {
		// Only reachable when a category-only filter was just cleared
		// between matching and rendering; fall back to something sane.
		return AllSubsystemsLabel
	}

	descriptions := make([]string, 0, len(effective))
	for _, subsystem := range sortedNames(effective) {
		desc := "subsystem " + subsystem
		if cats := state.SelectedCategories[subsystem]; len(cats) > 0 {
			desc += " (categories: " + f.lists.FormatList(displayCategories(cats)) + ")"
		}
		descriptions = append(descriptions, desc)
	}
	return strings.Join(descriptions, "; ")
}

// DisplayCategory renders a category label for humans, substituting the
// uncategorized label for the empty string.
func DisplayCategory(category string) string {
	if category == "" {
		return UncategorizedLabel
	}
	return category
}

// displayCategories renders a category set in normalized order
func displayCategories(cats map[string]bool) []string {
	labels := make([]string, 0, len(cats))
	for c := range cats {
		labels = append(labels, c)
	}
	labels = filter.NormalizeCategories(labels)

	out := make([]string, len(labels))
	for i, c := range labels {
		out[i] = DisplayCategory(c)
	}
	return out
}

// sortedNames returns set members in case-insensitive lexical order
func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
	return names
}

func mapKeysSet(m map[string]map[string]bool) map[string]bool {
	set := make(map[string]bool, len(m))
	for k := range m {
		set[k] = true
	}
	return set
}
