package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charliek/logview/internal/filter"
)

func newTestFormatter() *Formatter {
	return NewFormatter(englishListFormatter{})
}

func stateWith(subsystems []string, categories map[string][]string) *filter.State {
	s := filter.NewState()
	for _, name := range subsystems {
		s.SelectedSubsystems[name] = true
	}
	for subsystem, cats := range categories {
		selected := make(map[string]bool, len(cats))
		for _, c := range cats {
			selected[c] = true
		}
		s.SelectedCategories[subsystem] = selected
	}
	return s
}

func TestFormatter_SubsystemLabel(t *testing.T) {
	f := newTestFormatter()

	t.Run("empty filter", func(t *testing.T) {
		assert.Equal(t, "All subsystems", f.SubsystemLabel(filter.NewState()))
	})

	t.Run("single selection", func(t *testing.T) {
		state := stateWith([]string{"com.app"}, nil)
		assert.Equal(t, "com.app", f.SubsystemLabel(state))
	})

	t.Run("multiple selections joined", func(t *testing.T) {
		state := stateWith([]string{"com.app", "com.other"}, nil)
		assert.Equal(t, "com.app and com.other", f.SubsystemLabel(state))
	})

	t.Run("category-only selection names its subsystem", func(t *testing.T) {
		state := stateWith(nil, map[string][]string{"com.app": {"net"}})
		assert.Equal(t, "com.app", f.SubsystemLabel(state))
	})
}

func TestFormatter_CategoryLabel(t *testing.T) {
	f := newTestFormatter()

	t.Run("no category selection", func(t *testing.T) {
		assert.Equal(t, "All categories", f.CategoryLabel(filter.NewState()))
	})

	t.Run("one subsystem with two categories lists them", func(t *testing.T) {
		state := stateWith(nil, map[string][]string{"com.app": {"ui", "net"}})
		assert.Equal(t, "net and ui", f.CategoryLabel(state))
	})

	t.Run("uncategorized rendered with label", func(t *testing.T) {
		state := stateWith(nil, map[string][]string{"com.app": {""}})
		assert.Equal(t, "Uncategorized", f.CategoryLabel(state))
	})

	t.Run("more than two categories shows count", func(t *testing.T) {
		state := stateWith(nil, map[string][]string{"com.app": {"a", "b", "c"}})
		assert.Equal(t, "Categories (3)", f.CategoryLabel(state))
	})

	t.Run("multiple subsystems show count", func(t *testing.T) {
		state := stateWith(nil, map[string][]string{
			"com.app":   {"net"},
			"com.other": {"db"},
		})
		assert.Equal(t, "Categories (2)", f.CategoryLabel(state))
	})
}

func TestFormatter_EmptyExplanation(t *testing.T) {
	f := newTestFormatter()

	t.Run("entries visible", func(t *testing.T) {
		assert.Empty(t, f.EmptyExplanation(filter.NewState(), true, 10, 5))
	})

	t.Run("still loading", func(t *testing.T) {
		got := f.EmptyExplanation(filter.NewState(), false, 0, 0)
		assert.Equal(t, "Collecting log messages...", got)
	})

	t.Run("loaded but nothing collected", func(t *testing.T) {
		got := f.EmptyExplanation(filter.NewState(), true, 0, 0)
		assert.Equal(t, "No log messages were collected.", got)
	})

	t.Run("all entries filtered out names the filter", func(t *testing.T) {
		state := stateWith([]string{"com.app"}, map[string][]string{"com.app": {"net", "ui"}})
		got := f.EmptyExplanation(state, true, 10, 0)
		assert.Equal(t, "No log messages match the current filter: subsystem com.app (categories: net and ui)", got)
	})

	t.Run("multiple subsystems joined with semicolons", func(t *testing.T) {
		state := stateWith([]string{"com.app", "com.other"}, map[string][]string{"com.app": {"net"}})
		got := f.EmptyExplanation(state, true, 10, 0)
		assert.Equal(t, "No log messages match the current filter: subsystem com.app (categories: net); subsystem com.other", got)
	})
}

func TestFormatter_FilterSummary(t *testing.T) {
	f := newTestFormatter()

	t.Run("no filters", func(t *testing.T) {
		assert.Equal(t, "Subsystems: all | Categories: all", f.FilterSummary(filter.NewState()))
	})

	t.Run("single subsystem single group unqualified", func(t *testing.T) {
		state := stateWith(nil, map[string][]string{"com.app": {"net", "ui"}})
		assert.Equal(t, "Subsystems: com.app | Categories: net and ui", f.FilterSummary(state))
	})

	t.Run("multiple subsystems qualify category groups", func(t *testing.T) {
		state := stateWith([]string{"com.other"}, map[string][]string{"com.app": {"net"}})
		got := f.FilterSummary(state)
		assert.Equal(t, "Subsystems: com.app and com.other | Categories: com.app: net", got)
	})
}

func TestDisplayCategory(t *testing.T) {
	assert.Equal(t, "Uncategorized", DisplayCategory(""))
	assert.Equal(t, "net", DisplayCategory("net"))
}
