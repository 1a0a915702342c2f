package filter

import (
	"sort"
	"strings"
)

// NormalizeCategories deduplicates a list of category labels and orders
// them for display: case-insensitive lexical order, with distinct labels
// that compare equal case-insensitively broken by byte order so the
// result is deterministic. The empty label (the "uncategorized" bucket)
// is always first when present.
func NormalizeCategories(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	hasEmpty := false
	out := make([]string, 0, len(categories))

	for _, c := range categories {
		if c == "" {
			hasEmpty = true
			continue
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i]), strings.ToLower(out[j])
		if li != lj {
			return li < lj
		}
		return out[i] < out[j]
	})

	if hasEmpty {
		out = append([]string{""}, out...)
	}

	return out
}

// sortSubsystems orders subsystem names the same way categories are
// ordered, minus the empty-label rule (empty subsystems never occur in
// the universe).
func sortSubsystems(names []string) {
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
}
