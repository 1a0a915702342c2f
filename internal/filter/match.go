package filter

import "github.com/charliek/logview/internal/domain"

// FilterEntries returns the entries passing the given subsystem and
// category filters, preserving input order.
//
// An empty subsystem set matches all subsystems. A subsystem with no
// category set (or an empty one) has no category constraint; otherwise
// the entry's category must be in the set, with the empty string matching
// the uncategorized bucket exactly.
func FilterEntries(entries []domain.LogEntry, subsystems map[string]bool, categories map[string]map[string]bool) []domain.LogEntry {
	result := make([]domain.LogEntry, 0, len(entries))

	for _, entry := range entries {
		if len(subsystems) > 0 && !subsystems[entry.Subsystem] {
			continue
		}
		if cats := categories[entry.Subsystem]; len(cats) > 0 && !cats[entry.Category] {
			continue
		}
		result = append(result, entry)
	}

	return result
}
