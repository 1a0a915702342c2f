package filter

// SanitizeSelections reconciles per-subsystem category selections against
// the categories currently known to be available.
//
// Selections for subsystems with no known availability are kept unchanged:
// before the first successful refresh populates availability we must not
// destroy a user's filter. Otherwise the selection is intersected with the
// available set; an empty intersection lifts the constraint entirely
// rather than leaving a filter that matches nothing.
//
// The result never contains an empty set value, and the function is
// idempotent for a fixed availability mapping.
func SanitizeSelections(selections map[string]map[string]bool, available map[string][]string) map[string]map[string]bool {
	result := make(map[string]map[string]bool, len(selections))

	for subsystem, categories := range selections {
		if len(categories) == 0 {
			continue
		}

		avail := available[subsystem]
		if len(avail) == 0 {
			result[subsystem] = copySet(categories)
			continue
		}

		availSet := make(map[string]bool, len(avail))
		for _, c := range avail {
			availSet[c] = true
		}

		kept := make(map[string]bool)
		for c := range categories {
			if availSet[c] {
				kept[c] = true
			}
		}
		if len(kept) > 0 {
			result[subsystem] = kept
		}
	}

	return result
}

func copySet(s map[string]bool) map[string]bool {
	out := make(map[string]bool, len(s))
	for k, v := range s {
		if v {
			out[k] = true
		}
	}
	return out
}
