package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategories(t *testing.T) {
	t.Run("deduplicates", func(t *testing.T) {
		result := NormalizeCategories([]string{"net", "ui", "net", "ui", "net"})
		assert.Equal(t, []string{"net", "ui"}, result)
	})

	t.Run("sorts case-insensitively", func(t *testing.T) {
		result := NormalizeCategories([]string{"Zeta", "alpha", "Beta"})
		assert.Equal(t, []string{"alpha", "Beta", "Zeta"}, result)
	})

	t.Run("empty label always first", func(t *testing.T) {
		result := NormalizeCategories([]string{"net", "", "alpha"})
		assert.Equal(t, []string{"", "alpha", "net"}, result)
	})

	t.Run("only empty label", func(t *testing.T) {
		result := NormalizeCategories([]string{"", "", ""})
		assert.Equal(t, []string{""}, result)
	})

	t.Run("case variants both retained deterministically", func(t *testing.T) {
		result := NormalizeCategories([]string{"net", "Net"})
		// Case-insensitively equal; byte order breaks the tie.
		assert.Equal(t, []string{"Net", "net"}, result)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, NormalizeCategories(nil))
		assert.Empty(t, NormalizeCategories([]string{}))
	})

	t.Run("idempotent", func(t *testing.T) {
		input := []string{"ui", "", "net", "UI", "net"}
		once := NormalizeCategories(input)
		twice := NormalizeCategories(once)
		assert.Equal(t, once, twice)
	})

	t.Run("input not mutated", func(t *testing.T) {
		input := []string{"b", "a", ""}
		NormalizeCategories(input)
		assert.Equal(t, []string{"b", "a", ""}, input)
	})
}
