package summary

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// ListFormatter joins a list of names for human-readable display.
// Implementations may be locale-aware; the core only requires
// determinism.
type ListFormatter interface {
	FormatList(items []string) string
}

// NewListFormatter returns a formatter for the given BCP-47 locale tag.
// English locales get natural "a, b, and c" joining; anything else (or
// an unparseable tag) falls back to plain comma joining, which keeps the
// output deterministic in environments lacking locale services.
func NewListFormatter(locale string) ListFormatter {
	tag, err := language.Parse(locale)
	if err == nil {
		if base, _ := tag.Base(); base.String() == "en" {
			return englishListFormatter{}
		}
	}
	return commaListFormatter{}
}

// NewDefaultListFormatter builds a formatter from the process locale
// environment (LC_ALL, then LANG).
func NewDefaultListFormatter() ListFormatter {
	locale := os.Getenv("LC_ALL")
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	// Strip encoding suffixes like ".UTF-8" before parsing
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		locale = locale[:i]
	}
	return NewListFormatter(locale)
}

// englishListFormatter joins with commas and a final "and"
type englishListFormatter struct{}

func (englishListFormatter) FormatList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// commaListFormatter is the deterministic fallback join
type commaListFormatter struct{}

func (commaListFormatter) FormatList(items []string) string {
	return strings.Join(items, ", ")
}
