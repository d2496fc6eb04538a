package multiselect

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s into the form used for matching: lowercased, decomposed
// with combining marks dropped, and stripped of every whitespace rune.
// "Café  Noir" and "cafenoir" normalize to the same string.
func Normalize(s string) string {
	// Chains keep per-call state, so one is built for every call.
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(unicode.IsSpace)),
	)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		// Only reachable on transformer failure; keep case and space folding.
		return strings.Join(strings.Fields(strings.ToLower(s)), "")
	}
	return out
}

// Matches reports whether filter matches label after normalizing both.
// An empty filter matches every label.
func Matches(label, filter string) bool {
	return strings.Contains(Normalize(label), Normalize(filter))
}
