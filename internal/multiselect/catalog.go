package multiselect

import (
	"slices"
	"strings"
)

// Filter returns the options whose normalized label contains the normalized
// filter text, in catalog order.
func Filter(options []Option, filter string) []Option {
	needle := Normalize(filter)
	filtered := make([]Option, 0, len(options))
	for _, o := range options {
		if strings.Contains(Normalize(o.Label), needle) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// SelectedOptions returns the options whose value is selected, in catalog
// order. Selected values missing from the catalog are skipped.
func SelectedOptions(options []Option, selected []string) []Option {
	chips := make([]Option, 0, len(selected))
	for _, o := range options {
		if slices.Contains(selected, o.Value) {
			chips = append(chips, o)
		}
	}
	return chips
}

// AllSelected reports whether filtered is non-empty and every one of its
// values is selected.
func AllSelected(filtered []Option, selected []string) bool {
	if len(filtered) == 0 {
		return false
	}
	for _, o := range filtered {
		if !slices.Contains(selected, o.Value) {
			return false
		}
	}
	return true
}

// IsSelected reports whether value appears in selected.
func IsSelected(selected []string, value string) bool {
	return slices.Contains(selected, value)
}
