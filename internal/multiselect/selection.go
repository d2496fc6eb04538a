package multiselect

// The helpers below never modify their input; each returns a new slice
// suitable for handing to OnChange.

// Without returns selected with every occurrence of value removed.
func Without(selected []string, value string) []string {
	next := make([]string, 0, len(selected))
	for _, v := range selected {
		if v != value {
			next = append(next, v)
		}
	}
	return next
}

// Toggle removes value when it is selected and appends it once otherwise.
func Toggle(selected []string, value string) []string {
	if IsSelected(selected, value) {
		return Without(selected, value)
	}
	next := make([]string, 0, len(selected)+1)
	next = append(next, selected...)
	return append(next, value)
}

// SelectAll returns the selection produced by the "select all" checkbox.
// Checking it replaces the whole selection with the filtered values;
// unchecking it clears everything, not only the filtered subset.
func SelectAll(filtered []Option, checked bool) []string {
	if !checked {
		return []string{}
	}
	return Values(filtered)
}
