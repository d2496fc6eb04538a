package multiselect

// Option is one selectable entry of the catalog.
// Value is the identity key; Label is what the user sees and searches.
type Option struct {
	Label string `toml:"label"`
	Value string `toml:"value"`
}

// Values maps options to their values, preserving order.
func Values(options []Option) []string {
	values := make([]string, 0, len(options))
	for _, o := range options {
		values = append(values, o.Value)
	}
	return values
}
