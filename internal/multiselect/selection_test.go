package multiselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleAppendsAndRemoves(t *testing.T) {
	selected := []string{"go", "python"}

	added := Toggle(selected, "java")
	require.Equal(t, []string{"go", "python", "java"}, added)
	assert.Equal(t, []string{"go", "python"}, selected, "input must not be modified")

	removed := Toggle(added, "python")
	assert.Equal(t, []string{"go", "java"}, removed)
}

func TestTogglePairRestoresOneOccurrence(t *testing.T) {
	start := []string{"go", "java"}
	assert.Equal(t, start, Toggle(Toggle(start, "rust"), "rust"))
	assert.Equal(t, []string{"java", "go"}, Toggle(Toggle(start, "go"), "go"))

	dup := []string{"go", "java", "go"}
	off := Toggle(dup, "go")
	require.Equal(t, []string{"java"}, off)
	assert.Equal(t, []string{"java", "go"}, Toggle(off, "go"))
}

func TestWithoutRemovesEveryOccurrence(t *testing.T) {
	selected := []string{"a", "b", "a", "c"}
	assert.Equal(t, []string{"b", "c"}, Without(selected, "a"))
	assert.Equal(t, []string{"a", "b", "a", "c"}, selected)
	assert.Equal(t, []string{}, Without(nil, "a"))
}

func TestSelectAllReplacesSelection(t *testing.T) {
	options := []Option{{"A", "a"}, {"B", "b"}, {"C", "c"}}

	assert.Equal(t, []string{"a", "b", "c"}, SelectAll(Filter(options, ""), true))
	assert.Equal(t, []string{"b"}, SelectAll(Filter(options, "b"), true))

	cleared := SelectAll(options, false)
	assert.NotNil(t, cleared)
	assert.Empty(t, cleared)
}
