package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPlacesControlAtOrigin(t *testing.T) {
	out := NewRenderer().Render(ViewState{
		Title:   "multipick",
		Control: "AAA\nBBB",
		Help:    "q quit",
	})

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), ControlOriginY+1)
	assert.Equal(t, "multipick", lines[0])
	assert.Equal(t, "  AAA", lines[ControlOriginY])
	assert.Equal(t, "  BBB", lines[ControlOriginY+1])
	assert.Equal(t, ControlOriginX, strings.Index(lines[ControlOriginY], "AAA"))
}

func TestRenderSelectedValues(t *testing.T) {
	r := NewRenderer()

	assert.Contains(t, r.Render(ViewState{}), "Selected values: none")
	assert.Contains(t, r.Render(ViewState{Selected: []string{"go", "rust"}}), "Selected values: go, rust")
}
