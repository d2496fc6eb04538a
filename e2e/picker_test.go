//go:build e2e && unix

package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const citiesConfig = `
label = "Cities"
placeholder = "Search cities"

[[options]]
label = "Lyon"
value = "lyo"

[[options]]
label = "Saint-Étienne"
value = "ste"

[[options]]
label = "Paris"
value = "par"
`

func startCities(t *testing.T) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	require.NoError(t, tf.WriteConfig(citiesConfig))
	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("multipick"), "Should show title")
	require.True(t, tf.SeePlain("Cities"), "Should show label")
	require.True(t, tf.SeePlain("Selected values: none"), "Should start with no selection")
	return tf
}

func TestStartsClosedWithDefaultCatalog(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("Languages"), "Should show default label")
	require.True(t, tf.SeePlain("Search languages"), "Should show placeholder")
	assert.NotContains(t, tf.SnapshotPlain(), "Select all", "Dropdown should start closed")
}

func TestAccentInsensitiveSearchAndEnter(t *testing.T) {
	t.Parallel()
	tf := startCities(t)
	defer tf.Cleanup()

	require.NoError(t, tf.SendKeys(KeyTab))
	require.True(t, tf.SeePlain("Select all"), "Focusing should open the dropdown")

	mark := tf.Mark()
	require.NoError(t, tf.Type("etienne"))
	require.NoError(t, tf.SendKeys(KeyEnter))
	require.True(t, tf.SeePlainSince(mark, "Selected values: ste"), "Enter should select the only match")
	require.True(t, tf.SeePlainSince(mark, "Saint-Étienne ✕"), "Selection should render as a chip")
}

func TestSelectAllThenClear(t *testing.T) {
	t.Parallel()
	tf := startCities(t)
	defer tf.Cleanup()

	require.NoError(t, tf.SendKeys(KeyTab))
	require.True(t, tf.SeePlain("Select all"))

	mark := tf.Mark()
	require.NoError(t, tf.SendKeys(KeyCtrlA))
	require.True(t, tf.SeePlainSince(mark, "Selected values: lyo, ste, par"))

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys(KeyCtrlX))
	require.True(t, tf.SeePlainSince(mark, "Selected values: none"))
}

func TestMouseHeaderAndOptionClick(t *testing.T) {
	t.Parallel()
	tf := startCities(t)
	defer tf.Cleanup()

	// Input row of the boxed header: title, blank, label, top border.
	require.NoError(t, tf.Click(10, 4))
	require.True(t, tf.SeePlain("Select all"), "Header click should open the dropdown")

	// First option row: below the header box, panel border, select all and separator.
	mark := tf.Mark()
	require.NoError(t, tf.Click(10, 9))
	require.True(t, tf.SeePlainSince(mark, "Selected values: lyo"))
}

func TestQuitWritesSelectionToLog(t *testing.T) {
	t.Parallel()
	tf := startCities(t)
	defer tf.Cleanup()

	require.NoError(t, tf.SendKeys(KeyTab))
	require.NoError(t, tf.Type("par"))
	mark := tf.Mark()
	require.NoError(t, tf.SendKeys(KeyEnter))
	require.True(t, tf.SeePlainSince(mark, "Selected values: par"))

	require.NoError(t, tf.SendKeys(KeyEsc))
	time.Sleep(100 * time.Millisecond) // let esc settle before the next key
	require.NoError(t, tf.Quit())
	if err := tf.WaitExit(2 * time.Second); err != nil {
		require.NoError(t, tf.SendKeys(KeyCtrlC))
		require.NoError(t, tf.WaitExit(time.Second))
	}

	data, err := os.ReadFile(tf.LogPath())
	require.NoError(t, err)
	log := string(data)
	assert.True(t, strings.Contains(log, "Selected values"), "Log should record the selection change")
	assert.Contains(t, log, `"par"`)
}

func TestInvalidCatalogRefusesToStart(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.WriteConfig(`
[[options]]
label = "A"
value = "a"

[[options]]
label = "B"
value = "a"
`))
	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("duplicate"), "Should report the duplicate value")
	assert.Error(t, tf.WaitExit(2*time.Second))
}
