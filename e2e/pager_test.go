//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTablePager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithFood(t, tf)

	mark := tf.Mark()
	require.NoError(t, tf.OpenPager())

	// The pager shows the whole table as plain text
	require.True(t, tf.SeePlainSince(mark, "Bean chili"), "Pager should show the table rows")
	require.True(t, tf.SeePlainSince(mark, "meals"), "Pager should show the dataset name")

	// Quit pager and ensure TUI again
	mark = tf.Mark()
	tf.Quit()
	require.True(t, tf.SeePlainSince(mark, "healthgrid"), "Should return to main TUI after closing pager")

	// The app is still responsive
	mark = tf.Mark()
	tf.Down()
	tf.Select()
	require.True(t, tf.SeePlainSince(mark, "1 selected"), "Keys should reach the table again")
}

func TestTablePagerHonoursQuery(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithFood(t, tf)

	require.NoError(t, tf.SendKeys(KeySearch))
	require.NoError(t, tf.Type("wrap"))
	require.NoError(t, tf.SendEnter())
	require.True(t, tf.WaitForStatusMessage("1 of 6 rows", 3*time.Second), "search should apply")

	mark := tf.Mark()
	require.NoError(t, tf.OpenPager())
	require.True(t, tf.SeePlainSince(mark, "Chicken wrap"), "Pager should show the matching row")
	tf.Quit()
}
