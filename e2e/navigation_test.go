//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyboardNavigation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithFood(t, tf)

	initialOutput := tf.Snapshot()

	// First key only places the cursor
	tf.Down()
	require.True(t, tf.WaitFor(func(s string) bool {
		return s != initialOutput
	}, time.Second), "Navigation should change output")

	// Cursor on the Logged column shows its description in the footer
	mark := tf.Mark()
	tf.Right()
	require.True(t, tf.SeePlainSince(mark, "Logged"), "Footer should describe the focused column")
}

func TestActivateRowShowsSummary(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithFood(t, tf)

	tf.Down()
	tf.Down()
	tf.Enter()

	require.True(t, tf.WaitForStatusMessage("Lentil soup (lunch): 420 kcal", 3*time.Second),
		"Activating a row should show its summary")
}

func TestPaging(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithFood(t, tf, "-page-size", "4")
	require.True(t, tf.SeePlain("Page 1/2"), "Six rows at four per page make two pages")

	mark := tf.Mark()
	require.NoError(t, tf.SendKeys("n"))
	require.True(t, tf.SeePlainSince(mark, "Page 2/2"), "n should move to the next page")
	require.True(t, tf.SeePlainSince(mark, "Bean chili"), "Second page should show the last rows")

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys("p"))
	require.True(t, tf.SeePlainSince(mark, "Page 1/2"), "p should move back")
}
