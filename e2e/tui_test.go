//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTUIShowsDatasetTable(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithFood(t, tf)

	require.True(t, tf.SeePlain("healthgrid"), "Should show title")
	require.True(t, tf.SeePlain("meals"), "Should show the dataset tab")
	require.True(t, tf.SeePlain("Porridge"), "Should show the first row")
	require.True(t, tf.SeePlain("Page 1/1"), "Should show the footer")
}

func TestTUIFallsBackToSample(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartApp("-d", workspace), "Failed to start app")
	require.True(t, tf.Ready(), "Should draw the first page")

	require.True(t, tf.SeePlain("Measurements"), "Should show the sample measurements tab")
	require.True(t, tf.SeePlain("Supplements"), "Should show the sample supplements tab")
}

func TestTUITabSwitching(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	_, err = tf.WriteDataset("a-meals.csv", foodCSV)
	require.NoError(t, err)
	_, err = tf.WriteDataset("b-body.csv", measurementsCSV)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-d", workspace), "Failed to start app")
	require.True(t, tf.Ready(), "Should draw the first page")
	require.True(t, tf.SeePlain("Porridge"), "First tab should be the food file")

	mark := tf.Mark()
	require.NoError(t, tf.SendKeys(KeyTab))
	require.True(t, tf.SeePlainSince(mark, "heart rate"), "Tab should switch to the measurements file")
}
