//go:build e2e && unix

package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDashboardStartup(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartDashboard(), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the dashboard header")

	require.True(t, tf.SeePlain("3 of 4 widgets visible across 2 categories"), "Header should count visible widgets")
	require.True(t, tf.SeePlain("Cloud Overview"), "Should show the first category")
	require.True(t, tf.SeePlain("Risk Assessment"), "Should show visible widgets")
	require.True(t, tf.SeePlain("1 hidden"), "Should mark the hidden widget on its category")
}

func TestSearchShowsMatchesAcrossCategories(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartDashboard(), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the dashboard header")

	// "risk" matches one widget per category
	require.NoError(t, tf.Search("risk"))
	require.NoError(t, tf.WaitForE(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), `Found 2 widgets matching "risk"`)
	}, 3*time.Second, "search summary never appeared"))

	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain(`2 widgets found for "risk"`), "Enter should open the results")
	require.True(t, tf.SeePlain("Image Risk"), "Results should include the registry widget")
}

func TestSearchFindsHiddenWidget(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartDashboard(), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the dashboard header")

	require.NoError(t, tf.Search("critical"))
	require.True(t, tf.SeePlain(`Found 1 widget matching "critical"`), "Hidden widgets should be searchable")
}

func TestAddWidgetUpdatesDashboard(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartDashboard(), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the dashboard header")

	require.NoError(t, tf.AddWidget("Compliance", "CIS 81 percent"))

	if !tf.SeePlain("Added widget 'Compliance' to Cloud Overview") {
		tf.DumpTailOnFail(t, "add-widget", 4096)
		t.Fatal("Status line should confirm the new widget")
	}
	require.True(t, tf.SeePlain("4 of 5 widgets visible"), "Header should count the new widget")
}

func TestBrokenSeedShowsErrorScreen(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tf.seed, []byte(`[{"id": "c"}]`), 0644))

	require.NoError(t, tf.StartDashboard(), "Failed to start app")
	require.True(t, tf.SeePlain("Oops! Something went wrong"), "A broken seed should open the error screen")

	// Fix the seed and retry
	require.NoError(t, os.WriteFile(tf.seed, []byte(testSeed), 0644))
	require.NoError(t, tf.SendKeys("r"))
	require.True(t, tf.SeePlain("3 of 4 widgets visible"), "Retry should load the fixed seed")
}
