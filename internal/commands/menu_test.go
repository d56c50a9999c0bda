package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// menuEnv points the menu's default ledger and chart dir into a temp dir.
func menuEnv(t *testing.T) (ledgerPath, chartDir string) {
	t.Helper()
	dir := t.TempDir()
	ledgerPath = filepath.Join(dir, "expenses.json")
	chartDir = filepath.Join(dir, "charts")
	t.Setenv("OUTLAY_LEDGER", ledgerPath)
	t.Setenv("OUTLAY_CHART_DIR", chartDir)
	return ledgerPath, chartDir
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestMenu_AddAnalyzeSaveExit(t *testing.T) {
	ledgerPath, _ := menuEnv(t)

	stdin := script(
		"1", "2024-01-15", "Groceries", "50", "Weekly shop",
		"1", "2024-01-16", "Transport", "30", "",
		"4",
		"2", "", // save to default path
		"7",
	)
	out, err := run(t, stdin, "menu")
	require.NoError(t, err)

	assert.Contains(t, out, "Expense added.")
	assert.Contains(t, out, "Total expenses: $80.00")
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "62.5%")
	assert.Contains(t, out, "Data saved to "+ledgerPath)
	assert.Contains(t, out, "Goodbye!")

	_, err = os.Stat(ledgerPath)
	require.NoError(t, err)
}

func TestMenu_RepromptsOnBadInput(t *testing.T) {
	menuEnv(t)

	stdin := script(
		"1",
		"2024-13-40", // rejected, re-prompted
		"2024-01-15",
		"Groceries",
		"abc", // rejected, re-prompted
		"10",
		"",
		"7",
	)
	out, err := run(t, stdin, "menu")
	require.NoError(t, err)

	assert.Contains(t, out, "Error: invalid date")
	assert.Contains(t, out, "Error: invalid amount")
	assert.Contains(t, out, "Expense added.")
}

func TestMenu_LoadRoundTrip(t *testing.T) {
	ledgerPath, _ := menuEnv(t)

	stdin := script(
		"1", "2024-01-15", "Groceries", "50", "",
		"2", "", // save
		"7",
	)
	_, err := run(t, stdin, "menu")
	require.NoError(t, err)

	// Fresh session loads what the previous one saved.
	stdin = script("3", "", "4", "7")
	out, err := run(t, stdin, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Data loaded from "+ledgerPath)
	assert.Contains(t, out, "Total expenses: $50.00")
}

func TestMenu_LoadMissingFileKeepsGoing(t *testing.T) {
	menuEnv(t)

	stdin := script(
		"1", "2024-01-15", "Groceries", "50", "",
		"3", filepath.Join(t.TempDir(), "missing.json"),
		"4", // prior collection still intact
		"7",
	)
	out, err := run(t, stdin, "menu")
	require.NoError(t, err)

	assert.Contains(t, out, "Error: opening ledger")
	assert.Contains(t, out, "Total expenses: $50.00")
	assert.Contains(t, out, "Goodbye!")
}

func TestMenu_AnalyzeEmpty(t *testing.T) {
	menuEnv(t)

	out, err := run(t, script("4", "7"), "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Error: no expenses recorded")
	assert.Contains(t, out, "Goodbye!")
}

func TestMenu_VisualizeWritesCharts(t *testing.T) {
	_, chartDir := menuEnv(t)

	stdin := script(
		"1", "2024-01-15", "Groceries", "50", "",
		"5",
		"6",
		"7",
	)
	out, err := run(t, stdin, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Chart written to")

	for _, name := range []string{"pie.html", "bar.html"} {
		data, err := os.ReadFile(filepath.Join(chartDir, name))
		require.NoError(t, err)
		assert.Contains(t, string(data), "Groceries")
	}
}

func TestMenu_VisualizeEmpty(t *testing.T) {
	_, chartDir := menuEnv(t)

	out, err := run(t, script("5", "7"), "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Error: no expenses recorded")

	_, err = os.Stat(filepath.Join(chartDir, "pie.html"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMenu_InvalidChoice(t *testing.T) {
	menuEnv(t)

	out, err := run(t, script("9", "7"), "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid choice. Try again.")
	assert.Contains(t, out, "Goodbye!")
}

func TestMenu_EOFExitsCleanly(t *testing.T) {
	menuEnv(t)

	_, err := run(t, "", "menu")
	require.NoError(t, err)
}
