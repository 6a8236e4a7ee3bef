package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScenario_OverridesOnTopOfDefaults(t *testing.T) {
	path := writeScenario(t, `
seed: 7
end_day: 120
initial_cash: 250000
machines: [4, 3, 2]
contract: 2
defer_purchases: true
timeline:
  - {day: 10, action: buy_tester, value: 1}
  - {day: 30, action: set_contract, value: 3}
`)

	cfg, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 120.0, cfg.EndDay)
	assert.Equal(t, 250_000.0, cfg.InitialCash)
	assert.Equal(t, [3]int{4, 3, 2}, cfg.Machines)
	assert.Equal(t, 2, cfg.Contract)
	assert.True(t, cfg.DeferPurchases)
	require.Len(t, cfg.Timeline, 2)
	assert.Equal(t, "buy_tester", cfg.Timeline[0].Action)
	assert.Equal(t, 3.0, cfg.Timeline[1].Value)

	// Omitted keys keep the day-0 factory defaults.
	assert.Equal(t, 60, cfg.LotSize)
	assert.Equal(t, 9600, cfg.InitialInventory)
	assert.Equal(t, 1800, cfg.ReorderPoint)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "machines: [not, a, number\n")

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse scenario file")
}

func TestLoadScenario_ValidatesLater(t *testing.T) {
	// Loading does not validate; a bad contract id surfaces only when the
	// simulator is built.
	path := writeScenario(t, "contract: 9\n")

	cfg, err := LoadScenario(path)
	require.NoError(t, err)
	require.Error(t, cfg.Validate())
}
