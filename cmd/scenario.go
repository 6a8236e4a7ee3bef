package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/littlefield-sim/littlefield-sim/sim"
)

// LoadScenario reads a YAML scenario file into a Config. The file uses the
// same field names as sim.Config; omitted keys keep the day-0 factory
// defaults. Validation happens later, in sim.NewSimulator.
func LoadScenario(path string) (sim.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.Config{}, fmt.Errorf("failed to read scenario file: %w", err)
	}

	cfg := sim.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return sim.Config{}, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	return cfg, nil
}
