package sim

import (
	"strings"
	"testing"
)

// shortTestConfig mirrors the day-0 factory with generous cash and a
// short horizon, for fast tests.
func shortTestConfig() Config {
	cfg := DefaultConfig()
	cfg.EndDay = 30
	cfg.InitialCash = 500_000
	return cfg
}

// mustRun builds a Simulator from cfg and runs it, failing the test on a
// configuration error.
func mustRun(t *testing.T, cfg Config) *Result {
	t.Helper()
	s, err := NewSimulator(cfg)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return s.Run()
}

// hasWarning reports whether any run warning contains substr.
func hasWarning(r *Result, substr string) bool {
	for _, w := range r.Warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

// maxValue returns the largest value in a series; -inf-free because all
// call sites guarantee a non-empty series.
func maxValue(series []Point) float64 {
	m := series[0].Value
	for _, p := range series {
		if p.Value > m {
			m = p.Value
		}
	}
	return m
}

// sortedByTime reports whether a series is non-decreasing in time.
func sortedByTime(series []Point) bool {
	for i := 1; i < len(series); i++ {
		if series[i].Time < series[i-1].Time {
			return false
		}
	}
	return true
}
