package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_DayZeroFactory(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 485.0, cfg.EndDay)
	assert.Equal(t, 0, cfg.StartDay)
	assert.Equal(t, 0.0, cfg.InitialCash)
	assert.Equal(t, 0.125, cfg.InterarrivalMean)
	assert.Equal(t, 60, cfg.LotSize)
	assert.Equal(t, [NumStations]int{3, 2, 1}, cfg.Machines)
	assert.Equal(t, 1, cfg.Contract)
	assert.Equal(t, 9600, cfg.InitialInventory)
	assert.Equal(t, 1800, cfg.ReorderPoint)
	assert.Equal(t, 3600, cfg.ReorderQuantity)
	assert.False(t, cfg.PriorityRetest)
	assert.False(t, cfg.DeferPurchases)

	require.NoError(t, cfg.Validate())
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown contract", func(c *Config) { c.Contract = 9 }, "unknown contract id 9"},
		{"negative start day", func(c *Config) { c.StartDay = -1 }, "start_day"},
		{"end before start", func(c *Config) { c.StartDay = 100; c.EndDay = 50 }, "before start_day"},
		{"zero interarrival", func(c *Config) { c.InterarrivalMean = 0 }, "interarrival_mean"},
		{"zero lot size", func(c *Config) { c.LotSize = 0 }, "lot_size"},
		{"empty station", func(c *Config) { c.Machines[1] = 0 }, "at least 1 machine"},
		{"negative inventory", func(c *Config) { c.InitialInventory = -1 }, "initial_inventory"},
		{"negative reorder point", func(c *Config) { c.ReorderPoint = -1 }, "reorder point"},
		{
			"unknown timeline action",
			func(c *Config) {
				c.Timeline = []TimelineEntry{{Day: 1, Action: "buy_polisher", Value: 1}}
			},
			`unknown timeline action "buy_polisher"`,
		},
		{
			"bad contract in timeline",
			func(c *Config) {
				c.Timeline = []TimelineEntry{{Day: 1, Action: "set_contract", Value: 4}}
			},
			"unknown contract id 4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewSimulator_InvalidConfig_Fails(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Contract = 0

	_, err := NewSimulator(cfg)
	require.Error(t, err)
}

func TestNewSimulator_DropsActionsBeforeStartDay(t *testing.T) {
	// A day-50 resume ignores history before day 50 but keeps actions at
	// the start day itself.
	cfg := DefaultConfig()
	cfg.StartDay = 50
	cfg.Timeline = []TimelineEntry{
		{Day: 10, Action: "buy_tester", Value: 1},
		{Day: 50, Action: "set_lot_size", Value: 120},
		{Day: 60, Action: "set_contract", Value: 2},
	}

	s, err := NewSimulator(cfg)
	require.NoError(t, err)

	pending := s.Timeline.PendingActions()
	require.Len(t, pending, 2)
	assert.Equal(t, 50, pending[0].Day)
	assert.Equal(t, ActionSetLotSize, pending[0].Kind)
	assert.Equal(t, 60, pending[1].Day)
}

func TestActionNames_CoverAllStations(t *testing.T) {
	for station, name := range MachineNames {
		buy, ok := actionsByName["buy_"+name]
		require.True(t, ok, "missing buy action for %s", name)
		assert.Equal(t, ActionBuyMachine, buy.Kind)
		assert.Equal(t, station, buy.Station)

		sell, ok := actionsByName["sell_"+name]
		require.True(t, ok, "missing sell action for %s", name)
		assert.Equal(t, ActionSellMachine, sell.Kind)
		assert.Equal(t, station, sell.Station)
	}
}
