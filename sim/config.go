package sim

import "fmt"

// Config is the fully-parsed, validated input for one run. Construct it
// from DefaultConfig and override fields, or unmarshal a YAML scenario
// onto a DefaultConfig base so omitted keys keep the day-0 factory
// defaults.
type Config struct {
	Seed             int64            `yaml:"seed" json:"seed"`
	EndDay           float64          `yaml:"end_day" json:"end_day"`
	StartDay         int              `yaml:"start_day" json:"start_day"`
	InitialCash      float64          `yaml:"initial_cash" json:"initial_cash"`
	InterarrivalMean float64          `yaml:"interarrival_mean" json:"interarrival_mean"`
	LotSize          int              `yaml:"lot_size" json:"lot_size"`
	Machines         [NumStations]int `yaml:"machines" json:"machines"`
	Contract         int              `yaml:"contract" json:"contract"`
	InitialInventory int              `yaml:"initial_inventory" json:"initial_inventory"`
	ReorderPoint     int              `yaml:"reorder_point" json:"reorder_point"`
	ReorderQuantity  int              `yaml:"reorder_quantity" json:"reorder_quantity"`
	PriorityRetest   bool             `yaml:"priority_retest" json:"priority_retest"`
	DeferPurchases   bool             `yaml:"defer_purchases" json:"defer_purchases"`
	Timeline         []TimelineEntry  `yaml:"timeline" json:"timeline"`
}

// TimelineEntry is the external, string-keyed form of a strategy action.
// Names follow the original game's vocabulary: buy_stuffer, buy_tester,
// buy_tuner, sell_stuffer, sell_tester, sell_tuner, set_contract,
// set_lot_size, set_reorder_point, set_order_quantity, set_priority_step4.
type TimelineEntry struct {
	Day    int     `yaml:"day" json:"day"`
	Action string  `yaml:"action" json:"action"`
	Value  float64 `yaml:"value" json:"value"`
}

// actionSpec maps an external action name onto the closed enum.
type actionSpec struct {
	Kind    ActionKind
	Station int
}

var actionsByName = map[string]actionSpec{
	"buy_stuffer":        {ActionBuyMachine, 0},
	"buy_tester":         {ActionBuyMachine, 1},
	"buy_tuner":          {ActionBuyMachine, 2},
	"sell_stuffer":       {ActionSellMachine, 0},
	"sell_tester":        {ActionSellMachine, 1},
	"sell_tuner":         {ActionSellMachine, 2},
	"set_contract":       {ActionSetContract, -1},
	"set_lot_size":       {ActionSetLotSize, -1},
	"set_reorder_point":  {ActionSetReorderPoint, -1},
	"set_order_quantity": {ActionSetReorderQuantity, -1},
	"set_priority_step4": {ActionSetPriorityRetest, -1},
}

// DefaultConfig returns the day-0 factory state of the original game:
// 485-day horizon, 3/2/1 machines, contract 1, lot size 60, interarrival
// mean 0.125 days, 9600 kits on hand, reorder at 1800 for 3600, no cash.
func DefaultConfig() Config {
	return Config{
		Seed:             42,
		EndDay:           485,
		StartDay:         0,
		InitialCash:      0,
		InterarrivalMean: 0.125,
		LotSize:          60,
		Machines:         [NumStations]int{3, 2, 1},
		Contract:         1,
		InitialInventory: 9600,
		ReorderPoint:     1800,
		ReorderQuantity:  3600,
	}
}

// Validate reports the first configuration error. Configuration errors are
// fatal: the run never starts.
func (c *Config) Validate() error {
	if _, err := ContractByID(c.Contract); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.StartDay < 0 {
		return fmt.Errorf("config: start_day must be >= 0, got %d", c.StartDay)
	}
	if c.EndDay < float64(c.StartDay) {
		return fmt.Errorf("config: end_day %v is before start_day %d", c.EndDay, c.StartDay)
	}
	if c.InterarrivalMean <= 0 {
		return fmt.Errorf("config: interarrival_mean must be > 0, got %v", c.InterarrivalMean)
	}
	if c.LotSize <= 0 {
		return fmt.Errorf("config: lot_size must be > 0, got %d", c.LotSize)
	}
	for s, n := range c.Machines {
		if n < 1 {
			return fmt.Errorf("config: station %d must keep at least 1 machine, got %d", s, n)
		}
	}
	if c.InitialInventory < 0 {
		return fmt.Errorf("config: initial_inventory must be >= 0, got %d", c.InitialInventory)
	}
	if c.ReorderPoint < 0 || c.ReorderQuantity < 0 {
		return fmt.Errorf("config: reorder point/quantity must be >= 0, got %d/%d",
			c.ReorderPoint, c.ReorderQuantity)
	}
	for _, e := range c.Timeline {
		spec, ok := actionsByName[e.Action]
		if !ok {
			return fmt.Errorf("config: unknown timeline action %q at day %d", e.Action, e.Day)
		}
		if spec.Kind == ActionSetContract {
			if _, err := ContractByID(int(e.Value)); err != nil {
				return fmt.Errorf("config: timeline day %d: %w", e.Day, err)
			}
		}
	}
	return nil
}

// actions converts the string-keyed timeline into typed actions in input
// order, dropping entries scheduled before the start day.
func (c *Config) actions() []Action {
	out := make([]Action, 0, len(c.Timeline))
	for _, e := range c.Timeline {
		if e.Day < c.StartDay {
			continue
		}
		spec := actionsByName[e.Action]
		out = append(out, Action{
			Day:         e.Day,
			OriginalDay: e.Day,
			Kind:        spec.Kind,
			Station:     spec.Station,
			Value:       e.Value,
		})
	}
	return out
}
