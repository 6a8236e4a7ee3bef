package sim

import "sort"

// ActionKind enumerates the closed set of strategy actions. Timeline
// entries arrive as strings at the configuration boundary and are mapped
// onto this enum before the run starts; unknown names never reach the
// engine.
type ActionKind int

const (
	ActionBuyMachine ActionKind = iota
	ActionSellMachine
	ActionSetContract
	ActionSetLotSize
	ActionSetReorderPoint
	ActionSetReorderQuantity
	ActionSetPriorityRetest
)

// Action is one scheduled strategy change. Station is meaningful only for
// the buy/sell kinds. OriginalDay records the day the action was first
// requested; it differs from Day only after a deferral and is carried for
// reporting.
type Action struct {
	Day         int
	OriginalDay int
	Kind        ActionKind
	Station     int
	Value       float64
}

// Timeline holds pending actions sorted by day, ties broken by original
// list order. The pending sequence shrinks as actions apply, except for
// deferral re-insertions.
type Timeline struct {
	pending []Action
}

// NewTimeline builds a timeline from actions already filtered to the run's
// start day. The stable sort preserves input order among same-day actions;
// a buy that drains cash therefore starves later same-day actions, which
// is the documented tie-break.
func NewTimeline(actions []Action) *Timeline {
	pending := append([]Action(nil), actions...)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Day < pending[j].Day
	})
	return &Timeline{pending: pending}
}

// Pending returns the number of actions not yet applied.
func (tl *Timeline) Pending() int { return len(tl.pending) }

// PendingActions returns a copy of the not-yet-applied actions.
func (tl *Timeline) PendingActions() []Action {
	return append([]Action(nil), tl.pending...)
}

// Apply pops and applies every action whose day is at or before the
// current clock, in day order. Whenever anything applied, the dispatcher
// is re-run for all stations afterwards, since capacity or the re-test
// flag may have changed.
func (tl *Timeline) Apply(sim *Simulator) {
	changed := false
	for len(tl.pending) > 0 && float64(tl.pending[0].Day) <= sim.Clock {
		a := tl.pending[0]
		tl.pending = tl.pending[1:]
		tl.apply(sim, a)
		changed = true
	}
	if changed {
		sim.DispatchAll()
	}
}

func (tl *Timeline) apply(sim *Simulator, a Action) {
	switch a.Kind {
	case ActionBuyMachine:
		tl.buyMachines(sim, a)
	case ActionSellMachine:
		tl.sellMachines(sim, a)
	case ActionSetContract:
		c, err := ContractByID(int(a.Value))
		if err != nil {
			// Unreachable after config validation; keep the run alive.
			sim.Warnf("Day %d: %v: contract unchanged", a.Day, err)
			return
		}
		sim.Contract = c
	case ActionSetLotSize:
		sim.LotSize = int(a.Value)
	case ActionSetReorderPoint:
		sim.Inventory.ReorderPoint = int(a.Value)
	case ActionSetReorderQuantity:
		sim.Inventory.ReorderQuantity = int(a.Value)
	case ActionSetPriorityRetest:
		sim.PriorityRetest = a.Value != 0
	}
}

// buyMachines applies a machine purchase, capped by what is affordable
// after reserving cash for one future kit shipment at the current reorder
// quantity. Affordable machines come online immediately. The unmet
// remainder is either rescheduled for the next day (deferral enabled) or
// warned about.
func (tl *Timeline) buyMachines(sim *Simulator, a Action) {
	requested := int(a.Value)
	if requested <= 0 {
		return
	}
	st := sim.Stations[a.Station]
	cost := MachineCost[a.Station]

	reserve := 0.0
	if sim.Inventory.ReorderQuantity > 0 {
		reserve = sim.Inventory.ShipmentCost()
	}
	affordable := int((sim.Cash.Balance - reserve) / cost)
	if affordable < 0 {
		affordable = 0
	}
	n := min(requested, affordable)
	if n > 0 {
		st.Machines += n
		sim.Cash.Debit(cost * float64(n))
		sim.Metrics.RecordMachines(sim)
		if a.OriginalDay != a.Day {
			sim.Warnf("Day %d: Bought %d %s(s) deferred from day %d",
				a.Day, n, MachineNames[a.Station], a.OriginalDay)
		}
	}
	if n == requested {
		return
	}
	remainder := requested - n
	if sim.DeferPurchases {
		deferred := a
		deferred.Day = a.Day + 1
		deferred.Value = float64(remainder)
		tl.insert(deferred)
		sim.Warnf("Day %d: Purchase of %d %s(s) deferred to day %d (insufficient cash)",
			a.Day, remainder, MachineNames[a.Station], deferred.Day)
		return
	}
	if n == 0 {
		sim.Warnf("Day %d: Could not buy %d %s(s): insufficient cash (have $%.2f, need $%.2f plus $%.2f kit reserve)",
			a.Day, requested, MachineNames[a.Station], sim.Cash.Balance,
			cost*float64(requested), reserve)
	} else {
		sim.Warnf("Day %d: Could only buy %d of %d %s(s): insufficient cash for the remainder",
			a.Day, n, requested, MachineNames[a.Station])
	}
}

// sellMachines applies a machine sale, capped so at least one machine
// remains at the station. Proceeds credit cash at the flat sell price.
func (tl *Timeline) sellMachines(sim *Simulator, a Action) {
	requested := int(a.Value)
	if requested <= 0 {
		return
	}
	st := sim.Stations[a.Station]
	n := min(requested, st.Machines-1)
	if n > 0 {
		st.Machines -= n
		sim.Cash.Credit(MachineSellPrice * float64(n))
		sim.Metrics.RecordMachines(sim)
	}
	if n < requested {
		sim.Warnf("Day %d: Sold %d of %d %s(s): must keep at least 1 machine at each station",
			a.Day, n, requested, MachineNames[a.Station])
	}
}

// insert re-inserts a deferred action, keeping the pending list sorted by
// day with the new action last among its day.
func (tl *Timeline) insert(a Action) {
	i := len(tl.pending)
	for j, p := range tl.pending {
		if p.Day > a.Day {
			i = j
			break
		}
	}
	tl.pending = append(tl.pending, Action{})
	copy(tl.pending[i+1:], tl.pending[i:])
	tl.pending[i] = a
}
