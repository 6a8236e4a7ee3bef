// sim/simulator.go
package sim

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"
)

// scheduledEvent pairs an Event with its insertion sequence number. The
// sequence breaks timestamp ties in FIFO order so that simultaneous
// events replay identically for a fixed seed.
type scheduledEvent struct {
	ev  Event
	seq int64
}

// EventQueue implements heap.Interface and orders events by timestamp,
// then insertion order.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []scheduledEvent

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	if eq[i].ev.Timestamp() != eq[j].ev.Timestamp() {
		return eq[i].ev.Timestamp() < eq[j].ev.Timestamp()
	}
	return eq[i].seq < eq[j].seq
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(scheduledEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator is the core object that holds simulation time, system state,
// and the event loop. One Simulator per run; instances share no mutable
// state, so independent runs may execute concurrently.
type Simulator struct {
	Clock    float64 // current simulated day; only Run advances it
	StartDay int
	Horizon  float64 // end day; events beyond it are discarded

	// EventQueue has all pending simulator events, like arrivals,
	// deliveries and step completions.
	EventQueue EventQueue
	seq        int64

	Sampler   *Sampler
	Stations  [NumStations]*Station
	Inventory *Inventory
	Cash      *CashLedger
	Timeline  *Timeline
	Metrics   *Metrics

	Contract         Contract
	LotSize          int
	InterarrivalMean float64
	PriorityRetest   bool // prefer final-step orders at the shared station
	DeferPurchases   bool // reschedule unaffordable machine buys to the next day

	nextOrderID int64
	lastDay     int // last whole day for which interest and a snapshot were recorded
}

// NewSimulator validates cfg and builds a ready-to-run Simulator: stations
// at their initial machine counts, the opening inventory and cash, the
// timeline filtered to actions at or after the start day, an initial
// snapshot at the start day, and the first arrival scheduled.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	contract, _ := ContractByID(cfg.Contract)

	sim := &Simulator{
		Clock:            float64(cfg.StartDay),
		StartDay:         cfg.StartDay,
		Horizon:          cfg.EndDay,
		EventQueue:       make(EventQueue, 0),
		Sampler:          NewSampler(NewSimulationKey(cfg.Seed)),
		Inventory:        NewInventory(cfg.InitialInventory, cfg.ReorderPoint, cfg.ReorderQuantity),
		Cash:             &CashLedger{Balance: cfg.InitialCash},
		Metrics:          NewMetrics(),
		Contract:         contract,
		LotSize:          cfg.LotSize,
		InterarrivalMean: cfg.InterarrivalMean,
		PriorityRetest:   cfg.PriorityRetest,
		DeferPurchases:   cfg.DeferPurchases,
		lastDay:          cfg.StartDay,
	}
	for s := 0; s < NumStations; s++ {
		sim.Stations[s] = &Station{Machines: cfg.Machines[s]}
	}
	sim.Timeline = NewTimeline(cfg.actions())

	// Initial snapshot before any event fires, so mid-run starts report
	// their opening state at the start day.
	sim.Metrics.prevTime = sim.Clock
	sim.Metrics.Snapshot(sim, cfg.StartDay)

	sim.Schedule(&ArrivalEvent{time: sim.Clock + sim.Sampler.Exp(sim.InterarrivalMean)})
	return sim, nil
}

// Schedule pushes an event into the simulator's EventQueue. Scheduling
// into the past is a programming error, not an operational condition, and
// panics.
func (sim *Simulator) Schedule(ev Event) {
	if ev.Timestamp() < sim.Clock {
		panic(fmt.Sprintf("Schedule: event at day %f is before the clock at day %f",
			ev.Timestamp(), sim.Clock))
	}
	sim.seq++
	heap.Push(&sim.EventQueue, scheduledEvent{ev: ev, seq: sim.seq})
}

// Run drives the event loop to completion and compiles the result. Each
// iteration pops the earliest pending event, stops if it lies beyond the
// horizon, advances the clock, applies due timeline actions, executes the
// event, and crosses any whole day boundaries (interest, daily snapshot).
// This loop is the single place simulated time advances.
func (sim *Simulator) Run() *Result {
	for len(sim.EventQueue) > 0 {
		item := heap.Pop(&sim.EventQueue).(scheduledEvent)
		if item.ev.Timestamp() > sim.Horizon {
			break
		}
		sim.Clock = item.ev.Timestamp()
		sim.Timeline.Apply(sim)
		item.ev.Execute(sim)
		sim.crossDayBoundaries()
	}
	logrus.Infof("[day %08.3f] Simulation ended: %d orders completed",
		sim.Clock, sim.Metrics.Completed)
	return sim.buildResult()
}

// crossDayBoundaries applies the once-per-day side effects for every whole
// day crossed since the previous event: interest compounds once per day,
// then a single daily sample is recorded at the current day. Handles gaps
// larger than one day during quiet periods.
func (sim *Simulator) crossDayBoundaries() {
	day := int(sim.Clock)
	if day <= sim.lastDay {
		return
	}
	for d := sim.lastDay; d < day; d++ {
		sim.Cash.ApplyDailyInterest()
	}
	sim.Metrics.Snapshot(sim, day)
	sim.lastDay = day
}

// handleArrival creates the next order, routes it through the inventory
// ledger, and schedules the following arrival if it falls within the
// horizon.
func (sim *Simulator) handleArrival() {
	sim.nextOrderID++
	order := &Order{ID: sim.nextOrderID, ArrivalTime: sim.Clock, LotSize: sim.LotSize}
	sim.Inventory.ConsumeOrQueue(sim, order)

	next := sim.Clock + sim.Sampler.Exp(sim.InterarrivalMean)
	if next <= sim.Horizon {
		sim.Schedule(&ArrivalEvent{time: next})
	}
}

// handleStepComplete frees the machine, accumulates busy time for
// utilization metrics, and advances the order: completion pays contract
// revenue, anything else re-enqueues at the next station. Dispatch is
// re-attempted for both the vacated and the target station.
func (sim *Simulator) handleStepComplete(order *Order, station int, duration float64) {
	st := sim.Stations[station]
	st.Busy--
	st.BusyAccum += duration

	order.Step++
	if order.Step >= NumSteps {
		leadTime := sim.Clock - order.ArrivalTime
		revenue := sim.Contract.Revenue(leadTime)
		sim.Cash.Credit(revenue)
		sim.Metrics.RecordCompletion(sim.Clock, leadTime, revenue)
		logrus.Debugf("[day %08.3f] order %d shipped: lead time %.3f, revenue $%.2f",
			sim.Clock, order.ID, leadTime, revenue)
	} else {
		next := StepStation[order.Step]
		sim.Stations[next].Enqueue(order)
		sim.DispatchStation(next)
	}
	sim.DispatchStation(station)
}

// Warnf records a non-fatal operational warning on the run and logs it.
// Warnings never abort a run; the affected action is skipped, partially
// applied, or deferred.
func (sim *Simulator) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	sim.Metrics.Warnings = append(sim.Metrics.Warnings, msg)
	logrus.Warn(msg)
}
