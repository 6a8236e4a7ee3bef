package sim

// Station is one physical resource: a pool of identical machines and the
// FIFO queue of orders ready for a step it serves. Capacity never drops
// below one machine; the timeline processor enforces the floor on sells.
type Station struct {
	Machines  int     // capacity
	Busy      int     // machines currently processing
	BusyAccum float64 // total busy machine-days, for utilization sampling
	Queue     []*Order
}

// Enqueue appends an order to the station's waiting queue.
func (st *Station) Enqueue(o *Order) { st.Queue = append(st.Queue, o) }

// QueueLen returns the number of waiting orders.
func (st *Station) QueueLen() int { return len(st.Queue) }

// take removes and returns the order at index i.
func (st *Station) take(i int) *Order {
	o := st.Queue[i]
	st.Queue = append(st.Queue[:i], st.Queue[i+1:]...)
	return o
}

// DispatchStation starts waiting orders on idle machines at the given
// station until the queue drains or every machine is busy. The default
// pick is the queue front (FIFO); with the re-test priority enabled, the
// station serving the final step prefers the first queued order already on
// that step, falling back to FIFO when none is waiting. Each start draws a
// processing duration and schedules the matching completion event.
func (sim *Simulator) DispatchStation(station int) {
	st := sim.Stations[station]
	for len(st.Queue) > 0 && st.Busy < st.Machines {
		idx := 0
		if sim.PriorityRetest && station == StepStation[NumSteps-1] {
			for i, o := range st.Queue {
				if o.Step == NumSteps-1 {
					idx = i
					break
				}
			}
		}
		order := st.take(idx)
		st.Busy++
		dur := sim.Sampler.ProcessTime(order.Step, order.LotSize)
		sim.Schedule(&StepCompleteEvent{
			time:     sim.Clock + dur,
			Order:    order,
			Station:  station,
			Duration: dur,
		})
	}
}

// DispatchAll re-checks every station. The timeline processor calls this
// after any capacity or policy change; a capacity increase may immediately
// start queued work.
func (sim *Simulator) DispatchAll() {
	for s := 0; s < NumStations; s++ {
		sim.DispatchStation(s)
	}
}
