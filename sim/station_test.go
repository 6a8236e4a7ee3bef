package sim

import "testing"

// dispatchFixture builds a quiet simulator whose event queue has been
// drained, so dispatch tests observe only their own effects.
func dispatchFixture(t *testing.T) *Simulator {
	t.Helper()
	cfg := shortTestConfig()
	cfg.ReorderQuantity = 0
	s, err := NewSimulator(cfg)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	s.EventQueue = s.EventQueue[:0]
	return s
}

func TestDispatch_FIFO_TakesQueueFront(t *testing.T) {
	// GIVEN station 0 with one machine and two waiting orders
	sim := dispatchFixture(t)
	st := sim.Stations[0]
	st.Machines = 1
	a := &Order{ID: 1, LotSize: 60}
	b := &Order{ID: 2, LotSize: 60}
	st.Enqueue(a)
	st.Enqueue(b)

	// WHEN the station is dispatched
	sim.DispatchStation(0)

	// THEN the front order started and the second still waits
	if st.Busy != 1 {
		t.Errorf("Busy = %d, want 1", st.Busy)
	}
	if st.QueueLen() != 1 || st.Queue[0] != b {
		t.Errorf("queue = %v, want [order 2]", st.Queue)
	}
	if len(sim.EventQueue) != 1 {
		t.Errorf("scheduled %d events, want 1 completion", len(sim.EventQueue))
	}
}

func TestDispatch_NeverExceedsCapacity(t *testing.T) {
	sim := dispatchFixture(t)
	st := sim.Stations[0]
	st.Machines = 2
	for i := int64(1); i <= 5; i++ {
		st.Enqueue(&Order{ID: i, LotSize: 60})
	}

	sim.DispatchStation(0)

	if st.Busy != 2 {
		t.Errorf("Busy = %d, want 2", st.Busy)
	}
	if st.QueueLen() != 3 {
		t.Errorf("QueueLen = %d, want 3", st.QueueLen())
	}
}

func TestDispatch_PriorityRetest_PrefersFinalStep(t *testing.T) {
	// GIVEN the shared station with one machine, a step-1 order ahead of a
	// step-3 order, and the re-test priority enabled
	sim := dispatchFixture(t)
	sim.PriorityRetest = true
	st := sim.Stations[1]
	st.Machines = 1
	first := &Order{ID: 1, LotSize: 60, Step: 1}
	retest := &Order{ID: 2, LotSize: 60, Step: 3}
	st.Enqueue(first)
	st.Enqueue(retest)

	sim.DispatchStation(1)

	// THEN the re-test order jumped the queue
	if st.QueueLen() != 1 || st.Queue[0] != first {
		t.Errorf("queue = %v, want the step-1 order still waiting", st.Queue)
	}
}

func TestDispatch_PriorityRetest_FallsBackToFIFO(t *testing.T) {
	// No final-step order waiting: strict FIFO applies even with the flag.
	sim := dispatchFixture(t)
	sim.PriorityRetest = true
	st := sim.Stations[1]
	st.Machines = 1
	a := &Order{ID: 1, LotSize: 60, Step: 1}
	b := &Order{ID: 2, LotSize: 60, Step: 1}
	st.Enqueue(a)
	st.Enqueue(b)

	sim.DispatchStation(1)

	if st.QueueLen() != 1 || st.Queue[0] != b {
		t.Errorf("queue = %v, want [order 2]", st.Queue)
	}
}

func TestDispatch_PriorityDisabled_IgnoresStepOrder(t *testing.T) {
	sim := dispatchFixture(t)
	sim.PriorityRetest = false
	st := sim.Stations[1]
	st.Machines = 1
	first := &Order{ID: 1, LotSize: 60, Step: 1}
	retest := &Order{ID: 2, LotSize: 60, Step: 3}
	st.Enqueue(first)
	st.Enqueue(retest)

	sim.DispatchStation(1)

	if st.QueueLen() != 1 || st.Queue[0] != retest {
		t.Errorf("queue = %v, want the step-3 order still waiting", st.Queue)
	}
}

func TestMoreMachines_DoNotReduceThroughput(t *testing.T) {
	base := shortTestConfig()
	base.EndDay = 100
	base.Machines = [NumStations]int{3, 1, 1} // tight shared station

	boosted := base
	boosted.Machines = [NumStations]int{3, 3, 1}

	r1 := mustRun(t, base)
	r3 := mustRun(t, boosted)

	if r3.Summary.OrdersCompleted < r1.Summary.OrdersCompleted {
		t.Errorf("boosted run completed %d orders, baseline %d",
			r3.Summary.OrdersCompleted, r1.Summary.OrdersCompleted)
	}
}
