// Tracks run-wide time series and aggregates for final reporting.

package sim

import (
	"gonum.org/v1/gonum/stat"
)

// utilSmoothingWindow is the trailing rolling-average window, in daily
// samples, applied to utilization series at result build time.
const utilSmoothingWindow = 7

// Point is one sample in a time series: a simulated day (or instant, for
// point events like completions) and a value. Series are append-only and
// never re-ordered after insertion; they feed reporting only, never
// simulation logic.
type Point struct {
	Time  float64 `json:"time" yaml:"time"`
	Value float64 `json:"value" yaml:"value"`
}

// MachinePoint samples the machine count at every station.
type MachinePoint struct {
	Day    int              `json:"day" yaml:"day"`
	Counts [NumStations]int `json:"counts" yaml:"counts,flow"`
}

// Metrics aggregates statistics about the simulation for final reporting:
// daily samples (cash, inventory, utilization, queue lengths, machine
// counts), point events (lead times, revenue), and operational warnings.
type Metrics struct {
	Completed    int
	TotalRevenue float64

	Cash      []Point
	Inventory []Point
	LeadTimes []Point
	Revenue   []Point
	Util      [NumStations][]Point
	QueueLen  [NumStations][]Point
	Machines  []MachinePoint

	Warnings []string

	prevTime float64
	prevBusy [NumStations]float64
}

// NewMetrics creates an empty metrics recorder.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Snapshot records the daily sample at the given whole day: cash,
// inventory, per-station utilization over the window since the previous
// sample, queue lengths, and machine counts.
func (m *Metrics) Snapshot(sim *Simulator, day int) {
	dt := sim.Clock - m.prevTime
	for s := 0; s < NumStations; s++ {
		st := sim.Stations[s]
		u := 0.0
		if dt > 0 {
			capacity := float64(max(st.Machines, 1))
			u = (st.BusyAccum - m.prevBusy[s]) / (dt * capacity)
			if u > 1 {
				u = 1
			}
			if u < 0 {
				u = 0
			}
		}
		m.Util[s] = append(m.Util[s], Point{Time: float64(day), Value: u})
		m.QueueLen[s] = append(m.QueueLen[s], Point{Time: float64(day), Value: float64(st.QueueLen())})
		m.prevBusy[s] = st.BusyAccum
	}
	m.Cash = append(m.Cash, Point{Time: float64(day), Value: sim.Cash.Balance})
	m.Inventory = append(m.Inventory, Point{Time: float64(day), Value: float64(sim.Inventory.Stock)})
	m.Machines = append(m.Machines, machinePoint(sim, day))
	m.prevTime = sim.Clock
}

// RecordCompletion appends the point events of one completed order.
func (m *Metrics) RecordCompletion(t, leadTime, revenue float64) {
	m.Completed++
	m.TotalRevenue += revenue
	m.LeadTimes = append(m.LeadTimes, Point{Time: t, Value: leadTime})
	m.Revenue = append(m.Revenue, Point{Time: t, Value: revenue})
}

// RecordMachines appends a machine-count sample at the current day, so
// capacity changes show up the moment they take effect rather than at the
// next day boundary.
func (m *Metrics) RecordMachines(sim *Simulator) {
	m.Machines = append(m.Machines, machinePoint(sim, int(sim.Clock)))
}

func machinePoint(sim *Simulator, day int) MachinePoint {
	p := MachinePoint{Day: day}
	for s := 0; s < NumStations; s++ {
		p.Counts[s] = sim.Stations[s].Machines
	}
	return p
}

// SmoothedUtil returns a station's utilization series smoothed with a
// trailing rolling mean over the given window of samples.
func (m *Metrics) SmoothedUtil(station, window int) []Point {
	series := m.Util[station]
	if window < 1 {
		window = 1
	}
	values := make([]float64, len(series))
	for i, p := range series {
		values[i] = p.Value
	}
	out := make([]Point, len(series))
	for i, p := range series {
		lo := max(0, i-window+1)
		out[i] = Point{Time: p.Time, Value: stat.Mean(values[lo:i+1], nil)}
	}
	return out
}
