package sim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the headline figures of one run.
type Summary struct {
	StartDay          int     `json:"start_day" yaml:"start_day"`
	FinalCash         float64 `json:"final_cash" yaml:"final_cash"`
	TotalRevenue      float64 `json:"total_revenue" yaml:"total_revenue"`
	OrdersCompleted   int     `json:"orders_completed" yaml:"orders_completed"`
	OrdersWaitingKits int     `json:"orders_waiting_kits" yaml:"orders_waiting_kits"`
	AvgLeadTime       float64 `json:"avg_lead_time" yaml:"avg_lead_time"`
	MaxLeadTime       float64 `json:"max_lead_time" yaml:"max_lead_time"`
	AvgRevenue        float64 `json:"avg_revenue" yaml:"avg_revenue"`
}

// Charts bundles the reporting time series. Utilization is smoothed with a
// trailing rolling average; everything else is raw samples.
type Charts struct {
	Cash        []Point              `json:"cash" yaml:"cash"`
	Inventory   []Point              `json:"inventory" yaml:"inventory"`
	LeadTimes   []Point              `json:"lead_times" yaml:"lead_times"`
	Revenue     []Point              `json:"revenue" yaml:"revenue"`
	Utilization [NumStations][]Point `json:"utilization" yaml:"utilization"`
	QueueLength [NumStations][]Point `json:"queue_length" yaml:"queue_length"`
	Machines    []MachinePoint       `json:"machines" yaml:"machines"`
}

// Result is the full output document of one run: summary figures, time
// series, and every operational warning in chronological order.
type Result struct {
	Summary  Summary  `json:"summary" yaml:"summary"`
	Charts   Charts   `json:"charts" yaml:"charts"`
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// buildResult compiles the final result document from the run state.
func (sim *Simulator) buildResult() *Result {
	m := sim.Metrics
	summary := Summary{
		StartDay:          sim.StartDay,
		FinalCash:         sim.Cash.Balance,
		TotalRevenue:      m.TotalRevenue,
		OrdersCompleted:   m.Completed,
		OrdersWaitingKits: len(sim.Inventory.Backlog),
	}
	if len(m.LeadTimes) > 0 {
		lts := make([]float64, len(m.LeadTimes))
		for i, p := range m.LeadTimes {
			lts[i] = p.Value
		}
		summary.AvgLeadTime = stat.Mean(lts, nil)
		summary.MaxLeadTime = floats.Max(lts)
		summary.AvgRevenue = m.TotalRevenue / float64(m.Completed)
	}

	charts := Charts{
		Cash:      m.Cash,
		Inventory: m.Inventory,
		LeadTimes: m.LeadTimes,
		Revenue:   m.Revenue,
		Machines:  m.Machines,
	}
	for s := 0; s < NumStations; s++ {
		charts.Utilization[s] = m.SmoothedUtil(s, utilSmoothingWindow)
		charts.QueueLength[s] = m.QueueLen[s]
	}

	return &Result{
		Summary:  summary,
		Charts:   charts,
		Warnings: append([]string(nil), m.Warnings...),
	}
}

// Print displays the run summary and warnings at the end of a simulation.
func (r *Result) Print() {
	fmt.Println("=== Simulation Summary ===")
	fmt.Printf("Start day            : %d\n", r.Summary.StartDay)
	fmt.Printf("Final cash           : $%.2f\n", r.Summary.FinalCash)
	fmt.Printf("Total revenue        : $%.2f\n", r.Summary.TotalRevenue)
	fmt.Printf("Orders completed     : %d\n", r.Summary.OrdersCompleted)
	fmt.Printf("Orders awaiting kits : %d\n", r.Summary.OrdersWaitingKits)
	if r.Summary.OrdersCompleted > 0 {
		fmt.Printf("Average lead time    : %.3f days\n", r.Summary.AvgLeadTime)
		fmt.Printf("Max lead time        : %.3f days\n", r.Summary.MaxLeadTime)
		fmt.Printf("Average revenue      : $%.2f\n", r.Summary.AvgRevenue)
	}
	if len(r.Warnings) > 0 {
		fmt.Printf("Warnings (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
