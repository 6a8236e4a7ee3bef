package sim

// Order is one customer order moving through the line. It is created on
// arrival, mutated in place as it advances steps, and dropped once its
// lead time and revenue have been recorded.
type Order struct {
	ID          int64   // monotonic sequence number
	ArrivalTime float64 // simulated day of arrival
	LotSize     int     // kits of raw material this order consumes
	Step        int     // current step, 0..NumSteps; NumSteps means complete
}
