package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events. Each event has a
// timestamp in simulated days and an Execute method that advances
// simulation state when invoked. Insertion order among equal timestamps is
// tracked by the scheduler, not the event itself.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// ArrivalEvent represents a new customer order arriving at the factory.
type ArrivalEvent struct {
	time float64
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 { return e.time }

// Execute creates the order, routes it through inventory, and schedules
// the next arrival.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	logrus.Debugf("[day %08.3f] << Arrival", e.time)
	sim.handleArrival()
}

// KitDeliveryEvent represents a supplier shipment of raw-material kits
// arriving at the factory.
type KitDeliveryEvent struct {
	time float64
	Qty  int
}

// Timestamp returns the scheduled time of the KitDeliveryEvent.
func (e *KitDeliveryEvent) Timestamp() float64 { return e.time }

// Execute credits the stock and releases blocked orders.
func (e *KitDeliveryEvent) Execute(sim *Simulator) {
	logrus.Debugf("[day %08.3f] << KitDelivery: %d kits", e.time, e.Qty)
	sim.Inventory.OnDelivery(sim, e.Qty)
}

// StepCompleteEvent represents a machine finishing one processing step of
// an order.
type StepCompleteEvent struct {
	time     float64
	Order    *Order
	Station  int
	Duration float64
}

// Timestamp returns the scheduled time of the StepCompleteEvent.
func (e *StepCompleteEvent) Timestamp() float64 { return e.time }

// Execute frees the machine and advances the order to its next step, or
// completes it.
func (e *StepCompleteEvent) Execute(sim *Simulator) {
	logrus.Debugf("[day %08.3f] << StepComplete: order %d step %d at station %d",
		e.time, e.Order.ID, e.Order.Step, e.Station)
	sim.handleStepComplete(e.Order, e.Station, e.Duration)
}
