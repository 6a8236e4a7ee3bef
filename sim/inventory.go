package sim

import "github.com/sirupsen/logrus"

// Inventory tracks raw-material stock and the replenishment protocol:
// reorder-point/reorder-quantity policy, at most one in-flight shipment,
// and a FIFO backlog of orders blocked awaiting material. Stock never goes
// negative; orders are blocked rather than allowed to oversubscribe.
type Inventory struct {
	Stock           int
	ReorderPoint    int
	ReorderQuantity int
	InFlight        bool // at most one outstanding shipment per run
	Backlog         []*Order

	lastSkipWarnDay int // throttles the insufficient-cash warning to once per day
}

// NewInventory creates an inventory ledger with the given opening stock
// and reorder policy.
func NewInventory(stock, reorderPoint, reorderQuantity int) *Inventory {
	return &Inventory{
		Stock:           stock,
		ReorderPoint:    reorderPoint,
		ReorderQuantity: reorderQuantity,
		lastSkipWarnDay: -1,
	}
}

// ShipmentCost returns the cash needed for one replenishment at the
// current reorder quantity: fixed shipping fee plus per-kit cost.
func (inv *Inventory) ShipmentCost() float64 {
	return KitShippingFee + KitUnitCost*float64(inv.ReorderQuantity)
}

// ConsumeOrQueue debits stock for the order and routes it to the first
// station, or appends it to the backlog when stock is short. Either path
// evaluates the reorder trigger.
func (inv *Inventory) ConsumeOrQueue(sim *Simulator, o *Order) {
	if inv.Stock >= o.LotSize {
		inv.Stock -= o.LotSize
		inv.ReorderCheck(sim)
		first := StepStation[0]
		sim.Stations[first].Enqueue(o)
		sim.DispatchStation(first)
	} else {
		inv.Backlog = append(inv.Backlog, o)
		inv.ReorderCheck(sim)
	}
}

// ReorderCheck places a replenishment order when stock has fallen to the
// reorder point, no shipment is outstanding, and the reorder quantity is
// positive. Cash is debited at order time, not delivery time; the delivery
// event fires after the fixed supplier lead time. When cash cannot cover
// the shipment the check is skipped with a once-per-day warning and
// retried automatically on the next qualifying check.
func (inv *Inventory) ReorderCheck(sim *Simulator) {
	if inv.InFlight || inv.Stock > inv.ReorderPoint || inv.ReorderQuantity <= 0 {
		return
	}
	cost := inv.ShipmentCost()
	if sim.Cash.Balance < cost {
		day := int(sim.Clock)
		if day != inv.lastSkipWarnDay {
			inv.lastSkipWarnDay = day
			sim.Warnf("Day %d: Kit reorder skipped: insufficient cash (have $%.2f, need $%.2f)",
				day, sim.Cash.Balance, cost)
		}
		return
	}
	sim.Cash.Debit(cost)
	inv.InFlight = true
	sim.Schedule(&KitDeliveryEvent{time: sim.Clock + KitLeadDays, Qty: inv.ReorderQuantity})
	logrus.Debugf("[day %08.3f] ordered %d kits for $%.2f", sim.Clock, inv.ReorderQuantity, cost)
}

// OnDelivery credits the shipment, clears the in-flight flag, drains the
// backlog in strict arrival order while stock suffices, and re-evaluates
// the reorder trigger.
func (inv *Inventory) OnDelivery(sim *Simulator, qty int) {
	inv.Stock += qty
	inv.InFlight = false
	for len(inv.Backlog) > 0 && inv.Stock >= inv.Backlog[0].LotSize {
		o := inv.Backlog[0]
		inv.Backlog = inv.Backlog[1:]
		inv.Stock -= o.LotSize
		first := StepStation[0]
		sim.Stations[first].Enqueue(o)
		sim.DispatchStation(first)
	}
	inv.ReorderCheck(sim)
}
