package sim

import (
	"fmt"
	"math"
)

// Contract defines the revenue terms an order is paid under: full price at
// or below the quoted lead time, decaying to zero at the maximum lead time.
type Contract struct {
	ID             int
	Price          float64
	QuotedLeadTime float64
	MaxLeadTime    float64
}

// contracts is the fixed table offered by the customer.
var contracts = map[int]Contract{
	1: {ID: 1, Price: 750, QuotedLeadTime: 7, MaxLeadTime: 14},
	2: {ID: 2, Price: 1000, QuotedLeadTime: 1, MaxLeadTime: 2},
	3: {ID: 3, Price: 1250, QuotedLeadTime: 0.5, MaxLeadTime: 1},
}

// ContractByID looks up a contract. An unknown id is a configuration
// error.
func ContractByID(id int) (Contract, error) {
	c, ok := contracts[id]
	if !ok {
		return Contract{}, fmt.Errorf("unknown contract id %d", id)
	}
	return c, nil
}

// Revenue maps a realized lead time to the cash earned under c: full price
// at or below the quoted lead time, linear decay to zero at the maximum,
// zero beyond it. A non-positive [quoted, max] span degenerates to a step
// function at the quoted lead time. Pure function, no state.
func (c Contract) Revenue(leadTime float64) float64 {
	span := c.MaxLeadTime - c.QuotedLeadTime
	if span <= 0 {
		if leadTime <= c.QuotedLeadTime {
			return c.Price
		}
		return 0
	}
	ratio := (c.MaxLeadTime - leadTime) / span
	return c.Price * math.Min(1, math.Max(0, ratio))
}
