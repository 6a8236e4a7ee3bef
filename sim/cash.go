package sim

// CashLedger holds the running balance. The sign of the balance alone
// selects the daily interest rate; every other debit and credit is an
// immediate, synchronous mutation performed by the component that triggers
// it. The ledger keeps no transaction history.
type CashLedger struct {
	Balance float64
}

// Credit adds amount to the balance.
func (c *CashLedger) Credit(amount float64) { c.Balance += amount }

// Debit subtracts amount from the balance. The balance may go negative;
// debt only changes the interest rate.
func (c *CashLedger) Debit(amount float64) { c.Balance -= amount }

// ApplyDailyInterest compounds one day of interest: 10%/yr on a
// non-negative balance, 20%/yr on debt. The caller invokes this exactly
// once per whole simulated day crossed.
func (c *CashLedger) ApplyDailyInterest() {
	rate := InterestRatePositive
	if c.Balance < 0 {
		rate = InterestRateNegative
	}
	c.Balance *= 1 + rate
}
