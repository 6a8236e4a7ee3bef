package sim

import "math"

const (
	// NumStations is the number of physical machine pools on the line.
	NumStations = 3
	// NumSteps is the number of processing steps every order passes
	// through. An order whose step counter reaches NumSteps is complete.
	NumSteps = 4
)

// StepStation maps each processing step to the station that serves it.
// Station 1 serves both the first test pass (step 1) and the final
// re-test (step 3).
var StepStation = [NumSteps]int{0, 1, 2, 1}

// StepTiming holds the timing parameters of one processing step, in days.
type StepTiming struct {
	SetupMean  float64 // mean of the exponential setup draw
	PerKitMean float64 // per-kit mean (gamma scale, shape = lot size)
}

// StepTimings is fixed for the whole run; only machine counts change.
var StepTimings = [NumSteps]StepTiming{
	{SetupMean: 0.015, PerKitMean: 0.0010}, // step 0: stuffing @ station 0
	{SetupMean: 0.010, PerKitMean: 0.0014}, // step 1: testing  @ station 1
	{SetupMean: 0.008, PerKitMean: 0.0015}, // step 2: tuning   @ station 2
	{SetupMean: 0.010, PerKitMean: 0.0020}, // step 3: re-test  @ station 1
}

// MachineCost is the purchase price of one machine, per station.
var MachineCost = [NumStations]float64{90_000, 80_000, 100_000}

// MachineSellPrice is the resale price of a machine, uniform across
// stations.
const MachineSellPrice = 10_000.0

// MachineNames index by station; used in timeline action names, warnings
// and logs.
var MachineNames = [NumStations]string{"stuffer", "tester", "tuner"}

// Supplier terms for raw-material kits.
const (
	KitUnitCost    = 10.0    // $ per kit
	KitShippingFee = 1_000.0 // fixed $ per shipment
	KitLeadDays    = 4.0     // supplier lead time in days
)

// Daily interest rates: 10%/yr on a non-negative balance, 20%/yr on debt,
// both compounded daily.
var (
	InterestRatePositive = math.Pow(1.10, 1.0/365.0) - 1
	InterestRateNegative = math.Pow(1.20, 1.0/365.0) - 1
)
