package sim

import (
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Sampler is the single source of randomness for a run. Interarrival and
// processing-time draws all come from one seeded stream; no other
// component generates randomness.
//
// Thread-safety: NOT thread-safe. Owned by exactly one Simulator.
type Sampler struct {
	key SimulationKey
	src xrand.Source
}

// NewSampler creates a Sampler seeded from the given key.
func NewSampler(key SimulationKey) *Sampler {
	return &Sampler{key: key, src: xrand.NewSource(uint64(key))}
}

// Key returns the SimulationKey used to seed this Sampler.
func (s *Sampler) Key() SimulationKey { return s.key }

// Exp draws from an exponential distribution with the given mean.
// A non-positive mean yields 0.
func (s *Sampler) Exp(mean float64) float64 {
	if mean <= 0 {
		return 0
	}
	return distuv.Exponential{Rate: 1 / mean, Src: s.src}.Rand()
}

// Gamma draws from a gamma distribution with the given shape and scale
// (mean = shape * scale). Non-positive parameters yield 0.
func (s *Sampler) Gamma(shape, scale float64) float64 {
	if shape <= 0 || scale <= 0 {
		return 0
	}
	return distuv.Gamma{Alpha: shape, Beta: 1 / scale, Src: s.src}.Rand()
}

// ProcessTime draws the duration of one step for a lot: an exponential
// setup draw plus a gamma per-kit draw with shape equal to the lot size.
func (s *Sampler) ProcessTime(step, lotSize int) float64 {
	t := StepTimings[step]
	return s.Exp(t.SetupMean) + s.Gamma(float64(lotSize), t.PerKitMean)
}
