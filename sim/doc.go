// Package sim provides the discrete-event simulation engine for the
// Littlefield factory game: a three-station, four-step manufacturing line
// with stochastic order arrivals, raw-material replenishment, lead-time
// sensitive contract revenue, daily compounding interest, and a scripted
// strategy timeline.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - order.go: the unit of work flowing through the line
//   - event.go: event kinds that drive the simulation (arrival, kit
//     delivery, step completion)
//   - simulator.go: the event loop, clock ownership, and day-boundary
//     side effects
//
// # Determinism
//
// One Simulator owns all mutable run state and a single seeded random
// stream (rng.go). Events with equal timestamps replay in insertion order.
// Two runs with the same Config produce bit-identical results. Simulators
// share nothing, so independent runs may execute concurrently.
package sim
