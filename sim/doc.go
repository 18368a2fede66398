// Package sim provides the core discrete-time SIR simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - params.go: the immutable parameter set and how beta/sigma/lag are derived
//   - rates.go: the four pure per-step rate functions and their clamping rules
//   - simulator.go: the three-phase step loop (pre-outbreak, seeding, integration)
//
// # Architecture
//
// The model partitions a population into susceptible, infectious, and
// recovered fractions and advances them with explicit forward differences,
// one step per day. Cumulative deaths are derived from the recovered
// fraction a fixed number of days earlier, scaled by the severe-disease
// rate and the fatality risk given severity.
//
// All trajectory storage is allocated once per run and sized TimeSpan+1.
// A Simulator holds no state between runs; two runs with equal Params
// produce bit-identical output.
//
// Sub-packages:
//   - sim/observed: CSV load/export of death-count series and fit statistics
package sim
