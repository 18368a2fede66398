// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"
)

// Simulator holds the parameter set and the trajectory storage for one run.
// All storage is allocated in NewSimulator; Run fills it in a single pass.
type Simulator struct {
	Params     Params
	Trajectory Trajectory
	Metrics    *Metrics
}

// NewSimulator allocates a simulator for the given parameter set.
func NewSimulator(p Params) *Simulator {
	return &Simulator{
		Params:     p,
		Trajectory: newTrajectory(p.TimeSpan),
		Metrics:    NewMetrics(),
	}
}

// Run advances the model from day 0 through day TimeSpan. Each day falls in
// one of three regimes selected by comparing the day index to FirstCase:
//
//	day < FirstCase:  pre-outbreak, everything stays at baseline
//	day == FirstCase: the index infection seeds y = 1/N
//	day > FirstCase:  explicit forward-difference integration
//
// Deaths recorded on a given day derive from the recovered fraction Lag days
// earlier; before the lag window has elapsed the lookup floors at day 0,
// where the recovered fraction is always zero.
func (sim *Simulator) Run() Trajectory {
	p := sim.Params
	tr := sim.Trajectory

	logrus.Debugf("run start: R0=%.2f beta=%.4f sigma=%.4f lag=%dd span=%dd firstCase=day %d",
		p.R0, p.Beta, p.Sigma, p.Lag, p.TimeSpan, p.FirstCase)

	if p.FirstCase == 0 {
		tr.Infectious[0] = 1 / p.N
	}

	for day := 1; day <= p.TimeSpan; day++ {
		switch {
		case day < p.FirstCase:
			// Pre-outbreak baseline is the allocation default.
		case day == p.FirstCase:
			tr.Infectious[day] = 1 / p.N
			logrus.Debugf("day %d: index case seeded, y=%.3g", day, tr.Infectious[day])
		default:
			y, z, s := tr.Infectious[day-1], tr.Recovered[day-1], tr.Susceptible[day-1]

			tr.Infectious[day] = clamp01(y + InfectiousDelta(y, s, p.Beta, p.Sigma))
			tr.Recovered[day] = clamp01(z + RecoveredDelta(y, p.Sigma))
			tr.Susceptible[day] = clamp01(s + SusceptibleDelta(y, s, p.Beta))
		}

		lagDay := max(0, day-p.Lag)
		deaths := CumulativeDeaths(p.N, p.Rho, p.Theta, tr.Recovered[lagDay])
		// Cumulative count must never decrease, whatever the inputs.
		tr.Deaths[day] = max(deaths, tr.Deaths[day-1])
	}

	sim.Metrics.Record(p, tr)
	return tr
}
