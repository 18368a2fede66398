package sim

import (
	"fmt"
	"math"
)

// Default scenario values, matching the fitted UK run the model was
// originally tuned against.
const (
	DefaultInverseSigma = 4.5  // mean infectious duration in days
	DefaultTheta        = 0.14 // fatality risk given severe disease
	DefaultRho          = 0.01 // severe-disease rate
	DefaultR0           = 2.75 // basic reproduction number
	DefaultPsy          = 17.0 // days between recovery and recorded death
	DefaultPopulation   = 66_000_000
	DefaultTimeSpan     = 90
	DefaultFirstCase    = 10
)

// Params is the immutable parameter set for one simulation run.
// Beta, Sigma and Lag are derived once in NewParams; the step loop never
// recomputes them.
type Params struct {
	Beta      float64 // per-day transmission rate (sigma * R0)
	Sigma     float64 // per-day recovery rate (1 / mean infectious duration)
	R0        float64 // basic reproduction number
	Rho       float64 // severe-disease rate, in [0,1]
	Theta     float64 // fatality risk given severity, in [0,1]
	Lag       int     // days between recovery and recorded death
	N         float64 // total population size
	FirstCase int     // day index of the index infection
	TimeSpan  int     // number of days to simulate
}

// NewParams derives a Params from user-facing inputs. inverseSigma is the
// mean infectious duration in days; psy is the recovery-to-death lag and is
// rounded to a whole number of days, floored at zero.
//
// Rate inputs outside their valid range are clamped by the step functions at
// use time; structural inputs that would make the run meaningless (zero or
// negative duration, population, or span) are rejected here instead.
func NewParams(inverseSigma, theta, rho, r0, psy float64, population int64, timeSpan, firstCase int) (Params, error) {
	if inverseSigma <= 0 {
		return Params{}, fmt.Errorf("mean infectious duration must be positive, got %v", inverseSigma)
	}
	if population <= 0 {
		return Params{}, fmt.Errorf("population must be positive, got %d", population)
	}
	if timeSpan <= 0 {
		return Params{}, fmt.Errorf("time span must be positive, got %d", timeSpan)
	}
	if firstCase < 0 {
		return Params{}, fmt.Errorf("first case day must be non-negative, got %d", firstCase)
	}

	sigma := 1.0 / inverseSigma
	return Params{
		Beta:      sigma * r0,
		Sigma:     sigma,
		R0:        r0,
		Rho:       rho,
		Theta:     theta,
		Lag:       int(math.Max(0, math.Round(psy))),
		N:         float64(population),
		FirstCase: firstCase,
		TimeSpan:  timeSpan,
	}, nil
}

// DefaultParams returns the baseline scenario.
func DefaultParams() Params {
	p, err := NewParams(DefaultInverseSigma, DefaultTheta, DefaultRho, DefaultR0,
		DefaultPsy, DefaultPopulation, DefaultTimeSpan, DefaultFirstCase)
	if err != nil {
		// The defaults are compile-time constants that satisfy NewParams.
		panic(err)
	}
	return p
}

// WithR0 returns a copy of p with the reproduction number replaced and beta
// re-derived. Used by parameter sweeps.
func (p Params) WithR0(r0 float64) Params {
	p.R0 = r0
	p.Beta = p.Sigma * r0
	return p
}
