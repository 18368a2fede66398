package sim

import "math"

// The per-step rate functions are pure and clamp every input to its valid
// domain before use, so invalid upstream state cannot propagate out-of-range
// values. Clamping here is a value-range invariant, not error handling:
// a negative beta behaves as zero transmission rather than failing the run.

// clamp01 restricts a population fraction to [0,1].
func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// clampRate restricts a rate parameter to [0, +inf).
func clampRate(v float64) float64 {
	return math.Max(0, v)
}

// InfectiousDelta returns the one-day change in the infectious fraction:
// new infections (beta*y*s) minus recoveries (sigma*y).
func InfectiousDelta(y, s, beta, sigma float64) float64 {
	y, s = clamp01(y), clamp01(s)
	beta, sigma = clampRate(beta), clampRate(sigma)
	return beta*y*s - sigma*y
}

// RecoveredDelta returns the one-day flow from the infectious pool into the
// recovered pool.
func RecoveredDelta(y, sigma float64) float64 {
	return clampRate(sigma) * clamp01(y)
}

// SusceptibleDelta returns the one-day depletion of the susceptible pool.
func SusceptibleDelta(y, s, beta float64) float64 {
	return -clampRate(beta) * clamp01(y) * clamp01(s)
}

// CumulativeDeaths converts the recovered fraction from lag days earlier
// into a whole-person cumulative death count: of the zLagged*n people who
// left the infectious pool by then, a fraction rho developed severe disease
// and a fraction theta of those died.
func CumulativeDeaths(n, rho, theta, zLagged float64) int64 {
	rho, theta, zLagged = clamp01(rho), clamp01(theta), clamp01(zLagged)
	return int64(math.Round(math.Max(0, n) * rho * theta * zLagged))
}
