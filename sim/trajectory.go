package sim

// Trajectory holds the four aligned per-day series produced by one run.
// Index 0 is the initial state; index TimeSpan is the final state. The
// slices are allocated once by NewSimulator and never resized.
type Trajectory struct {
	Susceptible []float64 // s[i], fraction in [0,1]
	Infectious  []float64 // y[i], fraction in [0,1]
	Recovered   []float64 // z[i], fraction in [0,1]
	Deaths      []int64   // cumulative recorded deaths through day i
}

// newTrajectory allocates a Trajectory with steps+1 entries per series,
// initialized to the pre-outbreak baseline (s=1, y=z=0, deaths=0).
func newTrajectory(steps int) Trajectory {
	tr := Trajectory{
		Susceptible: make([]float64, steps+1),
		Infectious:  make([]float64, steps+1),
		Recovered:   make([]float64, steps+1),
		Deaths:      make([]int64, steps+1),
	}
	for i := range tr.Susceptible {
		tr.Susceptible[i] = 1
	}
	return tr
}

// Len returns the number of days recorded, including day 0.
func (tr Trajectory) Len() int {
	return len(tr.Deaths)
}
