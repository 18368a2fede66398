// Tracks run-wide summary statistics such as the epidemic peak,
// the final attack rate, and the cumulative death toll.

package sim

import "fmt"

// Metrics aggregates statistics about one simulation run for final
// reporting. Useful for comparing scenarios and debugging parameter choices.
type Metrics struct {
	PeakInfectious float64 // highest infectious fraction reached
	PeakDay        int     // day the infectious fraction peaked
	AttackRate     float64 // final fraction ever infected (1 - s at end)
	FinalDeaths    int64   // cumulative deaths at the end of the run
	DaysSimulated  int
}

// NewMetrics returns a zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Record scans a completed trajectory and fills the summary fields.
func (m *Metrics) Record(p Params, tr Trajectory) {
	for day, y := range tr.Infectious {
		if y > m.PeakInfectious {
			m.PeakInfectious = y
			m.PeakDay = day
		}
	}
	last := tr.Len() - 1
	m.AttackRate = 1 - tr.Susceptible[last]
	m.FinalDeaths = tr.Deaths[last]
	m.DaysSimulated = last
}

// Print displays the summary at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Days Simulated       : %d\n", m.DaysSimulated)
	fmt.Printf("Peak Infectious      : %.4f of population (day %d)\n", m.PeakInfectious, m.PeakDay)
	fmt.Printf("Final Attack Rate    : %.4f\n", m.AttackRate)
	fmt.Printf("Cumulative Deaths    : %d\n", m.FinalDeaths)
}
