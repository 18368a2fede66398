package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParams(t *testing.T, inverseSigma, theta, rho, r0, psy float64, population int64, timeSpan, firstCase int) Params {
	t.Helper()
	p, err := NewParams(inverseSigma, theta, rho, r0, psy, population, timeSpan, firstCase)
	require.NoError(t, err)
	return p
}

func TestRun_PreOutbreakBaseline(t *testing.T) {
	tr := NewSimulator(DefaultParams()).Run()

	for day := 0; day < DefaultFirstCase; day++ {
		assert.Equal(t, 0.0, tr.Infectious[day], "day %d", day)
		assert.Equal(t, 0.0, tr.Recovered[day], "day %d", day)
		assert.Equal(t, 1.0, tr.Susceptible[day], "day %d", day)
		assert.Equal(t, int64(0), tr.Deaths[day], "day %d", day)
	}
}

func TestRun_SeedsExactlyOneCase(t *testing.T) {
	p := DefaultParams()
	tr := NewSimulator(p).Run()

	assert.Equal(t, 1/p.N, tr.Infectious[p.FirstCase])
	assert.Equal(t, 0.0, tr.Recovered[p.FirstCase])
	assert.Equal(t, 1.0, tr.Susceptible[p.FirstCase])
	assert.Equal(t, int64(0), tr.Deaths[p.FirstCase])
}

func TestRun_SeedsOnDayZero(t *testing.T) {
	p := mustParams(t, 4.5, 0.14, 0.01, 2.75, 17, 1000, 30, 0)
	tr := NewSimulator(p).Run()
	assert.Equal(t, 1/p.N, tr.Infectious[0])
}

func TestRun_FractionsStayInRange(t *testing.T) {
	// A deliberately aggressive parameter set to stress the clamps.
	p := mustParams(t, 1.0, 1.0, 1.0, 20, 0, 1000, 200, 1)
	tr := NewSimulator(p).Run()

	for day := 0; day < tr.Len(); day++ {
		assert.GreaterOrEqual(t, tr.Infectious[day], 0.0, "y on day %d", day)
		assert.LessOrEqual(t, tr.Infectious[day], 1.0, "y on day %d", day)
		assert.GreaterOrEqual(t, tr.Recovered[day], 0.0, "z on day %d", day)
		assert.LessOrEqual(t, tr.Recovered[day], 1.0, "z on day %d", day)
		assert.GreaterOrEqual(t, tr.Susceptible[day], 0.0, "s on day %d", day)
		assert.LessOrEqual(t, tr.Susceptible[day], 1.0, "s on day %d", day)
	}
}

func TestRun_ConservesPopulation(t *testing.T) {
	p := DefaultParams()
	tr := NewSimulator(p).Run()

	// The susceptible-tracking formulation conserves s+y+z to within
	// floating-point error, except for the seeded 1/N on the index day.
	for day := p.FirstCase + 1; day < tr.Len(); day++ {
		total := tr.Susceptible[day] + tr.Infectious[day] + tr.Recovered[day]
		assert.InDelta(t, 1.0, total, 1e-6, "day %d", day)
	}
}

func TestRun_DeathsMonotone(t *testing.T) {
	tr := NewSimulator(DefaultParams()).Run()
	for day := 1; day < tr.Len(); day++ {
		assert.GreaterOrEqual(t, tr.Deaths[day], tr.Deaths[day-1], "day %d", day)
	}
}

func TestRun_NoDeathsWithoutSeverityOrFatality(t *testing.T) {
	for _, p := range []Params{
		mustParams(t, 4.5, 0.14, 0, 2.75, 17, 66_000_000, 90, 10), // rho = 0
		mustParams(t, 4.5, 0, 0.01, 2.75, 17, 66_000_000, 90, 10), // theta = 0
	} {
		tr := NewSimulator(p).Run()
		for day := 0; day < tr.Len(); day++ {
			assert.Equal(t, int64(0), tr.Deaths[day], "day %d", day)
		}
	}
}

func TestRun_NoTransmissionNeverDepletesSusceptibles(t *testing.T) {
	p := mustParams(t, 4.5, 0.14, 0.01, 0, 17, 1000, 60, 5) // R0 = 0 -> beta = 0
	tr := NewSimulator(p).Run()

	seed := 1 / p.N
	for day := 0; day < tr.Len(); day++ {
		assert.Equal(t, 1.0, tr.Susceptible[day], "day %d", day)
		assert.LessOrEqual(t, tr.Infectious[day], seed, "y can only decay via recovery on day %d", day)
	}
}

func TestRun_BaselineScenario(t *testing.T) {
	tr := NewSimulator(DefaultParams()).Run()

	require.Equal(t, 91, tr.Len())

	// Ten pre-outbreak zeros, and no recorded death until the recovery
	// lag has elapsed past the index case (day 10+17 = 27).
	for day := 0; day <= 27; day++ {
		assert.Equal(t, int64(0), tr.Deaths[day], "day %d", day)
	}
	assert.Greater(t, tr.Deaths[90], int64(0), "the outbreak produces recorded deaths within the horizon")

	// Bounded by N*rho*theta: deaths cannot exceed the IFR ceiling.
	assert.LessOrEqual(t, tr.Deaths[90], int64(92_400))
}

func TestRun_Deterministic(t *testing.T) {
	p := DefaultParams()
	first := NewSimulator(p).Run()
	second := NewSimulator(p).Run()
	assert.Equal(t, first, second, "identical parameters must produce bit-identical trajectories")
}

func TestRun_DeathLagShiftsReporting(t *testing.T) {
	base := mustParams(t, 4.5, 0.14, 0.01, 2.75, 0, 66_000_000, 90, 10)
	lagged := mustParams(t, 4.5, 0.14, 0.01, 2.75, 17, 66_000_000, 90, 10)

	noLag := NewSimulator(base).Run()
	withLag := NewSimulator(lagged).Run()

	// Reporting with a lag can never run ahead of reporting without one.
	for day := 0; day < noLag.Len(); day++ {
		assert.LessOrEqual(t, withLag.Deaths[day], noLag.Deaths[day], "day %d", day)
	}
	// And the lagged curve is the unlagged one shifted by the lag window.
	for day := lagged.Lag; day < noLag.Len(); day++ {
		assert.Equal(t, noLag.Deaths[day-lagged.Lag], withLag.Deaths[day], "day %d", day)
	}
}

func TestMetrics_RecordSummarizesRun(t *testing.T) {
	s := NewSimulator(DefaultParams())
	tr := s.Run()

	assert.Equal(t, 90, s.Metrics.DaysSimulated)
	assert.Equal(t, tr.Deaths[90], s.Metrics.FinalDeaths)
	assert.InDelta(t, 1-tr.Susceptible[90], s.Metrics.AttackRate, 1e-15)
	assert.Greater(t, s.Metrics.PeakInfectious, 0.0)
	assert.Equal(t, tr.Infectious[s.Metrics.PeakDay], s.Metrics.PeakInfectious)
}
