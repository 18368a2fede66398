package observed

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/epidemic-sim/epidemic-sim/sim"
)

// FitStats summarizes how closely a simulated death curve tracks an
// observed one over their overlapping days.
type FitStats struct {
	Days         int     // number of days compared
	MeanResidual float64 // mean of simulated - observed
	RMSE         float64 // root mean squared error
	Correlation  float64 // Pearson correlation of the two series
}

// CompareDeaths aligns the simulated death trajectory against an observed
// series, offsetting the observed series by offset days relative to day 0 of
// the simulation (negative offset means the observations begin before the
// simulation does). Only the overlapping window is scored.
func CompareDeaths(tr sim.Trajectory, obs Series, offset int) (FitStats, error) {
	var simVals, obsVals []float64
	for day := 0; day < tr.Len(); day++ {
		obsIdx := day - offset
		if obsIdx < 0 || obsIdx >= obs.Len() {
			continue
		}
		simVals = append(simVals, float64(tr.Deaths[day]))
		obsVals = append(obsVals, float64(obs.Deaths[obsIdx]))
	}
	if len(simVals) < 2 {
		return FitStats{}, fmt.Errorf("only %d overlapping days between simulation and observations", len(simVals))
	}

	var sqSum float64
	residuals := make([]float64, len(simVals))
	for i := range simVals {
		residuals[i] = simVals[i] - obsVals[i]
		sqSum += residuals[i] * residuals[i]
	}

	return FitStats{
		Days:         len(simVals),
		MeanResidual: stat.Mean(residuals, nil),
		RMSE:         math.Sqrt(sqSum / float64(len(simVals))),
		Correlation:  stat.Correlation(simVals, obsVals, nil),
	}, nil
}

// Print displays the fit summary.
func (fs FitStats) Print() {
	fmt.Println("=== Fit Statistics ===")
	fmt.Printf("Days Compared        : %d\n", fs.Days)
	fmt.Printf("Mean Residual        : %.2f deaths\n", fs.MeanResidual)
	fmt.Printf("RMSE                 : %.2f deaths\n", fs.RMSE)
	fmt.Printf("Correlation          : %.4f\n", fs.Correlation)
}
