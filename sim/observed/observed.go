// Package observed loads externally-sourced cumulative death counts for
// comparison against simulated trajectories, and exports simulated
// trajectories as CSV for external plotting tools.
package observed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/epidemic-sim/epidemic-sim/sim"
)

// Series is an observed cumulative death-count time series, one entry per
// day starting at Day 0 of the series' own calendar.
type Series struct {
	Dates  []string // as given in the source file, informational only
	Deaths []int64
}

// Len returns the number of observed days.
func (s Series) Len() int {
	return len(s.Deaths)
}

// CSV column headers for observed death-count files.
var observedColumns = []string{"date", "deaths"}

// CSV column headers for exported trajectories.
var trajectoryColumns = []string{"day", "susceptible", "infectious", "recovered", "deaths"}

// LoadSeries reads an observed series from a CSV file with a "date,deaths"
// header. Rows must carry cumulative (not daily) counts; a decreasing count
// is rejected since revisions should be resolved upstream of the model.
func LoadSeries(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, fmt.Errorf("opening observed series: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return Series{}, fmt.Errorf("reading observed series header: %w", err)
	}
	if len(header) != len(observedColumns) || header[0] != observedColumns[0] || header[1] != observedColumns[1] {
		return Series{}, fmt.Errorf("unexpected observed series header %v, want %v", header, observedColumns)
	}

	var series Series
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Series{}, fmt.Errorf("reading observed series line %d: %w", line, err)
		}
		deaths, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			return Series{}, fmt.Errorf("parsing death count on line %d: %w", line, err)
		}
		if deaths < 0 {
			return Series{}, fmt.Errorf("negative death count %d on line %d", deaths, line)
		}
		if n := len(series.Deaths); n > 0 && deaths < series.Deaths[n-1] {
			return Series{}, fmt.Errorf("cumulative count decreases on line %d (%d -> %d)",
				line, series.Deaths[n-1], deaths)
		}
		series.Dates = append(series.Dates, row[0])
		series.Deaths = append(series.Deaths, deaths)
	}

	logrus.Infof("loaded %d observed days from %s", series.Len(), path)
	return series, nil
}

// ExportTrajectory writes the four aligned series as CSV, one row per day.
// Fractions keep full float64 precision so a re-import is lossless.
func ExportTrajectory(tr sim.Trajectory, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trajectory file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(trajectoryColumns); err != nil {
		return fmt.Errorf("writing trajectory header: %w", err)
	}
	for day := 0; day < tr.Len(); day++ {
		row := []string{
			strconv.Itoa(day),
			strconv.FormatFloat(tr.Susceptible[day], 'g', -1, 64),
			strconv.FormatFloat(tr.Infectious[day], 'g', -1, 64),
			strconv.FormatFloat(tr.Recovered[day], 'g', -1, 64),
			strconv.FormatInt(tr.Deaths[day], 10),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing trajectory day %d: %w", day, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing trajectory file: %w", err)
	}

	logrus.Infof("wrote %d-day trajectory to %s", tr.Len(), path)
	return nil
}
