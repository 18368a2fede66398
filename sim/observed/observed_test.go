package observed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epidemic-sim/epidemic-sim/sim"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeries_ParsesCumulativeCounts(t *testing.T) {
	path := writeFile(t, "observed.csv", "date,deaths\n2020-03-01,1\n2020-03-02,3\n2020-03-03,3\n2020-03-04,10\n")

	series, err := LoadSeries(path)
	require.NoError(t, err)

	assert.Equal(t, 4, series.Len())
	assert.Equal(t, []string{"2020-03-01", "2020-03-02", "2020-03-03", "2020-03-04"}, series.Dates)
	assert.Equal(t, []int64{1, 3, 3, 10}, series.Deaths)
}

func TestLoadSeries_RejectsBadHeader(t *testing.T) {
	path := writeFile(t, "observed.csv", "day,count\n1,2\n")
	_, err := LoadSeries(path)
	assert.ErrorContains(t, err, "unexpected observed series header")
}

func TestLoadSeries_RejectsDecreasingCounts(t *testing.T) {
	path := writeFile(t, "observed.csv", "date,deaths\n2020-03-01,5\n2020-03-02,4\n")
	_, err := LoadSeries(path)
	assert.ErrorContains(t, err, "cumulative count decreases")
}

func TestLoadSeries_RejectsNegativeCounts(t *testing.T) {
	path := writeFile(t, "observed.csv", "date,deaths\n2020-03-01,-2\n")
	_, err := LoadSeries(path)
	assert.ErrorContains(t, err, "negative death count")
}

func TestLoadSeries_RejectsMalformedCount(t *testing.T) {
	path := writeFile(t, "observed.csv", "date,deaths\n2020-03-01,many\n")
	_, err := LoadSeries(path)
	assert.ErrorContains(t, err, "parsing death count on line 2")
}

func TestLoadSeries_MissingFile(t *testing.T) {
	_, err := LoadSeries(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestExportTrajectory_WritesAlignedRows(t *testing.T) {
	s := sim.NewSimulator(sim.DefaultParams())
	tr := s.Run()

	path := filepath.Join(t.TempDir(), "trajectory.csv")
	require.NoError(t, ExportTrajectory(tr, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := splitLines(string(data))
	require.Equal(t, tr.Len()+1, len(lines), "header plus one row per day")
	assert.Equal(t, "day,susceptible,infectious,recovered,deaths", lines[0])
	assert.Equal(t, "0,1,0,0,0", lines[1])
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
