package analysis

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// RunLog holds the parsed contents of one trainer log file. The trainer
// writes a tab separated table, a header row followed by one row of values
// per iteration.
type RunLog struct {
	Headers []string
	Columns map[string][]float64
}

func (l *RunLog) Column(name string) ([]float64, bool) {
	col, ok := l.Columns[name]
	return col, ok
}

func (l *RunLog) Len() int {
	if len(l.Headers) == 0 {
		return 0
	}
	return len(l.Columns[l.Headers[0]])
}

// ParseLog reads a tab separated trainer log table. Values that do not
// parse as numbers are stored as NaN so that row alignment is preserved.
func ParseLog(r io.Reader) (*RunLog, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("empty log (analysis:logs.go:ParseLog:1)")
	}
	headers := strings.Split(strings.TrimRight(scanner.Text(), "\n"), "\t")

	log := &RunLog{
		Headers: headers,
		Columns: make(map[string][]float64),
	}
	for _, h := range headers {
		log.Columns[h] = make([]float64, 0)
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\n")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != len(headers) {
			return nil, fmt.Errorf("row with %d fields, expected %d (analysis:logs.go:ParseLog:2)", len(fields), len(headers))
		}
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				v = math.NaN()
			}
			log.Columns[headers[i]] = append(log.Columns[headers[i]], v)
		}
	}
	return log, scanner.Err()
}

// LoadRunLog parses the log.txt inside the given run directory
func LoadRunLog(runDir string) (*RunLog, error) {
	f, err := os.Open(path.Join(runDir, "log.txt"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseLog(f)
}

// ExperimentData groups the seed logs of a single experiment
type ExperimentData struct {
	Name  string
	Seeds []*RunLog
}

// LoadDataDir reads the trainer output directory. Each immediate
// subdirectory is one experiment, every log.txt below it is one seed.
// Experiments are returned sorted by name.
func LoadDataDir(dataDir string) ([]*ExperimentData, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, err
	}

	experiments := make([]*ExperimentData, 0)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		expDir := path.Join(dataDir, e.Name())
		exp := &ExperimentData{Name: e.Name(), Seeds: make([]*RunLog, 0)}

		err := filepath.WalkDir(expDir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || d.Name() != "log.txt" {
				return nil
			}
			f, err := os.Open(p)
			if err != nil {
				return err
			}
			defer f.Close()
			log, err := ParseLog(f)
			if err != nil {
				return fmt.Errorf("parsing %s (analysis:logs.go:LoadDataDir:1):\n%s", p, err)
			}
			exp.Seeds = append(exp.Seeds, log)
			return nil
		})
		if err != nil {
			return nil, err
		}

		if len(exp.Seeds) > 0 {
			experiments = append(experiments, exp)
		}
	}

	slices.SortFunc(experiments, func(a, b *ExperimentData) int {
		return strings.Compare(a.Name, b.Name)
	})
	return experiments, nil
}

// MeanCurve aggregates one column across the seed logs. Curves are
// truncated to the shortest seed. Returns the per iteration mean and
// standard deviation.
func (e *ExperimentData) MeanCurve(column string) ([]float64, []float64, error) {
	minLen := -1
	curves := make([][]float64, 0, len(e.Seeds))
	for _, s := range e.Seeds {
		col, ok := s.Column(column)
		if !ok {
			return nil, nil, fmt.Errorf("experiment %s has no column %s (analysis:logs.go:MeanCurve:1)", e.Name, column)
		}
		curves = append(curves, col)
		if minLen == -1 || len(col) < minLen {
			minLen = len(col)
		}
	}
	if minLen <= 0 {
		return nil, nil, fmt.Errorf("experiment %s has no data (analysis:logs.go:MeanCurve:2)", e.Name)
	}

	means := make([]float64, minLen)
	stds := make([]float64, minLen)
	sample := make([]float64, len(curves))
	for i := 0; i < minLen; i++ {
		for j, c := range curves {
			sample[j] = c[i]
		}
		means[i] = stat.Mean(sample, nil)
		if len(sample) > 1 {
			stds[i] = stat.StdDev(sample, nil)
		}
	}
	return means, stds, nil
}
