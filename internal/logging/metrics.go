package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/gprimeca/GenALib/internal/ga"
	"github.com/gprimeca/GenALib/internal/stats"
	"github.com/gprimeca/GenALib/internal/tsp"
)

// Logger writes per-generation summaries to CSV, JSONL and the console.
// It implements ga.Observer.
type Logger struct {
	runID       string
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	console     io.Writer
	everyGen    bool
	started     time.Time
	initialized bool
	err         error
}

// NewLogger creates a logger. Empty paths disable the matching file output;
// a nil console disables console lines.
func NewLogger(runID, csvPath, jsonPath string, console io.Writer, everyGen bool) (*Logger, error) {
	l := &Logger{
		runID:    runID,
		csvPath:  csvPath,
		jsonPath: jsonPath,
		console:  console,
		everyGen: everyGen,
	}

	// Ensure directories exist
	for _, p := range []string{csvPath, jsonPath} {
		if p == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	return l, nil
}

// Init opens the log files and writes the CSV header
func (l *Logger) Init() error {
	var err error

	if l.csvPath != "" {
		l.csvFile, err = os.Create(l.csvPath)
		if err != nil {
			return fmt.Errorf("failed to create csv log: %w", err)
		}
		l.csvWriter = csv.NewWriter(l.csvFile)

		header := []string{
			"run_id", "generation", "best_score", "worst_score", "average_score",
			"stddev_score", "total_score", "average_fitness", "total_fitness",
		}
		if err := l.csvWriter.Write(header); err != nil {
			return err
		}
		l.csvWriter.Flush()
	}

	if l.jsonPath != "" {
		l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("failed to create json log: %w", err)
		}
	}

	l.started = time.Now()
	l.initialized = true
	return nil
}

// Close flushes and closes all log files
func (l *Logger) Close() {
	if l.csvWriter != nil {
		l.csvWriter.Flush()
	}
	if l.csvFile != nil {
		l.csvFile.Close()
	}
	if l.jsonFile != nil {
		l.jsonFile.Close()
	}
}

// GenerationSummary is one line of the JSONL log
type GenerationSummary struct {
	RunID      string `json:"run_id"`
	Generation uint   `json:"generation"`
	stats.Snapshot
}

// Generation logs a summary of pop
func (l *Logger) Generation(gen uint, pop *ga.Population) {
	if !l.initialized {
		return
	}

	summary := GenerationSummary{
		RunID:      l.runID,
		Generation: gen,
		Snapshot:   stats.Summarize(pop),
	}

	if l.csvWriter != nil {
		row := []string{
			l.runID,
			strconv.FormatUint(uint64(gen), 10),
			fmt.Sprintf("%.4f", summary.BestScore),
			fmt.Sprintf("%.4f", summary.WorstScore),
			fmt.Sprintf("%.4f", summary.AverageScore),
			fmt.Sprintf("%.4f", summary.StdDevScore),
			fmt.Sprintf("%.4f", summary.TotalScore),
			fmt.Sprintf("%.4f", summary.AverageFitness),
			fmt.Sprintf("%.4f", summary.TotalFitness),
		}
		if err := l.csvWriter.Write(row); err != nil {
			l.fail(fmt.Errorf("failed to write csv row %d: %w", gen, err))
		}
		l.csvWriter.Flush()
		if err := l.csvWriter.Error(); err != nil {
			l.fail(fmt.Errorf("failed to flush csv row %d: %w", gen, err))
		}
	}

	if l.jsonFile != nil {
		jsonLine, err := json.Marshal(summary)
		if err != nil {
			l.fail(fmt.Errorf("failed to encode summary %d: %w", gen, err))
		} else if _, err := l.jsonFile.Write(append(jsonLine, '\n')); err != nil {
			l.fail(fmt.Errorf("failed to write json line %d: %w", gen, err))
		}
	}

	if l.console != nil && l.everyGen {
		fmt.Fprintf(l.console, "Gen %4d | Best: %10.2f | Worst: %10.2f | Mean: %10.2f | Std: %8.2f\n",
			gen, summary.BestScore, summary.WorstScore, summary.AverageScore, summary.StdDevScore)
	}
}

// Err returns the first error met while writing generation logs.
// Generation keeps going after a failure so console output is not lost.
func (l *Logger) Err() error {
	return l.err
}

func (l *Logger) fail(err error) {
	if l.err == nil {
		l.err = err
	}
}

// Finished prints the final statistics to the console
func (l *Logger) Finished(gen uint, rec ga.Recorder) {
	if l.console == nil {
		return
	}
	fmt.Fprintln(l.console, "---")
	fmt.Fprintf(l.console, "Run %s complete: %s generations in %s\n",
		l.runID, humanize.Comma(int64(gen)), time.Since(l.started).Round(time.Millisecond))
	if s, ok := rec.(fmt.Stringer); ok {
		fmt.Fprintln(l.console, s.String())
	}
}

// SaveBestTour writes the tour as JSON to path
func SaveBestTour(path, runID string, tour *tsp.Tour, gen uint) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data := struct {
		RunID      string         `json:"run_id"`
		Generation uint           `json:"generation"`
		Score      float64        `json:"score"`
		Waypoints  []tsp.Waypoint `json:"waypoints"`
	}{
		RunID:      runID,
		Generation: gen,
		Score:      tour.Score(),
		Waypoints:  tour.Waypoints(),
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonData, 0644)
}
