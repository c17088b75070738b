package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/garage/config"
)

// csvFile appends rows to one CSV file, writing the header with the first row.
type csvFile struct {
	f             *os.File
	headerWritten bool
}

func createCSV(dir, name string) (*csvFile, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvFile{f: f}, nil
}

func (c *csvFile) write(records any) error {
	var w io.Writer = c.f
	if !c.headerWritten {
		if err := gocsv.Marshal(records, w); err != nil {
			return err
		}
		c.headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, w)
}

func (c *csvFile) close() error {
	if c == nil || c.f == nil {
		return nil
	}
	return c.f.Close()
}

// OutputManager writes a run's pose, perf and event CSV files and its
// effective configuration.
type OutputManager struct {
	dir    string
	pose   *csvFile
	perf   *csvFile
	events *csvFile
}

// NewOutputManager creates the output directory and files.
// Returns nil if dir is empty (output disabled); all methods accept a nil receiver.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	var err error
	if om.pose, err = createCSV(dir, "pose.csv"); err != nil {
		return nil, err
	}
	if om.perf, err = createCSV(dir, "perf.csv"); err != nil {
		om.Close()
		return nil, err
	}
	if om.events, err = createCSV(dir, "events.csv"); err != nil {
		om.Close()
		return nil, err
	}
	return om, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WritePose appends a pose record to pose.csv.
func (om *OutputManager) WritePose(rec PoseRecord) error {
	if om == nil {
		return nil
	}
	if err := om.pose.write([]PoseRecord{rec}); err != nil {
		return fmt.Errorf("writing pose: %w", err)
	}
	return nil
}

// WritePerf appends a performance record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd uint64) error {
	if om == nil {
		return nil
	}
	if err := om.perf.write([]PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// WriteEvent appends an applied input event to events.csv.
func (om *OutputManager) WriteEvent(rec EventRecord) error {
	if om == nil {
		return nil
	}
	if err := om.events.write([]EventRecord{rec}); err != nil {
		return fmt.Errorf("writing event: %w", err)
	}
	return nil
}

// WriteTrip saves the trip summary as trip.csv.
func (om *OutputManager) WriteTrip(stats TripStats) error {
	if om == nil {
		return nil
	}
	f, err := os.Create(filepath.Join(om.dir, "trip.csv"))
	if err != nil {
		return fmt.Errorf("creating trip.csv: %w", err)
	}
	defer f.Close()
	if err := gocsv.Marshal([]TripStats{stats}, f); err != nil {
		return fmt.Errorf("writing trip: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files and returns the first error.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	for _, c := range []*csvFile{om.pose, om.perf, om.events} {
		if err := c.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
