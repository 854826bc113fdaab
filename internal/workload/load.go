// Package workload reads process sets from CSV or YAML files.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Hasti0013/schedcompare/sched"
)

var (
	ErrInvalidArgs  = errors.New("invalid args")
	ErrMalformedRow = errors.New("malformed row")
)

// Workload is a process set plus an optional round-robin quantum (0 when unset).
type Workload struct {
	Quantum   int64           `yaml:"quantum"`
	Processes []sched.Process `yaml:"processes"`
}

// OpenProcessingFile opens the single scheduling file named in args and
// returns it with a close func.
func OpenProcessingFile(args ...string) (*os.File, func() error, error) {
	if len(args) != 1 {
		return nil, nil, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: error opening scheduling file", err)
	}
	return f, f.Close, nil
}

// LoadFile reads a workload, choosing the format by extension:
// .yaml/.yml is YAML, anything else is CSV.
func LoadFile(path string) (Workload, error) {
	f, closeFile, err := OpenProcessingFile(path)
	if err != nil {
		return Workload{}, err
	}
	defer closeFile()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		processes, err := LoadCSV(f)
		return Workload{Processes: processes}, err
	}
}

// LoadCSV parses rows of "id,burst,arrival". A fourth column, if present, is ignored.
// Blank lines are skipped and a leading header row is allowed.
func LoadCSV(r io.Reader) ([]sched.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}

	processes := make([]sched.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("%w: line %d: want id,burst,arrival, got %d fields", ErrMalformedRow, i+1, len(row))
		}
		burst, err := strToInt(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: burst: %v", ErrMalformedRow, i+1, err)
		}
		arrival, err := strToInt(row[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: arrival: %v", ErrMalformedRow, i+1, err)
		}
		processes = append(processes, sched.NewProcess(strings.TrimSpace(row[0]), arrival, burst))
	}
	if err := sched.Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

// LoadYAML parses
//
//	quantum: 4
//	processes:
//	  - {id: P1, arrival_time: 0, burst_time: 5}
func LoadYAML(r io.Reader) (Workload, error) {
	var w Workload
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&w); err != nil {
		return Workload{}, fmt.Errorf("%w: decoding YAML: %v", ErrMalformedRow, err)
	}
	for i := range w.Processes {
		w.Processes[i] = sched.NewProcess(w.Processes[i].ID, w.Processes[i].ArrivalTime, w.Processes[i].BurstDuration)
	}
	if err := sched.Validate(w.Processes); err != nil {
		return Workload{}, err
	}
	return w, nil
}

var headerWords = map[string]bool{"id": true, "pid": true, "process": true, "process_id": true, "name": true}

// isHeader reports whether row is a column header: a known id column name
// followed by a non-numeric burst column.
func isHeader(row []string) bool {
	if len(row) < 2 || !headerWords[strings.ToLower(strings.TrimSpace(row[0]))] {
		return false
	}
	_, err := strToInt(row[1])
	return err != nil
}

func strToInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
