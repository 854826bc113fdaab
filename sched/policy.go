package sched

import (
	"fmt"
	"sort"
	"strings"
)

// Display names, in the order Compare runs the policies.
const (
	NameFCFS       = "First Come First Serve"
	NameSJF        = "Shortest Job First"
	NameLCN        = "Longest Completion Next"
	NameRoundRobin = "Round Robin"
)

// Policy simulates one scheduling discipline over a process set.
// Implementations work on their own copy and never modify the caller's slice.
type Policy interface {
	Name() string
	Schedule(processes []Process) (Batch, error)
}

// Batch is the outcome of one policy run.
type Batch struct {
	Policy    string      `json:"policy"`
	Processes []Process   `json:"processes"`
	Gantt     []TimeSlice `json:"gantt"`
	Timings   Timings     `json:"timings"`
}

var policyKeys = map[string]string{
	"fcfs": NameFCFS,
	"sjf":  NameSJF,
	"lcn":  NameLCN,
	"rr":   NameRoundRobin,
}

// PolicyKeys lists the short names NewPolicy accepts.
func PolicyKeys() []string {
	keys := make([]string, 0, len(policyKeys))
	for k := range policyKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewPolicy builds a policy by short name: "fcfs", "sjf", "lcn" or "rr".
// quantum is only used by "rr".
func NewPolicy(name string, quantum int64) (Policy, error) {
	switch strings.ToLower(name) {
	case "fcfs":
		return FCFS{}, nil
	case "sjf":
		return SJF{}, nil
	case "lcn":
		return LCN{}, nil
	case "rr":
		if err := validateQuantum(quantum); err != nil {
			return nil, err
		}
		return RoundRobin{Quantum: quantum}, nil
	default:
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownPolicy, name, strings.Join(PolicyKeys(), ", "))
	}
}

// Policies returns the four policies in display order.
func Policies(quantum int64) []Policy {
	return []Policy{FCFS{}, SJF{}, LCN{}, RoundRobin{Quantum: quantum}}
}

func finishBatch(name string, completed []Process, gantt []TimeSlice) (Batch, error) {
	timings, err := Average(completed)
	if err != nil {
		return Batch{}, fmt.Errorf("%s: %w", name, err)
	}
	return Batch{
		Policy:    name,
		Processes: completed,
		Gantt:     gantt,
		Timings:   timings,
	}, nil
}

// runReadySet drives a single non-preemptive CPU. Whenever the CPU is free it
// collects every pending process that has arrived and lets pick choose one by
// index into ready; with nothing ready the clock advances one unit.
func runReadySet(pending []Process, pick func(ready []*Process) int) ([]Process, []TimeSlice) {
	var (
		clock     int64
		completed = make([]Process, 0, len(pending))
		gantt     = make([]TimeSlice, 0, len(pending))
		ready     = make([]*Process, 0, len(pending))
		readyIdx  = make([]int, 0, len(pending))
	)
	for len(pending) > 0 {
		ready, readyIdx = ready[:0], readyIdx[:0]
		for i := range pending {
			if pending[i].ArrivalTime <= clock {
				ready = append(ready, &pending[i])
				readyIdx = append(readyIdx, i)
			}
		}
		if len(ready) == 0 {
			clock++
			continue
		}

		i := readyIdx[pick(ready)]
		current := pending[i]
		pending = append(pending[:i], pending[i+1:]...)

		current.StartTime, current.Started = clock, true
		clock += current.BurstDuration
		current.finish(clock)

		completed = append(completed, current)
		gantt = append(gantt, TimeSlice{PID: current.ID, Start: current.StartTime, Stop: clock})
	}
	return completed, gantt
}
