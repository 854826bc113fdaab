package sched

type (
	// Process is one job to be scheduled. It is a plain value: copying a
	// []Process gives each policy run its own descriptors.
	Process struct {
		ID            string `json:"id" yaml:"id"`
		ArrivalTime   int64  `json:"arrival_time" yaml:"arrival_time"`
		BurstDuration int64  `json:"burst_time" yaml:"burst_time"`

		// Simulation outputs, written by exactly one policy run.
		RemainingTime  int64 `json:"remaining_time" yaml:"-"`
		StartTime      int64 `json:"start_time" yaml:"-"`
		Started        bool  `json:"started" yaml:"-"`
		CompletionTime int64 `json:"completion_time" yaml:"-"`
		TurnaroundTime int64 `json:"turnaround_time" yaml:"-"`
	}
	// TimeSlice is one contiguous interval [Start, Stop) during which PID held the CPU.
	TimeSlice struct {
		PID   string `json:"pid"`
		Start int64  `json:"start"`
		Stop  int64  `json:"stop"`
	}
)

// NewProcess returns a descriptor with RemainingTime primed to the burst.
func NewProcess(id string, arrival, burst int64) Process {
	return Process{
		ID:            id,
		ArrivalTime:   arrival,
		BurstDuration: burst,
		RemainingTime: burst,
	}
}

// WeightedTurnaround is turnaround divided by burst.
func (p Process) WeightedTurnaround() float64 {
	return float64(p.TurnaroundTime) / float64(p.BurstDuration)
}

// Wait is the time the process spent ready but not running.
func (p Process) Wait() int64 {
	return p.TurnaroundTime - p.BurstDuration
}

// finish records completion at clock.
func (p *Process) finish(clock int64) {
	p.RemainingTime = 0
	p.CompletionTime = clock
	p.TurnaroundTime = clock - p.ArrivalTime
}

// FromColumns builds descriptors from parallel id/arrival/burst columns.
func FromColumns(ids []string, arrivals, bursts []int64) ([]Process, error) {
	if len(ids) != len(arrivals) || len(ids) != len(bursts) {
		return nil, invalidf("column lengths differ: %d ids, %d arrival times, %d burst times",
			len(ids), len(arrivals), len(bursts))
	}
	processes := make([]Process, len(ids))
	for i := range ids {
		processes[i] = NewProcess(ids[i], arrivals[i], bursts[i])
	}
	if err := Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

// clone returns an independent copy with every simulation output reset.
func clone(processes []Process) []Process {
	out := make([]Process, len(processes))
	for i, p := range processes {
		out[i] = NewProcess(p.ID, p.ArrivalTime, p.BurstDuration)
	}
	return out
}
