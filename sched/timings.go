package sched

// Timings are the averages reported for one policy run.
type Timings struct {
	AvgTurnaround         float64 `json:"avg_tat"`
	AvgWeightedTurnaround float64 `json:"avg_wt"`
}

// Average computes the mean turnaround and mean weighted turnaround of a completed batch.
func Average(processes []Process) (Timings, error) {
	if err := Validate(processes); err != nil {
		return Timings{}, err
	}
	var (
		totalTurnaround         float64
		totalWeightedTurnaround float64
	)
	for _, p := range processes {
		totalTurnaround += float64(p.TurnaroundTime)
		totalWeightedTurnaround += p.WeightedTurnaround()
	}
	count := float64(len(processes))
	return Timings{
		AvgTurnaround:         totalTurnaround / count,
		AvgWeightedTurnaround: totalWeightedTurnaround / count,
	}, nil
}
