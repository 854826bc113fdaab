package sched

import "sort"

// SJF is non-preemptive shortest-job-first. Each time the CPU frees up it runs
// the arrived process with the smallest burst; ties go to the earliest in
// (arrival, burst) order, then input order.
type SJF struct{}

func (SJF) Name() string { return NameSJF }

func (SJF) Schedule(processes []Process) (Batch, error) {
	if err := Validate(processes); err != nil {
		return Batch{}, err
	}
	pending := clone(processes)
	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].ArrivalTime != pending[j].ArrivalTime {
			return pending[i].ArrivalTime < pending[j].ArrivalTime
		}
		return pending[i].BurstDuration < pending[j].BurstDuration
	})

	completed, gantt := runReadySet(pending, func(ready []*Process) int {
		shortest := 0
		for i := 1; i < len(ready); i++ {
			if ready[i].BurstDuration < ready[shortest].BurstDuration {
				shortest = i
			}
		}
		return shortest
	})
	return finishBatch(NameSJF, completed, gantt)
}
