package sched

import "sort"

// FCFS runs processes to completion in arrival order; equal arrivals keep input order.
type FCFS struct{}

func (FCFS) Name() string { return NameFCFS }

func (FCFS) Schedule(processes []Process) (Batch, error) {
	if err := Validate(processes); err != nil {
		return Batch{}, err
	}
	var (
		serviceTime int64
		queue       = clone(processes)
		gantt       = make([]TimeSlice, 0, len(queue))
	)
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].ArrivalTime < queue[j].ArrivalTime
	})

	for i := range queue {
		p := &queue[i]
		p.StartTime, p.Started = max(serviceTime, p.ArrivalTime), true
		serviceTime = p.StartTime + p.BurstDuration
		p.finish(serviceTime)
		gantt = append(gantt, TimeSlice{PID: p.ID, Start: p.StartTime, Stop: serviceTime})
	}
	return finishBatch(NameFCFS, queue, gantt)
}
