package sched

// RoundRobin is preemptive with a fixed quantum. The run queue starts in input
// order, not arrival order, and arrival times do not hold a process back.
type RoundRobin struct {
	Quantum int64
}

func (RoundRobin) Name() string { return NameRoundRobin }

// Schedule returns processes in input order; StartTime is left unset.
// Back-to-back turns of the same process share one TimeSlice.
func (rr RoundRobin) Schedule(processes []Process) (Batch, error) {
	if err := Validate(processes); err != nil {
		return Batch{}, err
	}
	if err := validateQuantum(rr.Quantum); err != nil {
		return Batch{}, err
	}
	if err := validateTurns(processes, rr.Quantum); err != nil {
		return Batch{}, err
	}
	var (
		serviceTime int64
		table       = clone(processes)
		queue       = make([]int, len(table))
		gantt       = make([]TimeSlice, 0, len(table))
		lastTurn    = -1
	)
	for i := range queue {
		queue[i] = i
	}

	for len(queue) > 0 {
		turn := queue[0]
		queue = queue[1:]
		p := &table[turn]

		start := serviceTime
		if p.RemainingTime > rr.Quantum {
			serviceTime += rr.Quantum
			p.RemainingTime -= rr.Quantum
			queue = append(queue, turn)
		} else {
			serviceTime += p.RemainingTime
			p.finish(serviceTime)
		}
		// A process alone in the queue keeps the CPU: extend its slice.
		if turn == lastTurn {
			gantt[len(gantt)-1].Stop = serviceTime
		} else {
			gantt = append(gantt, TimeSlice{PID: p.ID, Start: start, Stop: serviceTime})
		}
		lastTurn = turn
	}
	return finishBatch(NameRoundRobin, table, gantt)
}
