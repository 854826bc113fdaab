package sched

import "sort"

// LCN is "longest completion next": among arrived processes it picks the one
// with the largest CompletionTime. Pending processes have not completed, so
// every candidate compares as 0 and the first arrived process in arrival
// order wins. The selection is kept as is; see DESIGN.md.
type LCN struct{}

func (LCN) Name() string { return NameLCN }

func (LCN) Schedule(processes []Process) (Batch, error) {
	if err := Validate(processes); err != nil {
		return Batch{}, err
	}
	pending := clone(processes)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ArrivalTime < pending[j].ArrivalTime
	})

	completed, gantt := runReadySet(pending, func(ready []*Process) int {
		longest := 0
		for i := 1; i < len(ready); i++ {
			if ready[i].CompletionTime > ready[longest].CompletionTime {
				longest = i
			}
		}
		return longest
	})
	return finishBatch(NameLCN, completed, gantt)
}
