// Package report renders scheduling results as text.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Hasti0013/schedcompare/sched"
)

const barWidth = 40

//region Per-policy output

// Batch outputs one policy run as a GANTT chart and a table of timing given:
// • an output writer
// • the batch produced by a policy
func Batch(w io.Writer, batch sched.Batch) {
	Title(w, batch.Policy)
	Gantt(w, batch.Gantt)
	Schedule(w, batch)
}

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func Gantt(w io.Writer, gantt []sched.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := gantt[i].PID
		padding := strings.Repeat(" ", max(0, (8-len(pid))/2))
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func Schedule(w io.Writer, batch sched.Batch) {
	rows := make([][]string, len(batch.Processes))
	for i, p := range batch.Processes {
		start := "-"
		if p.Started {
			start = fmt.Sprint(p.StartTime)
		}
		rows[i] = []string{
			p.ID,
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstDuration),
			start,
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprintf("%.2f", p.WeightedTurnaround()),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Exit", "Turnaround", "Weighted"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", batch.Timings.AvgTurnaround),
		fmt.Sprintf("Average\n%.2f", batch.Timings.AvgWeightedTurnaround)})
	table.Render()
}

//endregion

//region Comparison output

// Comparison prints the result record as a table followed by a bar chart and the best policy.
func Comparison(w io.Writer, cmp sched.Comparison) {
	Title(w, "Comparison of CPU Scheduling Algorithms")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Turnaround", "Avg Weighted Turnaround"})
	for _, res := range cmp.Results {
		name := res.Policy
		if name == cmp.Best {
			name += " *"
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%.3f", res.AvgTurnaround),
			fmt.Sprintf("%.3f", res.AvgWeightedTurnaround),
		})
	}
	table.Render()
	_, _ = fmt.Fprintln(w)

	Chart(w, cmp.Results)

	if cmp.Best == "" {
		_, _ = fmt.Fprintln(w, "Best algorithm: none")
		return
	}
	_, _ = fmt.Fprintln(w, "Best algorithm:", cmp.Best)
}

// Chart draws one pair of horizontal bars per policy, scaled to the largest value.
func Chart(w io.Writer, results sched.Results) {
	var (
		peak    float64
		nameLen int
	)
	for _, res := range results {
		peak = math.Max(peak, math.Max(res.AvgTurnaround, res.AvgWeightedTurnaround))
		nameLen = max(nameLen, len(res.Policy))
	}

	_, _ = fmt.Fprintln(w, "Avg Turnaround (#) vs Avg Weighted Turnaround (=)")
	for _, res := range results {
		_, _ = fmt.Fprintf(w, "%-*s %s %.2f\n", nameLen, res.Policy, bar('#', res.AvgTurnaround, peak), res.AvgTurnaround)
		_, _ = fmt.Fprintf(w, "%-*s %s %.2f\n", nameLen, "", bar('=', res.AvgWeightedTurnaround, peak), res.AvgWeightedTurnaround)
	}
	_, _ = fmt.Fprintln(w)
}

func bar(fill rune, value, peak float64) string {
	if peak <= 0 || value <= 0 {
		return strings.Repeat(" ", barWidth)
	}
	n := int(math.Round(value / peak * barWidth))
	return strings.Repeat(string(fill), n) + strings.Repeat(" ", barWidth-n)
}

//endregion
