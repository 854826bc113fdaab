package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Hasti0013/schedcompare/internal/report"
	"github.com/Hasti0013/schedcompare/internal/workload"
	"github.com/Hasti0013/schedcompare/sched"
)

var (
	quantum int64 // Round-robin time quantum; 0 uses the workload file, then the config
	detail  bool  // Print the Gantt chart and schedule table of every policy
)

var compareCmd = &cobra.Command{
	Use:   "compare FILE",
	Short: "Run every policy on a CSV (id,burst,arrival) or YAML process file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(cmd.OutOrStdout(), args[0], quantum, cfg.RoundRobinTimeQuantum, detail)
	},
}

func runCompare(w io.Writer, path string, flagQuantum, defaultQuantum int64, detail bool) error {
	wl, err := workload.LoadFile(path)
	if err != nil {
		return err
	}

	q := defaultQuantum
	switch {
	case flagQuantum != 0:
		q = flagQuantum
	case wl.Quantum != 0:
		q = wl.Quantum
	}
	logrus.Infof("Comparing %d processes from %s, quantum=%d", len(wl.Processes), path, q)

	cmp, err := sched.Compare(wl.Processes, q)
	if err != nil {
		return err
	}
	if detail {
		for _, batch := range cmp.Batches {
			report.Batch(w, batch)
		}
	}
	report.Comparison(w, cmp)

	logrus.Debugf("best policy: %q", cmp.Best)
	return nil
}

func init() {
	compareCmd.Flags().Int64Var(&quantum, "quantum", 0, "Round-robin time quantum (default from file or config)")
	compareCmd.Flags().BoolVar(&detail, "detail", false, "Print the Gantt chart and schedule table of every policy")
	rootCmd.AddCommand(compareCmd)
}
