package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hasti0013/schedcompare/internal/workload"
	"github.com/Hasti0013/schedcompare/sched"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunCompare_CSV(t *testing.T) {
	path := writeFile(t, "jobs.csv", "P1,5,0\nP2,3,1\nP3,8,2\n")

	var buf bytes.Buffer
	require.NoError(t, runCompare(&buf, path, 0, 4, false))
	out := buf.String()
	assert.Contains(t, out, "Best algorithm: "+sched.NameFCFS)
	assert.Contains(t, out, "10.667")
	assert.NotContains(t, out, "Gantt schedule")
}

func TestRunCompare_Detail(t *testing.T) {
	path := writeFile(t, "jobs.csv", "P1,5,0\nP2,3,1\nP3,8,2\n")

	var buf bytes.Buffer
	require.NoError(t, runCompare(&buf, path, 0, 4, true))
	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte("Gantt schedule")))
}

func TestRunCompare_QuantumPrecedence(t *testing.T) {
	// Quantum 1 vs 10 changes round robin's average for this set.
	path := writeFile(t, "jobs.yaml", "quantum: 10\nprocesses:\n  - {id: A, arrival_time: 0, burst_time: 3}\n  - {id: B, arrival_time: 0, burst_time: 3}\n")

	var fromFile, fromFlag bytes.Buffer
	require.NoError(t, runCompare(&fromFile, path, 0, 1, false))
	require.NoError(t, runCompare(&fromFlag, path, 1, 10, false))

	// Round robin: q=10 gives A 3, B 6 -> 4.5 like FCFS; q=1 gives A 5, B 6 -> 5.5.
	assert.NotContains(t, fromFile.String(), "5.500")
	assert.Contains(t, fromFlag.String(), "5.500")
}

func TestRunCompare_Errors(t *testing.T) {
	var buf bytes.Buffer
	err := runCompare(&buf, writeFile(t, "bad.csv", "P1,x,0\n"), 0, 4, false)
	assert.ErrorIs(t, err, workload.ErrMalformedRow)

	err = runCompare(&buf, writeFile(t, "ok.csv", "P1,2,0\n"), -3, 4, false)
	assert.ErrorIs(t, err, sched.ErrInvalidInput)

	err = runCompare(&buf, filepath.Join(t.TempDir(), "missing.csv"), 0, 4, false)
	assert.Error(t, err)
}
