package sched

import (
	"errors"
	"fmt"
	"math"
)

// MaxTimeSlices bounds the number of round-robin turns one run may take.
const MaxTimeSlices = 1 << 20

var (
	// ErrInvalidInput is returned, wrapped, for any input a policy cannot simulate.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownPolicy is returned by NewPolicy for a name it does not know.
	ErrUnknownPolicy = errors.New("unknown policy")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Validate checks the preconditions shared by every policy, including that
// the clock, which never passes the latest arrival plus all bursts, fits in
// an int64.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return invalidf("no processes to schedule")
	}
	var latest, total int64
	for i, p := range processes {
		if p.BurstDuration <= 0 {
			return invalidf("process %q (#%d): burst time must be positive, got %d", p.ID, i, p.BurstDuration)
		}
		if p.ArrivalTime < 0 {
			return invalidf("process %q (#%d): arrival time must not be negative, got %d", p.ID, i, p.ArrivalTime)
		}
		if total > math.MaxInt64-p.BurstDuration {
			return invalidf("total burst time overflows the clock")
		}
		total += p.BurstDuration
		latest = max(latest, p.ArrivalTime)
	}
	if latest > math.MaxInt64-total {
		return invalidf("latest arrival %d plus total burst %d overflows the clock", latest, total)
	}
	return nil
}

func validateQuantum(quantum int64) error {
	if quantum <= 0 {
		return invalidf("time quantum must be positive, got %d", quantum)
	}
	return nil
}

// validateTurns rejects round-robin runs that would take more than MaxTimeSlices turns.
func validateTurns(processes []Process, quantum int64) error {
	var turns int64
	for _, p := range processes {
		turns += (p.BurstDuration-1)/quantum + 1
		if turns > MaxTimeSlices {
			return invalidf("quantum %d needs more than %d round-robin turns", quantum, MaxTimeSlices)
		}
	}
	return nil
}
