package sched

import (
	"bytes"
	"encoding/json"
	"math"
)

type (
	// Result pairs a policy's display name with its averages.
	Result struct {
		Policy string
		Timings
	}
	// Results is the result record: policy name to timings, in insertion order.
	Results []Result

	// Comparison is everything one simulation request produces.
	Comparison struct {
		Results Results `json:"results"`
		Batches []Batch `json:"-"`
		Best    string  `json:"best,omitempty"`
	}
)

// Lookup returns the timings recorded for policy.
func (r Results) Lookup(policy string) (Timings, bool) {
	for _, res := range r {
		if res.Policy == policy {
			return res.Timings, true
		}
	}
	return Timings{}, false
}

// MarshalJSON writes the results as a JSON object whose keys keep insertion order.
func (r Results) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, res := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(res.Policy)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(res.Timings)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Best walks the results in order. The first policy becomes the best; a later
// one replaces it only when it is strictly better on both averages, so ties
// and one-axis improvements keep the earlier policy. ok is false when results
// is empty.
func Best(results Results) (best string, ok bool) {
	minTurnaround, minWeighted := math.Inf(1), math.Inf(1)
	for _, res := range results {
		if res.AvgTurnaround < minTurnaround && res.AvgWeightedTurnaround < minWeighted {
			best, ok = res.Policy, true
			minTurnaround, minWeighted = res.AvgTurnaround, res.AvgWeightedTurnaround
		}
	}
	return best, ok
}

// Run schedules processes under each policy, in order, and collects the batches.
// Each policy gets its own copy of processes. The first failing policy aborts
// the run.
func Run(processes []Process, policies ...Policy) ([]Batch, error) {
	batches := make([]Batch, 0, len(policies))
	for _, policy := range policies {
		batch, err := policy.Schedule(processes)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}
	return batches, nil
}

// Compare runs all four policies and selects the best one.
func Compare(processes []Process, quantum int64) (Comparison, error) {
	if err := Validate(processes); err != nil {
		return Comparison{}, err
	}
	if err := validateQuantum(quantum); err != nil {
		return Comparison{}, err
	}
	batches, err := Run(processes, Policies(quantum)...)
	if err != nil {
		return Comparison{}, err
	}
	results := make(Results, len(batches))
	for i, b := range batches {
		results[i] = Result{Policy: b.Policy, Timings: b.Timings}
	}
	best, _ := Best(results)
	return Comparison{Results: results, Batches: batches, Best: best}, nil
}
