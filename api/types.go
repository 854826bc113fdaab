package api

import "github.com/Hasti0013/schedcompare/sched"

type ProcessRequest struct {
	ID          string `json:"id"`
	ArrivalTime int64  `json:"arrival_time"`
	BurstTime   int64  `json:"burst_time"`
}

// ScheduleRequest is the JSON body. A zero quantum means the configured default.
type ScheduleRequest struct {
	Processes []ProcessRequest `json:"processes"`
	Quantum   int64            `json:"quantum"`
}

type ScheduleResponse struct {
	Results sched.Results `json:"results"`
	Best    string        `json:"best,omitempty"`
	Batches []sched.Batch `json:"batches,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
