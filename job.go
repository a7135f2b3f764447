package qsim

import "time"

// Job is one circuit execution request queued on a device backend.
type Job struct {
	ID          string
	Circuit     *Circuit
	Shots       int
	SubmittedAt time.Time
	Attempt     int
	LastError   error
}
