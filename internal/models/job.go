package models

import "time"

// Job is one row of the scheduled-jobs view, normalized for aggregation.
type Job struct {
	JobNumber       string
	ClientName      string
	Date            *time.Time // scheduled calendar date
	CalculatedValue float64
	JobType         string // trimmed + uppercased, e.g. "RECURRING", "ONE_OFF"
	Salesperson     string // trimmed + lowercased
	DateConverted   *time.Time
}

func (j Job) Recurring() bool { return j.JobType == "RECURRING" }
