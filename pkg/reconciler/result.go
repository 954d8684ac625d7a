package reconciler

import (
	"fmt"
	"time"
)

// Result represents the outcome of one reconciliation pass. It carries one
// Outcome per in-scope definition, in catalog order.
type Result struct {
	// Outcomes holds the ordered per-definition outcomes.
	Outcomes []Outcome

	// Metadata about the pass.
	Metadata ResultMetadata
}

// ResultMetadata contains metadata about the reconciliation pass.
type ResultMetadata struct {
	// StartTime when reconciliation started
	StartTime time.Time

	// EndTime when reconciliation completed
	EndTime time.Time

	// Duration of the reconciliation
	Duration time.Duration
}

// NewResult creates a new result with defaults.
func NewResult() *Result {
	return &Result{
		Outcomes: []Outcome{},
		Metadata: ResultMetadata{
			StartTime: time.Now(),
		},
	}
}

// Finalize calculates duration and marks completion.
func (r *Result) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
}

// Created returns the number of created outcomes.
func (r *Result) Created() int { return r.count(OpCreated) }

// Updated returns the number of updated outcomes.
func (r *Result) Updated() int { return r.count(OpUpdated) }

// Skipped returns the number of skipped outcomes.
func (r *Result) Skipped() int { return r.count(OpSkipped) }

// Failed returns the number of failed outcomes.
func (r *Result) Failed() int { return r.count(OpFailed) }

func (r *Result) count(op Op) int {
	n := 0
	for _, outcome := range r.Outcomes {
		if outcome.Op == op {
			n++
		}
	}
	return n
}

// Errors returns the failure reasons of all failed outcomes, in order.
func (r *Result) Errors() []error {
	var errs []error
	for _, outcome := range r.Outcomes {
		if outcome.Failed() {
			errs = append(errs, outcome.Err)
		}
	}
	return errs
}

// IsSuccess returns true if no definition failed.
func (r *Result) IsSuccess() bool {
	return r.Failed() == 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	if !r.IsSuccess() {
		return fmt.Sprintf("Registration completed with %d failures (%d created, %d updated, %d skipped)",
			r.Failed(), r.Created(), r.Updated(), r.Skipped())
	}
	return fmt.Sprintf("Registration successful (%d created, %d updated, %d skipped)",
		r.Created(), r.Updated(), r.Skipped())
}
