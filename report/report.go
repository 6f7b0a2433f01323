// Package report describes the outcome of comparing multipliers.
package report

import "time"

// Status classifies a single case.
type Status string

const (
	StatusOK       Status = "ok"
	StatusMismatch Status = "mismatch"
	StatusSkipped  Status = "skipped"
)

// Report is the result of a comparison run.
type Report struct {
	Metadata Metadata  `json:"metadata"`
	Outcomes []Outcome `json:"outcomes"`
	Totals   Totals    `json:"totals"`
}

// Metadata describes how the run was configured.
type Metadata struct {
	Methods     []string  `json:"methods"`
	MaxDepth    uint64    `json:"maxDepth"`
	Concurrency int       `json:"concurrency"`
	StartedAt   time.Time `json:"startedAt"`
	Duration    string    `json:"duration"`
}

// Outcome is the result of multiplying one pair of operands both ways.
type Outcome struct {
	X         uint64  `json:"x"`
	Y         uint64  `json:"y"`
	Expected  *uint64 `json:"expected,omitempty"`
	// Iterative and Recursive are nil when the multiplier was over the depth limit.
	Iterative *uint64 `json:"iterative,omitempty"`
	Recursive *uint64 `json:"recursive,omitempty"`
	Wrapped   bool    `json:"wrapped"`
	Status    Status  `json:"status"`
	Reason    string  `json:"reason,omitempty"`
}

// Totals counts outcomes by status.
type Totals struct {
	Cases      int `json:"cases"`
	OK         int `json:"ok"`
	Mismatches int `json:"mismatches"`
	Skipped    int `json:"skipped"`
	Wrapped    int `json:"wrapped"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// AddOutcome appends an outcome and updates the totals.
func (r *Report) AddOutcome(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	r.Totals.Cases++
	switch o.Status {
	case StatusOK:
		r.Totals.OK++
	case StatusMismatch:
		r.Totals.Mismatches++
	case StatusSkipped:
		r.Totals.Skipped++
	}
	if o.Wrapped {
		r.Totals.Wrapped++
	}
}

// Mismatches returns the outcomes where the multipliers disagreed.
func (r *Report) Mismatches() []Outcome {
	var result []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusMismatch {
			result = append(result, o)
		}
	}
	return result
}
