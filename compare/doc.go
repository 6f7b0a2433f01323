// Package compare runs the iterative and recursive multipliers side by side
// over a list of cases and collects the results into a report.
package compare
