package report

import (
	"fmt"
	"strings"
)

// WriteMarkdown renders the report as markdown.
func WriteMarkdown(r *Report) string {
	var b strings.Builder

	b.WriteString("# Multiplication Comparison Report\n\n")

	if len(r.Metadata.Methods) > 0 {
		fmt.Fprintf(&b, "Methods: %s  \n", strings.Join(r.Metadata.Methods, ", "))
	}
	fmt.Fprintf(&b, "Max recursion depth: %d  \n", r.Metadata.MaxDepth)
	if r.Metadata.Duration != "" {
		fmt.Fprintf(&b, "Duration: %s  \n", r.Metadata.Duration)
	}
	b.WriteString("\n")

	b.WriteString("## Summary\n\n")
	b.WriteString("| Cases | OK | Mismatches | Skipped | Wrapped |\n")
	b.WriteString("|------:|---:|-----------:|--------:|--------:|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d | %d |\n\n",
		r.Totals.Cases, r.Totals.OK, r.Totals.Mismatches, r.Totals.Skipped, r.Totals.Wrapped)

	b.WriteString("## Cases\n\n")
	b.WriteString("| x | y | iterative | recursive | expected | status |\n")
	b.WriteString("|--:|--:|----------:|----------:|---------:|--------|\n")
	for _, o := range r.Outcomes {
		fmt.Fprintf(&b, "| %d | %d | %s | %s | %s | %s |\n",
			o.X, o.Y, optional(o.Iterative), optional(o.Recursive), optional(o.Expected), statusText(o))
	}
	b.WriteString("\n")

	mismatches := r.Mismatches()
	if len(mismatches) == 0 {
		b.WriteString("No mismatches found.\n")
		return b.String()
	}

	b.WriteString("## Mismatches\n\n")
	for _, o := range mismatches {
		fmt.Fprintf(&b, "### %d × %d\n\n", o.X, o.Y)
		fmt.Fprintf(&b, "%s\n\n", o.Reason)
	}
	return b.String()
}

func optional(v *uint64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func statusText(o Outcome) string {
	s := string(o.Status)
	if o.Wrapped {
		s += " (wrapped)"
	}
	return s
}
