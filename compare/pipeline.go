package compare

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/loov/addmul/config"
	"github.com/loov/addmul/mul"
	"github.com/loov/addmul/report"
)

// ProgressCallback is called after each case is evaluated
type ProgressCallback func(event ProgressEvent)

// ProgressEvent represents a progress update during comparison
type ProgressEvent struct {
	Index   int
	Total   int
	Outcome report.Outcome
}

// Pipeline multiplies each case both ways and checks the results agree
type Pipeline struct {
	config     *config.Config
	onProgress ProgressCallback
	now        func() time.Time
}

// NewPipeline creates a new comparison pipeline
func NewPipeline(cfg *config.Config) *Pipeline {
	return &Pipeline{
		config: cfg,
		now:    time.Now,
	}
}

// OnProgress sets a callback for progress events.
// The callback may be invoked from several goroutines at once.
func (p *Pipeline) OnProgress(cb ProgressCallback) {
	p.onProgress = cb
}

func (p *Pipeline) reportProgress(event ProgressEvent) {
	if p.onProgress != nil {
		p.onProgress(event)
	}
}

// Run evaluates every case and returns the report with outcomes in input order.
func (p *Pipeline) Run(ctx context.Context, cases []config.Case) (*report.Report, error) {
	start := p.now()

	outcomes := make([]report.Outcome, len(cases))

	group, groupCtx := errgroup.WithContext(ctx)
	limit := p.config.Concurrency
	if limit < 1 {
		limit = 1
	}
	group.SetLimit(limit)

	for i, c := range cases {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			outcome, err := p.Evaluate(c)
			if err != nil {
				return fmt.Errorf("case %d (%d × %d): %w", i, c.X, c.Y, err)
			}
			outcomes[i] = outcome
			p.reportProgress(ProgressEvent{Index: i, Total: len(cases), Outcome: outcome})
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := report.NewReport()
	r.Metadata = report.Metadata{
		Methods:     mul.Methods(),
		MaxDepth:    p.config.MaxDepth,
		Concurrency: limit,
		StartedAt:   start,
		Duration:    p.now().Sub(start).String(),
	}
	for _, outcome := range outcomes {
		r.AddOutcome(outcome)
	}
	return r, nil
}

// Evaluate multiplies a single case with both methods.
// Cases with a multiplier over MaxDepth are skipped on both sides; the
// iterative loop runs y times and cannot be interrupted.
func (p *Pipeline) Evaluate(c config.Case) (report.Outcome, error) {
	outcome := report.Outcome{
		X:        c.X,
		Y:        c.Y,
		Expected: c.Expected,
		Wrapped:  mul.Wraps(c.X, c.Y),
		Status:   report.StatusOK,
	}

	recursive, err := mul.RecursiveLimit(c.X, c.Y, p.config.MaxDepth)
	switch {
	case errors.Is(err, mul.ErrDepthExceeded):
		outcome.Status = report.StatusSkipped
		outcome.Reason = err.Error()
		return outcome, nil
	case err != nil:
		return outcome, err
	}

	iterative := mul.Iterative(c.X, c.Y)
	outcome.Iterative = &iterative
	outcome.Recursive = &recursive

	if recursive != iterative {
		outcome.Status = report.StatusMismatch
		outcome.Reason = fmt.Sprintf("iterative gave %d, recursive gave %d", iterative, recursive)
		return outcome, nil
	}

	if c.Expected != nil && *c.Expected != iterative {
		outcome.Status = report.StatusMismatch
		outcome.Reason = fmt.Sprintf("expected %d, got %d", *c.Expected, iterative)
	}
	return outcome, nil
}
