package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/zeebo/clingy"

	"github.com/loov/addmul/compare"
	"github.com/loov/addmul/config"
	"github.com/loov/addmul/report"
)

var errMismatch = errors.New("multipliers disagree")

type cmdCompare struct {
	configPaths   []string
	inlineConfigs []string
	format        string
}

func (c *cmdCompare) Setup(params clingy.Parameters) {
	c.configPaths = params.Flag("config", "path to config file",
		[]string{config.DefaultPath},
		clingy.Repeated,
	).([]string)

	c.inlineConfigs = params.Flag("c", "inline CUE config",
		[]string{},
		clingy.Repeated,
	).([]string)

	c.format = params.Flag("format", "output format: markdown or json, overrides config", "").(string)
}

func (c *cmdCompare) Execute(ctx context.Context) error {
	// workaround for clingy bug
	if len(c.configPaths) == 0 {
		c.configPaths = []string{config.DefaultPath}
	}

	cfg, err := config.Load(c.configPaths, c.inlineConfigs)
	if err != nil {
		return err
	}

	format := cfg.Format
	if c.format != "" {
		format = c.format
	}

	pipeline := compare.NewPipeline(cfg)

	stderr := clingy.Stderr(ctx)
	if isTerminal(stderr) {
		var mu sync.Mutex
		done := 0
		pipeline.OnProgress(func(event compare.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			done++
			fmt.Fprintf(stderr, "\r[%d/%d] %d × %d: %s", done, event.Total,
				event.Outcome.X, event.Outcome.Y, event.Outcome.Status)
			if done == event.Total {
				fmt.Fprintln(stderr)
			}
		})
	}

	r, err := pipeline.Run(ctx, cfg.Cases)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	if err := writeReport(clingy.Stdout(ctx), r, format); err != nil {
		return err
	}

	if r.Totals.Mismatches > 0 {
		return fmt.Errorf("%d of %d cases: %w", r.Totals.Mismatches, r.Totals.Cases, errMismatch)
	}
	return nil
}

func writeReport(w io.Writer, r *report.Report, format string) error {
	switch format {
	case "json":
		return report.WriteJSON(w, r)
	case "markdown":
		_, err := io.WriteString(w, report.WriteMarkdown(r))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
