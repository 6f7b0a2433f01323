package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zeebo/clingy"

	"github.com/loov/addmul/config"
	"github.com/loov/addmul/mul"
)

type cmdMul struct {
	configPath string
	method     string
	maxDepth   string
	x          string
	y          string
}

func (c *cmdMul) Setup(params clingy.Parameters) {
	c.configPath = params.Flag("config", "path to config file", config.DefaultPath).(string)
	c.method = params.Flag("method", "multiplier to use: "+strings.Join(mul.Methods(), " or ")+", overrides config", "").(string)
	c.maxDepth = params.Flag("max-depth", "largest multiplier the recursive method accepts, overrides config", "").(string)

	c.x = params.Arg("x", "multiplicand").(string)
	c.y = params.Arg("y", "multiplier").(string)
}

func (c *cmdMul) Execute(ctx context.Context) error {
	x, err := parseOperand("x", c.x)
	if err != nil {
		return err
	}
	y, err := parseOperand("y", c.y)
	if err != nil {
		return err
	}

	cfg, err := config.Load([]string{c.configPath}, nil)
	if err != nil {
		return err
	}
	method := cfg.Method
	if c.method != "" {
		method = c.method
	}
	maxDepth := cfg.MaxDepth
	if c.maxDepth != "" {
		maxDepth, err = parseOperand("max-depth", c.maxDepth)
		if err != nil {
			return err
		}
	}

	var product uint64
	switch method {
	case "recursive":
		product, err = mul.RecursiveLimit(x, y, maxDepth)
		if err != nil {
			return err
		}
	default:
		fn, err := mul.Lookup(method)
		if err != nil {
			return err
		}
		product = fn(x, y)
	}

	if mul.Wraps(x, y) {
		stderr := clingy.Stderr(ctx)
		msg := fmt.Sprintf("warning: %d × %d does not fit in 64 bits, result wrapped", x, y)
		if isTerminal(stderr) {
			msg = "\x1b[33m" + msg + "\x1b[0m"
		}
		fmt.Fprintln(stderr, msg)
	}

	_, err = fmt.Fprintln(clingy.Stdout(ctx), product)
	return err
}

func parseOperand(name, value string) (uint64, error) {
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return v, nil
}
