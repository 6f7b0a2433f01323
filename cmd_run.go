package main

import (
	"context"
	"fmt"

	"github.com/zeebo/clingy"

	"github.com/loov/addmul/mul"
)

type cmdRun struct{}

func (c *cmdRun) Setup(params clingy.Parameters) {}

func (c *cmdRun) Execute(ctx context.Context) error {
	_, err := fmt.Fprintln(clingy.Stdout(ctx), mul.Recursive(10, 5))
	return err
}
