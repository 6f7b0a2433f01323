package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	cueerrors "cuelang.org/go/cue/errors"
	"github.com/mattn/go-isatty"
	"github.com/zeebo/clingy"
)

func main() {
	ok, err := clingy.Environment{
		Name: "addmul",
		Args: commandArgs(os.Args[1:]),
	}.Run(context.Background(), commands)
	if err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
	}
	if !ok || err != nil {
		os.Exit(1)
	}
}

// commandArgs runs the reference driver when no command is given.
func commandArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"run"}
	}
	return args
}

func commands(cmds clingy.Commands) {
	cmds.New("run", "multiply 10 by 5 recursively and print the result", new(cmdRun))
	cmds.New("mul", "multiply two unsigned integers", new(cmdMul))
	cmds.New("compare", "compare the iterative and recursive multipliers", new(cmdCompare))
}

// formatError prints err on one line, followed by every CUE error it wraps.
func formatError(err error) string {
	msg := fmt.Sprintf("%v\n", err)

	var cueErr cueerrors.Error
	if errors.As(err, &cueErr) {
		msg += cueerrors.Details(cueErr, nil)
	}
	return msg
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
