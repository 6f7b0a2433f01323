package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zeebo/clingy"

	"github.com/loov/addmul/config"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, ok bool, err error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	ok, err = clingy.Environment{
		Name:   "addmul",
		Args:   args,
		Stdout: &outBuf,
		Stderr: &errBuf,
	}.Run(context.Background(), commands)
	return outBuf.String(), errBuf.String(), ok, err
}

func TestRun(t *testing.T) {
	stdout, _, ok, err := runCLI(t, "run")
	if !ok || err != nil {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if stdout != "50\n" {
		t.Errorf("stdout = %q, want %q", stdout, "50\n")
	}
}

func TestNoArguments(t *testing.T) {
	stdout, _, ok, err := runCLI(t, commandArgs(nil)...)
	if !ok || err != nil {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if stdout != "50\n" {
		t.Errorf("stdout = %q, want %q", stdout, "50\n")
	}

	args := commandArgs([]string{"mul", "2", "3"})
	if len(args) != 3 || args[0] != "mul" {
		t.Errorf("explicit arguments changed: %v", args)
	}
}

func TestFormatError(t *testing.T) {
	if got := formatError(errors.New("boom")); got != "boom\n" {
		t.Errorf("formatError = %q", got)
	}

	_, err := config.Load(nil, []string{`method: "shift"`})
	if err == nil {
		t.Fatal("expected config error")
	}

	msg := formatError(err)
	if !strings.HasPrefix(msg, err.Error()+"\n") {
		t.Errorf("missing summary line:\n%s", msg)
	}
	if !strings.Contains(msg, `"shift"`) {
		t.Errorf("missing CUE details:\n%s", msg)
	}
	if strings.Contains(msg, "config.go:") {
		t.Errorf("unexpected stack frames:\n%s", msg)
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"mul", "10", "5"}, "50\n"},
		{[]string{"mul", "--method", "iterative", "5", "0"}, "0\n"},
		{[]string{"mul", "--method", "iterative", "9223372036854775808", "2"}, "0\n"},
	}
	for _, test := range tests {
		stdout, _, ok, err := runCLI(t, test.args...)
		if !ok || err != nil {
			t.Errorf("%v: ok=%v err=%v", test.args, ok, err)
			continue
		}
		if stdout != test.want {
			t.Errorf("%v: stdout = %q, want %q", test.args, stdout, test.want)
		}
	}
}

func TestMulWrapWarning(t *testing.T) {
	_, stderr, _, err := runCLI(t, "mul", "9223372036854775808", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "wrapped") {
		t.Errorf("stderr = %q, want wrap warning", stderr)
	}
}

func TestMulErrors(t *testing.T) {
	tests := [][]string{
		{"mul", "--method", "shift", "1", "2"},
		{"mul", "--max-depth", "3", "1", "4"},
		{"mul", "-1", "2"},
	}
	for _, args := range tests {
		if _, _, ok, err := runCLI(t, args...); ok && err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestCompare(t *testing.T) {
	t.Chdir(t.TempDir())

	stdout, _, ok, err := runCLI(t, "compare")
	if !ok || err != nil {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if !strings.Contains(stdout, "# Multiplication Comparison Report") {
		t.Errorf("missing report title:\n%s", stdout)
	}

	stdout, _, _, err = runCLI(t, "compare", "--format", "json", "-c", `cases: [{x: 2, y: 2, expected: 5}]`)
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	if !strings.Contains(stdout, `"mismatches": 1`) {
		t.Errorf("unexpected json:\n%s", stdout)
	}
}
