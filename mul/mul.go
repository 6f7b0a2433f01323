// Package mul multiplies unsigned 64-bit integers using only addition and
// decrement.
//
// Both routines wrap modulo 2^64 on overflow, the same way the built-in
// uint64 multiplication does.
package mul

import (
	"errors"
	"fmt"
	"math/bits"
)

// Func multiplies x by y.
type Func func(x, y uint64) uint64

// Iterative adds x to an accumulator y times.
func Iterative(x, y uint64) uint64 {
	if y == 0 {
		return 0
	}

	var result uint64
	for counter := y; counter > 0; counter-- {
		result += x
	}
	return result
}

// Recursive computes x + Recursive(x, y-1), bottoming out at y == 0.
//
// The recursion depth equals y. Go does not eliminate tail calls, so a large
// enough y exhausts the goroutine stack and the runtime aborts the process.
// Use RecursiveLimit when y is not known to be small.
func Recursive(x, y uint64) uint64 {
	if y == 0 {
		return 0
	}
	return x + Recursive(x, y-1)
}

// ErrDepthExceeded is returned when the multiplier is deeper than allowed.
var ErrDepthExceeded = errors.New("recursion depth exceeded")

// RecursiveLimit is Recursive with a guard on the recursion depth.
func RecursiveLimit(x, y, maxDepth uint64) (uint64, error) {
	if y > maxDepth {
		return 0, fmt.Errorf("multiplier %d over limit %d: %w", y, maxDepth, ErrDepthExceeded)
	}
	return Recursive(x, y), nil
}

// Wraps reports whether x*y does not fit in 64 bits.
func Wraps(x, y uint64) bool {
	hi, _ := bits.Mul64(x, y)
	return hi != 0
}

var methods = map[string]Func{
	"iterative": Iterative,
	"recursive": Recursive,
}

// Methods returns the names accepted by Lookup.
func Methods() []string {
	return []string{"iterative", "recursive"}
}

// Lookup finds a multiplier by name.
func Lookup(name string) (Func, error) {
	fn, ok := methods[name]
	if !ok {
		return nil, fmt.Errorf("unknown method %q", name)
	}
	return fn, nil
}
