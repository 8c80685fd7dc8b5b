// Package fractal builds the geometry of every pattern family: the spiral,
// Koch curves and snowflake, the Sierpinski triangle and the branching tree.
//
// Every generator is a pure function of its arguments, so repeated calls with
// the same input produce identical output and the results can be cached.
// Recursive definitions are evaluated with explicit worklists; emission order
// matches the depth-first recursive order.
package fractal

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument reports an input outside a generator's domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDepthTooLarge reports a recursion depth whose output would not fit in memory.
	ErrDepthTooLarge = errors.New("recursion depth too large")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func checkDepth(name string, depth, limit int) error {
	if depth < 0 {
		return invalidf("%s depth %d is negative", name, depth)
	}
	if depth > limit {
		return fmt.Errorf("%w: %s depth %d exceeds %d", ErrDepthTooLarge, name, depth, limit)
	}
	return nil
}
