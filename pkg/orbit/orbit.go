// Package orbit runs escape-time iteration of an Equation.
package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/willbeason/complex-fractal/pkg/complexnum"
	"github.com/willbeason/complex-fractal/pkg/transforms"
)

var ErrInvalidLimit = errors.New("iteration limit out of range")

// Result is where an orbit stopped.
type Result struct {
	// Iterations is the number of steps taken.
	Iterations int
	// Z is the last value reached.
	Z complexnum.Complex
	// Escaped is whether |Z| reached the bailout radius.
	Escaped bool
}

// Escape iterates eq from z0 until |z| >= bailout or maxIterations steps have
// been taken. If a step hits a degenerate input, the Result so far is returned
// along with an error wrapping the complexnum sentinel.
func Escape(z0, c complexnum.Complex, eq transforms.Equation, maxIterations int, bailout float64) (Result, error) {
	return EscapeTransform(z0, transforms.Julia{Equation: eq, C: c}, maxIterations, bailout)
}

// EscapeTransform is Escape for an arbitrary Transform.
func EscapeTransform(z0 complexnum.Complex, t transforms.Transform, maxIterations int, bailout float64) (Result, error) {
	if maxIterations <= 0 || bailout <= 0 {
		return Result{}, fmt.Errorf("%w: got %d iterations, bailout %v", ErrInvalidLimit, maxIterations, bailout)
	}
	bailoutSQ := bailout * bailout

	z := z0
	iterations := 0
	for iterations < maxIterations && z.LengthSQ() < bailoutSQ {
		next, err := t.Next(z)
		if err != nil {
			return Result{Iterations: iterations, Z: z}, fmt.Errorf("step %d from %v: %w", iterations, z, err)
		}
		z = next
		iterations++
	}

	return Result{
		Iterations: iterations,
		Z:          z,
		Escaped:    z.LengthSQ() >= bailoutSQ,
	}, nil
}

// Path returns up to n successive iterates of eq starting after z0.
// On error the iterates computed so far are returned.
func Path(z0, c complexnum.Complex, eq transforms.Equation, n int) ([]complexnum.Complex, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d steps", ErrInvalidLimit, n)
	}
	path := make([]complexnum.Complex, 0, n)

	z := z0
	for len(path) < n {
		next, err := eq(z, c)
		if err != nil {
			return path, fmt.Errorf("step %d from %v: %w", len(path), z, err)
		}
		z = next
		path = append(path, z)
	}

	return path, nil
}

// Smooth is the continuous escape count n + 1 - log(log|z|)/log(degree),
// clamped at 0. It is 0 for orbits that did not escape.
func Smooth(r Result, degree float64) float64 {
	if !r.Escaped {
		return 0
	}
	length := r.Z.Length()
	if length <= math.E || math.IsInf(length, 0) {
		// log(log|z|) is undefined or meaningless this close to (or this far from) the origin.
		return float64(r.Iterations)
	}
	// Orbits that overshoot the bailout by many orders of magnitude go negative.
	return math.Max(0, float64(r.Iterations)+1.0-math.Log(math.Log(length))/math.Log(degree))
}
