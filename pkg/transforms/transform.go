package transforms

import "github.com/willbeason/complex-fractal/pkg/complexnum"

// A Transform iterates a passed point.
type Transform interface {
	Next(complexnum.Complex) (complexnum.Complex, error)
}

// Alternating applies Even on even-numbered steps and Odd on odd-numbered
// steps, counting from zero.
//
// Alternating keeps a step counter, so each goroutine needs its own.
type Alternating struct {
	Even, Odd Transform

	step int
}

func (a *Alternating) Next(z complexnum.Complex) (complexnum.Complex, error) {
	t := a.Even
	if a.step%2 == 1 {
		t = a.Odd
	}
	a.step++

	return t.Next(z)
}

var _ Transform = &Alternating{}
