package transforms

import "github.com/willbeason/complex-fractal/pkg/complexnum"

// Julia iterates an Equation with a fixed constant.
type Julia struct {
	Equation Equation
	C        complexnum.Complex
}

func (j Julia) Next(z complexnum.Complex) (complexnum.Complex, error) {
	return j.Equation(z, j.C)
}

var _ Transform = Julia{}
