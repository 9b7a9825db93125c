package transforms

import "github.com/willbeason/complex-fractal/pkg/complexnum"

var (
	Exponential = total(complexnum.Complex.ExponentialFractal)
	Sine        = total(complexnum.Complex.SineFractal)
	Cosine      = total(complexnum.Complex.CosineFractal)
	Combined1   = total(complexnum.Complex.CombinedFractal1)
	Combined2   = total(complexnum.Complex.CombinedFractal2)

	// Logarithmic and Reciprocal fail at the origin.
	Logarithmic Equation = complexnum.Complex.LogarithmicFractal
	Reciprocal  Equation = complexnum.Complex.ReciprocalFractal
)
