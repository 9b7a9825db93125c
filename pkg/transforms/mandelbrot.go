package transforms

import "github.com/willbeason/complex-fractal/pkg/complexnum"

// The polynomial family z^n + c.
var (
	Mandelbrot = total(complexnum.Complex.Mandelbrot)
	Cubic      = total(complexnum.Complex.CubicMandelbrot)
	Quartic    = total(complexnum.Complex.QuarticMandelbrot)
)

// Degree is the asymptotic growth exponent of a polynomial equation, used for
// smooth escape counts. Other equations report 2.
func Degree(name string) float64 {
	switch name {
	case "cubic":
		return 3
	case "quartic":
		return 4
	default:
		return 2
	}
}
