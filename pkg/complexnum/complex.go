package complexnum

import (
	"errors"
	"math"
	"strconv"
)

// Epsilon is the squared-modulus threshold below which division, reciprocal
// and logarithm refuse to proceed.
const Epsilon = 1e-15

var (
	ErrDivisionByZero  = errors.New("complex division by zero")
	ErrLogarithmOfZero = errors.New("logarithm of zero")
)

// A Complex is Re + Im*i.
//
// Complex is a value type: every operation returns a new Complex and leaves
// its receiver untouched, so copies never alias.
type Complex struct {
	Re, Im float64
}

func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

func FromComplex128(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}

func (z Complex) Complex128() complex128 {
	return complex(z.Re, z.Im)
}

// Copy returns an independent Complex equal to z.
func (z Complex) Copy() Complex {
	return Complex{Re: z.Re, Im: z.Im}
}

func (z Complex) Plus(b Complex) Complex {
	return Complex{Re: z.Re + b.Re, Im: z.Im + b.Im}
}

func (z Complex) Minus(b Complex) Complex {
	return Complex{Re: z.Re - b.Re, Im: z.Im - b.Im}
}

func (z Complex) Times(b Complex) Complex {
	return Complex{
		Re: z.Re*b.Re - z.Im*b.Im,
		Im: z.Re*b.Im + z.Im*b.Re,
	}
}

// DividedBy returns z/b, computed as z*conj(b)/|b|².
func (z Complex) DividedBy(b Complex) (Complex, error) {
	denom := b.LengthSQ()
	if denom < Epsilon {
		return Complex{}, ErrDivisionByZero
	}

	n := z.Times(b.Conjugate())
	return Complex{Re: n.Re / denom, Im: n.Im / denom}, nil
}

func (z Complex) Reciprocal() (Complex, error) {
	denom := z.LengthSQ()
	if denom < Epsilon {
		return Complex{}, ErrDivisionByZero
	}

	return Complex{Re: z.Re / denom, Im: -z.Im / denom}, nil
}

func (z Complex) Square() Complex {
	return Complex{
		Re: z.Re*z.Re - z.Im*z.Im,
		Im: 2 * z.Re * z.Im,
	}
}

func (z Complex) Cube() Complex {
	// (x + yi)³ = (x³ - 3xy²) + (3x²y - y³)i
	return Complex{
		Re: z.Re*z.Re*z.Re - 3*z.Re*z.Im*z.Im,
		Im: 3*z.Re*z.Re*z.Im - z.Im*z.Im*z.Im,
	}
}

func (z Complex) Pow4() Complex {
	re2 := z.Re * z.Re
	im2 := z.Im * z.Im
	return Complex{
		Re: re2*re2 - 6*re2*im2 + im2*im2,
		Im: 4*re2*z.Re*z.Im - 4*z.Re*im2*z.Im,
	}
}

func (z Complex) Conjugate() Complex {
	return Complex{Re: z.Re, Im: -z.Im}
}

func (z Complex) Exp() Complex {
	r := math.Exp(z.Re)
	return Complex{Re: r * math.Cos(z.Im), Im: r * math.Sin(z.Im)}
}

func (z Complex) Sin() Complex {
	return Complex{
		Re: math.Sin(z.Re) * math.Cosh(z.Im),
		Im: math.Cos(z.Re) * math.Sinh(z.Im),
	}
}

func (z Complex) Cos() Complex {
	return Complex{
		Re: math.Cos(z.Re) * math.Cosh(z.Im),
		Im: -math.Sin(z.Re) * math.Sinh(z.Im),
	}
}

// Ln returns the principal natural logarithm of z.
// The imaginary part lies in (-π, π].
func (z Complex) Ln() (Complex, error) {
	if math.Abs(z.Re) < Epsilon && math.Abs(z.Im) < Epsilon {
		return Complex{}, ErrLogarithmOfZero
	}

	return Complex{Re: math.Log(z.Length()), Im: z.Angle()}, nil
}

// LengthSQ is the squared modulus. Escape checks should prefer it to Length
// since it avoids the square root.
func (z Complex) LengthSQ() float64 {
	return z.Re*z.Re + z.Im*z.Im
}

func (z Complex) Length() float64 {
	return math.Sqrt(z.LengthSQ())
}

// Angle is the argument of z in radians. At the origin it is atan2(0, 0),
// which is 0 for positive zeros.
func (z Complex) Angle() float64 {
	return math.Atan2(z.Im, z.Re)
}

// ApproxEqual reports whether both components of z and b differ by at most tol.
func (z Complex) ApproxEqual(b Complex, tol float64) bool {
	return math.Abs(z.Re-b.Re) <= tol && math.Abs(z.Im-b.Im) <= tol
}

func (z Complex) String() string {
	re := z.Re
	if re == 0 {
		// Drop the sign of -0.
		re = 0
	}
	reStr := strconv.FormatFloat(re, 'g', -1, 64)
	im := strconv.FormatFloat(math.Abs(z.Im), 'g', -1, 64)
	if z.Im < 0 {
		return reStr + " - " + im + "i"
	}
	return reStr + " + " + im + "i"
}
