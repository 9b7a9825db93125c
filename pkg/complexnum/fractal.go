package complexnum

// Each method below is one iteration step z -> g(z, c), with the receiver
// playing the role of z.

// FractalEquation is z³ + c.
func (z Complex) FractalEquation(c Complex) Complex {
	return z.CubicMandelbrot(c)
}

func (z Complex) Mandelbrot(c Complex) Complex {
	return z.Square().Plus(c)
}

func (z Complex) CubicMandelbrot(c Complex) Complex {
	return z.Cube().Plus(c)
}

func (z Complex) QuarticMandelbrot(c Complex) Complex {
	return z.Pow4().Plus(c)
}

func (z Complex) ExponentialFractal(c Complex) Complex {
	return z.Exp().Plus(c)
}

func (z Complex) SineFractal(c Complex) Complex {
	return z.Sin().Plus(c)
}

func (z Complex) CosineFractal(c Complex) Complex {
	return z.Cos().Plus(c)
}

// LogarithmicFractal is ln(z) + c. It fails with ErrLogarithmOfZero at the origin.
func (z Complex) LogarithmicFractal(c Complex) (Complex, error) {
	l, err := z.Ln()
	if err != nil {
		return Complex{}, err
	}
	return l.Plus(c), nil
}

// ReciprocalFractal is 1/z + c. It fails with ErrDivisionByZero at the origin.
func (z Complex) ReciprocalFractal(c Complex) (Complex, error) {
	r, err := z.Reciprocal()
	if err != nil {
		return Complex{}, err
	}
	return r.Plus(c), nil
}

// CombinedFractal1 is z²·c + z, where the added term is the original z.
func (z Complex) CombinedFractal1(c Complex) Complex {
	return z.Square().Times(c).Plus(z)
}

// CombinedFractal2 is sin(z²) + cos(z)·c.
func (z Complex) CombinedFractal2(c Complex) Complex {
	squared := z.Copy()
	cosined := z.Copy()
	return squared.Square().Sin().Plus(cosined.Cos().Times(c))
}
