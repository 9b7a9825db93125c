package complexnum

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

const tolerance = 1e-10

var (
	a    = New(3.0, 4.0)
	b    = New(1.0, 2.0)
	zero = New(0.0, 0.0)
	one  = New(1.0, 0.0)
	i    = New(0.0, 1.0)
)

func assertComplex(t *testing.T, got, want Complex) {
	t.Helper()
	if !got.ApproxEqual(want, tolerance) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Complex
		want Complex
	}{
		{"plus", a.Plus(b), New(4, 6)},
		{"minus", a.Minus(b), New(2, 2)},
		{"times", a.Times(b), New(-5, 10)},
		{"square", b.Square(), New(-3, 4)},
		{"cube", b.Cube(), New(-11, -2)},
		{"pow4", b.Pow4(), New(-7, -24)},
		{"conjugate", a.Conjugate(), New(3, -4)},
		{"i squared", i.Square(), New(-1, 0)},
		{"exp", New(1, math.Pi).Exp(), New(-math.E, 0)},
		{"exp zero", zero.Exp(), one},
		{"sin", i.Sin(), New(0, math.Sinh(1))},
		{"cos", i.Cos(), New(math.Cosh(1), 0)},
		{"sin real", New(math.Pi/2, 0).Sin(), one},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertComplex(t, tc.got, tc.want)
		})
	}
}

func TestDividedBy(t *testing.T) {
	got, err := a.DividedBy(b)
	if err != nil {
		t.Fatal(err)
	}
	assertComplex(t, got, New(2.2, -0.4))
}

func TestReciprocal(t *testing.T) {
	got, err := a.Reciprocal()
	if err != nil {
		t.Fatal(err)
	}
	assertComplex(t, got, New(0.12, -0.16))
}

func TestLn(t *testing.T) {
	tests := []struct {
		name string
		z    Complex
		want Complex
	}{
		{"one", one, zero},
		{"i", i, New(0, math.Pi/2)},
		{"minus one", New(-1, 0), New(0, math.Pi)},
		{"e", New(math.E, 0), one},
		{"tiny real, unit imaginary", New(1e-16, 1), New(0, math.Pi/2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.z.Ln()
			if err != nil {
				t.Fatal(err)
			}
			assertComplex(t, got, tc.want)
		})
	}
}

func TestDegenerateInputs(t *testing.T) {
	tests := []struct {
		name    string
		op      func() (Complex, error)
		wantErr error
	}{
		{"divide by zero", func() (Complex, error) { return a.DividedBy(zero) }, ErrDivisionByZero},
		{"divide by near zero", func() (Complex, error) { return a.DividedBy(New(1e-8, 0)) }, ErrDivisionByZero},
		{"reciprocal of zero", zero.Reciprocal, ErrDivisionByZero},
		{"reciprocal of near zero", New(0, 1e-8).Reciprocal, ErrDivisionByZero},
		{"ln of zero", zero.Ln, ErrLogarithmOfZero},
		{"ln of near zero", New(1e-16, -1e-16).Ln, ErrLogarithmOfZero},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.op()
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("got error %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestJustAboveThreshold(t *testing.T) {
	// |b|² = 1e-14 is above the threshold.
	small := New(1e-7, 0)
	if _, err := one.DividedBy(small); err != nil {
		t.Errorf("DividedBy(%v): unexpected error %v", small, err)
	}
	if _, err := small.Reciprocal(); err != nil {
		t.Errorf("Reciprocal(%v): unexpected error %v", small, err)
	}
	if _, err := New(1e-14, 0).Ln(); err != nil {
		t.Errorf("Ln: unexpected error %v", err)
	}
}

func TestQueries(t *testing.T) {
	if got := a.LengthSQ(); got != 25.0 {
		t.Errorf("LengthSQ() = %v, want 25", got)
	}
	if got := a.Length(); got != 5.0 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := New(1, 1).Angle(); math.Abs(got-math.Pi/4) > tolerance {
		t.Errorf("Angle() = %v, want π/4", got)
	}
	if got := zero.Angle(); got != 0 {
		t.Errorf("Angle() at origin = %v, want 0", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		z    Complex
		want string
	}{
		{a, "3 + 4i"},
		{b, "1 + 2i"},
		{zero, "0 + 0i"},
		{New(3, -4), "3 - 4i"},
		{New(-1.5, -0.25), "-1.5 - 0.25i"},
		{New(-2, math.Copysign(0, -1)), "-2 + 0i"},
		{New(math.Copysign(0, -1), 1), "0 + 1i"},
		{New(math.Copysign(0, -1), -1), "0 - 1i"},
	}

	for _, tc := range tests {
		if got := tc.z.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestCopy(t *testing.T) {
	original := New(5.0, 6.0)
	c := original.Copy()
	if c != original {
		t.Fatalf("Copy() = %v, want %v", c, original)
	}

	original = original.Plus(one)
	if c.Re != 5.0 {
		t.Errorf("copy changed with original: got %v", c)
	}

	c.Im = 100
	if original.Im != 6.0 {
		t.Errorf("original changed with copy: got %v", original)
	}
}

func TestReceiverUnchanged(t *testing.T) {
	z := New(3, 4)
	_ = z.Square()
	_ = z.Times(b)
	_, _ = z.DividedBy(b)
	_ = z.Mandelbrot(b)
	_ = z.CombinedFractal2(b)
	if z != New(3, 4) {
		t.Errorf("receiver mutated to %v", z)
	}
}

func TestComplex128RoundTrip(t *testing.T) {
	z := FromComplex128(complex(1.5, -2.5))
	if z != New(1.5, -2.5) {
		t.Errorf("FromComplex128 = %v", z)
	}
	if z.Complex128() != complex(1.5, -2.5) {
		t.Errorf("Complex128() = %v", z.Complex128())
	}
}

func randomComplex(rng *rand.Rand) Complex {
	return New(rng.Float64()*20-10, rng.Float64()*20-10)
}

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 0; n < 1000; n++ {
		x := randomComplex(rng)
		y := randomComplex(rng)

		if got := x.Plus(y).Minus(y); !got.ApproxEqual(x, tolerance) {
			t.Fatalf("%v + %v - %v = %v", x, y, y, got)
		}

		if x.Square() != x.Times(x) {
			t.Fatalf("Square(%v) = %v, Times = %v", x, x.Square(), x.Times(x))
		}

		if x.Conjugate().Conjugate() != x {
			t.Fatalf("conj(conj(%v)) = %v", x, x.Conjugate().Conjugate())
		}

		if x.LengthSQ() != x.Re*x.Re+x.Im*x.Im {
			t.Fatalf("LengthSQ(%v) = %v", x, x.LengthSQ())
		}
		if x.Length() != math.Sqrt(x.LengthSQ()) {
			t.Fatalf("Length(%v) = %v", x, x.Length())
		}

		if y.LengthSQ() > 1e-2 {
			q, err := x.DividedBy(y)
			if err != nil {
				t.Fatal(err)
			}
			if got := q.Times(y); !got.ApproxEqual(x, tolerance) {
				t.Fatalf("%v / %v * %v = %v", x, y, y, got)
			}
		}

		if x.LengthSQ() > 1e-2 {
			r, err := x.Reciprocal()
			if err != nil {
				t.Fatal(err)
			}
			rr, err := r.Reciprocal()
			if err != nil {
				t.Fatal(err)
			}
			if !rr.ApproxEqual(x, tolerance) {
				t.Fatalf("1/(1/%v) = %v", x, rr)
			}
		}
	}
}
