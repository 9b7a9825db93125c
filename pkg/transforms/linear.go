package transforms

import "github.com/willbeason/complex-fractal/pkg/complexnum"

type Linear struct {
	Multiply complexnum.Complex
	Add      complexnum.Complex
}

// Apply returns z*Multiply + Add.
func (l Linear) Apply(z complexnum.Complex) complexnum.Complex {
	return z.Times(l.Multiply).Plus(l.Add)
}

func (l Linear) Next(z complexnum.Complex) (complexnum.Complex, error) {
	return l.Apply(z), nil
}

var _ Transform = Linear{}
