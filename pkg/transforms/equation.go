package transforms

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/willbeason/complex-fractal/pkg/complexnum"
)

var ErrUnknownEquation = errors.New("unknown equation")

// An Equation is one iteration step z -> g(z, c).
type Equation func(z, c complexnum.Complex) (complexnum.Complex, error)

// total lifts an equation that cannot fail.
func total(f func(z, c complexnum.Complex) complexnum.Complex) Equation {
	return func(z, c complexnum.Complex) (complexnum.Complex, error) {
		return f(z, c), nil
	}
}

var equations = map[string]Equation{
	"mandelbrot":  Mandelbrot,
	"cubic":       Cubic,
	"quartic":     Quartic,
	"exponential": Exponential,
	"sine":        Sine,
	"cosine":      Cosine,
	"logarithmic": Logarithmic,
	"reciprocal":  Reciprocal,
	"combined1":   Combined1,
	"combined2":   Combined2,
}

// Names returns the registered equation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(equations))
	for name := range equations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Lookup(name string) (Equation, error) {
	eq, ok := equations[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, want one of: %s",
			ErrUnknownEquation, name, strings.Join(Names(), ", "))
	}
	return eq, nil
}
