package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/pflag"

	"github.com/willbeason/complex-fractal/pkg/complexnum"
	"github.com/willbeason/complex-fractal/pkg/transforms"
)

var ErrInvalidOptions = errors.New("invalid render options")

// Mode selects which plane is rendered.
type Mode string

const (
	// Parameter renders the parameter plane: each pixel is both the
	// starting value and the constant.
	Parameter Mode = "parameter"
	// Julia renders the dynamical plane for a fixed constant: each pixel is
	// the starting value.
	Julia Mode = "julia"
)

type Options struct {
	Width, Height int

	CenterRe, CenterIm float64
	// ViewHeight is the height of the image on the imaginary axis.
	ViewHeight float64

	MaxIterations int
	Bailout       float64
	// SubPixels is how many jittered samples are taken per pixel.
	SubPixels int

	Equation string
	// Alternate, if set, is applied instead of Equation on odd-numbered steps.
	Alternate string
	CRe, CIm  float64

	Mode Mode
	Seed int64
}

func DefaultOptions(mode Mode) Options {
	return Options{
		Width:         2560,
		Height:        1440,
		ViewHeight:    2.25,
		MaxIterations: 1000,
		Bailout:       1e3,
		SubPixels:     10,
		Equation:      "mandelbrot",
		CRe:           0.7,
		CIm:           0.42,
		Mode:          mode,
		Seed:          1,
	}
}

func (o *Options) AddFlags(flags *pflag.FlagSet) {
	flags.IntVar(&o.Width, "width", o.Width, "image width in pixels")
	flags.IntVar(&o.Height, "height", o.Height, "image height in pixels")
	flags.Float64Var(&o.CenterRe, "center-re", o.CenterRe, "real part of the image center")
	flags.Float64Var(&o.CenterIm, "center-im", o.CenterIm, "imaginary part of the image center")
	flags.Float64Var(&o.ViewHeight, "view-height", o.ViewHeight, "height of the view on the imaginary axis")
	flags.IntVarP(&o.MaxIterations, "iterations", "n", o.MaxIterations, "maximum iterations per sample")
	flags.Float64Var(&o.Bailout, "bailout", o.Bailout, "escape radius")
	flags.IntVar(&o.SubPixels, "subpixels", o.SubPixels, "jittered samples per pixel")
	flags.StringVarP(&o.Equation, "equation", "e", o.Equation,
		fmt.Sprintf("iteration equation, one of %v", transforms.Names()))
	flags.StringVar(&o.Alternate, "alternate", o.Alternate, "equation to apply on odd-numbered steps")
	flags.Int64Var(&o.Seed, "seed", o.Seed, "seed for subpixel jitter")

	if o.Mode == Julia {
		flags.Float64Var(&o.CRe, "c-re", o.CRe, "real part of the constant c")
		flags.Float64Var(&o.CIm, "c-im", o.CIm, "imaginary part of the constant c")
	}
}

func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: image must be non-empty, got %dx%d", ErrInvalidOptions, o.Width, o.Height)
	case o.ViewHeight <= 0:
		return fmt.Errorf("%w: view height must be positive, got %v", ErrInvalidOptions, o.ViewHeight)
	case o.MaxIterations <= 0:
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidOptions, o.MaxIterations)
	case o.Bailout <= 0:
		return fmt.Errorf("%w: bailout must be positive, got %v", ErrInvalidOptions, o.Bailout)
	case o.SubPixels <= 0:
		return fmt.Errorf("%w: subpixels must be positive, got %d", ErrInvalidOptions, o.SubPixels)
	case o.Mode != Parameter && o.Mode != Julia:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidOptions, o.Mode)
	}

	if _, err := transforms.Lookup(o.Equation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if o.Alternate != "" {
		if _, err := transforms.Lookup(o.Alternate); err != nil {
			return fmt.Errorf("%w: alternate: %w", ErrInvalidOptions, err)
		}
	}

	return nil
}

func (o Options) C() complexnum.Complex {
	return complexnum.New(o.CRe, o.CIm)
}

func (o Options) Viewport() Viewport {
	return NewViewport(o.Width, o.Height, complexnum.New(o.CenterRe, o.CenterIm), o.ViewHeight)
}

// Degree is the per-step growth exponent used for smooth escape counts.
// Alternating equations grow by the product of their degrees every two
// steps, so the geometric mean applies per step.
func (o Options) Degree() float64 {
	d := transforms.Degree(o.Equation)
	if o.Alternate == "" {
		return d
	}
	return math.Sqrt(d * transforms.Degree(o.Alternate))
}

// Transformer resolves the configured equations and returns a constructor for
// the iteration applied to one sample with constant c. Every sample needs its
// own Transform since Alternating counts steps.
func (o Options) Transformer() (func(c complexnum.Complex) transforms.Transform, error) {
	eq, err := transforms.Lookup(o.Equation)
	if err != nil {
		return nil, err
	}
	if o.Alternate == "" {
		return func(c complexnum.Complex) transforms.Transform {
			return transforms.Julia{Equation: eq, C: c}
		}, nil
	}

	alt, err := transforms.Lookup(o.Alternate)
	if err != nil {
		return nil, err
	}
	return func(c complexnum.Complex) transforms.Transform {
		return &transforms.Alternating{
			Even: transforms.Julia{Equation: eq, C: c},
			Odd:  transforms.Julia{Equation: alt, C: c},
		}
	}, nil
}
