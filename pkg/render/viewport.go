package render

import (
	"github.com/willbeason/complex-fractal/pkg/complexnum"
	"github.com/willbeason/complex-fractal/pkg/transforms"
)

// A Viewport maps image pixels onto the complex plane. y grows downward.
type Viewport struct {
	Width, Height int

	Left, Top float64
	// Px is the real size of each pixel.
	Px float64
}

func NewViewport(width, height int, center complexnum.Complex, viewHeight float64) Viewport {
	bottom := center.Im - viewHeight*0.5
	return Viewport{
		Width:  width,
		Height: height,
		Left:   center.Re - viewHeight*0.5*float64(width)/float64(height),
		Top:    bottom + viewHeight,
		Px:     viewHeight / float64(height),
	}
}

// Point is the complex value at pixel (x, y), offset within the pixel by
// (dx, dy) in [0, 1).
func (v Viewport) Point(x, y int, dx, dy float64) complexnum.Complex {
	// Conjugating flips y so it grows downward from Top.
	pixel := complexnum.New(float64(x)+dx, float64(y)+dy).Conjugate()
	return v.Transform().Apply(pixel)
}

// Transform is the affine map from conjugated pixel coordinates to the plane.
func (v Viewport) Transform() transforms.Linear {
	return transforms.Linear{
		Multiply: complexnum.New(v.Px, 0),
		Add:      complexnum.New(v.Left, v.Top),
	}
}
