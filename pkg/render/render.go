// Package render evaluates escape-time fractals over a Viewport.
package render

import (
	"context"
	"math/rand"
	"runtime"
	"sync"

	"github.com/willbeason/complex-fractal/pkg/orbit"
)

type PixelBrightness struct {
	P          int
	Brightness float64
	Degenerate int
}

type Stats struct {
	// MaxBrightness is the brightest pixel.
	MaxBrightness float64
	// Degenerate counts samples whose orbit hit a division by zero or a
	// logarithm of zero. They contribute no brightness.
	Degenerate int
}

// Brightness returns the summed smooth escape count of every pixel, row-major.
func Brightness(ctx context.Context, opts Options) ([]float64, Stats, error) {
	if err := opts.Validate(); err != nil {
		return nil, Stats{}, err
	}

	newTransform, err := opts.Transformer()
	if err != nil {
		return nil, Stats{}, err
	}
	degree := opts.Degree()
	view := opts.Viewport()

	yChannel := make(chan int)

	go func() {
		defer close(yChannel)
		for y := 0; y < opts.Height; y++ {
			select {
			case yChannel <- y:
			case <-ctx.Done():
				return
			}
		}
	}()

	brightChannel := make(chan PixelBrightness, 10000)

	parallel := runtime.NumCPU()

	ywg := sync.WaitGroup{}
	ywg.Add(parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			defer ywg.Done()
			for y := range yChannel {
				// Seeding per row keeps images reproducible regardless of scheduling.
				rng := rand.New(rand.NewSource(opts.Seed + int64(y)))

				for x := 0; x < opts.Width; x++ {
					pb := PixelBrightness{P: x + y*opts.Width}

					for s := 0; s < opts.SubPixels; s++ {
						// Slightly jitter points.
						p := view.Point(x, y, rng.Float64(), rng.Float64())

						c := p
						if opts.Mode == Julia {
							c = opts.C()
						}

						r, err := orbit.EscapeTransform(p, newTransform(c), opts.MaxIterations, opts.Bailout)
						if err != nil {
							// Limits are validated, so only degenerate inputs fail here.
							pb.Degenerate++
							continue
						}

						pb.Brightness += orbit.Smooth(r, degree)
					}

					brightChannel <- pb
				}
			}
		}()
	}

	brightness := make([]float64, opts.Width*opts.Height)
	stats := Stats{}
	bwg := sync.WaitGroup{}
	bwg.Add(1)
	go func() {
		for b := range brightChannel {
			brightness[b.P] += b.Brightness
			stats.Degenerate += b.Degenerate
		}
		bwg.Done()
	}()

	ywg.Wait()
	close(brightChannel)
	bwg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	for _, b := range brightness {
		if b > stats.MaxBrightness {
			stats.MaxBrightness = b
		}
	}

	return brightness, stats, nil
}
