package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"
)

var lightBlue = color.RGBA64{
	R: 0x7fff,
	G: 0xafff,
	B: 0xffff,
	A: 0x0,
}

// Image tints brightness, normalized to its maximum, light blue.
func Image(brightness []float64, width, height int) *image.RGBA64 {
	maxBrightness := 0.0
	for _, b := range brightness {
		if b > maxBrightness {
			maxBrightness = b
		}
	}
	if maxBrightness <= 0.0 {
		maxBrightness = 1.0
	}
	invMax := 1.0 / maxBrightness

	img := image.NewRGBA64(image.Rect(0, 0, width, height))
	for i, br := range brightness {
		x := i % width
		y := i / width
		br = math.Min(math.Max(br*invMax, 0), 1)

		img.Set(x, y, color.RGBA64{
			R: uint16(float64(lightBlue.R) * br),
			G: uint16(float64(lightBlue.G) * br),
			B: uint16(float64(lightBlue.B) * br),
			A: 0xffff,
		})
	}

	return img
}

// WritePNG writes img to dir/<timestamp>.png, creating dir if needed, and
// returns the file's path.
func WritePNG(dir string, img image.Image) (string, error) {
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.png", time.Now().Format("20060102150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	err = png.Encode(f, img)
	if err != nil {
		_ = f.Close()
		return "", err
	}

	return path, f.Close()
}
