package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Frame is a finished render: row-major display colors, top row first.
// Every pixel is already gamma corrected and clamped to [0, 0.999].
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color at column x of row y (y = 0 is the top row)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the color at column x of row y
func (f *Frame) Set(x, y int, c core.Vec3) {
	f.Pixels[y*f.Width+x] = c
}

// Quantize maps a display channel in [0,1) to 0..255 as floor(256c)
func Quantize(c float64) uint8 {
	q := math.Floor(256 * c)
	if q < 0 || math.IsNaN(q) {
		return 0
	}
	if q > 255 {
		return 255
	}
	return uint8(q)
}

// RGB8 returns the quantized channels of one pixel
func (f *Frame) RGB8(x, y int) (r, g, b uint8) {
	c := f.At(x, y)
	return Quantize(c.X), Quantize(c.Y), Quantize(c.Z)
}

// Image converts the frame to an opaque RGBA image
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.RGB8(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// AverageLuminance returns the mean relative luminance of the display colors
func (f *Frame) AverageLuminance() float64 {
	if len(f.Pixels) == 0 {
		return 0
	}
	var total float64
	for _, c := range f.Pixels {
		total += luminance(c)
	}
	return total / float64(len(f.Pixels))
}
