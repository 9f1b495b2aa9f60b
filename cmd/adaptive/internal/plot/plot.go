// Package plot rasterizes value curves for the preview contact sheets.
//
// Curves are sampled on [0, 1], drawn as a polyline into a supersampled
// canvas, and downscaled with golang.org/x/image/draw so the output is
// antialiased without a dedicated vector rasterizer.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Plot renders curves at a fixed output size. The zero value is unusable;
// call [New].
type Plot struct {
	// Width and Height are the output size in pixels.
	Width  int
	Height int
	// Supersample is the oversampling factor of the polyline raster.
	Supersample int

	Background color.NRGBA
	Axis       color.NRGBA
	Stroke     color.NRGBA
}

// New returns a Plot with the stock palette at the given output size.
func New(width, height int) *Plot {
	return &Plot{
		Width:       width,
		Height:      height,
		Supersample: 4,
		Background:  color.NRGBA{R: 0x16, G: 0x16, B: 0x1e, A: 0xff},
		Axis:        color.NRGBA{R: 0x44, G: 0x44, B: 0x55, A: 0xff},
		Stroke:      color.NRGBA{R: 0x7a, G: 0xa2, B: 0xf7, A: 0xff},
	}
}

// Render draws curve, sampled on [0, 1], and returns the image. The plotted
// value range always covers [0, 1]; curves that undershoot or overshoot
// widen it. Axis lines mark the values 0 and 1. Curves that produce a
// non-finite sample are rejected.
func (p *Plot) Render(curve func(t float64) float64) (*image.NRGBA, error) {
	ss := p.Supersample
	if ss < 1 {
		ss = 1
	}
	w, h := p.Width*ss, p.Height*ss

	samples := make([]float64, w)
	lo, hi := 0.0, 1.0
	for i := range samples {
		v := curve(float64(i) / float64(w-1))
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("curve is not finite at t=%.3f", float64(i)/float64(w-1))
		}
		samples[i] = v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	pad := (hi - lo) * 0.08
	lo, hi = lo-pad, hi+pad

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill(img, p.Background)

	// Axis lines at the curve's resting values.
	hline(img, toY(0, lo, hi, h), ss/2, p.Axis)
	hline(img, toY(1, lo, hi, h), ss/2, p.Axis)

	prev := toY(samples[0], lo, hi, h)
	for x := 0; x < w; x++ {
		y := toY(samples[x], lo, hi, h)
		vspan(img, x, min(prev, y), max(prev, y), ss, p.Stroke)
		prev = y
	}

	out := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	draw.ApproxBiLinear.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out, nil
}

// toY maps a value to a pixel row, with hi at the top.
func toY(v, lo, hi float64, h int) int {
	return int(math.Round((hi - v) / (hi - lo) * float64(h-1)))
}

func fill(img *image.NRGBA, c color.NRGBA) {
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func hline(img *image.NRGBA, y, half int, c color.NRGBA) {
	b := img.Bounds()
	for yy := y - half; yy <= y+half; yy++ {
		if yy < 0 || yy >= b.Dy() {
			continue
		}
		for x := 0; x < b.Dx(); x++ {
			img.SetNRGBA(x, yy, c)
		}
	}
}

// vspan fills the column x from y0 to y1, thickened by half in both
// directions so adjacent columns join into a continuous stroke.
func vspan(img *image.NRGBA, x, y0, y1, half int, c color.NRGBA) {
	b := img.Bounds()
	for y := y0 - half; y <= y1+half; y++ {
		if y < 0 || y >= b.Dy() {
			continue
		}
		img.SetNRGBA(x, y, c)
	}
}
