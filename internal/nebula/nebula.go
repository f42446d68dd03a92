// Package nebula builds the faint coloured haze painted behind the galaxy.
package nebula

import (
	"image"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/lucasb-eyer/go-colorful"
)

// Noise parameters
const (
	CellSize  = 4    // logical pixels per texel
	frequency = 0.03 // noise units per texel
	alpha     = 2.0
	beta      = 2.0
	octaves   = 3
)

// Generate renders a haze texture for a width x height viewport at
// 1/CellSize resolution. The result is meant to be stretched over the
// whole surface with additive blending. A non-positive size yields nil.
func Generate(width, height float64, seed int64) *image.NRGBA {
	w := int(math.Ceil(width / CellSize))
	h := int(math.Ceil(height / CellSize))
	if w <= 0 || h <= 0 {
		return nil
	}

	density := perlin.NewPerlin(alpha, beta, octaves, seed)
	tint := perlin.NewPerlin(alpha, beta, 2, seed+1)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	maxDist := math.Hypot(cx, cy)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := float64(x)*frequency, float64(y)*frequency
			v := clamp01((density.Noise2D(fx, fy) + 1) / 2)
			hv := clamp01((tint.Noise2D(fx*0.5, fy*0.5) + 1) / 2)

			// Thicker toward the galactic core
			falloff := 1 - math.Hypot(float64(x)-cx, float64(y)-cy)/maxDist
			a := v * v * clamp01(falloff)

			r, g, b := colorful.Hsl(240+hv*70, 0.65, 0.25+0.25*v).Clamped().RGB255()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)})
		}
	}
	return img
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
