package galaxy

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLA is a straight-alpha colour in hue (degrees), saturation, lightness
// and alpha, all but hue in [0,1]. It satisfies color.Color.
type HSLA struct {
	H, S, L, A float64
}

// NRGBA converts to 8-bit straight alpha
func (c HSLA) NRGBA() color.NRGBA {
	r, g, b := colorful.Hsl(c.H, c.S, c.L).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: unit8(c.A)}
}

func (c HSLA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// WithAlpha returns c with its alpha replaced.
func (c HSLA) WithAlpha(a float64) HSLA {
	c.A = a
	return c
}

// Template is an RGB colour whose alpha channel is filled in at draw time.
type Template struct {
	R, G, B uint8
}

// WithAlpha substitutes the alpha channel, clamped to [0,1].
func (t Template) WithAlpha(a float64) color.NRGBA {
	return color.NRGBA{R: t.R, G: t.G, B: t.B, A: unit8(a)}
}

func unit8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
