// Package render turns simulation frames into drawing calls on a Surface.
package render

import (
	"image"
	"image/color"
)

// Blend selects how drawn pixels combine with what is already there.
type Blend int

const (
	BlendSourceOver Blend = iota // Normal alpha compositing
	BlendLighter                 // Additive, overlapping glows brighten
)

func (b Blend) String() string {
	switch b {
	case BlendSourceOver:
		return "source-over"
	case BlendLighter:
		return "lighter"
	default:
		return "unknown"
	}
}

// Surface is the drawing target. All coordinates are logical pixels; the
// uniform scale set by SetScale maps them onto the backing store.
type Surface interface {
	// Size reports the logical width and height.
	Size() (w, h float64)
	// Attached is false once the surface has been removed from the display.
	Attached() bool
	SetScale(s float64)

	Clear()
	// Save pushes the transient paint state (blend mode), Restore pops it.
	Save()
	Restore()
	SetBlend(b Blend)

	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	// StrokeGradientLine strokes a line whose colour runs linearly from
	// `from` at (x0,y0) to `to` at (x1,y1).
	StrokeGradientLine(x0, y0, x1, y1, width float64, from, to color.Color)
	// FillRadialGradient fills a disc of radius r whose colour is c at the
	// centre and fades linearly to transparent at the rim.
	FillRadialGradient(x, y, r float64, c color.Color)
	// DrawImage stretches img over the whole surface at the given opacity.
	DrawImage(img image.Image, alpha float64)
}
