package render

import (
	"image"
	"image/color"
)

// OpKind names a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpCircle
	OpLine
	OpGradientLine
	OpRadial
	OpImage
)

// Op is one drawing call captured by a Recorder, with the blend mode in
// effect when it was issued.
type Op struct {
	Kind   OpKind
	Blend  Blend
	X, Y   float64
	X1, Y1 float64
	Radius float64 // circle/radial radius, or line width
	Color  color.Color
	To     color.Color
	Alpha  float64
}

// Recorder is a Surface that draws nothing and remembers every call. It
// backs dry runs and tests.
type Recorder struct {
	W, H     float64
	Scale    float64
	Detached bool
	Ops      []Op

	blend Blend
	stack []Blend
}

// NewRecorder returns an attached recorder of the given logical size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, Scale: 1}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }
func (r *Recorder) Attached() bool            { return !r.Detached }
func (r *Recorder) SetScale(s float64)        { r.Scale = s }
func (r *Recorder) SetBlend(b Blend)          { r.blend = b }

// Blend reports the current blend mode.
func (r *Recorder) Blend() Blend { return r.blend }

// Depth reports how many Saves are outstanding.
func (r *Recorder) Depth() int { return len(r.stack) }

func (r *Recorder) Save() { r.stack = append(r.stack, r.blend) }

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.blend = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Blend: r.blend})
}

func (r *Recorder) FillCircle(x, y, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Blend: r.blend, X: x, Y: y, Radius: radius, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Blend: r.blend, X: x0, Y: y0, X1: x1, Y1: y1, Radius: width, Color: c})
}

func (r *Recorder) StrokeGradientLine(x0, y0, x1, y1, width float64, from, to color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpGradientLine, Blend: r.blend, X: x0, Y: y0, X1: x1, Y1: y1, Radius: width, Color: from, To: to})
}

func (r *Recorder) FillRadialGradient(x, y, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRadial, Blend: r.blend, X: x, Y: y, Radius: radius, Color: c})
}

func (r *Recorder) DrawImage(img image.Image, alpha float64) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, Blend: r.blend, Alpha: alpha})
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Reset forgets recorded ops but keeps size, scale and paint state.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
