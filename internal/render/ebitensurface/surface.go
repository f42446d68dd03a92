// Package ebitensurface implements render.Surface on an *ebiten.Image.
package ebitensurface

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/galaxy-go/internal/render"
)

const glowTexSize = 128

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface draws vector paths with per-vertex colours so every shape can
// use additive blending.
type Surface struct {
	dst      *ebiten.Image
	w, h     float64
	scale    float64
	blend    render.Blend
	stack    []render.Blend
	attached func() bool

	vs []ebiten.Vertex
	is []uint16

	glow   *ebiten.Image
	imgSrc image.Image
	imgTex *ebiten.Image
}

var _ render.Surface = (*Surface)(nil)

// New returns an unbound surface with its glow texture uploaded.
func New() *Surface {
	return &Surface{
		scale: 1,
		glow:  ebiten.NewImageFromImage(RadialTexture(glowTexSize)),
	}
}

// Bind points the surface at the image being drawn this frame.
func (s *Surface) Bind(dst *ebiten.Image) { s.dst = dst }

// SetSize records the logical size of the surface.
func (s *Surface) SetSize(w, h float64) { s.w, s.h = w, h }

// SetAttached installs the display-attachment probe.
func (s *Surface) SetAttached(fn func() bool) { s.attached = fn }

func (s *Surface) Size() (float64, float64) { return s.w, s.h }

func (s *Surface) Attached() bool {
	return s.attached == nil || s.attached()
}

func (s *Surface) SetScale(scale float64) {
	if scale > 0 {
		s.scale = scale
	}
}

func (s *Surface) SetBlend(b render.Blend) { s.blend = b }

func (s *Surface) Save() { s.stack = append(s.stack, s.blend) }

func (s *Surface) Restore() {
	if n := len(s.stack); n > 0 {
		s.blend = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

func (s *Surface) Clear() {
	if s.dst != nil {
		s.dst.Clear()
	}
}

func (s *Surface) FillCircle(x, y, r float64, c color.Color) {
	var p vector.Path
	p.Arc(s.px(x), s.px(y), s.px(r), 0, 2*math.Pi, vector.Clockwise)
	s.vs, s.is = p.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.paint(uniform(c))
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if !s.strokeVertices(x0, y0, x1, y1, width) {
		return
	}
	s.paint(uniform(c))
}

func (s *Surface) StrokeGradientLine(x0, y0, x1, y1, width float64, from, to color.Color) {
	if !s.strokeVertices(x0, y0, x1, y1, width) {
		return
	}
	s.paint(linearGradient(s.px(x0), s.px(y0), s.px(x1), s.px(y1), from, to))
}

// FillRadialGradient stretches a pre-rendered linear falloff texture
// over the disc, tinted by c.
func (s *Surface) FillRadialGradient(x, y, r float64, c color.Color) {
	if s.dst == nil || r <= 0 {
		return
	}
	half := float64(glowTexSize) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Scale(r/half, r/half)
	op.GeoM.Translate(x, y)
	op.GeoM.Scale(s.scale, s.scale)
	op.ColorScale.ScaleWithColor(c)
	op.Blend = s.ebitenBlend()
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(s.glow, op)
}

// DrawImage uploads img once and stretches it over the whole target.
func (s *Surface) DrawImage(img image.Image, alpha float64) {
	if s.dst == nil || img == nil {
		return
	}
	if img != s.imgSrc {
		if s.imgTex != nil {
			s.imgTex.Deallocate()
		}
		s.imgTex = ebiten.NewImageFromImage(img)
		s.imgSrc = img
	}
	sb, db := s.imgTex.Bounds(), s.dst.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Blend = s.ebitenBlend()
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(s.imgTex, op)
}

func (s *Surface) strokeVertices(x0, y0, x1, y1, width float64) bool {
	if s.dst == nil || width <= 0 || (x0 == x1 && y0 == y1) {
		return false
	}
	var p vector.Path
	p.MoveTo(s.px(x0), s.px(y0))
	p.LineTo(s.px(x1), s.px(y1))
	s.vs, s.is = p.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width: s.px(width),
	})
	return true
}

// shader returns the straight-alpha colour of a vertex at (vx, vy).
type shader func(vx, vy float32) [4]float32

// paint colours the pending vertices and draws them with the current blend.
func (s *Surface) paint(shade shader) {
	if s.dst == nil || len(s.is) == 0 {
		return
	}
	shadeVertices(s.vs, shade)
	s.dst.DrawTriangles(s.vs, s.is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		Blend:     s.ebitenBlend(),
		AntiAlias: true,
	})
}

func (s *Surface) ebitenBlend() ebiten.Blend {
	if s.blend == render.BlendLighter {
		return ebiten.BlendLighter
	}
	return ebiten.BlendSourceOver
}

func (s *Surface) px(v float64) float32 { return float32(v * s.scale) }

// shadeVertices points every vertex at the white texel and colours it.
func shadeVertices(vs []ebiten.Vertex, shade shader) {
	for i := range vs {
		v := &vs[i]
		v.SrcX, v.SrcY = 1, 1
		c := shade(v.DstX, v.DstY)
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = c[0], c[1], c[2], c[3]
	}
}

func uniform(c color.Color) shader {
	sc := straight(c)
	return func(float32, float32) [4]float32 { return sc }
}

// linearGradient blends from at (ax, ay) to to at (bx, by), projecting
// each vertex onto the segment and clamping past the ends.
func linearGradient(ax, ay, bx, by float32, from, to color.Color) shader {
	dx, dy := bx-ax, by-ay
	l2 := dx*dx + dy*dy
	cf, ct := straight(from), straight(to)
	return func(vx, vy float32) [4]float32 {
		if l2 == 0 {
			return cf
		}
		t := ((vx-ax)*dx + (vy-ay)*dy) / l2
		t = min(max(t, 0), 1)
		var out [4]float32
		for i := range out {
			out[i] = cf[i] + (ct[i]-cf[i])*t
		}
		return out
	}
}

// straight converts to straight-alpha float components, which is what
// DrawTriangles expects by default.
func straight(c color.Color) [4]float32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [4]float32{float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255}
}

// RadialTexture renders a size x size white disc whose alpha falls
// linearly from 1 at the centre to 0 at the edge, premultiplied.
func RadialTexture(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			a := uint8(math.Max(0, 1-d)*255 + 0.5)
			img.SetRGBA(x, y, color.RGBA{a, a, a, a})
		}
	}
	return img
}
