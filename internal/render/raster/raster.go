// Package raster implements render.Surface on an in-memory *image.RGBA,
// for headless rendering and pixel tests.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/olivierh59500/galaxy-go/internal/render"
)

// Surface rasterizes shapes into coverage masks with x/image/vector and
// composites them itself so that additive blending is available.
type Surface struct {
	img      *image.RGBA // backing store, physical pixels
	w, h     float64     // logical size
	scale    float64
	blend    render.Blend
	stack    []render.Blend
	attached func() bool

	z    *vector.Rasterizer
	mask []uint8

	scaled    *image.RGBA // DrawImage cache
	scaledSrc image.Image
}

var _ render.Surface = (*Surface)(nil)

// New allocates a w x h logical surface backed by w*scale x h*scale pixels.
func New(w, h, scale float64) *Surface {
	s := &Surface{z: vector.NewRasterizer(1, 1)}
	s.Resize(w, h, scale)
	return s
}

// Resize reallocates the backing store and resets the transform, like
// changing a canvas element's size.
func (s *Surface) Resize(w, h, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	pw := int(math.Floor(w * scale))
	ph := int(math.Floor(h * scale))
	s.img = image.NewRGBA(image.Rect(0, 0, max(pw, 0), max(ph, 0)))
	s.w, s.h = w, h
	s.scale = scale
	s.scaled, s.scaledSrc = nil, nil
}

// SetAttached installs the display-attachment probe. By default a
// surface is always attached.
func (s *Surface) SetAttached(fn func() bool) { s.attached = fn }

// Image exposes the backing store.
func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Size() (float64, float64) { return s.w, s.h }

func (s *Surface) Attached() bool {
	return s.attached == nil || s.attached()
}

// SetScale changes the device pixel ratio. A new ratio reallocates the
// backing store at the current logical size.
func (s *Surface) SetScale(scale float64) {
	if scale > 0 && scale != s.scale {
		s.Resize(s.w, s.h, scale)
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
	clear(s.img.Pix)
}

func (s *Surface) FillCircle(x, y, r float64, c color.Color) {
	pc := premul(c)
	s.fill(circle(x*s.scale, y*s.scale, r*s.scale), func(float64, float64) [4]float64 { return pc })
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	poly := quad(x0*s.scale, y0*s.scale, x1*s.scale, y1*s.scale, width*s.scale)
	pc := premul(c)
	s.fill(poly, func(float64, float64) [4]float64 { return pc })
}

func (s *Surface) StrokeGradientLine(x0, y0, x1, y1, width float64, from, to color.Color) {
	ax, ay := x0*s.scale, y0*s.scale
	bx, by := x1*s.scale, y1*s.scale
	poly := quad(ax, ay, bx, by, width*s.scale)
	if poly == nil {
		return
	}
	dx, dy := bx-ax, by-ay
	l2 := dx*dx + dy*dy
	pf, pt := premul(from), premul(to)
	s.fill(poly, func(px, py float64) [4]float64 {
		t := clamp01(((px-ax)*dx + (py-ay)*dy) / l2)
		var out [4]float64
		for i := range out {
			out[i] = pf[i] + (pt[i]-pf[i])*t
		}
		return out
	})
}

func (s *Surface) FillRadialGradient(x, y, r float64, c color.Color) {
	cx, cy, pr := x*s.scale, y*s.scale, r*s.scale
	if pr <= 0 {
		return
	}
	pc := premul(c)
	s.fill(circle(cx, cy, pr), func(px, py float64) [4]float64 {
		k := 1 - clamp01(math.Hypot(px-cx, py-cy)/pr)
		return [4]float64{pc[0] * k, pc[1] * k, pc[2] * k, pc[3] * k}
	})
}

// DrawImage scales img bilinearly to the backing size once per distinct
// image and composites it with the current blend mode.
func (s *Surface) DrawImage(img image.Image, alpha float64) {
	b := s.img.Bounds()
	if img == nil || b.Empty() {
		return
	}
	if s.scaledSrc != img || s.scaled == nil {
		s.scaled = image.NewRGBA(b)
		xdraw.BiLinear.Scale(s.scaled, b, img, img.Bounds(), draw.Src, nil)
		s.scaledSrc = img
	}
	k := clamp01(alpha)
	for i := 0; i < len(s.scaled.Pix); i += 4 {
		src := [4]float64{
			float64(s.scaled.Pix[i]) / 255 * k,
			float64(s.scaled.Pix[i+1]) / 255 * k,
			float64(s.scaled.Pix[i+2]) / 255 * k,
			float64(s.scaled.Pix[i+3]) / 255 * k,
		}
		s.composite(i, src)
	}
}

// fill rasterizes the physical-pixel polygon and composites shade over
// every covered pixel.
func (s *Surface) fill(poly [][2]float64, shade func(px, py float64) [4]float64) {
	if len(poly) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(s.img.Bounds())
	if box.Empty() {
		return
	}

	bw, bh := box.Dx(), box.Dy()
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	s.z.Reset(bw, bh)
	s.z.DrawOp = draw.Src
	s.z.MoveTo(float32(poly[0][0]-ox), float32(poly[0][1]-oy))
	for _, p := range poly[1:] {
		s.z.LineTo(float32(p[0]-ox), float32(p[1]-oy))
	}
	s.z.ClosePath()

	if cap(s.mask) < bw*bh {
		s.mask = make([]uint8, bw*bh)
	}
	mask := &image.Alpha{Pix: s.mask[:bw*bh], Stride: bw, Rect: image.Rect(0, 0, bw, bh)}
	clear(mask.Pix)
	s.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			m := mask.Pix[y*bw+x]
			if m == 0 {
				continue
			}
			px, py := box.Min.X+x, box.Min.Y+y
			c := shade(float64(px)+0.5, float64(py)+0.5)
			cov := float64(m) / 255
			for i := range c {
				c[i] *= cov
			}
			s.composite(s.img.PixOffset(px, py), c)
		}
	}
}

// composite blends premultiplied src into the pixel at offset i.
func (s *Surface) composite(i int, src [4]float64) {
	d := s.img.Pix[i : i+4 : i+4]
	for c := 0; c < 4; c++ {
		dst := float64(d[c]) / 255
		var out float64
		if s.blend == render.BlendLighter {
			out = math.Min(1, src[c]+dst)
		} else {
			out = src[c] + dst*(1-src[3])
		}
		d[c] = uint8(clamp01(out)*255 + 0.5)
	}
}

func circle(cx, cy, r float64) [][2]float64 {
	if r <= 0 {
		return nil
	}
	n := int(2 * math.Pi * r / 2)
	n = min(max(n, 12), 96)
	pts := make([][2]float64, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{cx + math.Cos(a)*r, cy + math.Sin(a)*r}
	}
	return pts
}

// quad outlines a butt-capped line of the given width.
func quad(x0, y0, x1, y1, width float64) [][2]float64 {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return nil
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	return [][2]float64{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}
}

func premul(c color.Color) [4]float64 {
	r, g, b, a := c.RGBA()
	return [4]float64{float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff, float64(a) / 0xffff}
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
