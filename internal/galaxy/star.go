package galaxy

import "math/rand"

// NearPlane is the depth at which a star has passed the viewer.
const NearPlane = 1.0

// Star is a point-like background star in a plane centred on the origin.
type Star struct {
	X, Y    float64 // Position, roughly ±(width, height)
	Z       float64 // Distance from the viewer, (0, depth]
	Twinkle float64 // Brightness/speed factor in [0.4, 1)
	Hue     float64 // Degrees in [200, 300)
}

// Field is a fixed-capacity set of stars. A star that crosses the near
// plane is replaced at its own index so iteration order stays stable.
type Field struct {
	stars  []Star
	width  float64
	height float64
	depth  float64
	rng    *rand.Rand
}

// NewField fills a field with count freshly created stars for a viewport
// of width x height.
func NewField(count int, width, height, depth float64, rng *rand.Rand) *Field {
	f := &Field{
		stars:  make([]Star, count),
		width:  width,
		height: height,
		depth:  depth,
		rng:    rng,
	}
	for i := range f.stars {
		f.stars[i] = f.CreateStar()
	}
	return f
}

// CreateStar samples a star uniformly over twice the viewport extent so
// that off-screen stars exist and drift into view.
func (f *Field) CreateStar() Star {
	return Star{
		X:       (f.rng.Float64() - 0.5) * f.width * 2,
		Y:       (f.rng.Float64() - 0.5) * f.height * 2,
		Z:       f.depth * (1 - f.rng.Float64()), // (0, depth]
		Twinkle: 0.4 + f.rng.Float64()*0.6,
		Hue:     200 + f.rng.Float64()*100,
	}
}

// Advance moves star i toward the viewer. Twinklier stars move faster.
// A star reaching the near plane is replaced by a new star on the far
// plane and Advance reports true.
func (f *Field) Advance(i int, speed float64) bool {
	s := &f.stars[i]
	s.Z -= speed * (0.5 + s.Twinkle*0.5)
	if s.Z > NearPlane {
		return false
	}
	f.stars[i] = f.CreateStar()
	f.stars[i].Z = f.depth
	return true
}

// Len reports the number of stars, which never changes after NewField.
func (f *Field) Len() int { return len(f.stars) }

// Stars exposes the backing slice. Callers must not keep it across a resize.
func (f *Field) Stars() []Star { return f.stars }

// Depth is the far plane recycled stars restart at.
func (f *Field) Depth() float64 { return f.depth }
