package galaxy

import (
	"math"
	"math/rand"
)

// ArmParticle is a fixed point on a spiral arm. Its rendered angle is
// Angle plus the frame's shared rotation; nothing here changes after
// generation.
type ArmParticle struct {
	Radius float64
	Angle  float64
	Depth  float64 // Opacity factor in [0.2, 1)
	Size   float64
	Hue    float64
}

// Arms holds one ordered particle list per arm.
type Arms [][]ArmParticle

const (
	radiusFalloff = 0.7   // r^0.7 crowds particles toward the bulge
	radiusScale   = 0.55  // fraction of the short viewport side
	armTwist      = 0.008 // radians of winding per unit radius
)

// InitializeArms generates armCount arms of perArm particles each, sized
// to the shorter viewport side. Must be called again whenever the
// viewport changes; radii are not rescaled.
func InitializeArms(rng *rand.Rand, armCount, perArm int, spread, viewportMin float64) Arms {
	arms := make(Arms, armCount)
	for a := range arms {
		base := 2 * math.Pi * float64(a) / float64(armCount)
		pts := make([]ArmParticle, perArm)
		for i := range pts {
			radius := math.Pow(rng.Float64(), radiusFalloff) * viewportMin * radiusScale
			pts[i] = ArmParticle{
				Radius: radius,
				Angle:  base + radius*armTwist + (rng.Float64()-0.5)*spread,
				Depth:  0.2 + rng.Float64()*0.8,
				Size:   0.8 + rng.Float64()*1.6,
				Hue:    260 + rng.Float64()*80,
			}
		}
		arms[a] = pts
	}
	return arms
}

// Len counts every particle across all arms.
func (a Arms) Len() int {
	n := 0
	for _, pts := range a {
		n += len(pts)
	}
	return n
}
