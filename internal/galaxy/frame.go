package galaxy

import "image"

// Dot is a filled circle.
type Dot struct {
	X, Y   float64
	Radius float64
	Color  HSLA
}

// Streak is a straight stroke of uniform colour trailing the star at
// index Star in Frame.Stars.
type Streak struct {
	Star   int
	X0, Y0 float64
	X1, Y1 float64
	Width  float64
	Color  HSLA
}

// Glow is a radial falloff blob, composited additively.
type Glow struct {
	X, Y     float64
	Radius   float64
	Template Template
	Peak     float64
}

// ShootingStar is a one-frame gradient line.
type ShootingStar struct {
	X0, Y0 float64
	X1, Y1 float64
	Width  float64
	From   HSLA
	To     HSLA
}

// Frame is the list of drawing commands produced by one simulation step,
// in logical pixel units.
type Frame struct {
	Width, Height float64
	Params        Params

	Nebula      image.Image // nil when disabled
	NebulaAlpha float64
	Stars       []Dot
	Streaks     []Streak
	Core        Glow
	ArmDots     []Dot // drawn additively
	ArmGlows    []Glow
	Shooting    *ShootingStar
}

func (f *Frame) reset() {
	f.Stars = f.Stars[:0]
	f.Streaks = f.Streaks[:0]
	f.ArmDots = f.ArmDots[:0]
	f.ArmGlows = f.ArmGlows[:0]
	f.Shooting = nil
	f.Nebula = nil
}
