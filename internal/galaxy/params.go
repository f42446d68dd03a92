package galaxy

import (
	"math"

	"github.com/olivierh59500/galaxy-go/internal/config"
)

// Params are the time-derived scalars shared by every star and particle
// within one frame.
type Params struct {
	Time     float64
	Reduced  bool
	Zoom     float64 // Breathing pulse multiplying the field of view
	Speed    float64 // Forward motion per frame
	DriftX   float64 // Slow camera wander
	DriftY   float64
	Rotation float64 // Shared spiral arm rotation
}

// ComputeParams derives the frame scalars for simulation time t. The
// reduced flag selects the calmer motion profile for the whole frame.
func ComputeParams(cfg config.Config, t float64, reduced bool) Params {
	m := cfg.MotionFor(reduced)

	zoom := 1 + math.Sin(t*m.ZoomSpeed)*m.ZoomAmplitude

	// Camera accelerates while zooming in, plus a slower secondary wobble
	speed := m.BaseSpeed *
		cfg.SpeedMultiplier *
		(1 + (zoom-1)*1.2) *
		(1 + math.Sin(t*0.15)*0.05)

	return Params{
		Time:     t,
		Reduced:  reduced,
		Zoom:     zoom,
		Speed:    speed,
		DriftX:   math.Sin(t*0.06) * 12,
		DriftY:   math.Cos(t*0.05) * 10,
		Rotation: t * m.RotationRate * cfg.SpeedMultiplier * (0.98 + (zoom-1)*2.0),
	}
}
