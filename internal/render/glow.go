package render

import (
	"math"

	"github.com/olivierh59500/galaxy-go/internal/galaxy"
)

// MinRadius floors every radius before it reaches a surface.
const MinRadius = 0.01

// GlowExtent is how far past its nominal radius a glow fades out.
const GlowExtent = 2.5

// DrawGlow composites a radial falloff centred on (x, y), peaking at
// min(1, peak) alpha and reaching zero at GlowExtent*radius. The blend
// change is scoped to the call.
func DrawGlow(s Surface, x, y, radius float64, tpl galaxy.Template, peak float64) {
	s.Save()
	defer s.Restore()

	s.SetBlend(BlendLighter)
	r := math.Max(MinRadius, radius) * GlowExtent
	s.FillRadialGradient(x, y, r, tpl.WithAlpha(math.Min(1, peak)))
}
