package render

import (
	"math"

	"github.com/olivierh59500/galaxy-go/internal/galaxy"
)

// Paint clears s and draws f onto it: nebula, stars and their streaks,
// the core glow, the spiral arms, then the shooting star.
func Paint(s Surface, f *galaxy.Frame) {
	s.Clear()

	if f.Nebula != nil {
		s.Save()
		s.SetBlend(BlendLighter)
		s.DrawImage(f.Nebula, f.NebulaAlpha)
		s.Restore()
	}

	// Each streak is stroked right after its own star
	j := 0
	for i, d := range f.Stars {
		s.FillCircle(d.X, d.Y, math.Max(MinRadius, d.Radius), d.Color)
		for ; j < len(f.Streaks) && f.Streaks[j].Star == i; j++ {
			drawStreak(s, f.Streaks[j])
		}
	}
	for ; j < len(f.Streaks); j++ {
		drawStreak(s, f.Streaks[j])
	}

	drawGlow(s, f.Core)

	s.Save()
	s.SetBlend(BlendLighter)
	for _, d := range f.ArmDots {
		s.FillCircle(d.X, d.Y, math.Max(MinRadius, d.Radius), d.Color)
	}
	for _, g := range f.ArmGlows {
		drawGlow(s, g)
	}
	s.Restore()

	if sh := f.Shooting; sh != nil {
		s.Save()
		s.SetBlend(BlendLighter)
		s.StrokeGradientLine(sh.X0, sh.Y0, sh.X1, sh.Y1, sh.Width, sh.From, sh.To)
		s.Restore()
	}
}

func drawStreak(s Surface, st galaxy.Streak) {
	s.StrokeLine(st.X0, st.Y0, st.X1, st.Y1, st.Width, st.Color)
}

func drawGlow(s Surface, g galaxy.Glow) {
	DrawGlow(s, g.X, g.Y, g.Radius, g.Template, g.Peak)
}
