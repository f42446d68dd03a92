package galaxy

import (
	"image"
	"math"
	"math/rand"
	"time"

	"github.com/olivierh59500/galaxy-go/internal/config"
	"github.com/olivierh59500/galaxy-go/internal/nebula"
)

var (
	coreTint = Template{R: 150, G: 120, B: 255}
	armTint  = Template{R: 120, G: 140, B: 255}
)

// Simulation owns simulation time and both particle populations.
type Simulation struct {
	cfg    config.Config
	rng    *rand.Rand
	t      float64
	width  float64
	height float64
	field  *Field
	arms   Arms
	nebula image.Image
	frame  Frame
}

// New creates a simulation with an empty viewport. Call Resize before
// the first Step.
func New(cfg config.Config) *Simulation {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewWithRand(cfg, rand.New(rand.NewSource(seed)))
}

// NewWithRand is New with an explicit random source.
func NewWithRand(cfg config.Config, rng *rand.Rand) *Simulation {
	s := &Simulation{cfg: cfg, rng: rng}
	s.field = NewField(0, 0, 0, cfg.Depth, rng)
	return s
}

// Resize discards both populations and regenerates them for a viewport
// of width x height logical pixels.
func (s *Simulation) Resize(width, height float64) {
	s.width, s.height = width, height
	s.field = NewField(s.cfg.StarCount, width, height, s.cfg.Depth, s.rng)
	s.arms = InitializeArms(s.rng, s.cfg.Arms, s.cfg.ArmParticles, s.cfg.ArmSpread, math.Min(width, height))

	s.nebula = nil
	if s.cfg.Nebula {
		if img := nebula.Generate(width, height, s.rng.Int63()); img != nil {
			s.nebula = img
		}
	}
}

// Config returns the tunables the simulation was built with.
func (s *Simulation) Config() config.Config { return s.cfg }

// Time is the animation clock, advanced by TimeStep per Step.
func (s *Simulation) Time() float64 { return s.t }

// Field returns the current star population. Resize replaces it.
func (s *Simulation) Field() *Field { return s.field }

// Arms returns the current spiral arm population. Resize replaces it.
func (s *Simulation) Arms() Arms { return s.arms }

// Size reports the current viewport in logical pixels.
func (s *Simulation) Size() (float64, float64) { return s.width, s.height }

// Step advances time by one fixed increment and returns the frame's
// drawing commands. The returned Frame is reused by the next Step.
func (s *Simulation) Step(reduced bool) *Frame {
	s.t += s.cfg.TimeStep
	p := ComputeParams(s.cfg, s.t, reduced)

	f := &s.frame
	f.reset()
	f.Width, f.Height = s.width, s.height
	f.Params = p
	f.Nebula = s.nebula
	f.NebulaAlpha = s.cfg.NebulaAlpha

	s.stepStars(f, p)

	coreSize := math.Min(s.width, s.height) * 0.08 * (0.95 + (p.Zoom-1)*1.2)
	f.Core = Glow{X: s.width / 2, Y: s.height / 2, Radius: coreSize, Template: coreTint, Peak: 0.6}

	s.placeArms(f, p)

	if !reduced && s.rng.Float64() < s.cfg.ShootingStarChance {
		f.Shooting = s.shootingStar()
	}
	return f
}

func (s *Simulation) stepStars(f *Frame, p Params) {
	cfg := s.cfg
	cx, cy := s.width/2, s.height/2
	margin := cfg.CullMargin

	for i := 0; i < s.field.Len(); i++ {
		if s.field.Advance(i, p.Speed) {
			continue
		}
		st := s.field.stars[i]

		// Perspective divide with the zoom pulse
		k := (cfg.FOV * p.Zoom) / st.Z
		px := (st.X+p.DriftX)*k + cx
		py := (st.Y+p.DriftY)*k + cy
		if px < -margin || px > s.width+margin || py < -margin || py > s.height+margin {
			continue
		}

		near := 1 - st.Z/cfg.Depth
		r := math.Max(0.2, 1.1*near)
		c := HSLA{H: st.Hue, S: 0.9, L: 0.7, A: 0.3 + near*0.7*st.Twinkle}
		f.Stars = append(f.Stars, Dot{X: px, Y: py, Radius: r, Color: c})

		if !p.Reduced && st.Z < cfg.Depth*cfg.StreakDepthFraction {
			f.Streaks = append(f.Streaks, Streak{
				Star:  len(f.Stars) - 1,
				X0:    px,
				Y0:    py,
				X1:    px - k*p.Speed*cfg.StreakLength,
				Y1:    py,
				Width: r * 0.5,
				Color: c.WithAlpha(c.A * 0.8),
			})
		}
	}
}

func (s *Simulation) placeArms(f *Frame, p Params) {
	cx, cy := s.width/2, s.height/2
	for _, pts := range s.arms {
		for _, pt := range pts {
			ang := pt.Angle + p.Rotation
			// Ripple along the arm, independent of rotation
			rad := pt.Radius * (0.98 + math.Sin(p.Time*0.2+pt.Radius*0.002)*0.02)
			x := cx + math.Cos(ang)*rad
			y := cy + math.Sin(ang)*rad

			f.ArmDots = append(f.ArmDots, Dot{
				X:      x,
				Y:      y,
				Radius: pt.Size,
				Color:  HSLA{H: pt.Hue, S: 0.9, L: 0.7, A: 0.06 + pt.Depth*0.25},
			})
			if !p.Reduced && pt.Size > s.cfg.ArmGlowThreshold {
				f.ArmGlows = append(f.ArmGlows, Glow{X: x, Y: y, Radius: pt.Size * 2, Template: armTint, Peak: 0.25})
			}
		}
	}
}

// shootingStar starts in the upper-middle band and heads down to the
// left or right.
func (s *Simulation) shootingStar() *ShootingStar {
	w, h := s.width, s.height
	sx := s.rng.Float64()*w*0.8 + w*0.1
	sy := h*0.1 + s.rng.Float64()*h*0.3
	length := 100 + s.rng.Float64()*120
	ang := math.Pi/4 + s.rng.Float64()*0.4
	if s.rng.Float64() < 0.5 {
		ang = math.Pi - ang
	}
	hue := 200 + s.rng.Float64()*80

	return &ShootingStar{
		X0:    sx,
		Y0:    sy,
		X1:    sx + math.Cos(ang)*length,
		Y1:    sy + math.Sin(ang)*length,
		Width: 2,
		From:  HSLA{H: hue, S: 1, L: 0.85, A: 0.9},
		To:    HSLA{H: hue, S: 1, L: 0.6, A: 0},
	}
}
