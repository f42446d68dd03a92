// Package host drives the simulation frame by frame on a Surface and
// handles the surface lifecycle.
package host

import (
	"sync/atomic"

	"github.com/olivierh59500/galaxy-go/internal/config"
	"github.com/olivierh59500/galaxy-go/internal/galaxy"
	"github.com/olivierh59500/galaxy-go/internal/motion"
	"github.com/olivierh59500/galaxy-go/internal/render"
)

// State of the animation loop.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Scheduler runs a callback before the next display repaint.
type Scheduler interface {
	RequestFrame(fn func())
}

// Driver advances the simulation once per scheduled frame and paints it.
// Once its surface is detached it stops for good.
type Driver struct {
	sim     *galaxy.Simulation
	reduced atomic.Bool
	cancel  func()
	state   State
	frames  int
}

// NewDriver wires sim to the reduced-motion preference. pref may be nil,
// in which case motion is never reduced.
func NewDriver(sim *galaxy.Simulation, pref motion.Source) *Driver {
	d := &Driver{sim: sim}
	if pref != nil {
		d.reduced.Store(pref.ReducedMotion())
		d.cancel = pref.Subscribe(func(r bool) { d.reduced.Store(r) })
	}
	return d
}

// Start boots the effect on s: sizes the populations, then schedules the
// first frame. With no surface or scheduler it does nothing and returns nil.
func Start(cfg config.Config, pref motion.Source, sched Scheduler, s render.Surface, scale float64) *Driver {
	if s == nil || sched == nil {
		return nil
	}
	d := NewDriver(galaxy.New(cfg), pref)
	d.Resize(s, scale)
	d.Run(sched, s)
	return d
}

func (d *Driver) State() State                   { return d.state }
func (d *Driver) Frames() int                    { return d.frames }
func (d *Driver) Simulation() *galaxy.Simulation { return d.sim }

// Resize applies the device scale to s and regenerates both populations
// for its logical size. Stale particles are dropped, never rescaled.
func (d *Driver) Resize(s render.Surface, scale float64) {
	if s == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	s.SetScale(scale)
	w, h := s.Size()
	d.sim.Resize(w, h)
}

// Frame runs one animation frame on s and reports whether another frame
// should be scheduled.
func (d *Driver) Frame(s render.Surface) bool {
	if d.state == Stopped {
		return false
	}
	if s == nil || !s.Attached() {
		d.stop()
		return false
	}

	// Latched once so the whole frame sees one motion profile
	reduced := d.reduced.Load()

	render.Paint(s, d.sim.Step(reduced))
	d.frames++
	return true
}

// Run schedules Frame on sched, rescheduling after each frame until the
// surface detaches.
func (d *Driver) Run(sched Scheduler, s render.Surface) {
	var tick func()
	tick = func() {
		if d.Frame(s) {
			sched.RequestFrame(tick)
		}
	}
	sched.RequestFrame(tick)
}

func (d *Driver) stop() {
	d.state = Stopped
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
