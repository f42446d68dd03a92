package host

import (
	"math/rand"
	"testing"

	"github.com/olivierh59500/galaxy-go/internal/config"
	"github.com/olivierh59500/galaxy-go/internal/galaxy"
	"github.com/olivierh59500/galaxy-go/internal/motion"
	"github.com/olivierh59500/galaxy-go/internal/render"
	"github.com/olivierh59500/galaxy-go/internal/render/raster"
)

func newTestDriver(cfg config.Config, pref motion.Source) *Driver {
	return NewDriver(galaxy.NewWithRand(cfg, rand.New(rand.NewSource(5))), pref)
}

func TestRunReschedulesUntilDetached(t *testing.T) {
	rec := render.NewRecorder(400, 300)
	d := newTestDriver(config.Default(), nil)
	d.Resize(rec, 1)

	var q QueueScheduler
	d.Run(&q, rec)
	if q.Pending() != 1 {
		t.Fatalf("pending after Run = %d, want 1", q.Pending())
	}

	if n := q.Drain(5); n != 5 {
		t.Fatalf("drained %d repaints, want 5", n)
	}
	if d.Frames() != 5 || d.State() != Running {
		t.Fatalf("frames %d state %v, want 5 running", d.Frames(), d.State())
	}

	rec.Detached = true
	q.Drain(0)
	if d.State() != Stopped {
		t.Errorf("state = %v after detach, want stopped", d.State())
	}
	if q.Pending() != 0 {
		t.Errorf("%d callbacks still scheduled after stop", q.Pending())
	}
	if d.Frames() != 5 {
		t.Errorf("frames = %d, detached frame must not paint", d.Frames())
	}
}

func TestStoppedNeverRestarts(t *testing.T) {
	rec := render.NewRecorder(100, 100)
	d := newTestDriver(config.Default(), nil)
	d.Resize(rec, 1)

	rec.Detached = true
	if d.Frame(rec) {
		t.Fatal("Frame on detached surface asked to reschedule")
	}
	rec.Detached = false
	rec.Reset()
	if d.Frame(rec) {
		t.Error("stopped driver resumed after reattach")
	}
	if len(rec.Ops) != 0 {
		t.Errorf("stopped driver painted %d ops", len(rec.Ops))
	}
}

func TestFrameClearsAndPaints(t *testing.T) {
	rec := render.NewRecorder(400, 300)
	d := newTestDriver(config.Default(), nil)
	d.Resize(rec, 1)

	if !d.Frame(rec) {
		t.Fatal("Frame returned false on attached surface")
	}
	if rec.Ops[0].Kind != render.OpClear {
		t.Errorf("first op = %v, want clear", rec.Ops[0].Kind)
	}
	if rec.Count(render.OpRadial) == 0 {
		t.Error("no core glow painted")
	}
}

func TestResizeSetsScaleAndRegenerates(t *testing.T) {
	rec := render.NewRecorder(800, 600)
	d := newTestDriver(config.Default(), nil)
	d.Resize(rec, 2)
	if rec.Scale != 2 {
		t.Errorf("scale = %g, want 2", rec.Scale)
	}
	first := d.Simulation().Field()

	rec.W, rec.H = 640, 480
	d.Resize(rec, 0)
	if rec.Scale != 1 {
		t.Errorf("non-positive scale set %g, want fallback 1", rec.Scale)
	}
	if d.Simulation().Field() == first {
		t.Error("resize kept the old star field")
	}
	if w, h := d.Simulation().Size(); w != 640 || h != 480 {
		t.Errorf("simulation size %gx%g, want 640x480", w, h)
	}
}

func TestResizeGrowsRasterBacking(t *testing.T) {
	s := raster.New(100, 100, 1)
	d := newTestDriver(config.Default(), nil)
	d.Resize(s, 2)

	if b := s.Image().Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Errorf("logical 100x100 at scale 2: backing %v, want 200x200", b)
	}
	if w, h := d.Simulation().Size(); w != 100 || h != 100 {
		t.Errorf("simulation size %gx%g, want 100x100", w, h)
	}
	if !d.Frame(s) {
		t.Error("frame on the resized surface did not continue")
	}
}

func TestResizeNilSurface(t *testing.T) {
	d := newTestDriver(config.Default(), nil)
	d.Resize(nil, 1)
	if w, h := d.Simulation().Size(); w != 0 || h != 0 {
		t.Errorf("nil surface resized simulation to %gx%g", w, h)
	}
}

func TestStartWithoutSurfaceIsNoop(t *testing.T) {
	var q QueueScheduler
	if d := Start(config.Default(), nil, &q, nil, 1); d != nil {
		t.Error("Start with nil surface returned a driver")
	}
	if q.Pending() != 0 {
		t.Error("Start with nil surface scheduled a frame")
	}
	if d := Start(config.Default(), nil, nil, render.NewRecorder(1, 1), 1); d != nil {
		t.Error("Start with nil scheduler returned a driver")
	}
}

func TestStartSchedulesFirstFrame(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 9
	var q QueueScheduler
	rec := render.NewRecorder(320, 200)
	d := Start(cfg, nil, &q, rec, 1.5)
	if d == nil {
		t.Fatal("Start returned nil")
	}
	if rec.Scale != 1.5 {
		t.Errorf("scale = %g, want 1.5", rec.Scale)
	}
	if d.Simulation().Field().Len() != cfg.StarCount {
		t.Errorf("star count = %d, want %d", d.Simulation().Field().Len(), cfg.StarCount)
	}
	q.RunNext()
	if d.Frames() != 1 {
		t.Errorf("frames = %d, want 1", d.Frames())
	}
}

func TestPreferenceChangeAppliesNextFrame(t *testing.T) {
	cfg := config.Default()
	cfg.ShootingStarChance = 1
	pref := motion.NewPreference(false)
	d := newTestDriver(cfg, pref)
	rec := render.NewRecorder(800, 600)
	d.Resize(rec, 1)

	d.Frame(rec)
	if rec.Count(render.OpGradientLine) != 1 {
		t.Fatal("no shooting star with full motion at chance 1")
	}

	pref.Set(true)
	for i := 0; i < 50; i++ {
		rec.Reset()
		d.Frame(rec)
		if rec.Count(render.OpGradientLine) != 0 || rec.Count(render.OpLine) != 0 {
			t.Fatalf("frame %d: motion effects drawn under reduced motion", i)
		}
	}
}

func TestStopCancelsSubscription(t *testing.T) {
	pref := motion.NewPreference(false)
	d := newTestDriver(config.Default(), pref)
	rec := render.NewRecorder(10, 10)
	rec.Detached = true
	d.Frame(rec)

	pref.Set(true)
	if d.reduced.Load() {
		t.Error("stopped driver still follows the preference")
	}
}

func TestQueueSchedulerBatches(t *testing.T) {
	var q QueueScheduler
	calls := 0
	var again func()
	again = func() {
		calls++
		q.RequestFrame(again)
	}
	q.RequestFrame(again)

	q.RunNext()
	if calls != 1 || q.Pending() != 1 {
		t.Errorf("calls %d pending %d, want one per repaint", calls, q.Pending())
	}
	if n := q.Drain(3); n != 3 || calls != 4 {
		t.Errorf("Drain(3) = %d, calls %d", n, calls)
	}
	var empty QueueScheduler
	if empty.RunNext() {
		t.Error("RunNext on empty queue reported work")
	}
}
