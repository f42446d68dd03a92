// Package app runs the galaxy in an ebiten window.
package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/galaxy-go/internal/config"
	"github.com/olivierh59500/galaxy-go/internal/host"
	"github.com/olivierh59500/galaxy-go/internal/motion"
	"github.com/olivierh59500/galaxy-go/internal/render/ebitensurface"
)

// Game adapts the driver to ebiten's loop. Draw plays the role of the
// display repaint: it runs whatever frame callback the driver scheduled.
type Game struct {
	cfg     config.Config
	pref    *motion.Preference
	logger  *log.Logger
	surface *ebitensurface.Surface
	driver  *host.Driver
	next    func()

	// Logical window size and device scale as last seen by Layout
	width, height int
	scale         float64
	resized       bool
	closing       bool

	deviceScale func() float64
}

// New creates the game. Nothing is generated until the first Draw.
func New(cfg config.Config, pref *motion.Preference, logger *log.Logger) *Game {
	g := &Game{
		cfg:     cfg,
		pref:    pref,
		logger:  logger,
		surface: ebitensurface.New(),
		scale:   1,
		deviceScale: func() float64 {
			return ebiten.Monitor().DeviceScaleFactor()
		},
	}
	g.surface.SetAttached(func() bool { return !g.closing })
	return g
}

// RequestFrame implements host.Scheduler.
func (g *Game) RequestFrame(fn func()) { g.next = fn }

// Update is called each tick by ebiten
func (g *Game) Update() error {
	// M stands in for the OS reduced-motion setting changing
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.logger.Printf("reduced motion: %v", g.pref.Toggle())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		g.closing = true
	}
	if g.driver != nil && g.driver.State() == host.Stopped {
		g.logger.Printf("animation stopped after %d frames", g.driver.Frames())
		return ebiten.Termination
	}
	return nil
}

// Draw is called each frame by ebiten
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)

	if g.driver == nil {
		g.surface.SetSize(float64(g.width), float64(g.height))
		g.driver = host.Start(g.cfg, g.pref, g, g.surface, g.scale)
		g.resized = false
		g.logger.Printf("started at %dx%d, scale %.2f", g.width, g.height, g.scale)
	} else if g.resized {
		g.surface.SetSize(float64(g.width), float64(g.height))
		g.driver.Resize(g.surface, g.scale)
		g.resized = false
		g.logger.Printf("resized to %dx%d, scale %.2f", g.width, g.height, g.scale)
	}

	if fn := g.next; fn != nil {
		g.next = nil
		fn()
	}
}

// Layout tracks the window's logical size and returns the backing size
// in device pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := g.deviceScale()
	if scale <= 0 {
		scale = 1
	}
	if outsideWidth != g.width || outsideHeight != g.height || scale != g.scale {
		g.width, g.height, g.scale = outsideWidth, outsideHeight, scale
		g.resized = true
	}
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}
