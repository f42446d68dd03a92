// Command galaxy-render renders the galaxy headlessly to an animated GIF.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"log"
	"os"

	"github.com/olivierh59500/galaxy-go/internal/config"
	"github.com/olivierh59500/galaxy-go/internal/host"
	"github.com/olivierh59500/galaxy-go/internal/motion"
	"github.com/olivierh59500/galaxy-go/internal/render/raster"
)

var (
	width      = flag.Int("w", 320, "logical width")
	height     = flag.Int("h", 240, "logical height")
	scale      = flag.Float64("scale", 1, "device pixel ratio")
	frames     = flag.Int("frames", 120, "number of frames to render")
	delay      = flag.Int("delay", 2, "delay between frames, in 100ths of a second")
	out        = flag.String("out", "galaxy.gif", "output file")
	configPath = flag.String("config", "", "JSON file overriding the default tunables")
	seed       = flag.Int64("seed", 1, "random seed, 0 for time-based")
	reduced    = flag.Bool("reduced", false, "render with reduced motion")
	nebula     = flag.Bool("nebula", false, "paint the perlin nebula haze")
	debug      = flag.Bool("debug", false, "log progress to stderr")
)

// Options controls a headless render.
type Options struct {
	Width, Height int
	Scale         float64
	Frames        int
	Delay         int
	Reduced       bool
}

var errNoFrames = errors.New("no frames rendered")

// Render runs the animation on an offscreen raster until opts.Frames
// frames are painted, then detaches the surface so the driver stops.
func Render(cfg config.Config, opts Options, logger *log.Logger) (*gif.GIF, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("render size %dx%d: %w", opts.Width, opts.Height, config.ErrInvalid)
	}
	if opts.Frames <= 0 {
		return nil, errNoFrames
	}

	anim := &gif.GIF{}
	surf := raster.New(float64(opts.Width), float64(opts.Height), opts.Scale)
	surf.SetAttached(func() bool { return len(anim.Image) < opts.Frames })

	var q host.QueueScheduler
	d := host.Start(cfg, motion.NewPreference(opts.Reduced), &q, surf, opts.Scale)
	for q.RunNext() {
		if d.State() == host.Stopped {
			break
		}
		anim.Image = append(anim.Image, quantize(surf.Image()))
		anim.Delay = append(anim.Delay, opts.Delay)
		if n := len(anim.Image); n%30 == 0 {
			logger.Printf("rendered %d/%d frames", n, opts.Frames)
		}
	}
	logger.Printf("driver %v after %d frames", d.State(), d.Frames())

	if len(anim.Image) == 0 {
		return nil, errNoFrames
	}
	return anim, nil
}

func quantize(src *image.RGBA) *image.Paletted {
	dst := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(dst, src.Bounds(), src, src.Bounds().Min)
	return dst
}

func main() {
	flag.Parse()

	logger := log.New(io.Discard, "galaxy-render: ", log.LstdFlags)
	if *debug {
		logger.SetOutput(os.Stderr)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	cfg.Seed = *seed
	if *nebula {
		cfg.Nebula = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	anim, err := Render(cfg, Options{
		Width:   *width,
		Height:  *height,
		Scale:   *scale,
		Frames:  *frames,
		Delay:   *delay,
		Reduced: *reduced,
	}, logger)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		log.Fatalf("encode %s: %v", *out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	logger.Printf("wrote %d frames to %s", len(anim.Image), *out)
}
