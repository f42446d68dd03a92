package main

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/olivierh59500/galaxy-go/internal/config"
)

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestRenderFrames(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 7
	cfg.StarCount = 50
	cfg.ArmParticles = 40

	anim, err := Render(cfg, Options{Width: 64, Height: 48, Scale: 1, Frames: 3, Delay: 2}, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 3 || len(anim.Delay) != 3 {
		t.Fatalf("got %d images, %d delays, want 3", len(anim.Image), len(anim.Delay))
	}
	b := anim.Image[0].Bounds()
	if b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("frame bounds = %v", b)
	}

	lit := false
	for _, p := range anim.Image[0].Pix {
		if p != 0 && anim.Image[0].Palette[p] != anim.Image[0].Palette[0] {
			lit = true
			break
		}
	}
	if !lit {
		t.Error("first frame is blank")
	}
}

func TestRenderScaled(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 3
	anim, err := Render(cfg, Options{Width: 40, Height: 30, Scale: 2, Frames: 1}, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if b := anim.Image[0].Bounds(); b.Dx() != 80 || b.Dy() != 60 {
		t.Errorf("scaled frame bounds = %v, want 80x60", b)
	}
}

func TestRenderRejectsBadOptions(t *testing.T) {
	cfg := config.Default()
	if _, err := Render(cfg, Options{Width: 0, Height: 10, Frames: 1}, quietLogger()); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("zero width: err = %v", err)
	}
	if _, err := Render(cfg, Options{Width: 10, Height: 10}, quietLogger()); !errors.Is(err, errNoFrames) {
		t.Errorf("zero frames: err = %v", err)
	}
}
