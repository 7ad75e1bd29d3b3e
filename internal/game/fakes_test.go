package game

import (
	"image/color"
	"testing"
	"time"

	"github.com/mmiranda2/pong/internal/gfx"
)

type fakeSprite struct {
	name string
	w, h int
}

func (s *fakeSprite) Size() (int, int) { return s.w, s.h }

type fakeText struct{}

func (fakeText) Render(s string, _ color.Color) gfx.Sprite {
	return &fakeSprite{name: s, w: 7 * len(s), h: 13}
}

type drawCall struct {
	name string
	x, y float64
}

type fakeCanvas struct {
	draws []drawCall
}

func (c *fakeCanvas) Size() (int, int) { return 640, 480 }
func (c *fakeCanvas) DrawSprite(s gfx.Sprite, x, y float64) {
	c.draws = append(c.draws, drawCall{name: s.(*fakeSprite).name, x: x, y: y})
}

type fakeInput struct {
	held   map[Key]bool
	events []Event
}

func (in *fakeInput) Held(k Key) bool { return in.held[k] }
func (in *fakeInput) Events() []Event {
	ev := in.events
	in.events = nil
	return ev
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type testRig struct {
	g      *Game
	clock  *fakeClock
	input  *fakeInput
	fpsHit int
}

func newRig(t *testing.T, mutate func(*Config)) *testRig {
	t.Helper()
	t.Setenv("PONG_DISABLE_AUDIO", "1")
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.GetReady = false
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := New(cfg, 640, 480, Assets{
		Ball:   &fakeSprite{name: "ball", w: 10, h: 10},
		Paddle: &fakeSprite{name: "paddle", w: 20, h: 50},
		Text:   fakeText{},
		Audio:  NewAudioManager(""),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r := &testRig{
		g:     g,
		clock: &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		input: &fakeInput{held: map[Key]bool{}},
	}
	g.now = r.clock.Now
	g.input = r.input
	g.fps = func() float64 {
		r.fpsHit++
		return 60
	}
	if cfg.GetReady {
		g.pause(r.clock.Now())
	}
	return r
}

// tick advances the clock by one 60 Hz frame and runs Update.
func (r *testRig) tick(t *testing.T) error {
	t.Helper()
	r.clock.Advance(time.Second / 60)
	return r.g.Update()
}
