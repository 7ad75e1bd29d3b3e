package game

import (
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"github.com/mmiranda2/pong/internal/court"
	"github.com/mmiranda2/pong/internal/entities"
	"github.com/mmiranda2/pong/internal/gfx"

	"github.com/hajimehoshi/ebiten/v2"
)

// RoundState is the phase of the frame loop.
type RoundState int

const (
	Playing RoundState = iota
	ResetPause
)

func (s RoundState) String() string {
	if s == ResetPause {
		return "reset-pause"
	}
	return "playing"
}

const fpsSampleEvery = time.Second

// Assets are the loaded sprites, the text renderer and the optional sound cues.
type Assets struct {
	Ball   gfx.Sprite
	Paddle gfx.Sprite
	Text   gfx.TextRenderer
	Audio  *AudioManager
}

type Game struct {
	cfg    Config
	width  int
	height int
	world  *World
	court  *court.Court
	ball   gfx.Sprite
	paddle gfx.Sprite
	audio  *AudioManager

	input Input
	now   func() time.Time
	fps   func() float64

	round        RoundState
	pauseStart   time.Time
	fpsSampledAt time.Time
	tickCounter  int
	quit         bool
}

func New(cfg Config, width, height int, a Assets) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	w, err := NewWorld(width, height, cfg, a, rng)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:    cfg,
		width:  width,
		height: height,
		world:  w,
		court:  court.NewDefault(width, height),
		ball:   a.Ball,
		paddle: a.Paddle,
		audio:  a.Audio,
		input:  &keyboard{},
		now:    time.Now,
		fps:    ebiten.ActualFPS,
	}
	if cfg.GetReady {
		g.pause(g.now())
	}
	return g, nil
}

func (g *Game) World() *World              { return g.world }
func (g *Game) Round() RoundState          { return g.round }
func (g *Game) ScreenWidth() int           { return g.width }
func (g *Game) ScreenHeight() int          { return g.height }
func (g *Game) Layout(_, _ int) (int, int) { return g.width, g.height }

// Update runs one tick: input first, then either the ball or the pause timer.
func (g *Game) Update() error {
	g.tickCounter++
	now := g.now()

	g.handleInput()
	if g.quit {
		log.Println("Goodbye.")
		return ebiten.Termination
	}

	switch g.round {
	case ResetPause:
		if now.Sub(g.pauseStart) >= g.cfg.PausePeriod {
			g.resume()
		}
	case Playing:
		g.stepBall(now)
	}

	if g.fpsSampledAt.IsZero() || now.Sub(g.fpsSampledAt) >= fpsSampleEvery {
		g.world.Scoreboard.SetFPS(g.fps())
		g.fpsSampledAt = now
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.court.Draw(screen)
	g.drawWorld(gfx.NewScreen(screen))
}

func (g *Game) drawWorld(c gfx.Canvas) {
	w := g.world
	bx, by := w.Ball.Pos()
	c.DrawSprite(g.ball, bx, by)
	for _, p := range []*entities.Paddle{w.Right, w.Left} {
		x, y := p.Pos()
		c.DrawSprite(g.paddle, x, y)
	}
	w.Scoreboard.Draw(c)
}

func (g *Game) handleInput() {
	w := g.world
	held := []struct {
		key    Key
		paddle *entities.Paddle
		dir    entities.Direction
	}{
		{KeyDown, w.Right, entities.DirDown},
		{KeyUp, w.Right, entities.DirUp},
		{KeyS, w.Left, entities.DirDown},
		{KeyW, w.Left, entities.DirUp},
	}
	for _, h := range held {
		if g.input.Held(h.key) {
			h.paddle.Go(h.dir)
		}
	}
	if g.input.Held(KeyQuit) {
		g.quit = true
	}

	for _, ev := range g.input.Events() {
		switch ev.Kind {
		case EventQuit:
			g.quit = true
		case EventKeyDown:
			switch ev.Key {
			case KeyDown:
				w.Right.Down()
			case KeyUp:
				w.Right.Up()
			case KeyS:
				w.Left.Down()
			case KeyW:
				w.Left.Up()
			case KeyQuit:
				g.quit = true
			}
		}
	}
}

func (g *Game) stepBall(now time.Time) {
	w := g.world
	dx, dy := w.Ball.DX, w.Ball.DY
	goal := w.Ball.Next(w.Left.Window(), w.Right.Window())
	if goal != entities.GoalNone {
		w.Scoreboard.Score(goal)
		Tracef("goal %v at tick %d, score %d:%d", goal, g.tickCounter, w.Scoreboard.Left(), w.Scoreboard.Right())
		g.audio.PlayGoal()
		g.pause(now)
		return
	}
	switch {
	case sign(dx) != sign(w.Ball.DX):
		Tracef("paddle hit at tick %d, velocity (%.3f, %.3f)", g.tickCounter, w.Ball.DX, w.Ball.DY)
		g.audio.PlayHit()
	case sign(dy) != sign(w.Ball.DY):
		g.audio.PlayWall()
	}
}

// pause locks the ball and shows the banner until PausePeriod has passed.
func (g *Game) pause(now time.Time) {
	g.round = ResetPause
	g.pauseStart = now
	g.world.Ball.Lock()
	g.world.Scoreboard.ShowBanner()
}

func (g *Game) resume() {
	g.round = Playing
	g.world.Ball.Unlock()
	g.world.Scoreboard.HideBanner()
}

func sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
