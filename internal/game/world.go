package game

import (
	"math/rand/v2"

	"github.com/mmiranda2/pong/internal/entities"
	"github.com/mmiranda2/pong/internal/gfx"
	"github.com/mmiranda2/pong/internal/hud"
)

// World is every entity of a match. The frame loop owns it.
type World struct {
	Ball       *entities.Ball
	Left       *entities.Paddle
	Right      *entities.Paddle
	Scoreboard *hud.Scoreboard
}

func spriteSize(s gfx.Sprite) entities.Size {
	w, h := s.Size()
	return entities.Size{W: w, H: h}
}

func NewWorld(width, height int, cfg Config, a Assets, rng *rand.Rand) (*World, error) {
	bc, err := cfg.BallConfig()
	if err != nil {
		return nil, err
	}
	bounds := entities.Size{W: width, H: height}
	paddle := spriteSize(a.Paddle)
	return &World{
		Ball:       entities.NewBall(bounds, spriteSize(a.Ball), bc, rng),
		Left:       entities.NewPaddle(entities.SideLeft, bounds, paddle, cfg.PaddleStep),
		Right:      entities.NewPaddle(entities.SideRight, bounds, paddle, cfg.PaddleStep),
		Scoreboard: hud.NewScoreboard(width, height, a.Text),
	}, nil
}
