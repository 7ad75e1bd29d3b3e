package entities

import (
	"math"
	"math/rand/v2"
)

// Goal reports which goal line the ball reached during a step.
type Goal int

const (
	GoalLeft  Goal = -1
	GoalNone  Goal = 0
	GoalRight Goal = 1
)

func (g Goal) String() string {
	switch g {
	case GoalLeft:
		return "left"
	case GoalRight:
		return "right"
	default:
		return "none"
	}
}

// Rebound selects how a paddle hit changes the ball velocity.
type Rebound int

const (
	// ReboundAngled sets the return angle from where the ball met the paddle.
	ReboundAngled Rebound = iota
	// ReboundAccelerate reverses dx and scales the whole velocity.
	ReboundAccelerate
)

// Serve selects how a fresh velocity is drawn.
type Serve int

const (
	// ServeAngled picks an angle in [-π/4, π/4] and a random side.
	ServeAngled Serve = iota
	// ServeUniform picks positive components, the y one never larger than x.
	ServeUniform
)

const (
	maxReturnAngle     = math.Pi / 8
	maxServeAngle      = math.Pi / 4
	DefaultServeSpeed  = 0.25
	DefaultAccel       = 1.1
	uniformServeMin    = 0.4
	uniformServeMax    = 1.0
	uniformServeFactor = 10.0
)

type BallConfig struct {
	Rebound      Rebound
	Serve        Serve
	ServeSpeed   float64
	Acceleration float64
	// MaxSpeed caps the speed reached through acceleration. Zero means no cap.
	MaxSpeed float64
}

func DefaultBallConfig() BallConfig {
	return BallConfig{
		Rebound:      ReboundAngled,
		Serve:        ServeAngled,
		ServeSpeed:   DefaultServeSpeed,
		Acceleration: DefaultAccel,
	}
}

type Ball struct {
	Mover
	DX, DY float64
	cfg    BallConfig
	rng    *rand.Rand
	locked bool
}

// NewBall creates a ball and serves it from the centre of the container.
func NewBall(bounds, size Size, cfg BallConfig, rng *rand.Rand) *Ball {
	b := &Ball{Mover: NewMover(bounds, size), cfg: cfg, rng: rng}
	b.Serve()
	return b
}

func (b *Ball) Lock()        { b.locked = true }
func (b *Ball) Unlock()      { b.locked = false }
func (b *Ball) Locked() bool { return b.locked }

func (b *Ball) Speed() float64 { return math.Hypot(b.DX, b.DY) }

// Serve puts the ball back at the centre with a new random velocity.
func (b *Ball) Serve() {
	b.SetPos(b.Clamp(float64(b.bounds.W/2), float64(b.bounds.H/2)))

	switch b.cfg.Serve {
	case ServeUniform:
		xv := uniformServeMin + (uniformServeMax-uniformServeMin)*b.rng.Float64()
		yv := uniformServeMin + (xv-uniformServeMin)*b.rng.Float64()
		b.DX, b.DY = uniformServeFactor*xv, uniformServeFactor*yv
	default:
		theta := -maxServeAngle + 2*maxServeAngle*b.rng.Float64()
		sign := 1.0
		if b.rng.IntN(2) == 0 {
			sign = -1
		}
		b.DX = sign * math.Cos(theta) * b.cfg.ServeSpeed
		b.DY = math.Sin(theta) * b.cfg.ServeSpeed
	}
}

// Next advances the ball by one step. A ball inside a paddle window is never
// scored; it only rebounds when travelling toward that paddle. On a goal the
// ball is served again and does not move this step.
func (b *Ball) Next(left, right Window) Goal {
	if b.locked {
		return GoalNone
	}

	switch {
	case left.Contains(b.x, b.y):
		if b.DX < 0 {
			b.rebound(left)
		}
	case right.Contains(b.x, b.y):
		if b.DX > 0 {
			b.rebound(right)
		}
	default:
		if goal := b.scored(); goal != GoalNone {
			b.Serve()
			return goal
		}
	}

	if b.hitRails() {
		b.DY = -b.DY
	}
	b.Move(b.DX, b.DY)
	return GoalNone
}

// ReturnAngle maps the hit point onto [-π/8, π/8]: zero at the window
// centre, the extremes at its top and bottom edges.
func ReturnAngle(y float64, w Window) float64 {
	h := w.Y.Len()
	if h == 0 {
		return 0
	}
	t := 2 * (y - w.Y.Center()) / h
	return maxReturnAngle * t
}

func (b *Ball) rebound(w Window) {
	b.DX = -b.DX
	switch b.cfg.Rebound {
	case ReboundAccelerate:
		b.DX *= b.cfg.Acceleration
		b.DY *= b.cfg.Acceleration
		if s := b.Speed(); b.cfg.MaxSpeed > 0 && s > b.cfg.MaxSpeed {
			k := b.cfg.MaxSpeed / s
			b.DX *= k
			b.DY *= k
		}
	default:
		b.DY = math.Sin(ReturnAngle(b.y, w))
	}
}

// hitRails reports a touch of the top or bottom rail while heading into it.
func (b *Ball) hitRails() bool {
	return (b.y <= 0 && b.DY < 0) || (b.y >= b.MaxY() && b.DY > 0)
}

func (b *Ball) scored() Goal {
	switch {
	case b.x <= 0:
		return GoalLeft
	case b.x >= b.MaxX():
		return GoalRight
	default:
		return GoalNone
	}
}
