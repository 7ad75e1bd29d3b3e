package game

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/mmiranda2/pong/internal/entities"
)

const (
	DefaultTPS         = 480
	DefaultPausePeriod = 3 * time.Second
)

// Config holds the command-line tunables of a match.
type Config struct {
	AssetsDir  string
	Resolution string
	Size       int
	TPS        int
	Seed       int64
	Debug      bool

	PaddleStep   float64
	Rebound      string
	Serve        string
	ServeSpeed   float64
	Acceleration float64
	MaxSpeed     float64

	PausePeriod time.Duration
	GetReady    bool
}

// DefaultConfig returns the angled rebound, fine paddle step and the full
// pause/banner loop.
func DefaultConfig() Config {
	return Config{
		TPS:          DefaultTPS,
		PaddleStep:   entities.FinePaddleStep,
		Rebound:      "angled",
		Serve:        "angled",
		ServeSpeed:   entities.DefaultServeSpeed,
		Acceleration: entities.DefaultAccel,
		PausePeriod:  DefaultPausePeriod,
		GetReady:     true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.AssetsDir, "assets", c.AssetsDir, "resource folder (default ./assets, or $PONG_ASSETS_DIR)")
	fs.StringVar(&c.Resolution, "resolution", c.Resolution, "display preset from screens.yml (default from settings)")
	fs.IntVar(&c.Size, "size", c.Size, "window height for the preset (default from settings)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "serve RNG seed, 0 picks one from the clock")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "trace goals and rebounds to the log")
	fs.Float64Var(&c.PaddleStep, "paddle-step", c.PaddleStep, "paddle pixels per tick")
	fs.StringVar(&c.Rebound, "rebound", c.Rebound, "paddle rebound: angled or accelerate")
	fs.StringVar(&c.Serve, "serve", c.Serve, "serve: angled or uniform")
	fs.Float64Var(&c.ServeSpeed, "serve-speed", c.ServeSpeed, "angled serve speed in pixels per tick")
	fs.Float64Var(&c.Acceleration, "accel", c.Acceleration, "velocity multiplier per hit for the accelerate rebound")
	fs.Float64Var(&c.MaxSpeed, "max-speed", c.MaxSpeed, "speed cap for the accelerate rebound, 0 for none")
	fs.DurationVar(&c.PausePeriod, "pause", c.PausePeriod, "pause after a goal")
	fs.BoolVar(&c.GetReady, "get-ready", c.GetReady, "start with a get-ready pause")
}

var (
	ErrBadRebound = errors.New("unknown rebound")
	ErrBadServe   = errors.New("unknown serve")
)

func (c Config) Validate() error {
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.PaddleStep <= 0 {
		return fmt.Errorf("paddle step must be positive, got %v", c.PaddleStep)
	}
	if c.ServeSpeed <= 0 {
		return fmt.Errorf("serve speed must be positive, got %v", c.ServeSpeed)
	}
	if c.Acceleration <= 0 {
		return fmt.Errorf("acceleration must be positive, got %v", c.Acceleration)
	}
	if c.MaxSpeed < 0 {
		return fmt.Errorf("max speed must not be negative, got %v", c.MaxSpeed)
	}
	if c.PausePeriod < 0 {
		return fmt.Errorf("pause must not be negative, got %v", c.PausePeriod)
	}
	_, err := c.BallConfig()
	return err
}

// BallConfig translates the flag values into entity settings.
func (c Config) BallConfig() (entities.BallConfig, error) {
	bc := entities.BallConfig{
		ServeSpeed:   c.ServeSpeed,
		Acceleration: c.Acceleration,
		MaxSpeed:     c.MaxSpeed,
	}
	switch c.Rebound {
	case "angled", "":
		bc.Rebound = entities.ReboundAngled
	case "accelerate":
		bc.Rebound = entities.ReboundAccelerate
	default:
		return bc, fmt.Errorf("%w %q (want angled or accelerate)", ErrBadRebound, c.Rebound)
	}
	switch c.Serve {
	case "angled", "":
		bc.Serve = entities.ServeAngled
	case "uniform":
		bc.Serve = entities.ServeUniform
	default:
		return bc, fmt.Errorf("%w %q (want angled or uniform)", ErrBadServe, c.Serve)
	}
	return bc, nil
}
