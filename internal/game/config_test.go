package game

import (
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/mmiranda2/pong/internal/entities"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("pong", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-rebound", "accelerate", "-serve", "uniform", "-paddle-step", "10",
		"-pause", "1s", "-get-ready=false", "-max-speed", "25", "-resolution", "HD", "-size", "720",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.PaddleStep != entities.CoarsePaddleStep || cfg.PausePeriod != time.Second || cfg.GetReady {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Resolution != "HD" || cfg.Size != 720 {
		t.Fatalf("display flags not applied: %+v", cfg)
	}
	bc, err := cfg.BallConfig()
	if err != nil {
		t.Fatalf("BallConfig: %v", err)
	}
	if bc.Rebound != entities.ReboundAccelerate || bc.Serve != entities.ServeUniform || bc.MaxSpeed != 25 {
		t.Fatalf("ball config = %+v", bc)
	}
}

func TestDefaultConfigIsCanonical(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bc, _ := cfg.BallConfig()
	if bc.Rebound != entities.ReboundAngled || bc.Serve != entities.ServeAngled {
		t.Fatalf("default variants = %+v", bc)
	}
	if cfg.PaddleStep != entities.FinePaddleStep || cfg.PausePeriod != 3*time.Second || !cfg.GetReady {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "zero tps", mutate: func(c *Config) { c.TPS = 0 }},
		{name: "zero step", mutate: func(c *Config) { c.PaddleStep = 0 }},
		{name: "zero serve speed", mutate: func(c *Config) { c.ServeSpeed = 0 }},
		{name: "zero accel", mutate: func(c *Config) { c.Acceleration = 0 }},
		{name: "negative max speed", mutate: func(c *Config) { c.MaxSpeed = -1 }},
		{name: "negative pause", mutate: func(c *Config) { c.PausePeriod = -time.Second }},
		{name: "bad rebound", mutate: func(c *Config) { c.Rebound = "spin" }, wantErr: ErrBadRebound},
		{name: "bad serve", mutate: func(c *Config) { c.Serve = "lob" }, wantErr: ErrBadServe},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected an error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
