package main

import (
	"errors"
	"flag"
	"log"

	"github.com/mmiranda2/pong/internal/assets"
	"github.com/mmiranda2/pong/internal/game"
	"github.com/mmiranda2/pong/internal/gfx"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

func main() {
	cfg := game.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	game.SetTrace(cfg.Debug)

	res, err := assets.Load(cfg.AssetsDir)
	if err != nil {
		log.Fatal(err)
	}
	width, height, err := res.Display(cfg.Resolution, cfg.Size)
	if err != nil {
		log.Fatal(err)
	}
	ball, err := res.LoadImage(assets.KindBall)
	if err != nil {
		log.Fatal(err)
	}
	paddle, err := res.LoadImage(assets.KindPaddle)
	if err != nil {
		log.Fatal(err)
	}

	g, err := game.New(cfg, width, height, game.Assets{
		Ball:   gfx.NewImage(ball),
		Paddle: gfx.NewImage(paddle),
		Text:   gfx.NewFace(basicfont.Face7x13),
		Audio:  game.NewAudioManager(res.SoundsDir()),
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Let's play!")
	ebiten.SetWindowTitle("Pong (Go + Ebiten)")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
