package hud

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/mmiranda2/pong/internal/entities"
	"github.com/mmiranda2/pong/internal/gfx"
)

const (
	labelText  = "SCORE"
	bannerText = "GET READY"
	topMargin  = 10
	labelShift = 35
	textGap    = 10
)

var (
	white  = color.White
	yellow = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	grey   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Scoreboard keeps both scores and the text sprites showing them. A sprite
// is rendered again only when the value behind it changes.
type Scoreboard struct {
	width, height int
	text          gfx.TextRenderer

	left, right int

	label     gfx.Sprite
	leftText  gfx.Sprite
	rightText gfx.Sprite

	banner        gfx.Sprite
	bannerVisible bool

	fps      int
	fpsText  gfx.Sprite
	fpsShown bool
}

func NewScoreboard(width, height int, tr gfx.TextRenderer) *Scoreboard {
	s := &Scoreboard{width: width, height: height, text: tr}
	s.label = tr.Render(labelText, white)
	s.leftText = tr.Render(strconv.Itoa(s.left), white)
	s.rightText = tr.Render(strconv.Itoa(s.right), white)
	s.banner = tr.Render(bannerText, yellow)
	return s
}

func (s *Scoreboard) Left() int  { return s.left }
func (s *Scoreboard) Right() int { return s.right }

// Score credits a goal to the side whose line the ball crossed.
func (s *Scoreboard) Score(goal entities.Goal) {
	switch goal {
	case entities.GoalRight:
		s.right++
		s.rightText = s.text.Render(strconv.Itoa(s.right), white)
	case entities.GoalLeft:
		s.left++
		s.leftText = s.text.Render(strconv.Itoa(s.left), white)
	}
}

func (s *Scoreboard) ShowBanner()         { s.bannerVisible = true }
func (s *Scoreboard) HideBanner()         { s.bannerVisible = false }
func (s *Scoreboard) BannerVisible() bool { return s.bannerVisible }

// SetFPS updates the frames-per-second readout.
func (s *Scoreboard) SetFPS(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		v = 0
	}
	n := int(math.Round(v))
	if s.fpsShown && n == s.fps {
		return
	}
	s.fps = n
	s.fpsShown = true
	s.fpsText = s.text.Render(fmt.Sprintf("FPS: %d", n), grey)
}

func (s *Scoreboard) FPS() (int, bool) { return s.fps, s.fpsShown }

func (s *Scoreboard) Draw(c gfx.Canvas) {
	lx := float64(s.width/2 - labelShift)
	lw, _ := s.label.Size()
	leftW, _ := s.leftText.Size()

	c.DrawSprite(s.label, lx, topMargin)
	c.DrawSprite(s.rightText, lx+float64(lw)+textGap, topMargin)
	c.DrawSprite(s.leftText, lx-float64(leftW)-textGap, topMargin)

	if s.bannerVisible {
		bw, bh := s.banner.Size()
		c.DrawSprite(s.banner, float64((s.width-bw)/2), float64((s.height-bh)/2))
	}
	if s.fpsShown {
		_, fh := s.fpsText.Size()
		c.DrawSprite(s.fpsText, 4, float64(s.height-fh-4))
	}
}
