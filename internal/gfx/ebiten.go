package gfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Image adapts an *ebiten.Image to Sprite.
type Image struct {
	img *ebiten.Image
}

func NewImage(img *ebiten.Image) *Image {
	return &Image{img: img}
}

func (i *Image) Size() (int, int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

func (i *Image) Ebiten() *ebiten.Image { return i.img }

// Screen adapts the frame passed to ebiten.Game.Draw to Canvas.
type Screen struct {
	dst *ebiten.Image
}

func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{dst: dst}
}

func (s *Screen) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

// DrawSprite blits sprites produced by this package; anything else is skipped.
func (s *Screen) DrawSprite(sp Sprite, x, y float64) {
	img, ok := sp.(*Image)
	if !ok || img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.dst.DrawImage(img.img, op)
}

// Face renders text with a bitmap font face into its own image.
type Face struct {
	face font.Face
}

func NewFace(face font.Face) *Face {
	return &Face{face: face}
}

func (f *Face) Render(s string, clr color.Color) Sprite {
	b := text.BoundString(f.face, s)
	w, h := b.Dx(), b.Dy()
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := ebiten.NewImage(w, h)
	text.Draw(img, s, f.face, -b.Min.X, -b.Min.Y, clr)
	return &Image{img: img}
}
