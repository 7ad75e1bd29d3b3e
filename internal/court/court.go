package court

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float32
}

// Court holds the playfield markings: a dashed net down the middle.
type Court struct {
	Width     int
	Height    int
	DashLen   int
	DashGap   int
	Thickness int
}

func NewDefault(width, height int) *Court {
	return &Court{Width: width, Height: height, DashLen: 12, DashGap: 8, Thickness: 2}
}

// Net returns the dashes of the centre line from top to bottom. The last
// dash is cut at the bottom edge.
func (c *Court) Net() []Rect {
	if c.DashLen <= 0 || c.Thickness <= 0 || c.Height <= 0 {
		return nil
	}
	period := c.DashLen + c.DashGap
	if period <= 0 {
		period = c.DashLen
	}
	x := float32(c.Width/2 - c.Thickness/2)
	var dashes []Rect
	for y := 0; y < c.Height; y += period {
		h := c.DashLen
		if y+h > c.Height {
			h = c.Height - y
		}
		dashes = append(dashes, Rect{X: x, Y: float32(y), W: float32(c.Thickness), H: float32(h)})
	}
	return dashes
}

func (c *Court) Draw(dst *ebiten.Image) {
	netColor := color.RGBA{R: 90, G: 90, B: 90, A: 255}
	for _, r := range c.Net() {
		vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, netColor, false)
	}
}
