package entities

type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

const (
	// FinePaddleStep moves a paddle a third of a pixel per tick.
	FinePaddleStep = 1.0 / 3
	// CoarsePaddleStep moves a paddle ten pixels per tick.
	CoarsePaddleStep = 10.0
)

// Paddle is a Mover pinned to one column that only travels vertically.
// Half of its sprite hangs off the edge of the playfield.
type Paddle struct {
	Mover
	side   Side
	xFixed float64
	step   float64
}

func NewPaddle(side Side, bounds, size Size, step float64) *Paddle {
	p := &Paddle{Mover: NewMover(bounds, size), side: side, step: step}
	half := size.W / 2
	if side == SideLeft {
		p.xFixed = float64(-half - 1)
	} else {
		p.xFixed = float64(bounds.W - half - 1)
	}
	_, y := p.Clamp(0, float64(bounds.H/2))
	p.SetPos(p.xFixed, y)
	return p
}

func (p *Paddle) Side() Side      { return p.side }
func (p *Paddle) XFixed() float64 { return p.xFixed }
func (p *Paddle) Step() float64   { return p.step }

// SetPos ignores x; the paddle column never changes.
func (p *Paddle) SetPos(_, y float64) {
	p.Mover.SetPos(p.xFixed, y)
}

func (p *Paddle) Move(dx, dy float64) {
	_, y := p.Clamp(p.x+dx, p.y+dy)
	p.SetPos(p.xFixed, y)
}

func (p *Paddle) Up()   { p.Move(0, -p.step) }
func (p *Paddle) Down() { p.Move(0, p.step) }

// Go moves the paddle one step in d.
func (p *Paddle) Go(d Direction) {
	p.Move(0, float64(DirDelta(d))*p.step)
}

// Window returns the paddle's current reach. The left window runs from the
// paddle anchor to half the sprite width, which is where its visible face ends.
func (p *Paddle) Window() Window {
	radius := float64(p.size.W / 2)
	var wx Range
	if p.side == SideLeft {
		wx = Range{Min: p.xFixed, Max: radius}
	} else {
		wx = Range{Min: p.xFixed - radius, Max: p.xFixed}
	}
	return Window{
		X: wx,
		Y: Range{Min: p.y, Max: p.y + float64(p.size.H)},
	}
}
