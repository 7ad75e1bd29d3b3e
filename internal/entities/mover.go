package entities

// Size is a width/height pair in pixels.
type Size struct {
	W, H int
}

// Mover is a 2D entity whose position always stays inside its container.
type Mover struct {
	x, y   float64
	size   Size
	bounds Size
}

func NewMover(bounds, size Size) Mover {
	return Mover{size: size, bounds: bounds}
}

func (m *Mover) Pos() (x, y float64) { return m.x, m.y }
func (m *Mover) Size() Size          { return m.size }
func (m *Mover) Bounds() Size        { return m.bounds }

func (m *Mover) SetPos(x, y float64) {
	m.x, m.y = x, y
}

// Move shifts the entity by (dx, dy) and clamps the result into the container.
func (m *Mover) Move(dx, dy float64) {
	m.SetPos(m.Clamp(m.x+dx, m.y+dy))
}

// Clamp limits (x, y) to [0, bounds-size] on each axis.
func (m *Mover) Clamp(x, y float64) (float64, float64) {
	return clamp(x, 0, m.MaxX()), clamp(y, 0, m.MaxY())
}

func (m *Mover) MaxX() float64 { return float64(m.bounds.W - m.size.W) }
func (m *Mover) MaxY() float64 { return float64(m.bounds.H - m.size.H) }

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
