package entities

// Range is a closed interval [Min, Max].
type Range struct {
	Min, Max float64
}

func (r Range) Contains(v float64) bool { return r.Min <= v && v <= r.Max }
func (r Range) Center() float64         { return (r.Min + r.Max) / 2 }
func (r Range) Len() float64            { return r.Max - r.Min }

// Window is the region in front of a paddle where contact with the ball counts.
type Window struct {
	X, Y Range
}

func (w Window) Contains(x, y float64) bool {
	return w.X.Contains(x) && w.Y.Contains(y)
}
