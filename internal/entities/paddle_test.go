package entities

import "testing"

var (
	court      = Size{W: 640, H: 480}
	paddleSize = Size{W: 20, H: 50}
)

func TestPaddleFixedColumn(t *testing.T) {
	tests := []struct {
		side Side
		want float64
	}{
		{side: SideLeft, want: -11},
		{side: SideRight, want: 629},
	}
	for _, tc := range tests {
		t.Run(tc.side.String(), func(t *testing.T) {
			p := NewPaddle(tc.side, court, paddleSize, CoarsePaddleStep)
			if p.XFixed() != tc.want {
				t.Fatalf("x_fixed = %v, want %v", p.XFixed(), tc.want)
			}
			if _, y := p.Pos(); y != 240 {
				t.Fatalf("initial y = %v, want 240", y)
			}
		})
	}
}

func TestPaddleStaysInColumnAndBounds(t *testing.T) {
	for _, side := range []Side{SideLeft, SideRight} {
		p := NewPaddle(side, court, paddleSize, CoarsePaddleStep)
		x0 := p.XFixed()
		moves := []func(){p.Up, p.Down}
		for i := 0; i < 400; i++ {
			// long runs in each direction hit both rails
			moves[(i/60)%2]()
			x, y := p.Pos()
			if x != x0 {
				t.Fatalf("%v paddle x moved: %v != %v", side, x, x0)
			}
			if y < 0 || y > float64(court.H-paddleSize.H) {
				t.Fatalf("%v paddle y out of bounds: %v", side, y)
			}
		}
	}
}

func TestPaddleSetPosForcesColumn(t *testing.T) {
	p := NewPaddle(SideRight, court, paddleSize, FinePaddleStep)
	p.SetPos(3, 77)
	if x, y := p.Pos(); x != p.XFixed() || y != 77 {
		t.Fatalf("SetPos -> (%v,%v), want (%v,77)", x, y, p.XFixed())
	}
}

func TestPaddleFineStep(t *testing.T) {
	p := NewPaddle(SideLeft, court, paddleSize, FinePaddleStep)
	for i := 0; i < 3; i++ {
		p.Down()
	}
	if _, y := p.Pos(); y < 240.999 || y > 241.001 {
		t.Fatalf("three fine steps should move one pixel, got y=%v", y)
	}
	p.Go(DirUp)
	p.Go(DirNone)
	if _, y := p.Pos(); y < 240.66 || y > 240.67 {
		t.Fatalf("Go(up) should move one fine step, got y=%v", y)
	}
}

func TestPaddleWindow(t *testing.T) {
	right := NewPaddle(SideRight, court, paddleSize, CoarsePaddleStep)
	right.SetPos(0, 100)
	w := right.Window()
	if w.Y != (Range{Min: 100, Max: 150}) {
		t.Fatalf("right y-range = %+v, want (100,150)", w.Y)
	}
	if w.X != (Range{Min: 619, Max: 629}) {
		t.Fatalf("right x-range = %+v, want (619,629)", w.X)
	}

	left := NewPaddle(SideLeft, court, paddleSize, CoarsePaddleStep)
	if got := left.Window().X; got != (Range{Min: -11, Max: 10}) {
		t.Fatalf("left x-range = %+v, want (-11,10)", got)
	}
}
