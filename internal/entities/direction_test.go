package entities

import "testing"

func TestDirDelta(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		wantDY int
	}{
		{name: "none", dir: DirNone, wantDY: 0},
		{name: "up", dir: DirUp, wantDY: -1},
		{name: "down", dir: DirDown, wantDY: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if dy := DirDelta(tc.dir); dy != tc.wantDY {
				t.Fatalf("DirDelta(%v) = %d, want %d", tc.dir, dy, tc.wantDY)
			}
		})
	}
}
