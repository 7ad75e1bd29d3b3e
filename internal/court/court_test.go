package court

import "testing"

func TestNetCoversHeight(t *testing.T) {
	c := NewDefault(640, 480)
	dashes := c.Net()
	if len(dashes) != 24 {
		t.Fatalf("expected 24 dashes for 480px, got %d", len(dashes))
	}
	for i, d := range dashes {
		if d.X != 319 || d.W != 2 {
			t.Fatalf("dash %d off centre: %+v", i, d)
		}
		if d.Y+d.H > 480 {
			t.Fatalf("dash %d runs past the bottom: %+v", i, d)
		}
	}
}

func TestNetClipsLastDash(t *testing.T) {
	c := &Court{Width: 100, Height: 25, DashLen: 10, DashGap: 10, Thickness: 2}
	dashes := c.Net()
	if len(dashes) != 2 {
		t.Fatalf("expected 2 dashes, got %d", len(dashes))
	}
	if last := dashes[1]; last.Y != 20 || last.H != 5 {
		t.Fatalf("last dash = %+v, want y=20 h=5", last)
	}
}

func TestNetDegenerate(t *testing.T) {
	tests := []struct {
		name string
		c    Court
	}{
		{name: "no dash", c: Court{Width: 10, Height: 10, DashLen: 0, Thickness: 2}},
		{name: "no thickness", c: Court{Width: 10, Height: 10, DashLen: 3}},
		{name: "no height", c: Court{Width: 10, DashLen: 3, Thickness: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Net(); got != nil {
				t.Fatalf("expected no dashes, got %+v", got)
			}
		})
	}
}
