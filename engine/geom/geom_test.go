package geom

import "testing"

func TestRectContains(t *testing.T) {
	r := RectXYWH(0, 0, 10, 10)

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"inside", V(5, 5), true},
		{"top-left corner", V(0, 0), true},
		{"right edge", V(10, 5), false},
		{"bottom edge", V(5, 10), false},
		{"outside", V(50, 50), false},
		{"negative", V(-1, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectScaleAndInset(t *testing.T) {
	r := RectXYWH(10, 20, 30, 40).Scale(2)
	if r.Min != V(20, 40) || r.Max != V(80, 120) {
		t.Fatalf("Scale = %+v", r)
	}
	in := r.Inset(1, 2, 3, 4)
	if in.Width() != 56 || in.Height() != 74 {
		t.Errorf("Inset size = %v x %v, want 56 x 74", in.Width(), in.Height())
	}
	if c := RectXYWH(0, 0, 10, 10).InsetSymmetric(V(2.5, 2.5)); c != RectXYWH(2.5, 2.5, 5, 5) {
		t.Errorf("InsetSymmetric = %+v", c)
	}
}
