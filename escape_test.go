package mandel

import "testing"

// Any point already outside the bailout radius escapes at iteration 0,
// whatever the limit.
func TestEscapeTimeImmediateEscape(t *testing.T) {
	points := []Point{
		{Re: 3, Im: 0},
		{Re: -2, Im: 1},
		{Re: 0, Im: -2.5},
		{Re: 1.5, Im: 1.5},
	}
	for _, c := range points {
		for _, limit := range []int{1, 2, MaxIter} {
			count, escaped := EscapeTime(c, limit)
			if !escaped || count != 0 {
				t.Errorf("EscapeTime(%+v, %d) = (%d, %t), want (0, true)", c, limit, count, escaped)
			}
		}
	}
}

// The origin is a fixed point of z² + c and never escapes.
func TestEscapeTimeOriginStaysBounded(t *testing.T) {
	for _, limit := range []int{1, MaxIter, 10000} {
		if count, escaped := EscapeTime(Point{}, limit); escaped {
			t.Errorf("EscapeTime(0, %d) escaped at %d, want bounded", limit, count)
		}
	}
}

func TestEscapeTimeKnownOrbits(t *testing.T) {
	tests := []struct {
		name      string
		c         Point
		wantCount int
		wantEsc   bool
	}{
		// orbit 1, 2, 5: norm first exceeds 4 at iteration 2
		{name: "c=1 escapes at 2", c: Point{Re: 1}, wantCount: 2, wantEsc: true},
		// orbit alternates -1, 0, -1, 0, ...
		{name: "c=-1 is periodic", c: Point{Re: -1}, wantEsc: false},
		// orbit reaches 2 and stays there; norm 4 never exceeds the threshold
		{name: "c=-2 sits on the boundary", c: Point{Re: -2}, wantEsc: false},
		// inside the main cardioid
		{name: "c=-0.5 is in the set", c: Point{Re: -0.5}, wantEsc: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, escaped := EscapeTime(tt.c, MaxIter)
			if escaped != tt.wantEsc {
				t.Fatalf("EscapeTime(%+v) escaped = %t, want %t", tt.c, escaped, tt.wantEsc)
			}
			if escaped && count != tt.wantCount {
				t.Errorf("EscapeTime(%+v) = %d, want %d", tt.c, count, tt.wantCount)
			}
		})
	}
}
