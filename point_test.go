package mandel

import "testing"

func TestPointAdd(t *testing.T) {
	got := Point{Re: 1.5, Im: -2}.Add(Point{Re: 0.25, Im: 3})
	want := Point{Re: 1.75, Im: 1}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
}

func TestPointMul(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Point
	}{
		{
			name: "i squared is minus one",
			a:    Point{Re: 0, Im: 1},
			b:    Point{Re: 0, Im: 1},
			want: Point{Re: -1, Im: 0},
		},
		{
			name: "real times real",
			a:    Point{Re: -2, Im: 0},
			b:    Point{Re: 3, Im: 0},
			want: Point{Re: -6, Im: 0},
		},
		{
			name: "mixed",
			a:    Point{Re: 1, Im: 2},
			b:    Point{Re: 3, Im: -4},
			want: Point{Re: 11, Im: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Mul(tt.b); got != tt.want {
				t.Errorf("%+v.Mul(%+v) = %+v, want %+v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPointSquaredNorm(t *testing.T) {
	if got := (Point{Re: 3, Im: -4}).SquaredNorm(); got != 25 {
		t.Errorf("SquaredNorm = %v, want 25", got)
	}
	if got := (Point{}).SquaredNorm(); got != 0 {
		t.Errorf("SquaredNorm of origin = %v, want 0", got)
	}
}
