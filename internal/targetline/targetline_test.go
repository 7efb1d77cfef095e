package targetline

import (
	"image"
	"math"
	"testing"
)

type identity struct{}

func (identity) XPos(t float64) int { return int(t) }
func (identity) YPos(v float64) int { return int(v) }

var box = Bounds{Left: 0, Right: 99, Top: 0, Bottom: 99}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClip(t *testing.T) {
	tests := []struct {
		name string
		in   Segment
		want Segment
	}{
		{
			name: "inside",
			in:   Segment{X0: 10, Y0: 20, X1: 30, Y1: 40},
			want: Segment{X0: 10, Y0: 20, X1: 30, Y1: 40},
		},
		{
			name: "left border",
			in:   Segment{X0: -10, Y0: 50, X1: 50, Y1: 50},
			want: Segment{X0: 0, Y0: 50, X1: 50, Y1: 50},
		},
		{
			name: "right border",
			in:   Segment{X0: 50, Y0: 0, X1: 150, Y1: 50},
			want: Segment{X0: 50, Y0: 0, X1: 99, Y1: 24.5},
		},
		{
			name: "above",
			in:   Segment{X0: 10, Y0: -50, X1: 20, Y1: -10},
			want: Segment{X0: 10, Y0: 0, X1: 20, Y1: 0},
		},
		{
			name: "below",
			in:   Segment{X0: 10, Y0: 150, X1: 20, Y1: 120},
			want: Segment{X0: 10, Y0: 99, X1: 20, Y1: 99},
		},
		{
			name: "steep crossing",
			in:   Segment{X0: 10, Y0: 150, X1: 20, Y1: -50},
			want: Segment{X0: 12.55, Y0: 99, X1: 17.5, Y1: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clip(tt.in, box)
			if !near(got.X0, tt.want.X0) || !near(got.Y0, tt.want.Y0) || !near(got.X1, tt.want.X1) || !near(got.Y1, tt.want.Y1) {
				t.Errorf("Clip(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClipOrdering(t *testing.T) {
	tests := []struct {
		name string
		in   Segment
	}{
		{"left to right falling", Segment{X0: 10, Y0: 20, X1: 60, Y1: 80}},
		{"left to right rising", Segment{X0: 10, Y0: 80, X1: 60, Y1: 20}},
		{"right to left falling", Segment{X0: 60, Y0: 20, X1: 10, Y1: 80}},
		{"right to left rising", Segment{X0: 60, Y0: 80, X1: 10, Y1: 20}},
		{"steep downward", Segment{X0: 40, Y0: -300, X1: 41, Y1: 400}},
		{"steep upward", Segment{X0: 40, Y0: 400, X1: 41, Y1: -300}},
		{"vertical", Segment{X0: 50, Y0: 90, X1: 50, Y1: 10}},
		{"fully above", Segment{X0: 70, Y0: -10, X1: 20, Y1: -40}},
		{"fully below", Segment{X0: 20, Y0: 140, X1: 70, Y1: 110}},
		{"top left to bottom right corners", Segment{X0: -50, Y0: -50, X1: 150, Y1: 150}},
		{"bottom left to top right corners", Segment{X0: -50, Y0: 150, X1: 150, Y1: -50}},
		{"reversed corners", Segment{X0: 150, Y0: -50, X1: -50, Y1: 150}},
		{"flat through box", Segment{X0: 200, Y0: 30, X1: -100, Y1: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkClip(t, tt.in)
		})
	}
}

func TestClipOrderingSweep(t *testing.T) {
	coords := []float64{-150, -1, 0, 30, 99, 100, 250}
	for _, x0 := range coords {
		for _, y0 := range coords {
			for _, x1 := range coords {
				for _, y1 := range coords {
					s := Segment{X0: x0, Y0: y0, X1: x1, Y1: y1}
					// segments wholly left or right of the box never reach it
					if max(x0, x1) < box.Left || min(x0, x1) > box.Right {
						continue
					}
					checkClip(t, s)
				}
			}
		}
	}
}

// checkClip asserts the ordering of both clip stages and that the result
// stays inside box.
func checkClip(t *testing.T, s Segment) {
	t.Helper()

	in := s
	if in.X0 > in.X1 {
		in = in.swap()
	}
	if v := clipVertical(clipX(in, box), box); v.Y0 > v.Y1 {
		t.Errorf("clipVertical(%+v) = %+v, expected Y0 <= Y1", s, v)
	}

	got := Clip(s, box)
	if got.X0 > got.X1 {
		t.Errorf("Clip(%+v) = %+v, expected X0 <= X1", s, got)
	}
	for _, v := range []float64{got.X0, got.X1} {
		if v < box.Left-1e-6 || v > box.Right+1e-6 {
			t.Errorf("Clip(%+v) x out of bounds: %+v", s, got)
		}
	}
	for _, v := range []float64{got.Y0, got.Y1} {
		if v < box.Top-1e-6 || v > box.Bottom+1e-6 {
			t.Errorf("Clip(%+v) y out of bounds: %+v", s, got)
		}
	}
}

func TestClipKeepsDirection(t *testing.T) {
	// a rising line keeps its y order once x is sorted again
	out := Clip(Segment{X0: 10, Y0: 80, X1: 60, Y1: 20}, box)
	if out != (Segment{X0: 10, Y0: 80, X1: 60, Y1: 20}) {
		t.Errorf("Expected the segment unchanged, got %+v", out)
	}

	// entering from the right gives the same line as entering from the left
	a := Clip(Segment{X0: 150, Y0: 90, X1: 50, Y1: 40}, box)
	b := Clip(Segment{X0: 50, Y0: 40, X1: 150, Y1: 90}, box)
	if !near(a.X0, b.X0) || !near(a.Y0, b.Y0) || !near(a.X1, b.X1) || !near(a.Y1, b.Y1) {
		t.Errorf("Direction changed the clip: %+v vs %+v", a, b)
	}
}

func TestClipStaysInBounds(t *testing.T) {
	segments := []Segment{
		{X0: -100, Y0: -100, X1: 300, Y1: 300},
		{X0: -5, Y0: 200, X1: 5, Y1: -200},
		{X0: 40, Y0: 40, X1: 40, Y1: 400},
		{X0: 0, Y0: 1e9, X1: 99, Y1: -1e9},
	}
	for _, s := range segments {
		got := Clip(s, box)
		for _, v := range []float64{got.X0, got.X1} {
			if v < box.Left-1e-6 || v > box.Right+1e-6 {
				t.Errorf("Clip(%+v) x out of bounds: %+v", s, got)
			}
		}
		for _, v := range []float64{got.Y0, got.Y1} {
			if v < box.Top-1e-6 || v > box.Bottom+1e-6 {
				t.Errorf("Clip(%+v) y out of bounds: %+v", s, got)
			}
		}
	}
}

func TestCoords(t *testing.T) {
	row := Row{Axis: identity{}, Rect: image.Rect(0, 100, 200, 200), Min: 0, Max: 100}

	if y := row.YPos(0); y != 199 {
		t.Errorf("YPos(min) = %d, want 199", y)
	}
	if y := row.YPos(50); y != 149 {
		t.Errorf("YPos(50) = %d, want 149", y)
	}
	if v := row.Value(149); !near(v, 50) {
		t.Errorf("Value(149) = %v, want 50", v)
	}

	s := Coords(row, BoundsOf(row.Rect), 20, 50, 80, 150)
	if s.Y1 != 100 {
		t.Errorf("Expected end clipped to the top border, got %+v", s)
	}
	if !near(s.YAt(20), 149) {
		t.Errorf("YAt(20) = %v, want 149", s.YAt(20))
	}
}
