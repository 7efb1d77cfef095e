package graph

import (
	"math"
	"testing"
)

func TestZoomFactors(t *testing.T) {
	d := DefaultLinearDomain()
	d.Negative = Limit{Min: -100, Max: -1, Current: -10}
	d.Positive = Limit{Min: 0.1, Max: 10, Current: 1}
	d.NumZoomSteps = 2

	neg, pos := ZoomFactors(d)
	if math.Abs(neg-10) > 1e-9 {
		t.Errorf("negative factor = %v, want 10", neg)
	}
	if math.Abs(pos-10) > 1e-9 {
		t.Errorf("positive factor = %v, want 10", pos)
	}

	neg, pos = ZoomFactors(DefaultLinearDomain())
	if neg != 1 || pos != 1 {
		t.Errorf("fixed domain factors = %v, %v, want 1, 1", neg, pos)
	}
}

func TestZoomInOutRestores(t *testing.T) {
	g := New()
	d := DefaultLinearDomain()
	d.Positive = Limit{Min: 0.1, Max: 10, Current: 1}
	d.NumZoomSteps = 10
	g.InitAbscissa(d)

	if !g.ZoomInAbscissa(false, true) {
		t.Fatalf("Expected zoom in to move the positive limit")
	}
	if g.Abscissa.Positive.Current >= 1 {
		t.Errorf("Zoom in should shrink the limit, got %v", g.Abscissa.Positive.Current)
	}

	g.ZoomOutAbscissa(false, true)
	if got := g.Abscissa.Positive.Current; math.Abs(got-1) > 1e-9 {
		t.Errorf("Expected limit restored to 1, got %v", got)
	}
}

func TestZoomClamps(t *testing.T) {
	g := New()
	d := DefaultLinearDomain()
	d.Positive = Limit{Min: 1, Max: 2, Current: 1.9}
	d.NumZoomSteps = 1
	g.InitAbscissa(d)

	g.ZoomInAbscissa(false, true)
	if got := g.Abscissa.Positive.Current; got != 1 {
		t.Errorf("Expected clamp to Min 1, got %v", got)
	}

	g.ZoomOutAbscissa(false, true)
	if got := g.Abscissa.Positive.Current; got != 2 {
		t.Errorf("Expected 2 after zoom out, got %v", got)
	}

	g.ZoomOutAbscissa(false, true)
	if got := g.Abscissa.Positive.Current; got != 2 {
		t.Errorf("Expected clamp to Max 2, got %v", got)
	}
}

func TestZoomFixedWidth(t *testing.T) {
	g := New()
	d := DefaultLinearDomain()
	d.Positive = Limit{Min: 300, Max: 300, Current: 300}
	g.InitAbscissa(d)

	if g.ZoomInAbscissa(false, true) {
		t.Errorf("Fixed-width domain must not report a change")
	}
	if got := g.Abscissa.Positive.Current; got != 300 {
		t.Errorf("Expected 300, got %v", got)
	}

	if g.ZoomOutAbscissa(false, true) {
		t.Errorf("Fixed-width domain must not report a change on zoom out")
	}
	if got := g.Abscissa.Positive.Current; got != 300 {
		t.Errorf("Expected 300 after zoom in and out, got %v", got)
	}
}

func TestZoomNegativeSide(t *testing.T) {
	d := DefaultLinearDomain()
	d.Negative = Limit{Min: -100, Max: -0.1, Current: -3}
	d.Positive = Limit{Min: 1, Max: 10, Current: 5}
	d.NumZoomSteps = 3

	tests := []struct {
		name string
		in   func(g *Graph) bool
		out  func(g *Graph) bool
		side func(g *Graph) *LinearDomain
	}{
		{
			name: "abscissa",
			in:   func(g *Graph) bool { return g.ZoomInAbscissa(true, false) },
			out:  func(g *Graph) bool { return g.ZoomOutAbscissa(true, false) },
			side: func(g *Graph) *LinearDomain { return &g.Abscissa },
		},
		{
			name: "linear ordinate",
			in:   func(g *Graph) bool { return g.ZoomInOrdinate(true, false) },
			out:  func(g *Graph) bool { return g.ZoomOutOrdinate(true, false) },
			side: func(g *Graph) *LinearDomain { return &g.LinearOrdinate },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			g.InitAbscissa(d)
			g.InitLinearOrdinate(d)
			dom := tt.side(g)

			if !tt.in(g) {
				t.Fatalf("Expected zoom in to move the negative limit")
			}
			if got := dom.Negative.Current; math.Abs(got+0.3) > 1e-9 {
				t.Errorf("Expected -0.3 after zoom in, got %v", got)
			}
			if dom.Positive.Current != 5 {
				t.Errorf("Positive side moved to %v", dom.Positive.Current)
			}

			if !tt.out(g) {
				t.Fatalf("Expected zoom out to move the negative limit")
			}
			if got := dom.Negative.Current; math.Abs(got+3) > 1e-9 {
				t.Errorf("Expected -3 restored, got %v", got)
			}

			// out to the bound and no further
			for range 5 {
				tt.out(g)
			}
			if got := dom.Negative.Current; got != -100 {
				t.Errorf("Expected clamp to -100, got %v", got)
			}
		})
	}
}

func TestZoomOrdinateJoint(t *testing.T) {
	g := New()
	d := DefaultLinearDomain()
	d.Negative = Limit{Min: -10, Max: -1, Current: -10}
	d.Positive = Limit{Min: 1, Max: 10, Current: 5}
	d.NumZoomSteps = 1
	g.InitLinearOrdinate(d)

	// the positive side would leave its bounds, so neither side moves
	if g.ZoomInOrdinate(true, true) {
		t.Errorf("Joint zoom out of bounds must be rejected")
	}
	if g.LinearOrdinate.Negative.Current != -10 || g.LinearOrdinate.Positive.Current != 5 {
		t.Errorf("Limits changed: %+v %+v", g.LinearOrdinate.Negative, g.LinearOrdinate.Positive)
	}

	// a single side is clamped instead
	if !g.ZoomInOrdinate(false, true) {
		t.Errorf("Single-side zoom should move the limit")
	}
	if got := g.LinearOrdinate.Positive.Current; got != 1 {
		t.Errorf("Expected clamp to 1, got %v", got)
	}

	g.LinearOrdinate.Negative.Current = -1
	if !g.ZoomOutOrdinate(true, true) {
		t.Fatalf("Joint zoom inside the bounds should apply")
	}
	if g.LinearOrdinate.Negative.Current != -10 || g.LinearOrdinate.Positive.Current != 10 {
		t.Errorf("Expected limits -10/10, got %v, %v", g.LinearOrdinate.Negative.Current, g.LinearOrdinate.Positive.Current)
	}
}

func TestZoomLogOrdinate(t *testing.T) {
	g := New()
	g.IsLinearOrdinate = false
	g.InitLogOrdinate(LogDomain{
		Reference:     1,
		ScaleDivision: 10,
		Lower:         Limit{Min: -60, Max: -10, Current: -40},
		Upper:         Limit{Min: 10, Max: 60, Current: 40},
		ZoomStep:      10,
	})

	g.ZoomInOrdinate(true, true)
	if g.LogOrdinate.Lower.Current != -30 || g.LogOrdinate.Upper.Current != 30 {
		t.Errorf("Unexpected levels after zoom in: %v, %v", g.LogOrdinate.Lower.Current, g.LogOrdinate.Upper.Current)
	}

	for i := 0; i < 4; i++ {
		g.ZoomOutOrdinate(true, true)
	}
	if g.LogOrdinate.Lower.Current != -60 || g.LogOrdinate.Upper.Current != 60 {
		t.Errorf("Expected levels clamped to -60/60, got %v, %v", g.LogOrdinate.Lower.Current, g.LogOrdinate.Upper.Current)
	}
}
