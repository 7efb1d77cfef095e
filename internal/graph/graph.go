// Package graph maps physical values to pixel positions of a plot area and
// back, picks tick divisions for its axes and zooms the visible domain.
//
// A Graph owns one abscissa and two ordinates (linear and logarithmic), only
// one of which is active at a time. The plot rectangle is the size of the
// bound surface minus the margins, queried on every call so a resized surface
// is picked up without re-initialisation.
package graph

import (
	"image"
	"math"
)

// Epsilon floors every denominator used by the mappings.
const Epsilon = 0.000001

// maxPixel bounds mapped coordinates so degenerate domains stay drawable.
const maxPixel = 1 << 24

// SizeProvider reports the current size of the drawing surface.
type SizeProvider interface {
	Size() (width, height int)
}

// SizeFunc adapts a function to SizeProvider.
type SizeFunc func() (width, height int)

func (f SizeFunc) Size() (int, int) { return f() }

// FixedSize is a surface that never changes size.
type FixedSize image.Point

func (s FixedSize) Size() (int, int) { return s.X, s.Y }

// Margins are the pixels reserved around the plot area for axes and labels.
type Margins struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

type Graph struct {
	Abscissa       LinearDomain
	LinearOrdinate LinearDomain
	LogOrdinate    LogDomain

	IsLinearOrdinate   bool
	AbscissaAtBottom   bool
	OrdinateAtLeftSide bool

	margins Margins
	surface SizeProvider
}

// New returns a graph with default domains and no surface.
func New() *Graph {
	return &Graph{
		Abscissa:           DefaultLinearDomain(),
		LinearOrdinate:     DefaultLinearDomain(),
		LogOrdinate:        DefaultLogDomain(),
		IsLinearOrdinate:   true,
		AbscissaAtBottom:   true,
		OrdinateAtLeftSide: true,
	}
}

// Init binds the graph to a surface.
func (g *Graph) Init(surface SizeProvider, m Margins) {
	g.surface = surface
	g.margins = m
}

func (g *Graph) Margins() Margins {
	return g.margins
}

// InitAbscissa replaces the abscissa domain.
func (g *Graph) InitAbscissa(d LinearDomain) {
	d.normalize()
	g.Abscissa = d
}

// InitLinearOrdinate replaces the linear ordinate domain.
func (g *Graph) InitLinearOrdinate(d LinearDomain) {
	d.normalize()
	g.LinearOrdinate = d
}

// InitLogOrdinate replaces the logarithmic ordinate domain.
func (g *Graph) InitLogOrdinate(d LogDomain) {
	d.normalize()
	g.LogOrdinate = d
}

// Dimensions returns the plot rectangle. Without a surface it is (0,0)-(1,1).
// The rectangle is not canonicalised: a surface smaller than its margins
// yields a non-positive width or height.
func (g *Graph) Dimensions() image.Rectangle {
	if g.surface == nil {
		return image.Rectangle{Max: image.Point{X: 1, Y: 1}}
	}

	w, h := g.surface.Size()
	return image.Rectangle{
		Min: image.Point{X: g.margins.Left, Y: g.margins.Top},
		Max: image.Point{X: w - g.margins.Right, Y: h - g.margins.Bottom},
	}
}

// XPos maps an abscissa value to a pixel column.
func (g *Graph) XPos(v float64) int {
	r := g.Dimensions()
	a := &g.Abscissa

	return r.Min.X + pixel(float64(r.Dx())*(v-a.Reference-a.Negative.Current)/a.span())
}

// XValue maps a pixel column back to an abscissa value.
func (g *Graph) XValue(x int) float64 {
	r := g.Dimensions()
	a := &g.Abscissa

	w := math.Max(float64(r.Dx()), Epsilon)
	return a.Reference + a.Negative.Current + float64(x-r.Min.X)*(a.Positive.Current-a.Negative.Current)/w
}

// YPos maps an ordinate value to a pixel row of the active ordinate. Larger
// values map to smaller rows.
func (g *Graph) YPos(v float64) int {
	if !g.IsLinearOrdinate {
		return g.yPosDB(g.decibels(v))
	}

	r := g.Dimensions()
	o := &g.LinearOrdinate

	return r.Min.Y + r.Dy() - 1 - pixel(float64(r.Dy())*(v-o.Reference-o.Negative.Current)/o.span())
}

// YValue maps a pixel row back to a value of the active ordinate.
func (g *Graph) YValue(y int) float64 {
	r := g.Dimensions()
	h := math.Max(float64(r.Dy()), Epsilon)
	rows := float64(r.Min.Y + r.Dy() - 1 - y)

	if !g.IsLinearOrdinate {
		l := &g.LogOrdinate
		dB := l.Lower.Current + rows*(l.Upper.Current-l.Lower.Current)/h
		return math.Max(l.Reference, Epsilon) * math.Pow(10, dB/20)
	}

	o := &g.LinearOrdinate
	return o.Reference + o.Negative.Current + rows*(o.Positive.Current-o.Negative.Current)/h
}

// decibels converts a value of the log ordinate to dB over its reference.
func (g *Graph) decibels(v float64) float64 {
	ratio := v / math.Max(g.LogOrdinate.Reference, Epsilon)
	if ratio < Epsilon {
		ratio = Epsilon
	}
	return 20 * math.Log10(ratio)
}

func (g *Graph) yPosDB(dB float64) int {
	r := g.Dimensions()
	l := &g.LogOrdinate

	return r.Min.Y + r.Dy() - 1 - pixel((dB-l.Lower.Current)*float64(r.Dy())/l.span())
}

// pixel truncates towards zero like a C cast, bounded to +-maxPixel.
func pixel(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f > maxPixel:
		return maxPixel
	case f < -maxPixel:
		return -maxPixel
	}
	return int(f)
}
