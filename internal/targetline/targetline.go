// Package targetline clips articulatory target lines to the pixel rectangle
// of their score row.
package targetline

import (
	"image"
	"math"
)

const epsilon = 0.000001

// Mapper converts a (time, value) pair into pixel coordinates.
type Mapper interface {
	XPos(t float64) int
	YPos(v float64) int
}

// XMapper converts time into a pixel column. It is the accessor a score row
// queries on the shared time axis.
type XMapper interface {
	XPos(t float64) int
}

// Bounds are inclusive pixel borders.
type Bounds struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// BoundsOf turns a rectangle into inclusive borders.
func BoundsOf(r image.Rectangle) Bounds {
	return Bounds{
		Left:   float64(r.Min.X),
		Right:  float64(r.Max.X - 1),
		Top:    float64(r.Min.Y),
		Bottom: float64(r.Max.Y - 1),
	}
}

type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Row maps values of one score row linearly between Min (bottom border) and
// Max (top border), and time through the shared axis.
type Row struct {
	Axis XMapper
	Rect image.Rectangle
	Min  float64
	Max  float64
}

func (r Row) XPos(t float64) int {
	return r.Axis.XPos(t)
}

func (r Row) YPos(v float64) int {
	d := r.Max - r.Min
	if math.Abs(d) < epsilon {
		d = epsilon
	}
	h := r.Rect.Dy()
	return r.Rect.Min.Y + h - 1 - int((v-r.Min)*float64(h)/d)
}

// Value is the inverse of YPos.
func (r Row) Value(y int) float64 {
	h := math.Max(float64(r.Rect.Dy()), epsilon)
	return r.Min + float64(r.Rect.Min.Y+r.Rect.Dy()-1-y)*(r.Max-r.Min)/h
}

// Coords maps the line from (t0, v0) to (t1, v1) and clips it to b.
func Coords(m Mapper, b Bounds, t0, v0, t1, v1 float64) Segment {
	s := Segment{
		X0: float64(m.XPos(t0)),
		Y0: float64(m.YPos(v0)),
		X1: float64(m.XPos(t1)),
		Y1: float64(m.YPos(v1)),
	}
	return Clip(s, b)
}

// Clip restricts s to b. The result has X0 <= X1; its y order is whatever
// the line direction gives. A segment entirely above or below b collapses
// onto the nearest border.
func Clip(s Segment, b Bounds) Segment {
	if s.X0 > s.X1 {
		s = s.swap()
	}
	s = clipVertical(clipX(s, b), b)

	if s.X0 > s.X1 {
		s = s.swap()
	}
	return s
}

// clipVertical orders s top to bottom and clips it against the top and
// bottom borders. The result always has Y0 <= Y1.
func clipVertical(s Segment, b Bounds) Segment {
	if s.Y0 > s.Y1 {
		s = s.swap()
	}

	switch {
	case s.Y1 < b.Top:
		s.Y0, s.Y1 = b.Top, b.Top
	case s.Y0 > b.Bottom:
		s.Y0, s.Y1 = b.Bottom, b.Bottom
	}
	return clipY(s, b)
}

// clipX expects X0 <= X1, as produced by a time-ordered mapping.
func clipX(s Segment, b Bounds) Segment {
	if s.X0 < b.Left {
		s.Y0 += (s.Y1 - s.Y0) * (b.Left - s.X0) / floor(s.X1-s.X0)
		s.X0 = b.Left
	}
	if s.X1 > b.Right {
		s.Y1 -= (s.Y1 - s.Y0) * (s.X1 - b.Right) / floor(s.X1-s.X0)
		s.X1 = b.Right
	}
	return s
}

// clipY expects Y0 <= Y1.
func clipY(s Segment, b Bounds) Segment {
	if s.Y0 < b.Top {
		s.X0 += (s.X1 - s.X0) * (b.Top - s.Y0) / floor(s.Y1-s.Y0)
		s.Y0 = b.Top
	}
	if s.Y1 > b.Bottom {
		s.X1 -= (s.X1 - s.X0) * (s.Y1 - b.Bottom) / floor(s.Y1-s.Y0)
		s.Y1 = b.Bottom
	}
	return s
}

func (s Segment) swap() Segment {
	return Segment{X0: s.X1, Y0: s.Y1, X1: s.X0, Y1: s.Y0}
}

// YAt returns the row of the segment at column x.
func (s Segment) YAt(x float64) float64 {
	return s.Y0 + (s.Y1-s.Y0)*(x-s.X0)/floor(s.X1-s.X0)
}

// Points returns the rounded end points.
func (s Segment) Points() (image.Point, image.Point) {
	return image.Pt(int(math.Round(s.X0)), int(math.Round(s.Y0))),
		image.Pt(int(math.Round(s.X1)), int(math.Round(s.Y1)))
}

func floor(d float64) float64 {
	if d < epsilon {
		return epsilon
	}
	return d
}
