package graph

import (
	"github.com/roman-kulish/vocal-plot/internal/quantity"
)

// Limit is one side of a domain: the value currently shown and the range the
// zoom controller may move it in.
type Limit struct {
	Min     float64
	Max     float64
	Current float64
}

func (l *Limit) normalize() {
	if l.Min > l.Max {
		l.Min, l.Max = l.Max, l.Min
	}
	l.Current = clamp(l.Current, l.Min, l.Max)
}

// LinearDomain describes a linear axis. Limits are relative to Reference.
type LinearDomain struct {
	Quantity               quantity.Index
	Reference              float64
	ScaleDivision          float64
	Negative               Limit
	Positive               Limit
	NumZoomSteps           int
	PostDecimalPositions   int
	UseCGSUnit             bool
	UseRelativeInscription bool
	ShowGrayLines          bool
}

// DefaultLinearDomain is a unit-less 0..1 axis with a 0.1 division.
func DefaultLinearDomain() LinearDomain {
	return LinearDomain{
		Quantity:               quantity.Ratio,
		Reference:              0,
		ScaleDivision:          0.1,
		Negative:               Limit{Min: 0, Max: 0, Current: 0},
		Positive:               Limit{Min: 1, Max: 1, Current: 1},
		NumZoomSteps:           10,
		PostDecimalPositions:   2,
		UseCGSUnit:             true,
		UseRelativeInscription: true,
		ShowGrayLines:          true,
	}
}

func (d *LinearDomain) normalize() {
	if d.ScaleDivision < Epsilon {
		d.ScaleDivision = Epsilon
	}
	if d.NumZoomSteps < 1 {
		d.NumZoomSteps = 1
	}
	d.PostDecimalPositions = clampInt(d.PostDecimalPositions, 0, maxDecimals)
	d.Negative.normalize()
	d.Positive.normalize()
}

// span is the shown width of the domain, floored to Epsilon.
func (d *LinearDomain) span() float64 {
	s := d.Positive.Current - d.Negative.Current
	if s < Epsilon {
		s = Epsilon
	}
	return s
}

// Unit is the unit string for the active unit system.
func (d *LinearDomain) Unit() string {
	return d.Quantity.Unit(d.UseCGSUnit)
}

// LogDomain describes a decibel axis. Levels are in dB relative to Reference.
type LogDomain struct {
	Reference     float64
	ScaleDivision float64
	Lower         Limit
	Upper         Limit
	ShowGrayLines bool
	ZoomStep      float64
}

// DefaultLogDomain spans +-20 dB around a reference of 1.
func DefaultLogDomain() LogDomain {
	return LogDomain{
		Reference:     1,
		ScaleDivision: 1,
		Lower:         Limit{Min: -20, Max: -20, Current: -20},
		Upper:         Limit{Min: 20, Max: 20, Current: 20},
		ShowGrayLines: true,
		ZoomStep:      10,
	}
}

func (d *LogDomain) normalize() {
	if d.Reference < Epsilon {
		d.Reference = Epsilon
	}
	if d.ScaleDivision < Epsilon {
		d.ScaleDivision = Epsilon
	}
	if d.ZoomStep < 0 {
		d.ZoomStep = -d.ZoomStep
	}
	d.Lower.normalize()
	d.Upper.normalize()
}

func (d *LogDomain) span() float64 {
	s := d.Upper.Current - d.Lower.Current
	if s < Epsilon {
		s = Epsilon
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
