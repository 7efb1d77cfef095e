package graph

import (
	"fmt"
	"math"
)

const (
	maxDecimals = 4

	// spacing between labels relative to their extent
	labelSpacing = 1.5

	// gap between the last tick label and the unit label
	unitGap = 8
)

// divisionLadder holds the "nice" multipliers applied to the scale division
// when the standard division would crowd the axis.
var divisionLadder = []int{2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000, 50000}

// Measurer reports the pixel extent of a label.
type Measurer interface {
	Measure(s string) (width, height int)
}

// FixedMeasurer treats every character as a CharWidth x CharHeight cell.
type FixedMeasurer struct {
	CharWidth  int
	CharHeight int
}

func (m FixedMeasurer) Measure(s string) (int, int) {
	return len([]rune(s)) * m.CharWidth, m.CharHeight
}

// Tick is one scale mark. LabelPos is the top-left corner of the label.
type Tick struct {
	Pos      int
	Value    float64
	Label    string
	Labeled  bool
	LabelPos [2]int
}

// Axis is the result of tick selection for one axis.
type Axis struct {
	Ticks    []Tick
	Unit     string
	Division float64
}

// divisionFactor picks the smallest ladder entry that brings the number of
// divisions down to maxAllowed. It returns 1 when no reduction is needed.
func divisionFactor(numStandard, maxAllowed int) int {
	if maxAllowed < 1 {
		maxAllowed = 1
	}
	if numStandard <= maxAllowed {
		return 1
	}

	minFactor := numStandard/maxAllowed + 1
	for _, f := range divisionLadder {
		if f >= minFactor {
			return f
		}
	}
	return minFactor
}

// tickRange returns the first and last tick index covering [lo, hi].
func tickRange(lo, hi, division float64) (first, last int) {
	first = int(lo / division)
	last = int(hi/division) + 1
	if first > last {
		first = last
	}
	return first, last
}

func formatValue(v float64, decimals int) string {
	return fmt.Sprintf("%2.*f", clampInt(decimals, 0, maxDecimals), v)
}

// AbscissaTicks selects and labels the ticks of the abscissa.
func (g *Graph) AbscissaTicks(m Measurer) Axis {
	a := &g.Abscissa
	r := g.Dimensions()
	charW, charH := m.Measure("0")
	factor := a.Quantity.DisplayFactor(a.UseCGSUnit)
	decimals := clampInt(a.PostDecimalPositions, 0, maxDecimals)

	lo, hi := a.Negative.Current, a.Positive.Current
	if !a.UseRelativeInscription {
		lo += a.Reference
		hi += a.Reference
	}

	chars := max(len(fmt.Sprintf("%d", int(lo*factor))), len(fmt.Sprintf("%d", int(hi*factor)))) + 1 + decimals
	labelLen := labelSpacing * float64(chars*charW)
	maxAllowed := max(int(float64(r.Dx())/math.Max(labelLen, 1)), 1)

	division := math.Max(a.ScaleDivision, Epsilon)
	division *= float64(divisionFactor(int(a.span()/division), maxAllowed))

	axis := Axis{Unit: a.Unit(), Division: division}
	unitW, _ := m.Measure(axis.Unit)
	unitLen := unitW + 10
	labelY := r.Max.Y + tickLength + 1
	if !g.AbscissaAtBottom {
		labelY = r.Min.Y - tickLength - 1 - charH
	}

	first, last := tickRange(lo, hi, division)
	for i := first; i <= last; i++ {
		v := float64(i) * division
		x := g.XPos(v)
		if a.UseRelativeInscription {
			x = g.XPos(v + a.Reference)
		}
		if x < r.Min.X || x >= r.Max.X {
			continue
		}

		t := Tick{Pos: x, Value: v, Label: formatValue(v*factor, decimals)}
		strW, _ := m.Measure(t.Label)
		left := max(x-strW/2, r.Min.X)
		t.LabelPos = [2]int{left, labelY}
		t.Labeled = x < r.Max.X-unitLen && left+strW/2 < r.Max.X-1-unitLen-unitGap
		axis.Ticks = append(axis.Ticks, t)
	}
	return axis
}

// OrdinateTicks selects and labels the ticks of the active ordinate.
func (g *Graph) OrdinateTicks(m Measurer) Axis {
	if !g.IsLinearOrdinate {
		return g.logOrdinateTicks(m)
	}

	o := &g.LinearOrdinate
	r := g.Dimensions()
	_, charH := m.Measure("0")
	factor := o.Quantity.DisplayFactor(o.UseCGSUnit)
	decimals := clampInt(o.PostDecimalPositions, 0, maxDecimals)

	maxAllowed := max(int(float64(r.Dy())/(labelSpacing*float64(max(charH, 1)))), 1)
	division := math.Max(o.ScaleDivision, Epsilon)
	division *= float64(divisionFactor(int(o.span()/division), maxAllowed))

	lo, hi := o.Negative.Current, o.Positive.Current
	if !o.UseRelativeInscription {
		lo += o.Reference
		hi += o.Reference
	}

	axis := Axis{Unit: o.Unit(), Division: division}
	first, last := tickRange(lo, hi, division)
	for i := first; i <= last; i++ {
		v := float64(i) * division
		y := g.YPos(v)
		if o.UseRelativeInscription {
			y = g.YPos(v + o.Reference)
		}
		if y < r.Min.Y || y >= r.Max.Y {
			continue
		}
		axis.Ticks = append(axis.Ticks, g.ordinateTick(m, r.Min.Y, r.Max.Y, y, v, formatValue(v*factor, decimals)))
	}
	return axis
}

func (g *Graph) logOrdinateTicks(m Measurer) Axis {
	l := &g.LogOrdinate
	r := g.Dimensions()
	_, charH := m.Measure("0")

	maxAllowed := max(int(float64(r.Dy())/(labelSpacing*float64(max(charH, 1)))), 1)
	division := math.Max(l.ScaleDivision, Epsilon)
	division *= float64(divisionFactor(int(l.span()/division), maxAllowed))

	axis := Axis{Unit: "dB", Division: division}
	first, last := tickRange(l.Lower.Current, l.Upper.Current, division)
	for i := first; i <= last; i++ {
		dB := float64(i) * division
		y := g.yPosDB(dB)
		if y < r.Min.Y || y >= r.Max.Y {
			continue
		}
		axis.Ticks = append(axis.Ticks, g.ordinateTick(m, r.Min.Y, r.Max.Y, y, dB, fmt.Sprintf("%d", int(math.Round(dB)))))
	}
	return axis
}

// ordinateTick places a label centred on its row; the top text row is kept
// free for the unit.
func (g *Graph) ordinateTick(m Measurer, top, bottom, y int, v float64, label string) Tick {
	r := g.Dimensions()
	strW, charH := m.Measure(label)

	labelY := clampInt(y-charH/2, top, max(bottom-charH, top))
	labelX := r.Min.X - tickLength - 2 - strW
	if !g.OrdinateAtLeftSide {
		labelX = r.Max.X + tickLength + 2
	}

	return Tick{
		Pos:      y,
		Value:    v,
		Label:    label,
		Labeled:  y >= top+charH,
		LabelPos: [2]int{labelX, labelY},
	}
}
