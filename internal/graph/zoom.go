package graph

import "math"

// ZoomFactors returns the per-step multipliers of a linear domain. A side
// whose bounds cannot form a geometric series (bound at or across zero) has
// factor 1, as does a side with Min == Max.
func ZoomFactors(d LinearDomain) (negative, positive float64) {
	negative, positive = 1, 1
	steps := float64(max(d.NumZoomSteps, 1))

	if d.Negative.Max < 0 {
		negative = math.Pow(d.Negative.Min/d.Negative.Max, 1/steps)
	}
	if d.Positive.Min > 0 {
		positive = math.Pow(d.Positive.Max/d.Positive.Min, 1/steps)
	}
	return negative, positive
}

// ZoomInAbscissa narrows the selected sides of the abscissa by one step.
// Results are clamped to the bounds. It reports whether a limit moved.
func (g *Graph) ZoomInAbscissa(negative, positive bool) bool {
	return zoomClamped(&g.Abscissa, true, negative, positive)
}

// ZoomOutAbscissa widens the selected sides of the abscissa by one step.
func (g *Graph) ZoomOutAbscissa(negative, positive bool) bool {
	return zoomClamped(&g.Abscissa, false, negative, positive)
}

// ZoomInOrdinate narrows the active ordinate. On the linear ordinate a single
// side is clamped like the abscissa, while zooming both sides at once is
// applied only when both results stay inside their bounds. The log ordinate
// moves its levels by ZoomStep dB, clamped.
func (g *Graph) ZoomInOrdinate(negative, positive bool) bool {
	if !g.IsLinearOrdinate {
		return zoomLog(&g.LogOrdinate, true, negative, positive)
	}
	if negative && positive {
		return zoomJoint(&g.LinearOrdinate, true)
	}
	return zoomClamped(&g.LinearOrdinate, true, negative, positive)
}

// ZoomOutOrdinate widens the active ordinate, see ZoomInOrdinate.
func (g *Graph) ZoomOutOrdinate(negative, positive bool) bool {
	if !g.IsLinearOrdinate {
		return zoomLog(&g.LogOrdinate, false, negative, positive)
	}
	if negative && positive {
		return zoomJoint(&g.LinearOrdinate, false)
	}
	return zoomClamped(&g.LinearOrdinate, false, negative, positive)
}

// step returns the next limits without applying them. Zooming in moves the
// negative side towards its Max and the positive side towards its Min.
func step(d *LinearDomain, in bool) (neg, pos float64) {
	nf, pf := ZoomFactors(*d)
	if in {
		return d.Negative.Current / nf, d.Positive.Current / pf
	}
	return d.Negative.Current * nf, d.Positive.Current * pf
}

func zoomClamped(d *LinearDomain, in, negative, positive bool) bool {
	oldNeg, oldPos := d.Negative.Current, d.Positive.Current
	neg, pos := step(d, in)

	if negative {
		d.Negative.Current = clamp(neg, d.Negative.Min, d.Negative.Max)
	}
	if positive {
		d.Positive.Current = clamp(pos, d.Positive.Min, d.Positive.Max)
	}
	return d.Negative.Current != oldNeg || d.Positive.Current != oldPos
}

func zoomJoint(d *LinearDomain, in bool) bool {
	neg, pos := step(d, in)
	if !within(neg, d.Negative) || !within(pos, d.Positive) {
		return false
	}

	oldNeg, oldPos := d.Negative.Current, d.Positive.Current
	d.Negative.Current = clamp(neg, d.Negative.Min, d.Negative.Max)
	d.Positive.Current = clamp(pos, d.Positive.Min, d.Positive.Max)
	return d.Negative.Current != oldNeg || d.Positive.Current != oldPos
}

// within tolerates rounding of the geometric steps at the bounds.
func within(v float64, l Limit) bool {
	tol := Epsilon * math.Max(1, math.Max(math.Abs(l.Min), math.Abs(l.Max)))
	return v >= l.Min-tol && v <= l.Max+tol
}

func zoomLog(d *LogDomain, in, lower, upper bool) bool {
	oldLower, oldUpper := d.Lower.Current, d.Upper.Current
	delta := d.ZoomStep
	if !in {
		delta = -delta
	}

	if lower {
		d.Lower.Current = clamp(d.Lower.Current+delta, d.Lower.Min, d.Lower.Max)
	}
	if upper {
		d.Upper.Current = clamp(d.Upper.Current-delta, d.Upper.Min, d.Upper.Max)
	}
	return d.Lower.Current != oldLower || d.Upper.Current != oldUpper
}
