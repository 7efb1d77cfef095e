package picture

import (
	"fmt"
	"image"

	"github.com/roman-kulish/vocal-plot/internal/graph"
)

// AxisPicture paints the scales of a graph around a plot area and applies
// zoom requests to it. Area is the plot area; labels go into the
// surrounding margins of the canvas.
type AxisPicture struct {
	Graph    *graph.Graph
	Face     *graph.Face
	Abscissa bool
	Ordinate bool

	canvas image.Rectangle
}

func NewAxisPicture(g *graph.Graph, face *graph.Face, abscissa, ordinate bool) *AxisPicture {
	return &AxisPicture{Graph: g, Face: face, Abscissa: abscissa, Ordinate: ordinate}
}

// Bind makes area of the canvas dst the plot rectangle of the graph.
func (p *AxisPicture) Bind(dst image.Rectangle, area image.Rectangle) {
	p.canvas = dst
	size := dst.Size()
	p.Graph.Init(graph.FixedSize(size), graph.Margins{
		Left:   area.Min.X - dst.Min.X,
		Right:  dst.Max.X - area.Max.X,
		Top:    area.Min.Y - dst.Min.Y,
		Bottom: dst.Max.Y - area.Max.Y,
	})
}

func (p *AxisPicture) Draw(dst *image.RGBA, area image.Rectangle) error {
	p.Bind(dst.Bounds(), area)

	if p.Abscissa {
		if err := p.Graph.PaintAbscissa(dst, p.Face); err != nil {
			return fmt.Errorf("painting abscissa: %w", err)
		}
	}
	if p.Ordinate {
		if err := p.Graph.PaintOrdinate(dst, p.Face); err != nil {
			return fmt.Errorf("painting ordinate: %w", err)
		}
	}
	return nil
}

// Handle zooms the enabled axes and reports the value under the pointer.
func (p *AxisPicture) Handle(ev Event, area image.Rectangle) Response {
	var r Response
	x, y := area.Min.X+ev.X, area.Min.Y+ev.Y

	canvas := p.canvas
	if canvas.Empty() {
		canvas = image.Rectangle{Max: area.Max}
	}
	p.Bind(canvas, area)

	switch ev.Kind {
	case ZoomIn:
		if p.Abscissa {
			r.Refresh = p.Graph.ZoomInAbscissa(ev.Negative, ev.Positive) || r.Refresh
		}
		if p.Ordinate {
			r.Refresh = p.Graph.ZoomInOrdinate(ev.Negative, ev.Positive) || r.Refresh
		}

	case ZoomOut:
		if p.Abscissa {
			r.Refresh = p.Graph.ZoomOutAbscissa(ev.Negative, ev.Positive) || r.Refresh
		}
		if p.Ordinate {
			r.Refresh = p.Graph.ZoomOutOrdinate(ev.Negative, ev.Positive) || r.Refresh
		}

	case MouseMove, MouseDrag:
		switch {
		case p.Abscissa && p.Ordinate:
			r.Tooltip = fmt.Sprintf("%.3f %s, %.3f %s",
				p.displayX(p.Graph.XValue(x)), p.Graph.Abscissa.Unit(),
				p.displayY(p.Graph.YValue(y)), p.ordinateUnit())
		case p.Abscissa:
			r.Tooltip = fmt.Sprintf("%.3f %s", p.displayX(p.Graph.XValue(x)), p.Graph.Abscissa.Unit())
		case p.Ordinate:
			r.Tooltip = fmt.Sprintf("%.3f %s", p.displayY(p.Graph.YValue(y)), p.ordinateUnit())
		}
	}
	return r
}

func (p *AxisPicture) displayX(v float64) float64 {
	a := p.Graph.Abscissa
	return v * a.Quantity.DisplayFactor(a.UseCGSUnit)
}

func (p *AxisPicture) displayY(v float64) float64 {
	if !p.Graph.IsLinearOrdinate {
		return v
	}
	o := p.Graph.LinearOrdinate
	return v * o.Quantity.DisplayFactor(o.UseCGSUnit)
}

func (p *AxisPicture) ordinateUnit() string {
	if !p.Graph.IsLinearOrdinate {
		return ""
	}
	return p.Graph.LinearOrdinate.Unit()
}
