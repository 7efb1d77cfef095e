package picture

import (
	"fmt"
	"image"

	"github.com/roman-kulish/vocal-plot/internal/graph"
	"github.com/roman-kulish/vocal-plot/internal/spectrogram"
	"github.com/roman-kulish/vocal-plot/internal/targetline"
)

// hit tolerance around borders and target lines, in pixels
const hitTolerance = 4

// Gesture is one interval of a gesture row. Its target moves linearly from
// Value by Slope per second.
type Gesture struct {
	Duration float64 `yaml:"duration"`
	Value    float64 `yaml:"value"`
	Slope    float64 `yaml:"slope"`
	Neutral  bool    `yaml:"neutral"`
}

// GestureRow is one tier of the gestural score.
type GestureRow struct {
	Name     string    `yaml:"name"`
	Unit     string    `yaml:"unit"`
	Quantity string    `yaml:"quantity"` // physical quantity naming the unit when Unit is empty
	Min      float64   `yaml:"min"`
	Max      float64   `yaml:"max"`
	Gestures []Gesture `yaml:"gestures"`
}

// Hit describes what lies under a pointer position.
type Hit struct {
	Row      int
	Gesture  int
	OnBorder bool
	OnTarget bool
}

// ScorePicture draws gesture rows on a shared time axis.
type ScorePicture struct {
	Axis TimeAxis
	Rows []GestureRow
	Face *graph.Face // nil disables value labels
}

func NewScorePicture(axis TimeAxis, rows []GestureRow, face *graph.Face) *ScorePicture {
	return &ScorePicture{Axis: axis, Rows: rows, Face: face}
}

// rowRect returns the rectangle of row i; rows share the height equally.
func (p *ScorePicture) rowRect(area image.Rectangle, i int) image.Rectangle {
	h := area.Dy() / max(len(p.Rows), 1)
	top := area.Min.Y + i*h
	return image.Rect(area.Min.X, top, area.Max.X, top+h)
}

func (p *ScorePicture) row(area image.Rectangle, i int) targetline.Row {
	return targetline.Row{
		Axis: p.Axis,
		Rect: p.rowRect(area, i),
		Min:  p.Rows[i].Min,
		Max:  p.Rows[i].Max,
	}
}

// targetLine returns the clipped target line of gesture g starting at t0.
func (p *ScorePicture) targetLine(area image.Rectangle, i int, g Gesture, t0 float64) targetline.Segment {
	row := p.row(area, i)
	return targetline.Coords(row, targetline.BoundsOf(row.Rect), t0, g.Value, t0+g.Duration, g.Value+g.Duration*g.Slope)
}

func (p *ScorePicture) Draw(dst *image.RGBA, area image.Rectangle) error {
	if area.Dx() < 1 || area.Dy() < len(p.Rows) {
		return nil
	}

	for i, row := range p.Rows {
		rect := p.rowRect(area, i)
		fill(dst, rect, white)

		// boxes and target lines first, borders and labels on top
		t := 0.0
		for _, g := range row.Gestures {
			box := image.Rect(p.Axis.XPos(t), rect.Min.Y, p.Axis.XPos(t+g.Duration)+1, rect.Max.Y).Intersect(rect)
			if !g.Neutral {
				fill(dst, box, lightGray)

				s := p.targetLine(area, i, g, t)
				a, b := s.Points()
				if err := spectrogram.Polyline(dst, []image.Point{a, b}, black, true); err != nil {
					return fmt.Errorf("drawing target line: %w", err)
				}
			}
			t += g.Duration
		}

		t = 0
		for _, g := range row.Gestures {
			left, right := p.Axis.XPos(t), p.Axis.XPos(t+g.Duration)
			if left >= rect.Min.X && left < rect.Max.X {
				graph.VLine(dst, left, rect.Min.Y, rect.Max.Y-1, black)
			}

			left = max(left, rect.Min.X)
			if !g.Neutral && left < min(right, rect.Max.X) && p.Face != nil {
				if err := p.Face.DrawString(dst, p.valueLabel(row, g), left+1, rect.Min.Y+1, black); err != nil {
					return fmt.Errorf("drawing gesture value: %w", err)
				}
			}
			t += g.Duration
		}

		if x := p.Axis.XPos(t); x >= rect.Min.X && x < rect.Max.X {
			graph.VLine(dst, x, rect.Min.Y, rect.Max.Y-1, black)
		}
		graph.HLine(dst, rect.Min.X, rect.Max.X-1, rect.Max.Y-1, black)
	}
	return nil
}

func (p *ScorePicture) valueLabel(row GestureRow, g Gesture) string {
	if row.Unit == "" {
		return fmt.Sprintf("%2.2f", g.Value)
	}
	return fmt.Sprintf("%d %s", int(g.Value), row.Unit)
}

// HitTest finds the gesture under the local position (x, y). Row and
// Gesture are -1 when nothing is hit.
func (p *ScorePicture) HitTest(x, y int, area image.Rectangle) Hit {
	hit := Hit{Row: -1, Gesture: -1}
	ax, ay := area.Min.X+x, area.Min.Y+y

	for i := range p.Rows {
		rect := p.rowRect(area, i)
		if ay < rect.Min.Y || ay >= rect.Max.Y {
			continue
		}
		hit.Row = i

		t := 0.0
		for k, g := range p.Rows[i].Gestures {
			left, right := p.Axis.XPos(t), p.Axis.XPos(t+g.Duration)

			switch {
			case ax > right-hitTolerance && ax < right+hitTolerance:
				hit.Gesture, hit.OnBorder = k, true
				return hit

			case ax >= left && ax < right:
				hit.Gesture = k
				if !g.Neutral {
					targetY := p.targetLine(area, i, g, t).YAt(float64(ax))
					hit.OnTarget = float64(ay) > targetY-hitTolerance && float64(ay) < targetY+hitTolerance
				}
				return hit
			}
			t += g.Duration
		}
		return hit
	}
	return hit
}

// Handle reports time and row value under the pointer.
func (p *ScorePicture) Handle(ev Event, area image.Rectangle) Response {
	if ev.Kind != MouseMove && ev.Kind != MouseDrag {
		return Response{}
	}

	hit := p.HitTest(ev.X, ev.Y, area)
	if hit.Row < 0 {
		return Response{}
	}

	row := p.Rows[hit.Row]
	t := p.Axis.XValue(area.Min.X + ev.X)
	v := p.row(area, hit.Row).Value(area.Min.Y + ev.Y)

	tooltip := fmt.Sprintf("%s: %2.3f s, %.2f %s", row.Name, t, v, row.Unit)
	switch {
	case hit.OnBorder:
		tooltip += " (border)"
	case hit.OnTarget:
		tooltip += " (target)"
	}
	return Response{Tooltip: tooltip}
}
