package spectrogram

import (
	"image"
	"image/color"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	curveEpsilon   = 0.000000001
	maxCurvePoints = 4096
)

// dot-dash pattern in pixels
var dashPattern = []float64{6, 3, 1, 3}

// Curve is a sampled parameter track (F0, voice quality, ...). A sample of
// exactly 0 marks an invalid value, e.g. an unvoiced frame.
type Curve struct {
	Samples  []float64
	TimeStep float64 // seconds between samples
	Min      float64 // value at the bottom row
	Max      float64 // value at the top row
	Color    color.RGBA
	Dashed   bool
}

// Resample returns one point per pixel column of area for the time interval
// [start, start+duration]. Columns outside the sampled range are skipped;
// a column next to an invalid sample gets the value 0.
func (c Curve) Resample(area image.Rectangle, start, duration float64) []image.Point {
	w, h := area.Dx(), area.Dy()
	diff := c.Max - c.Min
	if w < 2 || h < 2 || c.TimeStep < curveEpsilon || diff < curveEpsilon || len(c.Samples) < 2 {
		return nil
	}

	rate := 1 / c.TimeStep
	points := make([]image.Point, 0, min(w, maxCurvePoints))

	for i := 0; i < w && len(points) < maxCurvePoints; i++ {
		t := start + duration*float64(i)/float64(w-1)
		index := int(t * rate)
		if index < 0 || index >= len(c.Samples)-1 {
			continue
		}

		ratio := (t - float64(index)*c.TimeStep) * rate
		s0, s1 := c.Samples[index], c.Samples[index+1]

		value := 0.0
		if s0 != 0 && s1 != 0 {
			value = (1-ratio)*s0 + ratio*s1
		}

		y := area.Min.Y + h - 1 - int(float64(h-1)*(value-c.Min)/diff)
		y = max(min(y, area.Max.Y-1), area.Min.Y)
		points = append(points, image.Pt(area.Min.X+i, y))
	}
	return points
}

// DrawCurve strokes the resampled curve as one polyline. dst must have its
// origin at (0, 0).
func DrawCurve(dst *image.RGBA, area image.Rectangle, c Curve, start, duration float64) error {
	return Polyline(dst, c.Resample(area, start, duration), c.Color, c.Dashed)
}

// Polyline strokes connected points with a one pixel pen.
func Polyline(dst *image.RGBA, points []image.Point, col color.RGBA, dashed bool) error {
	if len(points) < 2 {
		return nil
	}

	gc, err := drawing.NewRasterGraphicContext(dst)
	if err != nil {
		return err
	}

	gc.SetStrokeColor(drawing.Color{R: col.R, G: col.G, B: col.B, A: col.A})
	gc.SetLineWidth(1)
	if dashed {
		gc.SetLineDash(dashPattern, 0)
	}

	gc.BeginPath()
	// pixel centres
	gc.MoveTo(float64(points[0].X)+0.5, float64(points[0].Y)+0.5)
	for _, p := range points[1:] {
		gc.LineTo(float64(p.X)+0.5, float64(p.Y)+0.5)
	}
	gc.Stroke()
	return nil
}
