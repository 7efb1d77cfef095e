package picture

import (
	"fmt"
	"image"
	"image/color"

	"github.com/roman-kulish/vocal-plot/internal/graph"
	"github.com/roman-kulish/vocal-plot/internal/spectrogram"
)

var (
	black     = color.RGBA{A: 255}
	white     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	darkGray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	lightGray = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// SpectrogramPicture shows the spectrogram of the session track with the
// F0 and voice quality curves, the mark and an optional text overlay.
type SpectrogramPicture struct {
	Session *Session
	Plot    *spectrogram.Plot
	Face    *graph.Face // nil disables the text overlay
}

func NewSpectrogramPicture(s *Session, plot *spectrogram.Plot, face *graph.Face) *SpectrogramPicture {
	return &SpectrogramPicture{Session: s, Plot: plot, Face: face}
}

func (p *SpectrogramPicture) Draw(dst *image.RGBA, area image.Rectangle) error {
	w, h := area.Dx(), area.Dy()
	if w < 1 || h < 1 {
		return nil
	}

	s := p.Session
	first, num := s.View()
	start, end := s.TimeRange()

	// time before the first sample is not analysed
	zeroX := w/2 - s.CenterPos*w/num
	switch {
	case zeroX < 0:
		p.Plot.Draw(dst, area, s.Track.Signal, first, num)
	case zeroX < w-1:
		fill(dst, image.Rect(area.Min.X, area.Min.Y, area.Min.X+zeroX, area.Max.Y), darkGray)
		p.Plot.Draw(dst, image.Rect(area.Min.X+zeroX, area.Min.Y, area.Max.X, area.Max.Y), s.Track.Signal, 0, first+num)
	default:
		fill(dst, area, darkGray)
	}

	if s.ShowF0 {
		if err := spectrogram.DrawCurve(dst, area, s.F0, start, end-start); err != nil {
			return fmt.Errorf("drawing F0 curve: %w", err)
		}
	}
	if s.ShowVoiceQuality {
		if err := spectrogram.DrawCurve(dst, area, s.VoiceQuality, start, end-start); err != nil {
			return fmt.Errorf("drawing voice quality curve: %w", err)
		}
	}

	if markX := (s.Mark - first) * w / num; markX >= 0 && markX < w {
		graph.VLine(dst, area.Min.X+markX, area.Min.Y, area.Max.Y-1, black)
	}

	if s.ShowText && p.Face != nil {
		return p.drawText(dst, area, start, end)
	}
	return nil
}

func (p *SpectrogramPicture) drawText(dst *image.RGBA, area image.Rectangle, start, end float64) error {
	w := area.Dx()
	labels := []struct {
		text string
		x    func(width int) int
		top  bool
	}{
		{fmt.Sprintf("%d Hz   %2.3f s", int(p.Plot.ViewRangeHz), start), func(int) int { return 0 }, true},
		{fmt.Sprintf("%2.3f s", end), func(width int) int { return w - 1 - width }, true},
		{fmt.Sprintf("View range: %2.3f s", end-start), func(width int) int { return w/2 - width/2 }, true},
		{"0 Hz", func(int) int { return 0 }, false},
	}

	for _, l := range labels {
		width, height := p.Face.Measure(l.text)
		x := area.Min.X + l.x(width)
		y := area.Min.Y
		if !l.top {
			y = area.Max.Y - height
		}

		fill(dst, image.Rect(x, y, x+width, y+height).Intersect(area), white)
		if err := p.Face.DrawString(dst, l.text, x, y, black); err != nil {
			return fmt.Errorf("drawing %q: %w", l.text, err)
		}
	}
	return nil
}

// Tooltip formats time and frequency under the local position (x, y).
func (p *SpectrogramPicture) Tooltip(x, y int, area image.Rectangle) string {
	w, h := max(area.Dx(), 1), max(area.Dy(), 1)
	start, end := p.Session.TimeRange()

	t := start + (end-start)*float64(x)/float64(w)
	hz := int(float64(h-1-y) * p.Plot.ViewRangeHz / float64(h))
	return fmt.Sprintf("%2.3f s, %d Hz", t, hz)
}

// Handle shows the tooltip on pointer motion and moves the mark on button
// down or drag.
func (p *SpectrogramPicture) Handle(ev Event, area image.Rectangle) Response {
	var r Response

	if ev.Kind == MouseMove || ev.Kind == MouseDrag {
		r.Tooltip = p.Tooltip(ev.X, ev.Y, area)
	}

	if ev.Kind == ButtonDown || ev.Kind == MouseDrag {
		first, num := p.Session.View()
		p.Session.SetMark(first + num*ev.X/max(area.Dx(), 1))
		r.Refresh = true
	}
	return r
}
