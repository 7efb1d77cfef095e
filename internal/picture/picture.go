// Package picture composes the plots into the pictures of the workbench and
// dispatches input to them.
//
// Pictures form a closed set: SpectrogramPicture, AxisPicture and
// ScorePicture. Each draws into a rectangle of a shared canvas and answers
// input events synchronously. Event coordinates are local to that rectangle.
package picture

import (
	"image"
	"image/color"
	"image/draw"
)

// Renderer draws a picture into area of dst.
type Renderer interface {
	Draw(dst *image.RGBA, area image.Rectangle) error
}

// Handler answers an input event on a picture placed at area.
type Handler interface {
	Handle(ev Event, area image.Rectangle) Response
}

// Picture is a drawable, interactive widget.
type Picture interface {
	Renderer
	Handler
}

// TimeAxis is the accessor pictures use to share a time mapping without
// holding on to another picture's graph.
type TimeAxis interface {
	XPos(t float64) int
	XValue(x int) float64
}

type EventKind int

const (
	MouseMove EventKind = iota
	MouseDrag
	ButtonDown
	ZoomIn
	ZoomOut
)

func (k EventKind) String() string {
	switch k {
	case MouseMove:
		return "move"
	case MouseDrag:
		return "drag"
	case ButtonDown:
		return "button down"
	case ZoomIn:
		return "zoom in"
	case ZoomOut:
		return "zoom out"
	}
	return "unknown"
}

// Event is a pointer or zoom request. For zoom events Negative and Positive
// select the sides of the domain.
type Event struct {
	Kind     EventKind
	X, Y     int
	Negative bool
	Positive bool
}

// Response tells the caller what changed.
type Response struct {
	Tooltip string
	Refresh bool
}

// Layout places a picture on the canvas.
type Layout struct {
	Picture Picture
	Area    image.Rectangle
}

// Dispatch hands an event in canvas coordinates to the first picture whose
// area contains it and translates the coordinates.
func Dispatch(layouts []Layout, ev Event) Response {
	p := image.Pt(ev.X, ev.Y)
	for _, l := range layouts {
		if !p.In(l.Area) {
			continue
		}
		ev.X -= l.Area.Min.X
		ev.Y -= l.Area.Min.Y
		return l.Picture.Handle(ev, l.Area)
	}
	return Response{}
}

// DrawAll renders every picture in order.
func DrawAll(dst *image.RGBA, layouts []Layout) error {
	for _, l := range layouts {
		if err := l.Picture.Draw(dst, l.Area); err != nil {
			return err
		}
	}
	return nil
}

func fill(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}
