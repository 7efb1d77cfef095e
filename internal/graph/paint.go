package graph

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	dpi             = 72.0
	defaultFontSize = 11.0
	tickLength      = 5
)

var (
	axisColor     = color.RGBA{A: 0xff}
	gridLineColor = color.RGBA{R: 220, G: 220, B: 220, A: 0xff}
)

// Face draws and measures axis labels.
type Face struct {
	context *freetype.Context
	face    font.Face
	ascent  int
	height  int
}

// NewFace loads the embedded Go Regular font at the given point size (0 for
// the default size).
func NewFace(size float64) (*Face, error) {
	if size <= 0 {
		size = defaultFontSize
	}

	parsedFont, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	context := freetype.NewContext()
	context.SetDPI(dpi)
	context.SetFont(parsedFont)
	context.SetFontSize(size)
	context.SetHinting(font.HintingNone)
	context.SetSrc(image.Black)

	face := truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	metrics := face.Metrics()

	return &Face{
		context: context,
		face:    face,
		ascent:  metrics.Ascent.Ceil(),
		height:  metrics.Height.Ceil(),
	}, nil
}

func (f *Face) Measure(s string) (int, int) {
	return font.MeasureString(f.face, s).Ceil(), f.height
}

// DrawString draws s with its top-left corner at (x, y).
func (f *Face) DrawString(dst *image.RGBA, s string, x, y int, c color.Color) error {
	f.context.SetClip(dst.Bounds())
	f.context.SetDst(dst)
	f.context.SetSrc(image.NewUniform(c))

	_, err := f.context.DrawString(s, freetype.Pt(x, y+f.ascent))
	return err
}

func (f *Face) Close() error {
	return f.face.Close()
}

// PaintAbscissa draws the axis line, tick marks, gridlines, labels and unit of
// the abscissa.
func (g *Graph) PaintAbscissa(dst *image.RGBA, f *Face) error {
	r := g.Dimensions()
	if r.Dx() < 1 || r.Dy() < 1 {
		return nil
	}

	axisY, dir := r.Max.Y, 1
	if !g.AbscissaAtBottom {
		axisY, dir = r.Min.Y-1, -1
	}
	HLine(dst, r.Min.X, r.Max.X-1, axisY, axisColor)

	axis := g.AbscissaTicks(f)
	for _, t := range axis.Ticks {
		if g.Abscissa.ShowGrayLines {
			VLine(dst, t.Pos, r.Min.Y, r.Max.Y-1, gridLineColor)
		}
		VLine(dst, t.Pos, axisY, axisY+dir*tickLength, axisColor)

		if !t.Labeled {
			continue
		}
		if err := f.DrawString(dst, t.Label, t.LabelPos[0], t.LabelPos[1], axisColor); err != nil {
			return fmt.Errorf("drawing label %q: %w", t.Label, err)
		}
	}

	if axis.Unit == "" {
		return nil
	}

	unitW, unitH := f.Measure(axis.Unit)
	unitY := r.Max.Y + tickLength + 1
	if !g.AbscissaAtBottom {
		unitY = r.Min.Y - tickLength - 1 - unitH
	}
	if err := f.DrawString(dst, axis.Unit, r.Max.X-unitW, unitY, axisColor); err != nil {
		return fmt.Errorf("drawing unit: %w", err)
	}
	return nil
}

// PaintOrdinate draws the active ordinate. The unit takes the top text row.
func (g *Graph) PaintOrdinate(dst *image.RGBA, f *Face) error {
	r := g.Dimensions()
	if r.Dx() < 1 || r.Dy() < 1 {
		return nil
	}

	axisX, dir := r.Min.X-1, -1
	if !g.OrdinateAtLeftSide {
		axisX, dir = r.Max.X, 1
	}
	VLine(dst, axisX, r.Min.Y, r.Max.Y-1, axisColor)

	showGrayLines := g.LinearOrdinate.ShowGrayLines
	if !g.IsLinearOrdinate {
		showGrayLines = g.LogOrdinate.ShowGrayLines
	}

	axis := g.OrdinateTicks(f)
	for _, t := range axis.Ticks {
		if showGrayLines {
			HLine(dst, r.Min.X, r.Max.X-1, t.Pos, gridLineColor)
		}
		HLine(dst, axisX, axisX+dir*tickLength, t.Pos, axisColor)

		if !t.Labeled {
			continue
		}
		if err := f.DrawString(dst, t.Label, t.LabelPos[0], t.LabelPos[1], axisColor); err != nil {
			return fmt.Errorf("drawing label %q: %w", t.Label, err)
		}
	}

	if axis.Unit == "" {
		return nil
	}

	unitW, _ := f.Measure(axis.Unit)
	unitX := axisX + dir*(tickLength+2)
	if g.OrdinateAtLeftSide {
		unitX -= unitW
	}
	if err := f.DrawString(dst, axis.Unit, unitX, r.Min.Y, axisColor); err != nil {
		return fmt.Errorf("drawing unit: %w", err)
	}
	return nil
}

// HLine draws row y from x0 to x1 inclusive, in either order.
func HLine(dst *image.RGBA, x0, x1, y int, c color.RGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		dst.SetRGBA(x, y, c)
	}
}

// VLine draws column x from y0 to y1 inclusive, in either order.
func VLine(dst *image.RGBA, x, y0, y1 int, c color.RGBA) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		dst.SetRGBA(x, y, c)
	}
}
