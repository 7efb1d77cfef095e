package app

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/dustin/go-humanize"

	"github.com/roman-kulish/vocal-plot/internal/graph"
	"github.com/roman-kulish/vocal-plot/internal/picture"
	"github.com/roman-kulish/vocal-plot/internal/quantity"
	"github.com/roman-kulish/vocal-plot/internal/spectrogram"
)

const (
	minWidth  = 200
	minHeight = 150

	fontSize       = 11.0
	scoreRowHeight = 40
	infoLineCount  = 3

	// Default border sizes in pixels
	defaultTopBorder    = 10
	defaultLeftBorder   = 70
	defaultRightBorder  = 20
	defaultAxisBorder   = 30 // time scale below the spectrogram
	defaultScoreSpacing = 10
	defaultInfoPadding  = 6

	timeDivision      = 0.001
	frequencyDivision = 100.0
)

var errTooSmall = errors.New("image too small for the requested layout")

// BorderConfig defines the sizes of white space around the spectrogram
type BorderConfig struct {
	Top    int
	Left   int
	Right  int
	Axis   int // Space for the time scale
	Bottom int // Space for the information bar
}

// Renderer lays out the pictures of one session on a canvas.
type Renderer struct {
	Session *picture.Session
	Plot    *spectrogram.Plot
	Graph   *graph.Graph
	Face    *graph.Face
	Score   []picture.GestureRow

	Annotate bool
	Borders  BorderConfig
	Info     []string
}

// NewRenderer builds the time and frequency graph for the session view.
// face may be nil when annotations are disabled.
func NewRenderer(s *picture.Session, plot *spectrogram.Plot, face *graph.Face, useCGS bool) *Renderer {
	start, end := s.TimeRange()
	trackEnd := float64(s.Track.Signal.Len()) / float64(s.SampleRate())

	g := graph.New()

	t := graph.DefaultLinearDomain()
	t.Quantity = quantity.Time
	t.Reference = start
	t.ScaleDivision = timeDivision
	t.PostDecimalPositions = 3
	t.UseCGSUnit = useCGS
	t.UseRelativeInscription = false
	t.ShowGrayLines = false
	t.Positive = graph.Limit{Min: timeDivision, Max: max(end-start, trackEnd), Current: end - start}
	g.InitAbscissa(t)

	f := graph.DefaultLinearDomain()
	f.Quantity = quantity.Frequency
	f.ScaleDivision = frequencyDivision
	f.PostDecimalPositions = 0
	f.UseCGSUnit = useCGS
	f.UseRelativeInscription = false
	f.ShowGrayLines = false
	f.Positive = graph.Limit{Min: f.ScaleDivision, Max: plot.ViewRangeHz, Current: plot.ViewRangeHz}
	g.InitLinearOrdinate(f)

	r := &Renderer{
		Session:  s,
		Plot:     plot,
		Graph:    g,
		Face:     face,
		Annotate: face != nil,
		Borders: BorderConfig{
			Top:   defaultTopBorder,
			Left:  defaultLeftBorder,
			Right: defaultRightBorder,
			Axis:  defaultAxisBorder,
		},
	}
	if !r.Annotate {
		r.Borders = BorderConfig{}
		s.ShowText = false
	}
	return r
}

// Layout splits the canvas into spectrogram, axes and score areas. The
// areas of the axis picture and the spectrogram coincide.
func (r *Renderer) Layout(canvas image.Rectangle) ([]picture.Layout, error) {
	b := r.Borders
	if r.Annotate && len(r.Info) > 0 {
		_, lineHeight := r.Face.Measure("Mg")
		b.Bottom = len(r.Info)*lineHeight + 2*defaultInfoPadding
	}

	scoreHeight := len(r.Score) * scoreRowHeight
	if scoreHeight > 0 {
		scoreHeight += defaultScoreSpacing
	}

	spec := image.Rect(
		canvas.Min.X+b.Left,
		canvas.Min.Y+b.Top,
		canvas.Max.X-b.Right,
		canvas.Max.Y-b.Bottom-scoreHeight-b.Axis,
	)
	if spec.Dx() < 1 || spec.Dy() < 1 {
		return nil, fmt.Errorf("%w: %dx%d", errTooSmall, canvas.Dx(), canvas.Dy())
	}

	axis := picture.NewAxisPicture(r.Graph, r.Face, true, true)
	// the score maps time through the graph even without annotations
	axis.Bind(canvas, spec)

	layouts := []picture.Layout{
		{Picture: picture.NewSpectrogramPicture(r.Session, r.Plot, r.Face), Area: spec},
	}
	if r.Annotate {
		layouts = append(layouts, picture.Layout{Picture: axis, Area: spec})
	}
	if len(r.Score) > 0 {
		top := spec.Max.Y + b.Axis + defaultScoreSpacing
		layouts = append(layouts, picture.Layout{
			Picture: picture.NewScorePicture(r.Graph, r.Score, r.Face),
			Area:    image.Rect(spec.Min.X, top, spec.Max.X, top+len(r.Score)*scoreRowHeight),
		})
	}
	return layouts, nil
}

// Render draws all pictures and the information bar onto a new image.
func (r *Renderer) Render(width, height int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	layouts, err := r.Layout(img.Bounds())
	if err != nil {
		return nil, err
	}
	if err = picture.DrawAll(img, layouts); err != nil {
		return nil, fmt.Errorf("drawing pictures: %w", err)
	}

	if r.Annotate {
		if err = r.drawInfo(img); err != nil {
			return nil, fmt.Errorf("drawing info: %w", err)
		}
	}
	return img, nil
}

func (r *Renderer) drawInfo(img *image.RGBA) error {
	_, lineHeight := r.Face.Measure("Mg")
	y := img.Bounds().Max.Y - len(r.Info)*lineHeight - defaultInfoPadding
	for _, line := range r.Info {
		if err := r.Face.DrawString(img, line, r.Borders.Left, y, color.Black); err != nil {
			return err
		}
		y += lineHeight
	}
	return nil
}

// InfoLines describes the track and the analysis settings.
func InfoLines(name string, s *picture.Session, plot *spectrogram.Plot) []string {
	start, end := s.TimeRange()
	samples := s.Track.Signal.Len()

	lines := make([]string, 0, infoLineCount)
	lines = append(lines,
		fmt.Sprintf("%s: %s samples at %s, %d bit, %s",
			name,
			humanize.Comma(int64(samples)),
			humanize.SIWithDigits(float64(s.SampleRate()), 1, "Hz"),
			s.Track.BitDepth,
			s.Track.Duration()),
		fmt.Sprintf("Window: %d samples, frame 2^%d, %s range, %.0f dB dynamic range",
			plot.WindowLength,
			plot.FrameLengthExponent,
			humanize.SIWithDigits(plot.ViewRangeHz, 1, "Hz"),
			plot.DynamicRangeDB),
		fmt.Sprintf("View: %.3f s to %.3f s, mark at %.3f s",
			start, end, float64(s.Mark)/float64(s.SampleRate())),
	)
	return lines
}
