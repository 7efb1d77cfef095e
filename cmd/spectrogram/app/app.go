package app

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/roman-kulish/vocal-plot/internal/graph"
	"github.com/roman-kulish/vocal-plot/internal/picture"
	"github.com/roman-kulish/vocal-plot/internal/signal"
	"github.com/roman-kulish/vocal-plot/internal/spectrogram"
)

func Run(ctx context.Context, config *Config, logger *slog.Logger) error {
	info, err := os.Stat(config.InputFile)
	if err != nil {
		return fmt.Errorf("input file '%s': %w", config.InputFile, err)
	}

	logger.Info("loading track",
		slog.String("file", config.InputFile),
		slog.String("size", humanize.Bytes(uint64(info.Size()))))

	track, err := signal.LoadWAV(config.InputFile)
	if err != nil {
		return fmt.Errorf("loading track: %w", err)
	}

	logger.Info("finished loading track",
		slog.Group("track",
			slog.String("samples", humanize.Comma(int64(track.Signal.Len()))),
			slog.String("sampleRate", humanize.SIWithDigits(float64(track.SampleRate), 1, "Hz")),
			slog.Int("channels", track.Channels),
			slog.Int("bitDepth", track.BitDepth),
			slog.Duration("duration", track.Duration()),
		))

	if err = ctx.Err(); err != nil {
		return err
	}

	renderer, err := NewSessionRenderer(track, config)
	if err != nil {
		return err
	}
	if renderer.Face != nil {
		defer renderer.Face.Close()
	}

	s := config.Settings
	first, num := renderer.Session.View()
	logger.Debug("analysis settings",
		slog.Group("spectrogram",
			slog.Int("windowLength", renderer.Plot.WindowLength),
			slog.Int("frameLengthExponent", renderer.Plot.FrameLengthExponent),
			slog.Float64("viewRangeHz", renderer.Plot.ViewRangeHz),
			slog.Float64("dynamicRangeDB", renderer.Plot.DynamicRangeDB),
			slog.Int("firstSample", first),
			slog.Int("numSamples", num),
		))

	logger.Info("rendering spectrogram",
		slog.Group("image",
			slog.String("destination", config.OutputFile),
			slog.String("format", string(config.Format)),
			slog.String("theme", s.Theme),
			slog.Int("width", s.Image.Width),
			slog.Int("height", s.Image.Height),
			slog.Int("scoreRows", len(s.Score)),
		))

	img, err := renderer.Render(s.Image.Width, s.Image.Height)
	if err != nil {
		return fmt.Errorf("rendering spectrogram: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	out, err := os.Create(config.OutputFile)
	if err != nil {
		return err
	}
	defer out.Close()

	if err = Encode(out, img, config.Format); err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}
	return out.Close()
}

// NewSessionRenderer applies the settings to a fresh session on track.
func NewSessionRenderer(track *signal.Track, config *Config) (*Renderer, error) {
	s := config.Settings

	analysis := s.Spectrogram.WithDefaults(track.SampleRate)
	if err := analysis.Validate(); err != nil {
		return nil, fmt.Errorf("invalid spectrogram settings: %w", err)
	}

	theme, err := spectrogram.ParseTheme(s.Theme)
	if err != nil {
		return nil, err
	}

	plot := spectrogram.NewPlot(track.SampleRate, analysis)
	plot.Palette = spectrogram.NewPalette(theme)

	session := picture.NewSession(track)
	if s.View.Start != nil || s.View.Duration != nil {
		start, end := session.TimeRange()
		duration := end - start
		if s.View.Start != nil {
			start = *s.View.Start
		}
		if s.View.Duration != nil {
			duration = *s.View.Duration
		}
		session.SetView(start, duration)
	}
	if s.View.Mark != nil {
		session.SetMark(int(*s.View.Mark * float64(session.SampleRate())))
	}
	applyContour(&session.F0, s.F0)
	applyContour(&session.VoiceQuality, s.VoiceQuality)
	session.ShowF0 = s.F0 != nil
	session.ShowVoiceQuality = s.VoiceQuality != nil

	rows, err := s.ScoreRows()
	if err != nil {
		return nil, err
	}

	var face *graph.Face
	if !config.NoAnnotations {
		if face, err = graph.NewFace(fontSize); err != nil {
			return nil, fmt.Errorf("creating font face: %w", err)
		}
	}

	r := NewRenderer(session, plot, face, s.UseCGSUnits)
	r.Score = rows
	if r.Annotate {
		r.Info = InfoLines(filepath.Base(config.InputFile), session, plot)
	}
	return r, nil
}

func applyContour(c *spectrogram.Curve, s *ContourSettings) {
	if s == nil {
		return
	}
	c.Samples = s.Samples
	c.TimeStep = s.TimeStep
	c.Dashed = s.Dashed
	if s.Min != nil {
		c.Min = *s.Min
	}
	if s.Max != nil {
		c.Max = *s.Max
	}
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format ImageFormat) error {
	switch format {
	case ImagePNG:
		return png.Encode(w, img)

	case ImageJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{
			Quality: 98,
		})
	}
	return fmt.Errorf("unsupported image format: %s", format)
}
