package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roman-kulish/vocal-plot/internal/picture"
	"github.com/roman-kulish/vocal-plot/internal/quantity"
	"github.com/roman-kulish/vocal-plot/internal/spectrogram"
)

// Settings represents the project file
type Settings struct {
	LogLevel     string               `yaml:"logLevel"`
	Theme        string               `yaml:"theme"`
	UseCGSUnits  bool                 `yaml:"useCgsUnits"`
	Image        ImageSettings        `yaml:"image"`
	Spectrogram  spectrogram.Config   `yaml:"spectrogram"`
	View         ViewSettings         `yaml:"view"`
	F0           *ContourSettings     `yaml:"f0"`
	VoiceQuality *ContourSettings     `yaml:"voiceQuality"`
	Score        []picture.GestureRow `yaml:"score"`
}

// ImageSettings represents the output image size
type ImageSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ViewSettings represents the visible time window, all in seconds
type ViewSettings struct {
	Start    *float64 `yaml:"start"`
	Duration *float64 `yaml:"duration"`
	Mark     *float64 `yaml:"mark"`
}

// ContourSettings represents a sampled parameter curve
type ContourSettings struct {
	TimeStep float64   `yaml:"timeStep"`
	Samples  []float64 `yaml:"samples"`
	Min      *float64  `yaml:"min"`
	Max      *float64  `yaml:"max"`
	Dashed   bool      `yaml:"dashed"`
}

func NewSettings() *Settings {
	return &Settings{
		LogLevel:    "info",
		Theme:       string(spectrogram.GrayscaleTheme),
		UseCGSUnits: true,
		Image: ImageSettings{
			Width:  defaultWidth,
			Height: defaultHeight,
		},
	}
}

// LoadSettings reads a project file on top of the defaults.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	s := NewSettings()
	if err = yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	return s, nil
}

// Validate checks values the renderer cannot recover from. Analysis
// settings are checked once the sample rate is known.
func (s *Settings) Validate() error {
	var errs []error

	if s.Image.Width < minWidth || s.Image.Height < minHeight {
		errs = append(errs, fmt.Errorf("image must be at least %dx%d, got %dx%d", minWidth, minHeight, s.Image.Width, s.Image.Height))
	}
	if _, err := spectrogram.ParseTheme(s.Theme); err != nil {
		errs = append(errs, err)
	}
	if s.View.Duration != nil && *s.View.Duration <= 0 {
		errs = append(errs, errors.New("view duration must be positive"))
	}
	for _, c := range []*ContourSettings{s.F0, s.VoiceQuality} {
		if c != nil && len(c.Samples) > 0 && c.TimeStep <= 0 {
			errs = append(errs, errors.New("contour time step must be positive"))
		}
	}
	for _, row := range s.Score {
		if row.Max <= row.Min {
			errs = append(errs, fmt.Errorf("score row %q: max must exceed min", row.Name))
		}
		if row.Quantity != "" {
			if _, err := quantity.Parse(row.Quantity); err != nil {
				errs = append(errs, fmt.Errorf("score row %q: %w", row.Name, err))
			}
		}
	}

	return errors.Join(errs...)
}

// ScoreRows returns the score with units filled in from row quantities.
func (s *Settings) ScoreRows() ([]picture.GestureRow, error) {
	rows := make([]picture.GestureRow, len(s.Score))
	for i, row := range s.Score {
		if row.Unit == "" && row.Quantity != "" {
			q, err := quantity.Parse(row.Quantity)
			if err != nil {
				return nil, fmt.Errorf("score row %q: %w", row.Name, err)
			}
			row.Unit = q.Unit(s.UseCGSUnits)
		}
		rows[i] = row
	}
	return rows, nil
}
