package app

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roman-kulish/vocal-plot/internal/spectrogram"
)

const (
	ImagePNG  = "png"
	ImageJPEG = "jpeg"

	defaultWidth  = 1200
	defaultHeight = 600
)

type ImageFormat string

type Config struct {
	InputFile     string
	SettingsFile  string
	OutputFile    string
	Format        ImageFormat
	Verbose       bool
	NoAnnotations bool

	// Settings holds the project file merged with the command line.
	Settings *Settings
}

var validImageFormats = map[ImageFormat]struct{}{
	ImagePNG:  {},
	ImageJPEG: {},
}

func NewConfig() *Config {
	return &Config{
		Format:   ImagePNG,
		Settings: NewSettings(),
	}
}

// LogLevel is debug with -verbose, otherwise the level of the project file.
func (c *Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Settings.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func NewConfigFromCLI() (*Config, error) {
	c := NewConfig()

	var imageFormat, theme string
	var width, height, window int
	var start, duration, viewRange, dynamicRange float64
	flag.StringVar(&c.InputFile, "i", "", "Path to the input wav file")
	flag.StringVar(&c.SettingsFile, "c", "", "Path to the project file (yaml)")
	flag.StringVar(&c.OutputFile, "o", "", "Path to the output file")
	flag.StringVar(&imageFormat, "f", string(ImagePNG), "Output image format. [png, jpeg]")
	flag.StringVar(&theme, "theme", string(spectrogram.GrayscaleTheme), "Color theme. [grayscale, classic, jungle, thermal, marine, enhanced]")
	flag.IntVar(&width, "width", defaultWidth, "Image width in pixels")
	flag.IntVar(&height, "height", defaultHeight, "Image height in pixels")
	flag.IntVar(&window, "window", 0, "Analysis window length in samples")
	flag.Float64Var(&start, "start", 0, "Start of the view in seconds")
	flag.Float64Var(&duration, "duration", 0, "Length of the view in seconds")
	flag.Float64Var(&viewRange, "view-range", 0, "Highest frequency shown in Hz")
	flag.Float64Var(&dynamicRange, "dynamic-range", 0, "Dynamic range in dB")
	flag.BoolVar(&c.Verbose, "verbose", false, "Enable more verbose output")
	flag.BoolVar(&c.NoAnnotations, "no-annotations", false, "Disable annotations such as time and frequency scales")
	flag.Parse()

	imageFormat = strings.ToLower(imageFormat)

	var err error
	if c.SettingsFile != "" {
		if c.Settings, err = LoadSettings(c.SettingsFile); err != nil {
			return nil, fmt.Errorf("loading project file: %w", err)
		}
	}

	// flags given explicitly override the project file
	s := c.Settings
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			s.Theme = theme
		case "width":
			s.Image.Width = width
		case "height":
			s.Image.Height = height
		case "window":
			s.Spectrogram.WindowLength = window
		case "start":
			s.View.Start = &start
		case "duration":
			s.View.Duration = &duration
		case "view-range":
			s.Spectrogram.ViewRangeHz = viewRange
		case "dynamic-range":
			s.Spectrogram.DynamicRangeDB = dynamicRange
		}
	})

	if c.InputFile == "" {
		err = errors.New("input file is required")
	} else if c.OutputFile == "" {
		err = errors.New("output file is required")
	} else if _, ok := validImageFormats[ImageFormat(imageFormat)]; !ok {
		err = fmt.Errorf("invalid image format: %s", imageFormat)
	} else if err = s.Validate(); err != nil {
		err = fmt.Errorf("invalid settings: %w", err)
	}

	if err != nil {
		flag.Usage()
		return nil, err
	}

	c.Format = ImageFormat(imageFormat)
	c.OutputFile = fmt.Sprintf("%s.%s", c.OutputFile, c.Format)
	return c, nil
}
