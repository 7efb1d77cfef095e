package spectrogram

import (
	"errors"
	"fmt"
)

const (
	defaultWindowSeconds       = 0.006
	defaultFrameLengthExponent = 9
	defaultViewRangeHz         = 5000
	defaultDynamicRangeDB      = 120
)

var ErrOutOfRange = errors.New("value out of range")

// Config holds the analysis settings of a spectrogram.
type Config struct {
	WindowLength        int     `yaml:"windowLength"`        // samples
	FrameLengthExponent int     `yaml:"frameLengthExponent"` // FFT size is 2^n
	ViewRangeHz         float64 `yaml:"viewRangeHz"`         // frequency at the top row
	DynamicRangeDB      float64 `yaml:"dynamicRangeDB"`      // level span from black to white
}

// Range is an inclusive interval of accepted values.
type Range struct {
	Min float64
	Max float64
}

func (r Range) contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Limits are the values the settings UI accepts. The renderer itself works
// with anything and only raises the frame length when it is too short.
var Limits = struct {
	WindowLength        Range
	FrameLengthExponent Range
	ViewRangeHz         Range
	DynamicRangeDB      Range
}{
	WindowLength:        Range{Min: 60, Max: 2205},
	FrameLengthExponent: Range{Min: 6, Max: 12},
	ViewRangeHz:         Range{Min: 1000, Max: 14000},
	DynamicRangeDB:      Range{Min: 20, Max: 160},
}

// DefaultConfig uses a 6 ms window and a 512-point FFT showing 0-5 kHz.
// The window is kept inside Limits so low and high sample rates still
// validate.
func DefaultConfig(sampleRate int) Config {
	window := defaultWindowSeconds * float64(sampleRate)
	window = min(max(window, Limits.WindowLength.Min), Limits.WindowLength.Max)

	return Config{
		WindowLength:        int(window),
		FrameLengthExponent: defaultFrameLengthExponent,
		ViewRangeHz:         defaultViewRangeHz,
		DynamicRangeDB:      defaultDynamicRangeDB,
	}
}

// WithDefaults fills zero fields from DefaultConfig.
func (c Config) WithDefaults(sampleRate int) Config {
	d := DefaultConfig(sampleRate)
	if c.WindowLength == 0 {
		c.WindowLength = d.WindowLength
	}
	if c.FrameLengthExponent == 0 {
		c.FrameLengthExponent = d.FrameLengthExponent
	}
	if c.ViewRangeHz == 0 {
		c.ViewRangeHz = d.ViewRangeHz
	}
	if c.DynamicRangeDB == 0 {
		c.DynamicRangeDB = d.DynamicRangeDB
	}
	return c
}

// Validate checks every field against Limits.
func (c Config) Validate() error {
	var errs []error
	check := func(name string, v float64, r Range) {
		if !r.contains(v) {
			errs = append(errs, fmt.Errorf("%s %g not in [%g, %g]: %w", name, v, r.Min, r.Max, ErrOutOfRange))
		}
	}

	check("window length", float64(c.WindowLength), Limits.WindowLength)
	check("frame length exponent", float64(c.FrameLengthExponent), Limits.FrameLengthExponent)
	check("view range", c.ViewRangeHz, Limits.ViewRangeHz)
	check("dynamic range", c.DynamicRangeDB, Limits.DynamicRangeDB)

	return errors.Join(errs...)
}
