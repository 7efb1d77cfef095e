package spectrogram

import (
	"errors"
	"image"
	"image/color"
	"math"
	"strconv"
	"testing"

	"github.com/roman-kulish/vocal-plot/internal/signal"
)

func TestFrameLengthExponent(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{264, 9},
		{512, 9},
		{513, 10},
	}
	for _, tt := range tests {
		if got := FrameLengthExponent(tt.n); got != tt.want {
			t.Errorf("FrameLengthExponent(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestGaussWindow(t *testing.T) {
	w := GaussWindow(5)
	if w[2] != 1 {
		t.Errorf("Centre weight = %v, want 1", w[2])
	}
	if w[0] != w[4] || w[1] != w[3] {
		t.Errorf("Window not symmetric: %v", w)
	}
	if want := math.Exp(-3.125); math.Abs(w[0]-want) > 1e-12 {
		t.Errorf("Edge weight = %v, want %v", w[0], want)
	}
}

func TestGrayLevel(t *testing.T) {
	tests := []struct {
		level float64
		want  uint8
	}{
		{250, 0},
		{ReferenceLevel, 0},
		{ReferenceLevel - 60, 127},
		{ReferenceLevel - 120, 255},
		{ReferenceLevel - 500, 255},
	}
	for _, tt := range tests {
		if got := GrayLevel(tt.level, 120); got != tt.want {
			t.Errorf("GrayLevel(%v) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func sine(n, period int, amplitude float64) *signal.Signal16 {
	s := signal.NewSignal16(n)
	for i := range n {
		s.Set(i, int16(amplitude*math.Sin(2*math.Pi*float64(i)/float64(period))))
	}
	return s
}

func TestLevelsPeak(t *testing.T) {
	// 1 kHz at 8 kHz lands on bin 64 of a 512-point frame
	p := NewPlot(8000, Config{
		WindowLength:        256,
		FrameLengthExponent: 9,
		ViewRangeHz:         4000,
		DynamicRangeDB:      120,
	})

	const w, h = 4, 255
	levels := p.Levels(w, h, sine(8000, 8, 10000), 0, 8000)
	if len(levels) != w*h {
		t.Fatalf("Expected %d levels, got %d", w*h, len(levels))
	}

	for col := range w {
		best := 0
		for row := range h {
			if levels[row*w+col] > levels[best*w+col] {
				best = row
			}
		}
		if best != h-1-64 {
			t.Errorf("column %d: loudest row %d, want %d", col, best, h-1-64)
		}
	}
}

func TestLevelsRaisesFrameLength(t *testing.T) {
	p := NewPlot(22050, Config{WindowLength: 1000, FrameLengthExponent: 6, ViewRangeHz: 5000, DynamicRangeDB: 120})
	p.Levels(2, 2, sine(100, 10, 100), 0, 100)

	if p.FrameLengthExponent != 10 {
		t.Errorf("Expected exponent raised to 10, got %d", p.FrameLengthExponent)
	}
}

func TestLevelsDegenerate(t *testing.T) {
	p := NewPlot(22050, DefaultConfig(22050))
	s := sine(100, 10, 100)

	if p.Levels(0, 10, s, 0, 100) != nil {
		t.Errorf("Expected no levels for zero width")
	}
	if p.Levels(10, 0, s, 0, 100) != nil {
		t.Errorf("Expected no levels for zero height")
	}
	if p.Levels(10, 10, s, 0, 0) != nil {
		t.Errorf("Expected no levels for empty sample range")
	}
}

func TestDrawSilence(t *testing.T) {
	p := NewPlot(22050, DefaultConfig(22050))
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	area := image.Rect(10, 10, 30, 30)

	p.Draw(dst, area, signal.NewSignal16(1000), 0, 1000)

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if c := dst.RGBAAt(15, 15); c != white {
		t.Errorf("Silence should be white, got %v", c)
	}
	if c := dst.RGBAAt(5, 5); c != (color.RGBA{}) {
		t.Errorf("Pixels outside the area must stay untouched, got %v", c)
	}
}

func TestPalette(t *testing.T) {
	g := NewPalette(GrayscaleTheme)
	if c := g.Color(0); c != (color.RGBA{A: 255}) {
		t.Errorf("Gray level 0 should be black, got %v", c)
	}
	if c := g.Color(200); c != (color.RGBA{R: 200, G: 200, B: 200, A: 255}) {
		t.Errorf("Unexpected gray %v", c)
	}

	for _, name := range []string{"classic", "Thermal", "marine", "jungle", "enhanced"} {
		theme, err := ParseTheme(name)
		if err != nil {
			t.Fatalf("ParseTheme(%q) failed: %v", name, err)
		}
		if NewPalette(theme).Color(0) == NewPalette(theme).Color(255) {
			t.Errorf("Theme %s maps both ends to the same colour", theme)
		}
	}

	if _, err := ParseTheme("sepia"); err == nil {
		t.Errorf("Expected error for unknown theme")
	}
}

func TestConfigValidate(t *testing.T) {
	c := DefaultConfig(44100)
	if c.WindowLength != 264 {
		t.Errorf("Default window length = %d, want 264", c.WindowLength)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}

	c.ViewRangeHz = 500
	c.DynamicRangeDB = 200
	err := c.Validate()
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}

	filled := Config{DynamicRangeDB: 80}.WithDefaults(44100)
	if filled.DynamicRangeDB != 80 || filled.FrameLengthExponent != 9 {
		t.Errorf("Unexpected defaults %+v", filled)
	}
}

func TestDefaultConfigSampleRates(t *testing.T) {
	tests := []struct {
		rate   int
		window int
	}{
		{8000, 60},
		{11025, 66},
		{16000, 96},
		{22050, 132},
		{48000, 288},
		{1000000, 2205},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.rate), func(t *testing.T) {
			c := DefaultConfig(tt.rate)
			if c.WindowLength != tt.window {
				t.Errorf("WindowLength = %d, want %d", c.WindowLength, tt.window)
			}
			if err := c.Validate(); err != nil {
				t.Errorf("Default config at %d Hz should be valid: %v", tt.rate, err)
			}
			if err := (Config{}).WithDefaults(tt.rate).Validate(); err != nil {
				t.Errorf("Filled config at %d Hz should be valid: %v", tt.rate, err)
			}
		})
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		in   hsv
		want color.RGBA
	}{
		{hsv{H: 0, S: 1, V: 1}, color.RGBA{R: 255, A: 255}},
		{hsv{H: 120, S: 1, V: 1}, color.RGBA{G: 255, A: 255}},
		{hsv{H: 240, S: 1, V: 1}, color.RGBA{B: 255, A: 255}},
		{hsv{H: 60, S: 1, V: 1}, color.RGBA{R: 255, G: 255, A: 255}},
		{hsv{H: -60, S: 1, V: 1}, color.RGBA{R: 255, B: 255, A: 255}},
		{hsv{H: 200, S: 0, V: 0.5}, color.RGBA{R: 128, G: 128, B: 128, A: 255}},
		{hsv{H: 30, S: 1, V: 1}, color.RGBA{R: 255, G: 128, A: 255}},
	}
	for _, tt := range tests {
		if got := tt.in.rgb(); got != tt.want {
			t.Errorf("%+v.rgb() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
