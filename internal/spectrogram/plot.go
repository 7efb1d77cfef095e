// Package spectrogram renders short-time spectra of a 16-bit signal as a
// gray-scale raster and overlays parameter curves on it.
package spectrogram

import (
	"image"
	"image/draw"
	"math"

	"github.com/roman-kulish/vocal-plot/internal/signal"
)

const (
	// ReferenceLevel is the level drawn black. It is calibrated for the
	// unnormalised transform of full-scale 16-bit samples and natural-log levels.
	ReferenceLevel = 240.0

	minPower   = 1e-9
	gaussSigma = 0.4

	// rows step through the FFT bins in 20.12 fixed point
	fixedPointBits = 12
)

// Plot computes and draws spectrograms. It caches the analysis window and
// the transform frame between calls and is not safe for concurrent use.
type Plot struct {
	Config
	SampleRate int
	Palette    *Palette

	window []float64
	frame  *signal.ComplexSignal
}

func NewPlot(sampleRate int, config Config) *Plot {
	return &Plot{
		Config:     config,
		SampleRate: sampleRate,
		Palette:    NewPalette(GrayscaleTheme),
	}
}

// FrameLengthExponent returns the smallest e >= 1 with 2^e >= n.
func FrameLengthExponent(n int) int {
	e := 1
	for 1<<e < n {
		e++
	}
	return e
}

// GaussWindow returns a Gaussian window of length n with sigma 0.4 relative
// to the half length.
func GaussWindow(n int) []float64 {
	w := make([]float64, max(n, 0))
	if n == 1 {
		w[0] = 1
		return w
	}

	half := float64(n-1) / 2
	for i := range w {
		d := float64(i) - half
		w[i] = math.Exp(-d * d / (2 * gaussSigma * gaussSigma * half * half))
	}
	return w
}

// GrayLevel maps a level to 0 (at or above the reference) through 255 (the
// reference minus the dynamic range and below).
func GrayLevel(level, dynamicRange float64) uint8 {
	v := level - ReferenceLevel
	switch {
	case v > 0:
		return 0
	case v > -dynamicRange:
		return uint8(-255 / dynamicRange * v)
	}
	return 255
}

// prepare raises the frame length to fit the window and refreshes the
// cached window and frame.
func (p *Plot) prepare() (windowLength, frameLength int) {
	windowLength = max(p.WindowLength, 1)
	if e := FrameLengthExponent(windowLength); p.FrameLengthExponent < e {
		p.FrameLengthExponent = e
	}
	frameLength = 1 << p.FrameLengthExponent

	if len(p.window) != windowLength {
		p.window = GaussWindow(windowLength)
	}
	if p.frame == nil || p.frame.Len() != frameLength {
		p.frame = signal.NewComplexSignal(frameLength)
	}
	return windowLength, frameLength
}

// visibleBins is the number of FFT bins shown on the rows.
func (p *Plot) visibleBins(frameLength int) int {
	n := frameLength/2 - 1
	if p.SampleRate > 0 {
		n = min(int(p.ViewRangeHz*float64(frameLength)/float64(p.SampleRate)), n)
	}
	return max(n, 1)
}

// Levels returns w*h levels in row-major order, top row first, for the
// samples [first, first+num) spread over w columns. The bottom row is 0 Hz.
func (p *Plot) Levels(w, h int, s *signal.Signal16, first, num int) []float64 {
	if w < 1 || h < 1 || num <= 0 {
		return nil
	}

	windowLength, frameLength := p.prepare()
	deltaE12 := (p.visibleBins(frameLength) << fixedPointBits) / h

	levels := make([]float64, w*h)
	for i := range w {
		center := first + i*num/w
		start := center - windowLength/2

		p.frame.Reset()
		for k, g := range p.window {
			p.frame.Re[k] = float64(s.At(start+k)) * g
		}
		p.frame.RealFFT(false)

		indexE12 := 0
		for row := h - 1; row >= 0; row-- {
			power := p.frame.Power(indexE12 >> fixedPointBits)
			levels[row*w+i] = 10 * math.Log(math.Max(power, minPower))
			indexE12 += deltaE12
		}
	}
	return levels
}

// Raster renders the spectrogram into a new w x h image.
func (p *Plot) Raster(w, h int, s *signal.Signal16, first, num int) *image.RGBA {
	levels := p.Levels(w, h, s, first, num)
	if levels == nil {
		return nil
	}

	palette := p.Palette
	if palette == nil {
		palette = NewPalette(GrayscaleTheme)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, palette.Color(GrayLevel(levels[y*w+x], p.DynamicRangeDB)))
		}
	}
	return img
}

// Draw renders the spectrogram into area of dst in a single blit.
func (p *Plot) Draw(dst draw.Image, area image.Rectangle, s *signal.Signal16, first, num int) {
	raster := p.Raster(area.Dx(), area.Dy(), s, first, num)
	if raster == nil {
		return
	}
	draw.Draw(dst, area, raster, image.Point{}, draw.Src)
}
