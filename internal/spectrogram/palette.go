package spectrogram

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// ColorTheme selects how gray levels are coloured. Grayscale reproduces the
// classic black-on-white sonagram; the other themes map intensity (black =
// strongest) onto a colour ramp.
type ColorTheme string

const (
	GrayscaleTheme ColorTheme = "grayscale" // Black on white
	ClassicTheme   ColorTheme = "classic"   // Blue to red transition
	JungleTheme    ColorTheme = "jungle"    // Dark green to yellow transition
	ThermalTheme   ColorTheme = "thermal"   // Black to red to yellow to white
	MarineTheme    ColorTheme = "marine"    // Deep blue to cyan to white
	EnhancedTheme  ColorTheme = "enhanced"  // Multi-stage ramp, better low-level contrast

	paletteSize = 256
)

var themes = []ColorTheme{GrayscaleTheme, ClassicTheme, JungleTheme, ThermalTheme, MarineTheme, EnhancedTheme}

// ParseTheme accepts a theme name case-insensitively.
func ParseTheme(name string) (ColorTheme, error) {
	t := ColorTheme(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range themes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown color theme: %q", name)
}

// Palette is a pre-computed lookup from gray level to colour.
type Palette struct {
	theme  ColorTheme
	colors [paletteSize]color.RGBA
}

func NewPalette(theme ColorTheme) *Palette {
	p := &Palette{theme: theme}
	ramp := getColorTheme(theme)
	for i := range p.colors {
		p.colors[i] = ramp(uint8(i))
	}
	return p
}

// Color returns the colour of a gray level (0 = strongest).
func (p *Palette) Color(gray uint8) color.RGBA {
	return p.colors[gray]
}

func (p *Palette) Theme() ColorTheme {
	return p.theme
}

// hsv is a hue in degrees with saturation and value in [0, 1].
type hsv struct {
	H, S, V float64
}

// rgb maps the colour onto the hexcone. A channel sits at V while its hue
// offset k is in [4, 6) and at V(1-S) for k in [1, 3], linear in between.
func (c hsv) rgb() color.RGBA {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	channel := func(n float64) uint8 {
		k := math.Mod(n+h/60, 6)
		ramp := max(0, min(k, 4-k, 1))
		return uint8(math.Round(255 * c.V * (1 - c.S*ramp)))
	}
	return color.RGBA{R: channel(5), G: channel(3), B: channel(1), A: 255}
}

func getColorTheme(theme ColorTheme) func(uint8) color.RGBA {
	// 1 at gray level 0 (loudest), 0 at white
	intensity := func(gray uint8) float64 {
		return 1 - float64(gray)/(paletteSize-1)
	}

	switch theme {
	case ClassicTheme:
		return func(gray uint8) color.RGBA {
			power := intensity(gray)
			return hsv{
				H: 240 - (power * 240),
				S: 0.9 + (power * 0.1),
				V: math.Pow(power, 0.7),
			}.rgb()
		}

	case JungleTheme:
		return func(gray uint8) color.RGBA {
			power := intensity(gray)
			return hsv{
				H: 120 - (power * 60),
				S: 1.0,
				V: 0.3 + (math.Pow(power, 0.6) * 0.7),
			}.rgb()
		}

	case ThermalTheme:
		return func(gray uint8) color.RGBA {
			power := intensity(gray)
			if power < 0.33 {
				return color.RGBA{R: uint8((power * 3) * 255), A: 255}
			}
			if power < 0.66 {
				return color.RGBA{R: 255, G: uint8(((power - 0.33) * 3) * 255), A: 255}
			}
			return color.RGBA{R: 255, G: 255, B: uint8(math.Min((power-0.66)*3, 1) * 255), A: 255}
		}

	case MarineTheme:
		return func(gray uint8) color.RGBA {
			power := intensity(gray)
			return hsv{
				H: 240 - (power * 60),
				S: 1.0 - (power * 0.8),
				V: 0.3 + (math.Pow(power, 0.6) * 0.7),
			}.rgb()
		}

	case EnhancedTheme:
		return func(gray uint8) color.RGBA {
			power := intensity(gray)
			enhanced := math.Pow(power, 0.7)

			switch {
			case power < 0.25:
				return hsv{H: 240, S: 1.0, V: math.Min(1.0, enhanced*4)}.rgb()
			case power < 0.5:
				return hsv{H: 240 - ((power - 0.25) * 240), S: 1.0, V: math.Min(1.0, enhanced*1.5)}.rgb()
			case power < 0.75:
				p := (power - 0.5) * 4
				return hsv{H: 180 - (p * 120), S: 1.0, V: math.Min(1.0, enhanced*1.5)}.rgb()
			default:
				p := (power - 0.75) * 4
				return hsv{H: 60 - (p * 60), S: 1.0, V: 1.0}.rgb()
			}
		}

	default:
		return func(gray uint8) color.RGBA {
			return color.RGBA{R: gray, G: gray, B: gray, A: 255}
		}
	}
}
