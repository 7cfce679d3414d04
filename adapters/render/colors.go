package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Diverging interpolates a diverging two-color scale over [lo, hi] with a
// neutral white midpoint at zero. Values outside the domain clamp to the
// nearest end.
func Diverging(value, lo, hi float64, low, high color.RGBA) color.RGBA {
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	if hi <= 0 && lo >= 0 {
		return white
	}
	switch {
	case value >= 0 && hi > 0:
		t := value / hi
		if t > 1 {
			t = 1
		}
		return lerp(white, high, t)
	case value < 0 && lo < 0:
		t := value / lo
		if t > 1 {
			t = 1
		}
		return lerp(white, low, t)
	default:
		return white
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + t*(float64(y)-float64(x)) + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xff}
}

// css renders a color as a hex style value for SVG attributes
func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" (or "rrggbb") into a color
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}, nil
}
