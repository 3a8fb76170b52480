package colormodel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format selects the text encoding of a color
type Format uint8

const (
	FormatHex Format = iota
	FormatRGB
	FormatHSL
	FormatHSV
	formatCount
)

// Formats lists every display format in selector order
var Formats = [...]Format{FormatHex, FormatRGB, FormatHSL, FormatHSV}

var formatNames = [formatCount]string{"hex", "rgb", "hsl", "hsv"}

// String returns the lower-case format name
func (f Format) String() string {
	if !f.Valid() {
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
	return formatNames[f]
}

// Valid reports whether f is one of the four display formats
func (f Format) Valid() bool {
	return f < formatCount
}

// ParseFormat resolves a format name, case-insensitive
func ParseFormat(s string) (Format, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range formatNames {
		if name == s {
			return Format(i), true
		}
	}
	return FormatHex, false
}

// String renders c in format f. An unknown format is a programming error and panics.
func (c Color) String(f Format) string {
	switch f {
	case FormatHex:
		if c.Opaque() {
			return c.Hex()
		}
		return c.Hex8()
	case FormatRGB:
		return c.RGBString()
	case FormatHSL:
		return c.HSLString()
	case FormatHSV:
		return c.HSVString()
	}
	panic(fmt.Sprintf("colormodel: invalid format %d", f))
}

// Hex returns #rrggbb, ignoring alpha
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Hex8 returns #rrggbbaa
func (c Color) Hex8() string {
	r, g, b, a := c.RGBA255()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, uint8(math.Round(a*255)))
}

// RGBString returns rgb(r, g, b) or rgba(r, g, b, a)
func (c Color) RGBString() string {
	r, g, b, _ := c.RGBA255()
	ra := roundAlpha(c.A)
	if ra == 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(ra))
}

// HSLString returns hsl(h, s%, l%) or hsla(h, s%, l%, a)
func (c Color) HSLString() string {
	h, s, l := c.RGB.Clamped().Hsl()
	return cylindrical("hsl", h, s, l, c.A)
}

// HSVString returns hsv(h, s%, v%) or hsva(h, s%, v%, a)
func (c Color) HSVString() string {
	h, s, v := c.RGB.Clamped().Hsv()
	return cylindrical("hsv", h, s, v, c.A)
}

func cylindrical(name string, deg, x, y, a float64) string {
	if math.IsNaN(deg) {
		deg = 0
	}
	hd := int(math.Round(deg)) % 360
	xp := int(math.Round(Clamp01(x) * 100))
	yp := int(math.Round(Clamp01(y) * 100))
	ra := roundAlpha(a)
	if ra == 1 {
		return fmt.Sprintf("%s(%d, %d%%, %d%%)", name, hd, xp, yp)
	}
	return fmt.Sprintf("%sa(%d, %d%%, %d%%, %s)", name, hd, xp, yp, formatAlpha(ra))
}

// roundAlpha rounds to two decimals, the precision of functional notations
func roundAlpha(a float64) float64 {
	return math.Round(Clamp01(a)*100) / 100
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

// AlphaPercent returns alpha as a floored integer percentage
func AlphaPercent(a float64) int {
	// epsilon absorbs binary representation error, 0.29*100 is 28.999...
	return int(math.Floor(Clamp01(a)*100 + 1e-9))
}
