// Package colormodel converts between the picker's normalized HSVA scalars and
// displayable color strings.
//
// A Color is an sRGB triple (go-colorful) plus straight alpha. Formatting follows
// the common CSS-ish shapes:
//
//	hex  #rrggbb / #rrggbbaa
//	rgb  rgb(r, g, b) / rgba(r, g, b, a)
//	hsl  hsl(h, s%, l%) / hsla(h, s%, l%, a)
//	hsv  hsv(h, s%, v%) / hsva(h, s%, v%, a)
package colormodel

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// darkThreshold is the perceived brightness (0-255) below which a color counts as dark
const darkThreshold = 128

// Color is an sRGB color with straight alpha
type Color struct {
	RGB colorful.Color
	A   float64
}

// FromHSVA builds a color from normalized hue, saturation, value and alpha.
// Hue 1.0 wraps to 0 (red), all other inputs are clamped to [0,1].
func FromHSVA(h, s, v, a float64) Color {
	deg := math.Mod(Clamp01(h)*360, 360)
	return Color{
		RGB: colorful.Hsv(deg, Clamp01(s), Clamp01(v)).Clamped(),
		A:   Clamp01(a),
	}
}

// FromRGBA255 builds a color from 8-bit channels and a normalized alpha
func FromRGBA255(r, g, b uint8, a float64) Color {
	return Color{
		RGB: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255},
		A:   Clamp01(a),
	}
}

// HSVA decomposes the color into normalized hue, saturation, value and alpha.
// Hue is undefined for greys and reported as 0.
func (c Color) HSVA() (h, s, v, a float64) {
	deg, s, v := c.RGB.Clamped().Hsv()
	if math.IsNaN(deg) {
		deg = 0
	}
	return Clamp01(deg / 360), Clamp01(s), Clamp01(v), c.A
}

// RGBA255 returns rounded 8-bit channels and alpha
func (c Color) RGBA255() (r, g, b uint8, a float64) {
	r, g, b = c.RGB.Clamped().RGB255()
	return r, g, b, c.A
}

// Brightness returns perceived brightness in [0,255]
func (c Color) Brightness() float64 {
	r, g, b, _ := c.RGBA255()
	return (float64(r)*299 + float64(g)*587 + float64(b)*114) / 1000
}

// IsDark reports whether light text or borders contrast better against c
func (c Color) IsDark() bool {
	return c.Brightness() < darkThreshold
}

// Opaque reports whether the color has no transparency
func (c Color) Opaque() bool {
	return c.A >= 1
}

// Valid reports whether every channel is a finite value in range
func (c Color) Valid() bool {
	for _, v := range [...]float64{c.RGB.R, c.RGB.G, c.RGB.B, c.A} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// WithAlpha returns a copy with alpha replaced
func (c Color) WithAlpha(a float64) Color {
	c.A = Clamp01(a)
	return c
}

// Over composites c over an opaque background and returns the visible sRGB color
func (c Color) Over(bg colorful.Color) colorful.Color {
	return bg.BlendRgb(c.RGB, c.A).Clamped()
}

// Clamp01 clamps v to [0,1], NaN maps to 0
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
