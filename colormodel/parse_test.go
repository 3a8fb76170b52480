package colormodel

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantHex    string
		wantFormat Format
		wantAlpha  float64
	}{
		{"Bare six digit hex", "ff0000", "#ff0000", FormatHex, 1},
		{"Prefixed hex", "#00FF00", "#00ff00", FormatHex, 1},
		{"Short hex", "#f00", "#ff0000", FormatHex, 1},
		{"Short hex with alpha", "f008", "#ff0000", FormatHex, 0x88 / 255.0},
		{"Hex8", "#0000ff80", "#0000ff", FormatHex, 128 / 255.0},
		{"Named color", "Red", "#ff0000", FormatHex, 1},
		{"Transparent", "transparent", "#000000", FormatHex, 0},
		{"RGB", "rgb(255, 128, 0)", "#ff8000", FormatRGB, 1},
		{"RGBA", "rgba(0, 0, 255, 0.5)", "#0000ff", FormatRGB, 0.5},
		{"RGB percent", "rgb(100%, 0%, 0%)", "#ff0000", FormatRGB, 1},
		{"RGB space separated", "rgb 0 255 0", "#00ff00", FormatRGB, 1},
		{"HSL", "hsl(120, 100%, 50%)", "#00ff00", FormatHSL, 1},
		{"HSLA", "hsla(240, 100%, 50%, 0.25)", "#0000ff", FormatHSL, 0.25},
		{"HSV", "hsv(0, 100%, 100%)", "#ff0000", FormatHSV, 1},
		{"HSV fractions", "hsv(0, 1, 0.5)", "#800000", FormatHSV, 1},
		{"HSVA slash alpha", "hsva(0 100% 100% / 50%)", "#ff0000", FormatHSV, 0.5},
		{"Out of range alpha is opaque", "rgba(0, 0, 0, 3)", "#000000", FormatRGB, 1},
		{"Hue 360 wraps", "hsv(360, 100%, 100%)", "#ff0000", FormatHSV, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, f, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got := c.Hex(); got != tt.wantHex {
				t.Errorf("Hex() = %q, want %q", got, tt.wantHex)
			}
			if f != tt.wantFormat {
				t.Errorf("format = %s, want %s", f, tt.wantFormat)
			}
			if math.Abs(c.A-tt.wantAlpha) > 1e-9 {
				t.Errorf("alpha = %v, want %v", c.A, tt.wantAlpha)
			}
		})
	}
}

func TestIsHexAndNormalize(t *testing.T) {
	tests := []struct {
		in    string
		isHex bool
		want  string
	}{
		{"ff0000", true, "#ff0000"},
		{"#ABC", true, "#abc"},
		{"abcd", true, "#abcd"},
		{"12345678", true, "#12345678"},
		{"12345", false, "12345"},
		{"1234567", false, "1234567"},
		{"zzz", false, "zzz"},
		{"[]^", false, "[]^"},
		{"rgb(0,0,0)", false, "rgb(0,0,0)"},
	}
	for _, tt := range tests {
		if got := IsHex(tt.in); got != tt.isHex {
			t.Errorf("IsHex(%q) = %v, want %v", tt.in, got, tt.isHex)
		}
		if got := NormalizeHex(tt.in); got != tt.want {
			t.Errorf("NormalizeHex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// channelDelta returns the largest absolute difference across RGBA channels
func channelDelta(a, b Color) float64 {
	d := math.Abs(a.RGB.R - b.RGB.R)
	d = math.Max(d, math.Abs(a.RGB.G-b.RGB.G))
	d = math.Max(d, math.Abs(a.RGB.B-b.RGB.B))
	return d
}

func TestFormatParseRoundTrip(t *testing.T) {
	tolerance := map[Format]float64{
		FormatHex: 1.0 / 255,
		FormatRGB: 1.0 / 255,
		FormatHSL: 0.03,
		FormatHSV: 0.03,
	}
	alphaTolerance := map[Format]float64{
		FormatHex: 1.0 / 255,
		FormatRGB: 0.005,
		FormatHSL: 0.005,
		FormatHSV: 0.005,
	}

	steps := []float64{0, 0.1, 0.25, 0.333, 0.5, 0.66, 0.75, 0.9, 1}
	for _, f := range Formats {
		for _, h := range steps {
			for _, s := range steps {
				for _, v := range steps {
					for _, a := range []float64{1, 0.5, 0.07} {
						orig := FromHSVA(h, s, v, a)
						text := orig.String(f)
						back, gotFormat, err := Parse(text)
						if err != nil {
							t.Fatalf("%s: Parse(%q) error: %v", f, text, err)
						}
						if gotFormat != f {
							t.Fatalf("Parse(%q) format = %s, want %s", text, gotFormat, f)
						}
						if d := channelDelta(orig, back); d > tolerance[f] {
							t.Fatalf("%s round trip of (%v,%v,%v,%v) via %q drifted %.4f", f, h, s, v, a, text, d)
						}
						if d := math.Abs(orig.A - back.A); d > alphaTolerance[f] {
							t.Fatalf("%s alpha round trip via %q drifted %.4f", f, text, d)
						}
					}
				}
			}
		}
	}
}
