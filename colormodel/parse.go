package colormodel

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a string matches no supported color notation
var ErrInvalidColor = errors.New("invalid color")

var (
	// hexPattern accepts exactly 3, 4, 6 or 8 hex digits with an optional leading '#'
	hexPattern = regexp.MustCompile(`(?i)^#?([0-9a-f]{3,4}|[0-9a-f]{6}|[0-9a-f]{8})$`)

	// functionalPattern accepts rgb/rgba/hsl/hsla/hsv/hsva with comma, space or slash separators
	functionalPattern = regexp.MustCompile(
		`^(rgba?|hsla?|hsva?)[\s(]+` +
			`([-+]?(?:\d*\.)?\d+%?)[,\s]+` +
			`([-+]?(?:\d*\.)?\d+%?)[,\s]+` +
			`([-+]?(?:\d*\.)?\d+%?)` +
			`(?:[,\s/]+([-+]?(?:\d*\.)?\d+%?))?` +
			`\s*\)?$`)
)

// IsHex reports whether s is a bare or '#'-prefixed 3/4/6/8 digit hex string
func IsHex(s string) bool {
	return hexPattern.MatchString(strings.TrimSpace(s))
}

// NormalizeHex returns '#' followed by the hex digits of s, or s unchanged when it is not hex
func NormalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if !hexPattern.MatchString(s) {
		return s
	}
	return "#" + strings.ToLower(strings.TrimPrefix(s, "#"))
}

// Parse decodes a color string and reports the notation it was written in.
// CSS color names and "transparent" decode as FormatHex.
func Parse(s string) (Color, Format, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return Color{}, FormatHex, ErrInvalidColor
	}

	if hexPattern.MatchString(in) {
		c, err := parseHex(strings.TrimPrefix(in, "#"))
		if err != nil {
			return Color{}, FormatHex, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return c, FormatHex, nil
	}

	if in == "transparent" {
		return Color{}, FormatHex, nil
	}
	if rgba, ok := colornames.Map[in]; ok {
		return FromRGBA255(rgba.R, rgba.G, rgba.B, 1), FormatHex, nil
	}

	m := functionalPattern.FindStringSubmatch(in)
	if m == nil {
		return Color{}, FormatHex, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, f, err := parseFunctional(m[1], m[2:5], m[5])
	if err != nil {
		return Color{}, FormatHex, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return c, f, nil
}

func parseHex(digits string) (Color, error) {
	// Expand short forms: rgb -> rrggbb, rgba -> rrggbbaa
	if len(digits) == 3 || len(digits) == 4 {
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	}

	a := 1.0
	if len(digits) == 8 {
		v, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return Color{}, err
		}
		a = float64(v) / 255
		digits = digits[:6]
	}

	rgb, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, err
	}
	return Color{RGB: rgb, A: a}, nil
}

func parseFunctional(name string, args []string, alpha string) (Color, Format, error) {
	a := 1.0
	if alpha != "" {
		a = parseAlpha(alpha)
	}

	switch name {
	case "rgb", "rgba":
		var ch [3]float64
		for i, arg := range args {
			v, pct, err := parseNumber(arg)
			if err != nil {
				return Color{}, FormatRGB, err
			}
			if pct {
				ch[i] = Clamp01(v / 100)
			} else {
				ch[i] = Clamp01(v / 255)
			}
		}
		return Color{RGB: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, A: a}, FormatRGB, nil

	case "hsl", "hsla", "hsv", "hsva":
		deg, err := parseHue(args[0])
		if err != nil {
			return Color{}, FormatHSL, err
		}
		x, err := parseRatio(args[1])
		if err != nil {
			return Color{}, FormatHSL, err
		}
		y, err := parseRatio(args[2])
		if err != nil {
			return Color{}, FormatHSL, err
		}
		if strings.HasPrefix(name, "hsl") {
			return Color{RGB: colorful.Hsl(deg, x, y).Clamped(), A: a}, FormatHSL, nil
		}
		return Color{RGB: colorful.Hsv(deg, x, y).Clamped(), A: a}, FormatHSV, nil
	}
	return Color{}, FormatHex, fmt.Errorf("unknown notation %q", name)
}

func parseNumber(s string) (v float64, percent bool, err error) {
	if strings.HasSuffix(s, "%") {
		percent = true
		s = strings.TrimSuffix(s, "%")
	}
	v, err = strconv.ParseFloat(s, 64)
	return v, percent, err
}

// parseHue returns degrees in [0,360); 360 and above clamp to the wrap point
func parseHue(s string) (float64, error) {
	v, pct, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if pct {
		v = v / 100 * 360
	}
	if v < 0 {
		v = 0
	}
	if v >= 360 {
		v = 0
	}
	return v, nil
}

// parseRatio accepts "50%", "50" and "0.5" as one half
func parseRatio(s string) (float64, error) {
	v, pct, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if pct || v > 1 {
		return Clamp01(v / 100), nil
	}
	return Clamp01(v), nil
}

// parseAlpha falls back to opaque for out-of-range input
func parseAlpha(s string) float64 {
	v, pct, err := parseNumber(s)
	if err != nil {
		return 1
	}
	if pct {
		v /= 100
	}
	if v < 0 || v > 1 {
		return 1
	}
	return v
}
