package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hsv-picker/colormodel"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds chrome colors; picker surfaces are painted from the color state
type Theme struct {
	Background tcell.Color
	Panel      tcell.Color // Text field background
	Text       tcell.Color
	Dim        tcell.Color // Labels and help line
	Accent     tcell.Color // Focused label
	Cursor     tcell.Color // Text cursor cell
	CheckLight colorful.Color
	CheckDark  colorful.Color
}

// DarkTheme is the Tokyo Night palette
func DarkTheme() Theme {
	return Theme{
		Background: tcell.NewRGBColor(26, 27, 38),
		Panel:      tcell.NewRGBColor(36, 40, 59),
		Text:       tcell.NewRGBColor(192, 202, 245),
		Dim:        tcell.NewRGBColor(86, 95, 137),
		Accent:     tcell.NewRGBColor(255, 165, 0),
		Cursor:     tcell.NewRGBColor(255, 255, 255),
		CheckLight: colorful.Color{R: 0.40, G: 0.40, B: 0.42},
		CheckDark:  colorful.Color{R: 0.25, G: 0.25, B: 0.27},
	}
}

// LightTheme is a paper palette for light desktops
func LightTheme() Theme {
	return Theme{
		Background: tcell.NewRGBColor(245, 245, 240),
		Panel:      tcell.NewRGBColor(225, 226, 230),
		Text:       tcell.NewRGBColor(40, 42, 54),
		Dim:        tcell.NewRGBColor(130, 132, 140),
		Accent:     tcell.NewRGBColor(0, 110, 200),
		Cursor:     tcell.NewRGBColor(40, 42, 54),
		CheckLight: colorful.Color{R: 1, G: 1, B: 1},
		CheckDark:  colorful.Color{R: 0.80, G: 0.80, B: 0.80},
	}
}

// ThemeFor picks the palette for a resolved dark/light mode
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

// ToTcell converts a colorful color to a true-color tcell color, clamping out-of-gamut values
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// HueColor is the fully saturated, full value color at frac along the hue track
func HueColor(frac float64) colorful.Color {
	return colormodel.FromHSVA(frac, 1, 1, 1).RGB
}

// Checker returns the checkerboard tile shown behind translucent colors.
// Tiles are two cells wide so they read as squares in a terminal.
func (t Theme) Checker(x, y int) colorful.Color {
	if (x/2+y)%2 == 0 {
		return t.CheckLight
	}
	return t.CheckDark
}

// Contrast is black or white, whichever reads over bg
func Contrast(bg colorful.Color) tcell.Color {
	r, g, b := bg.Clamped().RGB255()
	if (299*int(r)+587*int(g)+114*int(b))/1000 < 128 {
		return tcell.ColorWhite
	}
	return tcell.ColorBlack
}
