// Package tui provides immediate-mode drawing primitives over a tcell.Screen.
//
// Region is a rectangular window onto the screen. Drawing calls take
// region-relative coordinates and are clipped to the region bounds, so
// renderers can nest regions with Sub without tracking offsets.
package tui

import (
	"github.com/gdamore/tcell/v2"
)

// Region represents a rectangular area of a screen.
// All coordinates passed to drawing methods are relative to the region's origin.
type Region struct {
	Screen tcell.Screen
	X, Y   int // Absolute position on screen
	W, H   int // Region dimensions
}

// NewRegion creates a region covering the whole screen
func NewRegion(s tcell.Screen) Region {
	w, h := s.Size()
	return Region{Screen: s, W: w, H: h}
}

// Sub returns a nested region with coordinates relative to parent, clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{Screen: r.Screen, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Cell sets a single cell, ignoring coordinates outside the region
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Fill paints every cell of the region with a blank in style
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', style)
		}
	}
}

// Text draws s starting at (x, y) on one line, clipped at the right edge.
// Returns the number of cells written.
func (r Region) Text(x, y int, s string, style tcell.Style) int {
	n := 0
	for _, ch := range s {
		if x+n >= r.W {
			break
		}
		r.Cell(x+n, y, ch, style)
		n++
	}
	return n
}

// TextCenter draws s horizontally centered on row y
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	n := len([]rune(s))
	x := (r.W - n) / 2
	if x < 0 {
		x = 0
	}
	r.Text(x, y, Truncate(s, r.W), style)
}

// Contains reports whether absolute screen coordinates fall inside the region
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Truncate truncates string with … suffix if it exceeds maxLen runes
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}
