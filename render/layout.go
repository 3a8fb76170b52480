package render

import (
	"github.com/lixenwraith/hsv-picker/colormodel"
	"github.com/lixenwraith/hsv-picker/picker"
)

// Layout constants
const (
	MinWidth  = 30
	MinHeight = 12

	maxContentW = 64
	swatchW     = 6
	fieldX      = swatchW + 2 // Field column, right of the swatch
	labelW      = 7           // "Color " / "Alpha " / "Format" plus a space
	pickLabel   = "[pick]"
)

// Layout holds absolute screen rects for every interactive element
type Layout struct {
	Screen     picker.Rect
	Title      picker.Rect
	SV         picker.Rect
	Hue        picker.Rect
	Opacity    picker.Rect
	Swatch     picker.Rect
	ColorField picker.Rect
	AlphaField picker.Rect
	Format     picker.Rect
	Dropdown   picker.Rect // One row per display format, overlays the fields when open
	Pick       picker.Rect // Eyedropper button
	Help       picker.Rect
	TooSmall   bool
}

// ComputeLayout stacks the surfaces top to bottom:
//
//	title
//	saturation/value field
//	(gap)
//	hue slider
//	opacity slider
//	(gap)
//	swatch | color field
//	swatch | alpha field
//	format selector      [pick]
//	help
func ComputeLayout(w, h int) Layout {
	l := Layout{Screen: picker.Rect{W: w, H: h}}
	if w < MinWidth || h < MinHeight {
		l.TooSmall = true
		return l
	}

	contentW := min(w-2, maxContentW)
	x := (w - contentW) / 2
	svH := h - 9

	l.Title = picker.Rect{X: x, Y: 0, W: contentW, H: 1}
	l.SV = picker.Rect{X: x, Y: 1, W: contentW, H: svH}

	y := 1 + svH + 1
	l.Hue = picker.Rect{X: x, Y: y, W: contentW, H: 1}
	l.Opacity = picker.Rect{X: x, Y: y + 1, W: contentW, H: 1}

	y += 3
	l.Swatch = picker.Rect{X: x, Y: y, W: swatchW, H: 2}
	l.ColorField = picker.Rect{X: x + fieldX, Y: y, W: contentW - fieldX, H: 1}
	l.AlphaField = picker.Rect{X: x + fieldX, Y: y + 1, W: contentW - fieldX, H: 1}

	pickW := len(pickLabel)
	l.Format = picker.Rect{X: x + fieldX, Y: y + 2, W: labelW + 6, H: 1}
	l.Pick = picker.Rect{X: x + contentW - pickW, Y: y + 2, W: pickW, H: 1}

	n := len(colormodel.Formats)
	l.Dropdown = picker.Rect{X: l.Format.X + labelW, Y: l.Format.Y - n, W: 6, H: n}

	l.Help = picker.Rect{X: 0, Y: h - 1, W: w, H: 1}
	return l
}

// DropdownItem maps a click inside the open dropdown to a display format
func (l Layout) DropdownItem(x, y int) (colormodel.Format, bool) {
	if !l.Dropdown.Contains(x, y) {
		return 0, false
	}
	return colormodel.Formats[y-l.Dropdown.Y], true
}

// Apply hands the surface rects to the picker's controller
func (l Layout) Apply(ctl *picker.Controller) {
	ctl.SetSurface(picker.ControlSV, l.SV)
	ctl.SetSurface(picker.ControlHue, l.Hue)
	ctl.SetSurface(picker.ControlOpacity, l.Opacity)
}
