package render

import "github.com/lixenwraith/hsv-picker/picker"

// Focus is the element receiving keyboard input
type Focus uint8

const (
	FocusSV Focus = iota
	FocusHue
	FocusOpacity
	FocusColorText
	FocusAlphaText
	FocusFormat
	focusCount
)

func (f Focus) String() string {
	switch f {
	case FocusSV:
		return "sv"
	case FocusHue:
		return "hue"
	case FocusOpacity:
		return "opacity"
	case FocusColorText:
		return "color"
	case FocusAlphaText:
		return "alpha"
	case FocusFormat:
		return "format"
	default:
		return "unknown"
	}
}

// Next returns the following element in the Tab ring
func (f Focus) Next() Focus {
	return (f + 1) % focusCount
}

// Prev returns the preceding element in the Tab ring
func (f Focus) Prev() Focus {
	return (f + focusCount - 1) % focusCount
}

// Control maps pointer-driven focus targets to their picker control
func (f Focus) Control() (picker.Control, bool) {
	switch f {
	case FocusSV:
		return picker.ControlSV, true
	case FocusHue:
		return picker.ControlHue, true
	case FocusOpacity:
		return picker.ControlOpacity, true
	}
	return 0, false
}

// TextInput reports whether the focus target edits text
func (f Focus) TextInput() bool {
	return f == FocusColorText || f == FocusAlphaText
}
