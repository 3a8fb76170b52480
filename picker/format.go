package picker

import (
	"fmt"

	"github.com/lixenwraith/hsv-picker/colormodel"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatSelector holds the current display format. Changing it never touches color state.
type FormatSelector struct {
	current colormodel.Format
	open    bool
}

// NewFormatSelector starts at f, hex when f is not a display format
func NewFormatSelector(f colormodel.Format) *FormatSelector {
	if !f.Valid() {
		f = colormodel.FormatHex
	}
	return &FormatSelector{current: f}
}

// Current returns the selected format
func (fs *FormatSelector) Current() colormodel.Format {
	return fs.current
}

// Select sets the format and closes the dropdown. The set is closed, so an
// unknown format is a caller bug.
func (fs *FormatSelector) Select(f colormodel.Format) {
	if !f.Valid() {
		panic(fmt.Sprintf("picker: invalid display format %d", f))
	}
	fs.current = f
	fs.open = false
}

// Next advances to the following format, wrapping
func (fs *FormatSelector) Next() colormodel.Format {
	fs.current = colormodel.Formats[(indexOf(fs.current)+1)%len(colormodel.Formats)]
	return fs.current
}

// Prev steps back to the previous format, wrapping
func (fs *FormatSelector) Prev() colormodel.Format {
	n := len(colormodel.Formats)
	fs.current = colormodel.Formats[(indexOf(fs.current)+n-1)%n]
	return fs.current
}

// Open reports whether the dropdown list is expanded
func (fs *FormatSelector) Open() bool {
	return fs.open
}

// Toggle expands or collapses the dropdown
func (fs *FormatSelector) Toggle() {
	fs.open = !fs.open
}

// Close collapses the dropdown
func (fs *FormatSelector) Close() {
	fs.open = false
}

// Label returns the upper-case name shown on the selector
func Label(f colormodel.Format) string {
	// Casers carry state, one per call keeps Label goroutine-safe
	return cases.Upper(language.Und).String(f.String())
}

func indexOf(f colormodel.Format) int {
	for i, candidate := range colormodel.Formats {
		if candidate == f {
			return i
		}
	}
	return 0
}
