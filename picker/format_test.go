package picker

import (
	"testing"

	"github.com/lixenwraith/hsv-picker/colormodel"
)

func TestFormatSelectorDefaults(t *testing.T) {
	if got := NewFormatSelector(colormodel.FormatHex).Current(); got != colormodel.FormatHex {
		t.Errorf("Current() = %s, want hex", got)
	}
	if got := NewFormatSelector(colormodel.Format(42)).Current(); got != colormodel.FormatHex {
		t.Errorf("invalid start format should fall back to hex, got %s", got)
	}
}

func TestFormatSelectorCycle(t *testing.T) {
	fs := NewFormatSelector(colormodel.FormatHex)
	want := []colormodel.Format{colormodel.FormatRGB, colormodel.FormatHSL, colormodel.FormatHSV, colormodel.FormatHex}
	for i, w := range want {
		if got := fs.Next(); got != w {
			t.Errorf("Next() #%d = %s, want %s", i, got, w)
		}
	}
	if got := fs.Prev(); got != colormodel.FormatHSV {
		t.Errorf("Prev() from hex = %s, want hsv", got)
	}
}

func TestFormatSelectDoesNotTouchState(t *testing.T) {
	p := New(Options{})
	defer p.Close()
	before := p.State()
	calls := 0
	p.Store().Subscribe(func(State, Change) { calls++ })

	p.Formats().Toggle()
	p.Formats().Select(colormodel.FormatHSV)
	if p.Formats().Open() {
		t.Error("Select should close the dropdown")
	}
	if p.State() != before || calls != 0 {
		t.Error("selecting a format changed color state")
	}
}

func TestFormatSelectPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Select with an unknown format should panic")
		}
	}()
	NewFormatSelector(colormodel.FormatHex).Select(colormodel.Format(7))
}

func TestLabel(t *testing.T) {
	want := map[colormodel.Format]string{
		colormodel.FormatHex: "HEX",
		colormodel.FormatRGB: "RGB",
		colormodel.FormatHSL: "HSL",
		colormodel.FormatHSV: "HSV",
	}
	for f, w := range want {
		if got := Label(f); got != w {
			t.Errorf("Label(%s) = %q, want %q", f, got, w)
		}
	}
}
