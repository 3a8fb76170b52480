package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hsv-picker/colormodel"
	"github.com/lixenwraith/hsv-picker/picker"
	"github.com/lixenwraith/hsv-picker/tui"
	"github.com/lucasb-eyer/go-colorful"
)

func newTestScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newFrame(t *testing.T, w, h int) Frame {
	t.Helper()
	p := picker.New(picker.Options{CursorW: len(SliderCursor)})
	t.Cleanup(p.Close)
	l := ComputeLayout(w, h)
	l.Apply(p.Controller())
	return Frame{
		Picker:     p,
		Layout:     l,
		ColorField: tui.NewTextField(p.Formatted(), 0),
		AlphaField: tui.NewTextField(p.Text().AlphaText(), 0),
	}
}

func background(t *testing.T, screen tcell.Screen, x, y int) tcell.Color {
	t.Helper()
	_, _, st, _ := screen.GetContent(x, y)
	_, bg, _ := st.Decompose()
	return bg
}

func rowText(screen tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(40, 14)
	if l.TooSmall {
		t.Fatal("40x14 should fit")
	}

	tests := []struct {
		name string
		got  picker.Rect
		want picker.Rect
	}{
		{"sv", l.SV, picker.Rect{X: 1, Y: 1, W: 38, H: 5}},
		{"hue", l.Hue, picker.Rect{X: 1, Y: 7, W: 38, H: 1}},
		{"opacity", l.Opacity, picker.Rect{X: 1, Y: 8, W: 38, H: 1}},
		{"swatch", l.Swatch, picker.Rect{X: 1, Y: 10, W: 6, H: 2}},
		{"color field", l.ColorField, picker.Rect{X: 9, Y: 10, W: 30, H: 1}},
		{"alpha field", l.AlphaField, picker.Rect{X: 9, Y: 11, W: 30, H: 1}},
		{"format", l.Format, picker.Rect{X: 9, Y: 12, W: 13, H: 1}},
		{"pick", l.Pick, picker.Rect{X: 33, Y: 12, W: 6, H: 1}},
		{"dropdown", l.Dropdown, picker.Rect{X: 16, Y: 8, W: 6, H: 4}},
		{"help", l.Help, picker.Rect{X: 0, Y: 13, W: 40, H: 1}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestComputeLayoutTooSmall(t *testing.T) {
	for _, size := range [][2]int{{MinWidth - 1, 20}, {80, MinHeight - 1}} {
		l := ComputeLayout(size[0], size[1])
		if !l.TooSmall {
			t.Errorf("%dx%d should be too small", size[0], size[1])
		}
		if !l.SV.Empty() {
			t.Errorf("%dx%d should leave surfaces empty", size[0], size[1])
		}
	}
}

func TestComputeLayoutCapsWidth(t *testing.T) {
	l := ComputeLayout(200, 40)
	if l.SV.W != maxContentW || l.SV.X != (200-maxContentW)/2 {
		t.Errorf("wide screen SV = %+v", l.SV)
	}
}

func TestDropdownItem(t *testing.T) {
	l := ComputeLayout(40, 14)
	tests := []struct {
		x, y int
		want colormodel.Format
		ok   bool
	}{
		{16, 8, colormodel.FormatHex, true},
		{21, 9, colormodel.FormatRGB, true},
		{16, 11, colormodel.FormatHSV, true},
		{15, 8, 0, false},
		{16, 12, 0, false},
	}
	for _, tt := range tests {
		got, ok := l.DropdownItem(tt.x, tt.y)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("DropdownItem(%d, %d) = %v, %v; want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFocusRing(t *testing.T) {
	if FocusFormat.Next() != FocusSV {
		t.Error("Next should wrap to the SV field")
	}
	if FocusSV.Prev() != FocusFormat {
		t.Error("Prev should wrap to the format selector")
	}
	f := FocusSV
	for i := 0; i < int(focusCount); i++ {
		f = f.Next()
	}
	if f != FocusSV {
		t.Errorf("full cycle ended at %s", f)
	}

	if ctl, ok := FocusOpacity.Control(); !ok || ctl != picker.ControlOpacity {
		t.Errorf("FocusOpacity.Control() = %v, %v", ctl, ok)
	}
	if _, ok := FocusAlphaText.Control(); ok {
		t.Error("text focus has no pointer control")
	}
	if !FocusColorText.TextInput() || FocusFormat.TextInput() {
		t.Error("TextInput mismatch")
	}
}

func TestContrast(t *testing.T) {
	if Contrast(colorful.Color{R: 1, G: 1, B: 1}) != tcell.ColorBlack {
		t.Error("white background needs black text")
	}
	if Contrast(colorful.Color{}) != tcell.ColorWhite {
		t.Error("black background needs white text")
	}
	if Contrast(colorful.Color{R: 1, G: 1}) != tcell.ColorBlack {
		t.Error("yellow background needs black text")
	}
}

func TestRenderFrameSVField(t *testing.T) {
	screen := newTestScreen(t, 40, 14)
	r := NewTerminalRenderer(screen, DarkTheme())
	f := newFrame(t, 40, 14)
	f.Picker.Store().SetState(picker.State{Hue: 0, Saturation: 0.5, Value: 0.5, Alpha: 1})

	r.RenderFrame(f)

	sv := f.Layout.SV
	tests := []struct {
		name string
		x, y int
		want tcell.Color
	}{
		{"top left white", sv.X, sv.Y, tcell.NewRGBColor(255, 255, 255)},
		{"top right pure hue", sv.X + sv.W - 1, sv.Y, tcell.NewRGBColor(255, 0, 0)},
		{"bottom left black", sv.X, sv.Y + sv.H - 1, tcell.NewRGBColor(0, 0, 0)},
	}
	for _, tt := range tests {
		if got := background(t, screen, tt.x, tt.y); got != tt.want {
			t.Errorf("%s: background = %v, want %v", tt.name, got, tt.want)
		}
	}

	cur := f.Picker.Controller().Cursors()
	if ch, _, _, _ := screen.GetContent(cur.SVX, cur.SVY); ch != '+' {
		t.Errorf("SV cursor glyph = %q at (%d,%d)", ch, cur.SVX, cur.SVY)
	}
}

func TestRenderFrameSliderCursors(t *testing.T) {
	screen := newTestScreen(t, 40, 14)
	r := NewTerminalRenderer(screen, DarkTheme())
	f := newFrame(t, 40, 14)
	f.Picker.Store().SetHue(1)

	r.RenderFrame(f)

	hue := f.Layout.Hue
	// Hue 1 pins the cursor so it ends on the last cell
	x := hue.X + hue.W - len(SliderCursor)
	if ch, _, _, _ := screen.GetContent(x, hue.Y); ch != '[' {
		t.Errorf("hue cursor start = %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(x+1, hue.Y); ch != ']' {
		t.Errorf("hue cursor end = %q", ch)
	}

	op := f.Layout.Opacity
	if ch, _, _, _ := screen.GetContent(op.X+op.W-2, op.Y); ch != '[' {
		t.Errorf("opacity cursor at alpha 1 = %q", ch)
	}
}

func TestRenderFrameOpacityTrack(t *testing.T) {
	screen := newTestScreen(t, 40, 14)
	theme := DarkTheme()
	r := NewTerminalRenderer(screen, theme)
	f := newFrame(t, 40, 14)
	f.Picker.Store().SetState(picker.State{Hue: 0, Saturation: 1, Value: 1, Alpha: 0})

	r.RenderFrame(f)

	op := f.Layout.Opacity
	// The transparent end shows the checkerboard; the cursor sits there but keeps the cell background
	if got, want := background(t, screen, op.X, op.Y), ToTcell(theme.Checker(0, 0)); got != want {
		t.Errorf("transparent end = %v, want checker %v", got, want)
	}
	if got := background(t, screen, op.X+op.W-1, op.Y); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("opaque end = %v, want red", got)
	}
}

func TestRenderFrameChrome(t *testing.T) {
	screen := newTestScreen(t, 40, 14)
	r := NewTerminalRenderer(screen, LightTheme())
	f := newFrame(t, 40, 14)
	f.Focus = FocusSV

	r.RenderFrame(f)

	if !strings.Contains(rowText(screen, 0, 40), "HSV Picker") {
		t.Error("title missing")
	}
	if !strings.Contains(rowText(screen, 0, 40), "#ffffff") {
		t.Error("title should show the formatted color")
	}
	if !strings.Contains(rowText(screen, 10, 40), "Color  #ffffff") {
		t.Errorf("color field row = %q", rowText(screen, 10, 40))
	}
	if !strings.Contains(rowText(screen, 11, 40), "Alpha  100%") {
		t.Errorf("alpha field row = %q", rowText(screen, 11, 40))
	}
	if !strings.Contains(rowText(screen, 12, 40), "Format HEX") {
		t.Errorf("format row = %q", rowText(screen, 12, 40))
	}
	if strings.Contains(rowText(screen, 12, 40), pickLabel) {
		t.Error("pick button shown without a sampler")
	}
	if strings.Contains(rowText(screen, 13, 40), "e pick") {
		t.Error("help mentions the eyedropper without a sampler")
	}
	if ch, _, _, _ := screen.GetContent(0, 3); ch != '▸' {
		t.Errorf("focus marker = %q", ch)
	}
}

func TestRenderFrameDropdownAndStatus(t *testing.T) {
	screen := newTestScreen(t, 40, 14)
	r := NewTerminalRenderer(screen, DarkTheme())
	f := newFrame(t, 40, 14)
	f.CanPick = true
	f.Status = "copied #ffffff"
	f.Picker.Formats().Select(colormodel.FormatHSL)
	f.Picker.Formats().Toggle()

	r.RenderFrame(f)

	dd := f.Layout.Dropdown
	for i, want := range []string{"HEX", "RGB", "HSL", "HSV"} {
		if got := rowText(screen, dd.Y+i, 40); !strings.Contains(got, want) {
			t.Errorf("dropdown row %d = %q, want %s", i, got, want)
		}
	}
	_, _, st, _ := screen.GetContent(dd.X+1, dd.Y+2)
	if _, _, attr := st.Decompose(); attr&tcell.AttrReverse == 0 {
		t.Error("current format should be highlighted")
	}

	if !strings.Contains(rowText(screen, 12, 40), pickLabel) {
		t.Error("pick button missing")
	}
	if !strings.Contains(rowText(screen, 13, 40), "copied #ffffff") {
		t.Error("status should replace the help line")
	}
}

func TestRenderFrameTooSmall(t *testing.T) {
	screen := newTestScreen(t, 20, 6)
	r := NewTerminalRenderer(screen, DarkTheme())
	f := newFrame(t, 20, 6)

	r.RenderFrame(f)

	if !strings.Contains(rowText(screen, 3, 20), "too small") {
		t.Errorf("row 3 = %q", rowText(screen, 3, 20))
	}
}
