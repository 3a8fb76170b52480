package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hsv-picker/colormodel"
	"github.com/lixenwraith/hsv-picker/picker"
	"github.com/lixenwraith/hsv-picker/tui"
)

// SliderCursor is drawn over the hue and opacity tracks; its width is the controller's cursor width
const SliderCursor = "[]"

// Frame is everything one redraw needs
type Frame struct {
	Picker     *picker.Picker
	Layout     Layout
	Focus      Focus
	ColorField *tui.TextField
	AlphaField *tui.TextField
	CanPick    bool   // Eyedropper available
	Status     string // Replaces the help line when set
}

// TerminalRenderer draws picker frames onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	theme  Theme
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, theme Theme) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, theme: theme}
}

// SetTheme swaps the chrome palette, applied on the next frame
func (r *TerminalRenderer) SetTheme(theme Theme) {
	r.theme = theme
}

// Theme returns the active palette
func (r *TerminalRenderer) Theme() Theme {
	return r.theme
}

// RenderFrame redraws the whole screen; the caller shows it
func (r *TerminalRenderer) RenderFrame(f Frame) {
	root := tui.NewRegion(r.screen)
	base := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Text)
	root.Fill(base)

	if f.Layout.TooSmall {
		root.TextCenter(root.H/2, fmt.Sprintf("terminal too small, need %dx%d", MinWidth, MinHeight), base)
		return
	}

	r.drawTitle(root, f, base)
	r.drawSV(root, f)
	r.drawHue(root, f)
	r.drawOpacity(root, f)
	r.drawSwatch(root, f)
	r.drawFields(root, f, base)
	r.drawFormat(root, f, base)
	r.drawHelp(root, f, base)

	if f.Picker.Formats().Open() {
		r.drawDropdown(root, f)
	}
}

func region(root tui.Region, rect picker.Rect) tui.Region {
	return root.Sub(rect.X, rect.Y, rect.W, rect.H)
}

func (r *TerminalRenderer) drawTitle(root tui.Region, f Frame, base tcell.Style) {
	title := region(root, f.Layout.Title)
	title.Text(0, 0, "HSV Picker", base.Bold(true))

	text := f.Picker.Formatted()
	if x := title.W - len(text); x > 11 {
		title.Text(x, 0, text, base.Foreground(r.theme.Dim))
	}
}

// drawFocusMarker points at the focused surface from the margin left of it
func (r *TerminalRenderer) drawFocusMarker(root tui.Region, rect picker.Rect, row int) {
	root.Cell(rect.X-1, row, '▸', tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Accent))
}

func (r *TerminalRenderer) drawSV(root tui.Region, f Frame) {
	rect := f.Layout.SV
	hue := f.Picker.State().Hue
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			nx, ny := rect.Normalize(x, y)
			c := colormodel.FromHSVA(hue, nx, 1-ny, 1).RGB
			root.Cell(x, y, ' ', tcell.StyleDefault.Background(ToTcell(c)))
		}
	}

	cur := f.Picker.Controller().Cursors()
	fg := tcell.ColorBlack
	if cur.SVBorder == picker.ContrastWhite {
		fg = tcell.ColorWhite
	}
	st := f.Picker.State()
	under := colormodel.FromHSVA(st.Hue, st.Saturation, st.Value, 1).RGB
	root.Cell(cur.SVX, cur.SVY, '+', tcell.StyleDefault.Background(ToTcell(under)).Foreground(fg).Bold(true))

	if f.Focus == FocusSV {
		r.drawFocusMarker(root, rect, rect.Y+rect.H/2)
	}
}

func (r *TerminalRenderer) drawHue(root tui.Region, f Frame) {
	rect := f.Layout.Hue
	for x := rect.X; x < rect.X+rect.W; x++ {
		nx, _ := rect.Normalize(x, rect.Y)
		root.Cell(x, rect.Y, ' ', tcell.StyleDefault.Background(ToTcell(HueColor(nx))))
	}

	cursorX := f.Picker.Controller().Cursors().HueX
	r.drawSliderCursor(root, rect, cursorX, func(x int) tcell.Style {
		nx, _ := rect.Normalize(x, rect.Y)
		bg := HueColor(nx)
		return tcell.StyleDefault.Background(ToTcell(bg)).Foreground(Contrast(bg)).Bold(true)
	})

	if f.Focus == FocusHue {
		r.drawFocusMarker(root, rect, rect.Y)
	}
}

func (r *TerminalRenderer) drawOpacity(root tui.Region, f Frame) {
	rect := f.Layout.Opacity
	c := f.Picker.Color()
	cellStyle := func(x int) tcell.Style {
		nx, _ := rect.Normalize(x, rect.Y)
		bg := c.WithAlpha(nx).Over(r.theme.Checker(x-rect.X, 0))
		return tcell.StyleDefault.Background(ToTcell(bg)).Foreground(Contrast(bg)).Bold(true)
	}
	for x := rect.X; x < rect.X+rect.W; x++ {
		root.Cell(x, rect.Y, ' ', cellStyle(x))
	}

	r.drawSliderCursor(root, rect, f.Picker.Controller().Cursors().OpacityX, cellStyle)

	if f.Focus == FocusOpacity {
		r.drawFocusMarker(root, rect, rect.Y)
	}
}

func (r *TerminalRenderer) drawSliderCursor(root tui.Region, rect picker.Rect, cursorX int, style func(x int) tcell.Style) {
	for i, ch := range SliderCursor {
		x := cursorX + i
		if x >= rect.X+rect.W {
			break
		}
		root.Cell(x, rect.Y, ch, style(x))
	}
}

func (r *TerminalRenderer) drawSwatch(root tui.Region, f Frame) {
	rect := f.Layout.Swatch
	c := f.Picker.Color()
	for y := 0; y < rect.H; y++ {
		for x := 0; x < rect.W; x++ {
			bg := c.Over(r.theme.Checker(x, y))
			root.Cell(rect.X+x, rect.Y+y, ' ', tcell.StyleDefault.Background(ToTcell(bg)))
		}
	}
}

func (r *TerminalRenderer) fieldStyle(focused bool, base tcell.Style) tui.TextFieldStyle {
	label := base.Foreground(r.theme.Dim)
	if focused {
		label = base.Foreground(r.theme.Accent).Bold(true)
	}
	text := tcell.StyleDefault.Background(r.theme.Panel).Foreground(r.theme.Text)
	return tui.TextFieldStyle{
		Text:   text,
		Cursor: text.Background(r.theme.Cursor).Foreground(r.theme.Panel),
		Label:  label,
	}
}

func (r *TerminalRenderer) drawFields(root tui.Region, f Frame, base tcell.Style) {
	color := f.Focus == FocusColorText
	region(root, f.Layout.ColorField).TextField(f.ColorField, "Color  ", color, r.fieldStyle(color, base))

	alpha := f.Focus == FocusAlphaText
	region(root, f.Layout.AlphaField).TextField(f.AlphaField, "Alpha  ", alpha, r.fieldStyle(alpha, base))
}

func (r *TerminalRenderer) drawFormat(root tui.Region, f Frame, base tcell.Style) {
	rect := region(root, f.Layout.Format)
	style := r.fieldStyle(f.Focus == FocusFormat, base)

	x := rect.Text(0, 0, "Format ", style.Label)
	rect.Text(x, 0, picker.Label(f.Picker.Formats().Current())+" ▾", base)

	if f.CanPick {
		region(root, f.Layout.Pick).Text(0, 0, pickLabel, base.Foreground(r.theme.Accent))
	}
}

func (r *TerminalRenderer) drawDropdown(root tui.Region, f Frame) {
	menu := region(root, f.Layout.Dropdown)
	text := tcell.StyleDefault.Background(r.theme.Panel).Foreground(r.theme.Text)
	current := f.Picker.Formats().Current()
	for i, fm := range colormodel.Formats {
		st := text
		if fm == current {
			st = st.Reverse(true)
		}
		row := menu.Sub(0, i, menu.W, 1)
		row.Fill(st)
		row.Text(1, 0, picker.Label(fm), st)
	}
}

func (r *TerminalRenderer) drawHelp(root tui.Region, f Frame, base tcell.Style) {
	help := region(root, f.Layout.Help)
	text := f.Status
	if text == "" {
		text = "tab focus  ←→↑↓ adjust  f format  y copy  q quit"
		if f.CanPick {
			text = "tab focus  ←→↑↓ adjust  f format  e pick  y copy  q quit"
		}
	}
	help.TextCenter(0, text, base.Foreground(r.theme.Dim))
}
