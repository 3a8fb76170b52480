package modes

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hsv-picker/logger"
	"github.com/lixenwraith/hsv-picker/picker"
	"github.com/lixenwraith/hsv-picker/render"
)

// fieldLabelW is the width of the "Color  " / "Alpha  " prefix drawn before field text
const fieldLabelW = 7

// handleMouseEvent turns button transitions into press, drag and release.
// The terminal reports only button and drag events, so a move always belongs
// to a drag that started on a surface.
func (h *InputHandler) handleMouseEvent(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btns := ev.Buttons()

	if wheel := btns & (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight); wheel != 0 {
		h.handleWheel(wheel, x, y)
		return
	}

	held := btns & tcell.Button1
	prev := h.buttons
	h.buttons = held

	switch {
	case held != 0 && prev == 0:
		h.status = ""
		h.handlePress(x, y)
	case held != 0:
		if h.dragging {
			logger.Trace(slog.Default(), "pointer drag", "x", x, "y", y)
			h.picker.Controller().Move(x, y)
		}
	case prev != 0:
		h.dragging = false
		h.picker.Controller().Release()
	}
	h.syncFields()
}

func (h *InputHandler) handlePress(x, y int) {
	formats := h.picker.Formats()
	if formats.Open() {
		if f, ok := h.layout.DropdownItem(x, y); ok {
			formats.Select(f)
			h.syncFields()
		} else {
			formats.Close()
		}
		return
	}

	ctrl := h.picker.Controller()
	if ctl, ok := ctrl.HitTest(x, y); ok {
		h.setFocus(focusFor(ctl))
		ctrl.Press(ctl, x, y)
		h.dragging = true
		return
	}

	switch {
	case h.layout.ColorField.Contains(x, y):
		h.setFocus(render.FocusColorText)
		placeCursor(h.colorField.Text, &h.colorField.Cursor, h.colorField.Scroll, x-h.layout.ColorField.X-fieldLabelW)
	case h.layout.AlphaField.Contains(x, y):
		h.setFocus(render.FocusAlphaText)
		placeCursor(h.alphaField.Text, &h.alphaField.Cursor, h.alphaField.Scroll, x-h.layout.AlphaField.X-fieldLabelW)
	case h.layout.Format.Contains(x, y):
		h.setFocus(render.FocusFormat)
		formats.Toggle()
	case h.canPick() && h.layout.Pick.Contains(x, y):
		h.startPick()
	}
}

// handleWheel scrolls the surface under the pointer, or the focused one.
// Bursts beyond the limiter's budget are dropped so a fast wheel does not flood the store.
func (h *InputHandler) handleWheel(wheel tcell.ButtonMask, x, y int) {
	if !h.wheel.Allow() {
		return
	}
	ctrl := h.picker.Controller()
	ctl, ok := ctrl.HitTest(x, y)
	if !ok {
		if ctl, ok = h.focus.Control(); !ok {
			return
		}
	}

	step := StepFine
	if wheel&(tcell.WheelDown|tcell.WheelLeft) != 0 {
		step = -step
	}
	if ctl == picker.ControlSV && wheel&(tcell.WheelUp|tcell.WheelDown) != 0 {
		ctrl.Nudge(ctl, 0, step)
	} else {
		ctrl.Nudge(ctl, step, 0)
	}
	h.syncFields()
}

// placeCursor moves a field cursor to the clicked column
func placeCursor(text []rune, cursor *int, scroll, col int) {
	pos := scroll + col
	if pos < 0 {
		pos = 0
	}
	if pos > len(text) {
		pos = len(text)
	}
	*cursor = pos
}

func focusFor(ctl picker.Control) render.Focus {
	switch ctl {
	case picker.ControlHue:
		return render.FocusHue
	case picker.ControlOpacity:
		return render.FocusOpacity
	default:
		return render.FocusSV
	}
}
