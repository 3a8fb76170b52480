package modes

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hsv-picker/eyedropper"
	"github.com/lixenwraith/hsv-picker/picker"
	"github.com/lixenwraith/hsv-picker/render"
	"github.com/lixenwraith/hsv-picker/tui"
	"golang.org/x/time/rate"
)

// Nudge steps in normalized units
const (
	StepFine   = 0.01
	StepCoarse = 0.1

	wheelInterval = 15 * time.Millisecond
	wheelBurst    = 4
	fieldMaxLen   = 40
)

// InputHandler routes tcell events to the picker and owns UI-only state:
// keyboard focus, text field buffers, the status line and the eyedropper job.
// All methods run on the event loop goroutine.
type InputHandler struct {
	screen  tcell.Screen
	picker  *picker.Picker
	sampler eyedropper.Sampler

	layout     render.Layout
	focus      render.Focus
	colorField *tui.TextField
	alphaField *tui.TextField
	status     string

	buttons  tcell.ButtonMask // Buttons held at the previous mouse event
	dragging bool             // Press landed on a pointer surface
	wheel    *rate.Limiter

	ctx        context.Context
	stop       context.CancelFunc
	picking    bool
	cancelPick context.CancelFunc
}

// NewInputHandler creates a handler for p drawing on screen; sampler may be nil
func NewInputHandler(screen tcell.Screen, p *picker.Picker, sampler eyedropper.Sampler) *InputHandler {
	ctx, stop := context.WithCancel(context.Background())
	h := &InputHandler{
		screen:     screen,
		picker:     p,
		sampler:    sampler,
		colorField: tui.NewTextField(p.Formatted(), fieldMaxLen),
		alphaField: tui.NewTextField(p.Text().AlphaText(), fieldMaxLen),
		wheel:      rate.NewLimiter(rate.Every(wheelInterval), wheelBurst),
		ctx:        ctx,
		stop:       stop,
	}
	h.Relayout(screen.Size())
	h.setFocus(render.FocusSV)
	return h
}

// Close cancels a running eyedropper job
func (h *InputHandler) Close() {
	h.stop()
}

// Relayout recomputes surface rects for a new screen size
func (h *InputHandler) Relayout(w, height int) {
	h.layout = render.ComputeLayout(w, height)
	h.layout.Apply(h.picker.Controller())
}

// Frame snapshots what the renderer needs
func (h *InputHandler) Frame() render.Frame {
	return render.Frame{
		Picker:     h.picker,
		Layout:     h.layout,
		Focus:      h.focus,
		ColorField: h.colorField,
		AlphaField: h.alphaField,
		CanPick:    h.canPick(),
		Status:     h.status,
	}
}

// Focus returns the element receiving keys
func (h *InputHandler) Focus() render.Focus {
	return h.focus
}

// Status returns the transient status line
func (h *InputHandler) Status() string {
	return h.status
}

// HandleEvent processes a tcell event and returns false if the picker should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.status = ""
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		h.handleMouseEvent(ev)
	case *tcell.EventResize:
		h.Relayout(ev.Size())
	case *tcell.EventInterrupt:
		if res, ok := ev.Data().(pickResult); ok {
			h.finishPick(res)
		}
	}
	return true
}

// setFocus moves keyboard focus. Leaving a text field commits its edit, the
// same as pressing Enter; pointer controls are activated with focus.
func (h *InputHandler) setFocus(f render.Focus) {
	if f != h.focus {
		h.leaveFocus()
		h.focus = f
		slog.Debug("focus", "target", f)
	}
	if ctl, ok := f.Control(); ok {
		h.picker.Controller().Focus(ctl)
	}
}

func (h *InputHandler) leaveFocus() {
	switch h.focus {
	case render.FocusColorText:
		if h.colorField.Value() != h.picker.Formatted() {
			h.commitColor()
		}
	case render.FocusAlphaText:
		if h.alphaField.Value() != h.picker.Text().AlphaText() {
			h.commitAlpha()
		}
	case render.FocusFormat:
		h.picker.Formats().Close()
	}
	if ctl, ok := h.focus.Control(); ok {
		h.picker.Controller().Blur(ctl)
	}
	h.syncFields()
}

// syncFields copies the current color into every text field that is not being edited
func (h *InputHandler) syncFields() {
	if h.focus != render.FocusColorText {
		h.colorField.SetValue(h.picker.Formatted())
	}
	if h.focus != render.FocusAlphaText {
		h.alphaField.SetValue(h.picker.Text().AlphaText())
	}
}

// resetFields discards any edit in progress
func (h *InputHandler) resetFields() {
	h.colorField.SetValue(h.picker.Formatted())
	h.alphaField.SetValue(h.picker.Text().AlphaText())
}

func (h *InputHandler) commitColor() {
	text, ok := h.picker.Text().CommitColor(h.colorField.Value())
	if !ok {
		h.status = "invalid color: " + h.colorField.Value()
	}
	h.colorField.SetValue(text)
	h.alphaField.SetValue(h.picker.Text().AlphaText())
}

func (h *InputHandler) commitAlpha() {
	text, ok := h.picker.Text().CommitAlpha(h.alphaField.Value())
	if !ok {
		h.status = "invalid alpha: " + h.alphaField.Value()
	}
	h.alphaField.SetValue(text)
	h.colorField.SetValue(h.picker.Formatted())
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		h.setFocus(h.focus.Next())
		return true
	case tcell.KeyBacktab:
		h.setFocus(h.focus.Prev())
		return true
	}

	if h.focus.TextInput() {
		h.handleTextKey(ev)
		return true
	}

	if ev.Key() == tcell.KeyEscape {
		h.picker.Formats().Close()
		return true
	}

	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q':
			return false
		case 'f':
			h.picker.Formats().Next()
			h.syncFields()
			return true
		case 'F':
			h.picker.Formats().Prev()
			h.syncFields()
			return true
		case 'e':
			h.startPick()
			return true
		case 'y':
			h.copyColor()
			return true
		}
	}

	if h.focus == render.FocusFormat {
		h.handleFormatKey(ev)
		return true
	}
	if ctl, ok := h.focus.Control(); ok {
		h.handleControlKey(ctl, ev)
	}
	return true
}

// handleTextKey edits the focused text field; Enter commits, Escape reverts
func (h *InputHandler) handleTextKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		if h.focus == render.FocusColorText {
			h.commitColor()
		} else {
			h.commitAlpha()
		}
	case tcell.KeyEscape:
		h.resetFields()
	default:
		if h.focus == render.FocusColorText {
			h.colorField.HandleKey(ev)
		} else {
			h.alphaField.HandleKey(ev)
		}
	}
}

func (h *InputHandler) handleFormatKey(ev *tcell.EventKey) {
	formats := h.picker.Formats()
	switch ev.Key() {
	case tcell.KeyEnter:
		formats.Toggle()
	case tcell.KeyUp, tcell.KeyLeft:
		formats.Prev()
	case tcell.KeyDown, tcell.KeyRight:
		formats.Next()
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			formats.Toggle()
		}
	}
	h.syncFields()
}

// handleControlKey nudges the focused surface. The SV field maps left/right to
// saturation and up/down to value; sliders accept either axis.
func (h *InputHandler) handleControlKey(ctl picker.Control, ev *tcell.EventKey) {
	step := StepFine
	if ev.Modifiers()&tcell.ModShift != 0 {
		step = StepCoarse
	}

	ctrl := h.picker.Controller()
	switch ev.Key() {
	case tcell.KeyLeft:
		ctrl.Nudge(ctl, -step, 0)
	case tcell.KeyRight:
		ctrl.Nudge(ctl, step, 0)
	case tcell.KeyUp:
		if ctl == picker.ControlSV {
			ctrl.Nudge(ctl, 0, step)
		} else {
			ctrl.Nudge(ctl, step, 0)
		}
	case tcell.KeyDown:
		if ctl == picker.ControlSV {
			ctrl.Nudge(ctl, 0, -step)
		} else {
			ctrl.Nudge(ctl, -step, 0)
		}
	case tcell.KeyHome:
		ctrl.Nudge(ctl, -1, 0)
	case tcell.KeyEnd:
		ctrl.Nudge(ctl, 1, 0)
	default:
		return
	}
	h.syncFields()
}

// copyColor puts the formatted color on the terminal clipboard (OSC 52)
func (h *InputHandler) copyColor() {
	text := h.picker.Formatted()
	h.screen.SetClipboard([]byte(text))
	h.status = "copied " + text
}
