package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// isWordChar returns true for word-constituent characters
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// TextField holds editable single-line text with a cursor and horizontal scroll
type TextField struct {
	Text   []rune
	Cursor int // Position before which the cursor sits (0 = before first char)
	Scroll int // First visible rune index
	MaxLen int // Max runes, 0 = unlimited
}

// NewTextField creates a field holding initial with the cursor at the end
func NewTextField(initial string, maxLen int) *TextField {
	t := &TextField{MaxLen: maxLen}
	t.SetValue(initial)
	return t
}

// Value returns current text as string
func (t *TextField) Value() string {
	return string(t.Text)
}

// SetValue replaces text and moves cursor to end
func (t *TextField) SetValue(s string) {
	t.Text = []rune(s)
	if t.MaxLen > 0 && len(t.Text) > t.MaxLen {
		t.Text = t.Text[:t.MaxLen]
	}
	t.Cursor = len(t.Text)
	t.Scroll = 0
}

// Insert adds rune at cursor position; returns false when the field is full
func (t *TextField) Insert(r rune) bool {
	if t.MaxLen > 0 && len(t.Text) >= t.MaxLen {
		return false
	}
	t.Text = append(t.Text[:t.Cursor], append([]rune{r}, t.Text[t.Cursor:]...)...)
	t.Cursor++
	return true
}

// DeleteBackward removes rune before cursor
func (t *TextField) DeleteBackward() bool {
	if t.Cursor > 0 {
		t.Text = append(t.Text[:t.Cursor-1], t.Text[t.Cursor:]...)
		t.Cursor--
		return true
	}
	return false
}

// DeleteForward removes rune at cursor
func (t *TextField) DeleteForward() bool {
	if t.Cursor < len(t.Text) {
		t.Text = append(t.Text[:t.Cursor], t.Text[t.Cursor+1:]...)
		return true
	}
	return false
}

// DeleteWordBackward removes word before cursor
func (t *TextField) DeleteWordBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	end := t.Cursor
	for end > 0 && !isWordChar(t.Text[end-1]) {
		end--
	}
	start := end
	for start > 0 && isWordChar(t.Text[start-1]) {
		start--
	}
	t.Text = append(t.Text[:start], t.Text[t.Cursor:]...)
	t.Cursor = start
	return true
}

// DeleteToStart removes from start to cursor
func (t *TextField) DeleteToStart() bool {
	if t.Cursor > 0 {
		t.Text = t.Text[t.Cursor:]
		t.Cursor = 0
		t.Scroll = 0
		return true
	}
	return false
}

// DeleteToEnd removes from cursor to end
func (t *TextField) DeleteToEnd() bool {
	if t.Cursor < len(t.Text) {
		t.Text = t.Text[:t.Cursor]
		return true
	}
	return false
}

// AdjustScroll keeps the cursor visible within viewport width
func (t *TextField) AdjustScroll(viewportW int) {
	if viewportW <= 0 {
		return
	}
	if t.Cursor < t.Scroll {
		t.Scroll = t.Cursor
	}
	if t.Cursor >= t.Scroll+viewportW {
		t.Scroll = t.Cursor - viewportW + 1
	}
	if t.Scroll < 0 {
		t.Scroll = 0
	}
}

// HandleKey applies an editing key, returns true if the key was consumed.
// Enter, Escape and Tab are left to the caller.
func (t *TextField) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		if t.Cursor > 0 {
			t.Cursor--
		}
		return true
	case tcell.KeyRight:
		if t.Cursor < len(t.Text) {
			t.Cursor++
		}
		return true
	case tcell.KeyHome, tcell.KeyCtrlA:
		t.Cursor = 0
		return true
	case tcell.KeyEnd, tcell.KeyCtrlE:
		t.Cursor = len(t.Text)
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.DeleteBackward()
		return true
	case tcell.KeyDelete:
		t.DeleteForward()
		return true
	case tcell.KeyCtrlW:
		t.DeleteWordBackward()
		return true
	case tcell.KeyCtrlU:
		t.DeleteToStart()
		return true
	case tcell.KeyCtrlK:
		t.DeleteToEnd()
		return true
	case tcell.KeyRune:
		if r := ev.Rune(); r >= 32 {
			t.Insert(r)
			return true
		}
	}
	return false
}

// TextFieldStyle defines text field colors
type TextFieldStyle struct {
	Text   tcell.Style
	Cursor tcell.Style
	Label  tcell.Style
}

// TextField draws the field with an optional label prefix. The cursor cell is
// highlighted only when focused.
func (r Region) TextField(t *TextField, label string, focused bool, style TextFieldStyle) {
	if r.W < 1 || r.H < 1 {
		return
	}
	r.Sub(0, 0, r.W, 1).Fill(style.Text)

	x := r.Text(0, 0, label, style.Label)
	viewW := r.W - x
	if viewW <= 0 {
		return
	}
	t.AdjustScroll(viewW)

	for i := 0; i < viewW; i++ {
		idx := t.Scroll + i
		ch := ' '
		if idx < len(t.Text) {
			ch = t.Text[idx]
		}
		st := style.Text
		if focused && idx == t.Cursor {
			st = style.Cursor
		}
		if idx < len(t.Text) || (focused && idx == t.Cursor) {
			r.Cell(x+i, 0, ch, st)
		}
	}
}
