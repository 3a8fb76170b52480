package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestRegionSubClips(t *testing.T) {
	screen := newScreen(t, 20, 10)
	root := NewRegion(screen)

	tests := []struct {
		name       string
		x, y, w, h int
		want       Region
	}{
		{"inside", 2, 3, 5, 4, Region{X: 2, Y: 3, W: 5, H: 4}},
		{"overhang right", 15, 0, 10, 2, Region{X: 15, Y: 0, W: 5, H: 2}},
		{"negative origin", -3, -2, 5, 5, Region{X: 0, Y: 0, W: 2, H: 3}},
		{"outside", 25, 0, 4, 4, Region{X: 25, Y: 0, W: 0, H: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := root.Sub(tt.x, tt.y, tt.w, tt.h)
			got.Screen = nil
			if got != tt.want {
				t.Errorf("Sub() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRegionTextClipsToWidth(t *testing.T) {
	screen := newScreen(t, 20, 4)
	r := NewRegion(screen).Sub(3, 1, 4, 1)

	n := r.Text(0, 0, "abcdefg", tcell.StyleDefault)
	if n != 4 {
		t.Errorf("Text() wrote %d cells, want 4", n)
	}
	for x, want := range []rune{'a', 'b', 'c', 'd'} {
		if ch, _, _, _ := screen.GetContent(3+x, 1); ch != want {
			t.Errorf("cell %d = %q, want %q", 3+x, ch, want)
		}
	}
	if ch, _, _, _ := screen.GetContent(7, 1); ch == 'e' {
		t.Error("text leaked past the region edge")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"#ff0000", 10, "#ff0000"},
		{"#ff0000", 4, "#ff…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTextFieldEditing(t *testing.T) {
	tf := NewTextField("#ff00", 0)
	if tf.Cursor != 5 {
		t.Fatalf("cursor = %d, want 5", tf.Cursor)
	}

	tf.HandleKey(runeKey('0'))
	tf.HandleKey(runeKey('0'))
	if tf.Value() != "#ff0000" {
		t.Errorf("after typing: %q", tf.Value())
	}

	tf.HandleKey(key(tcell.KeyHome))
	tf.HandleKey(key(tcell.KeyDelete))
	if tf.Value() != "ff0000" || tf.Cursor != 0 {
		t.Errorf("after delete at start: %q cursor %d", tf.Value(), tf.Cursor)
	}

	tf.HandleKey(key(tcell.KeyEnd))
	tf.HandleKey(key(tcell.KeyBackspace2))
	if tf.Value() != "ff000" {
		t.Errorf("after backspace: %q", tf.Value())
	}

	tf.HandleKey(key(tcell.KeyLeft))
	tf.HandleKey(key(tcell.KeyLeft))
	tf.HandleKey(key(tcell.KeyCtrlK))
	if tf.Value() != "ff0" {
		t.Errorf("after ctrl-k: %q", tf.Value())
	}

	if tf.HandleKey(key(tcell.KeyEnter)) {
		t.Error("enter should be left to the caller")
	}
}

func TestTextFieldDeleteWordBackward(t *testing.T) {
	tf := NewTextField("rgb(10, 20, ", 0)
	tf.DeleteWordBackward()
	if tf.Value() != "rgb(10, " {
		t.Errorf("got %q", tf.Value())
	}
	tf.HandleKey(key(tcell.KeyCtrlU))
	if tf.Value() != "" || tf.Cursor != 0 {
		t.Errorf("ctrl-u left %q", tf.Value())
	}
}

func TestTextFieldMaxLen(t *testing.T) {
	tf := NewTextField("12345", 4)
	if tf.Value() != "1234" {
		t.Fatalf("SetValue should truncate to MaxLen, got %q", tf.Value())
	}
	if tf.Insert('9') {
		t.Error("insert into a full field should fail")
	}
}

func TestTextFieldAdjustScroll(t *testing.T) {
	tf := NewTextField("0123456789", 0)
	tf.AdjustScroll(4)
	if tf.Scroll != 7 {
		t.Errorf("scroll = %d, want 7 to show cursor at end", tf.Scroll)
	}
	tf.Cursor = 2
	tf.AdjustScroll(4)
	if tf.Scroll != 2 {
		t.Errorf("scroll = %d, want 2", tf.Scroll)
	}
}

func TestRegionTextFieldDrawsLabelAndCursor(t *testing.T) {
	screen := newScreen(t, 20, 2)
	cursor := tcell.StyleDefault.Reverse(true)
	style := TextFieldStyle{Text: tcell.StyleDefault, Cursor: cursor, Label: tcell.StyleDefault.Bold(true)}

	tf := NewTextField("50%", 0)
	NewRegion(screen).Sub(0, 0, 10, 1).TextField(tf, "A ", true, style)

	want := "A 50%"
	for x, r := range want {
		if ch, _, _, _ := screen.GetContent(x, 0); ch != r {
			t.Errorf("cell %d = %q, want %q", x, ch, r)
		}
	}
	if _, _, st, _ := screen.GetContent(len(want), 0); st != cursor {
		t.Error("focused field should highlight the cursor cell past the text")
	}
}
