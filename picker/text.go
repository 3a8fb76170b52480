package picker

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lixenwraith/hsv-picker/colormodel"
)

// ErrInvalidAlpha is reported when alpha text holds no digits or yields an invalid color
var ErrInvalidAlpha = errors.New("invalid alpha")

// Feedback is notified of text commit outcomes
type Feedback interface {
	Commit()
	Reject()
}

type nopFeedback struct{}

func (nopFeedback) Commit() {}
func (nopFeedback) Reject() {}

// TextSync keeps the color and alpha text fields consistent with the store.
// A rejected commit leaves state untouched and hands back the last valid text.
type TextSync struct {
	store    *Store
	formats  *FormatSelector
	feedback Feedback
}

// NewTextSync wires text commits to store and formats; feedback may be nil
func NewTextSync(store *Store, formats *FormatSelector, feedback Feedback) *TextSync {
	if feedback == nil {
		feedback = nopFeedback{}
	}
	return &TextSync{store: store, formats: formats, feedback: feedback}
}

// ColorText is the current color in the selected display format
func (t *TextSync) ColorText() string {
	return t.store.Color().String(t.formats.Current())
}

// AlphaText is the current alpha as a floored integer percentage
func (t *TextSync) AlphaText() string {
	return strconv.Itoa(colormodel.AlphaPercent(t.store.State().Alpha)) + "%"
}

// CommitColor parses input and, on success, replaces all four state fields in
// one batch and switches the display format to the notation typed. Bare hex
// digits are accepted without '#'. It returns the text the field should show.
func (t *TextSync) CommitColor(input string) (string, bool) {
	c, f, err := colormodel.Parse(colormodel.NormalizeHex(input))
	if err != nil {
		slog.Debug("color text rejected", "input", input, "error", err)
		t.feedback.Reject()
		return t.ColorText(), false
	}

	t.store.SetState(StateFromColor(c))
	t.formats.Select(f)
	t.feedback.Commit()
	return t.ColorText(), true
}

// CommitAlpha reads the digits of input as a percentage and commits the clamped alpha.
// The opacity slider follows through the store subscription.
func (t *TextSync) CommitAlpha(input string) (string, bool) {
	alpha, err := ParseAlphaPercent(input)
	if err == nil && !t.store.Color().WithAlpha(alpha).Valid() {
		err = ErrInvalidAlpha
	}
	if err != nil {
		slog.Debug("alpha text rejected", "input", input, "error", err)
		t.feedback.Reject()
		return t.AlphaText(), false
	}

	t.store.SetAlpha(alpha)
	t.feedback.Commit()
	return t.AlphaText(), true
}

// ParseAlphaPercent keeps only the digits of s, divides by 100 and clamps to [0,1].
// "50%", "50" and "5 0" all yield 0.5; text without digits is invalid.
func ParseAlphaPercent(s string) (float64, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0, ErrInvalidAlpha
	}

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// Only overflow is possible here, which clamps to fully opaque
		return 1, nil
	}
	return colormodel.Clamp01(float64(n) / 100), nil
}
