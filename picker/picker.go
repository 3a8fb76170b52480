// Package picker is the HSV color picker component: a clamped HSVA store, a
// pointer controller for the saturation/value field and the hue and opacity
// sliders, text sync for typed colors and alpha percentages, a display format
// selector, and eyedropper batching.
//
// All methods are meant to be called from one event loop goroutine.
package picker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lixenwraith/hsv-picker/colormodel"
	"github.com/lixenwraith/hsv-picker/eyedropper"
)

// Picker owns the color state and the three controls that drive it
type Picker struct {
	store   *Store
	formats *FormatSelector
	ctl     *Controller
	text    *TextSync
}

// Options configures a new picker; the zero value mounts the default state in hex
type Options struct {
	Initial  *State
	Format   colormodel.Format
	CursorW  int
	Feedback Feedback
}

// New mounts a picker component
func New(opts Options) *Picker {
	initial := DefaultState()
	if opts.Initial != nil {
		initial = *opts.Initial
	}
	store := NewStore(initial)
	formats := NewFormatSelector(opts.Format)
	return &Picker{
		store:   store,
		formats: formats,
		ctl:     NewController(store, opts.CursorW),
		text:    NewTextSync(store, formats, opts.Feedback),
	}
}

// Close tears down subscriptions; the picker must not be used afterwards
func (p *Picker) Close() {
	p.ctl.Close()
}

// Store exposes the color state
func (p *Picker) Store() *Store { return p.store }

// Controller exposes the pointer controller
func (p *Picker) Controller() *Controller { return p.ctl }

// Formats exposes the display format selector
func (p *Picker) Formats() *FormatSelector { return p.formats }

// Text exposes the text field sync
func (p *Picker) Text() *TextSync { return p.text }

// State returns the current color state
func (p *Picker) State() State { return p.store.State() }

// Color derives the current color
func (p *Picker) Color() colormodel.Color { return p.store.Color() }

// Formatted is the current color in the selected display format
func (p *Picker) Formatted() string { return p.text.ColorText() }

// ApplySample decodes a sampled color and writes all four fields as one batch.
// The display format is left alone, a sample is not typed input.
func (p *Picker) ApplySample(s string) error {
	c, _, err := colormodel.Parse(colormodel.NormalizeHex(s))
	if err != nil {
		return fmt.Errorf("sample %q: %w", s, err)
	}
	p.store.SetState(StateFromColor(c))
	return nil
}

// Pick runs sampler and applies the result. applied is false when the user
// cancelled, which is not an error.
func (p *Picker) Pick(ctx context.Context, sampler eyedropper.Sampler) (applied bool, err error) {
	if sampler == nil || !sampler.Available() {
		return false, eyedropper.ErrUnavailable
	}
	s, err := sampler.Sample(ctx)
	if errors.Is(err, eyedropper.ErrCancelled) {
		slog.Debug("eyedropper cancelled", "error", err)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := p.ApplySample(s); err != nil {
		return false, err
	}
	return true, nil
}
