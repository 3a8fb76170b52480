package picker

import (
	"github.com/lixenwraith/hsv-picker/colormodel"
)

// State is the picker's source of truth, every field normalized to [0,1]
type State struct {
	Hue        float64 // [0,1] maps to [0,360) degrees
	Saturation float64
	Value      float64
	Alpha      float64
}

// DefaultState is the state at mount: opaque white with hue at red
func DefaultState() State {
	return State{Hue: 0, Saturation: 0, Value: 1, Alpha: 1}
}

// StateFromColor decomposes a color into picker state
func StateFromColor(c colormodel.Color) State {
	h, s, v, a := c.HSVA()
	return State{Hue: h, Saturation: s, Value: v, Alpha: a}
}

// Clamped returns the state with every field clamped to [0,1]
func (s State) Clamped() State {
	return State{
		Hue:        colormodel.Clamp01(s.Hue),
		Saturation: colormodel.Clamp01(s.Saturation),
		Value:      colormodel.Clamp01(s.Value),
		Alpha:      colormodel.Clamp01(s.Alpha),
	}
}

// Color derives the displayable color
func (s State) Color() colormodel.Color {
	return colormodel.FromHSVA(s.Hue, s.Saturation, s.Value, s.Alpha)
}

// Change is a bitmask of state fields touched by a mutation
type Change uint8

const (
	ChangeHue Change = 1 << iota
	ChangeSaturation
	ChangeValue
	ChangeAlpha

	ChangeNone Change = 0
	ChangeAll         = ChangeHue | ChangeSaturation | ChangeValue | ChangeAlpha
)

// Has reports whether any bit of other is set
func (c Change) Has(other Change) bool {
	return c&other != 0
}

// Observer receives the state after a mutation along with the fields it touched
type Observer func(s State, changed Change)

type subscription struct {
	id int
	fn Observer
}

// Store owns the color state. Writes go through clamped setters or Batch;
// observers are notified once per top-level mutation, never mid-batch.
// Not safe for concurrent use: callers mutate from a single event loop.
type Store struct {
	state   State
	subs    []subscription
	nextID  int
	depth   int
	pending Change
}

// NewStore creates a store holding the clamped initial state
func NewStore(initial State) *Store {
	return &Store{state: initial.Clamped()}
}

// State returns a snapshot of the current state
func (s *Store) State() State {
	return s.state
}

// Color derives the current color
func (s *Store) Color() colormodel.Color {
	return s.state.Color()
}

// Subscribe registers fn and returns its cancel function
func (s *Store) Subscribe(fn Observer) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Tx is the write handle passed to Batch
type Tx struct {
	s *Store
}

func (tx Tx) set(field *float64, v float64, c Change) {
	v = colormodel.Clamp01(v)
	if *field == v {
		return
	}
	*field = v
	tx.s.pending |= c
}

// SetHue writes a clamped hue
func (tx Tx) SetHue(v float64) { tx.set(&tx.s.state.Hue, v, ChangeHue) }

// SetSaturation writes a clamped saturation
func (tx Tx) SetSaturation(v float64) { tx.set(&tx.s.state.Saturation, v, ChangeSaturation) }

// SetValue writes a clamped value
func (tx Tx) SetValue(v float64) { tx.set(&tx.s.state.Value, v, ChangeValue) }

// SetAlpha writes a clamped alpha
func (tx Tx) SetAlpha(v float64) { tx.set(&tx.s.state.Alpha, v, ChangeAlpha) }

// SetState writes all four fields
func (tx Tx) SetState(st State) {
	tx.SetHue(st.Hue)
	tx.SetSaturation(st.Saturation)
	tx.SetValue(st.Value)
	tx.SetAlpha(st.Alpha)
}

// State returns the in-flight state, including writes made earlier in the batch
func (tx Tx) State() State {
	return tx.s.state
}

// Batch applies fn's writes and notifies observers once when the outermost batch ends.
// Nested batches fold into the enclosing one.
func (s *Store) Batch(fn func(tx Tx)) {
	s.depth++
	func() {
		defer func() { s.depth-- }()
		fn(Tx{s: s})
	}()
	if s.depth > 0 || s.pending == ChangeNone {
		return
	}
	changed := s.pending
	s.pending = ChangeNone
	s.notify(changed)
}

func (s *Store) notify(changed Change) {
	snapshot := s.state
	// Copy so observers may unsubscribe during dispatch
	subs := append([]subscription(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(snapshot, changed)
	}
}

// SetHue writes a single field and notifies
func (s *Store) SetHue(v float64) { s.Batch(func(tx Tx) { tx.SetHue(v) }) }

// SetSaturation writes a single field and notifies
func (s *Store) SetSaturation(v float64) { s.Batch(func(tx Tx) { tx.SetSaturation(v) }) }

// SetValue writes a single field and notifies
func (s *Store) SetValue(v float64) { s.Batch(func(tx Tx) { tx.SetValue(v) }) }

// SetAlpha writes a single field and notifies
func (s *Store) SetAlpha(v float64) { s.Batch(func(tx Tx) { tx.SetAlpha(v) }) }

// SetState replaces all four fields as one batch
func (s *Store) SetState(st State) { s.Batch(func(tx Tx) { tx.SetState(st) }) }
