package picker

// Control identifies one of the three pointer-driven surfaces
type Control uint8

const (
	ControlSV Control = iota // 2D saturation/value field
	ControlHue
	ControlOpacity
	controlCount
)

// Controls lists the pointer controls in focus order
var Controls = [...]Control{ControlSV, ControlHue, ControlOpacity}

func (c Control) String() string {
	switch c {
	case ControlSV:
		return "sv"
	case ControlHue:
		return "hue"
	case ControlOpacity:
		return "opacity"
	default:
		return "unknown"
	}
}

// Contrast is the border tone drawn around the 2D cursor
type Contrast uint8

const (
	ContrastBlack Contrast = iota // over light colors
	ContrastWhite                 // over dark colors
)

// Cursors holds derived cursor cells, recomputed after every state change or relayout
type Cursors struct {
	SVX, SVY int
	SVBorder Contrast
	HueX     int
	OpacityX int
}

// Controller translates pointer coordinates over the three surfaces into clamped
// state writes. Each control is Idle or Active; while Active, global moves route to it.
type Controller struct {
	store    *Store
	surfaces [controlCount]Rect
	active   [controlCount]bool
	cursorW  int // slider cursor width in cells
	cursors  Cursors
	cancel   func()
}

// NewController binds a controller to store and subscribes to its changes.
// cursorW is the slider cursor width in cells, minimum 1.
func NewController(store *Store, cursorW int) *Controller {
	if cursorW < 1 {
		cursorW = 1
	}
	c := &Controller{store: store, cursorW: cursorW}
	c.cancel = store.Subscribe(c.onChange)
	c.resync(store.State(), ChangeAll)
	return c
}

// Close releases the store subscription and deactivates every control
func (c *Controller) Close() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.active = [controlCount]bool{}
}

// SetSurface updates the bounds of a control after layout and re-derives cursors
func (c *Controller) SetSurface(ctl Control, r Rect) {
	if ctl >= controlCount {
		return
	}
	c.surfaces[ctl] = r
	c.resync(c.store.State(), ChangeAll)
}

// Surface returns the current bounds of a control
func (c *Controller) Surface(ctl Control) Rect {
	if ctl >= controlCount {
		return Rect{}
	}
	return c.surfaces[ctl]
}

// HitTest returns the control whose surface contains (x, y)
func (c *Controller) HitTest(x, y int) (Control, bool) {
	for _, ctl := range Controls {
		if c.surfaces[ctl].Contains(x, y) {
			return ctl, true
		}
	}
	return 0, false
}

// Active reports whether a control currently receives global moves
func (c *Controller) Active(ctl Control) bool {
	return ctl < controlCount && c.active[ctl]
}

// AnyActive reports whether at least one control is active
func (c *Controller) AnyActive() bool {
	for _, a := range c.active {
		if a {
			return true
		}
	}
	return false
}

// Focus activates a control
func (c *Controller) Focus(ctl Control) {
	if ctl < controlCount {
		c.active[ctl] = true
	}
}

// Blur deactivates a control
func (c *Controller) Blur(ctl Control) {
	if ctl < controlCount {
		c.active[ctl] = false
	}
}

// Press activates a control and applies the pointer position immediately
func (c *Controller) Press(ctl Control, x, y int) {
	if ctl >= controlCount {
		return
	}
	c.active[ctl] = true
	c.update(ctl, x, y)
}

// Move routes a global pointer move to every active control
func (c *Controller) Move(x, y int) {
	for _, ctl := range Controls {
		if c.active[ctl] {
			c.update(ctl, x, y)
		}
	}
}

// Release is the global pointer-up: every control returns to Idle
func (c *Controller) Release() {
	c.active = [controlCount]bool{}
}

func (c *Controller) update(ctl Control, x, y int) {
	r := c.surfaces[ctl]
	if r.Empty() {
		return
	}
	nx, ny := r.Normalize(x, y)
	switch ctl {
	case ControlSV:
		c.SetSaturationValue(nx, ny)
	case ControlHue:
		c.SetHue(nx)
	case ControlOpacity:
		c.SetOpacity(nx)
	}
}

// SetSaturationValue writes saturation = nx and value = 1 - ny, both clamped, as one batch.
// ny grows downward, value grows upward.
func (c *Controller) SetSaturationValue(nx, ny float64) {
	c.store.Batch(func(tx Tx) {
		tx.SetSaturation(nx)
		tx.SetValue(1 - ny)
	})
}

// SetHue writes a clamped hue
func (c *Controller) SetHue(nx float64) {
	c.store.SetHue(nx)
}

// SetOpacity writes a clamped alpha
func (c *Controller) SetOpacity(nx float64) {
	c.store.SetAlpha(nx)
}

// Nudge moves a control by a normalized step, as arrow keys do. For the SV field
// dx shifts saturation and dy shifts value; sliders only use dx.
func (c *Controller) Nudge(ctl Control, dx, dy float64) {
	st := c.store.State()
	switch ctl {
	case ControlSV:
		c.store.Batch(func(tx Tx) {
			tx.SetSaturation(st.Saturation + dx)
			tx.SetValue(st.Value + dy)
		})
	case ControlHue:
		c.store.SetHue(st.Hue + dx)
	case ControlOpacity:
		c.store.SetAlpha(st.Alpha + dx)
	}
}

// SyncOpacity re-derives the opacity cursor for alpha. Text entry reaches the
// slider through the store subscription rather than a broadcast.
func (c *Controller) SyncOpacity(alpha float64) {
	c.cursors.OpacityX = c.sliderCell(ControlOpacity, alpha)
}

// Cursors returns the derived cursor cells
func (c *Controller) Cursors() Cursors {
	return c.cursors
}

func (c *Controller) onChange(s State, changed Change) {
	c.resync(s, changed)
}

func (c *Controller) resync(s State, changed Change) {
	if changed.Has(ChangeHue | ChangeSaturation | ChangeValue) {
		r := c.surfaces[ControlSV]
		c.cursors.SVX = cell(r.X, r.W-1, s.Saturation)
		c.cursors.SVY = cell(r.Y, r.H-1, 1-s.Value)
		c.cursors.SVBorder = ContrastBlack
		if s.Color().IsDark() {
			c.cursors.SVBorder = ContrastWhite
		}
	}
	if changed.Has(ChangeHue) {
		c.cursors.HueX = c.sliderCell(ControlHue, s.Hue)
	}
	if changed.Has(ChangeAlpha) {
		c.SyncOpacity(s.Alpha)
	}
}

// sliderCell places a slider cursor at frac along the track, pinned so the
// cursor never overhangs the right edge
func (c *Controller) sliderCell(ctl Control, frac float64) int {
	r := c.surfaces[ctl]
	if r.W <= 0 {
		return r.X
	}
	x := cell(r.X, r.W-1, frac)
	if limit := r.X + r.W - c.cursorW; x > limit {
		x = max(limit, r.X)
	}
	return x
}
