package modes

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hsv-picker/eyedropper"
)

// pickResult carries a sampler outcome back into the event loop
type pickResult struct {
	sample string
	err    error
}

func (h *InputHandler) canPick() bool {
	return h.sampler != nil && h.sampler.Available()
}

// startPick runs the sampler off the loop. The result comes back as an
// interrupt event so the store is only written from the loop goroutine.
func (h *InputHandler) startPick() {
	if !h.canPick() || h.picking {
		return
	}
	h.picking = true
	h.status = "picking…"

	ctx, cancel := context.WithCancel(h.ctx)
	h.cancelPick = cancel
	sampler := h.sampler
	go func() {
		sample, err := sampler.Sample(ctx)
		if postErr := h.screen.PostEvent(tcell.NewEventInterrupt(pickResult{sample: sample, err: err})); postErr != nil {
			slog.Warn("eyedropper result dropped", "error", postErr)
		}
	}()
}

// finishPick applies a sample as one batch; cancellation leaves the color unchanged
func (h *InputHandler) finishPick(res pickResult) {
	h.picking = false
	if h.cancelPick != nil {
		h.cancelPick()
		h.cancelPick = nil
	}

	switch {
	case errors.Is(res.err, eyedropper.ErrCancelled):
		h.status = "pick cancelled"
	case res.err != nil:
		slog.Warn("eyedropper failed", "error", res.err)
		h.status = "pick failed"
	default:
		if err := h.picker.ApplySample(res.sample); err != nil {
			slog.Warn("eyedropper sample rejected", "error", err)
			h.status = "pick failed"
			return
		}
		h.resetFields()
		h.status = "picked " + h.picker.Formatted()
	}
}
