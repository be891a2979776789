package input

// Lifecycle holds the window signals of the current frame. The edge fields
// are cleared by Reset; the level fields (resolution, scale, focus) persist.
type Lifecycle struct {
	closeRequested bool
	destroyed      bool

	resized       bool
	width, height int
	hasSize       bool

	scaleChanged bool
	scale        float64

	focused bool
	dropped []string
}

// ObserveCloseRequested flags a close request for this frame.
func (lc *Lifecycle) ObserveCloseRequested() { lc.closeRequested = true }

// ObserveDestroyed flags window destruction for this frame.
func (lc *Lifecycle) ObserveDestroyed() { lc.destroyed = true }

func (lc *Lifecycle) observeResized(w, h int) {
	lc.resized = true
	lc.width, lc.height = w, h
	lc.hasSize = true
}

func (lc *Lifecycle) observeScale(f float64) {
	lc.scaleChanged = true
	lc.scale = f
}

func (lc *Lifecycle) observeFocus(focused bool) { lc.focused = focused }

func (lc *Lifecycle) observeDropped(path string) {
	lc.dropped = append(lc.dropped, path)
}

// Reset clears the per-frame edges.
func (lc *Lifecycle) Reset() {
	lc.closeRequested = false
	lc.destroyed = false
	lc.resized = false
	lc.scaleChanged = false
	lc.dropped = lc.dropped[:0]
}

// CloseRequested reports whether closing was requested this frame.
func (lc *Lifecycle) CloseRequested() bool { return lc.closeRequested }

// Destroyed reports whether the window was destroyed this frame.
func (lc *Lifecycle) Destroyed() bool { return lc.destroyed }
