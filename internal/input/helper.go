// Package input folds window and device events into a per-frame snapshot of
// input state.
//
// A Helper is driven by the event loop: BeginFrame when a new batch of events
// starts, Fold for each event, EndFrame when the batch is complete. Between
// EndFrame and the next BeginFrame the query methods are stable and can be
// called any number of times.
//
// A Helper is not safe for concurrent use. The goroutine feeding events must
// be the one reading the snapshot, or access must be synchronized externally.
package input

import "time"

// Helper is the frame-boundary input aggregator.
type Helper struct {
	physical *Ledger[KeyCode]
	logical  *Ledger[LogicalKey]
	mouse    *Ledger[MouseButton]

	motion Motion
	window Lifecycle

	text      []byte
	modifiers Modifiers

	state    StepState
	boundary Boundary
	frame    uint64

	now       func() time.Time
	lastBegin time.Time
	delta     time.Duration
}

// Option configures a Helper.
type Option func(*Helper)

// WithBoundary sets what ends a step. The default is BoundaryExplicit.
func WithBoundary(b Boundary) Option {
	return func(h *Helper) { h.boundary = b }
}

// WithClock replaces time.Now for DeltaTime.
func WithClock(now func() time.Time) Option {
	return func(h *Helper) { h.now = now }
}

// NewHelper creates an idle Helper.
func NewHelper(opts ...Option) *Helper {
	h := &Helper{
		physical: NewLedger[KeyCode](),
		logical:  NewLedger[LogicalKey](),
		mouse:    NewLedger[MouseButton](),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// BeginFrame opens a new frame. The previous frame's key state becomes the
// baseline for edge detection and all per-frame accumulators are cleared.
// Calling it while a frame is still accumulating abandons that frame.
func (h *Helper) BeginFrame() {
	h.physical.Commit()
	h.logical.Commit()
	h.mouse.Commit()
	h.motion.Reset()
	h.window.Reset()
	h.text = h.text[:0]

	now := h.now()
	if !h.lastBegin.IsZero() {
		h.delta = now.Sub(h.lastBegin)
	}
	h.lastBegin = now

	h.frame++
	h.state = StepAccumulating
}

// EndFrame completes the open frame. It does nothing unless a frame is
// accumulating.
func (h *Helper) EndFrame() {
	if h.state == StepAccumulating {
		h.state = StepReady
	}
}

// Fold applies one event to the open frame. Folding before the first
// BeginFrame opens an implicit first frame; folding after EndFrame reopens
// the current frame without clearing it.
//
// Fold reports whether ev ended the step under the configured Boundary, in
// which case the snapshot is Ready and may be queried.
func (h *Helper) Fold(ev Event) bool {
	if h.state != StepAccumulating {
		if h.frame == 0 {
			h.frame = 1
			h.lastBegin = h.now()
		}
		h.state = StepAccumulating
	}

	switch e := ev.(type) {
	case KeyboardInput:
		h.foldKey(e)
	case TextInput:
		h.text = append(h.text, e.Text...)
	case ModifiersChanged:
		h.modifiers = e.Modifiers
	case CursorMoved:
		h.motion.ObserveCursorMoved(e.X, e.Y)
	case RawMouseMotion:
		h.motion.ObserveRawMotion(e.DX, e.DY)
	case MouseWheel:
		h.motion.ObserveScroll(e.DX, e.DY)
	case MouseInput:
		if e.State == Pressed {
			h.mouse.ObserveDown(e.Button)
		} else {
			h.mouse.ObserveUp(e.Button)
		}
	case CloseRequested:
		h.window.ObserveCloseRequested()
	case Destroyed:
		h.window.ObserveDestroyed()
	case Resized:
		h.window.observeResized(e.Width, e.Height)
	case ScaleFactorChanged:
		h.window.observeScale(e.Factor)
	case DroppedFile:
		h.window.observeDropped(e.Path)
	case Focused:
		h.window.observeFocus(e.Focused)
	case RedrawRequested:
		if h.boundary == BoundaryRedraw {
			h.EndFrame()
			return true
		}
	}
	return false
}

func (h *Helper) foldKey(e KeyboardInput) {
	observe := func(down, repeat, up func()) {
		switch {
		case e.State == Released:
			up()
		case e.Repeat:
			repeat()
		default:
			down()
		}
	}
	if e.Physical != KeyUnidentified {
		k := e.Physical
		observe(func() { h.physical.ObserveDown(k) },
			func() { h.physical.ObserveRepeat(k) },
			func() { h.physical.ObserveUp(k) })
	}
	if !e.Logical.IsZero() {
		k := e.Logical
		observe(func() { h.logical.ObserveDown(k) },
			func() { h.logical.ObserveRepeat(k) },
			func() { h.logical.ObserveUp(k) })
	}
}

// Step runs one complete frame over events.
func (h *Helper) Step(events ...Event) {
	h.BeginFrame()
	for _, ev := range events {
		h.Fold(ev)
	}
	h.EndFrame()
}

// State returns where the Helper is in its frame cycle.
func (h *Helper) State() StepState { return h.state }

// Frame returns the number of frames opened so far.
func (h *Helper) Frame() uint64 { return h.frame }

// DeltaTime returns the time between the two most recent frame starts.
func (h *Helper) DeltaTime() time.Duration { return h.delta }

// KeyPressed reports whether the physical key went down this frame.
// OS auto-repeat does not count; see KeyPressedOS.
func (h *Helper) KeyPressed(k KeyCode) bool { return h.physical.Pressed(k) }

// KeyPressedOS reports any press of the physical key this frame, OS
// auto-repeat included.
func (h *Helper) KeyPressedOS(k KeyCode) bool { return h.physical.PressedOS(k) }

// KeyReleased reports whether the physical key went up this frame.
func (h *Helper) KeyReleased(k KeyCode) bool { return h.physical.Released(k) }

// KeyHeld reports whether the physical key is down.
func (h *Helper) KeyHeld(k KeyCode) bool { return h.physical.Held(k) }

// KeyTapped reports a press and release of the physical key inside one frame.
func (h *Helper) KeyTapped(k KeyCode) bool { return h.physical.Tapped(k) }

// The Logical variants answer the same questions for the key's logical
// identity, the character or named key it produced.
func (h *Helper) KeyPressedLogical(k LogicalKey) bool   { return h.logical.Pressed(k) }
func (h *Helper) KeyPressedOSLogical(k LogicalKey) bool { return h.logical.PressedOS(k) }
func (h *Helper) KeyReleasedLogical(k LogicalKey) bool  { return h.logical.Released(k) }
func (h *Helper) KeyHeldLogical(k LogicalKey) bool      { return h.logical.Held(k) }
func (h *Helper) KeyTappedLogical(k LogicalKey) bool    { return h.logical.Tapped(k) }

// HeldKeys returns the physical keys currently down, in no particular order.
func (h *Helper) HeldKeys() []KeyCode { return h.physical.HeldKeys(nil) }

// MousePressed, MouseReleased and MouseHeld are the button counterparts of
// KeyPressed, KeyReleased and KeyHeld.
func (h *Helper) MousePressed(b MouseButton) bool  { return h.mouse.Pressed(b) }
func (h *Helper) MouseReleased(b MouseButton) bool { return h.mouse.Released(b) }
func (h *Helper) MouseHeld(b MouseButton) bool     { return h.mouse.Held(b) }

// Cursor returns the cursor position; ok is false until it has been seen.
func (h *Helper) Cursor() (x, y float64, ok bool) { return h.motion.Cursor() }

// CursorDiff returns how far the cursor moved this frame.
func (h *Helper) CursorDiff() (dx, dy float64) { return h.motion.CursorDiff() }

// MouseDiff returns the raw mouse motion this frame, independent of the
// cursor and not clamped to the window. Suited to first person cameras.
func (h *Helper) MouseDiff() (dx, dy float64) { return h.motion.MouseDiff() }

// ScrollDiff returns the scroll delta this frame.
func (h *Helper) ScrollDiff() (dx, dy float32) { return h.motion.ScrollDiff() }

// Text returns the text entered this frame.
func (h *Helper) Text() string { return string(h.text) }

// Modifiers returns the modifier state, combining the last ModifiersChanged
// event with held modifier keys.
func (h *Helper) Modifiers() Modifiers {
	m := h.modifiers
	if h.KeyHeld(ShiftLeft) || h.KeyHeld(ShiftRight) {
		m |= ModShift
	}
	if h.KeyHeld(ControlLeft) || h.KeyHeld(ControlRight) {
		m |= ModControl
	}
	if h.KeyHeld(AltLeft) || h.KeyHeld(AltRight) {
		m |= ModAlt
	}
	if h.KeyHeld(SuperLeft) || h.KeyHeld(SuperRight) {
		m |= ModSuper
	}
	return m
}

// HeldShift and its siblings report one modifier from Modifiers.
func (h *Helper) HeldShift() bool   { return h.Modifiers().Contain(ModShift) }
func (h *Helper) HeldControl() bool { return h.Modifiers().Contain(ModControl) }
func (h *Helper) HeldAlt() bool     { return h.Modifiers().Contain(ModAlt) }
func (h *Helper) HeldSuper() bool   { return h.Modifiers().Contain(ModSuper) }

// CloseRequested reports whether the window was asked to close this frame.
func (h *Helper) CloseRequested() bool { return h.window.CloseRequested() }

// Destroyed reports whether the window was destroyed this frame.
func (h *Helper) Destroyed() bool { return h.window.Destroyed() }

// WindowResized returns the new size if the window was resized this frame.
func (h *Helper) WindowResized() (w, hgt int, ok bool) {
	return h.window.width, h.window.height, h.window.resized
}

// Resolution returns the last known window size.
func (h *Helper) Resolution() (w, hgt int, ok bool) {
	return h.window.width, h.window.height, h.window.hasSize
}

// ScaleFactorChanged returns the new scale factor if it changed this frame.
func (h *Helper) ScaleFactorChanged() (float64, bool) {
	return h.window.scale, h.window.scaleChanged
}

// ScaleFactor returns the last known scale factor, 1 if none was reported.
func (h *Helper) ScaleFactor() float64 {
	if h.window.scale == 0 {
		return 1
	}
	return h.window.scale
}

// DroppedFiles returns the paths dropped onto the window this frame. The
// slice is reused by the next BeginFrame.
func (h *Helper) DroppedFiles() []string { return h.window.dropped }

// Focused reports whether the window has focus as of the last Focused event.
func (h *Helper) Focused() bool { return h.window.focused }
