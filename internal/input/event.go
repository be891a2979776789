package input

import "fmt"

// Event is anything the window or device layer can deliver to a Helper.
// Kinds the Helper does not know are ignored by Fold.
type Event interface {
	ImplementsEvent()
}

// ElementState is the direction of a key or button transition.
type ElementState uint8

const (
	Released ElementState = iota
	Pressed
)

func (s ElementState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// KeyboardInput is one key transition. A key event carries both identities
// at once; either may be unset when the platform could not determine it.
// Repeat marks OS auto-repeat presses.
type KeyboardInput struct {
	Physical KeyCode
	Logical  LogicalKey
	State    ElementState
	Repeat   bool
}

// TextInput carries text committed by the keyboard or an input method.
type TextInput struct {
	Text string
}

// ModifiersChanged reports the full modifier state after a change.
type ModifiersChanged struct {
	Modifiers Modifiers
}

// CursorMoved reports the absolute cursor position in window coordinates.
type CursorMoved struct {
	X, Y float64
}

// RawMouseMotion reports device level motion. It is not clamped to the
// window and has no absolute counterpart.
type RawMouseMotion struct {
	DX, DY float64
}

// MouseWheel reports a scroll delta in lines.
type MouseWheel struct {
	DX, DY float32
}

// MouseInput is one mouse button transition.
type MouseInput struct {
	Button MouseButton
	State  ElementState
}

// CloseRequested is sent when the user asks to close the window.
type CloseRequested struct{}

// Destroyed is sent after the window has been destroyed.
type Destroyed struct{}

// RedrawRequested is the conventional end of an event batch.
type RedrawRequested struct{}

// Resized reports the new inner size of the window in physical pixels.
type Resized struct {
	Width, Height int
}

// ScaleFactorChanged reports a new device scale factor.
type ScaleFactorChanged struct {
	Factor float64
}

// DroppedFile reports a file dropped onto the window.
type DroppedFile struct {
	Path string
}

// Focused reports a change of window focus.
type Focused struct {
	Focused bool
}

func (KeyboardInput) ImplementsEvent()      {}
func (TextInput) ImplementsEvent()          {}
func (ModifiersChanged) ImplementsEvent()   {}
func (CursorMoved) ImplementsEvent()        {}
func (RawMouseMotion) ImplementsEvent()     {}
func (MouseWheel) ImplementsEvent()         {}
func (MouseInput) ImplementsEvent()         {}
func (CloseRequested) ImplementsEvent()     {}
func (Destroyed) ImplementsEvent()          {}
func (RedrawRequested) ImplementsEvent()    {}
func (Resized) ImplementsEvent()            {}
func (ScaleFactorChanged) ImplementsEvent() {}
func (DroppedFile) ImplementsEvent()        {}
func (Focused) ImplementsEvent()            {}

func (e KeyboardInput) String() string {
	s := fmt.Sprintf("%v %v/%v", e.State, e.Physical, e.Logical)
	if e.Repeat {
		s += " (repeat)"
	}
	return s
}

func (e MouseInput) String() string {
	return fmt.Sprintf("%v %v", e.State, e.Button)
}
