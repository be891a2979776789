package input

import (
	"testing"
	"time"
)

func keyDown(k KeyCode) KeyboardInput { return KeyboardInput{Physical: k, State: Pressed} }
func keyUp(k KeyCode) KeyboardInput   { return KeyboardInput{Physical: k, State: Released} }

func TestHelperEndToEnd(t *testing.T) {
	h := NewHelper()

	h.BeginFrame()
	h.Fold(keyDown(KeyW))
	h.Fold(CursorMoved{X: 10, Y: 10})
	h.EndFrame()

	if !h.KeyPressed(KeyW) || !h.KeyHeld(KeyW) {
		t.Errorf("frame A: pressed=%v held=%v, want both true", h.KeyPressed(KeyW), h.KeyHeld(KeyW))
	}
	if x, y, ok := h.Cursor(); !ok || x != 10 || y != 10 {
		t.Errorf("frame A: Cursor() = (%v, %v, %v), want (10, 10, true)", x, y, ok)
	}
	if dx, dy := h.CursorDiff(); dx != 10 || dy != 10 {
		t.Errorf("frame A: CursorDiff() = (%v, %v), want (10, 10)", dx, dy)
	}

	h.BeginFrame()
	h.Fold(keyUp(KeyW))
	h.EndFrame()

	if h.KeyPressed(KeyW) || h.KeyHeld(KeyW) || !h.KeyReleased(KeyW) {
		t.Errorf("frame B: pressed=%v held=%v released=%v, want false false true",
			h.KeyPressed(KeyW), h.KeyHeld(KeyW), h.KeyReleased(KeyW))
	}
	if dx, dy := h.CursorDiff(); dx != 0 || dy != 0 {
		t.Errorf("frame B: CursorDiff() = (%v, %v), want zero", dx, dy)
	}
}

func TestHelperTriangle(t *testing.T) {
	h := NewHelper()
	frames := []struct {
		events                  []Event
		pressed, held, released bool
	}{
		{[]Event{keyDown(KeyR)}, true, true, false},
		{nil, false, true, false},
		{[]Event{keyUp(KeyR)}, false, false, true},
	}
	for i, f := range frames {
		h.Step(f.events...)
		if h.KeyPressed(KeyR) != f.pressed || h.KeyHeld(KeyR) != f.held || h.KeyReleased(KeyR) != f.released {
			t.Errorf("frame %d: pressed=%v held=%v released=%v, want %v %v %v", i+1,
				h.KeyPressed(KeyR), h.KeyHeld(KeyR), h.KeyReleased(KeyR),
				f.pressed, f.held, f.released)
		}
	}
}

func TestHelperRepeat(t *testing.T) {
	h := NewHelper()
	repeat := KeyboardInput{Physical: KeyE, State: Pressed, Repeat: true}

	h.Step(keyDown(KeyE), repeat, repeat)
	if !h.KeyPressed(KeyE) || !h.KeyPressedOS(KeyE) {
		t.Error("fresh press followed by repeats should report pressed and pressed_os")
	}

	h.Step(repeat)
	if h.KeyPressed(KeyE) {
		t.Error("repeat-only frame must not report a fresh press")
	}
	if !h.KeyPressedOS(KeyE) {
		t.Error("repeat-only frame must report pressed_os")
	}
}

func TestHelperLogicalIndependence(t *testing.T) {
	h := NewHelper()
	lower := KeyboardInput{Physical: KeyA, Logical: Character("a"), State: Pressed}
	h.Step(lower)
	if !h.KeyPressedLogical(Character("a")) {
		t.Error("'a' should be pressed")
	}
	if h.KeyPressedLogical(Character("A")) || h.KeyHeldLogical(Character("A")) {
		t.Error("'A' must not be affected by 'a'")
	}
	if !h.KeyPressed(KeyA) {
		t.Error("physical KeyA should be pressed along with 'a'")
	}

	h.Step(KeyboardInput{Physical: KeyA, Logical: Character("a"), State: Released})
	h.Step(
		KeyboardInput{Physical: ShiftLeft, Logical: Named(NamedShift), State: Pressed},
		KeyboardInput{Physical: KeyA, Logical: Character("A"), State: Pressed},
	)
	if !h.KeyPressedLogical(Character("A")) {
		t.Error("'A' should be pressed")
	}
	if h.KeyPressedLogical(Character("a")) {
		t.Error("'a' must not be affected by 'A'")
	}
	if !h.HeldShift() {
		t.Error("shift should be held")
	}
}

func TestHelperDeltaReset(t *testing.T) {
	h := NewHelper()
	h.Step(CursorMoved{X: 4, Y: 8}, RawMouseMotion{DX: 2, DY: 3}, MouseWheel{DY: 1})
	if dx, dy := h.MouseDiff(); dx != 2 || dy != 3 {
		t.Errorf("MouseDiff() = (%v, %v), want (2, 3)", dx, dy)
	}

	h.Step()
	if dx, dy := h.CursorDiff(); dx != 0 || dy != 0 {
		t.Errorf("CursorDiff() = (%v, %v), want zero", dx, dy)
	}
	if dx, dy := h.MouseDiff(); dx != 0 || dy != 0 {
		t.Errorf("MouseDiff() = (%v, %v), want zero", dx, dy)
	}
	if dx, dy := h.ScrollDiff(); dx != 0 || dy != 0 {
		t.Errorf("ScrollDiff() = (%v, %v), want zero", dx, dy)
	}
}

func TestHelperUnknownIdentity(t *testing.T) {
	h := NewHelper()
	h.Step()
	if h.KeyHeld(F12) || h.KeyPressed(F12) || h.KeyReleased(F12) {
		t.Error("never observed physical key reported state")
	}
	if h.KeyHeldLogical(Character("?")) || h.KeyPressedLogical(Character("?")) || h.KeyReleasedLogical(Character("?")) {
		t.Error("never observed logical key reported state")
	}
	if h.MouseHeld(OtherMouseButton(7)) || h.MousePressed(OtherMouseButton(7)) || h.MouseReleased(OtherMouseButton(7)) {
		t.Error("never observed mouse button reported state")
	}
}

func TestHelperIdleRequeryStable(t *testing.T) {
	h := NewHelper()
	h.Step(keyDown(KeyQ), CursorMoved{X: 1, Y: 2}, MouseInput{Button: MouseLeft, State: Pressed})
	for i := 0; i < 3; i++ {
		dx, dy := h.CursorDiff()
		if !h.KeyPressed(KeyQ) || !h.MousePressed(MouseLeft) || dx != 1 || dy != 2 {
			t.Fatalf("query %d changed the snapshot", i)
		}
	}
	if h.State() != StepReady {
		t.Errorf("State() = %v, want Ready", h.State())
	}
}

func TestHelperStateMachine(t *testing.T) {
	h := NewHelper()
	if h.State() != StepIdle {
		t.Fatalf("initial state = %v", h.State())
	}

	h.EndFrame()
	if h.State() != StepIdle {
		t.Errorf("EndFrame without BeginFrame changed state to %v", h.State())
	}

	h.Fold(keyDown(KeyW))
	if h.State() != StepAccumulating || h.Frame() != 1 {
		t.Errorf("implicit first frame: state=%v frame=%d", h.State(), h.Frame())
	}
	if !h.KeyPressed(KeyW) {
		t.Error("press folded into the implicit first frame was lost")
	}

	h.EndFrame()
	h.EndFrame()
	if h.State() != StepReady {
		t.Errorf("state = %v, want Ready", h.State())
	}

	h.BeginFrame()
	h.Fold(MouseWheel{DY: 3})
	h.BeginFrame()
	if _, dy := h.ScrollDiff(); dy != 0 {
		t.Error("abandoned frame leaked its scroll delta")
	}
	if h.KeyPressed(KeyW) || !h.KeyHeld(KeyW) {
		t.Error("abandoning a frame must still keep held keys")
	}
	if h.Frame() != 3 {
		t.Errorf("Frame() = %d, want 3", h.Frame())
	}
}

func TestHelperRedrawBoundary(t *testing.T) {
	h := NewHelper(WithBoundary(BoundaryRedraw))
	h.BeginFrame()
	if h.Fold(keyDown(KeyW)) {
		t.Error("key event must not end the step")
	}
	if !h.Fold(RedrawRequested{}) {
		t.Fatal("RedrawRequested should end the step")
	}
	if h.State() != StepReady {
		t.Errorf("state = %v, want Ready", h.State())
	}

	explicit := NewHelper()
	explicit.BeginFrame()
	if explicit.Fold(RedrawRequested{}) {
		t.Error("explicit boundary must ignore RedrawRequested")
	}
}

func TestHelperLifecycle(t *testing.T) {
	h := NewHelper()
	h.Step(CloseRequested{}, Destroyed{}, Resized{Width: 800, Height: 600},
		ScaleFactorChanged{Factor: 2}, DroppedFile{Path: "a.txt"}, Focused{Focused: true})
	if !h.CloseRequested() || !h.Destroyed() {
		t.Error("lifecycle flags not set")
	}
	if w, hh, ok := h.WindowResized(); !ok || w != 800 || hh != 600 {
		t.Errorf("WindowResized() = (%d, %d, %v)", w, hh, ok)
	}
	if f, ok := h.ScaleFactorChanged(); !ok || f != 2 {
		t.Errorf("ScaleFactorChanged() = (%v, %v)", f, ok)
	}
	if files := h.DroppedFiles(); len(files) != 1 || files[0] != "a.txt" {
		t.Errorf("DroppedFiles() = %v", files)
	}

	h.Step()
	if h.CloseRequested() || h.Destroyed() {
		t.Error("lifecycle flags must reset each frame")
	}
	if _, _, ok := h.WindowResized(); ok {
		t.Error("resize edge must reset each frame")
	}
	if w, hh, ok := h.Resolution(); !ok || w != 800 || hh != 600 {
		t.Errorf("Resolution() = (%d, %d, %v)", w, hh, ok)
	}
	if h.ScaleFactor() != 2 || !h.Focused() {
		t.Error("level window state must persist")
	}
	if len(h.DroppedFiles()) != 0 {
		t.Error("dropped files must reset each frame")
	}
}

func TestHelperTextAndModifiers(t *testing.T) {
	h := NewHelper()
	h.Step(TextInput{Text: "h"}, TextInput{Text: "i"}, ModifiersChanged{Modifiers: ModControl})
	if h.Text() != "hi" {
		t.Errorf("Text() = %q, want %q", h.Text(), "hi")
	}
	if !h.HeldControl() || h.HeldShift() {
		t.Errorf("Modifiers() = %v", h.Modifiers())
	}
	h.Step()
	if h.Text() != "" {
		t.Errorf("Text() after reset = %q", h.Text())
	}
	if !h.HeldControl() {
		t.Error("modifier state is level triggered and must persist")
	}
}

func TestHelperDeltaTime(t *testing.T) {
	now := time.Unix(100, 0)
	h := NewHelper(WithClock(func() time.Time { return now }))
	h.Step()
	if h.DeltaTime() != 0 {
		t.Errorf("first DeltaTime() = %v, want 0", h.DeltaTime())
	}
	now = now.Add(16 * time.Millisecond)
	h.Step()
	if h.DeltaTime() != 16*time.Millisecond {
		t.Errorf("DeltaTime() = %v, want 16ms", h.DeltaTime())
	}
}

type unknownEvent struct{}

func (unknownEvent) ImplementsEvent() {}

func TestHelperIgnoresUnknownEvents(t *testing.T) {
	h := NewHelper()
	h.BeginFrame()
	if h.Fold(unknownEvent{}) {
		t.Error("unknown event ended the step")
	}
	h.EndFrame()
	if h.State() != StepReady {
		t.Errorf("state = %v", h.State())
	}
}
