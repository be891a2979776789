package input

import "testing"

func checkEdges[K comparable](t *testing.T, l *Ledger[K], k K, pressed, held, released bool) {
	t.Helper()
	if got := l.Pressed(k); got != pressed {
		t.Errorf("Pressed(%v) = %v, want %v", k, got, pressed)
	}
	if got := l.Held(k); got != held {
		t.Errorf("Held(%v) = %v, want %v", k, got, held)
	}
	if got := l.Released(k); got != released {
		t.Errorf("Released(%v) = %v, want %v", k, got, released)
	}
}

func TestLedgerPressHeldRelease(t *testing.T) {
	l := NewLedger[KeyCode]()

	l.Commit()
	l.ObserveDown(KeyW)
	checkEdges(t, l, KeyW, true, true, false)

	l.Commit()
	checkEdges(t, l, KeyW, false, true, false)

	l.Commit()
	l.ObserveUp(KeyW)
	checkEdges(t, l, KeyW, false, false, true)

	l.Commit()
	checkEdges(t, l, KeyW, false, false, false)
}

func TestLedgerRepeat(t *testing.T) {
	l := NewLedger[KeyCode]()

	l.Commit()
	l.ObserveDown(KeyE)
	l.ObserveRepeat(KeyE)
	l.ObserveRepeat(KeyE)
	if !l.Pressed(KeyE) || !l.PressedOS(KeyE) {
		t.Errorf("fresh press with repeats: Pressed=%v PressedOS=%v, want both true",
			l.Pressed(KeyE), l.PressedOS(KeyE))
	}

	l.Commit()
	l.ObserveRepeat(KeyE)
	if l.Pressed(KeyE) {
		t.Error("repeat of a held key must not count as a fresh press")
	}
	if !l.PressedOS(KeyE) {
		t.Error("repeat of a held key must count as an OS press")
	}

	l.Commit()
	if l.PressedOS(KeyE) {
		t.Error("PressedOS must clear on the next frame")
	}
}

func TestLedgerUnknownIdentity(t *testing.T) {
	l := NewLedger[LogicalKey]()
	for i := 0; i < 3; i++ {
		checkEdges(t, l, Character("z"), false, false, false)
		if l.PressedOS(Character("z")) || l.Tapped(Character("z")) {
			t.Error("unknown identity reported a press")
		}
		l.Commit()
	}
	if l.Len() != 1 {
		t.Errorf("query miss should allocate one record, got %d", l.Len())
	}
}

func TestLedgerRepressWithinFrame(t *testing.T) {
	l := NewLedger[KeyCode]()
	l.Commit()
	l.ObserveDown(KeyA)
	l.ObserveUp(KeyA)
	l.ObserveDown(KeyA)
	checkEdges(t, l, KeyA, true, true, false)
	if l.Tapped(KeyA) {
		t.Error("key ending the frame down is not a tap")
	}
}

func TestLedgerTap(t *testing.T) {
	l := NewLedger[MouseButton]()
	l.Commit()
	l.ObserveDown(MouseLeft)
	l.ObserveUp(MouseLeft)
	checkEdges(t, l, MouseLeft, false, false, false)
	if !l.Tapped(MouseLeft) {
		t.Error("press and release inside one frame should be a tap")
	}
	l.Commit()
	if l.Tapped(MouseLeft) {
		t.Error("tap must clear on the next frame")
	}
}

func TestLedgerDuplicateDownIsNotFresh(t *testing.T) {
	l := NewLedger[KeyCode]()
	l.Commit()
	l.ObserveDown(KeyS)
	l.Commit()
	l.ObserveDown(KeyS)
	if l.Pressed(KeyS) {
		t.Error("second down without an up must not be a fresh press")
	}
	if !l.PressedOS(KeyS) {
		t.Error("second down still counts as an OS press")
	}
}

func TestLedgerHeldKeys(t *testing.T) {
	l := NewLedger[KeyCode]()
	l.ObserveDown(KeyA)
	l.ObserveDown(KeyB)
	l.ObserveUp(KeyA)
	held := l.HeldKeys(nil)
	if len(held) != 1 || held[0] != KeyB {
		t.Errorf("HeldKeys = %v, want [KeyB]", held)
	}
}

func TestLedgerZeroValue(t *testing.T) {
	var l Ledger[KeyCode]
	l.ObserveDown(KeyQ)
	if !l.Held(KeyQ) {
		t.Error("zero Ledger should be usable")
	}
}
