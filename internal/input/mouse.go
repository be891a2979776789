package input

import "fmt"

// MouseButton identifies a mouse button. The named buttons are a closed set;
// anything else is addressed by index through OtherMouseButton.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseBack
	MouseForward

	mouseOtherBase
)

// OtherMouseButton returns the identity of an extra button by its device index.
func OtherMouseButton(index uint16) MouseButton {
	return mouseOtherBase + MouseButton(index)
}

// Other returns the device index of an extra button, ok=false for named ones.
func (b MouseButton) Other() (index uint16, ok bool) {
	if b < mouseOtherBase {
		return 0, false
	}
	return uint16(b - mouseOtherBase), true
}

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	case MouseBack:
		return "Back"
	case MouseForward:
		return "Forward"
	}
	if i, ok := b.Other(); ok {
		return fmt.Sprintf("Other(%d)", i)
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}

// ParseMouseButton accepts Left, Right, Middle, Back, Forward or Other(n).
func ParseMouseButton(s string) (MouseButton, bool) {
	for b := MouseLeft; b < mouseOtherBase; b++ {
		if b.String() == s {
			return b, true
		}
	}
	var i uint16
	if _, err := fmt.Sscanf(s, "Other(%d)", &i); err == nil {
		return OtherMouseButton(i), true
	}
	return 0, false
}
