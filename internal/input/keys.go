package input

import "fmt"

// KeyCode identifies a physical key position, independent of keyboard layout.
// KeyW is the key in the W position on a US layout whatever it produces.
type KeyCode int

const (
	KeyUnidentified KeyCode = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9

	Space
	Enter
	Escape
	Tab
	Backspace
	Delete
	Insert
	Home
	End
	PageUp
	PageDown
	CapsLock

	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight

	ShiftLeft
	ShiftRight
	ControlLeft
	ControlRight
	AltLeft
	AltRight
	SuperLeft
	SuperRight

	Minus
	Equal
	BracketLeft
	BracketRight
	Backslash
	Semicolon
	Quote
	Backquote
	Comma
	Period
	Slash

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadAdd
	NumpadSubtract
	NumpadMultiply
	NumpadDivide
	NumpadDecimal
	NumpadEnter

	keyCodeCount
)

var keyCodeNames = [...]string{
	KeyUnidentified: "Unidentified",

	KeyA: "KeyA", KeyB: "KeyB", KeyC: "KeyC", KeyD: "KeyD", KeyE: "KeyE",
	KeyF: "KeyF", KeyG: "KeyG", KeyH: "KeyH", KeyI: "KeyI", KeyJ: "KeyJ",
	KeyK: "KeyK", KeyL: "KeyL", KeyM: "KeyM", KeyN: "KeyN", KeyO: "KeyO",
	KeyP: "KeyP", KeyQ: "KeyQ", KeyR: "KeyR", KeyS: "KeyS", KeyT: "KeyT",
	KeyU: "KeyU", KeyV: "KeyV", KeyW: "KeyW", KeyX: "KeyX", KeyY: "KeyY",
	KeyZ: "KeyZ",

	Digit0: "Digit0", Digit1: "Digit1", Digit2: "Digit2", Digit3: "Digit3",
	Digit4: "Digit4", Digit5: "Digit5", Digit6: "Digit6", Digit7: "Digit7",
	Digit8: "Digit8", Digit9: "Digit9",

	Space:     "Space",
	Enter:     "Enter",
	Escape:    "Escape",
	Tab:       "Tab",
	Backspace: "Backspace",
	Delete:    "Delete",
	Insert:    "Insert",
	Home:      "Home",
	End:       "End",
	PageUp:    "PageUp",
	PageDown:  "PageDown",
	CapsLock:  "CapsLock",

	ArrowUp:    "ArrowUp",
	ArrowDown:  "ArrowDown",
	ArrowLeft:  "ArrowLeft",
	ArrowRight: "ArrowRight",

	ShiftLeft:    "ShiftLeft",
	ShiftRight:   "ShiftRight",
	ControlLeft:  "ControlLeft",
	ControlRight: "ControlRight",
	AltLeft:      "AltLeft",
	AltRight:     "AltRight",
	SuperLeft:    "SuperLeft",
	SuperRight:   "SuperRight",

	Minus:        "Minus",
	Equal:        "Equal",
	BracketLeft:  "BracketLeft",
	BracketRight: "BracketRight",
	Backslash:    "Backslash",
	Semicolon:    "Semicolon",
	Quote:        "Quote",
	Backquote:    "Backquote",
	Comma:        "Comma",
	Period:       "Period",
	Slash:        "Slash",

	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",

	Numpad0: "Numpad0", Numpad1: "Numpad1", Numpad2: "Numpad2", Numpad3: "Numpad3",
	Numpad4: "Numpad4", Numpad5: "Numpad5", Numpad6: "Numpad6", Numpad7: "Numpad7",
	Numpad8: "Numpad8", Numpad9: "Numpad9",
	NumpadAdd:      "NumpadAdd",
	NumpadSubtract: "NumpadSubtract",
	NumpadMultiply: "NumpadMultiply",
	NumpadDivide:   "NumpadDivide",
	NumpadDecimal:  "NumpadDecimal",
	NumpadEnter:    "NumpadEnter",
}

func (k KeyCode) String() string {
	if k >= 0 && k < keyCodeCount {
		return keyCodeNames[k]
	}
	return fmt.Sprintf("KeyCode(%d)", int(k))
}

// ParseKeyCode looks a physical key up by its String name.
func ParseKeyCode(name string) (KeyCode, bool) {
	for k, n := range keyCodeNames {
		if n == name {
			return KeyCode(k), true
		}
	}
	return KeyUnidentified, false
}
