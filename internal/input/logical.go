package input

import (
	"fmt"
	"strings"
)

// NamedKey is a logical key that does not produce text.
type NamedKey int

const (
	NamedNone NamedKey = iota
	NamedEnter
	NamedEscape
	NamedTab
	NamedBackspace
	NamedDelete
	NamedInsert
	NamedHome
	NamedEnd
	NamedPageUp
	NamedPageDown
	NamedArrowUp
	NamedArrowDown
	NamedArrowLeft
	NamedArrowRight
	NamedShift
	NamedControl
	NamedAlt
	NamedSuper
	NamedCapsLock
	NamedSpace
	NamedF1
	NamedF2
	NamedF3
	NamedF4
	NamedF5
	NamedF6
	NamedF7
	NamedF8
	NamedF9
	NamedF10
	NamedF11
	NamedF12

	namedKeyCount
)

var namedKeyNames = [...]string{
	NamedNone:       "None",
	NamedEnter:      "Enter",
	NamedEscape:     "Escape",
	NamedTab:        "Tab",
	NamedBackspace:  "Backspace",
	NamedDelete:     "Delete",
	NamedInsert:     "Insert",
	NamedHome:       "Home",
	NamedEnd:        "End",
	NamedPageUp:     "PageUp",
	NamedPageDown:   "PageDown",
	NamedArrowUp:    "ArrowUp",
	NamedArrowDown:  "ArrowDown",
	NamedArrowLeft:  "ArrowLeft",
	NamedArrowRight: "ArrowRight",
	NamedShift:      "Shift",
	NamedControl:    "Control",
	NamedAlt:        "Alt",
	NamedSuper:      "Super",
	NamedCapsLock:   "CapsLock",
	NamedSpace:      "Space",
	NamedF1:         "F1",
	NamedF2:         "F2",
	NamedF3:         "F3",
	NamedF4:         "F4",
	NamedF5:         "F5",
	NamedF6:         "F6",
	NamedF7:         "F7",
	NamedF8:         "F8",
	NamedF9:         "F9",
	NamedF10:        "F10",
	NamedF11:        "F11",
	NamedF12:        "F12",
}

func (n NamedKey) String() string {
	if n >= 0 && n < namedKeyCount {
		return namedKeyNames[n]
	}
	return fmt.Sprintf("NamedKey(%d)", int(n))
}

// LogicalKey identifies what a key press produced under the active layout
// and modifiers. Exactly one of Named and Text is set; Character("a") and
// Character("A") are distinct identities.
type LogicalKey struct {
	Named NamedKey
	Text  string
}

// Character returns the logical key producing s.
func Character(s string) LogicalKey {
	return LogicalKey{Text: s}
}

// Named returns the logical key for a non-text key.
func Named(n NamedKey) LogicalKey {
	return LogicalKey{Named: n}
}

// IsZero reports whether k identifies nothing.
func (k LogicalKey) IsZero() bool {
	return k.Named == NamedNone && k.Text == ""
}

func (k LogicalKey) String() string {
	if k.Text != "" {
		return fmt.Sprintf("Character(%q)", k.Text)
	}
	return "Named(" + k.Named.String() + ")"
}

// ParseLogicalKey accepts the forms used in frame scripts: a named key such as
// "Enter", or a quoted or bare single character such as "'a'" or "A".
func ParseLogicalKey(s string) (LogicalKey, bool) {
	if len(s) >= 3 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return Character(s[1 : len(s)-1]), true
	}
	for n, name := range namedKeyNames {
		if n != int(NamedNone) && strings.EqualFold(name, s) {
			return Named(NamedKey(n)), true
		}
	}
	if len([]rune(s)) == 1 {
		return Character(s), true
	}
	return LogicalKey{}, false
}

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Contain reports whether m contains all modifiers in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var parts []string
	if m.Contain(ModControl) {
		parts = append(parts, "Control")
	}
	if m.Contain(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Contain(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Contain(ModSuper) {
		parts = append(parts, "Super")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "-")
}
