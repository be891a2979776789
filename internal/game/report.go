package game

import (
	"fmt"
	"sort"
	"strings"

	"frameinput/internal/input"
)

var reportButtons = []input.MouseButton{input.MouseLeft, input.MouseRight, input.MouseMiddle}

// ShouldQuit reports whether the demo should exit after this frame.
func ShouldQuit(h *input.Helper) bool {
	return h.KeyReleased(input.KeyQ) || h.CloseRequested() || h.Destroyed()
}

// Report describes the notable parts of the current snapshot, one line each.
// A quiet frame yields no lines.
func Report(h *input.Helper) []string {
	var lines []string
	add := func(format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	if h.KeyPressed(input.KeyW) {
		add("The 'W' key (US layout) was pressed on the keyboard")
	}
	if h.KeyPressedOS(input.KeyE) {
		add("The 'E' key (US layout) was pressed on the keyboard (repeats included)")
	}
	if h.KeyHeld(input.KeyR) {
		add("The 'R' key (US layout) is held")
	}
	if h.KeyTapped(input.KeyT) {
		add("The 'T' key (US layout) was tapped within a single frame")
	}
	if h.KeyPressedLogical(input.Character("a")) {
		add("'a' was pressed on the keyboard")
	}
	if h.KeyPressedLogical(input.Character("A")) {
		add("'A' was pressed on the keyboard")
	}

	for _, b := range reportButtons {
		if h.MousePressed(b) {
			add("The %s mouse button was pressed", strings.ToLower(b.String()))
		}
		if h.MouseReleased(b) {
			add("The %s mouse button was released", strings.ToLower(b.String()))
		}
	}

	if dx, dy := h.CursorDiff(); dx != 0 || dy != 0 {
		add("The cursor diff is: %v, %v", dx, dy)
	}
	if dx, dy := h.MouseDiff(); dx != 0 || dy != 0 {
		add("The mouse diff is: %v, %v", dx, dy)
	}
	if dx, dy := h.ScrollDiff(); dx != 0 || dy != 0 {
		add("The scroll diff is: %v, %v", dx, dy)
	}
	if text := h.Text(); text != "" {
		add("Typed: %q", text)
	}

	if w, hgt, ok := h.WindowResized(); ok {
		add("The window was resized to %dx%d", w, hgt)
	}
	if s, ok := h.ScaleFactorChanged(); ok {
		add("The scale factor changed to %v", s)
	}
	for _, path := range h.DroppedFiles() {
		add("A file was dropped: %s", path)
	}
	return lines
}

// heldSummary is the HUD line listing every held key and modifier.
func heldSummary(h *input.Helper) string {
	keys := h.HeldKeys()
	if len(keys) == 0 {
		return "Held: -"
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	line := "Held: " + strings.Join(names, " ")
	if m := h.Modifiers(); m != 0 {
		line += " [" + m.String() + "]"
	}
	return line
}
