package ebitenfeed

import (
	"strings"

	"frameinput/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyInfo describes an ebiten key: its physical identity and, for keys that
// do not produce text, the named logical key. text/shifted are the US layout
// fallback used when the platform cannot name the key.
type keyInfo struct {
	code    input.KeyCode
	named   input.NamedKey
	text    string
	shifted string
}

var keyTable = map[ebiten.Key]keyInfo{
	ebiten.KeyA: {code: input.KeyA, text: "a"},
	ebiten.KeyB: {code: input.KeyB, text: "b"},
	ebiten.KeyC: {code: input.KeyC, text: "c"},
	ebiten.KeyD: {code: input.KeyD, text: "d"},
	ebiten.KeyE: {code: input.KeyE, text: "e"},
	ebiten.KeyF: {code: input.KeyF, text: "f"},
	ebiten.KeyG: {code: input.KeyG, text: "g"},
	ebiten.KeyH: {code: input.KeyH, text: "h"},
	ebiten.KeyI: {code: input.KeyI, text: "i"},
	ebiten.KeyJ: {code: input.KeyJ, text: "j"},
	ebiten.KeyK: {code: input.KeyK, text: "k"},
	ebiten.KeyL: {code: input.KeyL, text: "l"},
	ebiten.KeyM: {code: input.KeyM, text: "m"},
	ebiten.KeyN: {code: input.KeyN, text: "n"},
	ebiten.KeyO: {code: input.KeyO, text: "o"},
	ebiten.KeyP: {code: input.KeyP, text: "p"},
	ebiten.KeyQ: {code: input.KeyQ, text: "q"},
	ebiten.KeyR: {code: input.KeyR, text: "r"},
	ebiten.KeyS: {code: input.KeyS, text: "s"},
	ebiten.KeyT: {code: input.KeyT, text: "t"},
	ebiten.KeyU: {code: input.KeyU, text: "u"},
	ebiten.KeyV: {code: input.KeyV, text: "v"},
	ebiten.KeyW: {code: input.KeyW, text: "w"},
	ebiten.KeyX: {code: input.KeyX, text: "x"},
	ebiten.KeyY: {code: input.KeyY, text: "y"},
	ebiten.KeyZ: {code: input.KeyZ, text: "z"},

	ebiten.KeyDigit0: {code: input.Digit0, text: "0", shifted: ")"},
	ebiten.KeyDigit1: {code: input.Digit1, text: "1", shifted: "!"},
	ebiten.KeyDigit2: {code: input.Digit2, text: "2", shifted: "@"},
	ebiten.KeyDigit3: {code: input.Digit3, text: "3", shifted: "#"},
	ebiten.KeyDigit4: {code: input.Digit4, text: "4", shifted: "$"},
	ebiten.KeyDigit5: {code: input.Digit5, text: "5", shifted: "%"},
	ebiten.KeyDigit6: {code: input.Digit6, text: "6", shifted: "^"},
	ebiten.KeyDigit7: {code: input.Digit7, text: "7", shifted: "&"},
	ebiten.KeyDigit8: {code: input.Digit8, text: "8", shifted: "*"},
	ebiten.KeyDigit9: {code: input.Digit9, text: "9", shifted: "("},

	ebiten.KeySpace:     {code: input.Space, named: input.NamedSpace},
	ebiten.KeyEnter:     {code: input.Enter, named: input.NamedEnter},
	ebiten.KeyEscape:    {code: input.Escape, named: input.NamedEscape},
	ebiten.KeyTab:       {code: input.Tab, named: input.NamedTab},
	ebiten.KeyBackspace: {code: input.Backspace, named: input.NamedBackspace},
	ebiten.KeyDelete:    {code: input.Delete, named: input.NamedDelete},
	ebiten.KeyInsert:    {code: input.Insert, named: input.NamedInsert},
	ebiten.KeyHome:      {code: input.Home, named: input.NamedHome},
	ebiten.KeyEnd:       {code: input.End, named: input.NamedEnd},
	ebiten.KeyPageUp:    {code: input.PageUp, named: input.NamedPageUp},
	ebiten.KeyPageDown:  {code: input.PageDown, named: input.NamedPageDown},
	ebiten.KeyCapsLock:  {code: input.CapsLock, named: input.NamedCapsLock},

	ebiten.KeyArrowUp:    {code: input.ArrowUp, named: input.NamedArrowUp},
	ebiten.KeyArrowDown:  {code: input.ArrowDown, named: input.NamedArrowDown},
	ebiten.KeyArrowLeft:  {code: input.ArrowLeft, named: input.NamedArrowLeft},
	ebiten.KeyArrowRight: {code: input.ArrowRight, named: input.NamedArrowRight},

	ebiten.KeyShiftLeft:    {code: input.ShiftLeft, named: input.NamedShift},
	ebiten.KeyShiftRight:   {code: input.ShiftRight, named: input.NamedShift},
	ebiten.KeyControlLeft:  {code: input.ControlLeft, named: input.NamedControl},
	ebiten.KeyControlRight: {code: input.ControlRight, named: input.NamedControl},
	ebiten.KeyAltLeft:      {code: input.AltLeft, named: input.NamedAlt},
	ebiten.KeyAltRight:     {code: input.AltRight, named: input.NamedAlt},
	ebiten.KeyMetaLeft:     {code: input.SuperLeft, named: input.NamedSuper},
	ebiten.KeyMetaRight:    {code: input.SuperRight, named: input.NamedSuper},

	ebiten.KeyMinus:        {code: input.Minus, text: "-", shifted: "_"},
	ebiten.KeyEqual:        {code: input.Equal, text: "=", shifted: "+"},
	ebiten.KeyBracketLeft:  {code: input.BracketLeft, text: "[", shifted: "{"},
	ebiten.KeyBracketRight: {code: input.BracketRight, text: "]", shifted: "}"},
	ebiten.KeyBackslash:    {code: input.Backslash, text: "\\", shifted: "|"},
	ebiten.KeySemicolon:    {code: input.Semicolon, text: ";", shifted: ":"},
	ebiten.KeyQuote:        {code: input.Quote, text: "'", shifted: "\""},
	ebiten.KeyBackquote:    {code: input.Backquote, text: "`", shifted: "~"},
	ebiten.KeyComma:        {code: input.Comma, text: ",", shifted: "<"},
	ebiten.KeyPeriod:       {code: input.Period, text: ".", shifted: ">"},
	ebiten.KeySlash:        {code: input.Slash, text: "/", shifted: "?"},

	ebiten.KeyF1:  {code: input.F1, named: input.NamedF1},
	ebiten.KeyF2:  {code: input.F2, named: input.NamedF2},
	ebiten.KeyF3:  {code: input.F3, named: input.NamedF3},
	ebiten.KeyF4:  {code: input.F4, named: input.NamedF4},
	ebiten.KeyF5:  {code: input.F5, named: input.NamedF5},
	ebiten.KeyF6:  {code: input.F6, named: input.NamedF6},
	ebiten.KeyF7:  {code: input.F7, named: input.NamedF7},
	ebiten.KeyF8:  {code: input.F8, named: input.NamedF8},
	ebiten.KeyF9:  {code: input.F9, named: input.NamedF9},
	ebiten.KeyF10: {code: input.F10, named: input.NamedF10},
	ebiten.KeyF11: {code: input.F11, named: input.NamedF11},
	ebiten.KeyF12: {code: input.F12, named: input.NamedF12},

	ebiten.KeyNumpad0:        {code: input.Numpad0, text: "0"},
	ebiten.KeyNumpad1:        {code: input.Numpad1, text: "1"},
	ebiten.KeyNumpad2:        {code: input.Numpad2, text: "2"},
	ebiten.KeyNumpad3:        {code: input.Numpad3, text: "3"},
	ebiten.KeyNumpad4:        {code: input.Numpad4, text: "4"},
	ebiten.KeyNumpad5:        {code: input.Numpad5, text: "5"},
	ebiten.KeyNumpad6:        {code: input.Numpad6, text: "6"},
	ebiten.KeyNumpad7:        {code: input.Numpad7, text: "7"},
	ebiten.KeyNumpad8:        {code: input.Numpad8, text: "8"},
	ebiten.KeyNumpad9:        {code: input.Numpad9, text: "9"},
	ebiten.KeyNumpadAdd:      {code: input.NumpadAdd, text: "+"},
	ebiten.KeyNumpadSubtract: {code: input.NumpadSubtract, text: "-"},
	ebiten.KeyNumpadMultiply: {code: input.NumpadMultiply, text: "*"},
	ebiten.KeyNumpadDivide:   {code: input.NumpadDivide, text: "/"},
	ebiten.KeyNumpadDecimal:  {code: input.NumpadDecimal, text: "."},
	ebiten.KeyNumpadEnter:    {code: input.NumpadEnter, named: input.NamedEnter},
}

// PhysicalKey maps an ebiten key to its physical identity.
func PhysicalKey(k ebiten.Key) (input.KeyCode, bool) {
	info, ok := keyTable[k]
	return info.code, ok
}

// logicalKey resolves what k produces. name is the platform's layout
// dependent key name, empty when unknown.
func logicalKey(k ebiten.Key, name string, shift bool) input.LogicalKey {
	info, ok := keyTable[k]
	if !ok {
		return input.LogicalKey{}
	}
	if info.named != input.NamedNone {
		return input.Named(info.named)
	}

	text := info.text
	if name != "" && len([]rune(name)) == 1 {
		text = strings.ToLower(name)
	}
	if shift {
		if up := strings.ToUpper(text); up != text {
			return input.Character(up)
		}
		if name == "" && info.shifted != "" {
			return input.Character(info.shifted)
		}
	}
	return input.Character(text)
}

var mouseTable = []struct {
	ebiten ebiten.MouseButton
	button input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseLeft},
	{ebiten.MouseButtonRight, input.MouseRight},
	{ebiten.MouseButtonMiddle, input.MouseMiddle},
	{ebiten.MouseButton3, input.MouseBack},
	{ebiten.MouseButton4, input.MouseForward},
}
