package ebitenfeed

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source is the polled ebiten state a Feeder reads once per tick.
type Source interface {
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
	AppendPressedKeys(keys []ebiten.Key) []ebiten.Key
	KeyPressDuration(key ebiten.Key) int
	IsKeyPressed(key ebiten.Key) bool
	KeyName(key ebiten.Key) string
	AppendInputChars(runes []rune) []rune

	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
	CursorPosition() (x, y int)
	Wheel() (xoff, yoff float64)

	WindowSize() (width, height int)
	DeviceScaleFactor() float64
	IsFocused() bool
	IsWindowBeingClosed() bool
	DroppedFiles() fs.FS
}

// EbitenSource reads the live ebiten input state. It must only be used from
// within ebiten's Update.
type EbitenSource struct{}

func (EbitenSource) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (EbitenSource) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (EbitenSource) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendPressedKeys(keys)
}

func (EbitenSource) KeyPressDuration(key ebiten.Key) int { return inpututil.KeyPressDuration(key) }
func (EbitenSource) IsKeyPressed(key ebiten.Key) bool    { return ebiten.IsKeyPressed(key) }
func (EbitenSource) KeyName(key ebiten.Key) string       { return ebiten.KeyName(key) }

func (EbitenSource) AppendInputChars(runes []rune) []rune { return ebiten.AppendInputChars(runes) }

func (EbitenSource) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (EbitenSource) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(button)
}

func (EbitenSource) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (EbitenSource) Wheel() (float64, float64)  { return ebiten.Wheel() }

func (EbitenSource) WindowSize() (int, int) { return ebiten.WindowSize() }

func (EbitenSource) DeviceScaleFactor() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func (EbitenSource) IsFocused() bool           { return ebiten.IsFocused() }
func (EbitenSource) IsWindowBeingClosed() bool { return ebiten.IsWindowBeingClosed() }
func (EbitenSource) DroppedFiles() fs.FS       { return ebiten.DroppedFiles() }
