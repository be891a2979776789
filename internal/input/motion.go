package input

// Motion accumulates continuous pointer input within a frame.
type Motion struct {
	cursorX, cursorY float64
	hasCursor        bool

	cursorDX, cursorDY float64
	rawDX, rawDY       float64
	scrollDX, scrollDY float32
}

// ObserveCursorMoved records an absolute cursor position. The delta is taken
// against the last known position, or against the origin before the first one.
func (m *Motion) ObserveCursorMoved(x, y float64) {
	m.cursorDX += x - m.cursorX
	m.cursorDY += y - m.cursorY
	m.cursorX, m.cursorY = x, y
	m.hasCursor = true
}

// ObserveRawMotion adds a device motion delta.
func (m *Motion) ObserveRawMotion(dx, dy float64) {
	m.rawDX += dx
	m.rawDY += dy
}

// ObserveScroll adds a scroll delta.
func (m *Motion) ObserveScroll(dx, dy float32) {
	m.scrollDX += dx
	m.scrollDY += dy
}

// Reset zeroes the per-frame deltas. The cursor position is kept.
func (m *Motion) Reset() {
	m.cursorDX, m.cursorDY = 0, 0
	m.rawDX, m.rawDY = 0, 0
	m.scrollDX, m.scrollDY = 0, 0
}

// Cursor returns the last known cursor position; ok is false until the
// cursor has been seen.
func (m *Motion) Cursor() (x, y float64, ok bool) {
	return m.cursorX, m.cursorY, m.hasCursor
}

// CursorDiff returns the cursor movement this frame.
func (m *Motion) CursorDiff() (dx, dy float64) {
	return m.cursorDX, m.cursorDY
}

// MouseDiff returns the raw device motion this frame.
func (m *Motion) MouseDiff() (dx, dy float64) {
	return m.rawDX, m.rawDY
}

// ScrollDiff returns the scroll delta this frame.
func (m *Motion) ScrollDiff() (dx, dy float32) {
	return m.scrollDX, m.scrollDY
}
