// Package ebitenfeed drives an input.Helper from ebiten. ebiten exposes input
// as polled state rather than events, so once per Update tick the Feeder
// diffs the polled state against the previous tick and folds the differences
// into the Helper as typed events, one frame per tick.
package ebitenfeed

import (
	"io/fs"

	"frameinput/internal/input"
	"frameinput/internal/monitoring"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kataras/golog"
)

// Recorder receives every event the Feeder folds.
type Recorder interface {
	BeginFrame()
	Record(ev input.Event)
}

// Options configures a Feeder.
type Options struct {
	Boundary input.Boundary

	// Auto-repeat timing in ticks. A held key repeats once it has been down
	// for more than RepeatDelay ticks, then every RepeatInterval ticks.
	RepeatDelay    int
	RepeatInterval int

	// CaptureCursor reports cursor movement only as raw mouse motion.
	// ebiten has no raw device motion, so without capture raw motion is the
	// cursor delta and stops at the window edge.
	CaptureCursor bool

	// BurstThreshold is the per-frame event count that raises a monitor
	// alert. Zero keeps the monitor default.
	BurstThreshold int

	// LogEvents logs every folded event at debug level.
	LogEvents bool

	// Logger receives feeder diagnostics. Nil uses golog's "[ebitenfeed]"
	// child as it is at NewFeeder time.
	Logger *golog.Logger
}

// Feeder polls a Source and feeds one frame per Update.
type Feeder struct {
	helper   *input.Helper
	src      Source
	opts     Options
	logger   *golog.Logger
	monitor  *monitoring.StepMonitor
	recorder Recorder

	// logical key produced by each physical key at press time, so the
	// release goes to the same logical identity even if shift changed
	logical map[ebiten.Key]input.LogicalKey

	keys  []ebiten.Key
	chars []rune

	cursorX, cursorY int
	hasCursor        bool
	width, height    int
	scale            float64
	focused          bool
	modifiers        input.Modifiers

	events int
}

// NewFeeder creates a Feeder that writes into helper.
func NewFeeder(helper *input.Helper, src Source, opts Options) *Feeder {
	if opts.RepeatInterval <= 0 {
		opts.RepeatInterval = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = golog.Child("[ebitenfeed]")
	}
	monitor := monitoring.NewStepMonitor()
	if opts.BurstThreshold > 0 {
		monitor.SetBurstThreshold(uint32(opts.BurstThreshold))
	}
	return &Feeder{
		helper:  helper,
		src:     src,
		opts:    opts,
		logger:  logger,
		monitor: monitor,
		logical: make(map[ebiten.Key]input.LogicalKey),
	}
}

// SetRecorder attaches a recorder; nil detaches it.
func (f *Feeder) SetRecorder(r Recorder) { f.recorder = r }

// Monitor returns the per-frame metrics of this feeder.
func (f *Feeder) Monitor() *monitoring.StepMonitor { return f.monitor }

// Helper returns the helper being fed.
func (f *Feeder) Helper() *input.Helper { return f.helper }

// Update polls the source and folds one complete frame. Call it at the start
// of the game's Update; the Helper's snapshot is ready when it returns.
func (f *Feeder) Update() {
	timer := f.monitor.StartStep()
	f.events = 0

	f.helper.BeginFrame()
	if f.recorder != nil {
		f.recorder.BeginFrame()
	}

	f.pollWindow()
	f.pollModifiers()
	f.pollKeys()
	f.pollText()
	f.pollMouse()

	if f.src.IsWindowBeingClosed() {
		f.emit(input.CloseRequested{})
	}

	if f.opts.Boundary == input.BoundaryRedraw {
		f.emit(input.RedrawRequested{})
	} else {
		f.helper.EndFrame()
	}

	timer.EndStep(f.events)
}

// Destroy folds a final frame reporting that the window is gone.
func (f *Feeder) Destroy() {
	f.helper.BeginFrame()
	if f.recorder != nil {
		f.recorder.BeginFrame()
	}
	f.emit(input.Destroyed{})
	f.helper.EndFrame()
}

func (f *Feeder) emit(ev input.Event) {
	f.events++
	if f.opts.LogEvents {
		f.logger.Debugf("frame %d: %T %v", f.helper.Frame(), ev, ev)
	}
	if f.recorder != nil {
		f.recorder.Record(ev)
	}
	f.helper.Fold(ev)
}

func (f *Feeder) pollWindow() {
	if focused := f.src.IsFocused(); focused != f.focused {
		f.focused = focused
		f.emit(input.Focused{Focused: focused})
	}
	if s := f.src.DeviceScaleFactor(); s != f.scale {
		f.scale = s
		f.emit(input.ScaleFactorChanged{Factor: s})
	}
	// WindowSize is in device-independent pixels
	w, h := f.src.WindowSize()
	w, h = int(float64(w)*f.scale), int(float64(h)*f.scale)
	if w != f.width || h != f.height {
		f.width, f.height = w, h
		f.emit(input.Resized{Width: w, Height: h})
	}
	if fsys := f.src.DroppedFiles(); fsys != nil {
		entries, err := fs.ReadDir(fsys, ".")
		if err != nil {
			f.logger.Warnf("reading dropped files: %v", err)
		}
		for _, e := range entries {
			f.emit(input.DroppedFile{Path: e.Name()})
		}
	}
}

func (f *Feeder) pollModifiers() {
	var m input.Modifiers
	if f.src.IsKeyPressed(ebiten.KeyShift) {
		m |= input.ModShift
	}
	if f.src.IsKeyPressed(ebiten.KeyControl) {
		m |= input.ModControl
	}
	if f.src.IsKeyPressed(ebiten.KeyAlt) {
		m |= input.ModAlt
	}
	if f.src.IsKeyPressed(ebiten.KeyMeta) {
		m |= input.ModSuper
	}
	if m != f.modifiers {
		f.modifiers = m
		f.emit(input.ModifiersChanged{Modifiers: m})
	}
}

func (f *Feeder) pollKeys() {
	f.keys = f.src.AppendJustReleasedKeys(f.keys[:0])
	for _, k := range f.keys {
		code, ok := PhysicalKey(k)
		if !ok {
			continue
		}
		logical := f.logical[k]
		delete(f.logical, k)
		f.emit(input.KeyboardInput{Physical: code, Logical: logical, State: input.Released})
	}

	shift := f.modifiers.Contain(input.ModShift)
	f.keys = f.src.AppendJustPressedKeys(f.keys[:0])
	for _, k := range f.keys {
		code, ok := PhysicalKey(k)
		if !ok {
			f.logger.Debugf("unmapped key %v", k)
			continue
		}
		logical := logicalKey(k, f.src.KeyName(k), shift)
		f.logical[k] = logical
		f.emit(input.KeyboardInput{Physical: code, Logical: logical, State: input.Pressed})
	}

	f.keys = f.src.AppendPressedKeys(f.keys[:0])
	for _, k := range f.keys {
		code, ok := PhysicalKey(k)
		if !ok || !repeatDue(f.src.KeyPressDuration(k), f.opts.RepeatDelay, f.opts.RepeatInterval) {
			continue
		}
		f.emit(input.KeyboardInput{Physical: code, Logical: f.logical[k], State: input.Pressed, Repeat: true})
	}
}

// repeatDue reports whether a key held for d ticks auto-repeats on this tick.
func repeatDue(d, delay, interval int) bool {
	if d <= delay || d <= 1 {
		return false
	}
	return (d-delay)%interval == 0
}

func (f *Feeder) pollText() {
	f.chars = f.src.AppendInputChars(f.chars[:0])
	if len(f.chars) > 0 {
		f.emit(input.TextInput{Text: string(f.chars)})
	}
}

func (f *Feeder) pollMouse() {
	for _, m := range mouseTable {
		if f.src.IsMouseButtonJustReleased(m.ebiten) {
			f.emit(input.MouseInput{Button: m.button, State: input.Released})
		}
		if f.src.IsMouseButtonJustPressed(m.ebiten) {
			f.emit(input.MouseInput{Button: m.button, State: input.Pressed})
		}
	}

	x, y := f.src.CursorPosition()
	if !f.hasCursor || x != f.cursorX || y != f.cursorY {
		if f.hasCursor {
			f.emit(input.RawMouseMotion{DX: float64(x - f.cursorX), DY: float64(y - f.cursorY)})
		}
		if !f.opts.CaptureCursor {
			f.emit(input.CursorMoved{X: float64(x), Y: float64(y)})
		}
		f.cursorX, f.cursorY, f.hasCursor = x, y, true
	}

	if dx, dy := f.src.Wheel(); dx != 0 || dy != 0 {
		f.emit(input.MouseWheel{DX: float32(dx), DY: float32(dy)})
	}
}
