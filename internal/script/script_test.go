package script

import (
	"path/filepath"
	"strings"
	"testing"

	"frameinput/internal/input"
)

func TestRunTestdata(t *testing.T) {
	files, err := filepath.Glob("testdata/*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no scripts in testdata")
	}
	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			s := MustLoad(f)
			if err := Run(s.NewHelper(), s); err != nil {
				t.Errorf("%s:\n%v", s.Name, err)
			}
		})
	}
}

func TestRunReportsMismatch(t *testing.T) {
	s, err := Parse([]byte(`
frames:
  - events:
      - key: {physical: KeyA, state: pressed}
    expect:
      released: [KeyA]
      cursor: [1, 1]
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	err = Run(input.NewHelper(), s)
	if err == nil {
		t.Fatal("expected mismatches")
	}
	msg := err.Error()
	if !strings.Contains(msg, "frame 1: released: KeyA is false") {
		t.Errorf("missing released mismatch in %q", msg)
	}
	if !strings.Contains(msg, "cursor: unknown") {
		t.Errorf("missing cursor mismatch in %q", msg)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown word":     "frames:\n  - events: [jump]\n",
		"unknown kind":     "frames:\n  - events:\n      - teleport: [1, 2]\n",
		"unknown key":      "frames:\n  - events:\n      - key: {physical: KeyWW, state: pressed}\n",
		"no identity":      "frames:\n  - events:\n      - key: {state: pressed}\n",
		"bad state":        "frames:\n  - events:\n      - key: {physical: KeyA, state: sideways}\n",
		"mouse repeat":     "frames:\n  - events:\n      - mouse: {button: Left, state: repeat}\n",
		"short pair":       "frames:\n  - events:\n      - cursor: [1]\n",
		"unknown boundary": "boundary: vsync\nframes: []\n",
		"bad modifier":     "frames:\n  - events:\n      - modifiers: [hyper]\n",
	}
	for name, data := range cases {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestRecorderRoundTrip(t *testing.T) {
	r := NewRecorder("session", input.BoundaryExplicit, 0)
	r.BeginFrame()
	r.Record(input.KeyboardInput{Physical: input.KeyA, Logical: input.Character("A"), State: input.Pressed})
	r.Record(input.ModifiersChanged{Modifiers: input.ModShift | input.ModControl})
	r.Record(input.MouseInput{Button: input.OtherMouseButton(2), State: input.Pressed})
	r.Record(input.CursorMoved{X: 1.5, Y: 2})
	r.BeginFrame()
	r.Record(input.KeyboardInput{Logical: input.Named(input.NamedEnter), State: input.Pressed, Repeat: true})
	r.Record(input.CloseRequested{})

	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := r.Script().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Name != "session" || len(s.Frames) != 2 {
		t.Fatalf("loaded %q with %d frames", s.Name, len(s.Frames))
	}

	h := s.NewHelper()
	frame := 0
	for _, f := range s.Frames {
		frame++
		h.BeginFrame()
		for _, ev := range f.Events {
			h.Fold(ev.Event)
		}
		h.EndFrame()
		if frame == 1 {
			if !h.KeyPressedLogical(input.Character("A")) || !h.KeyPressed(input.KeyA) {
				t.Error("key press lost in round trip")
			}
			if !h.HeldShift() || !h.HeldControl() {
				t.Error("modifiers lost in round trip")
			}
			if !h.MousePressed(input.OtherMouseButton(2)) {
				t.Error("extra mouse button lost in round trip")
			}
			if x, y, _ := h.Cursor(); x != 1.5 || y != 2 {
				t.Errorf("cursor = (%v, %v)", x, y)
			}
		}
	}
	if !h.KeyPressedOSLogical(input.Named(input.NamedEnter)) || h.KeyPressedLogical(input.Named(input.NamedEnter)) {
		t.Error("repeat flag lost in round trip")
	}
	if !h.CloseRequested() {
		t.Error("close request lost in round trip")
	}
}

func TestRecorderLimit(t *testing.T) {
	r := NewRecorder("", input.BoundaryRedraw, 2)
	r.Record(input.TextInput{Text: "implicit"})
	for i := 0; i < 3; i++ {
		r.BeginFrame()
		r.Record(input.Resized{Width: i, Height: i})
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	first := r.Script().Frames[0].Events[0].Event
	if first != (input.Resized{Width: 1, Height: 1}) {
		t.Errorf("oldest kept frame = %v, want the second resize", first)
	}
	if r.Script().Boundary != "redraw" {
		t.Errorf("Boundary = %q", r.Script().Boundary)
	}
}
