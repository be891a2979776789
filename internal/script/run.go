package script

import (
	"errors"
	"fmt"

	"frameinput/internal/input"
)

// Expect lists facts a frame's snapshot must satisfy. Identity lists name
// identities for which the query must be true; Quiet names identities for
// which pressed, held and released must all be false. Pairs and flags are
// only checked when present.
type Expect struct {
	Pressed   []string `yaml:"pressed,omitempty"`
	PressedOS []string `yaml:"pressed_os,omitempty"`
	Held      []string `yaml:"held,omitempty"`
	Released  []string `yaml:"released,omitempty"`
	Tapped    []string `yaml:"tapped,omitempty"`
	Quiet     []string `yaml:"quiet,omitempty"`

	PressedLogical   []string `yaml:"pressed_logical,omitempty"`
	PressedOSLogical []string `yaml:"pressed_os_logical,omitempty"`
	HeldLogical      []string `yaml:"held_logical,omitempty"`
	ReleasedLogical  []string `yaml:"released_logical,omitempty"`
	QuietLogical     []string `yaml:"quiet_logical,omitempty"`

	MousePressed  []string `yaml:"mouse_pressed,omitempty"`
	MouseHeld     []string `yaml:"mouse_held,omitempty"`
	MouseReleased []string `yaml:"mouse_released,omitempty"`

	Cursor     []float64 `yaml:"cursor,omitempty"`
	CursorDiff []float64 `yaml:"cursor_diff,omitempty"`
	MouseDiff  []float64 `yaml:"mouse_diff,omitempty"`
	ScrollDiff []float32 `yaml:"scroll_diff,omitempty"`

	Text           *string `yaml:"text,omitempty"`
	CloseRequested *bool   `yaml:"close_requested,omitempty"`
	Destroyed      *bool   `yaml:"destroyed,omitempty"`
}

// Run replays every frame of s into h and checks the expectations of each
// frame right after it ends. All mismatches are returned joined.
func Run(h *input.Helper, s *Script) error {
	var errs []error
	for i, f := range s.Frames {
		h.BeginFrame()
		for _, ev := range f.Events {
			h.Fold(ev.Event)
		}
		h.EndFrame()
		if f.Expect == nil {
			continue
		}
		for _, err := range f.Expect.check(h) {
			errs = append(errs, fmt.Errorf("frame %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

func (x *Expect) check(h *input.Helper) []error {
	c := checker{}

	c.physical("pressed", x.Pressed, h.KeyPressed)
	c.physical("pressed_os", x.PressedOS, h.KeyPressedOS)
	c.physical("held", x.Held, h.KeyHeld)
	c.physical("released", x.Released, h.KeyReleased)
	c.physical("tapped", x.Tapped, h.KeyTapped)
	c.physical("quiet", x.Quiet, func(k input.KeyCode) bool {
		return !h.KeyPressed(k) && !h.KeyHeld(k) && !h.KeyReleased(k)
	})

	c.logical("pressed_logical", x.PressedLogical, h.KeyPressedLogical)
	c.logical("pressed_os_logical", x.PressedOSLogical, h.KeyPressedOSLogical)
	c.logical("held_logical", x.HeldLogical, h.KeyHeldLogical)
	c.logical("released_logical", x.ReleasedLogical, h.KeyReleasedLogical)
	c.logical("quiet_logical", x.QuietLogical, func(k input.LogicalKey) bool {
		return !h.KeyPressedLogical(k) && !h.KeyHeldLogical(k) && !h.KeyReleasedLogical(k)
	})

	c.mouse("mouse_pressed", x.MousePressed, h.MousePressed)
	c.mouse("mouse_held", x.MouseHeld, h.MouseHeld)
	c.mouse("mouse_released", x.MouseReleased, h.MouseReleased)

	if x.Cursor != nil {
		cx, cy, ok := h.Cursor()
		if !ok {
			c.fail("cursor: unknown, want %v", x.Cursor)
		} else {
			c.pair("cursor", x.Cursor, cx, cy)
		}
	}
	if x.CursorDiff != nil {
		dx, dy := h.CursorDiff()
		c.pair("cursor_diff", x.CursorDiff, dx, dy)
	}
	if x.MouseDiff != nil {
		dx, dy := h.MouseDiff()
		c.pair("mouse_diff", x.MouseDiff, dx, dy)
	}
	if x.ScrollDiff != nil {
		dx, dy := h.ScrollDiff()
		want := make([]float64, len(x.ScrollDiff))
		for i, v := range x.ScrollDiff {
			want[i] = float64(v)
		}
		c.pair("scroll_diff", want, float64(dx), float64(dy))
	}

	if x.Text != nil && h.Text() != *x.Text {
		c.fail("text: got %q, want %q", h.Text(), *x.Text)
	}
	if x.CloseRequested != nil && h.CloseRequested() != *x.CloseRequested {
		c.fail("close_requested: got %v", h.CloseRequested())
	}
	if x.Destroyed != nil && h.Destroyed() != *x.Destroyed {
		c.fail("destroyed: got %v", h.Destroyed())
	}
	return c.errs
}

type checker struct {
	errs []error
}

func (c *checker) fail(format string, args ...interface{}) {
	c.errs = append(c.errs, fmt.Errorf(format, args...))
}

func (c *checker) physical(what string, names []string, query func(input.KeyCode) bool) {
	for _, n := range names {
		k, ok := input.ParseKeyCode(n)
		if !ok {
			c.fail("%s: unknown physical key %q", what, n)
			continue
		}
		if !query(k) {
			c.fail("%s: %s is false", what, n)
		}
	}
}

func (c *checker) logical(what string, names []string, query func(input.LogicalKey) bool) {
	for _, n := range names {
		k, ok := input.ParseLogicalKey(n)
		if !ok {
			c.fail("%s: unknown logical key %q", what, n)
			continue
		}
		if !query(k) {
			c.fail("%s: %s is false", what, k)
		}
	}
}

func (c *checker) mouse(what string, names []string, query func(input.MouseButton) bool) {
	for _, n := range names {
		b, ok := input.ParseMouseButton(n)
		if !ok {
			c.fail("%s: unknown mouse button %q", what, n)
			continue
		}
		if !query(b) {
			c.fail("%s: %s is false", what, n)
		}
	}
}

func (c *checker) pair(what string, want []float64, x, y float64) {
	if len(want) != 2 {
		c.fail("%s: expectation needs two values, got %v", what, want)
		return
	}
	if x != want[0] || y != want[1] {
		c.fail("%s: got (%v, %v), want (%v, %v)", what, x, y, want[0], want[1])
	}
}
