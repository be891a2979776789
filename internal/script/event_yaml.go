package script

import (
	"fmt"
	"strings"

	"frameinput/internal/input"

	"gopkg.in/yaml.v3"
)

type keyNode struct {
	Physical string `yaml:"physical,omitempty"`
	Logical  string `yaml:"logical,omitempty"`
	State    string `yaml:"state"`
}

type mouseNode struct {
	Button string `yaml:"button"`
	State  string `yaml:"state"`
}

// UnmarshalYAML decodes either a bare word (close, destroyed, redraw) or a
// single-key mapping naming the event kind.
func (e *Event) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		switch value.Value {
		case "close":
			e.Event = input.CloseRequested{}
		case "destroyed":
			e.Event = input.Destroyed{}
		case "redraw":
			e.Event = input.RedrawRequested{}
		default:
			return fmt.Errorf("line %d: unknown event %q", value.Line, value.Value)
		}
		return nil
	}
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: event must be a word or a single-key mapping", value.Line)
	}

	kind, body := value.Content[0].Value, value.Content[1]
	ev, err := decodeEvent(kind, body)
	if err != nil {
		return fmt.Errorf("line %d: %s: %w", value.Line, kind, err)
	}
	e.Event = ev
	return nil
}

func decodeEvent(kind string, body *yaml.Node) (input.Event, error) {
	switch kind {
	case "key":
		var k keyNode
		if err := body.Decode(&k); err != nil {
			return nil, err
		}
		return k.event()
	case "mouse":
		var m mouseNode
		if err := body.Decode(&m); err != nil {
			return nil, err
		}
		b, ok := input.ParseMouseButton(m.Button)
		if !ok {
			return nil, fmt.Errorf("unknown mouse button %q", m.Button)
		}
		st, repeat, err := parseState(m.State)
		if err != nil {
			return nil, err
		}
		if repeat {
			return nil, fmt.Errorf("mouse buttons do not repeat")
		}
		return input.MouseInput{Button: b, State: st}, nil
	case "text":
		var s string
		err := body.Decode(&s)
		return input.TextInput{Text: s}, err
	case "modifiers":
		var names []string
		if err := body.Decode(&names); err != nil {
			return nil, err
		}
		m, err := parseModifiers(names)
		return input.ModifiersChanged{Modifiers: m}, err
	case "cursor":
		x, y, err := decodePair[float64](body)
		return input.CursorMoved{X: x, Y: y}, err
	case "motion":
		dx, dy, err := decodePair[float64](body)
		return input.RawMouseMotion{DX: dx, DY: dy}, err
	case "scroll":
		dx, dy, err := decodePair[float32](body)
		return input.MouseWheel{DX: dx, DY: dy}, err
	case "resized":
		w, h, err := decodePair[int](body)
		return input.Resized{Width: w, Height: h}, err
	case "scale":
		var f float64
		err := body.Decode(&f)
		return input.ScaleFactorChanged{Factor: f}, err
	case "drop":
		var p string
		err := body.Decode(&p)
		return input.DroppedFile{Path: p}, err
	case "focus":
		var f bool
		err := body.Decode(&f)
		return input.Focused{Focused: f}, err
	}
	return nil, fmt.Errorf("unknown event kind")
}

func (k keyNode) event() (input.Event, error) {
	ev := input.KeyboardInput{}
	if k.Physical != "" {
		code, ok := input.ParseKeyCode(k.Physical)
		if !ok {
			return nil, fmt.Errorf("unknown physical key %q", k.Physical)
		}
		ev.Physical = code
	}
	if k.Logical != "" {
		lk, ok := input.ParseLogicalKey(k.Logical)
		if !ok {
			return nil, fmt.Errorf("unknown logical key %q", k.Logical)
		}
		ev.Logical = lk
	}
	if ev.Physical == input.KeyUnidentified && ev.Logical.IsZero() {
		return nil, fmt.Errorf("key event needs a physical or logical identity")
	}
	var err error
	ev.State, ev.Repeat, err = parseState(k.State)
	return ev, err
}

func parseState(s string) (input.ElementState, bool, error) {
	switch s {
	case "pressed", "down":
		return input.Pressed, false, nil
	case "repeat":
		return input.Pressed, true, nil
	case "released", "up":
		return input.Released, false, nil
	}
	return input.Released, false, fmt.Errorf("unknown state %q", s)
}

func parseModifiers(names []string) (input.Modifiers, error) {
	var m input.Modifiers
	for _, n := range names {
		switch strings.ToLower(n) {
		case "shift":
			m |= input.ModShift
		case "control", "ctrl":
			m |= input.ModControl
		case "alt":
			m |= input.ModAlt
		case "super", "meta":
			m |= input.ModSuper
		default:
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
	}
	return m, nil
}

func decodePair[T int | float32 | float64](body *yaml.Node) (T, T, error) {
	var p []T
	if err := body.Decode(&p); err != nil {
		return 0, 0, err
	}
	if len(p) != 2 {
		return 0, 0, fmt.Errorf("want two values, got %d", len(p))
	}
	return p[0], p[1], nil
}

// MarshalYAML encodes the event in the form UnmarshalYAML reads.
func (e Event) MarshalYAML() (interface{}, error) {
	switch ev := e.Event.(type) {
	case input.CloseRequested:
		return "close", nil
	case input.Destroyed:
		return "destroyed", nil
	case input.RedrawRequested:
		return "redraw", nil
	case input.KeyboardInput:
		k := keyNode{State: stateName(ev.State, ev.Repeat)}
		if ev.Physical != input.KeyUnidentified {
			k.Physical = ev.Physical.String()
		}
		if !ev.Logical.IsZero() {
			k.Logical = logicalName(ev.Logical)
		}
		return map[string]keyNode{"key": k}, nil
	case input.MouseInput:
		return map[string]mouseNode{"mouse": {Button: ev.Button.String(), State: stateName(ev.State, false)}}, nil
	case input.TextInput:
		return map[string]string{"text": ev.Text}, nil
	case input.ModifiersChanged:
		var names []string
		for _, n := range []struct {
			m    input.Modifiers
			name string
		}{{input.ModShift, "shift"}, {input.ModControl, "control"}, {input.ModAlt, "alt"}, {input.ModSuper, "super"}} {
			if ev.Modifiers.Contain(n.m) {
				names = append(names, n.name)
			}
		}
		return map[string][]string{"modifiers": names}, nil
	case input.CursorMoved:
		return map[string][]float64{"cursor": {ev.X, ev.Y}}, nil
	case input.RawMouseMotion:
		return map[string][]float64{"motion": {ev.DX, ev.DY}}, nil
	case input.MouseWheel:
		return map[string][]float32{"scroll": {ev.DX, ev.DY}}, nil
	case input.Resized:
		return map[string][]int{"resized": {ev.Width, ev.Height}}, nil
	case input.ScaleFactorChanged:
		return map[string]float64{"scale": ev.Factor}, nil
	case input.DroppedFile:
		return map[string]string{"drop": ev.Path}, nil
	case input.Focused:
		return map[string]bool{"focus": ev.Focused}, nil
	}
	return nil, fmt.Errorf("cannot encode event %T", e.Event)
}

func stateName(s input.ElementState, repeat bool) string {
	switch {
	case s == input.Released:
		return "released"
	case repeat:
		return "repeat"
	}
	return "pressed"
}

func logicalName(k input.LogicalKey) string {
	if k.Text != "" {
		return "'" + k.Text + "'"
	}
	return k.Named.String()
}
