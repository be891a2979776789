// Package script reads and writes YAML frame scripts: a sequence of frames,
// each a list of input events and optional expectations about the snapshot
// the frame should produce.
//
//	name: walk
//	frames:
//	  - events:
//	      - key: {physical: KeyW, logical: "'w'", state: pressed}
//	      - cursor: [10, 10]
//	    expect:
//	      pressed: [KeyW]
//	      cursor_diff: [10, 10]
package script

import (
	"fmt"
	"os"

	"frameinput/internal/input"

	"gopkg.in/yaml.v3"
)

// Script is a replayable sequence of frames.
type Script struct {
	Name     string  `yaml:"name,omitempty"`
	Boundary string  `yaml:"boundary,omitempty"`
	Frames   []Frame `yaml:"frames"`
}

// Frame is one step's worth of events.
type Frame struct {
	Events []Event `yaml:"events,omitempty"`
	Expect *Expect `yaml:"expect,omitempty"`
}

// Event wraps an input.Event for YAML encoding.
type Event struct {
	input.Event
}

// Load reads a script file.
func Load(filename string) (*Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// MustLoad loads a script or panics.
func MustLoad(filename string) *Script {
	s, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse decodes a script from YAML.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if _, ok := input.ParseBoundary(s.Boundary); !ok {
		return nil, fmt.Errorf("unknown boundary %q", s.Boundary)
	}
	return &s, nil
}

// Save writes the script as YAML.
func (s *Script) Save(filename string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode script: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}

// NewHelper returns a Helper configured with the script's boundary.
func (s *Script) NewHelper(opts ...input.Option) *input.Helper {
	b, _ := input.ParseBoundary(s.Boundary)
	return input.NewHelper(append([]input.Option{input.WithBoundary(b)}, opts...)...)
}
