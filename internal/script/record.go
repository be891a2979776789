package script

import "frameinput/internal/input"

// Recorder captures the events of a live session frame by frame so they can
// be saved and replayed with Run.
type Recorder struct {
	script Script
	limit  int
}

// NewRecorder creates a recorder that keeps at most limit frames, dropping the
// oldest ones first. A limit of zero keeps everything.
func NewRecorder(name string, boundary input.Boundary, limit int) *Recorder {
	return &Recorder{
		script: Script{Name: name, Boundary: boundary.String()},
		limit:  limit,
	}
}

// BeginFrame starts a new recorded frame.
func (r *Recorder) BeginFrame() {
	if r.limit > 0 && len(r.script.Frames) == r.limit {
		copy(r.script.Frames, r.script.Frames[1:])
		r.script.Frames = r.script.Frames[:r.limit-1]
	}
	r.script.Frames = append(r.script.Frames, Frame{})
}

// Record appends ev to the current frame. Events recorded before the first
// BeginFrame open an implicit frame, matching input.Helper.
func (r *Recorder) Record(ev input.Event) {
	if len(r.script.Frames) == 0 {
		r.script.Frames = append(r.script.Frames, Frame{})
	}
	f := &r.script.Frames[len(r.script.Frames)-1]
	f.Events = append(f.Events, Event{ev})
}

// Len returns the number of frames recorded.
func (r *Recorder) Len() int { return len(r.script.Frames) }

// Script returns the recorded frames. The result shares storage with the
// recorder until the next BeginFrame.
func (r *Recorder) Script() *Script { return &r.script }
