package input

// StepState is the position of a Helper in its frame cycle.
type StepState uint8

const (
	// StepIdle is the initial state; nothing has been folded yet.
	StepIdle StepState = iota
	// StepAccumulating means a frame is open and events are being folded in.
	StepAccumulating
	// StepReady means the frame is complete and stable until BeginFrame.
	StepReady
)

func (s StepState) String() string {
	switch s {
	case StepIdle:
		return "Idle"
	case StepAccumulating:
		return "Accumulating"
	case StepReady:
		return "Ready"
	}
	return "StepState(?)"
}

// Boundary selects what ends a step.
type Boundary uint8

const (
	// BoundaryExplicit leaves EndFrame to the caller.
	BoundaryExplicit Boundary = iota
	// BoundaryRedraw ends the step when a RedrawRequested event is folded.
	BoundaryRedraw
)

func (b Boundary) String() string {
	if b == BoundaryRedraw {
		return "redraw"
	}
	return "explicit"
}

// ParseBoundary maps the configuration names "explicit" and "redraw".
func ParseBoundary(s string) (Boundary, bool) {
	switch s {
	case "", "explicit":
		return BoundaryExplicit, true
	case "redraw":
		return BoundaryRedraw, true
	}
	return BoundaryExplicit, false
}
