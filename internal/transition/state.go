package transition

import "github.com/Faultbox/cubefolio/internal/cube"

// Mode is the kind of transition.
type Mode int

// Transition modes.
const (
	ModeNone Mode = iota
	ModeEnter
	ModeZoomOut
	ModeSwitch
)

func (m Mode) String() string {
	switch m {
	case ModeEnter:
		return "enter"
	case ModeZoomOut:
		return "zoom-out"
	case ModeSwitch:
		return "switch"
	default:
		return "none"
	}
}

// Phase is one step of a transition script.
type Phase int

// Phases.
const (
	PhaseIdle Phase = iota
	PhaseRotating
	PhaseSquaring
	PhaseZoomingIn
	PhaseZoomed
	PhaseZoomingOut
	PhaseUnsquaring
)

func (p Phase) String() string {
	switch p {
	case PhaseRotating:
		return "rotating"
	case PhaseSquaring:
		return "squaring"
	case PhaseZoomingIn:
		return "zooming-in"
	case PhaseZoomed:
		return "zoomed"
	case PhaseZoomingOut:
		return "zooming-out"
	case PhaseUnsquaring:
		return "unsquaring"
	default:
		return "idle"
	}
}

type step struct {
	phase    Phase
	fraction float32
}

// Scripts: each phase takes a fixed fraction of the configured duration.
var scripts = map[Mode][]step{
	ModeEnter: {
		{PhaseRotating, 0.40},
		{PhaseSquaring, 0.30},
		{PhaseZoomingIn, 0.30},
	},
	ModeZoomOut: {
		{PhaseZoomingOut, 0.25},
		{PhaseUnsquaring, 0.25},
	},
	ModeSwitch: {
		{PhaseZoomingOut, 0.25},
		{PhaseUnsquaring, 0.25},
		{PhaseRotating, 0.20},
		{PhaseSquaring, 0.15},
		{PhaseZoomingIn, 0.15},
	},
}

// State is a snapshot of the running transition.
type State struct {
	Mode     Mode
	Phase    Phase
	From     cube.Face
	To       cube.Face
	HasFrom  bool
	HasTo    bool
	Progress float32 // eased progress within Phase
}

// Active reports whether a transition is running.
func (s State) Active() bool {
	return s.Mode != ModeNone
}

// Destination returns the face the transition ends on, if it ends on one.
func (s State) Destination() (cube.Face, bool) {
	return s.To, s.HasTo
}

// Route returns the route to open when the transition completes: the target
// face page, or the overview remembering the face left behind.
func (s State) Route() string {
	switch {
	case s.Mode == ModeZoomOut && s.HasFrom:
		return "/?from=" + s.From.String()
	case s.HasTo:
		return s.To.Route()
	default:
		return "/"
	}
}
