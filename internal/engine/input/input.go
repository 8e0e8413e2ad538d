// Package input turns SDL2 events into pointer and key events. Mouse and
// touch both drive the same pointer.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cubefolio/pkg/math"
)

// EventType is the kind of a processed event.
type EventType int

// Event types.
const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventKeyDown
	EventPointerDown
	EventPointerMove
	EventPointerUp
)

// Event represents a processed input event.
type Event struct {
	Type    EventType
	Key     sdl.Keycode
	Width   int
	Height  int
	Pointer math.Vec2
	// Touch is set for events that came from a finger rather than the mouse.
	Touch bool
}

// Input polls SDL events once per frame.
type Input struct {
	events []Event
	tr     Translator
}

// New creates an input handler for a window of the given size.
func New(width, height int) *Input {
	return &Input{
		events: make([]Event, 0, 16),
		tr:     Translator{Width: width, Height: height},
	}
}

// Update polls SDL events. It returns true when the app should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		ev, ok := i.tr.Translate(event)
		if !ok {
			continue
		}
		if ev.Type == EventQuit {
			quit = true
		}
		i.events = append(i.events, ev)
	}
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Translator converts SDL events. Only left-button mouse events and the
// first finger down are pointer events; everything else is dropped.
type Translator struct {
	// Window size in points, used to scale normalized touch coordinates.
	Width, Height int

	finger     sdl.FingerID
	fingerDown bool
}

// Translate converts one SDL event.
func (t *Translator) Translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			t.Width, t.Height = int(e.Data1), int(e.Data2)
			return Event{Type: EventResize, Width: t.Width, Height: t.Height}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return Event{Type: EventKeyDown, Key: e.Keysym.Sym}, true
		}

	case *sdl.MouseMotionEvent:
		if e.Which == sdl.TOUCH_MOUSEID {
			return Event{}, false
		}
		return Event{Type: EventPointerMove, Pointer: math.Vec2{X: float32(e.X), Y: float32(e.Y)}}, true

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT || e.Which == sdl.TOUCH_MOUSEID {
			return Event{}, false
		}
		p := math.Vec2{X: float32(e.X), Y: float32(e.Y)}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return Event{Type: EventPointerDown, Pointer: p}, true
		}
		return Event{Type: EventPointerUp, Pointer: p}, true

	case *sdl.TouchFingerEvent:
		p := math.Vec2{X: e.X * float32(t.Width), Y: e.Y * float32(t.Height)}
		switch {
		case e.Type == sdl.FINGERDOWN && !t.fingerDown:
			t.finger, t.fingerDown = e.FingerID, true
			return Event{Type: EventPointerDown, Pointer: p, Touch: true}, true
		case !t.fingerDown || e.FingerID != t.finger:
			return Event{}, false
		case e.Type == sdl.FINGERMOTION:
			return Event{Type: EventPointerMove, Pointer: p, Touch: true}, true
		case e.Type == sdl.FINGERUP:
			t.fingerDown = false
			return Event{Type: EventPointerUp, Pointer: p, Touch: true}, true
		}
	}
	return Event{}, false
}
