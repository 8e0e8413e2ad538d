package app

import (
	"time"

	"github.com/Faultbox/cubefolio/internal/engine/input"
)

// view is one screen of the app: the cube overview or a face page.
type view interface {
	// Enter is called when the view becomes current.
	Enter(now time.Time) error

	// Exit is called when the view is replaced.
	Exit()

	// Update is called every frame.
	Update(now time.Time, dt time.Duration)

	// Render draws the view. The overlay batch is flushed after it.
	Render(now time.Time)

	// HandleEvent processes one input event.
	HandleEvent(ev input.Event, now time.Time)
}

// viewManager swaps views between frames.
type viewManager struct {
	current view
	next    view
}

// Current returns the current view.
func (m *viewManager) Current() view {
	return m.current
}

// Change schedules a view change for the next Apply.
func (m *viewManager) Change(next view) {
	m.next = next
}

// Apply performs a scheduled change. It reports whether the view changed.
func (m *viewManager) Apply(now time.Time) (bool, error) {
	if m.next == nil {
		return false, nil
	}
	if m.current != nil {
		m.current.Exit()
	}
	m.current = m.next
	m.next = nil
	return true, m.current.Enter(now)
}

// Close exits the current view.
func (m *viewManager) Close() {
	if m.current != nil {
		m.current.Exit()
		m.current = nil
	}
	m.next = nil
}
