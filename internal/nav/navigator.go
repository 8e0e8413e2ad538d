// Package nav turns navigation intents into cube transitions and routes.
//
// The Navigator is the only entry point the views use: it mounts the GL
// surface for the length of a transition, hands the finished pose over to a
// flattened settle animation and pushes the destination route exactly once.
package nav

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/flatten"
	"github.com/Faultbox/cubefolio/internal/logger"
	"github.com/Faultbox/cubefolio/internal/transition"
)

// Router receives the route to show after each completed transition.
type Router interface {
	Push(route string)
}

// Surface is the mountable GL cube.
type Surface interface {
	Mount() error
	Unmount()
	Capture(face cube.Face, now time.Time) (flatten.Snapshot, bool)
}

// Choreographer is the transition engine the navigator drives.
type Choreographer interface {
	AnimateToFace(face cube.Face, now time.Time) bool
	ZoomOut(from cube.Face, now time.Time) bool
	SwitchFace(from, to cube.Face, now time.Time) bool
	Update(now time.Time)
	Cancel()
	Active() bool
	OnComplete(fn func(transition.State))
}

// Config holds the hand-off settings.
type Config struct {
	SettleStyle    flatten.Style
	SettleDuration time.Duration
	Unfold         UnfoldTiming
}

// Navigator glues intents, the choreographer, the surface and the router.
type Navigator struct {
	cfg     Config
	choreo  Choreographer
	surface Surface
	router  Router
	clock   func() time.Time
	log     *zap.Logger

	page    cube.Face
	hasPage bool

	settle  *flatten.Settle
	unfold  *Unfold
	started []func()
}

// New wires a navigator. clock supplies the frame time for intents; nil
// means time.Now.
func New(cfg Config, choreo Choreographer, surface Surface, router Router, clock func() time.Time) *Navigator {
	if clock == nil {
		clock = time.Now
	}
	n := &Navigator{
		cfg:     cfg,
		choreo:  choreo,
		surface: surface,
		router:  router,
		clock:   clock,
		log:     logger.Named("nav"),
		unfold:  NewUnfold(cfg.Unfold),
	}
	choreo.OnComplete(n.complete)
	return n
}

// OnStart registers fn to run after every accepted intent, once the surface
// is mounted. Intents started by the unfold overlay go through it as well.
func (n *Navigator) OnStart(fn func()) {
	n.started = append(n.started, fn)
}

// SetPage records which face page is on screen, or the overview when ok is false.
func (n *Navigator) SetPage(face cube.Face, ok bool) {
	n.page, n.hasPage = face, ok
}

// Page returns the face page on screen.
func (n *Navigator) Page() (cube.Face, bool) {
	return n.page, n.hasPage
}

// IsTransitioning reports whether a cube transition is running.
func (n *Navigator) IsTransitioning() bool {
	return n.choreo.Active()
}

// AnimateToFace zooms from the overview into face.
func (n *Navigator) AnimateToFace(face cube.Face) bool {
	return n.start(func(now time.Time) bool {
		return n.choreo.AnimateToFace(face, now)
	})
}

// ZoomOut leaves the current page for the overview.
func (n *Navigator) ZoomOut() bool {
	if !n.hasPage {
		n.log.Debug("zoom out without a page")
		return false
	}
	from := n.page
	return n.start(func(now time.Time) bool {
		return n.choreo.ZoomOut(from, now)
	})
}

// SwitchToFace turns the cube from the current page to face.
func (n *Navigator) SwitchToFace(face cube.Face) bool {
	if !n.hasPage {
		return n.AnimateToFace(face)
	}
	from := n.page
	return n.start(func(now time.Time) bool {
		return n.choreo.SwitchFace(from, face, now)
	})
}

func (n *Navigator) start(begin func(now time.Time) bool) bool {
	now := n.clock()
	if !begin(now) {
		return false
	}
	if err := n.surface.Mount(); err != nil {
		n.log.Warn("cannot mount cube surface", zap.Error(err))
		n.choreo.Cancel()
		return false
	}
	n.settle = nil
	for _, fn := range n.started {
		fn()
	}
	return true
}

// Update advances the transition, the settle and the unfold overlay.
func (n *Navigator) Update(now time.Time) {
	n.choreo.Update(now)

	if n.settle != nil && n.settle.Done(now) {
		n.settle = nil
	}

	if face, ok := n.unfold.Update(now); ok {
		n.SwitchToFace(face)
	}
}

// Settle returns the running flattened settle, nil when none.
func (n *Navigator) Settle() *flatten.Settle {
	return n.settle
}

// Unfold returns the overlay.
func (n *Navigator) Unfold() *Unfold {
	return n.unfold
}

// OpenUnfold shows the face overview overlay.
func (n *Navigator) OpenUnfold() {
	if n.choreo.Active() {
		return
	}
	n.unfold.Open(n.page, n.hasPage, n.clock())
}

// ClickUnfold handles a click on an overlay card.
func (n *Navigator) ClickUnfold(face cube.Face) {
	n.unfold.Click(face, n.clock())
}

// Close cancels everything in flight.
func (n *Navigator) Close() {
	if n.choreo.Active() {
		n.choreo.Cancel()
		n.surface.Unmount()
	}
	n.unfold.Cancel()
	n.settle = nil
}

func (n *Navigator) complete(st transition.State) {
	now := n.clock()
	if face, ok := st.Destination(); ok {
		if snap, ok := n.surface.Capture(face, now); ok {
			n.settle = flatten.NewSettle(snap, n.cfg.SettleStyle, n.cfg.SettleDuration, now)
		}
		n.page, n.hasPage = face, true
	} else {
		n.hasPage = false
	}
	n.surface.Unmount()

	r := st.Route()
	n.log.Debug("transition complete", zap.String("route", r))
	n.router.Push(r)
}
