// Package transition animates the cube and camera between the free overview
// and a face filling the screen.
//
// A Choreographer runs one scripted transition at a time. While it runs it
// owns the scene's orientation and camera; every frame Update computes the
// pose for the current phase from wall-clock time, so the animation takes
// the same time at any frame rate.
package transition

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/scene"
	"github.com/Faultbox/cubefolio/internal/logger"
	"github.com/Faultbox/cubefolio/pkg/math"
)

// Config holds the transition timing.
type Config struct {
	Duration   time.Duration
	FillSafety float32
}

// DefaultConfig returns a 1.8 s script with a 0.9 fill safety factor.
func DefaultConfig() Config {
	return Config{Duration: 1800 * time.Millisecond, FillSafety: 0.9}
}

// Choreographer runs transitions on a scene.
type Choreographer struct {
	cfg   Config
	scene *scene.Scene
	log   *zap.Logger

	enabled bool

	state      State
	script     []step
	stepIndex  int
	phaseStart time.Time
	prevOwner  scene.Owner

	// Poses captured when the transition starts.
	startOrientation math.Quat
	startCamera      cube.Pose

	onComplete []func(State)
}

// New creates a choreographer driving s.
func New(s *scene.Scene, cfg Config) *Choreographer {
	return &Choreographer{
		cfg:     cfg,
		scene:   s,
		log:     logger.Named("transition"),
		enabled: true,
	}
}

// OnComplete registers fn to run once per finished transition, after the
// choreographer is idle again. fn receives the finished state.
func (c *Choreographer) OnComplete(fn func(State)) {
	c.onComplete = append(c.onComplete, fn)
}

// SetEnabled allows or refuses new transitions. A running one is unaffected.
func (c *Choreographer) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// SetDuration changes the total script duration for future transitions.
func (c *Choreographer) SetDuration(d time.Duration) {
	c.cfg.Duration = d
}

// State returns the current transition state.
func (c *Choreographer) State() State {
	return c.state
}

// Active reports whether a transition is running.
func (c *Choreographer) Active() bool {
	return c.state.Active()
}

// FillDistance returns the zoomed camera distance for the current viewport.
func (c *Choreographer) FillDistance() float32 {
	return FillDistance(c.scene.Lens.FOVRadians(), c.scene.Aspect(), c.cfg.FillSafety)
}

// AnimateToFace starts an enter transition from the overview to face.
// It returns false when the request is ignored.
func (c *Choreographer) AnimateToFace(face cube.Face, now time.Time) bool {
	if !c.accept(face) {
		return false
	}
	c.begin(State{Mode: ModeEnter, To: face, HasTo: true}, now)
	return true
}

// ZoomOut starts a transition from face, filling the screen, back to the overview.
func (c *Choreographer) ZoomOut(face cube.Face, now time.Time) bool {
	if !c.accept(face) {
		return false
	}
	c.begin(State{Mode: ModeZoomOut, From: face, HasFrom: true}, now)
	return true
}

// SwitchFace starts a transition from one filled face to another. Switching
// to the same face is ignored.
func (c *Choreographer) SwitchFace(from, to cube.Face, now time.Time) bool {
	if from == to {
		c.log.Debug("switch to current face ignored", zap.Stringer("face", to))
		return false
	}
	if !c.accept(from) || !c.accept(to) {
		return false
	}
	c.begin(State{Mode: ModeSwitch, From: from, HasFrom: true, To: to, HasTo: true}, now)
	return true
}

// Cancel aborts the running transition without firing completion. The scene
// keeps its current pose and ownership returns to the previous owner.
func (c *Choreographer) Cancel() {
	if !c.state.Active() {
		return
	}
	c.log.Debug("transition cancelled",
		zap.Stringer("mode", c.state.Mode),
		zap.Stringer("phase", c.state.Phase))
	c.reset()
}

func (c *Choreographer) accept(face cube.Face) bool {
	switch {
	case c.state.Active():
		c.log.Debug("transition already active", zap.Stringer("mode", c.state.Mode))
		return false
	case !c.enabled:
		c.log.Debug("navigation disabled")
		return false
	case !face.Valid():
		c.log.Debug("invalid face", zap.Int("face", int(face)))
		return false
	}
	return true
}

func (c *Choreographer) begin(st State, now time.Time) {
	c.prevOwner = c.scene.Claim(scene.OwnerTransition)

	if st.HasFrom {
		// Leaving a face: the cube starts squared and zoomed onto it.
		c.scene.SetOrientation(scene.OwnerTransition, st.From.Canonical())
		c.scene.SetCamera(scene.OwnerTransition, cube.FilledPose(st.From, c.FillDistance()))
	}
	c.startOrientation = c.scene.Orientation()
	c.startCamera = c.scene.Camera()

	c.script = scripts[st.Mode]
	c.stepIndex = 0
	c.phaseStart = now
	st.Phase = c.script[0].phase
	c.state = st

	c.log.Debug("transition started",
		zap.Stringer("mode", st.Mode),
		zap.Stringer("from", optionalFace{st.From, st.HasFrom}),
		zap.Stringer("to", optionalFace{st.To, st.HasTo}))
}

// Update advances the running transition to now. At most one phase boundary
// is crossed per call.
func (c *Choreographer) Update(now time.Time) {
	if !c.state.Active() {
		return
	}

	cur := c.script[c.stepIndex]
	phaseDur := time.Duration(float64(c.cfg.Duration) * float64(cur.fraction))

	progress := float32(1)
	if phaseDur > 0 {
		progress = clamp01(float32(now.Sub(c.phaseStart)) / float32(phaseDur))
	}
	eased := Quint(progress)
	c.state.Progress = eased
	c.apply(cur.phase, eased)

	if progress < 1 {
		return
	}

	if c.stepIndex+1 < len(c.script) {
		c.stepIndex++
		c.phaseStart = now
		c.state.Phase = c.script[c.stepIndex].phase
		c.state.Progress = 0
		c.log.Debug("phase advanced", zap.Stringer("phase", c.state.Phase))
		return
	}

	c.finish()
}

func (c *Choreographer) finish() {
	done := c.state
	done.Progress = 1
	if done.Mode == ModeZoomOut {
		done.Phase = PhaseIdle
	} else {
		done.Phase = PhaseZoomed
	}

	c.reset()
	c.log.Debug("transition complete", zap.Stringer("mode", done.Mode), zap.String("route", done.Route()))

	for _, fn := range c.onComplete {
		fn(done)
	}
}

func (c *Choreographer) reset() {
	c.state = State{}
	c.script = nil
	c.stepIndex = 0
	c.scene.Claim(c.prevOwner)
}

// apply writes the pose for phase at eased progress t.
func (c *Choreographer) apply(phase Phase, t float32) {
	st := c.state
	overview := cube.DefaultPose()
	fill := c.FillDistance()

	switch phase {
	case PhaseRotating:
		start := c.startOrientation
		if st.Mode == ModeSwitch {
			start = st.From.Canonical()
		}
		c.setOrientation(start.Slerp(st.To.Canonical(), t))
		if st.Mode == ModeSwitch {
			c.setCamera(overview)
		} else {
			c.setCamera(c.startCamera)
		}

	case PhaseSquaring:
		c.setOrientation(st.To.Canonical())
		from := overview
		if st.Mode == ModeEnter {
			from = c.startCamera
		}
		c.setCamera(from.Lerp(cube.SquaredPose(st.To), t))

	case PhaseZoomingIn:
		c.setOrientation(st.To.Canonical())
		squared := cube.SquaredPose(st.To)
		filled := cube.FilledPose(st.To, fill)
		c.setCamera(cube.Pose{
			Position: squared.Position.Lerp(filled.Position, t),
			Up:       squared.Up,
			Target:   squared.Target,
		})

	case PhaseZoomingOut:
		c.setOrientation(st.From.Canonical())
		squared := cube.SquaredPose(st.From)
		filled := cube.FilledPose(st.From, fill)
		c.setCamera(cube.Pose{
			Position: filled.Position.Lerp(squared.Position, t),
			Up:       squared.Up,
			Target:   squared.Target,
		})

	case PhaseUnsquaring:
		c.setOrientation(st.From.Canonical())
		c.setCamera(cube.SquaredPose(st.From).Lerp(overview, t))
	}
}

func (c *Choreographer) setOrientation(q math.Quat) {
	c.scene.SetOrientation(scene.OwnerTransition, q)
}

func (c *Choreographer) setCamera(p cube.Pose) {
	c.scene.SetCamera(scene.OwnerTransition, p)
}

type optionalFace struct {
	face cube.Face
	ok   bool
}

func (o optionalFace) String() string {
	if !o.ok {
		return "-"
	}
	return o.face.String()
}
