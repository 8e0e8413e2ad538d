// Package rotation implements the pointer-driven free spin of the cube:
// drag rotation, momentum with friction, and idle auto-rotation.
package rotation

import (
	"time"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/cubefolio/internal/engine/camera"
	"github.com/Faultbox/cubefolio/internal/engine/scene"
	"github.com/Faultbox/cubefolio/internal/logger"
	"github.com/Faultbox/cubefolio/pkg/math"
)

// Config tunes the rotation feel. Velocities are per frame.
type Config struct {
	Sensitivity     float32 // radians per pixel of drag
	Friction        float32 // velocity multiplier per frame
	AutoRotateSpeed float32 // radians per frame while idle
	IdleTimeout     time.Duration
	Epsilon         float32 // below this momentum stops
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		Sensitivity:     0.006,
		Friction:        0.95,
		AutoRotateSpeed: 0.001,
		IdleTimeout:     3 * time.Second,
		Epsilon:         0.0001,
	}
}

// Model turns pointer input into cube orientation changes. It writes to the
// scene only while it holds scene.OwnerRotation.
type Model struct {
	cfg   Config
	scene *scene.Scene
	log   *zap.Logger

	enabled  bool
	dragging bool
	last     math.Vec2
	velocity math.Vec2 // x: about the screen vertical axis, y: about the screen horizontal axis
	idle     time.Duration
}

// New creates a model driving s. The cube counts as idle from the start.
func New(s *scene.Scene, cfg Config) *Model {
	return &Model{
		cfg:     cfg,
		scene:   s,
		log:     logger.Named("rotation"),
		enabled: true,
		idle:    cfg.IdleTimeout,
	}
}

// Enabled reports whether pointer input is accepted.
func (m *Model) Enabled() bool {
	return m.enabled
}

// Dragging reports whether a drag is in progress.
func (m *Model) Dragging() bool {
	return m.dragging
}

// Velocity returns the current angular velocity in radians per frame.
func (m *Model) Velocity() math.Vec2 {
	return m.velocity
}

// SetEnabled turns input on or off. Disabling cancels any drag and momentum.
func (m *Model) SetEnabled(enabled bool) {
	m.enabled = enabled
	if !enabled {
		m.dragging = false
		m.velocity = math.Vec2{}
	}
}

// DragStart begins a drag at pointer position p.
func (m *Model) DragStart(p math.Vec2) {
	if !m.enabled {
		return
	}
	m.dragging = true
	m.last = p
	m.velocity = math.Vec2{}
	m.idle = 0
}

// DragMove rotates by the pointer delta since the last event. The velocity is
// replaced by this move's delta.
func (m *Model) DragMove(p math.Vec2) {
	if !m.enabled || !m.dragging {
		return
	}
	delta := p.Sub(m.last)
	m.last = p
	m.idle = 0

	m.velocity = delta.Scale(m.cfg.Sensitivity)
	m.apply(m.velocity.X, m.velocity.Y)
}

// DragEnd releases the drag; momentum carries on from the last move.
func (m *Model) DragEnd() {
	if !m.enabled {
		return
	}
	m.dragging = false
}

// Tick advances one frame. dt only drives the idle timer.
func (m *Model) Tick(dt time.Duration) {
	if !m.enabled {
		return
	}
	m.idle += dt
	if m.dragging {
		return
	}

	if math32.Abs(m.velocity.X) > m.cfg.Epsilon || math32.Abs(m.velocity.Y) > m.cfg.Epsilon {
		m.apply(m.velocity.X, m.velocity.Y)
		m.velocity = m.velocity.Scale(m.cfg.Friction)
		return
	}

	if m.idle >= m.cfg.IdleTimeout {
		m.apply(m.cfg.AutoRotateSpeed, 0)
	}
}

// apply rotates the cube by yaw about the camera's screen-vertical axis and
// pitch about its screen-horizontal axis. The side facing the camera follows
// the pointer.
func (m *Model) apply(yaw, pitch float32) {
	right, up, _ := camera.Basis(m.scene.Camera())
	delta := math.QuatFromAxisAngle(up, yaw).Mul(math.QuatFromAxisAngle(right, pitch))
	q := delta.Mul(m.scene.Orientation())
	if !m.scene.SetOrientation(scene.OwnerRotation, q) {
		m.log.Debug("rotation write rejected", zap.Stringer("owner", m.scene.Owner()))
	}
}
