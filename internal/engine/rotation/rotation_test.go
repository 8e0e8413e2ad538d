package rotation

import (
	"testing"
	"time"

	"github.com/Faultbox/cubefolio/internal/engine/camera"
	"github.com/Faultbox/cubefolio/internal/engine/scene"
	"github.com/Faultbox/cubefolio/pkg/math"
)

const frame = 16 * time.Millisecond

func newModel() (*Model, *scene.Scene) {
	s := scene.New(math.QuatIdentity(), camera.Default())
	return New(s, DefaultConfig()), s
}

func TestDragRotatesAboutScreenAxes(t *testing.T) {
	m, s := newModel()
	_, up, _ := camera.Basis(s.Camera())

	m.DragStart(math.Vec2{X: 100, Y: 100})
	m.DragMove(math.Vec2{X: 200, Y: 100})

	want := math.QuatFromAxisAngle(up, 0.6)
	if !s.Orientation().ApproxEqual(want, 1e-5) {
		t.Errorf("orientation = %v, want %v", s.Orientation(), want)
	}
}

func TestFrontFollowsPointer(t *testing.T) {
	m, s := newModel()
	right, up, forward := camera.Basis(s.Camera())
	near := forward.Negate()

	m.DragStart(math.Vec2{})
	m.DragMove(math.Vec2{X: 20})
	if moved := s.Orientation().Rotate(near).Sub(near); moved.Dot(right) <= 0 {
		t.Errorf("dragging right moved the near point by %v, want +right", moved)
	}

	m2, s2 := newModel()
	m2.DragStart(math.Vec2{})
	m2.DragMove(math.Vec2{Y: 20})
	if moved := s2.Orientation().Rotate(near).Sub(near); moved.Dot(up) >= 0 {
		t.Errorf("dragging down moved the near point by %v, want -up", moved)
	}
}

func TestVelocityOverwrittenNotSummed(t *testing.T) {
	m, _ := newModel()

	m.DragStart(math.Vec2{})
	m.DragMove(math.Vec2{X: 50})
	m.DragMove(math.Vec2{X: 60, Y: 5})

	want := math.Vec2{X: 10 * 0.006, Y: 5 * 0.006}
	got := m.Velocity()
	if abs(got.X-want.X) > 1e-7 || abs(got.Y-want.Y) > 1e-7 {
		t.Errorf("velocity = %v, want %v", got, want)
	}
}

func TestMomentumDecays(t *testing.T) {
	m, s := newModel()

	m.DragStart(math.Vec2{})
	m.DragMove(math.Vec2{X: 50, Y: -20})
	m.DragEnd()

	frames := 0
	for ; frames < 400; frames++ {
		v := m.Velocity()
		if abs(v.X) <= 1e-4 && abs(v.Y) <= 1e-4 {
			break
		}
		m.Tick(frame)
	}
	if frames >= 400 {
		t.Fatalf("momentum still above epsilon after %d frames: %v", frames, m.Velocity())
	}

	// Below epsilon and not idle yet: orientation holds still.
	before := s.Orientation()
	m.Tick(frame)
	if !sameQuat(s.Orientation(), before) {
		t.Error("orientation changed after momentum settled and before idle timeout")
	}
}

func TestNoTickWhileDragging(t *testing.T) {
	m, s := newModel()
	m.DragStart(math.Vec2{})
	m.DragMove(math.Vec2{X: 30})
	before := s.Orientation()

	m.Tick(10 * time.Second)
	if !sameQuat(s.Orientation(), before) {
		t.Error("tick while dragging must not rotate")
	}
}

func TestAutoRotateWhenIdle(t *testing.T) {
	m, s := newModel()
	_, up, _ := camera.Basis(s.Camera())

	// Idle from the start.
	m.Tick(frame)
	want := math.QuatFromAxisAngle(up, 0.001)
	if !sameQuat(s.Orientation(), want) {
		t.Errorf("orientation = %v, want auto-rotate step %v", s.Orientation(), want)
	}
}

func TestIdleTimerRestartsOnInteraction(t *testing.T) {
	m, s := newModel()

	m.DragStart(math.Vec2{})
	m.DragEnd()
	before := s.Orientation()

	m.Tick(2 * time.Second)
	if !sameQuat(s.Orientation(), before) {
		t.Fatal("auto-rotate started before the idle timeout")
	}

	m.Tick(time.Second)
	if sameQuat(s.Orientation(), before) {
		t.Error("auto-rotate should start once the idle timeout elapsed")
	}
}

func TestSetEnabledFalse(t *testing.T) {
	m, s := newModel()

	m.DragStart(math.Vec2{})
	m.DragMove(math.Vec2{X: 40})
	m.SetEnabled(false)

	if m.Dragging() {
		t.Error("disable should cancel the drag")
	}
	if m.Velocity() != (math.Vec2{}) {
		t.Errorf("disable should zero velocity, got %v", m.Velocity())
	}

	before := s.Orientation()
	m.DragStart(math.Vec2{})
	m.DragMove(math.Vec2{X: 100})
	m.Tick(10 * time.Second)
	if !sameQuat(s.Orientation(), before) {
		t.Error("disabled model must not rotate")
	}
}

func TestWritesRejectedWithoutOwnership(t *testing.T) {
	m, s := newModel()
	s.Claim(scene.OwnerTransition)
	before := s.Orientation()

	m.Tick(frame)
	if !sameQuat(s.Orientation(), before) {
		t.Error("rotation model wrote while the transition owned the scene")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// sameQuat compares quaternions component-wise; small angles are below ApproxEqual's resolution.
func sameQuat(a, b math.Quat) bool {
	const eps = 1e-6
	return abs(a.X-b.X) < eps && abs(a.Y-b.Y) < eps && abs(a.Z-b.Z) < eps && abs(a.W-b.W) < eps
}
