// Package scene holds the live cube scene: orientation, camera, lens and lights.
//
// Orientation and camera have exactly one writer at a time, tracked by an
// Owner token. The pointer rotation model owns them while the cube spins
// freely; a transition claims them for its whole run and releases them when
// it finishes. Everything runs on the render thread.
package scene

import (
	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/camera"
	"github.com/Faultbox/cubefolio/internal/engine/lighting"
	"github.com/Faultbox/cubefolio/pkg/math"
)

// Scene is the mutable state shared by the rotation model, the transition
// choreographer and the renderer.
type Scene struct {
	Lens   camera.Perspective
	Lights lighting.Rig

	orientation math.Quat
	camera      cube.Pose
	owner       Owner

	width, height int
}

// New creates a scene at the given orientation with the overview camera.
// The rotation model owns it initially.
func New(orientation math.Quat, lens camera.Perspective) *Scene {
	return &Scene{
		Lens:        lens,
		Lights:      lighting.DefaultRig(),
		orientation: orientation.Normalize(),
		camera:      cube.DefaultPose(),
		owner:       OwnerRotation,
		width:       1,
		height:      1,
	}
}

// SetViewport records the drawable size in pixels.
func (s *Scene) SetViewport(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.width, s.height = width, height
}

// Viewport returns the drawable size in pixels.
func (s *Scene) Viewport() (width, height int) {
	return s.width, s.height
}

// Aspect returns width/height.
func (s *Scene) Aspect() float32 {
	return float32(s.width) / float32(s.height)
}

// Model returns the cube model matrix.
func (s *Scene) Model() math.Mat4 {
	return s.orientation.ToMat4()
}

// View returns the camera view matrix.
func (s *Scene) View() math.Mat4 {
	return s.camera.View()
}

// Projection returns the projection matrix for the current viewport.
func (s *Scene) Projection() math.Mat4 {
	return s.Lens.Projection(s.Aspect())
}

// ViewProjection returns Projection * View.
func (s *Scene) ViewProjection() math.Mat4 {
	return s.Projection().Mul(s.View())
}

// CubeScreenSize estimates the on-screen edge length of the cube in pixels:
// the projected span of a unit-half-extent face held square to the camera at
// the cube center's depth.
func (s *Scene) CubeScreenSize() float32 {
	vp := s.ViewProjection()
	right, _, _ := camera.Basis(s.camera)
	w, h := float32(s.width), float32(s.height)

	a, okA := vp.ProjectToScreen(right.Scale(-cube.HalfExtent), w, h)
	b, okB := vp.ProjectToScreen(right.Scale(cube.HalfExtent), w, h)
	if !okA || !okB {
		return 0
	}
	return b.Sub(a).Length()
}
