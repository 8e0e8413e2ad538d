// Package camera provides the perspective camera used to view the cube.
package camera

import (
	gomath "math"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/pkg/math"
)

// Perspective holds the projection parameters of the cube camera.
type Perspective struct {
	FOV  float32 // vertical field of view, degrees
	Near float32
	Far  float32
}

// Default returns the overview camera lens: 50° vertical, near 0.1, far 100.
func Default() Perspective {
	return Perspective{FOV: 50, Near: 0.1, Far: 100}
}

// FOVRadians returns the vertical field of view in radians.
func (p Perspective) FOVRadians() float32 {
	return p.FOV * float32(gomath.Pi) / 180
}

// Projection returns the projection matrix for the given aspect ratio (width/height).
func (p Perspective) Projection(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(p.FOVRadians(), aspect, p.Near, p.Far)
}

// Basis returns the camera's world-space right, up and forward vectors for a pose.
// up is re-orthogonalized against forward.
func Basis(pose cube.Pose) (right, up, forward math.Vec3) {
	forward = pose.Target.Sub(pose.Position).Normalize()
	right = forward.Cross(pose.Up).Normalize()
	if right.Length() == 0 {
		// Up parallel to the view direction; any perpendicular works.
		right = forward.Cross(math.UnitX).Normalize()
	}
	up = right.Cross(forward)
	return right, up, forward
}
