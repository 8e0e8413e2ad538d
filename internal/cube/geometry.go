package cube

import (
	gomath "math"

	"github.com/Faultbox/cubefolio/pkg/math"
)

// HalfExtent is half the edge length of the cube. The cube spans [-1, 1] on every axis.
const HalfExtent = 1

// Default overview camera: position (3, 2, 4) looking at the origin with Y up.
var (
	DefaultCameraPosition = math.Vec3{X: 3, Y: 2, Z: 4}
	DefaultCameraUp       = math.UnitY
)

// CameraRadius is the distance of the default camera from the cube center, sqrt(29).
var CameraRadius = DefaultCameraPosition.Length()

// ViewAxis is the world axis every face is turned toward when it is selected.
var ViewAxis = math.UnitZ

// InitialEuler is the tilted overview orientation shown when no face is remembered.
var InitialEuler = math.Vec3{X: -0.4, Y: 0.5, Z: 0}

// Geometry is the fixed per-face description of the cube.
type Geometry struct {
	// Normal is the outward unit normal in the cube's local frame.
	Normal math.Vec3
	// Center is the face center in the local frame.
	Center math.Vec3
	// Canonical rotates Center onto ViewAxis.
	Canonical math.Quat
	// SquaredPosition is the camera position, in the local frame, at CameraRadius
	// along Normal.
	SquaredPosition math.Vec3
	// CameraUp is the camera up vector in the local frame. Never parallel to Normal.
	CameraUp math.Vec3
	// RendererIndex is the face's slot in the box mesh (+X, -X, +Y, -Y, +Z, -Z).
	RendererIndex int
}

// Pose is a camera placement.
type Pose struct {
	Position math.Vec3
	Up       math.Vec3
	Target   math.Vec3
}

// Lerp interpolates every component of the pose.
func (p Pose) Lerp(other Pose, t float32) Pose {
	return Pose{
		Position: p.Position.Lerp(other.Position, t),
		Up:       p.Up.Lerp(other.Up, t),
		Target:   p.Target.Lerp(other.Target, t),
	}
}

// View returns the view matrix for the pose.
func (p Pose) View() math.Mat4 {
	return math.LookAt(p.Position, p.Target, p.Up)
}

// DefaultPose is the overview camera.
func DefaultPose() Pose {
	return Pose{Position: DefaultCameraPosition, Up: DefaultCameraUp}
}

var (
	table      [Count]Geometry
	byRenderer [Count]Face
)

func init() {
	halfPi := float32(gomath.Pi / 2)

	normals := [Count]math.Vec3{
		Front:     {X: 0, Y: 0, Z: 1},
		Music:     {X: -1, Y: 0, Z: 0},
		Building:  {X: 0, Y: -1, Z: 0},
		Community: {X: 1, Y: 0, Z: 0},
		Thinking:  {X: 0, Y: 1, Z: 0},
		Back:      {X: 0, Y: 0, Z: -1},
	}
	canonical := [Count]math.Quat{
		Front:     math.QuatIdentity(),
		Music:     math.QuatFromAxisAngle(math.UnitY, halfPi),
		Building:  math.QuatFromAxisAngle(math.UnitX, -halfPi),
		Community: math.QuatFromAxisAngle(math.UnitY, -halfPi),
		Thinking:  math.QuatFromAxisAngle(math.UnitX, halfPi),
		Back:      math.QuatFromAxisAngle(math.UnitY, gomath.Pi),
	}
	ups := [Count]math.Vec3{
		Front:     math.UnitY,
		Music:     math.UnitY,
		Building:  {X: 0, Y: 0, Z: 1},
		Community: math.UnitY,
		Thinking:  {X: 0, Y: 0, Z: -1},
		Back:      math.UnitY,
	}
	rendererIndex := [Count]int{
		Community: 0,
		Music:     1,
		Thinking:  2,
		Building:  3,
		Front:     4,
		Back:      5,
	}

	for _, f := range All {
		n := normals[f]
		table[f] = Geometry{
			Normal:          n,
			Center:          n.Scale(HalfExtent),
			Canonical:       canonical[f],
			SquaredPosition: n.Scale(CameraRadius),
			CameraUp:        ups[f],
			RendererIndex:   rendererIndex[f],
		}
		byRenderer[rendererIndex[f]] = f
	}
}

// Geometry returns the table entry for the face. Invalid faces yield the zero value.
func (f Face) Geometry() Geometry {
	if !f.Valid() {
		return Geometry{}
	}
	return table[f]
}

// Canonical returns the orientation that turns the face toward the camera.
func (f Face) Canonical() math.Quat {
	return f.Geometry().Canonical
}

// FaceAtRendererIndex maps a box mesh slot back to its face.
func FaceAtRendererIndex(index int) (Face, bool) {
	if index < 0 || index >= Count {
		return 0, false
	}
	return byRenderer[index], true
}

// SquaredPose returns the world camera pose squared onto the face while the cube
// sits at the face's canonical orientation.
func SquaredPose(f Face) Pose {
	g := f.Geometry()
	return Pose{
		Position: g.Canonical.Rotate(g.SquaredPosition),
		Up:       g.Canonical.Rotate(g.CameraUp),
		Target:   g.Canonical.Rotate(g.Center),
	}
}

// FilledPose returns the world camera pose at fillDistance in front of the face,
// the end state of a zoom-in.
func FilledPose(f Face, fillDistance float32) Pose {
	g := f.Geometry()
	local := g.Center.Add(g.Normal.Scale(fillDistance))
	return Pose{
		Position: g.Canonical.Rotate(local),
		Up:       g.Canonical.Rotate(g.CameraUp),
		Target:   g.Canonical.Rotate(g.Center),
	}
}

// InitialOrientation returns the overview orientation. With a remembered face the
// cube starts at that face's canonical orientation.
func InitialOrientation(from Face, hasFrom bool) math.Quat {
	if hasFrom && from.Valid() {
		return from.Canonical()
	}
	return math.QuatFromEuler(InitialEuler.X, InitialEuler.Y, InitialEuler.Z)
}
