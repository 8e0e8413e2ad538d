// Package flatten reproduces the end state of a cube transition as a single
// projected quad, so the GL cube can be released while a short settle
// animation plays over the destination page.
//
// The projection is the one a CSS 3-D cube uses: points are scaled to pixels
// by the on-screen cube size and divided by a perspective distance expressed
// in pixels. With the perspective set to the camera distance times half the
// cube size it matches the GL projection of the snapshot exactly.
package flatten

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/camera"
	"github.com/Faultbox/cubefolio/pkg/math"
)

// Style selects the settle animation.
type Style string

// Settle styles.
const (
	StyleFade Style = "fade"
	StyleZoom Style = "zoom"
)

// ParseStyle accepts "fade" or "zoom".
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleFade, StyleZoom:
		return Style(s), nil
	}
	return "", fmt.Errorf("unknown settle style %q", s)
}

// Split of the zoom style between rotating to the face and scaling it up.
const (
	zoomRotateShare = 0.7
	zoomOvershoot   = 1.1
	// Extra perspective, in pixels, added while the face scales up so it
	// flattens instead of bulging toward the viewer.
	zoomPerspectiveBoost = 2000
)

// Snapshot is the cube state captured when the GL transition completes.
type Snapshot struct {
	Face           cube.Face
	Orientation    math.Quat
	Camera         cube.Pose
	CameraDistance float32
	CubeScreenSize float32
	Width, Height  int
	TakenAt        time.Time
}

// Quad is one projected face in screen pixels, origin top-left.
// Corners follow texture order (0,0), (1,0), (1,1), (0,1).
type Quad struct {
	Face    cube.Face
	Corners [4]math.Vec2
	Alpha   float32
	// FrontFacing is false when the face is turned away from the viewer.
	FrontFacing bool
}

// Project returns the face quad for the snapshot pose, rotated by q and
// scaled by scale around the cube center.
func Project(s Snapshot, face cube.Face, q math.Quat, scale, perspectiveBoost float32) Quad {
	right, up, forward := camera.Basis(s.Camera)
	half := s.CubeScreenSize / 2 * scale
	perspective := s.CameraDistance*s.CubeScreenSize/2 + perspectiveBoost
	cx, cy := float32(s.Width)/2, float32(s.Height)/2

	slot := cube.Slots[face.Geometry().RendererIndex]
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	quad := Quad{Face: face, Alpha: 1}
	for i, uv := range uvs {
		p := q.Rotate(slot.Corner(uv[0], uv[1]))
		x := p.Dot(right) * half
		y := p.Dot(up) * half
		z := -p.Dot(forward) * half

		k := float32(1)
		if d := perspective - z; d > 0 {
			k = perspective / d
		}
		quad.Corners[i] = math.Vec2{X: cx + x*k, Y: cy - y*k}
	}

	// Screen y points down, so a counter-clockwise face has negative area.
	e1 := quad.Corners[1].Sub(quad.Corners[0])
	e2 := quad.Corners[2].Sub(quad.Corners[0])
	quad.FrontFacing = e1.X*e2.Y-e1.Y*e2.X < 0
	return quad
}

// Settle animates the flattened face from a snapshot.
type Settle struct {
	snap     Snapshot
	style    Style
	duration time.Duration
	start    time.Time
	target   math.Quat
}

// NewSettle starts a settle at now.
func NewSettle(snap Snapshot, style Style, duration time.Duration, now time.Time) *Settle {
	return &Settle{
		snap:     snap,
		style:    style,
		duration: duration,
		start:    now,
		target:   snap.Face.Canonical(),
	}
}

// Snapshot returns the snapshot the settle started from.
func (s *Settle) Snapshot() Snapshot {
	return s.snap
}

// Progress returns the linear progress at now in [0, 1].
func (s *Settle) Progress(now time.Time) float32 {
	if s.duration <= 0 {
		return 1
	}
	t := float32(now.Sub(s.start)) / float32(s.duration)
	return math32.Max(0, math32.Min(1, t))
}

// Done reports whether the settle has finished at now.
func (s *Settle) Done(now time.Time) bool {
	return s.Progress(now) >= 1
}

// At returns the quad to draw at now.
func (s *Settle) At(now time.Time) Quad {
	t := s.Progress(now)
	switch s.style {
	case StyleZoom:
		return s.zoom(t)
	default:
		quad := Project(s.snap, s.snap.Face, s.snap.Orientation, 1, 0)
		quad.Alpha = 1 - t
		return quad
	}
}

func (s *Settle) zoom(t float32) Quad {
	if t < zoomRotateShare {
		eased := easeInOutCubic(t / zoomRotateShare)
		q := s.snap.Orientation.Slerp(s.target, eased)
		return Project(s.snap, s.snap.Face, q, 1, 0)
	}

	eased := easeInOutCubic((t - zoomRotateShare) / (1 - zoomRotateShare))
	scale := 1 + (s.maxScale()-1)*eased
	return Project(s.snap, s.snap.Face, s.target, scale, zoomPerspectiveBoost*eased)
}

// maxScale is the scale at which the face covers the whole viewport.
func (s *Settle) maxScale() float32 {
	if s.snap.CubeScreenSize <= 0 {
		return 1
	}
	long := math32.Max(float32(s.snap.Width), float32(s.snap.Height))
	return long / s.snap.CubeScreenSize * zoomOvershoot
}

func easeInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math32.Pow(-2*t+2, 3)/2
}
