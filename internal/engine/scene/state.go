package scene

import (
	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/pkg/math"
)

// Owner identifies the single component allowed to write orientation and camera.
type Owner int

// Owners.
const (
	OwnerNone Owner = iota
	OwnerRotation
	OwnerTransition
)

func (o Owner) String() string {
	switch o {
	case OwnerRotation:
		return "rotation"
	case OwnerTransition:
		return "transition"
	default:
		return "none"
	}
}

// Owner returns the current writer.
func (s *Scene) Owner() Owner {
	return s.owner
}

// Claim hands write access to o and returns the previous owner.
func (s *Scene) Claim(o Owner) Owner {
	prev := s.owner
	s.owner = o
	return prev
}

// Release gives up write access if o holds it.
func (s *Scene) Release(o Owner) bool {
	if s.owner != o {
		return false
	}
	s.owner = OwnerNone
	return true
}

// Orientation returns the cube rotation.
func (s *Scene) Orientation() math.Quat {
	return s.orientation
}

// SetOrientation writes the cube rotation. Writes from a non-owner are rejected.
func (s *Scene) SetOrientation(by Owner, q math.Quat) bool {
	if by != s.owner {
		return false
	}
	s.orientation = q.Normalize()
	return true
}

// Camera returns the camera pose.
func (s *Scene) Camera() cube.Pose {
	return s.camera
}

// SetCamera writes the camera pose. Writes from a non-owner are rejected.
func (s *Scene) SetCamera(by Owner, p cube.Pose) bool {
	if by != s.owner {
		return false
	}
	s.camera = p
	return true
}
