package scene

import (
	"testing"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/camera"
	"github.com/Faultbox/cubefolio/pkg/math"
)

func TestOwnership(t *testing.T) {
	s := New(math.QuatIdentity(), camera.Default())
	if s.Owner() != OwnerRotation {
		t.Fatalf("initial owner = %v, want rotation", s.Owner())
	}

	q := math.QuatFromAxisAngle(math.UnitY, 0.3)
	if s.SetOrientation(OwnerTransition, q) {
		t.Error("non-owner write accepted")
	}

	if prev := s.Claim(OwnerTransition); prev != OwnerRotation {
		t.Errorf("Claim returned %v, want rotation", prev)
	}
	if s.SetOrientation(OwnerRotation, q) {
		t.Error("previous owner can still write after Claim")
	}
	if !s.SetOrientation(OwnerTransition, q) || !s.Orientation().ApproxEqual(q, 1e-6) {
		t.Error("owner write rejected")
	}
	if !s.SetCamera(OwnerTransition, cube.SquaredPose(cube.Front)) {
		t.Error("owner camera write rejected")
	}

	if s.Release(OwnerRotation) {
		t.Error("non-owner release accepted")
	}
	if !s.Release(OwnerTransition) || s.Owner() != OwnerNone {
		t.Errorf("release failed, owner = %v", s.Owner())
	}
}

func TestViewport(t *testing.T) {
	s := New(math.QuatIdentity(), camera.Default())
	s.SetViewport(0, -5)
	if w, h := s.Viewport(); w != 1 || h != 1 {
		t.Errorf("viewport = %dx%d, want clamped 1x1", w, h)
	}
	s.SetViewport(1600, 800)
	if s.Aspect() != 2 {
		t.Errorf("aspect = %f, want 2", s.Aspect())
	}
}

func TestCubeScreenSizeShrinksWithDistance(t *testing.T) {
	s := New(math.QuatIdentity(), camera.Default())
	s.SetViewport(1000, 1000)
	s.Claim(OwnerTransition)

	s.SetCamera(OwnerTransition, cube.Pose{Position: math.Vec3{Z: 4}, Up: math.UnitY})
	near := s.CubeScreenSize()
	s.SetCamera(OwnerTransition, cube.Pose{Position: math.Vec3{Z: 8}, Up: math.UnitY})
	far := s.CubeScreenSize()

	if near <= 0 || far <= 0 {
		t.Fatalf("sizes must be positive: %f %f", near, far)
	}
	if r := near / far; r < 1.99 || r > 2.01 {
		t.Errorf("doubling distance should halve the size, ratio %f", r)
	}
}
