package camera

import (
	"testing"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/pkg/math"
)

func TestBasisDefaultPose(t *testing.T) {
	right, up, forward := Basis(cube.DefaultPose())

	if abs(right.Dot(up)) > 1e-5 || abs(right.Dot(forward)) > 1e-5 || abs(up.Dot(forward)) > 1e-5 {
		t.Errorf("basis not orthogonal: %v %v %v", right, up, forward)
	}
	if up.Y <= 0 {
		t.Errorf("up should keep a positive Y component, got %v", up)
	}
	want := cube.DefaultCameraPosition.Negate().Normalize()
	if !forward.ApproxEqual(want, 1e-5) {
		t.Errorf("forward = %v, want %v", forward, want)
	}
}

func TestBasisDegenerateUp(t *testing.T) {
	pose := cube.Pose{Position: math.Vec3{Y: 5}, Up: math.UnitY}
	right, up, _ := Basis(pose)
	if right.Length() < 0.99 || up.Length() < 0.99 {
		t.Errorf("degenerate up should still produce a basis, got right %v up %v", right, up)
	}
}

func TestProjectionAspectGuard(t *testing.T) {
	p := Default()
	if got, want := p.Projection(0), p.Projection(1); got != want {
		t.Error("non-positive aspect should fall back to 1")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
