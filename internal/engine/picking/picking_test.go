package picking

import (
	"testing"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/camera"
	"github.com/Faultbox/cubefolio/pkg/math"
)

func TestIntersectAABB(t *testing.T) {
	box := NewAABB(math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{X: -1, Y: -1, Z: -1})

	tests := []struct {
		name  string
		ray   Ray
		hit   bool
		distT float32
	}{
		{"straight on", Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: -1}}, true, 4},
		{"miss", Ray{Origin: math.Vec3{X: 3, Z: 5}, Direction: math.Vec3{Z: -1}}, false, 0},
		{"pointing away", Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: 1}}, false, 0},
		{"from inside", Ray{Origin: math.Vec3{}, Direction: math.Vec3{X: 1}}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectAABB(box)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && abs(got-tt.distT) > 1e-5 {
				t.Errorf("t = %f, want %f", got, tt.distT)
			}
		})
	}
}

func TestPickBoxSlots(t *testing.T) {
	tests := []struct {
		origin math.Vec3
		slot   int
	}{
		{math.Vec3{X: 5, Y: 0.1, Z: 0.2}, 0},
		{math.Vec3{X: -5, Y: 0.1, Z: 0.2}, 1},
		{math.Vec3{X: 0.1, Y: 5, Z: 0.2}, 2},
		{math.Vec3{X: 0.1, Y: -5, Z: 0.2}, 3},
		{math.Vec3{X: 0.1, Y: 0.2, Z: 5}, 4},
		{math.Vec3{X: 0.1, Y: 0.2, Z: -5}, 5},
	}

	for _, tt := range tests {
		dir := math.Vec3{X: -tt.origin.X, Y: -tt.origin.Y, Z: -tt.origin.Z}
		// Keep the ray axis-aligned so the off-center offset is preserved.
		switch tt.slot / 2 {
		case 0:
			dir = math.Vec3{X: dir.X}
		case 1:
			dir = math.Vec3{Y: dir.Y}
		default:
			dir = math.Vec3{Z: dir.Z}
		}
		hit, ok := PickBox(Ray{Origin: tt.origin, Direction: dir.Normalize()}, math.QuatIdentity(), 1)
		if !ok {
			t.Fatalf("ray from %v missed", tt.origin)
		}
		if got := hit.Triangle / cube.TrianglesPerFace; got != tt.slot {
			t.Errorf("ray from %v hit slot %d, want %d", tt.origin, got, tt.slot)
		}
		if abs(hit.Distance-4) > 1e-5 {
			t.Errorf("distance = %f, want 4", hit.Distance)
		}
	}
}

func TestPickBoxRotated(t *testing.T) {
	// With the cube at Music's canonical orientation the -X slot faces the camera.
	ray := Ray{Origin: math.Vec3{Z: 10}, Direction: math.Vec3{Z: -1}}
	hit, ok := PickBox(ray, cube.Music.Canonical(), cube.HalfExtent)
	if !ok {
		t.Fatal("miss")
	}
	if got := hit.Triangle / cube.TrianglesPerFace; got != cube.Music.Geometry().RendererIndex {
		t.Errorf("slot = %d, want music slot %d", got, cube.Music.Geometry().RendererIndex)
	}
	if !hit.Point.ApproxEqual(math.Vec3{Z: 1}, 1e-5) {
		t.Errorf("world point = %v, want (0, 0, 1)", hit.Point)
	}
}

func TestScreenToRayCenter(t *testing.T) {
	pose := cube.DefaultPose()
	vp := camera.Default().Projection(1).Mul(pose.View())
	ray := ScreenToRay(400, 400, 800, 800, vp.Inverse())

	want := pose.Position.Negate().Normalize()
	if !ray.Direction.ApproxEqual(want, 1e-3) {
		t.Errorf("center ray direction = %v, want %v", ray.Direction, want)
	}

	if _, ok := PickBox(ray, math.QuatIdentity(), 1); !ok {
		t.Error("center ray should hit the cube")
	}
}
