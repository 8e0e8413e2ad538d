package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformVec3(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"translate", Translate(10, 20, 30), Vec3{1, 2, 3}, Vec3{11, 22, 33}},
		{"scale", Scale(2, 2, 2), Vec3{1, 2, 3}, Vec3{2, 4, 6}},
		{"identity", Identity(), Vec3{-1, 0, 7}, Vec3{-1, 0, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformVec3(tt.in)
			if !got.ApproxEqual(tt.want, 1e-5) {
				t.Errorf("TransformVec3 = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookAtCentersTarget(t *testing.T) {
	eye := Vec3{3, 2, 4}
	view := LookAt(eye, Vec3{}, UnitY)

	// The target lands on the view-space -Z axis at the eye distance.
	p := view.TransformVec3(Vec3{})
	if abs(p.X) > 1e-4 || abs(p.Y) > 1e-4 {
		t.Errorf("target off axis: %v", p)
	}
	if abs(p.Z+eye.Length()) > 1e-4 {
		t.Errorf("target depth = %f, want %f", p.Z, -eye.Length())
	}
}

func TestInverse(t *testing.T) {
	m := Translate(1, -2, 3).Mul(QuatFromAxisAngle(UnitY, 0.7).ToMat4()).Mul(Scale(2, 2, 2))
	product := m.Mul(m.Inverse())
	id := Identity()
	for i := 0; i < 16; i++ {
		if abs(product[i]-id[i]) > 1e-4 {
			t.Fatalf("M * M^-1 element %d = %f, want %f", i, product[i], id[i])
		}
	}
}

func TestProjectToScreen(t *testing.T) {
	proj := Perspective(float32(50*math.Pi/180), 2, 0.1, 100)
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, UnitY)
	vp := proj.Mul(view)

	center, ok := vp.ProjectToScreen(Vec3{}, 800, 400)
	if !ok {
		t.Fatal("origin should be in front of the camera")
	}
	if abs(center.X-400) > 0.01 || abs(center.Y-200) > 0.01 {
		t.Errorf("origin projects to %v, want (400, 200)", center)
	}

	up, _ := vp.ProjectToScreen(Vec3{0, 1, 0}, 800, 400)
	if up.Y >= center.Y {
		t.Errorf("+Y should project above center, got %v", up)
	}

	if _, ok := vp.ProjectToScreen(Vec3{0, 0, 10}, 800, 400); ok {
		t.Error("point behind the camera should not project")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
