package math

import (
	"math"
	"testing"
)

func TestQuatIdentityRotate(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := QuatIdentity().Rotate(v); !got.ApproxEqual(v, 1e-6) {
		t.Errorf("identity rotate = %v, want %v", got, v)
	}
}

func TestQuatRotate(t *testing.T) {
	half := float32(math.Pi / 2)
	tests := []struct {
		name string
		q    Quat
		in   Vec3
		want Vec3
	}{
		{"Y+90 takes +X to -Z", QuatFromAxisAngle(UnitY, half), UnitX, Vec3{0, 0, -1}},
		{"Y-90 takes +X to +Z", QuatFromAxisAngle(UnitY, -half), UnitX, UnitZ},
		{"X+90 takes +Y to +Z", QuatFromAxisAngle(UnitX, half), UnitY, UnitZ},
		{"Y180 takes -Z to +Z", QuatFromAxisAngle(UnitY, math.Pi), Vec3{0, 0, -1}, UnitZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Rotate(tt.in); !got.ApproxEqual(tt.want, 1e-5) {
				t.Errorf("Rotate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuatRotateMatchesMatrix(t *testing.T) {
	q := QuatFromEuler(-0.4, 0.5, 0.2)
	v := Vec3{0.3, -1, 2}
	want := q.ToMat4().TransformVec3(v)
	if got := q.Rotate(v); !got.ApproxEqual(want, 1e-5) {
		t.Errorf("Rotate = %v, matrix = %v", got, want)
	}
}

func TestQuatMulOrder(t *testing.T) {
	a := QuatFromAxisAngle(UnitX, 0.6)
	b := QuatFromAxisAngle(UnitY, 1.1)
	v := Vec3{1, 0.5, -0.25}

	want := a.Rotate(b.Rotate(v))
	if got := a.Mul(b).Rotate(v); !got.ApproxEqual(want, 1e-5) {
		t.Errorf("a*b rotate = %v, want b then a = %v", got, want)
	}
}

func TestQuatEulerRoundTrip(t *testing.T) {
	angles := []Vec3{
		{},
		{-0.4, 0.5, 0},
		{0.3, -1.2, 2.5},
		{1.5, 0.2, -0.7},
	}

	for _, a := range angles {
		q := QuatFromEuler(a.X, a.Y, a.Z)
		e := q.Euler()
		if !QuatFromEuler(e.X, e.Y, e.Z).ApproxEqual(q, 1e-5) {
			t.Errorf("Euler round trip for %v gave %v", a, e)
		}
		if !e.ApproxEqual(a, 1e-4) {
			t.Errorf("Euler(%v) = %v", a, e)
		}
	}
}

func TestQuatApproxEqualSign(t *testing.T) {
	q := QuatFromAxisAngle(UnitZ, 0.8)
	neg := Quat{-q.X, -q.Y, -q.Z, -q.W}
	if !q.ApproxEqual(neg, 1e-6) {
		t.Error("q and -q should be the same rotation")
	}
	if q.ApproxEqual(QuatIdentity(), 1e-3) {
		t.Error("distinct rotations reported equal")
	}
}

func TestQuatSlerp(t *testing.T) {
	a := QuatIdentity()
	b := QuatFromAxisAngle(UnitY, math.Pi/2)

	if got := a.Slerp(b, 0); !got.ApproxEqual(a, 1e-6) {
		t.Errorf("Slerp(0) = %v, want %v", got, a)
	}
	if got := a.Slerp(b, 1); !got.ApproxEqual(b, 1e-6) {
		t.Errorf("Slerp(1) = %v, want %v", got, b)
	}

	mid := a.Slerp(b, 0.5)
	want := QuatFromAxisAngle(UnitY, math.Pi/4)
	if !mid.ApproxEqual(want, 1e-5) {
		t.Errorf("Slerp(0.5) = %v, want %v", mid, want)
	}
}

func TestQuatConjugate(t *testing.T) {
	q := QuatFromEuler(0.2, -0.9, 1.3)
	if got := q.Mul(q.Conjugate()); !got.ApproxEqual(QuatIdentity(), 1e-6) {
		t.Errorf("q * q^-1 = %v, want identity", got)
	}
}
