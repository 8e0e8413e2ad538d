package lighting

import (
	"testing"

	"github.com/Faultbox/cubefolio/pkg/math"
)

func TestDefaultRigShade(t *testing.T) {
	rig := DefaultRig()

	tests := []struct {
		name   string
		normal math.Vec3
		min    float32
		max    float32
	}{
		{"facing key", math.Vec3{X: 1, Y: 1, Z: 1}, 1.59, 1.61},
		{"facing away from both", math.Vec3{Y: -1}, 0.59, 0.61},
		{"facing fill", math.Vec3{X: -1, Y: 1, Z: -1}, 0.89, 0.91},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rig.Shade(tt.normal)
			if got < tt.min || got > tt.max {
				t.Errorf("Shade(%v) = %f, want in [%f, %f]", tt.normal, got, tt.min, tt.max)
			}
		})
	}
}
