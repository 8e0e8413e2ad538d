// Package lighting provides the fixed light rig the cube is shaded with.
package lighting

import "github.com/Faultbox/cubefolio/pkg/math"

// Directional is a light infinitely far away along Direction.
type Directional struct {
	// Direction points from the scene toward the light.
	Direction math.Vec3
	Intensity float32
}

// DirectionalFrom builds a light positioned at pos shining at the origin.
func DirectionalFrom(pos math.Vec3, intensity float32) Directional {
	return Directional{Direction: pos.Normalize(), Intensity: intensity}
}

// Rig is an ambient term plus a key and a fill light.
type Rig struct {
	Ambient float32
	Key     Directional
	Fill    Directional
}

// DefaultRig returns ambient 0.6, a key light from (5, 5, 5) and a weak fill from (-3, 3, -3).
func DefaultRig() Rig {
	return Rig{
		Ambient: 0.6,
		Key:     DirectionalFrom(math.Vec3{X: 5, Y: 5, Z: 5}, 1),
		Fill:    DirectionalFrom(math.Vec3{X: -3, Y: 3, Z: -3}, 0.3),
	}
}

// Shade returns the light factor for a surface with the given world normal,
// the same sum the cube fragment shader computes.
func (r Rig) Shade(normal math.Vec3) float32 {
	n := normal.Normalize()
	return r.Ambient + lambert(n, r.Key) + lambert(n, r.Fill)
}

func lambert(n math.Vec3, l Directional) float32 {
	d := n.Dot(l.Direction)
	if d < 0 {
		return 0
	}
	return d * l.Intensity
}
