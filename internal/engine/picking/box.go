package picking

import (
	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/pkg/math"
)

// Hit is a ray intersection with the cube mesh.
type Hit struct {
	// Triangle is the mesh triangle index, TrianglesPerFace per renderer slot.
	Triangle int
	Distance float32
	Point    math.Vec3 // world space
}

// PickBox intersects r with the cube of the given half extent centered at the
// origin and rotated by orientation.
func PickBox(r Ray, orientation math.Quat, halfExtent float32) (Hit, bool) {
	inv := orientation.Normalize().Conjugate()
	local := Ray{Origin: inv.Rotate(r.Origin), Direction: inv.Rotate(r.Direction)}

	h := math.Vec3{X: halfExtent, Y: halfExtent, Z: halfExtent}
	t, ok := local.IntersectAABB(NewAABB(h.Negate(), h))
	if !ok {
		return Hit{}, false
	}
	p := local.At(t)

	slot := slotAt(p)
	s := cube.Slots[slot]
	u := (p.Dot(s.U)/halfExtent + 1) / 2
	v := (p.Dot(s.V)/halfExtent + 1) / 2

	return Hit{
		Triangle: slot*cube.TrianglesPerFace + s.Triangle(u, v),
		Distance: t,
		Point:    orientation.Rotate(p),
	}, true
}

// slotAt returns the renderer slot whose plane p lies on: the axis with the
// largest magnitude component.
func slotAt(p math.Vec3) int {
	ax, ay, az := abs(p.X), abs(p.Y), abs(p.Z)
	switch {
	case ax >= ay && ax >= az:
		if p.X >= 0 {
			return 0
		}
		return 1
	case ay >= az:
		if p.Y >= 0 {
			return 2
		}
		return 3
	default:
		if p.Z >= 0 {
			return 4
		}
		return 5
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
