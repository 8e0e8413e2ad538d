package cube

import "github.com/Faultbox/cubefolio/pkg/math"

// Slot describes one face of the box mesh in its native order. U and V span
// the face texture; U x V equals Normal, so corners wind counter-clockwise
// seen from outside and textures read upright at the canonical orientation.
type Slot struct {
	Normal math.Vec3
	U, V   math.Vec3
}

// Slots lists the box mesh faces in renderer order (+X, -X, +Y, -Y, +Z, -Z).
var Slots = [Count]Slot{
	{Normal: math.Vec3{X: 1}, U: math.Vec3{Z: -1}, V: math.UnitY},
	{Normal: math.Vec3{X: -1}, U: math.UnitZ, V: math.UnitY},
	{Normal: math.Vec3{Y: 1}, U: math.UnitX, V: math.Vec3{Z: -1}},
	{Normal: math.Vec3{Y: -1}, U: math.UnitX, V: math.UnitZ},
	{Normal: math.UnitZ, U: math.UnitX, V: math.UnitY},
	{Normal: math.Vec3{Z: -1}, U: math.Vec3{X: -1}, V: math.UnitY},
}

// TrianglesPerFace is the number of triangles each face is split into.
const TrianglesPerFace = 2

// VerticesPerFace is the vertex count of one face in the unindexed mesh.
const VerticesPerFace = TrianglesPerFace * 3

// VertexStride is the number of floats per vertex: position, normal, uv.
const VertexStride = 8

// Corner returns the local position of the face point at texture coordinates (u, v).
func (s Slot) Corner(u, v float32) math.Vec3 {
	return s.Normal.Scale(HalfExtent).
		Add(s.U.Scale((2*u - 1) * HalfExtent)).
		Add(s.V.Scale((2*v - 1) * HalfExtent))
}

// Triangle returns which of the face's two triangles holds (u, v). Triangle 0
// covers the half below the (0,0)-(1,1) diagonal.
func (s Slot) Triangle(u, v float32) int {
	if v > u {
		return 1
	}
	return 0
}

// MeshVertices returns the unindexed box mesh, VerticesPerFace vertices per
// slot in renderer order, each VertexStride floats long.
func MeshVertices() []float32 {
	uvs := [VerticesPerFace][2]float32{
		{0, 0}, {1, 0}, {1, 1},
		{0, 0}, {1, 1}, {0, 1},
	}

	out := make([]float32, 0, Count*VerticesPerFace*VertexStride)
	for _, s := range Slots {
		for _, uv := range uvs {
			p := s.Corner(uv[0], uv[1])
			out = append(out,
				p.X, p.Y, p.Z,
				s.Normal.X, s.Normal.Y, s.Normal.Z,
				uv[0], uv[1],
			)
		}
	}
	return out
}
