package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/scene"
	"github.com/Faultbox/cubefolio/internal/engine/shader"
	"github.com/Faultbox/cubefolio/internal/engine/texture"
	"github.com/Faultbox/cubefolio/internal/logger"
)

const cubeVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vUV;

void main() {
	vNormal = mat3(uModel) * aNormal;
	vUV = aUV;
	gl_Position = uViewProj * uModel * vec4(aPos, 1.0);
}
`

const cubeFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec2 vUV;

uniform sampler2D uTexture;
uniform float uAmbient;
uniform vec3 uKeyDir;
uniform float uKeyIntensity;
uniform vec3 uFillDir;
uniform float uFillIntensity;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	float light = uAmbient
		+ max(dot(n, uKeyDir), 0.0) * uKeyIntensity
		+ max(dot(n, uFillDir), 0.0) * uFillIntensity;
	vec4 tex = texture(uTexture, vUV);
	FragColor = vec4(min(tex.rgb * light, vec3(1.0)), tex.a);
}
`

// Cube draws the box mesh with one material per face. It implements the
// GL side of the output bridge.
type Cube struct {
	program   *shader.Program
	vao, vbo  uint32
	materials *MaterialSet
	log       *zap.Logger
}

// NewCube builds the mesh and shader. Requires a current GL context.
func NewCube() (*Cube, error) {
	program, err := shader.New(cubeVertexShader, cubeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("cube shader: %w", err)
	}

	c := &Cube{program: program, log: logger.Named("renderer")}

	vertices := cube.MeshVertices()
	stride := int32(cube.VertexStride * 4)

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	c.log.Debug("cube mesh created", zap.Uint32("vao", c.vao), zap.Int("vertices", len(vertices)/cube.VertexStride))
	return c, nil
}

// SetMaterials uploads set and swaps it in. The previous materials are
// disposed only after the new ones exist, so a failed upload keeps the old set.
func (c *Cube) SetMaterials(set *texture.Set) error {
	next, err := UploadMaterials(set)
	if err != nil {
		return err
	}
	prev := c.materials
	c.materials = next
	if prev != nil {
		prev.Dispose()
	}
	return nil
}

// ReleaseMaterials frees the current material set.
func (c *Cube) ReleaseMaterials() {
	if c.materials != nil {
		c.materials.Dispose()
		c.materials = nil
	}
}

// Draw renders the cube at the scene's orientation and camera.
func (c *Cube) Draw(s *scene.Scene) {
	if c.materials == nil {
		return
	}

	c.program.Use()
	c.program.SetMat4("uModel", s.Model())
	c.program.SetMat4("uViewProj", s.ViewProjection())
	c.program.SetFloat("uAmbient", s.Lights.Ambient)
	c.program.SetVec3("uKeyDir", s.Lights.Key.Direction)
	c.program.SetFloat("uKeyIntensity", s.Lights.Key.Intensity)
	c.program.SetVec3("uFillDir", s.Lights.Fill.Direction)
	c.program.SetFloat("uFillIntensity", s.Lights.Fill.Intensity)
	c.program.SetInt("uTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(c.vao)
	for slot := 0; slot < cube.Count; slot++ {
		gl.BindTexture(gl.TEXTURE_2D, c.materials.Texture(slot))
		gl.DrawArrays(gl.TRIANGLES, int32(slot*cube.VerticesPerFace), cube.VerticesPerFace)
	}
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Close frees all GL resources.
func (c *Cube) Close() {
	c.ReleaseMaterials()
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
		c.vbo = 0
	}
	c.program.Delete()
}
