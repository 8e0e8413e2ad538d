// Package ui2d draws the 2D overlay: page stand-ins, the flatten settle,
// the unfold cards and the corner HUD.
package ui2d

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubefolio/internal/engine/shader"
	"github.com/Faultbox/cubefolio/internal/engine/texture"
	"github.com/Faultbox/cubefolio/internal/logger"
	"github.com/Faultbox/cubefolio/pkg/math"
)

const vertexShader = `#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vUV;
out vec4 vColor;

void main() {
    gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
`

const fragmentShader = `#version 410 core
in vec2 vUV;
in vec4 vColor;

uniform sampler2D uTexture;

out vec4 FragColor;

void main() {
    FragColor = texture(uTexture, vUV) * vColor;
}
`

// Renderer flushes a Batch with one textured program. Flat color samples a
// white pixel.
type Renderer struct {
	width, height int

	program *shader.Program
	vao     uint32
	vbo     uint32

	white Texture
	atlas *Atlas
	font  Texture

	batch Batch
}

// New creates the overlay renderer for a drawable of the given size.
func New(width, height int) (*Renderer, error) {
	program, err := shader.New(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}
	r := &Renderer{width: width, height: height, program: program, atlas: NewAtlas()}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	stride := int32(vertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 4*4)
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	px := image.NewRGBA(image.Rect(0, 0, 1, 1))
	px.Pix[0], px.Pix[1], px.Pix[2], px.Pix[3] = 255, 255, 255, 255
	r.white = upload(px, gl.NEAREST)
	r.font = upload(r.atlas.Image, gl.NEAREST)

	logger.Named("ui2d").Debug("overlay renderer ready",
		zap.Int("width", width), zap.Int("height", height))
	return r, nil
}

// Resize updates the drawable size.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Size returns the drawable size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Begin starts a new overlay frame.
func (r *Renderer) Begin() {
	r.batch.Reset()
}

// End draws everything queued since Begin and restores GL state.
func (r *Renderer) End() {
	if r.batch.Empty() {
		return
	}

	var prevBlend, prevDepth, prevCull int32
	gl.GetIntegerv(gl.BLEND, &prevBlend)
	gl.GetIntegerv(gl.DEPTH_TEST, &prevDepth)
	gl.GetIntegerv(gl.CULL_FACE, &prevCull)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	r.program.Use()
	r.program.SetMat4("uProjection", math.Ortho(0, float32(r.width), float32(r.height), 0, -1, 1))
	r.program.SetInt("uTexture", 0)
	gl.ActiveTexture(gl.TEXTURE0)

	v := r.batch.vertices
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(v)*4, unsafe.Pointer(&v[0]), gl.STREAM_DRAW)
	for _, run := range r.batch.runs {
		tex := run.tex
		if tex == NoTexture {
			tex = r.white
		}
		gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
		gl.DrawArrays(gl.TRIANGLES, run.first, run.count)
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	if prevBlend == gl.FALSE {
		gl.Disable(gl.BLEND)
	}
	if prevDepth == gl.TRUE {
		gl.Enable(gl.DEPTH_TEST)
	}
	if prevCull == gl.TRUE {
		gl.Enable(gl.CULL_FACE)
	}
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(x, y, w, h float32, c Color) {
	r.batch.Rect(x, y, w, h, c)
}

// DrawRectOutline draws a rectangle border.
func (r *Renderer) DrawRectOutline(x, y, w, h, thickness float32, c Color) {
	r.batch.RectOutline(x, y, w, h, thickness, c)
}

// DrawQuad draws a filled quad.
func (r *Renderer) DrawQuad(p [4]math.Vec2, c Color) {
	r.batch.Quad(p, c)
}

// DrawDisc draws a filled circle.
func (r *Renderer) DrawDisc(center math.Vec2, radius float32, c Color) {
	r.batch.Disc(center, radius, 48, c)
}

// DrawImage draws tex onto a quad whose corners follow texture order.
func (r *Renderer) DrawImage(tex Texture, p [4]math.Vec2, alpha float32) {
	r.batch.Image(tex, p, alpha)
}

// DrawImageRect draws tex upright into a rectangle.
func (r *Renderer) DrawImageRect(tex Texture, x, y, w, h, alpha float32) {
	r.batch.ImageRect(tex, x, y, w, h, alpha)
}

// DrawText draws text with its top-left corner at (x, y).
func (r *Renderer) DrawText(x, y float32, text string, scale float32, c Color) {
	r.batch.Text(r.atlas, r.font, x, y, text, scale, c)
}

// MeasureText returns the size DrawText would cover.
func (r *Renderer) MeasureText(text string, scale float32) (float32, float32) {
	return r.atlas.Measure(text, scale)
}

// UploadImage creates a texture from img, stored bottom-up.
func (r *Renderer) UploadImage(img *image.RGBA) Texture {
	return upload(texture.FlipVertical(img), gl.LINEAR)
}

// DeleteTexture frees a texture from UploadImage.
func (r *Renderer) DeleteTexture(tex Texture) {
	if tex == NoTexture {
		return
	}
	id := uint32(tex)
	gl.DeleteTextures(1, &id)
}

// Close releases GL resources.
func (r *Renderer) Close() {
	r.DeleteTexture(r.white)
	r.DeleteTexture(r.font)
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	r.program.Delete()
}

func upload(img *image.RGBA, filter int32) Texture {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Rect.Dx()), int32(img.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return Texture(tex)
}
