package ui2d

import (
	gomath "math"

	"github.com/Faultbox/cubefolio/pkg/math"
)

// vertexStride is x, y, u, v, r, g, b, a.
const vertexStride = 8

// Texture names a GL texture. NoTexture draws with the renderer's white pixel.
type Texture uint32

// NoTexture selects flat color.
const NoTexture Texture = 0

// run is a span of vertices drawn with one texture.
type run struct {
	tex   Texture
	first int32
	count int32
}

// Batch collects overlay geometry for one frame in screen pixels, origin
// top-left. Draw order is call order; consecutive draws with the same
// texture share one draw call.
type Batch struct {
	vertices []float32
	runs     []run
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.vertices = b.vertices[:0]
	b.runs = b.runs[:0]
}

// Empty reports whether nothing was queued.
func (b *Batch) Empty() bool {
	return len(b.vertices) == 0
}

// Rect queues a filled rectangle.
func (b *Batch) Rect(x, y, w, h float32, c Color) {
	b.Quad([4]math.Vec2{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}, c)
}

// RectOutline queues a rectangle border of the given thickness.
func (b *Batch) RectOutline(x, y, w, h, thickness float32, c Color) {
	b.Rect(x, y, w, thickness, c)
	b.Rect(x, y+h-thickness, w, thickness, c)
	b.Rect(x, y+thickness, thickness, h-2*thickness, c)
	b.Rect(x+w-thickness, y+thickness, thickness, h-2*thickness, c)
}

// Quad queues a filled quad with corners in drawing order.
func (b *Batch) Quad(p [4]math.Vec2, c Color) {
	b.quad(NoTexture, p, [4]math.Vec2{}, c)
}

// Image queues a textured quad. Corners pair with texture coordinates
// (0,0), (1,0), (1,1), (0,1), v growing upward as in bottom-up uploads.
func (b *Batch) Image(tex Texture, p [4]math.Vec2, alpha float32) {
	uv := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	b.quad(tex, p, uv, ColorWhite.WithAlpha(alpha))
}

// Text queues text with its top-left corner at (x, y). tex is the uploaded
// atlas image.
func (b *Batch) Text(atlas *Atlas, tex Texture, x, y float32, text string, scale float32, c Color) {
	gw, gh := atlas.GlyphSize()
	cw, ch := float32(gw)*scale, float32(gh)*scale

	cx := x
	for _, r := range text {
		if r == '\n' {
			cx = x
			y += ch
			continue
		}
		if r != ' ' {
			u0, v0, u1, v1 := atlas.GlyphUV(r)
			p := [4]math.Vec2{{X: cx, Y: y}, {X: cx + cw, Y: y}, {X: cx + cw, Y: y + ch}, {X: cx, Y: y + ch}}
			uv := [4]math.Vec2{{X: u0, Y: v0}, {X: u1, Y: v0}, {X: u1, Y: v1}, {X: u0, Y: v1}}
			b.quad(tex, p, uv, c)
		}
		cx += cw
	}
}

func (b *Batch) quad(tex Texture, p, uv [4]math.Vec2, c Color) {
	first := int32(len(b.vertices) / vertexStride)
	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		b.vertices = append(b.vertices, p[i].X, p[i].Y, uv[i].X, uv[i].Y, c.R, c.G, c.B, c.A)
	}
	if n := len(b.runs); n > 0 && b.runs[n-1].tex == tex {
		b.runs[n-1].count += 6
		return
	}
	b.runs = append(b.runs, run{tex: tex, first: first, count: 6})
}

// ImageRect queues an upright image filling the rectangle.
func (b *Batch) ImageRect(tex Texture, x, y, w, h, alpha float32) {
	b.Image(tex, [4]math.Vec2{{X: x, Y: y + h}, {X: x + w, Y: y + h}, {X: x + w, Y: y}, {X: x, Y: y}}, alpha)
}

// Disc queues a filled circle as a fan of segments.
func (b *Batch) Disc(center math.Vec2, radius float32, segments int, c Color) {
	if segments < 3 || radius <= 0 {
		return
	}
	step := 2 * gomath.Pi / float64(segments)
	prev := math.Vec2{X: center.X + radius, Y: center.Y}
	for i := 1; i <= segments; i++ {
		a := step * float64(i)
		next := math.Vec2{
			X: center.X + radius*float32(gomath.Cos(a)),
			Y: center.Y + radius*float32(gomath.Sin(a)),
		}
		// Degenerate quad: the last corner repeats the center.
		b.Quad([4]math.Vec2{center, prev, next, center}, c)
		prev = next
	}
}
