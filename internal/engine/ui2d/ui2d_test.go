package ui2d

import (
	"testing"

	"github.com/Faultbox/cubefolio/pkg/math"
)

func TestAtlasGlyphs(t *testing.T) {
	a := NewAtlas()
	gw, gh := a.GlyphSize()
	if gw != 7 || gh != 13 {
		t.Fatalf("glyph size = %dx%d, want 7x13", gw, gh)
	}

	u0, v0, u1, v1 := a.GlyphUV('A')
	if u0 >= u1 || v0 >= v1 {
		t.Fatalf("GlyphUV('A') = %v %v %v %v, want a non-empty rect", u0, v0, u1, v1)
	}
	if u0 < 0 || v0 < 0 || u1 > 1 || v1 > 1 {
		t.Fatalf("GlyphUV('A') outside the atlas: %v %v %v %v", u0, v0, u1, v1)
	}

	q0, q1, q2, q3 := a.GlyphUV('?')
	e0, e1, e2, e3 := a.GlyphUV('é')
	if q0 != e0 || q1 != e1 || q2 != e2 || q3 != e3 {
		t.Error("runes outside ASCII should map to '?'")
	}

	// 'A' must have some ink in its cell.
	x0, y0 := int(u0*float32(a.Image.Rect.Dx())), int(v0*float32(a.Image.Rect.Dy()))
	ink := false
	for y := y0; y < y0+gh; y++ {
		for x := x0; x < x0+gw; x++ {
			if a.Image.RGBAAt(x, y).A > 0 {
				ink = true
			}
		}
	}
	if !ink {
		t.Error("glyph cell for 'A' is empty")
	}
}

func TestAtlasMeasure(t *testing.T) {
	a := NewAtlas()
	tests := []struct {
		text  string
		scale float32
		w, h  float32
	}{
		{"", 1, 0, 13},
		{"abc", 1, 21, 13},
		{"abc", 2, 42, 26},
		{"ab\nabcd", 1, 28, 26},
	}
	for _, tt := range tests {
		w, h := a.Measure(tt.text, tt.scale)
		if w != tt.w || h != tt.h {
			t.Errorf("Measure(%q, %v) = %v, %v; want %v, %v", tt.text, tt.scale, w, h, tt.w, tt.h)
		}
	}
}

func TestBatchRunsFollowCallOrder(t *testing.T) {
	var b Batch
	a := NewAtlas()

	b.Rect(0, 0, 10, 10, ColorBlack)
	b.Rect(10, 0, 10, 10, ColorWhite)
	b.Image(7, [4]math.Vec2{}, 0.5)
	b.Text(a, 3, 0, 0, "hi there", 1, ColorHUD)
	b.Rect(0, 0, 1, 1, ColorRing)

	want := []run{
		{tex: NoTexture, first: 0, count: 12},
		{tex: 7, first: 12, count: 6},
		{tex: 3, first: 18, count: 42},
		{tex: NoTexture, first: 60, count: 6},
	}
	if len(b.runs) != len(want) {
		t.Fatalf("runs = %+v, want %+v", b.runs, want)
	}
	for i := range want {
		if b.runs[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, b.runs[i], want[i])
		}
	}
	if got := len(b.vertices) / vertexStride; got != 66 {
		t.Errorf("vertex count = %d, want 66", got)
	}

	b.Reset()
	if !b.Empty() || len(b.runs) != 0 {
		t.Error("Reset should empty the batch")
	}
}

func TestBatchOutline(t *testing.T) {
	var b Batch
	b.RectOutline(0, 0, 20, 10, 2, ColorRing)
	if got := len(b.vertices) / vertexStride; got != 24 {
		t.Fatalf("outline vertex count = %d, want 24", got)
	}
	if len(b.runs) != 1 {
		t.Fatalf("outline should be one run, got %d", len(b.runs))
	}
}

func TestImageRectUpright(t *testing.T) {
	var b Batch
	b.ImageRect(1, 10, 20, 100, 50, 1)

	// First vertex carries uv (0,0), the bottom-left of a bottom-up texture.
	x, y, u, v := b.vertices[0], b.vertices[1], b.vertices[2], b.vertices[3]
	if x != 10 || y != 70 || u != 0 || v != 0 {
		t.Errorf("first vertex = (%v,%v) uv (%v,%v), want (10,70) uv (0,0)", x, y, u, v)
	}
	if a := b.vertices[7]; a != 1 {
		t.Errorf("alpha = %v, want 1", a)
	}
}

func TestColorHelpers(t *testing.T) {
	c := RGB(255, 0, 51)
	if c.R != 1 || c.G != 0 || c.A != 1 {
		t.Errorf("RGB = %+v", c)
	}
	if got := c.Fade(0.5).A; got != 0.5 {
		t.Errorf("Fade alpha = %v, want 0.5", got)
	}
	if got := c.WithAlpha(0.25).A; got != 0.25 {
		t.Errorf("WithAlpha = %v, want 0.25", got)
	}
}

func TestDiscSegments(t *testing.T) {
	var b Batch
	b.Disc(math.Vec2{X: 50, Y: 50}, 10, 12, ColorHUD)
	if got := len(b.vertices) / vertexStride; got != 12*6 {
		t.Fatalf("disc vertex count = %d, want %d", got, 12*6)
	}
	for i := 0; i < len(b.vertices); i += vertexStride {
		dx, dy := b.vertices[i]-50, b.vertices[i+1]-50
		if d := dx*dx + dy*dy; d > 100.01 {
			t.Fatalf("vertex %d outside radius: %v", i/vertexStride, d)
		}
	}

	b.Reset()
	b.Disc(math.Vec2{}, 0, 12, ColorHUD)
	if !b.Empty() {
		t.Error("zero radius disc should queue nothing")
	}
}
