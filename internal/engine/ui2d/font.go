package ui2d

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII range held by the atlas.
const (
	firstGlyph = ' '
	lastGlyph  = '~'
	atlasCols  = 16
)

// Atlas is a monospace glyph sheet rendered from the basic 7x13 bitmap font.
// Only the alpha channel carries glyph coverage.
type Atlas struct {
	Image          *image.RGBA
	glyphW, glyphH int
}

// NewAtlas renders the printable ASCII glyphs into a grid.
func NewAtlas() *Atlas {
	face := basicfont.Face7x13
	gw := face.Advance
	gh := face.Height
	count := int(lastGlyph-firstGlyph) + 1
	rows := (count + atlasCols - 1) / atlasCols

	img := image.NewRGBA(image.Rect(0, 0, atlasCols*gw, rows*gh))
	d := font.Drawer{Dst: img, Src: image.White, Face: face}
	for r := firstGlyph; r <= lastGlyph; r++ {
		i := int(r - firstGlyph)
		x, y := (i%atlasCols)*gw, (i/atlasCols)*gh
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(r))
	}
	return &Atlas{Image: img, glyphW: gw, glyphH: gh}
}

// GlyphSize returns the cell size in atlas pixels.
func (a *Atlas) GlyphSize() (int, int) {
	return a.glyphW, a.glyphH
}

// GlyphUV returns the texture rectangle of r. Unknown runes map to '?'.
func (a *Atlas) GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	i := int(r - firstGlyph)
	w, h := float32(a.Image.Rect.Dx()), float32(a.Image.Rect.Dy())
	x, y := float32((i%atlasCols)*a.glyphW), float32((i/atlasCols)*a.glyphH)
	return x / w, y / h, (x + float32(a.glyphW)) / w, (y + float32(a.glyphH)) / h
}

// Measure returns the size of text at scale. Lines split on '\n'.
func (a *Atlas) Measure(text string, scale float32) (float32, float32) {
	lines, longest, cur := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		longest = max(longest, cur)
	}
	return float32(longest*a.glyphW) * scale, float32(lines*a.glyphH) * scale
}
