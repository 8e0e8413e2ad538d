package ui2d

import "github.com/Faultbox/cubefolio/internal/cube"

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Overlay colors.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}

	// ColorBackdrop dims the page behind the unfold overlay.
	ColorBackdrop = Color{0, 0, 0, 0.25}
	// ColorHUD is the muted foreground used for the corner text.
	ColorHUD = Color{0.1, 0.1, 0.1, 0.5}
	// ColorRing outlines the current face card.
	ColorRing = Color{0.1, 0.1, 0.1, 1}
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates an opaque color from 8-bit values.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// FromFace converts a palette color.
func FromFace(c cube.RGB) Color {
	return RGB(c.R, c.G, c.B)
}

// WithAlpha returns the color with alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Fade returns the color with alpha multiplied by f.
func (c Color) Fade(f float32) Color {
	return Color{c.R, c.G, c.B, c.A * f}
}
