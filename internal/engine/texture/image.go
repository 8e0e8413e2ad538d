package texture

import (
	"image"

	"golang.org/x/image/draw"
)

// ToRGBA returns img as *image.RGBA with its origin at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// FlipVertical returns a copy of img with rows reversed, the layout OpenGL
// expects for bottom-left texture origins.
func FlipVertical(img *image.RGBA) *image.RGBA {
	h := img.Rect.Dy()
	out := image.NewRGBA(img.Rect)
	rowLen := img.Rect.Dx() * 4
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		dst := out.Pix[(h-1-y)*out.Stride : (h-1-y)*out.Stride+rowLen]
		copy(dst, src)
	}
	return out
}
