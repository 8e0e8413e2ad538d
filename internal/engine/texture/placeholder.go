package texture

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/cubefolio/internal/cube"
)

// PlaceholderSize is the edge length of generated face images.
const PlaceholderSize = 512

// labelScale enlarges the bitmap font so the label reads at cube size.
const labelScale = 5

// Placeholder draws the fallback image for face: the palette color with the
// upper-case face id centered in the label color. The result depends only on face.
func Placeholder(face cube.Face) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderSize, PlaceholderSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(rgba(face.Color())), image.Point{}, draw.Src)

	label := renderLabel(strings.ToUpper(face.String()), rgba(face.LabelColor()))
	w, h := label.Bounds().Dx()*labelScale, label.Bounds().Dy()*labelScale
	x, y := (PlaceholderSize-w)/2, (PlaceholderSize-h)/2
	draw.NearestNeighbor.Scale(img, image.Rect(x, y, x+w, y+h), label, label.Bounds(), draw.Over, nil)
	return img
}

// renderLabel draws text at the font's native size on a transparent image.
func renderLabel(text string, c color.RGBA) *image.RGBA {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	m := face.Metrics()
	img := image.NewRGBA(image.Rect(0, 0, width, (m.Ascent + m.Descent).Ceil()))

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(text)
	return img
}

func rgba(c cube.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
