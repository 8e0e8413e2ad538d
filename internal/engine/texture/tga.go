// Package texture decodes face images and builds the placeholder set.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

var errTGATruncated = errors.New("tga: data truncated")

func decodeTGAReader(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeTGA(data)
}

// DecodeTGA decodes an uncompressed (type 2) or RLE (type 10) true-color TGA.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, errTGATruncated
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}
	if imageType != tgaUncompressed && imageType != tgaRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("tga: empty image %dx%d", width, height)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	d := tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		bpp:         bpp / 8,
		topToBottom: descriptor&0x20 != 0,
	}
	if imageType == tgaUncompressed {
		if len(d.src) < width*height*d.bpp {
			return nil, errTGATruncated
		}
		for i := 0; i < width*height; i++ {
			d.put(i, d.pixel())
		}
		return d.img, nil
	}
	if err := d.rle(); err != nil {
		return nil, err
	}
	return d.img, nil
}

const (
	tgaUncompressed = 2
	tgaRLE          = 10
)

type tgaDecoder struct {
	img         *image.RGBA
	src         []byte
	pos         int
	bpp         int
	topToBottom bool
}

// pixel reads one BGR(A) pixel.
func (d *tgaDecoder) pixel() color.RGBA {
	p := d.src[d.pos : d.pos+d.bpp]
	d.pos += d.bpp
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bpp == 4 {
		c.A = p[3]
	}
	return c
}

func (d *tgaDecoder) put(index int, c color.RGBA) {
	w, h := d.img.Rect.Dx(), d.img.Rect.Dy()
	x, y := index%w, index/w
	if !d.topToBottom {
		y = h - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

func (d *tgaDecoder) rle() error {
	total := d.img.Rect.Dx() * d.img.Rect.Dy()
	for n := 0; n < total; {
		if d.pos >= len(d.src) {
			return errTGATruncated
		}
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if d.pos+d.bpp > len(d.src) {
				return errTGATruncated
			}
			c := d.pixel()
			for i := 0; i < count && n < total; i++ {
				d.put(n, c)
				n++
			}
			continue
		}
		for i := 0; i < count && n < total; i++ {
			if d.pos+d.bpp > len(d.src) {
				return errTGATruncated
			}
			d.put(n, d.pixel())
			n++
		}
	}
	return nil
}
