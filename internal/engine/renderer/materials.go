package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/texture"
)

// MaterialSet holds one GL texture per face, indexed by box mesh slot.
// It is immutable once uploaded and freed as a whole.
type MaterialSet struct {
	textures [cube.Count]uint32
}

// UploadMaterials creates a GL texture for every face of set.
func UploadMaterials(set *texture.Set) (*MaterialSet, error) {
	m := &MaterialSet{}
	for _, f := range cube.All {
		img := set.Images[f]
		if img == nil {
			m.Dispose()
			return nil, fmt.Errorf("no image for %s", f)
		}
		flipped := texture.FlipVertical(img)

		var tex uint32
		gl.GenTextures(1, &tex)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
			int32(flipped.Rect.Dx()), int32(flipped.Rect.Dy()),
			0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&flipped.Pix[0]))
		gl.GenerateMipmap(gl.TEXTURE_2D)

		m.textures[f.Geometry().RendererIndex] = tex
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return m, nil
}

// Texture returns the GL texture for a box mesh slot.
func (m *MaterialSet) Texture(slot int) uint32 {
	return m.textures[slot]
}

// Dispose frees every texture. It is safe to call more than once.
func (m *MaterialSet) Dispose() {
	for i, tex := range m.textures {
		if tex != 0 {
			gl.DeleteTextures(1, &tex)
			m.textures[i] = 0
		}
	}
}
