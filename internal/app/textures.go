package app

import (
	"image"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/texture"
	"github.com/Faultbox/cubefolio/internal/engine/ui2d"
)

// uploader creates and frees overlay textures.
type uploader interface {
	UploadImage(img *image.RGBA) ui2d.Texture
	DeleteTexture(tex ui2d.Texture)
}

// faceTextures mirrors the newest face image set as overlay textures for
// pages, the settle and the unfold cards. Faces upload on first use.
type faceTextures struct {
	up  uploader
	set *texture.Set
	tex [cube.Count]ui2d.Texture
}

func newFaceTextures(up uploader) *faceTextures {
	return &faceTextures{up: up}
}

// Use switches to set. A nil set keeps the current one, so pages keep the
// last real images after the cube unmounts.
func (f *faceTextures) Use(set *texture.Set) {
	if set == nil || set == f.set {
		return
	}
	f.Release()
	f.set = set
}

// Get returns the texture for face, uploading it if needed.
func (f *faceTextures) Get(face cube.Face) ui2d.Texture {
	if f.tex[face] == ui2d.NoTexture && f.set != nil && f.set.Images[face] != nil {
		f.tex[face] = f.up.UploadImage(f.set.Images[face])
	}
	return f.tex[face]
}

// Release frees every uploaded texture.
func (f *faceTextures) Release() {
	for i, tex := range f.tex {
		if tex != ui2d.NoTexture {
			f.up.DeleteTexture(tex)
			f.tex[i] = ui2d.NoTexture
		}
	}
}
