package texture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"path"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/logger"
)

// ErrNoImage is returned when no file exists for a face.
var ErrNoImage = errors.New("no image for face")

type decodeFunc func(io.Reader) (image.Image, error)

// decoders lists the supported extensions in lookup order.
var decoders = []struct {
	ext    string
	decode decodeFunc
}{
	{".png", png.Decode},
	{".jpg", jpeg.Decode},
	{".jpeg", jpeg.Decode},
	{".tga", decodeTGAReader},
	{".bmp", bmp.Decode},
}

// Set holds one image per face. A set is never modified after it is built.
type Set struct {
	Images [cube.Count]*image.RGBA
	// Placeholder marks faces that fell back to the generated image.
	Placeholder [cube.Count]bool
}

// PlaceholderSet returns a set made only of placeholders.
func PlaceholderSet() *Set {
	s := &Set{}
	for _, f := range cube.All {
		s.Images[f] = Placeholder(f)
		s.Placeholder[f] = true
	}
	return s
}

// Loaded reports how many faces came from files.
func (s *Set) Loaded() int {
	n := 0
	for _, p := range s.Placeholder {
		if !p {
			n++
		}
	}
	return n
}

// Loader reads face images from a file system, falling back per face.
type Loader struct {
	fsys fs.FS
	log  *zap.Logger
}

// NewLoader creates a loader reading <face id>.<ext> files from the root of fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, log: logger.Named("texture")}
}

// Load builds a full set. A face whose image is missing or fails to decode
// gets its placeholder; only cancellation of ctx returns an error.
func (l *Loader) Load(ctx context.Context) (*Set, error) {
	s := &Set{}
	for _, f := range cube.All {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := l.LoadFace(f)
		if err != nil {
			l.log.Debug("using placeholder", zap.Stringer("face", f), zap.Error(err))
			img = Placeholder(f)
			s.Placeholder[f] = true
		}
		s.Images[f] = img
	}
	return s, nil
}

// LoadFace decodes the first existing image for face.
func (l *Loader) LoadFace(face cube.Face) (*image.RGBA, error) {
	for _, d := range decoders {
		name := face.String() + d.ext
		file, err := l.fsys.Open(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		img, err := d.decode(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return ToRGBA(img), nil
	}
	return nil, fmt.Errorf("%s: %w", face, ErrNoImage)
}

// IsFaceImage reports whether a file name would be read for some face.
func IsFaceImage(name string) bool {
	base := path.Base(name)
	ext := path.Ext(base)
	if _, err := cube.Parse(base[:len(base)-len(ext)]); err != nil {
		return false
	}
	for _, d := range decoders {
		if d.ext == ext {
			return true
		}
	}
	return false
}
