package texture

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/Faultbox/cubefolio/internal/cube"
)

// tgaHeader builds an 18-byte header for a width x height true-color image.
func tgaHeader(imageType byte, width, height int, bpp byte, descriptor byte) []byte {
	h := make([]byte, 18)
	h[2] = imageType
	h[12], h[13] = byte(width), byte(width>>8)
	h[14], h[15] = byte(height), byte(height>>8)
	h[16] = bpp
	h[17] = descriptor
	return h
}

func TestDecodeTGA(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	tests := []struct {
		name    string
		data    []byte
		topLeft color.RGBA
		botLeft color.RGBA
		wantErr bool
	}{
		{
			name: "uncompressed bottom-up",
			// Rows stored bottom first: blue row, then red row.
			data: append(tgaHeader(2, 2, 2, 24, 0),
				255, 0, 0, 255, 0, 0,
				0, 0, 255, 0, 0, 255),
			topLeft: red,
			botLeft: blue,
		},
		{
			name: "uncompressed top-down 32 bit",
			data: append(tgaHeader(2, 1, 2, 32, 0x20),
				0, 0, 255, 255,
				255, 0, 0, 255),
			topLeft: red,
			botLeft: blue,
		},
		{
			name: "rle",
			data: append(tgaHeader(10, 2, 2, 24, 0x20),
				0x81, 0, 0, 255, // two red pixels
				0x01, 255, 0, 0, 255, 0, 0), // two raw blue pixels
			topLeft: red,
			botLeft: blue,
		},
		{name: "short header", data: []byte{0, 0, 2}, wantErr: true},
		{name: "color mapped", data: append(func() []byte { h := tgaHeader(2, 1, 1, 24, 0); h[1] = 1; return h }(), 0, 0, 0), wantErr: true},
		{name: "grayscale", data: append(tgaHeader(3, 1, 1, 8, 0), 0), wantErr: true},
		{name: "truncated pixels", data: append(tgaHeader(2, 2, 2, 24, 0), 1, 2, 3), wantErr: true},
		{name: "truncated rle", data: append(tgaHeader(10, 2, 2, 24, 0), 0x83, 1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeTGA(tt.data)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeTGA: %v", err)
			}
			b := img.Bounds()
			if got := color.RGBAModel.Convert(img.At(0, 0)); got != tt.topLeft {
				t.Errorf("top-left = %v, want %v", got, tt.topLeft)
			}
			if got := color.RGBAModel.Convert(img.At(0, b.Max.Y-1)); got != tt.botLeft {
				t.Errorf("bottom-left = %v, want %v", got, tt.botLeft)
			}
		})
	}
}

func TestPlaceholder(t *testing.T) {
	for _, f := range cube.All {
		img := Placeholder(f)
		if img.Bounds().Dx() != PlaceholderSize || img.Bounds().Dy() != PlaceholderSize {
			t.Fatalf("%v: size %v", f, img.Bounds())
		}

		c := f.Color()
		if got := img.RGBAAt(0, 0); got != (color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}) {
			t.Errorf("%v: corner = %v, want palette %v", f, got, c)
		}

		lc := f.LabelColor()
		label := color.RGBA{R: lc.R, G: lc.G, B: lc.B, A: 255}
		found := false
		for y := PlaceholderSize/2 - 40; y < PlaceholderSize/2+40 && !found; y++ {
			for x := 0; x < PlaceholderSize; x++ {
				if img.RGBAAt(x, y) == label {
					found = true
					break
				}
			}
		}
		if !found {
			t.Errorf("%v: no label pixels near the center", f)
		}

		if again := Placeholder(f); !bytes.Equal(again.Pix, img.Pix) {
			t.Errorf("%v: placeholder not deterministic", f)
		}
	}
}

func encodePNG(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		r, g, b, a := c.RGBA()
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoaderFallsBackPerFace(t *testing.T) {
	green := color.RGBA{G: 200, A: 255}
	fsys := fstest.MapFS{
		"front.png": {Data: encodePNG(t, green)},
		"music.tga": {Data: append(tgaHeader(2, 1, 1, 24, 0), 0, 200, 0)},
		"back.png":  {Data: []byte("not a png")},
	}

	set, err := NewLoader(fsys).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, f := range []cube.Face{cube.Front, cube.Music} {
		if set.Placeholder[f] {
			t.Errorf("%v fell back to placeholder", f)
		}
		if got := set.Images[f].RGBAAt(0, 0); got != green {
			t.Errorf("%v pixel = %v", f, got)
		}
	}
	for _, f := range []cube.Face{cube.Back, cube.Building, cube.Community, cube.Thinking} {
		if !set.Placeholder[f] {
			t.Errorf("%v should be a placeholder", f)
		}
		if !bytes.Equal(set.Images[f].Pix, Placeholder(f).Pix) {
			t.Errorf("%v image is not its placeholder", f)
		}
	}
	if set.Loaded() != 2 {
		t.Errorf("Loaded() = %d, want 2", set.Loaded())
	}
}

func TestLoaderMissingAndCancelled(t *testing.T) {
	l := NewLoader(fstest.MapFS{})
	if _, err := l.LoadFace(cube.Thinking); !errors.Is(err, ErrNoImage) {
		t.Errorf("LoadFace on empty fs = %v, want ErrNoImage", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Load with cancelled context = %v", err)
	}
}

func TestIsFaceImage(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"front.png", true},
		{"music.tga", true},
		{"back.bmp", true},
		{"thinking.jpg", true},
		{"front.gif", false},
		{"logo.png", false},
		{"front", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsFaceImage(tt.name); got != tt.want {
			t.Errorf("IsFaceImage(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFlipVertical(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 1, A: 255})
	img.SetRGBA(0, 1, color.RGBA{R: 2, A: 255})

	flipped := FlipVertical(img)
	if flipped.RGBAAt(0, 0).R != 2 || flipped.RGBAAt(0, 1).R != 1 {
		t.Errorf("rows not swapped: %v", flipped.Pix)
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "front.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported for front.png")
	}
}
