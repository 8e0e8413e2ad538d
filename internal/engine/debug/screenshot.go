// Package debug captures frames to PNG files.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/cubefolio/internal/engine/texture"
)

// FileLayout is the timestamp format in screenshot names.
const FileLayout = "2006-01-02_15-04-05"

// ScreenshotCapture writes frames as "<prefix>_<timestamp>.png".
type ScreenshotCapture struct {
	outputDir string
	prefix    string
}

// NewScreenshotCapture creates a capture writing into outputDir, which is
// created on first use. An empty dir means the working directory.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{outputDir: outputDir, prefix: prefix}
}

// ReadFrame reads the current GL back buffer.
func ReadFrame(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// FromPixels converts bottom-up RGBA rows, as GL returns them, to an
// upright image.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}
	img := &image.RGBA{Pix: pixels, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	return texture.FlipVertical(img), nil
}

// CaptureFromPixels saves GL pixels taken at now and returns the file name.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int, now time.Time) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return sc.CaptureFromImage(img, now)
}

// CaptureFromImage saves img and returns the file name.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image, now time.Time) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.Filename(now)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// Filename returns the path a capture at now would use.
func (sc *ScreenshotCapture) Filename(now time.Time) string {
	name := fmt.Sprintf("%s_%s.png", sc.prefix, now.Format(FileLayout))
	if sc.outputDir != "" {
		name = filepath.Join(sc.outputDir, name)
	}
	return name
}
