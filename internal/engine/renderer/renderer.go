// Package renderer draws the textured, lit cube with OpenGL.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/cubefolio/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	VSync  bool
}

// ClearColor is the page background behind the cube.
var ClearColor = [3]float32{0.96, 0.96, 0.94}

// Renderer owns the GL frame state.
type Renderer struct {
	config Config
}

// New initializes OpenGL. It must be called after the GL context is current.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return &Renderer{config: cfg}, nil
}

// Resize updates the GL viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
