package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cubefolio/internal/cube"
)

// Key bindings.
const (
	keyEscape  = sdl.K_ESCAPE
	keyZoomOut = sdl.K_z
	keyUnfold  = sdl.K_u
	keyMute    = sdl.K_m
	keyCapture = sdl.K_F12
)

// faceForKey maps the number keys 1..6 to faces in cube.All order.
func faceForKey(k sdl.Keycode) (cube.Face, bool) {
	if k < sdl.K_1 || k > sdl.K_6 {
		return 0, false
	}
	return cube.All[k-sdl.K_1], true
}
