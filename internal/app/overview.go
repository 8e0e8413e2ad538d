package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/audio"
	"github.com/Faultbox/cubefolio/internal/engine/input"
	"github.com/Faultbox/cubefolio/internal/engine/picking"
	"github.com/Faultbox/cubefolio/internal/engine/scene"
	"github.com/Faultbox/cubefolio/internal/engine/ui2d"
	"github.com/Faultbox/cubefolio/internal/selection"
	"github.com/Faultbox/cubefolio/pkg/math"
)

// overviewView is the free-spinning cube at "/". A double click on a face
// zooms into it.
type overviewView struct {
	app     *App
	from    cube.Face
	hasFrom bool

	press   press
	mounted bool
}

func (v *overviewView) Enter(time.Time) error {
	a := v.app
	a.nav.SetPage(0, false)
	a.arbiter.Reset()
	v.press = press{slop: clickSlop * a.dpi}

	a.scene.SetOrientation(scene.OwnerRotation, cube.InitialOrientation(v.from, v.hasFrom))
	a.scene.SetCamera(scene.OwnerRotation, cube.DefaultPose())
	a.rotation.SetEnabled(true)

	if err := a.bridge.Mount(); err != nil {
		// The overview stays usable as a blank page; page routes still work.
		a.log.Warn("cannot mount cube for overview", zap.Error(err))
		return nil
	}
	v.mounted = true
	return nil
}

func (v *overviewView) Exit() {
	a := v.app
	a.rotation.SetEnabled(false)
	a.arbiter.Reset()
	if v.mounted {
		a.bridge.Unmount()
		v.mounted = false
	}
}

func (v *overviewView) Update(_ time.Time, dt time.Duration) {
	if v.app.nav.IsTransitioning() {
		return
	}
	v.app.rotation.Tick(dt)
}

func (v *overviewView) Render(time.Time) {
	a := v.app
	if a.pointerSeen && !a.nav.IsTransitioning() {
		a.ui.DrawDisc(a.pointer, a.visited.RevealRadius()*a.dpi, ui2d.ColorHUD.Fade(0.15))
	}
	a.bridge.Draw()
}

func (v *overviewView) HandleEvent(ev input.Event, now time.Time) {
	a := v.app
	if a.nav.IsTransitioning() {
		return
	}

	switch ev.Type {
	case input.EventPointerDown:
		v.press.Down(ev.Pointer)
		a.rotation.DragStart(ev.Pointer)
	case input.EventPointerMove:
		v.press.Move(ev.Pointer)
		a.rotation.DragMove(ev.Pointer)
	case input.EventPointerUp:
		a.rotation.DragEnd()
		if v.press.Up(ev.Pointer) {
			v.click(ev.Pointer, now)
		}
	case input.EventKeyDown:
		switch ev.Key {
		case keyUnfold:
			a.nav.OpenUnfold()
		case keyEscape:
			a.Quit()
		default:
			if face, ok := faceForKey(ev.Key); ok {
				v.enter(face)
			}
		}
	}
}

func (v *overviewView) click(p math.Vec2, now time.Time) {
	a := v.app
	face, ok := v.pick(p)
	if !ok {
		a.arbiter.Reset()
		return
	}
	switch a.arbiter.Click(face, now) {
	case selection.Armed:
		a.playCue(audio.CueArm)
	case selection.Committed:
		a.playCue(audio.CueCommit)
		v.enter(face)
	}
}

func (v *overviewView) enter(face cube.Face) {
	if v.app.nav.AnimateToFace(face) {
		v.press.Cancel()
	}
}

// pick returns the face under p, in drawable pixels.
func (v *overviewView) pick(p math.Vec2) (cube.Face, bool) {
	s := v.app.scene
	w, h := s.Viewport()
	ray := picking.ScreenToRay(p.X, p.Y, float32(w), float32(h), s.ViewProjection().Inverse())
	hit, ok := picking.PickBox(ray, s.Orientation(), cube.HalfExtent)
	if !ok {
		return 0, false
	}
	return selection.ResolveFace(hit)
}
