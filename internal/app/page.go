package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/input"
	"github.com/Faultbox/cubefolio/internal/engine/ui2d"
)

// pageView stands in for a face's content page: the face image on its
// palette color, with the face title underneath.
type pageView struct {
	app  *App
	face cube.Face
}

func (v *pageView) Enter(time.Time) error {
	a := v.app
	a.nav.SetPage(v.face, true)
	a.rotation.SetEnabled(false)
	if err := a.visited.MarkVisited(v.face); err != nil {
		a.log.Warn("cannot save visited faces", zap.Stringer("face", v.face), zap.Error(err))
	}
	return nil
}

func (v *pageView) Exit() {}

func (v *pageView) Update(time.Time, time.Duration) {}

func (v *pageView) Render(time.Time) {
	a := v.app
	if a.nav.IsTransitioning() {
		a.bridge.Draw()
		return
	}

	w, h := a.ui.Size()
	fw, fh := float32(w), float32(h)
	a.ui.DrawRect(0, 0, fw, fh, ui2d.FromFace(v.face.Color()))

	side := min(fw, fh) * 0.6
	x, y := (fw-side)/2, (fh-side)/2-fh*0.05
	a.ui.DrawImageRect(a.faces.Get(v.face), x, y, side, side, 1)

	scale := textScale(a.dpi) * 2
	title := v.face.Title()
	tw, _ := a.ui.MeasureText(title, scale)
	a.ui.DrawText((fw-tw)/2, y+side+16*a.dpi, title, scale, ui2d.FromFace(v.face.LabelColor()))
}

func (v *pageView) HandleEvent(ev input.Event, _ time.Time) {
	a := v.app
	if ev.Type != input.EventKeyDown || a.nav.IsTransitioning() {
		return
	}
	switch ev.Key {
	case keyEscape, keyZoomOut:
		a.nav.ZoomOut()
	case keyUnfold:
		a.nav.OpenUnfold()
	default:
		if face, ok := faceForKey(ev.Key); ok && face != v.face {
			a.nav.SwitchToFace(face)
		}
	}
}
