package app

import (
	"fmt"
	"time"

	"github.com/Faultbox/cubefolio/internal/engine/ui2d"
	"github.com/Faultbox/cubefolio/internal/visited"
	"github.com/Faultbox/cubefolio/pkg/math"
)

// textScale is the integer glyph scale for a dpi factor.
func textScale(dpi float32) float32 {
	return float32(max(1, int(dpi+0.5)))
}

// drawSettle draws the flattened face that finishes a transition.
func (a *App) drawSettle(now time.Time) {
	s := a.nav.Settle()
	if s == nil {
		return
	}
	q := s.At(now)
	if !q.FrontFacing || q.Alpha <= 0 {
		return
	}
	a.ui.DrawImage(a.faces.Get(q.Face), q.Corners, q.Alpha)
}

// drawUnfold draws the face net over a dimmed backdrop.
func (a *App) drawUnfold(now time.Time) {
	u := a.nav.Unfold()
	if !u.Visible() {
		return
	}
	alpha := u.Alpha(now)
	w, h := a.ui.Size()
	a.ui.DrawRect(0, 0, float32(w), float32(h), ui2d.ColorBackdrop.Fade(alpha))

	for _, c := range u.Cards(a.unfoldCenter()) {
		var p [4]math.Vec2
		for i, v := range c.Corners {
			p[i] = v.Scale(a.dpi)
		}
		// Cards run top-left clockwise; images want bottom-left first.
		a.ui.DrawImage(a.faces.Get(c.Face), [4]math.Vec2{p[3], p[2], p[1], p[0]}, alpha)
		if c.Current {
			a.ui.DrawRectOutline(p[0].X, p[0].Y, p[2].X-p[0].X, p[2].Y-p[0].Y, 2*a.dpi, ui2d.ColorRing.Fade(alpha))
		}
	}
}

// drawHUD draws the timestamp and visit counter in the bottom-left corner
// and mirrors the counter into the window title.
func (a *App) drawHUD(now time.Time) {
	stamp, counter := visited.HUD(a.visited, now)

	scale := textScale(a.dpi)
	_, h := a.ui.Size()
	margin := 16 * a.dpi
	_, lh := a.ui.MeasureText(counter, scale)
	y := float32(h) - margin - 2*lh
	a.ui.DrawText(margin, y, stamp, scale, ui2d.ColorHUD)
	a.ui.DrawText(margin, y+lh, counter, scale, ui2d.ColorHUD)

	if title := windowTitle(counter); title != a.title {
		a.title = title
		a.win.SetTitle(title)
	}
}

func windowTitle(counter string) string {
	return fmt.Sprintf("%s - %s", Title, counter)
}
