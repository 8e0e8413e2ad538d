package nav

import (
	gomath "math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/pkg/math"
)

// Unfold layout, in pixels.
const (
	UnfoldCardSize = 72
	UnfoldGap      = 4
	UnfoldCell     = UnfoldCardSize + UnfoldGap
)

// UnfoldPhase is the overlay's lifecycle.
type UnfoldPhase int

// Unfold phases.
const (
	UnfoldClosed UnfoldPhase = iota
	UnfoldCube
	UnfoldOpen
	UnfoldClosing
)

func (p UnfoldPhase) String() string {
	switch p {
	case UnfoldCube:
		return "cube"
	case UnfoldOpen:
		return "open"
	case UnfoldClosing:
		return "closing"
	default:
		return "closed"
	}
}

// UnfoldTiming holds the overlay delays.
type UnfoldTiming struct {
	OpenDelay   time.Duration
	CloseDelay  time.Duration
	SwitchDelay time.Duration
}

// DefaultUnfoldTiming returns 900/500/300 ms.
func DefaultUnfoldTiming() UnfoldTiming {
	return UnfoldTiming{
		OpenDelay:   900 * time.Millisecond,
		CloseDelay:  500 * time.Millisecond,
		SwitchDelay: 300 * time.Millisecond,
	}
}

// hinge describes how a card folds away from the T layout.
type hinge struct {
	col, row int
	// axis is the screen direction the card extends from its hinge: +1/-1 in x
	// or y. Zero for the front card, which never folds.
	dx, dy int
	// parent folds first and carries this card with it.
	parent  cube.Face
	nested  bool
	stagger time.Duration
}

// layout places the faces on the cross:
//
//	          [thinking]
//	[music]   [front]   [community] [back]
//	          [building]
var layout = [cube.Count]hinge{
	cube.Front:     {col: 1, row: 1},
	cube.Thinking:  {col: 1, row: 0, dy: -1, stagger: 150 * time.Millisecond},
	cube.Building:  {col: 1, row: 2, dy: 1, stagger: 150 * time.Millisecond},
	cube.Music:     {col: 0, row: 1, dx: -1, stagger: 250 * time.Millisecond},
	cube.Community: {col: 2, row: 1, dx: 1, stagger: 250 * time.Millisecond},
	cube.Back:      {col: 3, row: 1, dx: 1, parent: cube.Community, nested: true, stagger: 380 * time.Millisecond},
}

// Card is one face card of the overlay in screen pixels.
type Card struct {
	Face cube.Face
	// Corners in order top-left, top-right, bottom-right, bottom-left.
	Corners [4]math.Vec2
	Current bool
}

// Contains reports whether p lies inside the card's bounding box.
func (c Card) Contains(p math.Vec2) bool {
	minX, maxX := c.Corners[0].X, c.Corners[0].X
	minY, maxY := c.Corners[0].Y, c.Corners[0].Y
	for _, v := range c.Corners[1:] {
		minX, maxX = min(minX, v.X), max(maxX, v.X)
		minY, maxY = min(minY, v.Y), max(maxY, v.Y)
	}
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// Unfold is the T-shaped face overview. It opens from a folded cube into the
// flat net, and closes by fading without re-folding.
type Unfold struct {
	timing  UnfoldTiming
	phase   UnfoldPhase
	current cube.Face
	hasCur  bool

	openAt    time.Time
	closedAt  time.Time
	switchAt  time.Time
	switchTo  cube.Face
	hasSwitch bool

	lastUpdate time.Time
	// fold is 1 when a card is folded into the cube, 0 when flat.
	fold     [cube.Count]float64
	foldVel  [cube.Count]float64
	openedAt time.Time
}

// NewUnfold creates a closed overlay.
func NewUnfold(timing UnfoldTiming) *Unfold {
	return &Unfold{timing: timing}
}

// Phase returns the overlay phase.
func (u *Unfold) Phase() UnfoldPhase {
	return u.phase
}

// Visible reports whether the overlay should be drawn.
func (u *Unfold) Visible() bool {
	return u.phase != UnfoldClosed
}

// Open shows the overlay folded as a cube; it opens after the open delay.
// current is the face on screen, if any.
func (u *Unfold) Open(current cube.Face, hasCurrent bool, now time.Time) {
	u.phase = UnfoldCube
	u.current, u.hasCur = current, hasCurrent
	u.openAt = now.Add(u.timing.OpenDelay)
	u.hasSwitch = false
	u.lastUpdate = now
	for i := range u.fold {
		u.fold[i], u.foldVel[i] = 1, 0
	}
	u.fold[cube.Front] = 0
}

// Close starts the closing fade.
func (u *Unfold) Close(now time.Time) {
	if u.phase == UnfoldClosed || u.phase == UnfoldClosing {
		return
	}
	u.phase = UnfoldClosing
	u.closedAt = now.Add(u.timing.CloseDelay)
}

// Click handles a click on a card. Clicking the current face only closes;
// any other face closes and schedules a switch after the switch delay.
func (u *Unfold) Click(face cube.Face, now time.Time) {
	if u.phase == UnfoldClosed || u.phase == UnfoldClosing {
		return
	}
	u.Close(now)
	if u.hasCur && face == u.current {
		return
	}
	u.switchTo = face
	u.switchAt = now.Add(u.timing.SwitchDelay)
	u.hasSwitch = true
}

// Cancel closes the overlay at once and drops every pending countdown.
func (u *Unfold) Cancel() {
	u.phase = UnfoldClosed
	u.hasSwitch = false
}

// Update advances the overlay to now. It returns a face to switch to when a
// scheduled switch comes due; this happens at most once per click.
func (u *Unfold) Update(now time.Time) (cube.Face, bool) {
	dt := now.Sub(u.lastUpdate)
	u.lastUpdate = now

	if u.phase == UnfoldCube && !now.Before(u.openAt) {
		u.phase = UnfoldOpen
		u.openedAt = u.openAt
	}
	if u.phase == UnfoldOpen {
		u.stepSprings(now, dt)
	}
	if u.phase == UnfoldClosing && !now.Before(u.closedAt) {
		u.phase = UnfoldClosed
	}

	if u.hasSwitch && !now.Before(u.switchAt) {
		u.hasSwitch = false
		return u.switchTo, true
	}
	return 0, false
}

func (u *Unfold) stepSprings(now time.Time, dt time.Duration) {
	if dt <= 0 {
		return
	}
	spring := harmonica.NewSpring(dt.Seconds(), 9, 0.85)
	for _, f := range cube.All {
		if f == cube.Front || now.Sub(u.openedAt) < layout[f].stagger {
			continue
		}
		u.fold[f], u.foldVel[f] = spring.Update(u.fold[f], u.foldVel[f], 0)
	}
}

// Alpha is the overlay opacity: 1 while open, fading to 0 while closing.
func (u *Unfold) Alpha(now time.Time) float32 {
	switch u.phase {
	case UnfoldClosed:
		return 0
	case UnfoldClosing:
		if u.timing.CloseDelay <= 0 {
			return 0
		}
		left := float32(u.closedAt.Sub(now)) / float32(u.timing.CloseDelay)
		return max(0, min(1, left))
	default:
		return 1
	}
}

// Cards lays out the net centered on center. Folded cards are foreshortened
// along the direction they hinge away from their neighbor.
func (u *Unfold) Cards(center math.Vec2) []Card {
	origin := math.Vec2{X: center.X - 2*UnfoldCell, Y: center.Y - 1.5*UnfoldCell}
	cards := make([]Card, 0, cube.Count)

	for _, f := range cube.All {
		h := layout[f]
		var x0, y0, x1, y1 float32

		switch {
		case h.dx == 0 && h.dy == 0:
			x0 = origin.X + float32(h.col*UnfoldCell)
			y0 = origin.Y + float32(h.row*UnfoldCell)
			x1, y1 = x0+UnfoldCardSize, y0+UnfoldCardSize

		case h.dy != 0:
			x0 = origin.X + float32(h.col*UnfoldCell)
			x1 = x0 + UnfoldCardSize
			span := float32(UnfoldCardSize * gomath.Cos(u.fold[f]*gomath.Pi/2))
			if h.dy < 0 {
				// Hinged on the top edge of front.
				y1 = origin.Y + float32(UnfoldCell) - UnfoldGap
				y0 = y1 - span
			} else {
				y0 = origin.Y + float32(h.row*UnfoldCell)
				y1 = y0 + span
			}

		default:
			y0 = origin.Y + float32(h.row*UnfoldCell)
			y1 = y0 + UnfoldCardSize
			hingeX, total := u.hingeX(f, origin)
			span := float32(UnfoldCardSize * gomath.Cos(total))
			if span < 0 {
				// Turned past edge-on: the card faces away.
				continue
			}
			if h.dx < 0 {
				x1 = hingeX
				x0 = x1 - span
			} else {
				x0 = hingeX
				x1 = x0 + span
			}
		}

		cards = append(cards, Card{
			Face: f,
			Corners: [4]math.Vec2{
				{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
			},
			Current: u.hasCur && f == u.current,
		})
	}
	return cards
}

// hingeX returns the hinge x of a horizontally folding card and its total
// rotation, composing the parent's fold for nested cards.
func (u *Unfold) hingeX(f cube.Face, origin math.Vec2) (float32, float64) {
	h := layout[f]
	angle := u.fold[f] * gomath.Pi / 2
	if h.dx < 0 {
		return origin.X + float32(UnfoldCardSize), angle
	}
	if !h.nested {
		return origin.X + float32(2*UnfoldCell), angle
	}
	parentX, parentAngle := u.hingeX(h.parent, origin)
	return parentX + float32(UnfoldCell*gomath.Cos(parentAngle)), parentAngle + angle
}

// FaceAt returns the card under p, if any.
func (u *Unfold) FaceAt(center, p math.Vec2) (cube.Face, bool) {
	if u.phase != UnfoldOpen {
		return 0, false
	}
	for _, c := range u.Cards(center) {
		if c.Contains(p) {
			return c.Face, true
		}
	}
	return 0, false
}
