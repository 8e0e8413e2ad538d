package app

import "github.com/Faultbox/cubefolio/pkg/math"

// clickSlop is how far, in window points, a press may travel and still
// count as a click.
const clickSlop = 6

// press tells clicks from drags.
type press struct {
	slop  float32
	down  bool
	moved bool
	start math.Vec2
}

// Down starts a press at p.
func (p *press) Down(at math.Vec2) {
	p.down, p.moved, p.start = true, false, at
}

// Move records travel; once past the slop the press is a drag for good.
func (p *press) Move(at math.Vec2) {
	if p.down && at.Sub(p.start).Length() > p.slop {
		p.moved = true
	}
}

// Up ends the press and reports whether it was a click.
func (p *press) Up(at math.Vec2) bool {
	if !p.down {
		return false
	}
	p.down = false
	return !p.moved && at.Sub(p.start).Length() <= p.slop
}

// Cancel forgets a press in progress.
func (p *press) Cancel() {
	p.down, p.moved = false, false
}
