// Package selection turns pointer hits into committed navigation intents.
package selection

import (
	"time"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/picking"
)

// ResolveFace maps a mesh hit to the face it belongs to.
func ResolveFace(hit picking.Hit) (cube.Face, bool) {
	if hit.Triangle < 0 {
		return 0, false
	}
	return cube.FaceAtRendererIndex(hit.Triangle / cube.TrianglesPerFace)
}

// Result is the outcome of a click.
type Result int

// Click outcomes.
const (
	// Armed means the click was remembered; a second click may commit it.
	Armed Result = iota
	// Committed means the click completed a double click on the same face.
	Committed
)

func (r Result) String() string {
	if r == Committed {
		return "committed"
	}
	return "armed"
}

// Arbiter implements the double-click commit policy: a second click on the
// same face strictly within Window of the first commits.
type Arbiter struct {
	Window time.Duration

	armed   bool
	face    cube.Face
	clickAt time.Time
}

// NewArbiter creates an arbiter with the given double-click window.
func NewArbiter(window time.Duration) *Arbiter {
	return &Arbiter{Window: window}
}

// Click records a click on face at now. A commit clears the memory; anything
// else re-arms on the clicked face.
func (a *Arbiter) Click(face cube.Face, now time.Time) Result {
	if a.armed && a.face == face && now.Sub(a.clickAt) < a.Window {
		a.Reset()
		return Committed
	}
	a.armed = true
	a.face = face
	a.clickAt = now
	return Armed
}

// Armed returns the remembered face, if any.
func (a *Arbiter) Armed() (cube.Face, bool) {
	return a.face, a.armed
}

// Reset forgets any armed click.
func (a *Arbiter) Reset() {
	a.armed = false
	a.face = 0
	a.clickAt = time.Time{}
}
