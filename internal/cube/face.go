// Package cube holds the fixed description of the portfolio cube: its six faces,
// their metadata and the geometry table every other package reads from.
package cube

import (
	"errors"
	"fmt"
	"strings"
)

// Face identifies one of the six cube faces.
type Face int

// Faces in display order.
const (
	Front Face = iota
	Music
	Building
	Community
	Thinking
	Back
)

// Count is the number of faces.
const Count = 6

// ErrUnknownFace is returned when a face identifier does not name a face.
var ErrUnknownFace = errors.New("unknown face")

// All lists every face in display order.
var All = [Count]Face{Front, Music, Building, Community, Thinking, Back}

var faceIDs = [Count]string{"front", "music", "building", "community", "thinking", "back"}

var faceLabels = [Count]string{"Resume", "Music", "Building", "Community", "Thinking Tools", "Personal"}

var faceTitles = [Count]string{"Front", "Music", "Building", "Community", "Thinking", "Back"}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= Front && f <= Back
}

// String returns the face identifier ("front", "music", ...).
func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("face(%d)", int(f))
	}
	return faceIDs[f]
}

// Route returns the page route for the face.
func (f Face) Route() string {
	return "/" + f.String()
}

// Label is the human readable name shown in overlays.
func (f Face) Label() string {
	if !f.Valid() {
		return ""
	}
	return faceLabels[f]
}

// Title is the short heading shown on the page.
func (f Face) Title() string {
	if !f.Valid() {
		return ""
	}
	return faceTitles[f]
}

// Parse resolves a face identifier. Matching ignores case and surrounding space.
func Parse(id string) (Face, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for i, name := range faceIDs {
		if name == id {
			return Face(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFace, id)
}

// MarshalText implements encoding.TextMarshaler.
func (f Face) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFace, int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Face) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
