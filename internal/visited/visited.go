// Package visited remembers which faces the user has opened.
package visited

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/logger"
)

// revealRadii is the flashlight radius in pixels by number of visited faces,
// not counting the back face.
var revealRadii = [...]float32{50, 90, 140, 200, 280, 400}

type file struct {
	Visited []cube.Face `yaml:"visited"`
}

// Store is a visited set persisted as YAML. A missing or unreadable file
// starts an empty set; the file is rewritten on every new visit.
type Store struct {
	path  string
	faces []cube.Face
	log   *zap.Logger
}

// Open loads the store at path.
func Open(path string) *Store {
	s := &Store{path: path, log: logger.Named("visited")}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s
	}
	if err != nil {
		s.log.Warn("cannot read visited faces", zap.String("path", path), zap.Error(err))
		return s
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		s.log.Warn("ignoring corrupt visited file", zap.String("path", path), zap.Error(err))
		return s
	}
	for _, face := range f.Visited {
		if !s.Visited(face) {
			s.faces = append(s.faces, face)
		}
	}
	return s
}

// MarkVisited adds face and saves the store if it is new.
func (s *Store) MarkVisited(face cube.Face) error {
	if !face.Valid() {
		return fmt.Errorf("mark visited: %w", cube.ErrUnknownFace)
	}
	if s.Visited(face) {
		return nil
	}
	s.faces = append(s.faces, face)
	return s.save()
}

// Visited reports whether face has been opened.
func (s *Store) Visited(face cube.Face) bool {
	for _, f := range s.faces {
		if f == face {
			return true
		}
	}
	return false
}

// Faces returns the visited faces in visit order.
func (s *Store) Faces() []cube.Face {
	return append([]cube.Face(nil), s.faces...)
}

// Count returns the number of distinct visited faces.
func (s *Store) Count() int {
	return len(s.faces)
}

// RevealRadius returns the flashlight radius for the current visits.
func (s *Store) RevealRadius() float32 {
	n := 0
	for _, f := range s.faces {
		if f != cube.Back {
			n++
		}
	}
	return revealRadii[min(n, len(revealRadii)-1)]
}

func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	data, err := yaml.Marshal(file{Visited: s.faces})
	if err != nil {
		return fmt.Errorf("encode visited: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create visited dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write visited: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace visited: %w", err)
	}
	return nil
}

// TimestampLayout formats the HUD clock as MM/DD/YYYY HH:MM.
const TimestampLayout = "01/02/2006 15:04"

// HUD returns the two overlay lines: the clock and the visited counter.
func HUD(s *Store, now time.Time) (timestamp, counter string) {
	return now.Format(TimestampLayout), fmt.Sprintf("%d/%d FACES VISITED", s.Count(), cube.Count)
}
