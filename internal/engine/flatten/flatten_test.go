package flatten

import (
	"testing"
	"time"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/camera"
	"github.com/Faultbox/cubefolio/internal/engine/scene"
	"github.com/Faultbox/cubefolio/internal/transition"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// filledScene returns a scene holding face at its zoomed-in end state.
func filledScene(face cube.Face, w, h int) (*scene.Scene, Snapshot) {
	s := scene.New(face.Canonical(), camera.Default())
	s.SetViewport(w, h)
	fill := transition.FillDistance(s.Lens.FOVRadians(), s.Aspect(), 0.9)
	pose := cube.FilledPose(face, fill)
	s.SetCamera(scene.OwnerRotation, pose)

	return s, Snapshot{
		Face:           face,
		Orientation:    s.Orientation(),
		Camera:         pose,
		CameraDistance: pose.Position.Length(),
		CubeScreenSize: s.CubeScreenSize(),
		Width:          w,
		Height:         h,
		TakenAt:        epoch,
	}
}

func TestProjectMatchesScene(t *testing.T) {
	for _, face := range cube.All {
		t.Run(face.String(), func(t *testing.T) {
			s, snap := filledScene(face, 1280, 720)
			quad := Project(snap, face, snap.Orientation, 1, 0)
			if !quad.FrontFacing {
				t.Error("filled face reported as back-facing")
			}

			mvp := s.ViewProjection().Mul(s.Model())
			slot := cube.Slots[face.Geometry().RendererIndex]
			uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
			for i, uv := range uvs {
				want, ok := mvp.ProjectToScreen(slot.Corner(uv[0], uv[1]), 1280, 720)
				if !ok {
					t.Fatalf("corner %d behind camera", i)
				}
				got := quad.Corners[i]
				if abs(got.X-want.X) > 0.5 || abs(got.Y-want.Y) > 0.5 {
					t.Errorf("corner %d = %v, GL %v", i, got, want)
				}
			}
		})
	}
}

func TestFadeStyle(t *testing.T) {
	_, snap := filledScene(cube.Music, 800, 600)
	settle := NewSettle(snap, StyleFade, 500*time.Millisecond, epoch)

	first := settle.At(epoch)
	if first.Alpha != 1 {
		t.Errorf("alpha at start = %v", first.Alpha)
	}
	mid := settle.At(epoch.Add(250 * time.Millisecond))
	if abs(mid.Alpha-0.5) > 1e-3 {
		t.Errorf("alpha halfway = %v", mid.Alpha)
	}
	if mid.Corners != first.Corners {
		t.Error("fade moved the face")
	}
	if settle.Done(epoch.Add(499*time.Millisecond)) || !settle.Done(epoch.Add(500*time.Millisecond)) {
		t.Error("done at wrong time")
	}
}

func TestZoomStyleCoversViewport(t *testing.T) {
	_, snap := filledScene(cube.Thinking, 1000, 500)
	settle := NewSettle(snap, StyleZoom, time.Second, epoch)

	end := settle.At(epoch.Add(time.Second))
	if end.Alpha != 1 {
		t.Errorf("zoom alpha = %v", end.Alpha)
	}
	minX, maxX := end.Corners[0].X, end.Corners[0].X
	minY, maxY := end.Corners[0].Y, end.Corners[0].Y
	for _, c := range end.Corners[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	if minX > 0 || maxX < 1000 || minY > 0 || maxY < 500 {
		t.Errorf("zoomed face [%v..%v]x[%v..%v] does not cover 1000x500", minX, maxX, minY, maxY)
	}

	// The rotate share keeps the scale at one.
	rot := settle.At(epoch.Add(300 * time.Millisecond))
	start := settle.At(epoch)
	if w0, w1 := start.Corners[1].X-start.Corners[0].X, rot.Corners[1].X-rot.Corners[0].X; abs(w0-w1) > 0.5 {
		t.Errorf("face width changed during rotate share: %v -> %v", w0, w1)
	}
}

func TestZoomRotatesFromSkewedSnapshot(t *testing.T) {
	_, snap := filledScene(cube.Front, 800, 800)
	snap.Orientation = cube.Music.Canonical().Slerp(cube.Front.Canonical(), 0.5)

	settle := NewSettle(snap, StyleZoom, time.Second, epoch)
	skewed := settle.At(epoch)
	square := settle.At(epoch.Add(700 * time.Millisecond))

	straight := Project(snap, cube.Front, cube.Front.Canonical(), 1, 0)
	for i := range square.Corners {
		if d := square.Corners[i].Sub(straight.Corners[i]).Length(); d > 0.5 {
			t.Errorf("corner %d after rotate share off by %v px", i, d)
		}
	}
	if skewed.Corners == straight.Corners {
		t.Error("skewed snapshot projected square")
	}
}

func TestParseStyle(t *testing.T) {
	for _, s := range []string{"fade", "zoom"} {
		if _, err := ParseStyle(s); err != nil {
			t.Errorf("ParseStyle(%q) = %v", s, err)
		}
	}
	if _, err := ParseStyle("spin"); err == nil {
		t.Error("ParseStyle(spin) should fail")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
