// Package bridge connects the cube scene to its GL surface while a
// transition runs.
//
// Mounting shows the placeholder materials at once and starts an asynchronous
// load of the real face images. Finished loads are applied on the render
// thread by Poll as a single swap. Mounts are counted: the overview view and
// a running transition each hold one. The last Unmount cancels any pending
// load and frees the GPU materials, so the GL cube costs nothing while a page
// is shown.
package bridge

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/camera"
	"github.com/Faultbox/cubefolio/internal/engine/flatten"
	"github.com/Faultbox/cubefolio/internal/engine/scene"
	"github.com/Faultbox/cubefolio/internal/engine/texture"
	"github.com/Faultbox/cubefolio/internal/logger"
)

// Surface is the GPU side of the bridge.
type Surface interface {
	// SetMaterials replaces the face materials, freeing the previous ones.
	SetMaterials(set *texture.Set) error
	ReleaseMaterials()
	Draw(s *scene.Scene)
}

// Loader produces a full material set.
type Loader interface {
	Load(ctx context.Context) (*texture.Set, error)
}

type loadResult struct {
	generation int
	set        *texture.Set
	err        error
}

// Bridge mounts the GL cube on demand.
type Bridge struct {
	scene   *scene.Scene
	surface Surface
	loader  Loader
	log     *zap.Logger

	placeholders *texture.Set
	current      *texture.Set

	mounts     int
	cancel     context.CancelFunc
	generation int
	results    chan loadResult
	changes    <-chan struct{}

	handoff Handoff
}

// New creates an unmounted bridge.
func New(s *scene.Scene, surface Surface, loader Loader) *Bridge {
	return &Bridge{
		scene:        s,
		surface:      surface,
		loader:       loader,
		log:          logger.Named("bridge"),
		placeholders: texture.PlaceholderSet(),
		results:      make(chan loadResult, 1),
	}
}

// WatchChanges makes a mounted bridge reload whenever ch delivers.
func (b *Bridge) WatchChanges(ch <-chan struct{}) {
	b.changes = ch
}

// Mounted reports whether the GL cube is live.
func (b *Bridge) Mounted() bool {
	return b.mounts > 0
}

// Materials returns the set currently on the GPU, nil when unmounted.
func (b *Bridge) Materials() *texture.Set {
	return b.current
}

// Mount takes a reference on the GL cube and clears the previous handoff.
// The first reference uploads the placeholder set and starts loading the
// real images.
func (b *Bridge) Mount() error {
	b.handoff.Reset()
	if b.mounts > 0 {
		b.mounts++
		return nil
	}
	if err := b.surface.SetMaterials(b.placeholders); err != nil {
		return err
	}
	b.current = b.placeholders
	b.mounts = 1
	b.startLoad()
	b.log.Debug("mounted")
	return nil
}

// Unmount drops a reference. The last one cancels pending loads and frees
// the GPU materials. Cleanup never fails the caller.
func (b *Bridge) Unmount() {
	if b.mounts == 0 {
		return
	}
	b.mounts--
	if b.mounts > 0 {
		return
	}
	b.stopLoad()
	b.surface.ReleaseMaterials()
	b.current = nil
	b.log.Debug("unmounted")
}

// Poll applies a finished load and reacts to asset changes. Call once per
// frame on the render thread.
func (b *Bridge) Poll() {
	if b.mounts == 0 {
		return
	}

	select {
	case <-b.changes:
		b.log.Debug("assets changed, reloading")
		b.startLoad()
	default:
	}

	select {
	case r := <-b.results:
		b.apply(r)
	default:
	}
}

// Draw renders the cube when mounted.
func (b *Bridge) Draw() {
	if b.mounts > 0 {
		b.surface.Draw(b.scene)
	}
}

func (b *Bridge) apply(r loadResult) {
	if r.generation != b.generation {
		// Superseded by a later load.
		return
	}
	if r.err != nil {
		if !errors.Is(r.err, context.Canceled) {
			b.log.Debug("asset load failed, keeping current materials", zap.Error(r.err))
		}
		return
	}
	if err := b.surface.SetMaterials(r.set); err != nil {
		b.log.Warn("material upload failed", zap.Error(err))
		return
	}
	b.current = r.set
	b.log.Debug("materials swapped", zap.Int("loaded", r.set.Loaded()))
}

func (b *Bridge) startLoad() {
	b.stopLoad()

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.generation++
	gen := b.generation
	results := b.results

	go func() {
		set, err := b.loader.Load(ctx)
		select {
		case results <- loadResult{generation: gen, set: set, err: err}:
		case <-ctx.Done():
		}
	}()
}

func (b *Bridge) stopLoad() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	// Drop a result that arrived but was never applied.
	select {
	case <-b.results:
	default:
	}
}

// Capture records the scene as the transition's end state. Only the first
// capture after Mount is kept; later calls return it unchanged.
func (b *Bridge) Capture(face cube.Face, now time.Time) (flatten.Snapshot, bool) {
	w, h := b.scene.Viewport()
	pose := b.scene.Camera()
	_, _, forward := camera.Basis(pose)

	snap := flatten.Snapshot{
		Face:           face,
		Orientation:    b.scene.Orientation(),
		Camera:         pose,
		CameraDistance: -pose.Position.Dot(forward),
		CubeScreenSize: b.scene.CubeScreenSize(),
		Width:          w,
		Height:         h,
		TakenAt:        now,
	}
	if !b.handoff.Take(snap) {
		return b.handoff.Snapshot()
	}
	return snap, true
}

// Handoff holds the single snapshot of a transition.
type Handoff struct {
	snap  flatten.Snapshot
	taken bool
}

// Take stores snap if none is held yet and reports whether it did.
func (h *Handoff) Take(snap flatten.Snapshot) bool {
	if h.taken {
		return false
	}
	h.snap = snap
	h.taken = true
	return true
}

// Snapshot returns the held snapshot.
func (h *Handoff) Snapshot() (flatten.Snapshot, bool) {
	return h.snap, h.taken
}

// Reset forgets the held snapshot.
func (h *Handoff) Reset() {
	h.snap = flatten.Snapshot{}
	h.taken = false
}
