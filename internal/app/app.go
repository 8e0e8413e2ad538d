// Package app runs the cubefolio window: the frame loop, the overview and
// page views, and the route changes between them.
package app

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubefolio/internal/bridge"
	"github.com/Faultbox/cubefolio/internal/config"
	"github.com/Faultbox/cubefolio/internal/cube"
	"github.com/Faultbox/cubefolio/internal/engine/audio"
	"github.com/Faultbox/cubefolio/internal/engine/camera"
	"github.com/Faultbox/cubefolio/internal/engine/debug"
	"github.com/Faultbox/cubefolio/internal/engine/flatten"
	"github.com/Faultbox/cubefolio/internal/engine/input"
	"github.com/Faultbox/cubefolio/internal/engine/renderer"
	"github.com/Faultbox/cubefolio/internal/engine/rotation"
	"github.com/Faultbox/cubefolio/internal/engine/scene"
	"github.com/Faultbox/cubefolio/internal/engine/texture"
	"github.com/Faultbox/cubefolio/internal/engine/ui2d"
	"github.com/Faultbox/cubefolio/internal/engine/window"
	"github.com/Faultbox/cubefolio/internal/logger"
	"github.com/Faultbox/cubefolio/internal/nav"
	"github.com/Faultbox/cubefolio/internal/route"
	"github.com/Faultbox/cubefolio/internal/selection"
	"github.com/Faultbox/cubefolio/internal/transition"
	"github.com/Faultbox/cubefolio/internal/visited"
	"github.com/Faultbox/cubefolio/pkg/math"
)

// Title is the window title prefix.
const Title = "cubefolio"

// App is the running portfolio.
type App struct {
	cfg *config.Config
	log *zap.Logger

	win   *window.Window
	gfx   *renderer.Renderer
	cube  *renderer.Cube
	ui    *ui2d.Renderer
	input *input.Input

	scene    *scene.Scene
	rotation *rotation.Model
	choreo   *transition.Choreographer
	bridge   *bridge.Bridge
	nav      *nav.Navigator
	arbiter  *selection.Arbiter
	visited  *visited.Store
	audio    *audio.Player
	watcher  *texture.Watcher
	faces    *faceTextures
	shots    *debug.ScreenshotCapture

	views   viewManager
	running bool

	// Frame time; intents issued during a frame share it.
	now time.Time
	// Drawable pixels per window point.
	dpi float32

	pointer     math.Vec2
	pointerSeen bool
	title       string
	captureNext bool
}

// New opens the window and wires every subsystem. It must run on the main
// OS thread.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
		now: time.Now(),
		dpi: 1,
	}

	var err error
	a.win, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := a.win.DrawableSize()
	ww, wh := a.win.Size()
	if ww > 0 {
		a.dpi = float32(dw) / float32(ww)
	}

	// GL objects need the context the window just made current.
	a.gfx, err = renderer.New(renderer.Config{Width: dw, Height: dh, VSync: cfg.Graphics.VSync})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.cube, err = renderer.NewCube()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create cube: %w", err)
	}
	a.ui, err = ui2d.New(dw, dh)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}
	a.input = input.New(ww, wh)
	a.faces = newFaceTextures(a.ui)
	a.faces.Use(texture.PlaceholderSet())

	start, err := route.Parse(cfg.StartRoute)
	if err != nil {
		a.log.Warn("ignoring start route", zap.String("route", cfg.StartRoute), zap.Error(err))
		start = route.Overview()
	}

	lens := camera.Default()
	lens.FOV = cfg.Graphics.FOV
	a.scene = scene.New(cube.InitialOrientation(start.From, start.HasFrom), lens)
	a.scene.SetViewport(dw, dh)

	a.rotation = rotation.New(a.scene, rotation.Config{
		Sensitivity:     cfg.Cube.DragSensitivity,
		Friction:        cfg.Cube.MomentumFriction,
		AutoRotateSpeed: cfg.Cube.AutoRotateSpeed,
		IdleTimeout:     cfg.Cube.IdleTimeout,
		Epsilon:         rotation.DefaultConfig().Epsilon,
	})
	a.choreo = transition.New(a.scene, transition.Config{
		Duration:   cfg.Cube.AnimationDuration,
		FillSafety: cfg.Cube.FillSafety,
	})
	a.arbiter = selection.NewArbiter(cfg.Cube.DoubleClickWindow)

	a.bridge = bridge.New(a.scene, a.cube, texture.NewLoader(os.DirFS(cfg.Assets.TextureDir)))
	if cfg.Assets.Watch {
		if a.watcher, err = texture.Watch(cfg.Assets.TextureDir); err != nil {
			a.log.Warn("texture watch disabled", zap.Error(err))
		} else {
			a.bridge.WatchChanges(a.watcher.Changes())
		}
	}

	style, err := flatten.ParseStyle(cfg.Handoff.Style)
	if err != nil {
		style = flatten.StyleFade
	}
	a.nav = nav.New(nav.Config{
		SettleStyle:    style,
		SettleDuration: cfg.Handoff.SettleDuration,
		Unfold: nav.UnfoldTiming{
			OpenDelay:   cfg.Unfold.OpenDelay,
			CloseDelay:  cfg.Unfold.CloseDelay,
			SwitchDelay: cfg.Unfold.SwitchDelay,
		},
	}, a.choreo, a.bridge, a, a.clock)
	a.nav.OnStart(a.transitionStarted)

	a.visited = visited.Open(cfg.Storage.VisitedPath)

	a.audio = audio.New(cfg.Audio.Volume, cfg.Audio.Muted)
	if err := a.audio.Init(); err != nil {
		a.log.Warn("audio disabled", zap.Error(err))
	} else {
		a.audio.LoadCues(os.DirFS(cfg.Assets.SoundDir))
	}

	a.shots = debug.NewScreenshotCapture(cfg.Assets.ScreenshotDir, Title)
	a.views.Change(a.viewFor(start))

	a.log.Info("app initialized",
		zap.Int("drawable_width", dw),
		zap.Int("drawable_height", dh),
		zap.Float32("dpi_scale", a.dpi),
		zap.Stringer("start", start),
	)
	return a, nil
}

// Push shows the view for a route. Unknown routes are ignored.
func (a *App) Push(r string) {
	rt, err := route.Parse(r)
	if err != nil {
		a.log.Debug("ignoring route", zap.String("route", r), zap.Error(err))
		return
	}
	a.log.Debug("route", zap.Stringer("route", rt))
	a.views.Change(a.viewFor(rt))
}

func (a *App) viewFor(rt route.Route) view {
	if rt.HasPage {
		return &pageView{app: a, face: rt.Page}
	}
	return &overviewView{app: a, from: rt.From, hasFrom: rt.HasFrom}
}

func (a *App) clock() time.Time {
	return a.now
}

// Run drives the frame loop until the window closes.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now
		a.now = now

		if err := a.applyView(now); err != nil {
			return err
		}

		// 1. Input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, ev := range a.input.Events() {
			a.handleEvent(ev)
		}

		// 2. Assets, transitions and routes
		a.bridge.Poll()
		a.nav.Update(now)
		if err := a.applyView(now); err != nil {
			return err
		}
		a.views.Current().Update(now, dt)

		// 3. Render
		a.render(now)
		if a.captureNext {
			a.captureNext = false
			a.capture(now)
		}
		a.win.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

// Quit stops the loop after the current frame.
func (a *App) Quit() {
	a.running = false
}

func (a *App) applyView(now time.Time) error {
	changed, err := a.views.Apply(now)
	if err != nil {
		return fmt.Errorf("enter view: %w", err)
	}
	if changed {
		a.nav.Unfold().Cancel()
	}
	return nil
}

func (a *App) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventResize:
		a.resize()
		return
	case input.EventKeyDown:
		if a.handleGlobalKey(ev) {
			return
		}
	case input.EventPointerDown, input.EventPointerMove, input.EventPointerUp:
		ev.Pointer = ev.Pointer.Scale(a.dpi)
		a.pointer, a.pointerSeen = ev.Pointer, true
		if a.handleUnfoldPointer(ev) {
			return
		}
	}
	a.views.Current().HandleEvent(ev, a.now)
}

func (a *App) handleGlobalKey(ev input.Event) bool {
	switch {
	case ev.Key == keyMute:
		a.audio.SetMuted(!a.audio.Muted())
		return true
	case ev.Key == keyCapture:
		a.captureNext = true
		return true
	case ev.Key == keyEscape && a.nav.Unfold().Visible():
		a.nav.Unfold().Close(a.now)
		return true
	}
	return false
}

// handleUnfoldPointer routes pointer events to the open overlay. It
// swallows every pointer event while the overlay is visible.
func (a *App) handleUnfoldPointer(ev input.Event) bool {
	u := a.nav.Unfold()
	if !u.Visible() {
		return false
	}
	if ev.Type != input.EventPointerUp {
		return true
	}
	if face, ok := u.FaceAt(a.unfoldCenter(), ev.Pointer.Scale(1/a.dpi)); ok {
		a.playCue(audio.CueCommit)
		a.nav.ClickUnfold(face)
		return true
	}
	if u.Phase() == nav.UnfoldOpen {
		u.Close(a.now)
	}
	return true
}

// unfoldCenter is the overlay center in window points.
func (a *App) unfoldCenter() math.Vec2 {
	w, h := a.ui.Size()
	return math.Vec2{X: float32(w) / 2, Y: float32(h) / 2}.Scale(1 / a.dpi)
}

func (a *App) resize() {
	dw, dh := a.win.DrawableSize()
	ww, _ := a.win.Size()
	if ww > 0 {
		a.dpi = float32(dw) / float32(ww)
	}
	a.gfx.Resize(dw, dh)
	a.ui.Resize(dw, dh)
	a.scene.SetViewport(dw, dh)
}

// capture saves the frame just rendered.
func (a *App) capture(now time.Time) {
	w, h := a.ui.Size()
	name, err := a.shots.CaptureFromPixels(debug.ReadFrame(w, h), w, h, now)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("file", name))
}

// transitionStarted hands the cube over to the choreographer: any drag or
// momentum stops here.
func (a *App) transitionStarted() {
	a.rotation.SetEnabled(false)
	a.playCue(audio.CueWhoosh)
}

func (a *App) playCue(c audio.Cue) {
	if !a.audio.Loaded(c) {
		return
	}
	if err := a.audio.Play(c); err != nil {
		a.log.Debug("cue skipped", zap.Stringer("cue", c), zap.Error(err))
	}
}

func (a *App) render(now time.Time) {
	a.gfx.Begin()
	a.ui.Begin()

	a.faces.Use(a.bridge.Materials())
	a.views.Current().Render(now)
	a.drawSettle(now)
	a.drawUnfold(now)
	a.drawHUD(now)

	a.ui.End()
}

// Close releases everything New acquired. It is safe on a partly built App.
func (a *App) Close() {
	a.log.Info("closing app")

	a.views.Close()
	if a.nav != nil {
		a.nav.Close()
	}
	if a.bridge != nil {
		for a.bridge.Mounted() {
			a.bridge.Unmount()
		}
	}
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Debug("watcher close", zap.Error(err))
		}
	}
	if a.audio != nil {
		a.audio.Close()
	}
	if a.faces != nil {
		a.faces.Release()
	}
	if a.ui != nil {
		a.ui.Close()
	}
	if a.cube != nil {
		a.cube.Close()
	}
	if a.win != nil {
		a.win.Close()
	}
}
