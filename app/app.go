// Package app wires the world, scene, controls, picker, presenter and HUD into
// a single frame step driven by the hal host.
package app

import (
	"fmt"
	"time"

	"orrery/anim"
	"orrery/controls"
	"orrery/hal"
	"orrery/internal/buildinfo"
	"orrery/internal/eventq"
	"orrery/internal/telemetry"
	"orrery/picker"
	"orrery/presenter"
	"orrery/quarkgl"
	"orrery/scene"
	"orrery/ui"
	"orrery/world"
)

type Config struct {
	Theme world.Theme
	Stars int // 0 uses the catalog count
	Seed  uint64

	RenderMode quarkgl.RenderMode

	// Catalog overrides the embedded catalog.
	Catalog *world.Catalog
	// Metrics is optional; nil disables instrumentation.
	Metrics *telemetry.Metrics
	// LogFPS writes each FPS report to the logger.
	LogFPS bool
}

// App owns every component for one run. It is not safe for concurrent use;
// the host calls Step from a single goroutine.
type App struct {
	log     hal.Logger
	fb      hal.Framebuffer
	kbd     hal.Keyboard
	ptr     hal.Pointer
	clock   hal.Clock
	metrics *telemetry.Metrics
	logFPS  bool

	world    *world.World
	state    world.State
	bind     *scene.Bindings
	orbit    quarkgl.OrbitController
	renderer *quarkgl.Renderer
	picker   *picker.Picker
	pres     *presenter.Presenter
	surface  *controls.Surface
	loop     *anim.Loop

	disp  *ui.Display
	panel *ui.Panel
	hud   *ui.HUD

	actions eventq.Queue[controls.Action]
	input   inputState

	quit   bool
	failed error
}

// New builds the app against h. The framebuffer must be RGB565.
func New(h hal.HAL, cfg Config) (*App, error) {
	if h == nil || h.Display() == nil || h.Display().Framebuffer() == nil {
		return nil, fmt.Errorf("app: no framebuffer")
	}
	fb := h.Display().Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", fb.Format())
	}

	c := cfg.Catalog
	if c == nil {
		var err error
		if c, err = world.LoadCatalog(); err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
	}

	a := &App{
		log:     h.Logger(),
		fb:      fb,
		clock:   h.Clock(),
		metrics: cfg.Metrics,
		logFPS:  cfg.LogFPS,
		state:   world.NewState(cfg.Theme),
	}
	if in := h.Input(); in != nil {
		a.kbd = in.Keyboard()
		a.ptr = in.Pointer()
	}

	a.world = world.New(c, a.state, world.Options{StarCount: cfg.Stars, Seed: cfg.Seed})
	a.bind = scene.Build(a.world)
	a.orbit = quarkgl.OrbitController{MinRadius: minZoom, MaxRadius: maxZoom}
	a.resetCamera()
	a.renderer = quarkgl.NewRenderer(fb.Width(), fb.Height(), true)
	a.renderer.SetRenderMode(cfg.RenderMode)
	a.picker = picker.New(a.world)
	a.pres = presenter.New(a.world)

	a.disp = ui.NewDisplay(fb)
	a.panel = ui.NewPanel(fb.Width(), a.world.PlanetNames())
	a.hud = ui.NewHUD(fb.Width(), fb.Height(), a.world.ObjectCount())

	a.surface = controls.New(a.world, &a.state, a.panel, a.log)
	a.surface.OnReset = a.resetCamera

	a.loop = anim.New(a.world, &a.state, a.render)
	a.loop.OnFPS = a.reportFPS

	a.logf("orrery: %s theme=%s render=%s stars=%d objects=%d view=%dx%d",
		buildinfo.Short(), a.state.Theme, a.renderer.Mode, len(a.world.Stars), a.world.ObjectCount(), fb.Width(), fb.Height())
	return a, nil
}

// NewWithConfig adapts New to the host runner signature. A construction error
// is logged and returned from the first step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	a, err := New(h, cfg)
	if err != nil {
		if h != nil && h.Logger() != nil {
			h.Logger().WriteLineString(err.Error())
		}
		return func() error { return err }
	}
	return a.Step
}

// Step runs one frame: input, queued actions, animation and render. It returns
// hal.ErrQuit once a quit was requested.
func (a *App) Step() (err error) {
	if a.failed != nil {
		return a.failed
	}
	defer func() {
		if v := recover(); v != nil {
			a.failed = a.crash(v)
			err = a.failed
		}
	}()

	start := time.Now()

	a.pollKeyboard()
	a.pollPointer()
	a.actions.Drain(a.surface.Apply)
	if a.quit {
		return hal.ErrQuit
	}

	a.loop.Step(a.clock.Now())

	if a.metrics != nil {
		a.metrics.ObserveFrame(time.Since(start))
	}
	return nil
}

func (a *App) render() {
	a.bind.Sync(a.world)
	a.orbit.Apply(&a.bind.Scene.Camera)
	a.renderer.ClearColor = scene.Background(a.state.Theme)
	a.renderer.Render(a.disp.Target(), a.bind.Scene)

	pal := ui.PaletteFor(a.state.Theme)
	a.hud.Draw(a.disp, pal, a.pres)
	a.panel.Draw(a.disp, pal)
	_ = a.fb.Present()
}

func (a *App) resetCamera() {
	a.orbit.SetFromPosition(scene.DefaultTarget, scene.DefaultEye)
	a.orbit.Apply(&a.bind.Scene.Camera)
}

func (a *App) reportFPS(fps int) {
	a.hud.FPS = fps
	if a.metrics != nil {
		a.metrics.SetFPS(fps)
	}
	if a.logFPS {
		a.logf("orrery: fps=%d", fps)
	}
}

// enqueue hands an action to the next drain. A full queue drops it.
func (a *App) enqueue(act controls.Action) {
	if act.Kind == controls.ActionNone {
		return
	}
	if !a.actions.Push(act) {
		a.logf("orrery: action queue full, dropped kind=%d", act.Kind)
	}
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}

// Accessors for tests and tools.
func (a *App) World() *world.World             { return a.world }
func (a *App) State() world.State              { return a.state }
func (a *App) Presenter() *presenter.Presenter { return a.pres }
func (a *App) Panel() *ui.Panel                { return a.panel }
func (a *App) HUD() *ui.HUD                    { return a.hud }
func (a *App) Camera() quarkgl.Camera          { return a.bind.Scene.Camera }
func (a *App) RenderMode() quarkgl.RenderMode  { return a.renderer.Mode }
