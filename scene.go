package celebrate

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Surface size used until the first Layout call.
const (
	defaultSurfaceWidth  = 640
	defaultSurfaceHeight = 480
)

// Scene is the top-level object: it owns the engine, the aurora overlay,
// the optional trigger button and the render buffers, and adapts them to
// ebiten's Update/Draw/Layout cycle.
type Scene struct {
	engine   *Engine
	surface  *Surface
	renderer *Renderer
	aurora   *Aurora
	button   *TriggerButton
	sink     EventSink

	// ClearColor fills the screen before drawing. Leave transparent to draw
	// over whatever the host renders underneath.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// ShowHUD draws FPS, TPS and particle stats in the top-left corner.
	ShowHUD bool

	debug       bool
	deviceScale func() float64
	updateFunc  func() error

	// Render state
	canvas *BatchCanvas
	glow   *BatchCanvas
	hud    *hud
	stats  debugStats

	// Input and automation state
	touchBuf        []ebiten.TouchID
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene creates an idle scene for cfg.
func NewScene(cfg Config) *Scene {
	return newSceneWithRand(cfg, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func newSceneWithRand(cfg Config, rng *rand.Rand) *Scene {
	surface := NewSurface(defaultSurfaceWidth, defaultSurfaceHeight)
	s := &Scene{
		surface:       surface,
		engine:        NewEngine(cfg, surface, rng),
		ScreenshotDir: "screenshots",
		deviceScale:   monitorScale,
		canvas:        NewBatchCanvas(1, BlendNormal),
		glow:          NewBatchCanvas(1, BlendAdd),
		hud:           newHUD(),
	}
	s.renderer = NewRenderer(s.engine.Config())
	s.aurora = NewAurora(&s.engine.Config().Aurora, rng)
	s.engine.SetEventSink(sceneSink{s})
	return s
}

func monitorScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// sceneSink routes engine events through the scene's debug log to the
// user's sink.
type sceneSink struct{ s *Scene }

func (k sceneSink) EmitEvent(ev Event) {
	k.s.logLoopEvent(ev)
	if k.s.sink != nil {
		k.s.sink.EmitEvent(ev)
	}
}

// Update runs the test runner and input, lands due deferred bursts, steps
// the particle loop once if it is running, and advances the aurora overlay.
func (s *Scene) Update() {
	dt := tickDuration()

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	if s.button != nil {
		s.button.update()
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	if s.engine.Advance(dt) && s.debug {
		s.stats.stepTime = time.Since(t0)
		s.stats.step = s.engine.loop.LastStep()
		debugCheckStore(s.engine.store.Len())
	}

	if s.aurora.Active() {
		s.aurora.Update(float32(dt.Seconds()))
	}
	if s.ShowHUD {
		s.hud.update(dt.Seconds(), s.engine)
	}
}

// tickDuration is the simulated time of one Update.
func tickDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Draw paints the button, the particles and the aurora overlay onto screen.
// Nothing is issued for particles while the loop is idle.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	scale := s.surface.Scale()
	s.canvas.Scale, s.glow.Scale = scale, scale

	if s.button != nil {
		s.button.Draw(s.canvas)
		s.canvas.Flush(screen)
		b := s.button.Bounds
		ebitenutil.DebugPrintAt(screen, s.button.Label, int((b.X+8)*scale), int((b.Y+b.Height/2-8)*scale))
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.paint(s.canvas, s.glow)
	vertices := s.canvas.VertexCount() + s.glow.VertexCount()
	s.canvas.Flush(screen)
	s.glow.Flush(screen)

	if s.debug && s.stats.step.Stepped > 0 {
		s.stats.drawTime = time.Since(t0)
		s.stats.particles = s.engine.store.Len()
		s.stats.vertices = vertices
		s.debugLog(s.stats)
		s.stats = debugStats{}
	}

	if s.ShowHUD {
		s.hud.draw(screen)
	}
	s.flushScreenshots(screen)
}

// paint issues overlay shapes into the given canvases and returns how many
// particles were drawn.
func (s *Scene) paint(particles, glow Canvas) int {
	n := 0
	if s.engine.loop.Running() {
		n = s.renderer.Draw(particles, s.engine.store)
	}
	if s.aurora.Active() {
		s.aurora.Draw(glow, s.surface.Width(), s.surface.Height())
	}
	return n
}

// Layout resizes the surface to the outside size at the monitor's device
// scale and returns the backing size, so one drawing unit is one logical
// pixel on any display.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.surface.Resize(outsideWidth, outsideHeight, s.deviceScale())
	w, h := s.surface.PixelSize()
	return max(w, 1), max(h, 1)
}

// Celebrate triggers the full celebration.
func (s *Scene) Celebrate() {
	s.engine.Celebrate()
}

// AuroraBurst starts the overlay burst at (x, y).
func (s *Scene) AuroraBurst(x, y float64) {
	s.aurora.Burst(x, y)
	s.engine.emit(Event{Type: EventAurora, X: x, Y: y, Count: s.engine.cfg.Aurora.Motes})
}

// SetTriggerButton installs the on-screen celebrate button. Pass nil to
// remove it.
func (s *Scene) SetTriggerButton(b *TriggerButton) {
	s.button = b
}

// SetEventSink sets the optional lifecycle event receiver.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// ApplyPreferences applies user preferences to the running scene.
func (s *Scene) ApplyPreferences(p *Preferences) {
	if p == nil {
		return
	}
	s.engine.SetReducedMotion(p.ReducedMotion)
	s.ShowHUD = p.ShowHUD
}

// SetUpdateFunc installs a callback that Run invokes once per tick before
// Scene.Update. A non-nil error ends the run loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables or disables per-frame timing logs on stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Engine returns the particle engine.
func (s *Scene) Engine() *Engine { return s.engine }

// Surface returns the drawing surface.
func (s *Scene) Surface() *Surface { return s.surface }

// Aurora returns the overlay burst.
func (s *Scene) Aurora() *Aurora { return s.aurora }
