package celebrate

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS overrides ebiten's tick rate. Zero keeps the default of 60, which
	// is the frame rate every per-frame constant is tuned for.
	TPS       int
	Resizable bool
	ShowFPS   bool
	Debug     bool
	// Overlay opens a transparent, undecorated, always-on-top window that
	// lets clicks through to whatever is underneath. The trigger button is
	// removed since it can never receive a click; keys and scripts still
	// trigger celebrations.
	Overlay bool
}

// Run opens a window and drives scene until the window closes or the update
// callback returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = defaultSurfaceWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultSurfaceHeight
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	cfg.configureScene(scene)

	var opts ebiten.RunGameOptions
	if cfg.Overlay {
		opts.ScreenTransparent = true
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowFloating(true)
		ebiten.SetWindowMousePassthrough(true)
	}
	return ebiten.RunGameWithOptions(&gameShell{scene: scene}, &opts)
}

// configureScene applies the scene-side options of cfg.
func (cfg RunConfig) configureScene(scene *Scene) {
	if cfg.ShowFPS {
		scene.ShowHUD = true
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	if cfg.Overlay {
		scene.SetTriggerButton(nil)
		scene.ClearColor = Color{}
	}
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene *Scene
}

func (g *gameShell) Update() error {
	if g.scene.updateFunc != nil {
		if err := g.scene.updateFunc(); err != nil {
			return err
		}
	}
	g.scene.Update()
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Layout(outsideWidth, outsideHeight)
}
