// Package celebrate is a celebratory particle overlay for [Ebitengine]:
// confetti bursts, firework rockets that detonate into sparks, and a soft
// aurora burst, drawn over whatever the host renders.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := celebrate.NewScene(celebrate.DefaultConfig())
//	scene.SetTriggerButton(celebrate.NewTriggerButton(
//		celebrate.Rect{X: 20, Y: 20, Width: 120, Height: 40}, "Celebrate", 0))
//	celebrate.Run(scene, celebrate.RunConfig{
//		Title: "Celebrate", Width: 800, Height: 600,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update], [Scene.Draw] and [Scene.Layout] directly:
//
//	type Game struct{ scene *celebrate.Scene }
//
//	func (g *Game) Update() error         { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)  { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return g.scene.Layout(w, h) }
//
// # Engine
//
// [Engine] is the ebiten-free core. It owns the particle [Store] and wires
// the [Emitter], [Simulation], [Loop] and [Scheduler] over it. Particles are
// stepped once per frame with per-frame constants, so the effect is tuned
// for 60 ticks per second.
//
// The loop is idle until a trigger arms it. While running, each
// [Engine.Advance] lands due deferred bursts and steps the store once. When
// the store drains the loop returns to idle, clears the store and does no
// further work until the next trigger:
//
//	e := celebrate.NewEngine(celebrate.DefaultConfig(), celebrate.NewSurface(800, 600), nil)
//	e.Celebrate()
//	for !e.Idle() {
//		e.Advance(time.Second / 60)
//	}
//
// # Rendering
//
// [Renderer] paints the store onto a [Canvas]. [BatchCanvas] turns every
// shape into triangles and submits each layer in a single DrawTriangles32
// call sourced from [WhitePixel]. Coordinates are logical pixels; the
// [Surface] carries the device pixel ratio so shapes stay crisp on
// high-density displays.
//
// # Configuration
//
// [DefaultConfig] reproduces the stock effect. [LoadConfig] overlays a YAML
// file on the defaults and rejects unknown keys. [PreferenceStore] persists
// user toggles such as reduced motion through [gdata].
//
// # Events
//
// Set an [EventSink] to observe celebrations, detonations and loop
// transitions. The celebrate/ecs module forwards them into a [Donburi]
// world.
//
// [Ebitengine]: https://ebitengine.org
// [gdata]: https://github.com/quasilyte/gdata
// [Donburi]: https://github.com/yohamta/donburi
package celebrate
