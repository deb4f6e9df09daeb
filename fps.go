package celebrate

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hud shows FPS, TPS, live particle count and loop state in the top-left
// corner. The text is redrawn every ~0.5 seconds.
type hud struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newHUD() *hud {
	// 160x64 fits four DebugPrint lines.
	return &hud{img: ebiten.NewImage(160, 64), lastUpdate: hudInterval}
}

const hudInterval = 0.5

func (h *hud) update(dt float64, e *Engine) {
	h.lastUpdate += dt
	if h.lastUpdate < hudInterval {
		return
	}
	h.lastUpdate = 0

	h.img.Clear()
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nParticles: %d\nLoop: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), e.store.Len(), e.loop.State()))
}

func (h *hud) draw(screen *ebiten.Image) {
	screen.DrawImage(h.img, nil)
}
