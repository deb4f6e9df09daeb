package celebrate

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	auroraSat        = 0.90
	auroraLight      = 0.65
	auroraCoreAlpha  = 0.9
	auroraGlowAlpha  = 0.55
	auroraGlowFactor = 2.25
	washFadeIn       = 0.25 // share of WashDuration spent fading in
)

// auroraMote is one glowing dot drifting away from the burst origin.
type auroraMote struct {
	ox, oy float64
	dx, dy float64
	core   Color
	glow   Color
	travel *gween.Tween
	fade   *gween.Tween
	t      float64
	alpha  float64
	done   bool
}

// Aurora is the soft overlay burst: motes radiate from a point with eased
// motion while a faint colored wash fades in and out over the surface. It is
// time-based (seconds) and independent of the particle loop.
type Aurora struct {
	cfg *AuroraConfig
	rng *rand.Rand

	motes     []auroraMote
	wash      *gween.Sequence
	washAlpha float64
	washColor Color
}

// NewAurora returns an inactive overlay.
func NewAurora(cfg *AuroraConfig, rng *rand.Rand) *Aurora {
	return &Aurora{cfg: cfg, rng: rng}
}

// Burst spawns motes at (x, y) and restarts the wash.
func (a *Aurora) Burst(x, y float64) {
	for i := 0; i < a.cfg.Motes; i++ {
		ang := Range{0, 2 * math.Pi}.Random(a.rng)
		dist := a.cfg.Distance.Random(a.rng)
		a.motes = append(a.motes, auroraMote{
			ox:     x,
			oy:     y,
			dx:     math.Cos(ang) * dist,
			dy:     math.Sin(ang) * dist,
			core:   HSL(a.hue(), auroraSat, auroraLight, auroraCoreAlpha),
			glow:   HSL(a.hue(), auroraSat, auroraLight, auroraGlowAlpha),
			travel: gween.New(0, 1, a.cfg.Duration, ease.OutCubic),
			fade:   gween.New(1, 0, a.cfg.Duration, ease.InQuad),
			alpha:  1,
		})
	}

	in := a.cfg.WashDuration * washFadeIn
	peak := float32(a.cfg.WashAlpha)
	a.wash = gween.NewSequence(
		gween.New(0, peak, in, ease.OutQuad),
		gween.New(peak, 0, a.cfg.WashDuration-in, ease.InQuad),
	)
	a.washColor = HSL(a.hue(), auroraSat, auroraLight, 1)
}

// Update advances all tweens by dt seconds and drops finished motes. It
// reports whether anything is still visible.
func (a *Aurora) Update(dt float32) bool {
	live := a.motes[:0]
	for _, m := range a.motes {
		t, done := m.travel.Update(dt)
		f, _ := m.fade.Update(dt)
		m.t, m.alpha, m.done = float64(t), float64(f), done
		if !m.done {
			live = append(live, m)
		}
	}
	a.motes = live

	if a.wash != nil {
		v, _, finished := a.wash.Update(dt)
		a.washAlpha = float64(v)
		if finished {
			a.wash = nil
			a.washAlpha = 0
		}
	}
	return a.Active()
}

// Active reports whether the overlay still has something to draw.
func (a *Aurora) Active() bool {
	return len(a.motes) > 0 || a.wash != nil
}

// Draw paints the wash over the whole surface and then every mote.
func (a *Aurora) Draw(c Canvas, width, height float64) {
	if a.washAlpha > 0 {
		c.FillPolygon([]Vec2{{0, 0}, {width, 0}, {width, height}, {0, height}},
			a.washColor.WithAlpha(a.washAlpha))
	}
	r := a.cfg.MoteRadius
	for i := range a.motes {
		m := &a.motes[i]
		x, y := m.ox+m.dx*m.t, m.oy+m.dy*m.t
		c.FillCircle(x, y, r*auroraGlowFactor, m.glow.WithAlpha(m.glow.A*m.alpha))
		c.FillCircle(x, y, r, m.core.WithAlpha(m.core.A*m.alpha))
	}
}

// MoteCount returns the number of live motes.
func (a *Aurora) MoteCount() int {
	return len(a.motes)
}

func (a *Aurora) hue() float64 {
	return Range{0, 360}.Random(a.rng)
}
