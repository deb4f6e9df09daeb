package celebrate

import "math"

// Visual constants for each kind.
const (
	rocketAlpha = 0.9

	sparkSat   = 0.90
	sparkLight = 0.65

	confettiSat   = 0.85
	confettiLight = 0.60

	// Confetti outlines relative to Size.
	rectAspect   = 0.6
	circleFactor = 0.35
	triTop       = 0.5
	triHalfBase  = 0.45
	triBase      = 0.35
)

// Renderer paints the store onto a Canvas using one rule per particle kind.
type Renderer struct {
	cfg *Config
	pts [4]Vec2
}

// NewRenderer returns a renderer reading its rocket radius from cfg.
func NewRenderer(cfg *Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Draw paints every particle in store and returns how many shapes it issued.
// An empty store issues nothing.
func (r *Renderer) Draw(c Canvas, store *Store) int {
	items := store.Particles()
	for i := range items {
		r.drawParticle(c, &items[i])
	}
	return len(items)
}

func (r *Renderer) drawParticle(c Canvas, p *Particle) {
	switch p.Kind {
	case KindRocket:
		c.FillCircle(p.X, p.Y, r.cfg.Rocket.Radius, ColorWhite.WithAlpha(rocketAlpha))
	case KindSpark:
		// The hue's own alpha and the global alpha both carry the fade, so
		// sparks dim quadratically.
		col := HSL(p.X*2+p.Y, sparkSat, sparkLight, p.Alpha*p.Alpha)
		c.FillCircle(p.X, p.Y, p.Size, col)
	case KindConfetti:
		r.drawConfetti(c, p)
	default:
		unknownKind(p.Kind)
	}
}

func (r *Renderer) drawConfetti(c Canvas, p *Particle) {
	col := HSL(p.X+p.Y, confettiSat, confettiLight, p.Alpha)
	s := p.Size
	switch p.Shape {
	case ShapeCircle:
		c.FillCircle(p.X, p.Y, s*circleFactor, col)
	case ShapeTri:
		r.pts[0] = Vec2{0, -s * triTop}
		r.pts[1] = Vec2{s * triHalfBase, s * triBase}
		r.pts[2] = Vec2{-s * triHalfBase, s * triBase}
		c.FillPolygon(place(r.pts[:3], p.X, p.Y, p.Rot), col)
	default:
		// Rect spans (-s/2, -s/2) to (s/2, -s/2 + 0.6s).
		top, bottom := -s/2, -s/2+s*rectAspect
		r.pts[0] = Vec2{-s / 2, top}
		r.pts[1] = Vec2{s / 2, top}
		r.pts[2] = Vec2{s / 2, bottom}
		r.pts[3] = Vec2{-s / 2, bottom}
		c.FillPolygon(place(r.pts[:4], p.X, p.Y, p.Rot), col)
	}
}

// place rotates local points by rot and translates them to (x, y) in place.
func place(pts []Vec2, x, y, rot float64) []Vec2 {
	sin, cos := math.Sincos(rot)
	for i, p := range pts {
		pts[i] = Vec2{
			X: x + p.X*cos - p.Y*sin,
			Y: y + p.X*sin + p.Y*cos,
		}
	}
	return pts
}
