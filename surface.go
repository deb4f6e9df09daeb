package celebrate

import "math"

// Surface is the full-viewport drawing target. Width and Height are in
// logical pixels; the backing image is Scale times larger so one drawing
// unit stays one logical pixel on high-density displays.
type Surface struct {
	width, height  int
	scale          float64
	pixelW, pixelH int
	listeners      []func(*Surface)
}

// NewSurface returns a surface of the given logical size at scale 1.
func NewSurface(width, height int) *Surface {
	s := &Surface{}
	s.apply(width, height, 1)
	return s
}

// Resize updates the logical size and device pixel ratio. Ratios below 1 are
// treated as 1. Listeners run only when something changed. Particle state is
// never touched.
func (s *Surface) Resize(width, height int, dpr float64) bool {
	if dpr < 1 || math.IsNaN(dpr) {
		dpr = 1
	}
	width = max(width, 0)
	height = max(height, 0)
	if width == s.width && height == s.height && dpr == s.scale {
		return false
	}
	s.apply(width, height, dpr)
	for _, fn := range s.listeners {
		fn(s)
	}
	return true
}

func (s *Surface) apply(width, height int, dpr float64) {
	s.width, s.height, s.scale = width, height, dpr
	s.pixelW = int(math.Floor(float64(width) * dpr))
	s.pixelH = int(math.Floor(float64(height) * dpr))
}

// OnResize registers fn to run after every effective Resize.
func (s *Surface) OnResize(fn func(*Surface)) {
	s.listeners = append(s.listeners, fn)
}

// Width returns the logical width.
func (s *Surface) Width() float64 { return float64(s.width) }

// Height returns the logical height.
func (s *Surface) Height() float64 { return float64(s.height) }

// Scale returns the device pixel ratio in effect.
func (s *Surface) Scale() float64 { return s.scale }

// PixelSize returns the backing image size.
func (s *Surface) PixelSize() (int, int) { return s.pixelW, s.pixelH }

// ToLogical converts backing-image coordinates (as reported by ebiten's
// cursor and touch APIs) into logical surface coordinates.
func (s *Surface) ToLogical(px, py int) (float64, float64) {
	return float64(px) / s.scale, float64(py) / s.scale
}
