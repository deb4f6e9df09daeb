package celebrate

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
)

// toRGBA converts to a premultiplied color.RGBA for ebiten fills.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// premultiplied returns the vertex color components scaled by alpha.
func (c Color) premultiplied() (r, g, b, a float32) {
	a64 := clamp01(c.A)
	return float32(clamp01(c.R) * a64), float32(clamp01(c.G) * a64), float32(clamp01(c.B) * a64), float32(a64)
}

// HSL builds a Color from a hue in degrees (any value, wrapped into [0, 360)),
// saturation and lightness in [0, 1], and an alpha.
func HSL(hue, sat, light, alpha float64) Color {
	r, g, b, err := colorconv.HSLToRGB(wrapHue(hue), clamp01(sat), clamp01(light))
	if err != nil {
		return ColorWhite.WithAlpha(alpha)
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: alpha,
	}
}

// wrapHue floors h and wraps it into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(math.Floor(h), 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
