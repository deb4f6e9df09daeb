package celebrate

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is the immediate-mode drawing surface the renderer paints into.
// Coordinates are logical surface pixels.
type Canvas interface {
	FillCircle(cx, cy, r float64, c Color)
	// FillPolygon fills a convex polygon given in winding order.
	FillPolygon(pts []Vec2, c Color)
}

const (
	minCircleSegments = 8
	maxCircleSegments = 32
)

// BatchCanvas accumulates filled shapes as triangles and submits them in a
// single DrawTriangles32 call per Flush, sourcing color from WhitePixel.
type BatchCanvas struct {
	// Scale maps logical pixels to backing pixels (the device pixel ratio).
	Scale float64
	Blend BlendMode

	verts  []ebiten.Vertex
	inds   []uint32
	shapes int
}

// NewBatchCanvas returns an empty canvas at the given scale.
func NewBatchCanvas(scale float64, blend BlendMode) *BatchCanvas {
	return &BatchCanvas{
		Scale: scale,
		Blend: blend,
		verts: make([]ebiten.Vertex, 0, 4096),
		inds:  make([]uint32, 0, 8192),
	}
}

// FillCircle appends a triangle fan approximating a circle. The segment
// count grows with the on-screen radius.
func (b *BatchCanvas) FillCircle(cx, cy, r float64, c Color) {
	if r <= 0 || c.A <= 0 {
		return
	}
	segs := circleSegments(r * b.scale())
	cr, cg, cb, ca := c.premultiplied()

	base := uint32(len(b.verts))
	b.verts = append(b.verts, b.vertex(cx, cy, cr, cg, cb, ca))
	step := 2 * math.Pi / float64(segs)
	for i := 0; i < segs; i++ {
		a := float64(i) * step
		b.verts = append(b.verts, b.vertex(cx+math.Cos(a)*r, cy+math.Sin(a)*r, cr, cg, cb, ca))
	}
	for i := 0; i < segs; i++ {
		next := (i+1)%segs + 1
		b.inds = append(b.inds, base, base+uint32(i+1), base+uint32(next))
	}
	b.shapes++
}

// FillPolygon appends a triangle fan over a convex polygon.
func (b *BatchCanvas) FillPolygon(pts []Vec2, c Color) {
	if len(pts) < 3 || c.A <= 0 {
		return
	}
	cr, cg, cb, ca := c.premultiplied()
	base := uint32(len(b.verts))
	for _, p := range pts {
		b.verts = append(b.verts, b.vertex(p.X, p.Y, cr, cg, cb, ca))
	}
	for i := 1; i < len(pts)-1; i++ {
		b.inds = append(b.inds, base, base+uint32(i), base+uint32(i+1))
	}
	b.shapes++
}

// Flush submits the accumulated triangles to target and resets the batch.
func (b *BatchCanvas) Flush(target *ebiten.Image) {
	if len(b.inds) > 0 {
		var op ebiten.DrawTrianglesOptions
		op.Blend = b.Blend.EbitenBlend()
		op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		target.DrawTriangles32(b.verts, b.inds, WhitePixel, &op)
	}
	b.Reset()
}

// Reset discards the batch without drawing.
func (b *BatchCanvas) Reset() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
	b.shapes = 0
}

// Shapes returns the number of shapes in the pending batch.
func (b *BatchCanvas) Shapes() int { return b.shapes }

// VertexCount returns the number of vertices in the pending batch.
func (b *BatchCanvas) VertexCount() int { return len(b.verts) }

func (b *BatchCanvas) scale() float64 {
	if b.Scale <= 0 {
		return 1
	}
	return b.Scale
}

func (b *BatchCanvas) vertex(x, y float64, r, g, bl, a float32) ebiten.Vertex {
	s := b.scale()
	return ebiten.Vertex{
		DstX:   float32(x * s),
		DstY:   float32(y * s),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: r,
		ColorG: g,
		ColorB: bl,
		ColorA: a,
	}
}

func circleSegments(screenRadius float64) int {
	n := int(math.Ceil(screenRadius * 2))
	return min(max(n, minCircleSegments), maxCircleSegments)
}
