package celebrate

import "fmt"

// Kind discriminates the three particle variants.
type Kind uint8

const (
	KindRocket   Kind = iota // rises until its apex, then detonates
	KindSpark                // short-lived radial spark from a detonation
	KindConfetti             // spinning flake with a slower fade
)

func (k Kind) String() string {
	switch k {
	case KindRocket:
		return "rocket"
	case KindSpark:
		return "spark"
	case KindConfetti:
		return "confetti"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Shape selects the confetti outline.
type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapeTri
)

// shapeCount is the number of confetti shapes; shapes are picked uniformly.
const shapeCount = 3

func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	case ShapeTri:
		return "tri"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// Particle is one simulated element. Kind selects which of the variant fields
// are meaningful:
//
//	rocket:   ApexY
//	spark:    Size (radius)
//	confetti: Size, Shape, Rot, VRot
//
// Life counts frames and is ignored for rockets, which live until they
// detonate.
type Particle struct {
	Kind   Kind
	X, Y   float64
	VX, VY float64
	Life   float64
	Alpha  float64

	ApexY float64

	Size  float64
	Shape Shape
	Rot   float64
	VRot  float64
}

// unknownKind panics for a Kind outside the declared set. Every switch over
// Kind ends here so a new variant cannot be silently skipped.
func unknownKind(k Kind) {
	panic(fmt.Sprintf("celebrate: unknown particle kind %d", uint8(k)))
}
