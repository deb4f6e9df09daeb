package celebrate

import (
	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	buttonPressScale = 0.88
	buttonSpringFreq = 9.0
	buttonSpringDamp = 0.35
)

var (
	buttonFill    = Color{R: 0.95, G: 0.35, B: 0.55, A: 0.92}
	buttonPressed = Color{R: 1.0, G: 0.55, B: 0.70, A: 0.95}
)

// TriggerButton is the on-screen celebrate control. A press that is
// released inside Bounds counts as one activation; the button squashes on
// press and springs back.
type TriggerButton struct {
	Bounds Rect
	Label  string

	spring  harmonica.Spring
	scale   float64
	vel     float64
	pressed bool
}

// NewTriggerButton returns a button at rest. tps is the tick rate used to
// step its spring.
func NewTriggerButton(bounds Rect, label string, tps int) *TriggerButton {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &TriggerButton{
		Bounds: bounds,
		Label:  label,
		spring: harmonica.NewSpring(harmonica.FPS(tps), buttonSpringFreq, buttonSpringDamp),
		scale:  1,
	}
}

// press starts a squash if (x, y) hits the button and reports whether it did.
func (b *TriggerButton) press(x, y float64) bool {
	if !b.Bounds.Contains(x, y) {
		return false
	}
	b.pressed = true
	b.scale = buttonPressScale
	return true
}

// release ends a press and reports whether it activates the button.
func (b *TriggerButton) release(x, y float64) bool {
	was := b.pressed
	b.pressed = false
	return was && b.Bounds.Contains(x, y)
}

// update steps the press spring toward rest.
func (b *TriggerButton) update() {
	target := 1.0
	if b.pressed {
		target = buttonPressScale
	}
	b.scale, b.vel = b.spring.Update(b.scale, b.vel, target)
}

// Scale returns the current squash factor (1 at rest).
func (b *TriggerButton) Scale() float64 {
	return b.scale
}

// Draw paints the button body, scaled about its center.
func (b *TriggerButton) Draw(c Canvas) {
	ctr := b.Bounds.Center()
	hw, hh := b.Bounds.Width/2*b.scale, b.Bounds.Height/2*b.scale
	col := buttonFill
	if b.pressed {
		col = buttonPressed
	}
	c.FillPolygon([]Vec2{
		{ctr.X - hw, ctr.Y - hh},
		{ctr.X + hw, ctr.Y - hh},
		{ctr.X + hw, ctr.Y + hh},
		{ctr.X - hw, ctr.Y + hh},
	}, col)
}

// --- Input processing ---

// processInput is called from Scene.Update to turn pointer and key input
// into triggers. Injected events take priority over real input.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.Celebrate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		s.AuroraBurst(s.surface.Width()/2, s.surface.Height()/2)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := s.surface.ToLogical(ebiten.CursorPosition())
		s.pointerDown(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := s.surface.ToLogical(ebiten.CursorPosition())
		s.pointerUp(x, y)
	}

	s.touchBuf = inpututil.AppendJustPressedTouchIDs(s.touchBuf[:0])
	for _, id := range s.touchBuf {
		x, y := s.surface.ToLogical(ebiten.TouchPosition(id))
		s.pointerDown(x, y)
	}
	s.touchBuf = inpututil.AppendJustReleasedTouchIDs(s.touchBuf[:0])
	for _, id := range s.touchBuf {
		x, y := s.surface.ToLogical(inpututil.TouchPositionInPreviousTick(id))
		s.pointerUp(x, y)
	}
}

// pointerDown presses the trigger button if hit. Presses elsewhere fall
// through to whatever is under the overlay.
func (s *Scene) pointerDown(x, y float64) {
	if s.button != nil {
		s.button.press(x, y)
	}
}

func (s *Scene) pointerUp(x, y float64) {
	if s.button != nil && s.button.release(x, y) {
		s.Celebrate()
	}
}
