package celebrate

import (
	"math"
	"testing"
)

func TestTriggerButtonPressRelease(t *testing.T) {
	b := NewTriggerButton(Rect{X: 10, Y: 10, Width: 100, Height: 40}, "Go", 60)
	if b.press(0, 0) {
		t.Error("press outside bounds should miss")
	}
	if b.release(50, 20) {
		t.Error("release without press should not activate")
	}
	if !b.press(50, 20) {
		t.Fatal("press inside bounds should hit")
	}
	assertNear(t, "scale", b.Scale(), buttonPressScale)
	if !b.release(60, 30) {
		t.Error("release inside bounds should activate")
	}
	if b.release(60, 30) {
		t.Error("second release should not activate")
	}
}

func TestTriggerButtonSpringsBack(t *testing.T) {
	b := NewTriggerButton(Rect{Width: 10, Height: 10}, "", 60)
	b.press(5, 5)
	b.release(5, 5)
	for i := 0; i < 240; i++ {
		b.update()
	}
	if math.Abs(b.Scale()-1) > 0.01 {
		t.Errorf("scale = %v, want ~1 after settling", b.Scale())
	}
}

func TestTriggerButtonHeldStaysSquashed(t *testing.T) {
	b := NewTriggerButton(Rect{Width: 10, Height: 10}, "", 60)
	b.press(5, 5)
	for i := 0; i < 120; i++ {
		b.update()
	}
	if math.Abs(b.Scale()-buttonPressScale) > 0.01 {
		t.Errorf("scale = %v, want ~%v while held", b.Scale(), buttonPressScale)
	}
}

func TestTriggerButtonDefaultTPS(t *testing.T) {
	b := NewTriggerButton(Rect{Width: 10, Height: 10}, "", 0)
	assertNear(t, "scale", b.Scale(), 1)
}

func TestTriggerButtonDrawScalesAboutCenter(t *testing.T) {
	b := NewTriggerButton(Rect{X: 0, Y: 0, Width: 100, Height: 40}, "Go", 60)
	b.press(50, 20)

	var c recordingCanvas
	b.Draw(&c)
	if len(c.polygons) != 1 {
		t.Fatalf("polygons = %d, want 1", len(c.polygons))
	}
	pts := c.polygons[0].pts
	assertNear(t, "left", pts[0].X, 50-50*buttonPressScale)
	assertNear(t, "top", pts[0].Y, 20-20*buttonPressScale)
	assertNear(t, "right", pts[2].X, 50+50*buttonPressScale)
	if c.polygons[0].c != buttonPressed {
		t.Error("pressed button should use the pressed color")
	}
}
