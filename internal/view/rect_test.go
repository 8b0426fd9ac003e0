package view

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRectContainsIsStrict(t *testing.T) {
	r := Rect{Min: mgl64.Vec2{-10, -5}, Max: mgl64.Vec2{10, 5}}
	cases := []struct {
		p    mgl64.Vec2
		want bool
	}{
		{mgl64.Vec2{0, 0}, true},
		{mgl64.Vec2{9.99, -4.99}, true},
		{mgl64.Vec2{10, 0}, false},
		{mgl64.Vec2{-10, 0}, false},
		{mgl64.Vec2{0, 5}, false},
		{mgl64.Vec2{0, -5}, false},
		{mgl64.Vec2{11, 0}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestViewRectExtents(t *testing.T) {
	cam := origin()
	cam.Position = mgl64.Vec2{100, -50}
	r := ViewRect(cam, screen800x600, 0.5)

	if !r.Center().ApproxEqual(cam.Position) {
		t.Fatalf("Center = %v, want camera position %v", r.Center(), cam.Position)
	}
	// 800 * (1 + 0.5) by 600 * (1 + 0.5)
	if !r.Size().ApproxEqual(mgl64.Vec2{1200, 900}) {
		t.Fatalf("Size = %v, want (1200,900)", r.Size())
	}
}

func TestViewRectScalesWithZoom(t *testing.T) {
	cam := origin()
	strict := ViewRect(cam, screen800x600, 0)
	cam.Zoom(1) // scale 1 -> 2
	zoomed := ViewRect(cam, screen800x600, 0)
	if !zoomed.Size().ApproxEqual(strict.Size().Mul(2)) {
		t.Fatalf("zoomed size %v, want double of %v", zoomed.Size(), strict.Size())
	}
}
