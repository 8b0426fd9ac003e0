package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewCameraHasUnitScale(t *testing.T) {
	c := New(mgl64.Vec2{3, 4}, Limits{})
	if c.Scale != (mgl64.Vec2{1, 1}) {
		t.Fatalf("Scale = %v, want (1,1)", c.Scale)
	}
	if c.Limits.MinScale != DefaultMinScale {
		t.Fatalf("MinScale = %v, want default %v", c.Limits.MinScale, DefaultMinScale)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestNewCameraStartsAtZoomFloor(t *testing.T) {
	c := New(mgl64.Vec2{}, Limits{MinScale: 2, ZoomStep: 0.5})
	if c.Scale != (mgl64.Vec2{2, 2}) {
		t.Fatalf("Scale = %v, want the floor (2,2)", c.Scale)
	}
	c.Scroll(-1)
	if c.Scale != (mgl64.Vec2{2, 2}) {
		t.Fatalf("zoom in at the floor changed scale to %v", c.Scale)
	}
	c.Scroll(1)
	if c.Scale != (mgl64.Vec2{2.5, 2.5}) {
		t.Fatalf("zoom out from the floor = %v, want (2.5,2.5)", c.Scale)
	}
}

func TestPanAddsDelta(t *testing.T) {
	c := New(mgl64.Vec2{}, DefaultLimits())
	c.Pan(10, -5)
	c.Pan(2.5, 1)
	if !c.Position.ApproxEqual(mgl64.Vec2{12.5, -4}) {
		t.Fatalf("Position = %v, want (12.5,-4)", c.Position)
	}
}

func TestDragFollowsScreenConvention(t *testing.T) {
	c := New(mgl64.Vec2{}, DefaultLimits())
	c.Scale = mgl64.Vec2{2, 2}
	// Dragging right and down moves the view left and up in world space.
	c.Drag(10, 4)
	if !c.Position.ApproxEqual(mgl64.Vec2{-20, 8}) {
		t.Fatalf("Position = %v, want (-20,8)", c.Position)
	}
}

func TestZoomClampsToFloor(t *testing.T) {
	c := New(mgl64.Vec2{}, DefaultLimits())
	for i := 0; i < 50; i++ {
		c.Zoom(-1000)
		if c.Scale.X() < DefaultMinScale || c.Scale.Y() < DefaultMinScale {
			t.Fatalf("iteration %d: scale %v dropped below floor", i, c.Scale)
		}
	}
	if c.Scale.X() != DefaultMinScale || c.Scale.Y() != DefaultMinScale {
		t.Fatalf("Scale = %v, want clamped to %v", c.Scale, DefaultMinScale)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate after clamp: %v", err)
	}
}

func TestZoomCustomFloorAndNaN(t *testing.T) {
	c := New(mgl64.Vec2{}, Limits{MinScale: 0.5, ZoomStep: 0.25})
	c.Zoom(math.NaN())
	if c.Scale.X() != 0.5 {
		t.Fatalf("NaN zoom: Scale = %v, want floor 0.5", c.Scale)
	}
	c.Zoom(1)
	if c.Scale.X() != 1.5 || c.Scale.Y() != 1.5 {
		t.Fatalf("Scale = %v, want (1.5,1.5)", c.Scale)
	}
}

func TestScrollUsesZoomStep(t *testing.T) {
	c := New(mgl64.Vec2{}, Limits{MinScale: 0.1, ZoomStep: 0.25})
	c.Scroll(2)
	if math.Abs(c.Scale.X()-1.5) > 1e-12 {
		t.Fatalf("Scroll(2): Scale = %v, want 1.5", c.Scale)
	}
	c.Scroll(-1)
	if math.Abs(c.Scale.Y()-1.25) > 1e-12 {
		t.Fatalf("Scroll(-1): Scale = %v, want 1.25", c.Scale)
	}
}

func TestValidateRejectsDegenerateScale(t *testing.T) {
	cases := []struct {
		name  string
		scale mgl64.Vec2
	}{
		{"zero x", mgl64.Vec2{0, 1}},
		{"zero y", mgl64.Vec2{1, 0}},
		{"negative", mgl64.Vec2{-1, 1}},
		{"nan", mgl64.Vec2{math.NaN(), 1}},
		{"inf", mgl64.Vec2{1, math.Inf(1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := State{Scale: tc.scale}
			err := s.Validate()
			if !errors.Is(err, ErrDegenerate) {
				t.Fatalf("Validate(%v) = %v, want ErrDegenerate", tc.scale, err)
			}
		})
	}
}
