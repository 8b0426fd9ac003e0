// Package camera holds the viewer's world position and zoom.
package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultMinScale is the zoom floor applied by Zoom.
const DefaultMinScale = 0.1

// DefaultZoomStep is the scale change for one scroll notch.
const DefaultZoomStep = 0.1

// ErrDegenerate is matched by every *DegenerateError.
var ErrDegenerate = errors.New("camera: degenerate scale")

// DegenerateError reports a camera whose scale cannot produce an invertible
// view. Mutators never create one, so seeing it means the clamp was bypassed.
type DegenerateError struct {
	Scale mgl64.Vec2
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("camera: degenerate scale (%g, %g)", e.Scale.X(), e.Scale.Y())
}

func (e *DegenerateError) Is(target error) bool { return target == ErrDegenerate }

// Limits bound how the camera may be zoomed.
type Limits struct {
	MinScale float64
	ZoomStep float64
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{MinScale: DefaultMinScale, ZoomStep: DefaultZoomStep}
}

// State is the active camera's transform. Larger scale shows more of the
// world (zoomed out); scale 1 maps one world pixel to one screen pixel.
type State struct {
	Position mgl64.Vec2
	Scale    mgl64.Vec2
	Limits   Limits
}

// New returns a camera at pos with unit scale, raised to the zoom floor when
// the floor is above 1.
func New(pos mgl64.Vec2, limits Limits) State {
	if limits.MinScale <= 0 {
		limits.MinScale = DefaultMinScale
	}
	s := State{Position: pos, Limits: limits}
	s.Scale = mgl64.Vec2{s.clamp(1), s.clamp(1)}
	return s
}

// Pan moves the camera by a world-space delta.
func (s *State) Pan(dx, dy float64) {
	s.Position = s.Position.Add(mgl64.Vec2{dx, dy})
}

// Drag pans by a mouse delta measured in screen pixels. Screen Y grows
// downward while world Y grows upward, so the vertical term keeps its sign.
func (s *State) Drag(screenDX, screenDY float64) {
	s.Pan(-screenDX*s.Scale.X(), screenDY*s.Scale.Y())
}

// Zoom adds delta to both scale components and clamps them to the floor.
func (s *State) Zoom(delta float64) {
	s.Scale = mgl64.Vec2{
		s.clamp(s.Scale.X() + delta),
		s.clamp(s.Scale.Y() + delta),
	}
}

// Scroll zooms by whole wheel notches. Negative notches (wheel up) zoom in.
func (s *State) Scroll(notches float64) {
	step := s.Limits.ZoomStep
	if step <= 0 {
		step = DefaultZoomStep
	}
	s.Zoom(notches * step)
}

func (s *State) clamp(v float64) float64 {
	floor := s.Limits.MinScale
	if floor <= 0 {
		floor = DefaultMinScale
	}
	if math.IsNaN(v) || v < floor {
		return floor
	}
	return v
}

// Validate checks that both scale components are finite and positive.
func (s State) Validate() error {
	for _, v := range s.Scale {
		if !(v > 0) || math.IsInf(v, 0) {
			return &DegenerateError{Scale: s.Scale}
		}
	}
	return nil
}
