// Package view converts between world, camera and screen space.
//
// World space is pixel scale with Y growing upward. Camera space is world
// space re-centred on the camera with Y flipped, so it already grows
// downward like the screen. The flip happens exactly once, in WorldToCamera;
// CameraToScreen only scales and offsets. All matrices are homogeneous 3x3
// affine transforms applied as screen = C·(W·p).
package view

import (
	"errors"

	"boundless/internal/camera"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrNotInvertible is returned when the camera scale leaves the world-to-
// screen transform singular. Camera mutators prevent this; hitting it is a bug.
var ErrNotInvertible = errors.New("view: transform not invertible")

// Viewport is the drawable area in screen pixels.
type Viewport struct {
	Width, Height float64
}

// Size returns the viewport as a vector.
func (v Viewport) Size() mgl64.Vec2 { return mgl64.Vec2{v.Width, v.Height} }

// Center returns the screen position the camera is centred on.
func (v Viewport) Center() mgl64.Vec2 { return mgl64.Vec2{v.Width / 2, v.Height / 2} }

// WorldToCamera translates by -position and flips Y.
func WorldToCamera(cam camera.State) mgl64.Mat3 {
	p := cam.Position
	return mgl64.Mat3FromRows(
		mgl64.Vec3{1, 0, -p.X()},
		mgl64.Vec3{0, -1, p.Y()},
		mgl64.Vec3{0, 0, 1},
	)
}

// CameraToScreen scales by 1/scale and moves the origin to the viewport centre.
func CameraToScreen(cam camera.State, vp Viewport) mgl64.Mat3 {
	c := vp.Center()
	return mgl64.Translate2D(c.X(), c.Y()).Mul3(
		mgl64.Scale2D(1/cam.Scale.X(), 1/cam.Scale.Y()),
	)
}

// WorldToScreen composes CameraToScreen after WorldToCamera.
func WorldToScreen(cam camera.State, vp Viewport) mgl64.Mat3 {
	return CameraToScreen(cam, vp).Mul3(WorldToCamera(cam))
}

// Apply transforms point p by m as a homogeneous (x, y, 1) vector.
func Apply(m mgl64.Mat3, p mgl64.Vec2) mgl64.Vec2 {
	return m.Mul3x1(p.Vec3(1)).Vec2()
}

// ScreenToWorld maps a screen point back into world space. The inverse is
// derived analytically from the scale/translate structure instead of a
// general 3x3 inversion.
func ScreenToWorld(cam camera.State, vp Viewport, screen mgl64.Vec2) (mgl64.Vec2, error) {
	if cam.Validate() != nil {
		return mgl64.Vec2{}, ErrNotInvertible
	}
	return unproject(cam, vp, screen), nil
}

// ScreenToWorldMatrix returns the inverse of WorldToScreen.
func ScreenToWorldMatrix(cam camera.State, vp Viewport) (mgl64.Mat3, error) {
	if cam.Validate() != nil {
		return mgl64.Mat3{}, ErrNotInvertible
	}
	c := vp.Center()
	p := cam.Position
	s := cam.Scale
	return mgl64.Mat3FromRows(
		mgl64.Vec3{s.X(), 0, p.X() - c.X()*s.X()},
		mgl64.Vec3{0, -s.Y(), p.Y() + c.Y()*s.Y()},
		mgl64.Vec3{0, 0, 1},
	), nil
}

func unproject(cam camera.State, vp Viewport, screen mgl64.Vec2) mgl64.Vec2 {
	c := vp.Center()
	return mgl64.Vec2{
		(screen.X()-c.X())*cam.Scale.X() + cam.Position.X(),
		-(screen.Y()-c.Y())*cam.Scale.Y() + cam.Position.Y(),
	}
}

// Projection caches one frame's transforms for a fixed camera and viewport.
type Projection struct {
	cam     camera.State
	vp      Viewport
	forward mgl64.Mat3
}

// NewProjection validates cam and builds the frame's world-to-screen matrix.
func NewProjection(cam camera.State, vp Viewport) (*Projection, error) {
	if err := cam.Validate(); err != nil {
		return nil, err
	}
	return &Projection{cam: cam, vp: vp, forward: WorldToScreen(cam, vp)}, nil
}

// Matrix returns the world-to-screen matrix.
func (p *Projection) Matrix() mgl64.Mat3 { return p.forward }

// Camera returns the camera state the projection was built from.
func (p *Projection) Camera() camera.State { return p.cam }

// Viewport returns the viewport the projection was built for.
func (p *Projection) Viewport() Viewport { return p.vp }

// Project maps a world position to screen pixels.
func (p *Projection) Project(world mgl64.Vec2) mgl64.Vec2 {
	return Apply(p.forward, world)
}

// Unproject maps screen pixels to a world position.
func (p *Projection) Unproject(screen mgl64.Vec2) mgl64.Vec2 {
	return unproject(p.cam, p.vp, screen)
}

// ViewRect returns the world region the camera covers, widened by margin.
func (p *Projection) ViewRect(margin float64) Rect {
	return ViewRect(p.cam, p.vp, margin)
}
