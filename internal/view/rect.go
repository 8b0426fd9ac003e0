package view

import (
	"boundless/internal/camera"

	"github.com/go-gl/mathgl/mgl64"
)

// Rect is an axis-aligned world-space rectangle.
type Rect struct {
	Min, Max mgl64.Vec2
}

// RectFromCenter builds a rectangle from its centre and half extents.
func RectFromCenter(center, half mgl64.Vec2) Rect {
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the midpoint of r.
func (r Rect) Center() mgl64.Vec2 { return r.Min.Add(r.Max).Mul(0.5) }

// Size returns the width and height of r.
func (r Rect) Size() mgl64.Vec2 { return r.Max.Sub(r.Min) }

// Contains reports whether p lies strictly inside r. Points on an edge are
// outside.
func (r Rect) Contains(p mgl64.Vec2) bool {
	return r.Min.X() < p.X() && p.X() < r.Max.X() &&
		r.Min.Y() < p.Y() && p.Y() < r.Max.Y()
}

// ViewRect returns the world rectangle visible through cam. Its half extent is
// vp*(scale+margin)/2 on each axis.
func ViewRect(cam camera.State, vp Viewport, margin float64) Rect {
	half := mgl64.Vec2{
		vp.Width * (cam.Scale.X() + margin) / 2,
		vp.Height * (cam.Scale.Y() + margin) / 2,
	}
	return RectFromCenter(cam.Position, half)
}
