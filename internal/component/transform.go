package component

import (
	"boundless/internal/ecs"

	"github.com/go-gl/mathgl/mgl64"
)

const CTransform ecs.ComponentType = 1

// Transform places an entity in world space. For the camera entity, Scale is
// the zoom level.
type Transform struct {
	Position mgl64.Vec2
	Scale    mgl64.Vec2
}

func (Transform) Type() ecs.ComponentType { return CTransform }

// At returns a unit-scale transform at (x, y).
func At(x, y float64) Transform {
	return Transform{Position: mgl64.Vec2{x, y}, Scale: mgl64.Vec2{1, 1}}
}
