package component

import (
	"boundless/internal/camera"
	"boundless/internal/ecs"
)

const (
	CCamera ecs.ComponentType = 2
	CCulled ecs.ComponentType = 3
)

// Camera marks an entity that can be made the active camera and carries its
// zoom limits. Its Transform holds position and zoom.
type Camera struct {
	Limits camera.Limits
}

func (Camera) Type() ecs.ComponentType { return CCamera }

// Culled marks an entity that was outside the view rectangle on the last
// culling pass. It is a per-frame snapshot, not kept in sync with movement.
type Culled struct{}

func (Culled) Type() ecs.ComponentType { return CCulled }
