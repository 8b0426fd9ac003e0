package ecs

// EntityID is an opaque handle to an entity owned by a World.
type EntityID uint64

// NilEntity is never handed out by CreateEntity.
const NilEntity EntityID = 0

// ComponentType keys one component table in the World.
type ComponentType uint8

// Component is implemented by every value stored in the world.
type Component interface {
	Type() ComponentType
}
