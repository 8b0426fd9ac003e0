package component

import (
	"boundless/internal/ecs"
	"boundless/internal/grid"
)

const CTile ecs.ComponentType = 5

// Tile links a terrain entity back to its grid cell.
type Tile struct {
	Coord grid.Coord
}

func (Tile) Type() ecs.ComponentType { return CTile }
