package terrain

import (
	"fmt"

	"boundless/internal/component"
	"boundless/internal/ecs"
	"boundless/internal/grid"

	"github.com/go-gl/mathgl/mgl64"
)

// Spawn creates an entity for every solid cell that does not have one yet and
// returns how many were created.
func Spawn(w *ecs.World, m *Map) int {
	n := 0
	for row := 0; row < m.Layout.Height; row++ {
		for col := 0; col < m.Layout.Width; col++ {
			c := grid.Coord{Col: col, Row: row}
			cell := m.At(c)
			if cell.Kind.Solid() && cell.Entity == ecs.NilEntity {
				cell.Entity = newTileEntity(w, m.Layout, c, cell.Kind)
				n++
			}
		}
	}
	return n
}

func newTileEntity(w *ecs.World, layout grid.Layout, c grid.Coord, k Kind) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Transform{
		Position: layout.TileToWorld(c),
		Scale:    mgl64.Vec2{layout.TileScale, layout.TileScale},
	})
	w.Add(id, component.Sprite{Glyph: k.Glyph(), FG: k.Color(), Order: 0})
	w.Add(id, component.Tile{Coord: c})
	return id
}

// Dig clears the cell at c and destroys its entity. It reports whether
// anything was removed.
func Dig(w *ecs.World, m *Map, c grid.Coord) (bool, error) {
	if !m.InBounds(c) {
		return false, fmt.Errorf("dig (%d,%d): %w", c.Col, c.Row, grid.ErrOutOfBounds)
	}
	cell := m.At(c)
	if !cell.Kind.Solid() {
		return false, nil
	}
	w.DestroyEntity(cell.Entity)
	*cell = Cell{}
	return true, nil
}

// Place fills the air cell at c with k and spawns its entity. Placing onto a
// solid cell is a no-op.
func Place(w *ecs.World, m *Map, c grid.Coord, k Kind) (bool, error) {
	if !m.InBounds(c) {
		return false, fmt.Errorf("place (%d,%d): %w", c.Col, c.Row, grid.ErrOutOfBounds)
	}
	if !k.Solid() {
		return false, nil
	}
	cell := m.At(c)
	if cell.Kind.Solid() {
		return false, nil
	}
	cell.Kind = k
	cell.Entity = newTileEntity(w, m.Layout, c, k)
	return true, nil
}
