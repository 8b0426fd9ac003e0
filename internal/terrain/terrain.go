// Package terrain stores the tile grid and keeps one entity per solid cell.
package terrain

import (
	"boundless/internal/ecs"
	"boundless/internal/grid"
)

// Cell is one grid slot. Entity is NilEntity for air.
type Cell struct {
	Kind   Kind
	Entity ecs.EntityID
}

// Map holds the cells of a grid.Layout, row-major with row 0 at the bottom.
type Map struct {
	Layout grid.Layout
	cells  []Cell
}

// New returns a map of the given layout filled with air.
func New(layout grid.Layout) *Map {
	return &Map{Layout: layout, cells: make([]Cell, layout.Width*layout.Height)}
}

// InBounds reports whether c is a cell of the map.
func (m *Map) InBounds(c grid.Coord) bool { return m.Layout.InBounds(c) }

// At returns a pointer to the cell at c. Panics if c is out of bounds.
func (m *Map) At(c grid.Coord) *Cell {
	if !m.InBounds(c) {
		panic("terrain: cell out of bounds")
	}
	return &m.cells[c.Row*m.Layout.Width+c.Col]
}

// Kind returns the kind at c, or Air outside the map.
func (m *Map) Kind(c grid.Coord) Kind {
	if !m.InBounds(c) {
		return Air
	}
	return m.At(c).Kind
}

// Set replaces the kind at c without touching its entity.
func (m *Map) Set(c grid.Coord, k Kind) {
	m.At(c).Kind = k
}

// SurfaceHeight returns the number of solid cells from the bottom of column
// col up to the first air cell.
func (m *Map) SurfaceHeight(col int) int {
	h := 0
	for row := 0; row < m.Layout.Height; row++ {
		if !m.Kind(grid.Coord{Col: col, Row: row}).Solid() {
			break
		}
		h++
	}
	return h
}

// SolidCount returns the number of non-air cells.
func (m *Map) SolidCount() int {
	n := 0
	for _, c := range m.cells {
		if c.Kind.Solid() {
			n++
		}
	}
	return n
}
