// Package grid maps between discrete terrain cells and world pixel space.
//
// The grid is centred on the world origin and every cell is addressed by its
// centre: column 0 sits at the left edge, row 0 at the bottom edge, and row
// indices grow with world Y.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrOutOfBounds is matched by every *OutOfBoundsError.
var ErrOutOfBounds = errors.New("grid: point outside terrain")

// OutOfBoundsError reports a world point that maps outside the grid.
type OutOfBoundsError struct {
	Point    mgl64.Vec2
	Col, Row int // unclamped indices the point resolved to
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid: world (%.2f, %.2f) resolves to cell (%d, %d) outside terrain",
		e.Point.X(), e.Point.Y(), e.Col, e.Row)
}

func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// Coord identifies one terrain cell. Layer is carried through untouched.
type Coord struct {
	Col, Row, Layer int
}

// Layout describes the terrain grid's placement in world space.
type Layout struct {
	TileSize  float64 // source sprite edge in pixels
	TileScale float64 // scale applied to every tile sprite
	Width     int     // columns
	Height    int     // rows
}

// CellSize returns the edge of one cell in world pixels.
func (l Layout) CellSize() float64 { return l.TileSize * l.TileScale }

// Origin returns the world position of the grid's bottom-left corner.
func (l Layout) Origin() mgl64.Vec2 {
	s := l.CellSize()
	return mgl64.Vec2{
		-(float64(l.Width) / 2) * s,
		-(float64(l.Height) / 2) * s,
	}
}

// Bounds returns the bottom-left and top-right world corners of the grid.
func (l Layout) Bounds() (lo, hi mgl64.Vec2) {
	lo = l.Origin()
	s := l.CellSize()
	hi = lo.Add(mgl64.Vec2{float64(l.Width) * s, float64(l.Height) * s})
	return lo, hi
}

// InBounds reports whether c addresses a cell of the grid.
func (l Layout) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < l.Width && c.Row >= 0 && c.Row < l.Height
}

// TileToWorld returns the world position of the centre of cell c.
// Out-of-range coordinates extrapolate along the same lattice.
func (l Layout) TileToWorld(c Coord) mgl64.Vec2 {
	s := l.CellSize()
	o := l.Origin()
	return mgl64.Vec2{
		o.X() + float64(c.Col)*s + s/2,
		o.Y() + float64(c.Row)*s + s/2,
	}
}

// WorldToTile returns the cell containing p. A point on a shared edge belongs
// to the cell above/right of it.
func (l Layout) WorldToTile(p mgl64.Vec2) (Coord, error) {
	s := l.CellSize()
	if s <= 0 {
		return Coord{}, &OutOfBoundsError{Point: p, Col: -1, Row: -1}
	}
	o := l.Origin()
	col := int(math.Floor((p.X() - o.X()) / s))
	row := int(math.Floor((p.Y() - o.Y()) / s))
	c := Coord{Col: col, Row: row}
	if !l.InBounds(c) {
		return Coord{}, &OutOfBoundsError{Point: p, Col: col, Row: row}
	}
	return c, nil
}

// TileToWorld is the free-standing form of Layout.TileToWorld.
func TileToWorld(col, row int, tileSize, tileScale float64, gridWidth, gridHeight int) mgl64.Vec2 {
	l := Layout{TileSize: tileSize, TileScale: tileScale, Width: gridWidth, Height: gridHeight}
	return l.TileToWorld(Coord{Col: col, Row: row})
}

// WorldToTile is the free-standing form of Layout.WorldToTile.
func WorldToTile(x, y, tileSize, tileScale float64, gridWidth, gridHeight int) (Coord, error) {
	l := Layout{TileSize: tileSize, TileScale: tileScale, Width: gridWidth, Height: gridHeight}
	return l.WorldToTile(mgl64.Vec2{x, y})
}
