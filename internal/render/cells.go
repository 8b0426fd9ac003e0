package render

import (
	"boundless/internal/view"

	"github.com/go-gl/mathgl/mgl64"
)

// Cells converts between terminal cells and screen pixels. A terminal cell
// stands in for a CellWidth x CellHeight block of pixels.
type Cells struct {
	CellWidth  float64
	CellHeight float64
}

// Viewport returns the pixel viewport covered by cols x rows cells.
func (c Cells) Viewport(cols, rows int) view.Viewport {
	return view.Viewport{Width: float64(cols) * c.CellWidth, Height: float64(rows) * c.CellHeight}
}

// ToScreen returns the pixel at the centre of cell (col, row).
func (c Cells) ToScreen(col, row int) mgl64.Vec2 {
	return mgl64.Vec2{
		(float64(col) + 0.5) * c.CellWidth,
		(float64(row) + 0.5) * c.CellHeight,
	}
}

// ToCell returns the cell containing screen pixel p.
func (c Cells) ToCell(p mgl64.Vec2) (col, row int) {
	return floorDiv(p.X(), c.CellWidth), floorDiv(p.Y(), c.CellHeight)
}

// Delta converts a movement of dc columns and dr rows to pixels.
func (c Cells) Delta(dc, dr int) (dx, dy float64) {
	return float64(dc) * c.CellWidth, float64(dr) * c.CellHeight
}

func floorDiv(v, size float64) int {
	q := v / size
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}
