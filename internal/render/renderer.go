package render

import (
	"sort"

	"boundless/internal/component"
	"boundless/internal/ecs"
	"boundless/internal/system"
	"boundless/internal/view"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of screen rows reserved below the world view.
const HUDRows = 2

// Renderer draws the visible world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	cells  Cells
}

// NewRenderer creates a Renderer for screen with the given cell metrics.
func NewRenderer(screen tcell.Screen, cells Cells) *Renderer {
	return &Renderer{screen: screen, cells: cells}
}

// Cells returns the renderer's cell metrics.
func (r *Renderer) Cells() Cells { return r.cells }

// Viewport returns the pixel viewport of the world area, excluding the HUD.
func (r *Renderer) Viewport() view.Viewport {
	cols, rows := r.worldArea()
	return r.cells.Viewport(cols, rows)
}

func (r *Renderer) worldArea() (cols, rows int) {
	cols, rows = r.screen.Size()
	rows -= HUDRows
	if rows < 0 {
		rows = 0
	}
	return cols, rows
}

// drawable holds what one sprite needs for sorting and placement.
type drawable struct {
	id     ecs.EntityID
	order  int
	col    int
	row    int
	sprite component.Sprite
}

// DrawFrame clears the screen and draws every unculled sprite through proj.
// It returns the number of sprites placed on screen.
func (r *Renderer) DrawFrame(w *ecs.World, proj *view.Projection) int {
	r.screen.Clear()
	cols, rows := r.worldArea()

	ids := system.VisibleWith(w, component.CSprite)
	items := make([]drawable, 0, len(ids))
	for _, id := range ids {
		tr := w.Get(id, component.CTransform).(component.Transform)
		sp := w.Get(id, component.CSprite).(component.Sprite)
		col, row := r.cells.ToCell(proj.Project(tr.Position))
		if col < 0 || col >= cols || row < 0 || row >= rows {
			continue
		}
		items = append(items, drawable{id: id, order: sp.Order, col: col, row: row, sprite: sp})
	}

	// Lower order first; ties keep id order so frames are stable.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].order < items[j].order
	})

	for _, it := range items {
		style := tcell.StyleDefault.Foreground(it.sprite.FG)
		r.putGlyph(it.col, it.row, it.sprite.Glyph, style)
	}
	return len(items)
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// putGlyph draws glyph at cell (x, y), padding the next cell for wide runes.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
