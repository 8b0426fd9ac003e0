package game

import (
	"boundless/internal/camera"
	"boundless/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// Action is a viewer command decoded from a key press.
type Action uint8

const (
	ActionNone Action = iota
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionZoomIn
	ActionZoomOut
	ActionRecenter
	ActionQuit
)

// keyToAction maps a tcell key event to a viewer action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionPanUp
	case tcell.KeyDown:
		return ActionPanDown
	case tcell.KeyLeft:
		return ActionPanLeft
	case tcell.KeyRight:
		return ActionPanRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'k', 'K':
		return ActionPanUp
	case 'j', 'J':
		return ActionPanDown
	case 'h', 'H':
		return ActionPanLeft
	case 'l', 'L':
		return ActionPanRight
	case '+', '=':
		return ActionZoomIn
	case '-', '_':
		return ActionZoomOut
	case 'c', 'C':
		return ActionRecenter
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToCells converts a pan action to a (columns, rows) step on screen.
func actionToCells(a Action) (int, int) {
	switch a {
	case ActionPanUp:
		return 0, -1
	case ActionPanDown:
		return 0, 1
	case ActionPanLeft:
		return -1, 0
	case ActionPanRight:
		return 1, 0
	}
	return 0, 0
}

// dragState tracks a left-button gesture. A press and release on the same
// cell is a click; any movement in between turns it into a pan.
type dragState struct {
	active   bool
	moved    bool
	col, row int
}

// HandleEvent is the update tick. It reports whether the user asked to quit.
func (g *Game) HandleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventMouse:
		return false, g.handleMouse(ev)
	}
	return false, nil
}

func (g *Game) handleKey(ev *tcell.EventKey) (bool, error) {
	action := keyToAction(ev)
	switch action {
	case ActionQuit:
		return true, nil
	case ActionNone:
		return false, nil
	case ActionZoomIn:
		return false, g.updateCamera(func(s *camera.State) { s.Scroll(-1) })
	case ActionZoomOut:
		return false, g.updateCamera(func(s *camera.State) { s.Scroll(1) })
	case ActionRecenter:
		return false, g.updateCamera(func(s *camera.State) { s.Position = mgl64.Vec2{} })
	}
	// Panning the view right means dragging the world left.
	dc, dr := actionToCells(action)
	dx, dy := g.renderer.Cells().Delta(dc, dr)
	return false, g.updateCamera(func(s *camera.State) { s.Drag(-dx, -dy) })
}

func (g *Game) handleMouse(ev *tcell.EventMouse) error {
	col, row := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		return g.updateCamera(func(s *camera.State) { s.Scroll(-1) })
	case buttons&tcell.WheelDown != 0:
		return g.updateCamera(func(s *camera.State) { s.Scroll(1) })
	case buttons&tcell.Button2 != 0:
		if g.drag.active {
			return nil
		}
		g.drag = dragState{active: true, moved: true, col: col, row: row}
		return g.edit(col, row, true)
	case buttons&tcell.Button1 != 0:
		if !g.drag.active {
			g.drag = dragState{active: true, col: col, row: row}
			return nil
		}
		if col == g.drag.col && row == g.drag.row {
			return nil
		}
		dx, dy := g.renderer.Cells().Delta(col-g.drag.col, row-g.drag.row)
		g.drag.col, g.drag.row, g.drag.moved = col, row, true
		return g.updateCamera(func(s *camera.State) { s.Drag(dx, dy) })
	default:
		// Release.
		d := g.drag
		g.drag = dragState{}
		if d.active && !d.moved {
			return g.edit(col, row, false)
		}
	}
	return nil
}

func (g *Game) updateCamera(fn func(*camera.State)) error {
	return system.UpdateCamera(g.world, g.camera, fn)
}
