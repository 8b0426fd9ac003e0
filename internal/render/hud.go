package render

import (
	"fmt"

	"boundless/internal/camera"
	"boundless/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is what the HUD shows for one frame.
type Status struct {
	Camera  camera.State
	Cull    system.Stats
	Drawn   int
	Message string
}

// DrawHUD renders the status line and the latest message under the world view.
func (r *Renderer) DrawHUD(st Status) {
	w, h := r.screen.Size()
	if h < HUDRows {
		return
	}
	top := h - HUDRows
	r.drawHLine(top, w, tcell.ColorGray)

	line := fmt.Sprintf("cam (%.1f, %.1f)  zoom %.2f  visible %d  culled %d  drawn %d",
		st.Camera.Position.X(), st.Camera.Position.Y(), st.Camera.Scale.X(),
		st.Cull.Visible, st.Cull.Culled, st.Drawn)
	if st.Message != "" {
		line += "  | " + st.Message
	}
	r.drawText(0, top+1, runewidth.Truncate(line, w, "…"), tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) drawHLine(y, width int, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
