package render

import (
	"strings"
	"testing"

	"boundless/internal/camera"
	"boundless/internal/component"
	"boundless/internal/ecs"
	"boundless/internal/system"
	"boundless/internal/view"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

var testCells = Cells{CellWidth: 8, CellHeight: 16}

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 24)
	t.Cleanup(ss.Fini)
	return NewRenderer(ss, testCells), ss
}

func sprite(w *ecs.World, x, y float64, glyph string, order int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.At(x, y))
	w.Add(id, component.Sprite{Glyph: glyph, FG: tcell.ColorWhite, Order: order})
	return id
}

func frame(t *testing.T, r *Renderer, w *ecs.World, cam ecs.EntityID) int {
	t.Helper()
	vp := r.Viewport()
	if _, err := (system.Culler{Margin: system.DefaultMargin}).Run(w, cam, vp); err != nil {
		t.Fatalf("cull: %v", err)
	}
	s, err := system.CameraState(w, cam)
	if err != nil {
		t.Fatalf("CameraState: %v", err)
	}
	proj, err := view.NewProjection(s, vp)
	if err != nil {
		t.Fatalf("NewProjection: %v", err)
	}
	return r.DrawFrame(w, proj)
}

func TestViewportExcludesHUD(t *testing.T) {
	r, _ := newTestRenderer(t)
	vp := r.Viewport()
	if vp.Width != 640 || vp.Height != float64(24-HUDRows)*16 {
		t.Fatalf("Viewport = %+v, want 640x%d", vp, (24-HUDRows)*16)
	}
}

func TestDrawFramePlacesSpritesAtProjectedCells(t *testing.T) {
	r, ss := newTestRenderer(t)
	w := ecs.NewWorld()
	cam := system.NewCamera(w, camera.DefaultLimits())
	sprite(w, 0, 0, "#", 0)
	sprite(w, 8, 0, "@", 0)
	sprite(w, 0, 16, "^", 0) // world up is screen up

	if n := frame(t, r, w, cam); n != 3 {
		t.Fatalf("DrawFrame drew %d sprites, want 3", n)
	}
	rows := 24 - HUDRows
	checks := []struct {
		col, row int
		want     rune
	}{
		{40, rows / 2, '#'},
		{41, rows / 2, '@'},
		{40, rows/2 - 1, '^'},
	}
	for _, c := range checks {
		got, _, _, _ := ss.GetContent(c.col, c.row)
		if got != c.want {
			t.Errorf("cell (%d,%d) = %q, want %q", c.col, c.row, got, c.want)
		}
	}
}

func TestDrawFrameSkipsCulledAndRespectsOrder(t *testing.T) {
	r, ss := newTestRenderer(t)
	w := ecs.NewWorld()
	cam := system.NewCamera(w, camera.DefaultLimits())
	sprite(w, 100000, 0, "X", 0)
	sprite(w, 0, 0, "b", 5)
	sprite(w, 0, 0, "a", 1)

	if n := frame(t, r, w, cam); n != 2 {
		t.Fatalf("DrawFrame drew %d sprites, want 2", n)
	}
	got, _, _, _ := ss.GetContent(40, (24-HUDRows)/2)
	if got != 'b' {
		t.Fatalf("overlapping sprites: top glyph %q, want 'b' (higher order drawn last)", got)
	}
}

func TestDrawFrameFollowsCamera(t *testing.T) {
	r, ss := newTestRenderer(t)
	w := ecs.NewWorld()
	cam := system.NewCamera(w, camera.DefaultLimits())
	sprite(w, 80, 0, "#", 0)
	if err := system.UpdateCamera(w, cam, func(s *camera.State) { s.Position = mgl64.Vec2{80, 0} }); err != nil {
		t.Fatalf("UpdateCamera: %v", err)
	}
	frame(t, r, w, cam)
	got, _, _, _ := ss.GetContent(40, (24-HUDRows)/2)
	if got != '#' {
		t.Fatalf("sprite under the camera drew %q at the centre, want '#'", got)
	}
}

func TestDrawHUD(t *testing.T) {
	r, ss := newTestRenderer(t)
	st := Status{
		Camera:  camera.New(mgl64.Vec2{12, -3}, camera.DefaultLimits()),
		Cull:    system.Stats{Visible: 7, Culled: 2},
		Drawn:   5,
		Message: "dug stone",
	}
	r.DrawHUD(st)

	var b strings.Builder
	for x := 0; x < 80; x++ {
		c, _, _, _ := ss.GetContent(x, 23)
		b.WriteRune(c)
	}
	line := b.String()
	for _, want := range []string{"cam (12.0, -3.0)", "visible 7", "culled 2", "drawn 5", "dug stone"} {
		if !strings.Contains(line, want) {
			t.Errorf("HUD line %q missing %q", line, want)
		}
	}
	if c, _, _, _ := ss.GetContent(0, 22); c != '─' {
		t.Errorf("separator cell = %q, want '─'", c)
	}
}

func TestCellsRoundTrip(t *testing.T) {
	for _, tc := range []struct{ col, row int }{{0, 0}, {5, 9}, {-1, -1}, {79, 21}} {
		col, row := testCells.ToCell(testCells.ToScreen(tc.col, tc.row))
		if col != tc.col || row != tc.row {
			t.Errorf("ToCell(ToScreen(%d,%d)) = (%d,%d)", tc.col, tc.row, col, row)
		}
	}
	dx, dy := testCells.Delta(2, -3)
	if dx != 16 || dy != -48 {
		t.Errorf("Delta(2,-3) = (%v,%v), want (16,-48)", dx, dy)
	}
}
