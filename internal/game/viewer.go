// Package game runs the frame-synchronous viewer loop: input updates the
// camera, then each frame projects, culls and draws the terrain.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"boundless/internal/camera"
	"boundless/internal/component"
	"boundless/internal/config"
	"boundless/internal/ecs"
	"boundless/internal/grid"
	"boundless/internal/render"
	"boundless/internal/system"
	"boundless/internal/terrain"
	"boundless/internal/view"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Options configures a Game.
type Options struct {
	Layout  grid.Layout
	Limits  camera.Limits
	Cells   render.Cells
	Margin  float64
	Workers int
	Seed    int64
}

// OptionsFrom maps loaded settings onto viewer options.
func OptionsFrom(cfg config.Config) Options {
	return Options{
		Layout:  cfg.Layout(),
		Limits:  cfg.Limits(),
		Cells:   cfg.Cells(),
		Margin:  cfg.Cull.Margin,
		Workers: cfg.Cull.Workers,
		Seed:    cfg.World.Seed,
	}
}

// Game owns one world, its terrain and the active camera.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	world    *ecs.World
	terrain  *terrain.Map
	camera   ecs.EntityID
	culler   system.Culler
	log      logrus.FieldLogger

	stats   system.Stats
	drawn   int
	message string
	drag    dragState
}

// New generates the terrain, spawns its entities and the camera.
func New(screen tcell.Screen, opts Options, log logrus.FieldLogger) *Game {
	w := ecs.NewWorld()
	m := terrain.Generate(opts.Layout, rand.New(rand.NewSource(opts.Seed)))
	n := terrain.Spawn(w, m)
	cam := system.NewCamera(w, opts.Limits)
	w.Add(cam, component.Sprite{Glyph: "+", FG: tcell.ColorYellow, Order: 100})

	log.WithFields(logrus.Fields{
		"tiles":  n,
		"width":  opts.Layout.Width,
		"height": opts.Layout.Height,
		"seed":   opts.Seed,
	}).Info("terrain generated")

	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, opts.Cells),
		world:    w,
		terrain:  m,
		camera:   cam,
		culler:   system.Culler{Margin: opts.Margin, Workers: opts.Workers},
		log:      log,
	}
}

// World exposes the entity store.
func (g *Game) World() *ecs.World { return g.world }

// Terrain exposes the tile map.
func (g *Game) Terrain() *terrain.Map { return g.terrain }

// Camera returns the active camera entity.
func (g *Game) Camera() ecs.EntityID { return g.camera }

// Stats returns the last culling pass counts.
func (g *Game) Stats() system.Stats { return g.stats }

// Message returns the latest status message.
func (g *Game) Message() string { return g.message }

// Run draws and handles input until the user quits or the pipeline hits a
// fatal error. The screen is finalized on return.
func (g *Game) Run() error {
	defer g.screen.Fini()
	for {
		if err := g.Frame(); err != nil {
			return err
		}
		ev := g.screen.PollEvent()
		if ev == nil {
			return nil
		}
		quit, err := g.HandleEvent(ev)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Frame is the draw tick: project, cull, draw and show.
func (g *Game) Frame() error {
	state, err := system.CameraState(g.world, g.camera)
	if err != nil {
		return err
	}
	vp := g.renderer.Viewport()
	proj, err := view.NewProjection(state, vp)
	if err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	g.stats, err = g.culler.Run(g.world, g.camera, vp)
	if err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	g.drawn = g.renderer.DrawFrame(g.world, proj)
	g.renderer.DrawHUD(render.Status{Camera: state, Cull: g.stats, Drawn: g.drawn, Message: g.message})
	g.renderer.Show()

	g.log.WithFields(logrus.Fields{
		"visible": g.stats.Visible,
		"culled":  g.stats.Culled,
		"drawn":   g.drawn,
	}).Debug("frame")
	return nil
}

// Pick resolves terminal cell (col, row) to the terrain cell under it.
// Clicks outside the terrain return an error matching grid.ErrOutOfBounds;
// any other error means the camera is broken.
func (g *Game) Pick(col, row int) (grid.Coord, error) {
	state, err := system.CameraState(g.world, g.camera)
	if err != nil {
		return grid.Coord{}, err
	}
	screen := g.renderer.Cells().ToScreen(col, row)
	world, err := view.ScreenToWorld(state, g.renderer.Viewport(), screen)
	if err != nil {
		return grid.Coord{}, fmt.Errorf("pick (%d,%d): %w", col, row, err)
	}
	return g.terrain.Layout.WorldToTile(world)
}

// edit applies a terrain edit at terminal cell (col, row). Misses outside the
// terrain are ignored.
func (g *Game) edit(col, row int, place bool) error {
	c, err := g.Pick(col, row)
	if errors.Is(err, grid.ErrOutOfBounds) {
		g.log.WithField("cell", fmt.Sprintf("%d,%d", col, row)).Debug("click outside terrain")
		return nil
	}
	if err != nil {
		return err
	}

	kind := terrain.Dirt
	var changed bool
	if place {
		changed, err = terrain.Place(g.world, g.terrain, c, kind)
	} else {
		kind = g.terrain.Kind(c)
		changed, err = terrain.Dig(g.world, g.terrain, c)
	}
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	verb := "dug"
	if place {
		verb = "placed"
	}
	g.message = fmt.Sprintf("%s %s at (%d,%d)", verb, kind, c.Col, c.Row)
	g.log.WithFields(logrus.Fields{"tile": fmt.Sprintf("%d,%d", c.Col, c.Row), "kind": kind.String()}).Debug(verb)
	return nil
}
