package terrain

import (
	"errors"
	"math/rand"
	"testing"

	"boundless/internal/component"
	"boundless/internal/ecs"
	"boundless/internal/grid"
)

var small = grid.Layout{TileSize: 32, TileScale: 0.5, Width: 24, Height: 12}

func TestNewMapIsAir(t *testing.T) {
	m := New(small)
	if m.SolidCount() != 0 {
		t.Fatalf("SolidCount = %d, want 0", m.SolidCount())
	}
	if m.Kind(grid.Coord{Col: -1}) != Air {
		t.Fatal("out-of-bounds Kind should be Air")
	}
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("At outside the map did not panic")
		}
	}()
	New(small).At(grid.Coord{Col: small.Width})
}

func TestGenerateHeightsWithinRange(t *testing.T) {
	m := Generate(small, rand.New(rand.NewSource(1)))
	for col := 0; col < small.Width; col++ {
		h := m.SurfaceHeight(col)
		if h < small.Height/3 || h > small.Height {
			t.Fatalf("column %d height %d outside [%d,%d]", col, h, small.Height/3, small.Height)
		}
		top := m.Kind(grid.Coord{Col: col, Row: h - 1})
		if top != GrassyDirt {
			t.Errorf("column %d surface is %v, want grassy dirt", col, top)
		}
		if h > 5 && m.Kind(grid.Coord{Col: col, Row: 0}) != Stone {
			t.Errorf("column %d bedrock is not stone", col)
		}
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a := Generate(small, rand.New(rand.NewSource(42)))
	b := Generate(small, rand.New(rand.NewSource(42)))
	for col := 0; col < small.Width; col++ {
		if a.SurfaceHeight(col) != b.SurfaceHeight(col) {
			t.Fatalf("column %d differs between runs with the same seed", col)
		}
	}
}

func TestSpawnPlacesEntitiesAtCellCentres(t *testing.T) {
	w := ecs.NewWorld()
	m := Generate(small, rand.New(rand.NewSource(5)))
	n := Spawn(w, m)
	if n != m.SolidCount() {
		t.Fatalf("Spawn created %d entities, want %d", n, m.SolidCount())
	}
	if again := Spawn(w, m); again != 0 {
		t.Fatalf("second Spawn created %d entities, want 0", again)
	}

	for _, id := range w.Query(component.CTile, component.CTransform) {
		tile := w.Get(id, component.CTile).(component.Tile)
		tr := w.Get(id, component.CTransform).(component.Transform)
		back, err := small.WorldToTile(tr.Position)
		if err != nil || back != tile.Coord {
			t.Fatalf("entity %v at %v maps back to %+v (%v), want %+v", id, tr.Position, back, err, tile.Coord)
		}
		if m.At(tile.Coord).Entity != id {
			t.Fatalf("cell %+v does not reference entity %v", tile.Coord, id)
		}
	}
}

func TestDigAndPlace(t *testing.T) {
	w := ecs.NewWorld()
	m := New(small)
	c := grid.Coord{Col: 3, Row: 2}

	placed, err := Place(w, m, c, Dirt)
	if err != nil || !placed {
		t.Fatalf("Place = %v, %v; want true, nil", placed, err)
	}
	id := m.At(c).Entity
	if !w.Alive(id) || !w.Has(id, component.CSprite) {
		t.Fatal("Place did not spawn a drawable entity")
	}
	if again, _ := Place(w, m, c, Stone); again {
		t.Fatal("Place onto a solid cell should be a no-op")
	}

	dug, err := Dig(w, m, c)
	if err != nil || !dug {
		t.Fatalf("Dig = %v, %v; want true, nil", dug, err)
	}
	if w.Alive(id) || m.Kind(c) != Air || m.At(c).Entity != ecs.NilEntity {
		t.Fatal("Dig left the cell or its entity behind")
	}
	if again, _ := Dig(w, m, c); again {
		t.Fatal("digging air should be a no-op")
	}
}

func TestEditsOutsideMapReturnOutOfBounds(t *testing.T) {
	w := ecs.NewWorld()
	m := New(small)
	outside := grid.Coord{Col: -1, Row: 0}
	if _, err := Dig(w, m, outside); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("Dig err = %v, want ErrOutOfBounds", err)
	}
	if _, err := Place(w, m, outside, Dirt); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("Place err = %v, want ErrOutOfBounds", err)
	}
}
