package terrain

import (
	"math"
	"math/rand"

	"boundless/internal/grid"
)

const (
	surfaceFreq    = 0.04
	surfaceOctaves = 4
	dirtDepth      = 3
)

// Generate fills layout with a rolling surface: every column is solid up to a
// noise height between a third of the grid and its top. The top cell of a
// column is grassy, the next few are dirt, the rest stone.
func Generate(layout grid.Layout, rng *rand.Rand) *Map {
	m := New(layout)
	if layout.Width <= 0 || layout.Height <= 0 {
		return m
	}
	noise := newHeightNoise(rng)
	low := layout.Height / 3
	span := float64(layout.Height - low)
	for col := 0; col < layout.Width; col++ {
		h := low + int(math.Round(noise.profile(float64(col), surfaceFreq, surfaceOctaves)*span))
		for row := 0; row < h; row++ {
			depth := h - 1 - row
			kind := Stone
			switch {
			case depth == 0:
				kind = GrassyDirt
			case depth <= dirtDepth:
				kind = Dirt
			}
			m.Set(grid.Coord{Col: col, Row: row}, kind)
		}
	}
	return m
}
