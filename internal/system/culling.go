package system

import (
	"sync"

	"boundless/internal/component"
	"boundless/internal/ecs"
	"boundless/internal/view"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultMargin widens the view rectangle so sprites whose centre is just
// past the viewport edge still draw.
const DefaultMargin = 0.5

// minChunk keeps tiny worlds on one goroutine.
const minChunk = 256

// Culler tags every positioned entity outside the camera's view rectangle
// with component.Culled and untags the rest. The zero value culls against
// the strict viewport (margin 0); use NewCuller for DefaultMargin.
type Culler struct {
	Margin  float64
	Workers int // >1 splits classification across goroutines
}

// NewCuller returns a Culler with DefaultMargin.
func NewCuller(workers int) Culler {
	return Culler{Margin: DefaultMargin, Workers: workers}
}

// Stats counts the outcome of one culling pass.
type Stats struct {
	Visible int
	Culled  int
}

// Run performs one culling pass for the active camera cam.
func (c Culler) Run(w *ecs.World, cam ecs.EntityID, vp view.Viewport) (Stats, error) {
	state, err := CameraState(w, cam)
	if err != nil {
		return Stats{}, err
	}
	if err := state.Validate(); err != nil {
		return Stats{}, err
	}
	rect := view.ViewRect(state, vp, c.Margin)

	ids := w.Query(component.CTransform)
	positions := make([]mgl64.Vec2, len(ids))
	for i, id := range ids {
		positions[i] = w.Get(id, component.CTransform).(component.Transform).Position
	}
	visible := classify(rect, positions, c.Workers)

	// World writes stay on this goroutine.
	var st Stats
	for i, id := range ids {
		if visible[i] {
			w.Remove(id, component.CCulled)
			st.Visible++
		} else {
			w.Add(id, component.Culled{})
			st.Culled++
		}
	}
	return st, nil
}

func classify(rect view.Rect, positions []mgl64.Vec2, workers int) []bool {
	visible := make([]bool, len(positions))
	if workers <= 1 || len(positions) < 2*minChunk {
		for i, p := range positions {
			visible[i] = rect.Contains(p)
		}
		return visible
	}

	chunk := (len(positions) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}
	var wg sync.WaitGroup
	for start := 0; start < len(positions); start += chunk {
		end := min(start+chunk, len(positions))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				visible[i] = rect.Contains(positions[i])
			}
		}(start, end)
	}
	wg.Wait()
	return visible
}

// VisibleWith returns the entities carrying every listed type that were not
// culled on the last pass, in ascending id order.
func VisibleWith(w *ecs.World, types ...ecs.ComponentType) []ecs.EntityID {
	ids := w.Query(append([]ecs.ComponentType{component.CTransform}, types...)...)
	out := ids[:0]
	for _, id := range ids {
		if !w.Has(id, component.CCulled) {
			out = append(out, id)
		}
	}
	return out
}
