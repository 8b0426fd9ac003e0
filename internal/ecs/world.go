package ecs

import "sort"

// World owns entity lifetimes and one component table per ComponentType.
// It is not safe for concurrent mutation; callers that fan work out across
// goroutines must collect results and write them back from one goroutine.
type World struct {
	nextID EntityID
	alive  map[EntityID]struct{}
	tables map[ComponentType]map[EntityID]Component
}

// NewWorld returns an empty World.
func NewWorld() *World {
	return &World{
		nextID: 1,
		alive:  make(map[EntityID]struct{}),
		tables: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity allocates a fresh handle.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = struct{}{}
	return id
}

// DestroyEntity releases id and drops every component attached to it.
// Destroying an unknown or already destroyed entity is a no-op.
func (w *World) DestroyEntity(id EntityID) {
	if _, ok := w.alive[id]; !ok {
		return
	}
	delete(w.alive, id)
	for _, table := range w.tables {
		delete(table, id)
	}
}

// Alive reports whether id is a live entity.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// Count returns the number of live entities.
func (w *World) Count() int { return len(w.alive) }

// Add attaches c to id, replacing any component of the same type.
// Adding to a dead entity is ignored.
func (w *World) Add(id EntityID, c Component) {
	if !w.Alive(id) {
		return
	}
	t := c.Type()
	table := w.tables[t]
	if table == nil {
		table = make(map[EntityID]Component)
		w.tables[t] = table
	}
	table[id] = c
}

// Get returns the component of type t on id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.tables[t][id]
}

// Remove detaches the component of type t from id, if any.
func (w *World) Remove(id EntityID, t ComponentType) {
	if table := w.tables[t]; table != nil {
		delete(table, id)
	}
}

// Has reports whether id carries a component of type t.
func (w *World) Has(id EntityID, t ComponentType) bool {
	_, ok := w.tables[t][id]
	return ok
}

// Query returns the live entities carrying every listed type, in ascending
// id order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Walk the smallest table and probe the others.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.tables[t]) < len(w.tables[smallest]) {
			smallest = t
		}
	}
	var result []EntityID
	for id := range w.tables[smallest] {
		if !w.Alive(id) {
			continue
		}
		match := true
		for _, t := range types {
			if t != smallest && !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
