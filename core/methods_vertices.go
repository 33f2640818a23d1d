// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex catalog operations (add, query, refuel flag, ordered listings).
// Policy:
//   - Positions are assigned once, on insertion, and never change.
//   - Listings are returned in Position order and are copies (callers may keep them).

package core

// AddVertex inserts a new vertex with the given ID at the next Position.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent) and options are ignored.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}

	v := &Vertex{ID: id, Position: len(g.order)}
	for _, opt := range opts {
		opt(v)
	}
	v.ID, v.Position = id, len(g.order) // options may not rename or reorder
	g.vertices[id] = v
	g.order = append(g.order, id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns a copy of the vertex with the given ID.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// SetRefuel updates the refueling flag of an existing vertex.
// Complexity: O(1).
func (g *Graph) SetRefuel(id string, refuel bool) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Refuel = refuel

	return nil
}

// Vertices returns all vertex IDs in Position order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, len(g.order))
	copy(ids, g.order)

	return ids
}

// VertexList returns copies of all vertices in Position order.
// Complexity: O(V).
func (g *Graph) VertexList() []Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]Vertex, len(g.order))
	for i, id := range g.order {
		out[i] = *g.vertices[id]
	}

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}

// Degree returns the number of incoming and outgoing edges of id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (in, out int, err error) {
	if !g.HasVertex(id) {
		return 0, 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.in[id]), len(g.out[id]), nil
}
