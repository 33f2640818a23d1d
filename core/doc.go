// Package core provides the thread-safe in-memory network that the rest of
// the module plans routes on.
//
// A Graph is directed and ordered: every vertex receives a Position equal to
// its insertion index, and vertex listings follow that order rather than ID
// order. Each vertex carries a Refuel flag (a refueling point resets the tank
// to full capacity) and each edge carries the integer Fuel it consumes and
// its travel Cost.
//
// Locking follows two separate sync.RWMutex guards: muVert for the vertex
// catalog and muEdgeAdj for edges plus adjacency, so readers of a finished
// network never contend with each other.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, opts ...VertexOption) error   // O(1)
//	HasVertex(id string) bool                          // O(1)
//	Vertex(id string) (Vertex, error)                  // O(1)
//	SetRefuel(id string, refuel bool) error            // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, fuel int64, cost float64) (edgeID string, err error) // O(1)
//	HasEdge(from, to string) bool                      // O(1)
//	Edge(from, to string) (Edge, error)                // O(1)
//
//	// Query
//	Vertices() []string        // position order
//	VertexList() []Vertex      // position order, copies
//	Edges() []Edge             // (position(from), position(to)) order
//	Neighbors(id) ([]Edge, error)     // outgoing, by position(to)
//	Predecessors(id) ([]Edge, error)  // incoming, by position(from)
//	Stats() *GraphStats
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – second edge between the same ordered pair
//	ErrBadFuel             – negative fuel
//	ErrBadCost             – negative, NaN or infinite cost
package core
