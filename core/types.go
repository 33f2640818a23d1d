// This file declares Vertex, Edge, Graph, GraphOption, VertexOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadFuel indicates a negative fuel consumption.
	ErrBadFuel = errors.New("core: fuel must be non-negative")

	// ErrBadCost indicates a negative or non-finite travel cost.
	ErrBadCost = errors.New("core: cost must be finite and non-negative")
)

// Vertex represents a node of the network.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Position is the insertion index; it defines the forward order of the chain.
	Position int

	// Refuel marks a refueling point.
	Refuel bool
}

// Edge represents a directed arc From→To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Fuel is the amount of fuel consumed traversing the arc.
	Fuel int64

	// Cost is the travel cost of the arc.
	Cost float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity preallocates room for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capHint = n
		}
	}
}

// VertexOption configures a vertex when it is added.
type VertexOption func(*Vertex)

// WithRefuel sets the refueling flag of a new vertex.
func WithRefuel(refuel bool) VertexOption {
	return func(v *Vertex) { v.Refuel = refuel }
}

// Graph is the directed, position-ordered network.
//
// muVert protects vertices and order; muEdgeAdj protects edges, out and in.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order
	muEdgeAdj sync.RWMutex // guards edges, out, in

	capHint int

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	order      []string           // vertex IDs by Position
	edges      map[string]*Edge   // edge ID → Edge

	// out[from][to] = edgeID; in[to][from] = edgeID
	out map[string]map[string]string
	in  map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (plus the optional capacity hint).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	g.vertices = make(map[string]*Vertex, g.capHint)
	g.order = make([]string, 0, g.capHint)
	g.edges = make(map[string]*Edge)
	g.out = make(map[string]map[string]string, g.capHint)
	g.in = make(map[string]map[string]string, g.capHint)

	return g
}
