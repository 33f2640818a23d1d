package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/fuelroute/core"
)

// Dijkstra computes the cheapest distance from Options.Source to every vertex
// of g under Options.Weight.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath is set (nil otherwise);
//     prev[v] == "" for the source and for unreachable v.
//   - err:  ErrEmptySource, ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight.
//
// Every arc is priced once up front, so a bad price fails before the search.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	weights, err := price(g, cfg.Weight)
	if err != nil {
		return nil, nil, err
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		weights: weights,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the path source→…→target from a predecessor map.
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	if _, ok := prev[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}

	path := []string{target}
	for cur := target; cur != source; {
		p := prev[cur]
		if p == "" || len(path) > len(prev) {
			return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, source, target)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// price evaluates fn on every edge, keyed by edge ID.
func price(g *core.Graph, fn WeightFn) (map[string]float64, error) {
	edges := g.Edges()
	heads := make(map[string]core.Vertex, g.VertexCount())
	for _, v := range g.VertexList() {
		heads[v.ID] = v
	}

	weights := make(map[string]float64, len(edges))
	for _, e := range edges {
		w := fn(e, heads[e.To])
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, e.From, e.To, w)
		}
		weights[e.ID] = w
	}

	return weights, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	weights map[string]float64 // edge ID → price
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets every distance to +Inf and pushes the source at zero.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unvisited vertex until the heap drains or the
// frontier passes MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distances of u's heads. Ties keep the first predecessor
// in Position order.
func (r *runner) relax(u string) error {
	out, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range out {
		nd := r.dist[u] + r.weights[e.ID]
		if nd > r.options.MaxDistance || nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	}

	return nil
}

// nodeItem is a vertex and its tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem with lazy decrease-key: stale entries are
// skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
