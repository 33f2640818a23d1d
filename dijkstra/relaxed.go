package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/fuelroute/core"
)

// Relaxed returns the cheapest source→sink route of g under
// ObjectiveWeight(w1, w2), with the fuel limits ignored, and its weight.
//
// Every fuel-feasible route is also a candidate here, so the weight bounds the
// fuel-constrained optimum from below; when the returned route happens to be
// fuel-feasible it is that optimum.
func Relaxed(g *core.Graph, source, sink string, w1, w2 float64) ([]string, float64, error) {
	dist, prev, err := Dijkstra(g, Source(source), WithReturnPath(), WithWeight(ObjectiveWeight(w1, w2)))
	if err != nil {
		return nil, 0, err
	}
	path, err := PathTo(prev, source, sink)
	if err != nil {
		return nil, 0, fmt.Errorf("dijkstra: relaxed route: %w", err)
	}

	return path, dist[sink], nil
}
