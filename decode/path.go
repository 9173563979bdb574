package decode

import (
	"errors"
	"math"

	"github.com/hangeul-nlp/postagger/lattice"
)

// ErrUnreachable signals that EOS was never relaxed to a finite distance,
// meaning the lattice wasn't actually connected from BOS to EOS. Build
// always produces a connected lattice, so seeing this is also an internal
// error, alongside ErrCycle.
var ErrUnreachable = errors.New("decode: no path from BOS to EOS")

// negInf stands in for an unreached vertex. Kept well above -MaxFloat64
// so that negInf + any real edge weight can't overflow back around.
const negInf = -1e18

// longestPath finds the highest-scoring BOS->EOS walk through edges using
// Bellman-Ford-style relaxation rather than Dijkstra, since edge weights
// are log-probabilities and can be negative. Ties are broken by whichever
// predecessor relaxed a node first: relaxation only replaces a distance on
// strict improvement, and edges are walked in the lattice's own
// (From.Begin, To.End) order every pass, so the earliest candidate for a
// given distance is the one that sticks.
func longestPath(edges []lattice.Edge, bos, eos lattice.Node, w func(lattice.Edge) float64) ([]lattice.Node, float64, error) {
	vertices := map[lattice.Node]struct{}{bos: {}, eos: {}}
	for _, e := range edges {
		vertices[e.From] = struct{}{}
		vertices[e.To] = struct{}{}
	}

	dist := make(map[lattice.Node]float64, len(vertices))
	prev := make(map[lattice.Node]lattice.Node, len(vertices))
	for v := range vertices {
		dist[v] = negInf
	}
	dist[bos] = 0

	changed := true
	for i := 0; i < len(vertices) && changed; i++ {
		changed = false
		for _, e := range edges {
			if dist[e.From] == negInf {
				continue
			}
			if cand := dist[e.From] + w(e); cand > dist[e.To] {
				dist[e.To] = cand
				prev[e.To] = e.From
				changed = true
			}
		}
	}
	if changed {
		return nil, 0, ErrCycle
	}
	if math.IsInf(dist[eos], 0) || dist[eos] == negInf {
		return nil, 0, ErrUnreachable
	}

	chain := []lattice.Node{eos}
	for node := eos; node != bos; {
		p, ok := prev[node]
		if !ok {
			return nil, 0, ErrUnreachable
		}
		chain = append(chain, p)
		node = p
	}
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}
	return chain, dist[eos], nil
}
