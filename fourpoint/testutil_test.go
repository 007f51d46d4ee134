package fourpoint_test

import (
	"math"

	"github.com/phylokit/treemetric/fourpoint"
)

// treeEdge is an undirected weighted edge. Tests derive provably additive
// matrices by taking the all-pairs path metric of a tree; a tree metric
// satisfies the four-point condition on every quartet by construction.
type treeEdge struct {
	u, v int
	w    float64
}

// pathMetric computes the all-pairs shortest-path matrix of the graph via
// Floyd–Warshall. For a tree this is exactly the path metric over its
// vertices. Edge weights in tests are dyadic rationals so the sums are
// exact in float64 and tiny tolerances suffice.
func pathMetric(n int, edges []treeEdge) fourpoint.Rows {
	d := make(fourpoint.Rows, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = math.Inf(1)
			}
		}
	}
	for _, e := range edges {
		d[e.u][e.v] = e.w
		d[e.v][e.u] = e.w
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if alt := d[i][k] + d[k][j]; alt < d[i][j] {
					d[i][j] = alt
				}
			}
		}
	}

	return d
}

// starMetric is the path metric of a star: center is index 0, leaves
// 1..len(legs) attached with the given leg weights. D[i][j] = legs[i]+legs[j].
func starMetric(legs []float64) fourpoint.Rows {
	edges := make([]treeEdge, len(legs))
	for i, w := range legs {
		edges[i] = treeEdge{u: 0, v: i + 1, w: w}
	}

	return pathMetric(len(legs)+1, edges)
}

// uniformMetric returns an n×n matrix with every off-diagonal distance
// equal to v (the degenerate case where all three pairing sums coincide).
func uniformMetric(n int, v float64) fourpoint.Rows {
	d := make(fourpoint.Rows, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = v
			}
		}
	}

	return d
}

// separatedPairs is the two-well-separated-pairs 4×4 matrix: close pairs
// (0,1) and (2,3) at distance 2, everything across at 10. Its pairing
// sums are 4, 20, 20 — the two largest tie, so it is additive-consistent.
func separatedPairs() fourpoint.Rows {
	return fourpoint.Rows{
		{0, 2, 10, 10},
		{2, 0, 10, 10},
		{10, 10, 0, 2},
		{10, 10, 2, 0},
	}
}

// perturb returns a deep copy of d with both triangles of entry (i,j)
// shifted by delta, breaking additivity when delta exceeds the tolerance.
func perturb(d fourpoint.Rows, i, j int, delta float64) fourpoint.Rows {
	out := make(fourpoint.Rows, len(d))
	for r := range d {
		out[r] = append([]float64(nil), d[r]...)
	}
	out[i][j] += delta
	out[j][i] += delta

	return out
}

// permutations4 returns all 24 orderings of the given quartet.
func permutations4(q fourpoint.Quartet) []fourpoint.Quartet {
	var (
		out  []fourpoint.Quartet
		heap func(k int)
	)
	heap = func(k int) {
		if k == 1 {
			out = append(out, q)

			return
		}
		for i := 0; i < k; i++ {
			heap(k - 1)
			if k%2 == 0 {
				q[i], q[k-1] = q[k-1], q[i]
			} else {
				q[0], q[k-1] = q[k-1], q[0]
			}
		}
	}
	heap(len(q))

	return out
}
