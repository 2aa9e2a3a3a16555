package motionplan

import (
	"container/heap"
	"math"
)

// Search runs Dijkstra's algorithm specialized for a layered DAG: every vertex of rung 0 is a
// source at distance 0, edges only ever go from rung r to rung r+1, so a single forward sweep
// suffices — the priority queue is kept anyway to keep the interface uniform and to tolerate
// future non-monotonic extensions without an API change.
//
// It returns the minimum cost over the last rung's vertices and, for each rung in order, the
// index of the vertex the optimal path passes through. If the graph has no rungs, cost is 0 and
// path is empty. If there is no source-to-sink path, ErrNoPath is returned.
func Search(g *LadderGraph) (float64, []int, error) {
	n := g.Size()
	if n == 0 {
		return 0, nil, nil
	}

	dist := make([][]float64, n)
	pred := make([][]int, n)
	for r := 0; r < n; r++ {
		count := g.rungs[r].NumVertices(g.dof)
		dist[r] = make([]float64, count)
		pred[r] = make([]int, count)
		for k := range dist[r] {
			dist[r][k] = math.Inf(1)
			pred[r][k] = -1
		}
	}

	pq := make(vertexPQ, 0, len(dist[0]))
	for k := range dist[0] {
		dist[0][k] = 0
		heap.Push(&pq, &vertexItem{rung: 0, vertex: k, dist: 0})
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*vertexItem)
		r, k := item.rung, item.vertex
		if item.dist > dist[r][k] {
			continue // stale entry; a better one for (r,k) was already popped
		}
		if g.IsLast(r) {
			continue
		}
		rung := g.rungs[r]
		for _, edge := range rung.Edges[k] {
			j := int(edge.Dst)
			cand := dist[r][k] + edge.Cost
			switch {
			case cand < dist[r+1][j]:
				dist[r+1][j] = cand
				pred[r+1][j] = k
				heap.Push(&pq, &vertexItem{rung: r + 1, vertex: j, dist: cand})
			case cand == dist[r+1][j] && k < pred[r+1][j]:
				// Equal-cost alternative from a lower-indexed source: the distance is
				// unchanged but the predecessor tie-break prefers it.
				pred[r+1][j] = k
			}
		}
	}

	last := n - 1
	minCost := math.Inf(1)
	argmin := -1
	for k, d := range dist[last] {
		if d < minCost || (d == minCost && k < argmin) {
			minCost = d
			argmin = k
		}
	}
	if math.IsInf(minCost, 1) {
		return minCost, nil, ErrNoPath
	}

	path := make([]int, n)
	idx := argmin
	for r := last; r >= 0; r-- {
		path[r] = idx
		if r > 0 {
			idx = pred[r][idx]
		}
	}
	return minCost, path, nil
}

// vertexItem is a priority-queue entry: a candidate shortest distance to (rung, vertex).
type vertexItem struct {
	rung, vertex int
	dist         float64
}

// vertexPQ implements heap.Interface ordered by smallest dist first, with ties broken by lower
// vertex index then lower rung index, so that relaxation order — and therefore the path chosen
// among equal-cost alternatives — is deterministic.
type vertexPQ []*vertexItem

func (pq vertexPQ) Len() int { return len(pq) }

func (pq vertexPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	if pq[i].vertex != pq[j].vertex {
		return pq[i].vertex < pq[j].vertex
	}
	return pq[i].rung < pq[j].rung
}

func (pq vertexPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *vertexPQ) Push(x interface{}) {
	*pq = append(*pq, x.(*vertexItem))
}

func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
