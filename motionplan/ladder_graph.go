package motionplan

import (
	"github.com/google/uuid"
)

// Edge is a weighted transition from a vertex in one rung to vertex Dst in the following rung.
type Edge struct {
	Cost float64
	Dst  uint32
}

// EdgeList is the outgoing edge set of a single source vertex, ordered by increasing Dst.
type EdgeList []Edge

// Rung is one layer of a LadderGraph: the set of joint-space IK solutions for a single Cartesian
// waypoint, plus the timing constraint governing arrival at it and the edges leaving each of its
// vertices toward the next rung. Vertex k's joint vector occupies Vertices[k*dof : (k+1)*dof].
type Rung struct {
	ID       uuid.UUID
	Timing   Timing
	Vertices []float64
	Edges    []EdgeList
}

// NumVertices returns the number of joint-space vertices held by this rung.
func (r *Rung) NumVertices(dof int) int {
	if dof == 0 {
		return 0
	}
	return len(r.Vertices) / dof
}

// LadderGraph is a layered DAG: an ordered sequence of rungs sharing a fixed joint
// dimensionality. Edges only ever go from a rung to its immediate successor. It is a flat,
// array-backed container on purpose: vertices are indices into a rung's Vertices slice, not
// heap-allocated nodes with pointer edges.
type LadderGraph struct {
	dof   int
	rungs []*Rung
}

// NewLadderGraph constructs an empty graph fixed at dof joints. dof must be >= 1.
func NewLadderGraph(dof int) *LadderGraph {
	return &LadderGraph{dof: dof}
}

// Allocate reserves n rungs, each an empty placeholder (id assigned, zero vertices) ready to be
// written by AssignRung. It does not assign joint-space content.
func (g *LadderGraph) Allocate(n int) {
	grown := make([]*Rung, n)
	for i := range grown {
		grown[i] = &Rung{ID: uuid.New()}
	}
	g.rungs = grown
}

// Size returns the current rung count.
func (g *LadderGraph) Size() int {
	return len(g.rungs)
}

// DoF returns the fixed joint dimensionality of every rung in this graph.
func (g *LadderGraph) DoF() int {
	return g.dof
}

// IsFirst reports whether i is the first rung's index.
func (g *LadderGraph) IsFirst(i int) bool {
	return i == 0
}

// IsLast reports whether i is the last rung's index.
func (g *LadderGraph) IsLast(i int) bool {
	return i == len(g.rungs)-1
}

func (g *LadderGraph) checkIndex(op string, i int) error {
	if i < 0 || i >= len(g.rungs) {
		return newInvariantError(op, "rung index out of range")
	}
	return nil
}

// AssignRung writes rung i from a sequence of per-vertex joint solutions, each of length DoF().
// The rung's vertex buffer becomes the concatenation of solutions in input order, and its edge
// table is (re)initialized empty with one entry per vertex.
func (g *LadderGraph) AssignRung(i int, id uuid.UUID, timing Timing, solutions [][]float64) error {
	if err := g.checkIndex("AssignRung", i); err != nil {
		return err
	}
	vertices := make([]float64, 0, len(solutions)*g.dof)
	for _, sol := range solutions {
		if len(sol) != g.dof {
			return newInvariantError("AssignRung", "solution length does not match graph dof")
		}
		vertices = append(vertices, sol...)
	}
	g.rungs[i] = &Rung{
		ID:       id,
		Timing:   timing,
		Vertices: vertices,
		Edges:    make([]EdgeList, len(solutions)),
	}
	return nil
}

// InsertRung inserts an empty rung at position i, shifting rungs at and after i one to the
// right. The edges of rung i-1 (if any) now point at stale vertex indices in what used to be
// rung i; restoring that consistency is the caller's responsibility (Planner enforces it within
// the same public edit operation).
func (g *LadderGraph) InsertRung(i int) error {
	if i < 0 || i > len(g.rungs) {
		return newInvariantError("InsertRung", "insertion index out of range")
	}
	g.rungs = append(g.rungs, nil)
	copy(g.rungs[i+1:], g.rungs[i:])
	g.rungs[i] = &Rung{ID: uuid.New()}
	return nil
}

// RemoveRung erases rung i, shifting later rungs left by one. As with InsertRung, the edges of
// rung i-1 become stale and recomputing them is the caller's responsibility.
func (g *LadderGraph) RemoveRung(i int) error {
	if err := g.checkIndex("RemoveRung", i); err != nil {
		return err
	}
	copy(g.rungs[i:], g.rungs[i+1:])
	g.rungs = g.rungs[:len(g.rungs)-1]
	return nil
}

// ClearVertices zeroes rung i's vertex buffer, leaving its id, timing, and edge table untouched.
func (g *LadderGraph) ClearVertices(i int) error {
	if err := g.checkIndex("ClearVertices", i); err != nil {
		return err
	}
	g.rungs[i].Vertices = nil
	return nil
}

// ClearEdges zeroes rung i's edge table, leaving everything else untouched.
func (g *LadderGraph) ClearEdges(i int) error {
	if err := g.checkIndex("ClearEdges", i); err != nil {
		return err
	}
	g.rungs[i].Edges = nil
	return nil
}

// AssignEdges sets the edge table of rung i. edges must have one entry per vertex currently in
// rung i, and every edge's Dst must be a valid vertex index in rung i+1 (or, if i is the last
// rung, edges must be empty — a last rung never has outgoing edges).
func (g *LadderGraph) AssignEdges(i int, edges []EdgeList) error {
	if err := g.checkIndex("AssignEdges", i); err != nil {
		return err
	}
	rung := g.rungs[i]
	if len(edges) != rung.NumVertices(g.dof) {
		return newInvariantError("AssignEdges", "edge table length does not match rung vertex count")
	}
	if g.IsLast(i) {
		for _, el := range edges {
			if len(el) != 0 {
				return newInvariantError("AssignEdges", "last rung may not have outgoing edges")
			}
		}
	} else {
		nextCount := g.rungs[i+1].NumVertices(g.dof)
		for _, el := range edges {
			for _, e := range el {
				if int(e.Dst) >= nextCount {
					return newInvariantError("AssignEdges", "edge destination out of range for next rung")
				}
			}
		}
	}
	rung.Edges = edges
	return nil
}

// GetRung returns a read-only view of rung i. Callers must not mutate the returned Rung's
// slices; the graph retains exclusive ownership of them.
func (g *LadderGraph) GetRung(i int) (*Rung, error) {
	if err := g.checkIndex("GetRung", i); err != nil {
		return nil, err
	}
	return g.rungs[i], nil
}

// Vertex returns a read-only view of vertex k's joint vector in rung i.
func (g *LadderGraph) Vertex(i, k int) ([]float64, error) {
	if err := g.checkIndex("Vertex", i); err != nil {
		return nil, err
	}
	rung := g.rungs[i]
	if k < 0 || k >= rung.NumVertices(g.dof) {
		return nil, newInvariantError("Vertex", "vertex index out of range")
	}
	return rung.Vertices[k*g.dof : (k+1)*g.dof], nil
}

// IndexOf linearly scans for the rung carrying id. Edit operations are infrequent relative to
// construction, so a linear scan is an acceptable trade against maintaining a side index.
func (g *LadderGraph) IndexOf(id uuid.UUID) (int, bool) {
	if id == uuid.Nil {
		return 0, false
	}
	for i, r := range g.rungs {
		if r != nil && r.ID == id {
			return i, true
		}
	}
	return 0, false
}
