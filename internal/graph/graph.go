// Package graph implements a directed weighted multigraph with
// edge-indexed adjacency, and a non-negative-weight shortest-path
// router over it. Grounded on
// original_source/transport-catalogue/graph.h's DirectedWeightedGraph
// and on the teacher repo's router/algo/graph.go SearchGraph, adapted
// from a generic-attribute time-dependent A* graph down to a plain
// edge-id multigraph (no node/edge attributes, no time slices).
package graph

// EdgeID is a dense, zero-based, stable identifier assigned in
// insertion order by AddEdge.
type EdgeID int

// VertexID is a dense, zero-based vertex identifier fixed at
// construction time by NewGraph.
type VertexID int

type edge struct {
	from, to VertexID
	weight   float64
}

// Graph is a directed weighted multigraph. Vertex count is fixed at
// construction; edges are append-only and never deleted, so edge ids
// remain valid for the graph's lifetime.
type Graph struct {
	vertexCount int
	edges       []edge
	incident    [][]EdgeID // incident[v] = outgoing edge ids from v, in insertion order
}

// NewGraph returns a graph with exactly vertexCount vertices and no
// edges.
func NewGraph(vertexCount int) *Graph {
	return &Graph{
		vertexCount: vertexCount,
		edges:       make([]edge, 0),
		incident:    make([][]EdgeID, vertexCount),
	}
}

// VertexCount reports the number of vertices fixed at construction.
func (g *Graph) VertexCount() int {
	return g.vertexCount
}

// AddEdge appends a new directed edge from -> to with the given
// weight, returning its dense edge id. Multiple edges between the same
// ordered pair are permitted and kept distinct.
func (g *Graph) AddEdge(from, to VertexID, weight float64) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, edge{from: from, to: to, weight: weight})
	g.incident[from] = append(g.incident[from], id)
	return id
}

// Edge returns the endpoints and weight of edge id.
func (g *Graph) Edge(id EdgeID) (from, to VertexID, weight float64) {
	e := g.edges[id]
	return e.from, e.to, e.weight
}

// IncidentEdges returns the outgoing edge ids of vertex v, in the
// order they were added.
func (g *Graph) IncidentEdges(v VertexID) []EdgeID {
	return g.incident[v]
}
