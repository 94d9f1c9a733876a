package graph_test

import (
	"container/heap"
	"testing"

	"git.fiblab.net/sim/transitcat/internal/graph"
	"github.com/stretchr/testify/assert"
)

func TestAddEdgeAssignsDenseIDs(t *testing.T) {
	g := graph.NewGraph(3)
	e0 := g.AddEdge(0, 1, 1.0)
	e1 := g.AddEdge(1, 2, 2.0)
	assert.Equal(t, graph.EdgeID(0), e0)
	assert.Equal(t, graph.EdgeID(1), e1)

	from, to, w := g.Edge(e1)
	assert.Equal(t, graph.VertexID(1), from)
	assert.Equal(t, graph.VertexID(2), to)
	assert.Equal(t, 2.0, w)
}

func TestIncidentEdgesPreservesInsertionOrder(t *testing.T) {
	g := graph.NewGraph(2)
	first := g.AddEdge(0, 1, 5.0)
	second := g.AddEdge(0, 1, 1.0)
	assert.Equal(t, []graph.EdgeID{first, second}, g.IncidentEdges(0))
}

func TestRouterShortestPath(t *testing.T) {
	g := graph.NewGraph(4)
	e12 := g.AddEdge(0, 1, 1)
	e23 := g.AddEdge(1, 2, 1)
	e34 := g.AddEdge(2, 3, 1)

	r := graph.NewRouter(g)
	result, ok := r.BuildRoute(0, 3)
	assert.True(t, ok)
	assert.Equal(t, 3.0, result.Weight)
	assert.Equal(t, []graph.EdgeID{e12, e23, e34}, result.Edges)
}

func TestRouterPicksCheaperAlternative(t *testing.T) {
	g := graph.NewGraph(3)
	g.AddEdge(0, 1, 10)
	direct := g.AddEdge(0, 2, 2)
	viaOne := g.AddEdge(1, 2, 1)
	_ = viaOne

	r := graph.NewRouter(g)
	result, ok := r.BuildRoute(0, 2)
	assert.True(t, ok)
	assert.Equal(t, 2.0, result.Weight)
	assert.Equal(t, []graph.EdgeID{direct}, result.Edges)
}

func TestRouterUnreachable(t *testing.T) {
	g := graph.NewGraph(2)
	r := graph.NewRouter(g)
	result, ok := r.BuildRoute(0, 1)
	assert.False(t, ok)
	assert.Equal(t, graph.PathResult{}, result)
}

func TestRouterSameVertex(t *testing.T) {
	g := graph.NewGraph(2)
	r := graph.NewRouter(g)
	result, ok := r.BuildRoute(1, 1)
	assert.True(t, ok)
	assert.Equal(t, 0.0, result.Weight)
	assert.Empty(t, result.Edges)
}

func TestPriorityQueueOrdersByPriority(t *testing.T) {
	pq := make(graph.PriorityQueue, 0)
	heap.Push(&pq, &graph.Item{Value: 4, Priority: 4})
	heap.Push(&pq, &graph.Item{Value: 2, Priority: 2})
	heap.Push(&pq, &graph.Item{Value: 1, Priority: 1})
	heap.Push(&pq, &graph.Item{Value: 3, Priority: 3})

	got := heap.Pop(&pq).(*graph.Item)
	assert.Equal(t, graph.VertexID(1), got.Value)
	got = heap.Pop(&pq).(*graph.Item)
	assert.Equal(t, graph.VertexID(2), got.Value)
}
