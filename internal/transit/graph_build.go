package transit

import (
	"git.fiblab.net/sim/transitcat/internal/catalogue"
	"git.fiblab.net/sim/transitcat/internal/graph"
)

// idleVertex and boardedVertex map a stop's catalogue position onto
// the two-layer vertex numbering scheme from
// original_source/transport-catalogue/transport_router.h: vertex 2i is
// "arrived/idle", vertex 2i+1 is "boarded".
func idleVertex(stopIndex int) graph.VertexID    { return graph.VertexID(2 * stopIndex) }
func boardedVertex(stopIndex int) graph.VertexID { return graph.VertexID(2*stopIndex + 1) }

// buildTransitGraph materialises the TransitGraph for cat under
// settings: one wait edge per stop, and one bus-span edge for every
// pair of distinct-stop positions along every bus's expanded
// traversal. It returns the graph alongside the per-edge annotation
// table consumed during itinerary reconstruction.
func buildTransitGraph(cat *catalogue.Catalogue, settings Settings) (*graph.Graph, map[graph.EdgeID]ItineraryItem, map[*catalogue.Stop]int) {
	stops := cat.AllStops()
	stopIndex := make(map[*catalogue.Stop]int, len(stops))
	for i, stop := range stops {
		stopIndex[stop] = i
	}

	g := graph.NewGraph(2 * len(stops))
	annotations := make(map[graph.EdgeID]ItineraryItem)

	for i, stop := range stops {
		edgeID := g.AddEdge(idleVertex(i), boardedVertex(i), settings.BusWaitTime)
		annotations[edgeID] = WaitItem{StopName: stop.Name, Time: settings.BusWaitTime}
	}

	for _, bus := range cat.AllBuses() {
		addBusSpanEdges(g, annotations, cat, stopIndex, bus, settings)
	}

	return g, annotations, stopIndex
}

// addBusSpanEdges emits one edge per (from_pos, to_pos) pair along
// bus's expanded traversal with from_pos < to_pos and distinct stops
// at those positions, per spec.md §4.5. The cumulative distance
// accumulator advances for every traversal step regardless of whether
// that step's endpoints coincide; only edge emission is gated on the
// (from_pos, to_pos) endpoints differing — a deliberate divergence
// from original_source/transport_router.cpp, whose accumulator skips
// a step's distance contribution entirely when its endpoints
// coincide.
func addBusSpanEdges(
	g *graph.Graph,
	annotations map[graph.EdgeID]ItineraryItem,
	cat *catalogue.Catalogue,
	stopIndex map[*catalogue.Stop]int,
	bus *catalogue.Bus,
	settings Settings,
) {
	seq := bus.ExpandedTraversal()
	if len(seq) < 2 {
		return
	}

	cumulative := make([]int, len(seq))
	for k := 1; k < len(seq); k++ {
		cumulative[k] = cumulative[k-1] + cat.GetDistance(seq[k-1], seq[k])
	}

	for from := 0; from < len(seq); from++ {
		for to := from + 1; to < len(seq); to++ {
			if seq[from] == seq[to] {
				continue
			}
			metres := cumulative[to] - cumulative[from]
			minutes := float64(metres) / 1000 / settings.BusVelocity * 60

			fromVertex := boardedVertex(stopIndex[seq[from]])
			toVertex := idleVertex(stopIndex[seq[to]])
			edgeID := g.AddEdge(fromVertex, toVertex, minutes)
			annotations[edgeID] = BusItem{
				BusName:   bus.Name,
				SpanCount: to - from,
				Time:      minutes,
			}
		}
	}
}
