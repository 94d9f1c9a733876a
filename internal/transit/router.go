package transit

import (
	"git.fiblab.net/sim/transitcat/internal/catalogue"
	"git.fiblab.net/sim/transitcat/internal/graph"
)

type buildState int

const (
	stateUnconfigured buildState = iota
	stateConfigured
	stateBuilt
)

// TransportRouter is the stateful TransitGraph/Router pair layered
// over a Catalogue. Grounded on
// original_source/transport-catalogue/transport_router.h/.cpp.
type TransportRouter struct {
	cat      *catalogue.Catalogue
	settings Settings
	state    buildState

	graph       *graph.Graph
	router      *graph.Router
	annotations map[graph.EdgeID]ItineraryItem
	stopIndex   map[*catalogue.Stop]int
}

// New returns a TransportRouter over cat, in the Unconfigured state.
func New(cat *catalogue.Catalogue) *TransportRouter {
	return &TransportRouter{cat: cat}
}

// SetRoutingSettings validates and stores settings. It is accepted in
// the Unconfigured and Configured states; once the graph has been
// Built it returns ErrAlreadyBuilt.
func (tr *TransportRouter) SetRoutingSettings(settings Settings) error {
	if tr.state == stateBuilt {
		return ErrAlreadyBuilt
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	tr.settings = settings
	tr.state = stateConfigured
	return nil
}

// BuildRoute returns the fastest itinerary from from to to, or false
// if unreachable. Calling this before any SetRoutingSettings call is
// a precondition violation: it panics, mirroring the teacher's
// practice of panicking on internal invariant violations rather than
// growing an error path for a call that a well-formed CLI driver
// never makes.
func (tr *TransportRouter) BuildRoute(from, to *catalogue.Stop) (*RouteInfo, bool) {
	if tr.state == stateUnconfigured {
		panic("transit: BuildRoute called before SetRoutingSettings")
	}
	if tr.state == stateConfigured {
		tr.graph, tr.annotations, tr.stopIndex = buildTransitGraph(tr.cat, tr.settings)
		tr.router = graph.NewRouter(tr.graph)
		tr.state = stateBuilt
	}

	if from == to {
		return &RouteInfo{TotalTime: 0, Items: []ItineraryItem{}}, true
	}

	fromVertex := idleVertex(tr.stopIndex[from])
	toVertex := idleVertex(tr.stopIndex[to])

	result, ok := tr.router.BuildRoute(fromVertex, toVertex)
	if !ok {
		return nil, false
	}

	items := make([]ItineraryItem, 0, len(result.Edges))
	for _, edgeID := range result.Edges {
		items = append(items, tr.annotations[edgeID])
	}

	return &RouteInfo{TotalTime: result.Weight, Items: items}, true
}
