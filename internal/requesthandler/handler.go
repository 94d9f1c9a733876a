// Package requesthandler is a thin façade presenting bus stats,
// stop-membership lookup, map rendering, and routing to the outer
// request layer. Grounded on
// original_source/transport-catalogue/request_handler.h/.cpp.
package requesthandler

import (
	"git.fiblab.net/sim/transitcat/internal/catalogue"
	"git.fiblab.net/sim/transitcat/internal/maprender"
	"git.fiblab.net/sim/transitcat/internal/svg"
	"git.fiblab.net/sim/transitcat/internal/transit"
)

// BusStat is the summary returned for a Bus query.
type BusStat struct {
	Curvature       float64
	RouteLength     int
	StopCount       int
	UniqueStopCount int
}

// Handler composes a Catalogue, a MapRenderer, and a TransportRouter
// behind the four query operations spec.md §4.8 defines.
type Handler struct {
	cat      *catalogue.Catalogue
	renderer *maprender.Renderer
	router   *transit.TransportRouter
}

// New returns a Handler over cat, renderer, and router.
func New(cat *catalogue.Catalogue, renderer *maprender.Renderer, router *transit.TransportRouter) *Handler {
	return &Handler{cat: cat, renderer: renderer, router: router}
}

// BusStat returns summary statistics for the named bus, or false if
// no such bus exists.
func (h *Handler) BusStat(name string) (BusStat, bool) {
	bus, ok := h.cat.FindBus(name)
	if !ok {
		return BusStat{}, false
	}
	stat := BusStat{
		RouteLength:     h.cat.RoadRouteLength(bus),
		StopCount:       bus.StopCount(),
		UniqueStopCount: bus.UniqueStopCount(),
	}
	// Curvature is undefined for a line of fewer than two stops
	// (GeoRouteLength is 0); leave it zero rather than dividing by it.
	if stat.StopCount >= 2 {
		stat.Curvature = h.cat.Curvature(bus)
	}
	return stat, true
}

// BusesAtStop returns the lexicographically ordered bus names serving
// the named stop, and whether the stop exists at all.
func (h *Handler) BusesAtStop(name string) ([]string, bool) {
	stop, ok := h.cat.FindStop(name)
	if !ok {
		return nil, false
	}
	return h.cat.BusNamesAt(stop)
}

// RenderMap renders the full bus network as an SVG document.
func (h *Handler) RenderMap() *svg.Document {
	return h.renderer.RenderMap(h.cat.AllBuses())
}

// BuildRoute returns the fastest itinerary between two named stops.
// Both "unknown stop" and "unreachable" surface as (nil, false); spec.md
// §4.8 leaves disambiguating them to the outer layer, which this
// reference implementation does not do.
func (h *Handler) BuildRoute(fromName, toName string) (*transit.RouteInfo, bool) {
	from, ok := h.cat.FindStop(fromName)
	if !ok {
		return nil, false
	}
	to, ok := h.cat.FindStop(toName)
	if !ok {
		return nil, false
	}
	return h.router.BuildRoute(from, to)
}
