package catalogue

import "git.fiblab.net/sim/transitcat/internal/geo"

// Catalogue is the domain store: stops, buses, the stop-to-bus
// inverted index, and the directed inter-stop distance table. It is
// populated once in a monotonic "grow" phase (stops, then distances,
// then buses) and is read-only once the first query runs. Grounded on
// original_source/transport-catalogue/transport_catalogue.h/.cpp.
type Catalogue struct {
	stops       []*Stop
	stopsByName map[string]*Stop

	buses       []*Bus
	busesByName map[string]*Bus

	distances *distanceTable
	stopBuses *stopBusesIndex
}

// New returns an empty Catalogue, ready for ingest.
func New() *Catalogue {
	return &Catalogue{
		stopsByName: make(map[string]*Stop),
		busesByName: make(map[string]*Bus),
		distances:   newDistanceTable(),
		stopBuses:   newStopBusesIndex(),
	}
}

// AddStop creates a Stop and indexes it by name. Well-formed input
// never re-adds a name; behaviour on a duplicate name is undefined.
func (c *Catalogue) AddStop(name string, coords geo.Coordinates) *Stop {
	stop := &Stop{Name: name, Coords: coords}
	c.stops = append(c.stops, stop)
	c.stopsByName[name] = stop
	return stop
}

// AddDistance records the directed road distance from the stop named
// fromName to the stop named toName. Both stops must already be
// present; callers are expected to have ingested all Stop entries
// before any AddDistance call, per spec.md's ingest ordering.
func (c *Catalogue) AddDistance(fromName, toName string, metres int) error {
	from, ok := c.stopsByName[fromName]
	if !ok {
		return &UnknownStopError{Name: fromName}
	}
	to, ok := c.stopsByName[toName]
	if !ok {
		return &UnknownStopError{Name: toName}
	}
	c.distances.Set(from, to, metres)
	return nil
}

// AddBus resolves every name in stopNames to an existing Stop,
// appends the Bus to the catalogue, and records it against every
// traversed stop in the stop-to-bus index.
func (c *Catalogue) AddBus(name string, stopNames []string, isRoundtrip bool) (*Bus, error) {
	stops := make([]*Stop, len(stopNames))
	for i, stopName := range stopNames {
		stop, ok := c.stopsByName[stopName]
		if !ok {
			return nil, &UnknownStopError{Name: stopName}
		}
		stops[i] = stop
	}
	bus := &Bus{Name: name, Stops: stops, IsRoundtrip: isRoundtrip}
	c.buses = append(c.buses, bus)
	c.busesByName[name] = bus
	for _, stop := range stops {
		c.stopBuses.Add(stop, name)
	}
	return bus, nil
}

// FindStop looks up a Stop by name.
func (c *Catalogue) FindStop(name string) (*Stop, bool) {
	stop, ok := c.stopsByName[name]
	return stop, ok
}

// FindBus looks up a Bus by name.
func (c *Catalogue) FindBus(name string) (*Bus, bool) {
	bus, ok := c.busesByName[name]
	return bus, ok
}

// GetDistance returns the directed road distance in metres from a to
// b: the stored (a, b) entry if present, else the stored (b, a) entry,
// else 0.
func (c *Catalogue) GetDistance(a, b *Stop) int {
	return c.distances.Get(a, b)
}

// AllBuses returns every Bus in insertion order.
func (c *Catalogue) AllBuses() []*Bus {
	return c.buses
}

// AllStops returns every Stop in insertion order.
func (c *Catalogue) AllStops() []*Stop {
	return c.stops
}

// BusNamesAt returns the lexicographically ordered bus names serving
// stop, and whether the stop exists at all. A stop that exists but is
// served by no bus reports (empty slice, true); an unknown stop
// reports (nil, false).
func (c *Catalogue) BusNamesAt(stop *Stop) ([]string, bool) {
	if known, ok := c.stopsByName[stop.Name]; !ok || known != stop {
		return nil, false
	}
	names, ok := c.stopBuses.Get(stop)
	if !ok {
		return []string{}, true
	}
	return names, true
}

// RoadRouteLength sums GetDistance across bus's full expanded
// traversal.
func (c *Catalogue) RoadRouteLength(bus *Bus) int {
	traversal := bus.ExpandedTraversal()
	total := 0
	for i := 1; i < len(traversal); i++ {
		total += c.GetDistance(traversal[i-1], traversal[i])
	}
	return total
}

// GeoRouteLength sums the great-circle distance across bus's full
// expanded traversal.
func (c *Catalogue) GeoRouteLength(bus *Bus) float64 {
	traversal := bus.ExpandedTraversal()
	total := 0.0
	for i := 1; i < len(traversal); i++ {
		total += geo.Distance(traversal[i-1].Coords, traversal[i].Coords)
	}
	return total
}

// Curvature is RoadRouteLength/GeoRouteLength. Undefined for lines of
// fewer than two stops; callers must not query those.
func (c *Catalogue) Curvature(bus *Bus) float64 {
	return float64(c.RoadRouteLength(bus)) / c.GeoRouteLength(bus)
}
