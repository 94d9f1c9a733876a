package catalogue

import "sort"

// stopBusesIndex maps a Stop to the set of bus names that traverse it.
// Reads are returned lexicographically sorted, mirroring the
// std::set<string_view> used by
// original_source/transport-catalogue/transport_catalogue.h's
// buses_of_stop_.
type stopBusesIndex struct {
	busNames map[*Stop]map[string]struct{}
}

func newStopBusesIndex() *stopBusesIndex {
	return &stopBusesIndex{busNames: make(map[*Stop]map[string]struct{})}
}

func (idx *stopBusesIndex) Add(stop *Stop, busName string) {
	set, ok := idx.busNames[stop]
	if !ok {
		set = make(map[string]struct{})
		idx.busNames[stop] = set
	}
	set[busName] = struct{}{}
}

// Get returns the lexicographically ordered bus names traversing stop,
// and whether the stop is present in the index at all. A stop enters
// the index only when a bus traversing it is added, so a stop that
// serves no bus reports (nil, false).
func (idx *stopBusesIndex) Get(stop *Stop) ([]string, bool) {
	set, ok := idx.busNames[stop]
	if !ok {
		return nil, false
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, true
}
