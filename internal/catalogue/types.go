// Package catalogue is the domain data store: stops, buses, the
// stop-to-bus inverted index, and the directed inter-stop distance
// table with symmetric fallback. Grounded on
// original_source/transport-catalogue/domain.h and
// transport_catalogue.h/.cpp.
package catalogue

import "git.fiblab.net/sim/transitcat/internal/geo"

// Stop is an immutable record once inserted into a Catalogue. Identity
// is by stable pointer: the Catalogue never moves or deletes a Stop
// after AddStop returns.
type Stop struct {
	Name   string
	Coords geo.Coordinates
}

// Bus is a named, ordered bus line. Stops holds the one-way sequence
// as declared at ingest time; for a non-roundtrip line the full
// there-and-back traversal is synthesized on demand by
// ExpandedTraversal, never stored.
type Bus struct {
	Name        string
	Stops       []*Stop
	IsRoundtrip bool
}

// ExpandedTraversal returns the full in-order sequence of stop
// pointers a rider passes: Stops itself for a roundtrip line, or Stops
// followed by its reverse minus the shared terminus for a
// there-and-back line.
func (b *Bus) ExpandedTraversal() []*Stop {
	if b.IsRoundtrip || len(b.Stops) == 0 {
		return b.Stops
	}
	traversal := make([]*Stop, 0, 2*len(b.Stops)-1)
	traversal = append(traversal, b.Stops...)
	for i := len(b.Stops) - 2; i >= 0; i-- {
		traversal = append(traversal, b.Stops[i])
	}
	return traversal
}

// StopCount is the length of the stored sequence for a roundtrip line,
// or 2*len(Stops)-1 for a there-and-back line.
func (b *Bus) StopCount() int {
	if len(b.Stops) == 0 {
		return 0
	}
	if b.IsRoundtrip {
		return len(b.Stops)
	}
	return 2*len(b.Stops) - 1
}

// UniqueStopCount counts the distinct Stop pointers referenced by the
// stored sequence.
func (b *Bus) UniqueStopCount() int {
	seen := make(map[*Stop]struct{}, len(b.Stops))
	for _, s := range b.Stops {
		seen[s] = struct{}{}
	}
	return len(seen)
}
