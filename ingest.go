package main

import (
	"fmt"

	"git.fiblab.net/sim/transitcat/internal/catalogue"
	"git.fiblab.net/sim/transitcat/internal/geo"
	"git.fiblab.net/sim/transitcat/internal/iodoc"
)

// ingestBaseRequests replays base_requests into cat in the monotonic
// grow order spec.md §3's lifecycle requires: every Stop first (so
// road_distances and Bus stop-name references always resolve),
// then every recorded distance, then every Bus.
func ingestBaseRequests(cat *catalogue.Catalogue, requests []iodoc.BaseRequest) error {
	var stopRequests []iodoc.StopRequest
	var busRequests []iodoc.BusRequest
	for _, req := range requests {
		switch r := req.(type) {
		case iodoc.StopRequest:
			stopRequests = append(stopRequests, r)
		case iodoc.BusRequest:
			busRequests = append(busRequests, r)
		default:
			return fmt.Errorf("ingest: unrecognized base request %T", req)
		}
	}

	for _, s := range stopRequests {
		cat.AddStop(s.Name, geo.Coordinates{Lat: s.Latitude, Lng: s.Longitude})
	}
	for _, s := range stopRequests {
		for neighbour, metres := range s.RoadDistances {
			if err := cat.AddDistance(s.Name, neighbour, metres); err != nil {
				return fmt.Errorf("ingest: %w", err)
			}
		}
	}
	for _, b := range busRequests {
		if _, err := cat.AddBus(b.Name, b.Stops, b.IsRoundtrip); err != nil {
			return fmt.Errorf("ingest: %w", err)
		}
	}

	return nil
}
