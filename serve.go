package main

import (
	"fmt"

	"git.fiblab.net/sim/transitcat/internal/iodoc"
	"git.fiblab.net/sim/transitcat/internal/requesthandler"
	"github.com/sirupsen/logrus"
)

// serveStatRequests answers every stat_requests entry in input order,
// in the shape spec.md §6 describes for the output document.
func serveStatRequests(handler *requesthandler.Handler, requests []iodoc.StatRequest) ([]iodoc.Response, error) {
	responses := make([]iodoc.Response, 0, len(requests))
	for _, req := range requests {
		switch req.Type {
		case "Bus":
			stat, found := handler.BusStat(req.Name)
			if !found {
				logrus.Debugf("bus %q not found", req.Name)
			}
			responses = append(responses, iodoc.BusStatResponse(req.ID, stat, found))
		case "Stop":
			buses, found := handler.BusesAtStop(req.Name)
			if !found {
				logrus.Debugf("stop %q not found", req.Name)
			}
			responses = append(responses, iodoc.StopStatResponse(req.ID, buses, found))
		case "Map":
			responses = append(responses, iodoc.MapResponse(req.ID, handler.RenderMap().String()))
		case "Route":
			info, found := handler.BuildRoute(req.From, req.To)
			if !found {
				logrus.Debugf("no route from %q to %q", req.From, req.To)
			}
			responses = append(responses, iodoc.RouteResponse(req.ID, info, found))
		default:
			return nil, fmt.Errorf("serve: unknown stat_requests type %q", req.Type)
		}
	}
	return responses, nil
}
