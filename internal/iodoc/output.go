package iodoc

import (
	"encoding/json"
	"fmt"

	"git.fiblab.net/sim/transitcat/internal/requesthandler"
	"git.fiblab.net/sim/transitcat/internal/transit"
)

// Response is a single entry of the output document's top-level
// array. Building it as map[string]any per response kind, rather than
// one struct with omitempty fields, is deliberate: omitempty cannot
// distinguish an absent "buses" field from a present-but-empty one,
// and spec.md §6 requires exactly that distinction.
type Response map[string]any

func notFound(id int) Response {
	return Response{"request_id": id, "error_message": "not found"}
}

// BusStatResponse builds the response for a Bus stat request.
func BusStatResponse(id int, stat requesthandler.BusStat, found bool) Response {
	if !found {
		return notFound(id)
	}
	return Response{
		"request_id":       id,
		"curvature":        stat.Curvature,
		"route_length":     stat.RouteLength,
		"stop_count":       stat.StopCount,
		"unique_stop_count": stat.UniqueStopCount,
	}
}

// StopStatResponse builds the response for a Stop stat request.
func StopStatResponse(id int, buses []string, found bool) Response {
	if !found {
		return notFound(id)
	}
	if buses == nil {
		buses = []string{}
	}
	return Response{"request_id": id, "buses": buses}
}

// MapResponse builds the response for a Map stat request.
func MapResponse(id int, svgText string) Response {
	return Response{"request_id": id, "map": svgText}
}

// RouteResponse builds the response for a Route stat request.
func RouteResponse(id int, info *transit.RouteInfo, found bool) Response {
	if !found {
		return notFound(id)
	}
	items := make([]Response, 0, len(info.Items))
	for _, item := range info.Items {
		switch v := item.(type) {
		case transit.WaitItem:
			items = append(items, Response{
				"type": "Wait", "stop_name": v.StopName, "time": v.Time,
			})
		case transit.BusItem:
			items = append(items, Response{
				"type": "Bus", "bus_name": v.BusName, "span_count": v.SpanCount, "time": v.Time,
			})
		}
	}
	return Response{"request_id": id, "total_time": info.TotalTime, "items": items}
}

// EncodeOutputDocument marshals the ordered response list as the
// top-level output array.
func EncodeOutputDocument(responses []Response) ([]byte, error) {
	out, err := json.Marshal(responses)
	if err != nil {
		return nil, fmt.Errorf("iodoc: %w", err)
	}
	return out, nil
}
