// Package iodoc parses and prints the top-level JSON documents on
// stdio, per spec.md §6. No JSON library appears anywhere in the
// reference corpus, so this seam — explicitly called out in spec.md
// §1 as an external collaborator, not one of the three core engines —
// uses encoding/json directly. Grounded on
// original_source/transport-catalogue/json_reader.h/.cpp and json.h.
package iodoc

import (
	"encoding/json"
	"fmt"

	"git.fiblab.net/sim/transitcat/internal/maprender"
	"git.fiblab.net/sim/transitcat/internal/svg"
	"git.fiblab.net/sim/transitcat/internal/transit"
)

// BaseRequest is the Stop/Bus tagged union parsed from base_requests.
type BaseRequest interface {
	baseRequest()
}

// StopRequest is a base_requests entry of type "Stop".
type StopRequest struct {
	Name          string
	Latitude      float64
	Longitude     float64
	RoadDistances map[string]int
}

func (StopRequest) baseRequest() {}

// BusRequest is a base_requests entry of type "Bus".
type BusRequest struct {
	Name        string
	Stops       []string
	IsRoundtrip bool
}

func (BusRequest) baseRequest() {}

// RenderSettings is render_settings, convertible to maprender.Settings.
type RenderSettings struct {
	Width             float64    `json:"width"`
	Height            float64    `json:"height"`
	Padding           float64    `json:"padding"`
	LineWidth         float64    `json:"line_width"`
	StopRadius        float64    `json:"stop_radius"`
	BusLabelFontSize  int        `json:"bus_label_font_size"`
	StopLabelFontSize int        `json:"stop_label_font_size"`
	BusLabelOffset    [2]float64 `json:"bus_label_offset"`
	StopLabelOffset   [2]float64 `json:"stop_label_offset"`
	UnderlayerColor   svg.Color  `json:"underlayer_color"`
	UnderlayerWidth   float64    `json:"underlayer_width"`
	ColorPalette      []svg.Color `json:"color_palette"`
}

// ToMapRenderSettings converts the parsed document fields into
// maprender.Settings.
func (r RenderSettings) ToMapRenderSettings() maprender.Settings {
	return maprender.Settings{
		Width: r.Width, Height: r.Height, Padding: r.Padding,
		LineWidth: r.LineWidth, StopRadius: r.StopRadius,
		BusLabelFontSize:  r.BusLabelFontSize,
		StopLabelFontSize: r.StopLabelFontSize,
		BusLabelOffset:    svg.Point{X: r.BusLabelOffset[0], Y: r.BusLabelOffset[1]},
		StopLabelOffset:   svg.Point{X: r.StopLabelOffset[0], Y: r.StopLabelOffset[1]},
		UnderlayerColor:   r.UnderlayerColor,
		UnderlayerWidth:   r.UnderlayerWidth,
		ColorPalette:      r.ColorPalette,
	}
}

// RoutingSettings is routing_settings, convertible to transit.Settings.
type RoutingSettings struct {
	BusWaitTime float64 `json:"bus_wait_time"`
	BusVelocity float64 `json:"bus_velocity"`
}

// ToTransitSettings converts the parsed document fields into
// transit.Settings.
func (r RoutingSettings) ToTransitSettings() transit.Settings {
	return transit.Settings{BusWaitTime: r.BusWaitTime, BusVelocity: r.BusVelocity}
}

// StatRequest is one entry of stat_requests.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// InputDocument is the fully parsed top-level input.
type InputDocument struct {
	BaseRequests    []BaseRequest
	RenderSettings  *RenderSettings
	RoutingSettings *RoutingSettings
	StatRequests    []StatRequest
}

type rawInputDocument struct {
	BaseRequests    []json.RawMessage `json:"base_requests"`
	RenderSettings  *RenderSettings   `json:"render_settings"`
	RoutingSettings *RoutingSettings  `json:"routing_settings"`
	StatRequests    []StatRequest     `json:"stat_requests"`
}

type baseRequestEnvelope struct {
	Type string `json:"type"`
}

type rawStopRequest struct {
	Name          string         `json:"name"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	RoadDistances map[string]int `json:"road_distances"`
}

type rawBusRequest struct {
	Name        string   `json:"name"`
	Stops       []string `json:"stops"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

// ParseInputDocument decodes the top-level input document.
func ParseInputDocument(data []byte) (*InputDocument, error) {
	var raw rawInputDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("iodoc: %w", err)
	}

	doc := &InputDocument{
		RenderSettings:  raw.RenderSettings,
		RoutingSettings: raw.RoutingSettings,
		StatRequests:    raw.StatRequests,
	}

	for _, item := range raw.BaseRequests {
		var envelope baseRequestEnvelope
		if err := json.Unmarshal(item, &envelope); err != nil {
			return nil, fmt.Errorf("iodoc: %w", err)
		}
		switch envelope.Type {
		case "Stop":
			var s rawStopRequest
			if err := json.Unmarshal(item, &s); err != nil {
				return nil, fmt.Errorf("iodoc: %w", err)
			}
			doc.BaseRequests = append(doc.BaseRequests, StopRequest{
				Name: s.Name, Latitude: s.Latitude, Longitude: s.Longitude,
				RoadDistances: s.RoadDistances,
			})
		case "Bus":
			var b rawBusRequest
			if err := json.Unmarshal(item, &b); err != nil {
				return nil, fmt.Errorf("iodoc: %w", err)
			}
			doc.BaseRequests = append(doc.BaseRequests, BusRequest{
				Name: b.Name, Stops: b.Stops, IsRoundtrip: b.IsRoundtrip,
			})
		default:
			return nil, fmt.Errorf("iodoc: unknown base_requests type %q", envelope.Type)
		}
	}

	return doc, nil
}
