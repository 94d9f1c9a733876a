package maprender

import (
	"sort"

	"git.fiblab.net/sim/transitcat/internal/catalogue"
	"git.fiblab.net/sim/transitcat/internal/geo"
	"git.fiblab.net/sim/transitcat/internal/geoproj"
	"git.fiblab.net/sim/transitcat/internal/svg"
)

// Renderer composes an SVG document from a fixed Settings and a
// sequence of buses, per spec.md §4.7's four strictly-ordered layers.
type Renderer struct {
	settings Settings
}

// New returns a Renderer configured with settings.
func New(settings Settings) *Renderer {
	return &Renderer{settings: settings}
}

// RenderMap builds the SVG document for buses, presented internally
// in name-sorted order regardless of the order buses arrives in.
func (r *Renderer) RenderMap(buses []*catalogue.Bus) *svg.Document {
	sorted := append([]*catalogue.Bus(nil), buses...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	stops := uniqueSortedStops(sorted)
	coords := make([]geo.Coordinates, len(stops))
	for i, stop := range stops {
		coords[i] = stop.Coords
	}
	projector := geoproj.New(coords, r.settings.Width, r.settings.Height, r.settings.Padding)

	doc := &svg.Document{}
	r.addRouteLines(doc, sorted, projector)
	r.addRouteLabels(doc, sorted, projector)
	r.addStopSymbols(doc, stops, projector)
	r.addStopLabels(doc, stops, projector)
	return doc
}

func uniqueSortedStops(buses []*catalogue.Bus) []*catalogue.Stop {
	seen := make(map[*catalogue.Stop]struct{})
	var stops []*catalogue.Stop
	for _, bus := range buses {
		for _, stop := range bus.Stops {
			if _, ok := seen[stop]; ok {
				continue
			}
			seen[stop] = struct{}{}
			stops = append(stops, stop)
		}
	}
	sort.Slice(stops, func(i, j int) bool { return stops[i].Name < stops[j].Name })
	return stops
}

func (r *Renderer) addRouteLines(doc *svg.Document, buses []*catalogue.Bus, projector *geoproj.Projector) {
	colorIndex := 0
	for _, bus := range buses {
		if bus.StopCount() == 0 {
			continue
		}
		traversal := bus.ExpandedTraversal()
		points := make([]svg.Point, len(traversal))
		for i, stop := range traversal {
			points[i] = projector.Project(stop.Coords)
		}
		doc.Add(svg.Polyline{
			Points: points,
			Style: svg.Style{
				Stroke:         r.settings.PickColor(colorIndex),
				HasStroke:      true,
				StrokeWidth:    r.settings.LineWidth,
				HasStrokeWidth: true,
				LineCap:        svg.LineCapRound,
				HasLineCap:     true,
				LineJoin:       svg.LineJoinRound,
				HasLineJoin:    true,
				Fill:           svg.Color{},
				HasFill:        true,
			},
		})
		colorIndex++
	}
}

func (r *Renderer) addRouteLabels(doc *svg.Document, buses []*catalogue.Bus, projector *geoproj.Projector) {
	colorIndex := 0
	for _, bus := range buses {
		if bus.StopCount() == 0 {
			continue
		}
		firstPos := projector.Project(bus.Stops[0].Coords)
		r.addRouteLabelPair(doc, firstPos, bus.Name, r.settings.PickColor(colorIndex))

		last := bus.Stops[len(bus.Stops)-1]
		if !bus.IsRoundtrip && bus.Stops[0] != last {
			lastPos := projector.Project(last.Coords)
			r.addRouteLabelPair(doc, lastPos, bus.Name, r.settings.PickColor(colorIndex))
		}
		colorIndex++
	}
}

func (r *Renderer) addRouteLabelPair(doc *svg.Document, pos svg.Point, data string, fill svg.Color) {
	doc.Add(svg.Text{
		Position:   pos,
		Offset:     r.settings.BusLabelOffset,
		FontSize:   uint32(r.settings.BusLabelFontSize),
		FontFamily: "Verdana",
		FontWeight: "bold",
		Data:       data,
		Style: svg.Style{
			Fill:           r.settings.UnderlayerColor,
			HasFill:        true,
			Stroke:         r.settings.UnderlayerColor,
			HasStroke:      true,
			StrokeWidth:    r.settings.UnderlayerWidth,
			HasStrokeWidth: true,
			LineCap:        svg.LineCapRound,
			HasLineCap:     true,
			LineJoin:       svg.LineJoinRound,
			HasLineJoin:    true,
		},
	})
	doc.Add(svg.Text{
		Position:   pos,
		Offset:     r.settings.BusLabelOffset,
		FontSize:   uint32(r.settings.BusLabelFontSize),
		FontFamily: "Verdana",
		FontWeight: "bold",
		Data:       data,
		Style: svg.Style{
			Fill:    fill,
			HasFill: true,
		},
	})
}

func (r *Renderer) addStopSymbols(doc *svg.Document, stops []*catalogue.Stop, projector *geoproj.Projector) {
	for _, stop := range stops {
		doc.Add(svg.Circle{
			Center: projector.Project(stop.Coords),
			Radius: r.settings.StopRadius,
			Style: svg.Style{
				Fill:    svg.NamedColor("white"),
				HasFill: true,
			},
		})
	}
}

func (r *Renderer) addStopLabels(doc *svg.Document, stops []*catalogue.Stop, projector *geoproj.Projector) {
	for _, stop := range stops {
		pos := projector.Project(stop.Coords)
		doc.Add(svg.Text{
			Position:   pos,
			Offset:     r.settings.StopLabelOffset,
			FontSize:   uint32(r.settings.StopLabelFontSize),
			FontFamily: "Verdana",
			Data:       stop.Name,
			Style: svg.Style{
				Fill:           r.settings.UnderlayerColor,
				HasFill:        true,
				Stroke:         r.settings.UnderlayerColor,
				HasStroke:      true,
				StrokeWidth:    r.settings.UnderlayerWidth,
				HasStrokeWidth: true,
				LineCap:        svg.LineCapRound,
				HasLineCap:     true,
				LineJoin:       svg.LineJoinRound,
				HasLineJoin:    true,
			},
		})
		doc.Add(svg.Text{
			Position:   pos,
			Offset:     r.settings.StopLabelOffset,
			FontSize:   uint32(r.settings.StopLabelFontSize),
			FontFamily: "Verdana",
			Data:       stop.Name,
			Style: svg.Style{
				Fill:    svg.NamedColor("black"),
				HasFill: true,
			},
		})
	}
}
