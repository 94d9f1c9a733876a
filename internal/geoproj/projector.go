// Package geoproj fits a finite point cloud of latitude/longitude
// coordinates into a bounded canvas with a Mercator-like affine
// projection. Grounded on
// original_source/transport-catalogue/map_renderer.h's
// SphereProjector.
package geoproj

import (
	"math"

	"git.fiblab.net/sim/transitcat/internal/geo"
	"git.fiblab.net/sim/transitcat/internal/svg"
)

const epsilon = 1e-6

func isZero(v float64) bool {
	return math.Abs(v) < epsilon
}

// Projector maps (lat, lng) coordinates onto a bounded canvas.
type Projector struct {
	padding float64
	minLng  float64
	maxLat  float64
	zoom    float64
}

// New fits points into a width x height canvas with the given
// padding. An empty points slice yields the identity-to-origin
// projector (everything maps to (padding, padding)).
func New(points []geo.Coordinates, width, height, padding float64) *Projector {
	p := &Projector{padding: padding}
	if len(points) == 0 {
		return p
	}

	minLng, maxLng := points[0].Lng, points[0].Lng
	minLat, maxLat := points[0].Lat, points[0].Lat
	for _, pt := range points[1:] {
		minLng = math.Min(minLng, pt.Lng)
		maxLng = math.Max(maxLng, pt.Lng)
		minLat = math.Min(minLat, pt.Lat)
		maxLat = math.Max(maxLat, pt.Lat)
	}
	p.minLng = minLng
	p.maxLat = maxLat

	var widthZoom, heightZoom float64
	var haveWidthZoom, haveHeightZoom bool
	if !isZero(maxLng - minLng) {
		widthZoom = (width - 2*padding) / (maxLng - minLng)
		haveWidthZoom = true
	}
	if !isZero(maxLat - minLat) {
		heightZoom = (height - 2*padding) / (maxLat - minLat)
		haveHeightZoom = true
	}

	switch {
	case haveWidthZoom && haveHeightZoom:
		p.zoom = math.Min(widthZoom, heightZoom)
	case haveWidthZoom:
		p.zoom = widthZoom
	case haveHeightZoom:
		p.zoom = heightZoom
	}

	return p
}

// Project maps a coordinate onto the canvas.
func (p *Projector) Project(c geo.Coordinates) svg.Point {
	return svg.Point{
		X: (c.Lng-p.minLng)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}
