package requesthandler_test

import (
	"testing"

	"git.fiblab.net/sim/transitcat/internal/catalogue"
	"git.fiblab.net/sim/transitcat/internal/geo"
	"git.fiblab.net/sim/transitcat/internal/maprender"
	"git.fiblab.net/sim/transitcat/internal/requesthandler"
	"git.fiblab.net/sim/transitcat/internal/svg"
	"git.fiblab.net/sim/transitcat/internal/transit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildHandler(t *testing.T) *requesthandler.Handler {
	c := catalogue.New()
	c.AddStop("A", geo.Coordinates{Lat: 0, Lng: 0})
	c.AddStop("B", geo.Coordinates{Lat: 0, Lng: 1})
	require.NoError(t, c.AddDistance("A", "B", 12000))
	_, err := c.AddBus("Line1", []string{"A", "B"}, true)
	require.NoError(t, err)

	renderer := maprender.New(maprender.Settings{
		Width: 600, Height: 400, Padding: 50,
		LineWidth: 14, StopRadius: 5,
		ColorPalette: []svg.Color{svg.NamedColor("green")},
	})
	router := transit.New(c)
	require.NoError(t, router.SetRoutingSettings(transit.Settings{BusWaitTime: 6, BusVelocity: 40}))

	return requesthandler.New(c, renderer, router)
}

func TestBusStatUnknownBus(t *testing.T) {
	h := buildHandler(t)
	_, ok := h.BusStat("Nope")
	assert.False(t, ok)
}

func TestBusStatKnownBus(t *testing.T) {
	h := buildHandler(t)
	stat, ok := h.BusStat("Line1")
	require.True(t, ok)
	assert.Equal(t, 2, stat.StopCount)
	assert.Equal(t, 2, stat.UniqueStopCount)
	assert.Equal(t, 12000, stat.RouteLength)
}

func TestBusStatSingleStopLineOmitsCurvature(t *testing.T) {
	c := catalogue.New()
	c.AddStop("A", geo.Coordinates{Lat: 0, Lng: 0})
	_, err := c.AddBus("Loner", []string{"A"}, true)
	require.NoError(t, err)

	renderer := maprender.New(maprender.Settings{
		Width: 600, Height: 400, Padding: 50,
		LineWidth: 14, StopRadius: 5,
		ColorPalette: []svg.Color{svg.NamedColor("green")},
	})
	router := transit.New(c)

	h := requesthandler.New(c, renderer, router)
	stat, ok := h.BusStat("Loner")
	require.True(t, ok)
	assert.Equal(t, 1, stat.StopCount)
	assert.Zero(t, stat.Curvature)
}

func TestBusesAtStopUnknownStop(t *testing.T) {
	h := buildHandler(t)
	_, ok := h.BusesAtStop("Nowhere")
	assert.False(t, ok)
}

func TestRenderMapProducesDocument(t *testing.T) {
	h := buildHandler(t)
	doc := h.RenderMap()
	assert.Contains(t, doc.String(), "<svg")
}

func TestBuildRouteDelegatesToTransit(t *testing.T) {
	h := buildHandler(t)
	info, ok := h.BuildRoute("A", "B")
	require.True(t, ok)
	assert.InDelta(t, 24.0, info.TotalTime, 1e-6)
}

func TestBuildRouteUnknownStop(t *testing.T) {
	h := buildHandler(t)
	_, ok := h.BuildRoute("A", "Nowhere")
	assert.False(t, ok)
}
