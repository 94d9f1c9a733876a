package maprender_test

import (
	"testing"

	"git.fiblab.net/sim/transitcat/internal/catalogue"
	"git.fiblab.net/sim/transitcat/internal/geo"
	"git.fiblab.net/sim/transitcat/internal/maprender"
	"git.fiblab.net/sim/transitcat/internal/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureSettings() maprender.Settings {
	return maprender.Settings{
		Width: 600, Height: 400, Padding: 50,
		LineWidth: 14, StopRadius: 5,
		BusLabelFontSize: 20, StopLabelFontSize: 18,
		BusLabelOffset:  svg.Point{X: 7, Y: 15},
		StopLabelOffset: svg.Point{X: 7, Y: -3},
		UnderlayerColor: svg.RGBA(255, 255, 255, 0.85),
		UnderlayerWidth: 3,
		ColorPalette:    []svg.Color{svg.NamedColor("green"), svg.RGB(255, 160, 0)},
	}
}

func TestRenderMapOrdersBusesAndStopsByName(t *testing.T) {
	require.NoError(t, fixtureSettings().Validate())

	c := catalogue.New()
	c.AddStop("Z", geo.Coordinates{Lat: 1, Lng: 1})
	c.AddStop("A", geo.Coordinates{Lat: 2, Lng: 2})
	_, err := c.AddBus("2", []string{"Z", "A"}, true)
	require.NoError(t, err)
	_, err = c.AddBus("1", []string{"A", "Z"}, true)
	require.NoError(t, err)

	r := maprender.New(fixtureSettings())
	doc := r.RenderMap(c.AllBuses())
	out := doc.String()

	idx1 := indexOf(out, `>1<`)
	idx2 := indexOf(out, `>2<`)
	require.GreaterOrEqual(t, idx1, 0)
	require.GreaterOrEqual(t, idx2, 0)
	assert.Less(t, idx1, idx2)

	idxA := indexOf(out, `>A<`)
	idxZ := indexOf(out, `>Z<`)
	require.GreaterOrEqual(t, idxA, 0)
	require.GreaterOrEqual(t, idxZ, 0)
	assert.Less(t, idxA, idxZ)

	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8" ?>`)
	assert.Contains(t, out, "</svg>")
}

func TestRenderMapSkipsBusesWithNoStops(t *testing.T) {
	c := catalogue.New()
	_, err := c.AddBus("Empty", nil, true)
	require.NoError(t, err)

	r := maprender.New(fixtureSettings())
	doc := r.RenderMap(c.AllBuses())
	out := doc.String()
	assert.NotContains(t, out, "polyline")
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
