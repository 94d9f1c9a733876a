package iodoc_test

import (
	"encoding/json"
	"testing"

	"git.fiblab.net/sim/transitcat/internal/iodoc"
	"git.fiblab.net/sim/transitcat/internal/requesthandler"
	"git.fiblab.net/sim/transitcat/internal/transit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputDocumentSplitsStopAndBus(t *testing.T) {
	input := []byte(`{
		"base_requests": [
			{"type": "Stop", "name": "A", "latitude": 1.0, "longitude": 2.0, "road_distances": {"B": 100}},
			{"type": "Bus", "name": "1", "stops": ["A", "B"], "is_roundtrip": true}
		],
		"routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
		"stat_requests": [
			{"id": 1, "type": "Bus", "name": "1"},
			{"id": 2, "type": "Route", "from": "A", "to": "B"}
		]
	}`)

	doc, err := iodoc.ParseInputDocument(input)
	require.NoError(t, err)
	require.Len(t, doc.BaseRequests, 2)

	stopReq, ok := doc.BaseRequests[0].(iodoc.StopRequest)
	require.True(t, ok)
	assert.Equal(t, "A", stopReq.Name)
	assert.Equal(t, 100, stopReq.RoadDistances["B"])

	busReq, ok := doc.BaseRequests[1].(iodoc.BusRequest)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, busReq.Stops)
	assert.True(t, busReq.IsRoundtrip)

	require.NotNil(t, doc.RoutingSettings)
	assert.Equal(t, transit.Settings{BusWaitTime: 6, BusVelocity: 40}, doc.RoutingSettings.ToTransitSettings())

	require.Len(t, doc.StatRequests, 2)
	assert.Equal(t, "Route", doc.StatRequests[1].Type)
}

func TestParseInputDocumentRejectsUnknownBaseRequestType(t *testing.T) {
	_, err := iodoc.ParseInputDocument([]byte(`{"base_requests": [{"type": "Train"}]}`))
	assert.Error(t, err)
}

func TestStopStatResponseDistinguishesEmptyFromAbsent(t *testing.T) {
	present := iodoc.StopStatResponse(1, nil, true)
	encoded, err := json.Marshal(present)
	require.NoError(t, err)
	assert.JSONEq(t, `{"request_id":1,"buses":[]}`, string(encoded))

	absent := iodoc.StopStatResponse(2, nil, false)
	encoded, err = json.Marshal(absent)
	require.NoError(t, err)
	assert.JSONEq(t, `{"request_id":2,"error_message":"not found"}`, string(encoded))
}

func TestBusStatResponseNotFound(t *testing.T) {
	resp := iodoc.BusStatResponse(3, requesthandler.BusStat{}, false)
	encoded, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"request_id":3,"error_message":"not found"}`, string(encoded))
}

func TestRouteResponseEncodesWaitAndBusItems(t *testing.T) {
	info := &transit.RouteInfo{
		TotalTime: 24,
		Items: []transit.ItineraryItem{
			transit.WaitItem{StopName: "A", Time: 6},
			transit.BusItem{BusName: "1", SpanCount: 1, Time: 18},
		},
	}
	resp := iodoc.RouteResponse(4, info, true)
	encoded, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"request_id": 4,
		"total_time": 24,
		"items": [
			{"type": "Wait", "stop_name": "A", "time": 6},
			{"type": "Bus", "bus_name": "1", "span_count": 1, "time": 18}
		]
	}`, string(encoded))
}
