package transit

// ItineraryItem is the Wait/Bus tagged union spec'd as a closed sum
// type. Callers exhaust both cases with a type switch.
type ItineraryItem interface {
	itineraryItem()
}

// WaitItem models the boarding delay at a stop.
type WaitItem struct {
	StopName string
	Time     float64
}

func (WaitItem) itineraryItem() {}

// BusItem models a bus segment spanning span_count hops.
type BusItem struct {
	BusName   string
	SpanCount int
	Time      float64
}

func (BusItem) itineraryItem() {}

// RouteInfo is the reconstructed itinerary and its total duration in
// minutes.
type RouteInfo struct {
	TotalTime float64
	Items     []ItineraryItem
}
