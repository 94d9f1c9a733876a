package graph

// Item is an entry in a PriorityQueue: a vertex awaiting relaxation,
// keyed by tentative distance. Grounded on the container/heap idiom
// the teacher repo exercises in router/algo/priority_queue_test.go
// (the corresponding priority_queue.go was not present in the
// retrieved pack; this recreates the type the test drives).
type Item struct {
	Value    VertexID
	Priority float64
	Index    int
}

// PriorityQueue is a container/heap.Interface over *Item, ordered by
// ascending Priority.
type PriorityQueue []*Item

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	return pq[i].Priority < pq[j].Priority
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *PriorityQueue) Push(x any) {
	item := x.(*Item)
	item.Index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *PriorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.Index = -1
	*pq = old[:n-1]
	return item
}
