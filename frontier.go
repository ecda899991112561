package pocketcube

// heapItem pairs a frontier configuration with its priority: the facelet
// distance to the goal at the time it was enqueued.
type heapItem struct {
	cube     *Cube
	priority int
}

// priorityFrontier is a min-heap over goal distance for container/heap.
// Ties are broken arbitrarily by heap order.
type priorityFrontier []heapItem

func (f priorityFrontier) Len() int { return len(f) }

func (f priorityFrontier) Less(i, j int) bool { return f[i].priority < f[j].priority }

func (f priorityFrontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *priorityFrontier) Push(x any) {
	*f = append(*f, x.(heapItem))
}

func (f *priorityFrontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = heapItem{}
	*f = old[:n-1]
	return item
}
