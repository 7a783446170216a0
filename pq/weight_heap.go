package pq

import "container/heap"

// weightItem is one entry in a WeightHeap's internal max-heap.
type weightItem struct {
	value int
	key   float64
	index int // position in the backing slice, maintained by heapOrder
}

// heapOrder implements container/heap.Interface over a max-heap of
// *weightItem, ordered by key. Grounded on the edgePQ pattern used for
// Prim's algorithm, generalized from a min-heap of edges to a max-heap of
// (value, key) pairs that supports increase-key via heap.Fix.
type heapOrder []*weightItem

func (h heapOrder) Len() int            { return len(h) }
func (h heapOrder) Less(i, j int) bool  { return h[i].key > h[j].key }
func (h heapOrder) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *heapOrder) Push(x interface{}) {
	item := x.(*weightItem)
	item.index = len(*h)
	*h = append(*h, item)
}
func (h *heapOrder) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// WeightHeap holds a fixed set of distinct int values, each with an
// implicit float64 key starting at zero. It supports incrementing a
// value's key by an arbitrary positive amount in O(log n) and popping a
// value with maximum key in O(log n).
type WeightHeap struct {
	order heapOrder
	items map[int]*weightItem
}

// NewWeightHeap builds a weight heap over values, each starting at key 0.
// values must be pairwise distinct. Returns ErrDuplicateValue otherwise.
//
// Complexity: O(n), where n = len(values).
func NewWeightHeap(values []int) (*WeightHeap, error) {
	w := &WeightHeap{
		order: make(heapOrder, 0, len(values)),
		items: make(map[int]*weightItem, len(values)),
	}
	for _, v := range values {
		if _, ok := w.items[v]; ok {
			return nil, ErrDuplicateValue
		}
		item := &weightItem{value: v}
		w.items[v] = item
		w.order = append(w.order, item)
	}
	heap.Init(&w.order)
	return w, nil
}

// Len returns the number of values still held.
func (w *WeightHeap) Len() int {
	return len(w.items)
}

// Increment raises value's key by amount, which must be strictly
// positive. Returns ErrUnknownValue if value is not currently held, or
// ErrBadAmount if amount is not positive.
//
// Complexity: O(log n).
func (w *WeightHeap) Increment(value int, amount float64) error {
	if amount <= 0 {
		return ErrBadAmount
	}
	item, ok := w.items[value]
	if !ok {
		return ErrUnknownValue
	}
	item.key += amount
	heap.Fix(&w.order, item.index)
	return nil
}

// Pop removes and returns a value with maximum key, discarding the key.
// Returns ErrEmpty if the heap holds no values.
//
// Complexity: O(log n).
func (w *WeightHeap) Pop() (int, error) {
	_, value, err := w.PopKeyVal()
	return value, err
}

// PopKeyVal removes and returns a (key, value) pair with maximum key.
// Returns ErrEmpty if the heap holds no values.
//
// Complexity: O(log n).
func (w *WeightHeap) PopKeyVal() (float64, int, error) {
	if w.order.Len() == 0 {
		return 0, 0, ErrEmpty
	}
	item := heap.Pop(&w.order).(*weightItem)
	delete(w.items, item.value)
	return item.key, item.value, nil
}

// Key returns the current key of value. Returns ErrUnknownValue if value
// is not currently held. Complexity: O(1).
func (w *WeightHeap) Key(value int) (float64, error) {
	item, ok := w.items[value]
	if !ok {
		return 0, ErrUnknownValue
	}
	return item.key, nil
}
